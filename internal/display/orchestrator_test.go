package display

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-forex-archive/internal/models"
	"github.com/sbilibin2017/gw-forex-archive/internal/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func setOf(records ...models.RateRecord) models.CategorizedRateSet {
	var s models.CategorizedRateSet
	for _, r := range records {
		s.Add(r)
	}
	return s
}

func rate(id int64, ticker string, c models.Category) models.RateRecord {
	return models.RateRecord{ID: id, Ticker: ticker, Currency: ticker + " currency", Category: c}
}

func wait(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("fetch did not finish")
	}
}

func TestOrchestrator_InitialRender(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	o := NewOrchestrator(NewMockDateResolver(ctrl), NewMockRatesFetcher(ctrl))
	r := o.Render()

	assert.Equal(t, ModeInitializing, r.Mode)
	assert.Equal(t, MessageLoading, r.Message)
	assert.Nil(t, r.Date)
	assert.Empty(t, r.Panels)
}

func TestOrchestrator_RenderModes(t *testing.T) {
	d := day(2024, time.March, 15)

	tests := []struct {
		name           string
		set            models.CategorizedRateSet
		wantMode       Mode
		wantMessage    string
		wantPanels     []models.Category
		wantBranchNote bool
	}{
		{
			name: "two_categories_render_tabs",
			set: setOf(
				rate(1, "USD", models.CategoryBelow10),
				rate(2, "USD", models.Category10To20),
			),
			wantMode:       ModeMultiCategory,
			wantPanels:     []models.Category{models.CategoryBelow10, models.Category10To20},
			wantBranchNote: false,
		},
		{
			name:           "single_category_without_tabs",
			set:            setOf(rate(1, "USD", models.Category10To20)),
			wantMode:       ModeSingleCategory,
			wantPanels:     []models.Category{models.Category10To20},
			wantBranchNote: true,
		},
		{
			name:        "failed_fetch_shows_no_data",
			set:         models.CategorizedRateSet{},
			wantMode:    ModeNoData,
			wantMessage: MessageNoData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			resolver := NewMockDateResolver(ctrl)
			fetcher := NewMockRatesFetcher(ctrl)
			resolver.EXPECT().Validate(d).Return(nil)
			fetcher.EXPECT().FetchRates(gomock.Any(), d).Return(tt.set)

			o := NewOrchestrator(resolver, fetcher)
			done, err := o.SelectDate(context.Background(), d)
			require.NoError(t, err)
			wait(t, done)

			r := o.Render()
			assert.Equal(t, tt.wantMode, r.Mode)
			assert.Equal(t, tt.wantMessage, r.Message)
			require.NotNil(t, r.Date)
			assert.True(t, d.Equal(*r.Date))

			var got []models.Category
			for _, p := range r.Panels {
				got = append(got, p.Category)
				assert.Equal(t, p.Category.Label(), p.Label)
			}
			assert.Equal(t, tt.wantPanels, got)
			assert.Equal(t, tt.wantBranchNote, r.ShowBranchNote)
			assert.Equal(t, tt.wantMode.ShowsTables(), r.ShowNotes)
		})
	}
}

func TestOrchestrator_ResolveDefaultRunsOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := day(2024, time.March, 14)
	resolver := NewMockDateResolver(ctrl)
	fetcher := NewMockRatesFetcher(ctrl)
	resolver.EXPECT().Resolve(gomock.Any()).Return(d).Times(1)
	resolver.EXPECT().Validate(d).Return(nil)
	fetcher.EXPECT().FetchRates(gomock.Any(), d).Return(setOf(rate(1, "USD", models.CategoryBelow10)))

	o := NewOrchestrator(resolver, fetcher)
	ctx := context.Background()

	done, err := o.ResolveDefault(ctx)
	require.NoError(t, err)
	wait(t, done)

	done, err = o.ResolveDefault(ctx)
	require.NoError(t, err)
	wait(t, done)

	assert.Equal(t, ModeSingleCategory, o.Render().Mode)
}

func TestOrchestrator_ClearDateRearmsResolution(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := day(2024, time.March, 14)
	resolver := NewMockDateResolver(ctrl)
	fetcher := NewMockRatesFetcher(ctrl)
	resolver.EXPECT().Resolve(gomock.Any()).Return(d).Times(2)
	resolver.EXPECT().Validate(d).Return(nil).Times(2)
	fetcher.EXPECT().FetchRates(gomock.Any(), d).Return(setOf(rate(1, "USD", models.CategoryBelow10))).Times(2)

	o := NewOrchestrator(resolver, fetcher)
	ctx := context.Background()

	done, err := o.ResolveDefault(ctx)
	require.NoError(t, err)
	wait(t, done)

	o.ClearDate()
	r := o.Render()
	assert.Equal(t, ModeNoDateSelected, r.Mode)
	assert.Equal(t, MessageNoDateSelected, r.Message)
	assert.Nil(t, o.SelectedDate())

	done, err = o.ResolveDefault(ctx)
	require.NoError(t, err)
	wait(t, done)
	assert.Equal(t, ModeSingleCategory, o.Render().Mode)
}

func TestOrchestrator_SelectDateOutOfRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := day(2021, time.December, 31)
	errRange := errors.New("out of range")
	resolver := NewMockDateResolver(ctrl)
	resolver.EXPECT().Validate(d).Return(errRange)

	o := NewOrchestrator(resolver, NewMockRatesFetcher(ctrl))
	done, err := o.SelectDate(context.Background(), d)

	assert.ErrorIs(t, err, errRange)
	assert.Nil(t, done)
	assert.Nil(t, o.SelectedDate())
	assert.Equal(t, ModeInitializing, o.Render().Mode)
}

func TestOrchestrator_StaleFetchIsDiscarded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	first := day(2024, time.March, 10)
	second := day(2024, time.March, 11)
	release := make(chan struct{})

	resolver := NewMockDateResolver(ctrl)
	fetcher := NewMockRatesFetcher(ctrl)
	resolver.EXPECT().Validate(gomock.Any()).Return(nil).Times(2)
	fetcher.EXPECT().FetchRates(gomock.Any(), first).DoAndReturn(
		func(context.Context, time.Time) models.CategorizedRateSet {
			<-release
			return setOf(rate(1, "USD", models.CategoryBelow10))
		})
	fetcher.EXPECT().FetchRates(gomock.Any(), second).Return(
		setOf(rate(2, "EUR", models.Category10To20)))

	o := NewOrchestrator(resolver, fetcher)
	ctx := context.Background()

	slow, err := o.SelectDate(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, ModeLoading, o.Render().Mode)

	fast, err := o.SelectDate(ctx, second)
	require.NoError(t, err)
	wait(t, fast)

	close(release)
	wait(t, slow)

	r := o.Render()
	require.Equal(t, ModeSingleCategory, r.Mode)
	assert.Equal(t, models.Category10To20, r.Panels[0].Category)
	assert.True(t, second.Equal(*r.Date))
}

func TestOrchestrator_LoadingWhileFetching(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := day(2024, time.March, 15)
	release := make(chan struct{})
	resolver := NewMockDateResolver(ctrl)
	fetcher := NewMockRatesFetcher(ctrl)
	resolver.EXPECT().Validate(d).Return(nil)
	fetcher.EXPECT().FetchRates(gomock.Any(), d).DoAndReturn(
		func(context.Context, time.Time) models.CategorizedRateSet {
			<-release
			return setOf(rate(1, "USD", models.CategoryBelow10))
		})

	o := NewOrchestrator(resolver, fetcher)
	done, err := o.SelectDate(context.Background(), d)
	require.NoError(t, err)

	r := o.Render()
	assert.Equal(t, ModeLoading, r.Mode)
	assert.Equal(t, MessageLoading, r.Message)
	assert.Empty(t, r.Panels)

	close(release)
	wait(t, done)
	assert.Equal(t, ModeSingleCategory, o.Render().Mode)
}

func TestOrchestrator_SearchSharedAcrossTabs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := day(2024, time.March, 15)
	var records []models.RateRecord
	for i := 0; i < 25; i++ {
		records = append(records,
			rate(int64(i), fmt.Sprintf("A%02d", i), models.CategoryBelow10),
			rate(int64(100+i), fmt.Sprintf("B%02d", i), models.Category10To20))
	}

	resolver := NewMockDateResolver(ctrl)
	fetcher := NewMockRatesFetcher(ctrl)
	resolver.EXPECT().Validate(d).Return(nil)
	fetcher.EXPECT().FetchRates(gomock.Any(), d).Return(setOf(records...))

	o := NewOrchestrator(resolver, fetcher)
	done, err := o.SelectDate(context.Background(), d)
	require.NoError(t, err)
	wait(t, done)

	o.SetTab(models.Category10To20)
	o.SetTableState(models.CategoryBelow10, table.NewViewState().WithPage(3))
	o.SetTableState(models.Category10To20, table.NewViewState().WithPage(2))

	r := o.Render()
	assert.Equal(t, models.Category10To20, r.ActiveTab)
	assert.Equal(t, 3, r.Panels[0].View.State.Page)
	assert.Equal(t, 2, r.Panels[1].View.State.Page)

	o.SetSearch("0")
	r = o.Render()
	assert.Equal(t, models.Category10To20, r.ActiveTab, "search keeps the active tab")
	assert.False(t, r.Panels[0].Active)
	assert.True(t, r.Panels[1].Active)
	for _, p := range r.Panels {
		assert.Equal(t, 1, p.View.State.Page)
		assert.Equal(t, "0", p.View.State.Search)
		for _, row := range p.View.Rows {
			assert.Contains(t, row.Ticker, "0")
		}
	}
	assert.Equal(t, "0", r.Search)
}

func TestOrchestrator_UnknownTabFallsBackToFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := day(2024, time.March, 15)
	resolver := NewMockDateResolver(ctrl)
	fetcher := NewMockRatesFetcher(ctrl)
	resolver.EXPECT().Validate(d).Return(nil)
	fetcher.EXPECT().FetchRates(gomock.Any(), d).Return(setOf(
		rate(1, "USD", models.CategoryBelow10),
		rate(2, "USD", models.Category10To20),
	))

	o := NewOrchestrator(resolver, fetcher)
	o.SetTab(models.Category("above_20"))
	done, err := o.SelectDate(context.Background(), d)
	require.NoError(t, err)
	wait(t, done)

	r := o.Render()
	assert.Equal(t, models.CategoryBelow10, r.ActiveTab)
	assert.True(t, r.Panels[0].Active)
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "multi_category", ModeMultiCategory.String())
	assert.Equal(t, "unknown", Mode(42).String())

	text, err := ModeNoData.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "no_data", string(text))
}

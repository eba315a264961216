package handlers_test

import (
	"context"
	"fmt"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-forex-archive/internal/display"
	"github.com/sbilibin2017/gw-forex-archive/internal/handlers"
	"github.com/sbilibin2017/gw-forex-archive/internal/models"
)

var loc = time.UTC

type fixedBounds struct{}

func (fixedBounds) MinDate() time.Time       { return time.Date(2022, time.January, 1, 0, 0, 0, 0, loc) }
func (fixedBounds) MaxDate() time.Time       { return time.Date(2024, time.March, 15, 0, 0, 0, 0, loc) }
func (fixedBounds) Location() *time.Location { return loc }

// boundedResolver validates against fixedBounds and resolves to MaxDate.
type boundedResolver struct{}

func (boundedResolver) Resolve(context.Context) time.Time { return fixedBounds{}.MaxDate() }

func (boundedResolver) Validate(d time.Time) error {
	b := fixedBounds{}
	if d.Before(b.MinDate()) || d.After(b.MaxDate()) {
		return fmt.Errorf("date %s is outside the archive range", d.Format("2006-01-02"))
	}
	return nil
}

func newFactory(fetcher display.RatesFetcher) handlers.PresenterFactory {
	return func() handlers.Presenter {
		return display.NewOrchestrator(boundedResolver{}, fetcher)
	}
}

func newMockFactory(ctrl *gomock.Controller) (handlers.PresenterFactory, *display.MockRatesFetcher) {
	fetcher := display.NewMockRatesFetcher(ctrl)
	return newFactory(fetcher), fetcher
}

func rateSet(records ...models.RateRecord) models.CategorizedRateSet {
	var s models.CategorizedRateSet
	for _, r := range records {
		s.Add(r)
	}
	return s
}

func usd(c models.Category) models.RateRecord {
	return models.RateRecord{
		ID: 1, Currency: "UNITED STATES DOLLAR", Ticker: "USD",
		TTBuy: 83.1, TTSell: 83.97, BillBuy: 83.05, BillSell: 84.12,
		FTCBuy: 82.9, FTCSell: 84.2, CNBuy: 82.3, CNSell: 84.8,
		Date: "15-03-2024", Category: c,
	}
}

func aud(c models.Category) models.RateRecord {
	return models.RateRecord{ID: 2, Currency: "AUSTRALIAN DOLLAR", Ticker: "AUD", TTBuy: 54.2, Date: "15-03-2024", Category: c}
}

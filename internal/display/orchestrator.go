// Package display holds the page-level state of the archive viewer and
// decides what the page shows for it.
package display

import (
	"context"
	"sync"
	"time"

	"github.com/sbilibin2017/gw-forex-archive/internal/models"
	"github.com/sbilibin2017/gw-forex-archive/internal/table"
)

//go:generate mockgen -source=orchestrator.go -destination=orchestrator_mock.go -package=display

// Messages shown instead of the tables.
const (
	MessageLoading        = "Loading forex data..."
	MessageNoDateSelected = "Please select a date to view forex rates."
	MessageNoData         = "No forex data available for the selected date."
)

// DateResolver picks the initial date and checks user selections.
type DateResolver interface {
	Resolve(ctx context.Context) time.Time
	Validate(d time.Time) error
}

// RatesFetcher loads the grouped records for a date. It never fails:
// problems surface as an empty set.
type RatesFetcher interface {
	FetchRates(ctx context.Context, day time.Time) models.CategorizedRateSet
}

// Orchestrator owns the selected date, the fetched data and the shared
// search term. It is safe for concurrent use.
type Orchestrator struct {
	resolver DateResolver
	fetcher  RatesFetcher

	mu           sync.Mutex
	selected     *time.Time
	data         models.CategorizedRateSet
	loading      bool
	initializing bool
	resolved     bool
	generation   uint64
	search       string
	tab          models.Category
	tables       map[models.Category]table.ViewState
	searchOpen   bool
}

// NewOrchestrator creates an orchestrator with no date selected.
func NewOrchestrator(resolver DateResolver, fetcher RatesFetcher) *Orchestrator {
	return &Orchestrator{
		resolver:     resolver,
		fetcher:      fetcher,
		initializing: true,
		tables:       make(map[models.Category]table.ViewState),
	}
}

func closedChan() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}

// ResolveDefault selects the resolver's date when nothing is selected yet.
// It runs the resolver at most once until ClearDate re-arms it.
func (o *Orchestrator) ResolveDefault(ctx context.Context) (<-chan struct{}, error) {
	o.mu.Lock()
	if o.selected != nil || o.resolved {
		o.mu.Unlock()
		return closedChan(), nil
	}
	o.resolved = true
	o.mu.Unlock()

	d := o.resolver.Resolve(ctx)

	o.mu.Lock()
	picked := o.selected != nil
	o.mu.Unlock()
	if picked {
		return closedChan(), nil
	}
	return o.SelectDate(ctx, d)
}

// SelectDate validates d, makes it the selected date and starts fetching
// its records. The returned channel is closed once the fetch finished.
// Only the most recently started fetch is committed.
func (o *Orchestrator) SelectDate(ctx context.Context, d time.Time) (<-chan struct{}, error) {
	if err := o.resolver.Validate(d); err != nil {
		return nil, err
	}

	o.mu.Lock()
	o.selected = &d
	o.initializing = false
	o.resolved = true
	o.loading = true
	o.generation++
	gen := o.generation
	o.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		set := o.fetcher.FetchRates(ctx, d)

		o.mu.Lock()
		defer o.mu.Unlock()
		if gen != o.generation {
			return
		}
		o.data = set
		o.loading = false
	}()
	return done, nil
}

// ClearDate drops the selection and its data. In-flight fetches are
// discarded and the next ResolveDefault runs the resolver again.
func (o *Orchestrator) ClearDate() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.selected = nil
	o.data = models.CategorizedRateSet{}
	o.loading = false
	o.initializing = false
	o.resolved = false
	o.generation++
}

// SelectedDate returns the selected date, nil when none.
func (o *Orchestrator) SelectedDate() *time.Time {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.selected == nil {
		return nil
	}
	d := *o.selected
	return &d
}

// SetSearch sets the term shared by every table. Tables whose term
// changes go back to their first page; the active tab is kept.
func (o *Orchestrator) SetSearch(term string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.search = term
	for c, st := range o.tables {
		o.tables[c] = st.WithSearch(term)
	}
}

// Search returns the shared search term.
func (o *Orchestrator) Search() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.search
}

// SetTab makes c the active tab.
func (o *Orchestrator) SetTab(c models.Category) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.tab = c
}

// SetTableState replaces the sort and page of category c. The search term
// always comes from SetSearch.
func (o *Orchestrator) SetTableState(c models.Category, st table.ViewState) {
	o.mu.Lock()
	defer o.mu.Unlock()
	st.Search = o.search
	o.tables[c] = st.WithPage(st.Page)
}

// TableState returns the state of category c.
func (o *Orchestrator) TableState(c models.Category) table.ViewState {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.tableStateLocked(c)
}

func (o *Orchestrator) tableStateLocked(c models.Category) table.ViewState {
	st, ok := o.tables[c]
	if !ok {
		st = table.NewViewState()
		st.Search = o.search
	}
	return st
}

// SetSearchOpen toggles the search overlay.
func (o *Orchestrator) SetSearchOpen(open bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.searchOpen = open
}

// Panel is one category table of the page.
type Panel struct {
	Category models.Category
	Label    string
	Active   bool
	View     table.View
}

// Page is everything the page needs to draw the current state.
type Page struct {
	Mode           Mode
	Date           *time.Time
	Search         string
	SearchOpen     bool
	Message        string
	Panels         []Panel
	ActiveTab      models.Category
	ShowNotes      bool
	ShowBranchNote bool
}

// Render evaluates the current state.
func (o *Orchestrator) Render() Page {
	o.mu.Lock()
	defer o.mu.Unlock()

	r := Page{
		Search:     o.search,
		SearchOpen: o.searchOpen,
	}
	if o.selected != nil {
		d := *o.selected
		r.Date = &d
	}

	switch {
	case o.initializing:
		r.Mode = ModeInitializing
		r.Message = MessageLoading
		return r
	case o.loading:
		r.Mode = ModeLoading
		r.Message = MessageLoading
		return r
	case o.selected == nil:
		r.Mode = ModeNoDateSelected
		r.Message = MessageNoDateSelected
		return r
	case o.data.IsEmpty():
		r.Mode = ModeNoData
		r.Message = MessageNoData
		return r
	}

	categories := o.data.Categories()
	r.ActiveTab = categories[0]
	if o.data.Has(o.tab) {
		r.ActiveTab = o.tab
	}

	r.Mode = ModeMultiCategory
	if len(categories) == 1 {
		r.Mode = ModeSingleCategory
	}

	r.Panels = make([]Panel, 0, len(categories))
	for _, c := range categories {
		r.Panels = append(r.Panels, Panel{
			Category: c,
			Label:    c.Label(),
			Active:   c == r.ActiveTab,
			View:     table.Compute(o.data.Records(c), o.tableStateLocked(c)),
		})
	}

	r.ShowNotes = true
	r.ShowBranchNote = !o.data.Has(models.CategoryBelow10)
	return r
}

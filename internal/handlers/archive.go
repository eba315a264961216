package handlers

import (
	"context"
	"time"

	"github.com/sbilibin2017/gw-forex-archive/internal/display"
	"github.com/sbilibin2017/gw-forex-archive/internal/models"
	"github.com/sbilibin2017/gw-forex-archive/internal/table"
)

// Presenter holds the page state for a single request.
type Presenter interface {
	ResolveDefault(ctx context.Context) (<-chan struct{}, error)
	SelectDate(ctx context.Context, d time.Time) (<-chan struct{}, error)
	ClearDate()
	SetSearch(term string)
	SetTab(c models.Category)
	SetTableState(c models.Category, st table.ViewState)
	Render() display.Page
}

// DateBounds exposes the selectable date range and its time zone.
type DateBounds interface {
	MinDate() time.Time
	MaxDate() time.Time
	Location() *time.Location
}

// PresenterFactory builds a fresh Presenter per request.
type PresenterFactory func() Presenter

// present applies q to a new presenter and waits for the fetch it starts.
// An error means the requested date was rejected.
func present(ctx context.Context, newPresenter PresenterFactory, q PageQuery) (display.Page, error) {
	p := newPresenter()
	p.SetSearch(q.Search)
	if q.Tab != "" {
		p.SetTab(q.Tab)
	}
	for c, st := range q.Tables {
		p.SetTableState(c, st)
	}

	var (
		done <-chan struct{}
		err  error
	)
	switch {
	case q.Date != nil:
		done, err = p.SelectDate(ctx, *q.Date)
	case q.Cleared:
		p.ClearDate()
	default:
		done, err = p.ResolveDefault(ctx)
	}
	if err != nil {
		return display.Page{}, err
	}

	if done != nil {
		select {
		case <-done:
		case <-ctx.Done():
		}
	}
	return p.Render(), nil
}

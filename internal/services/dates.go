package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sbilibin2017/gw-forex-archive/internal/dates"
	"github.com/sbilibin2017/gw-forex-archive/internal/logger"
)

//go:generate mockgen -source=dates.go -destination=dates_mock.go -package=services

// ErrDateOutOfRange is returned for selections outside [archive start, max date].
var ErrDateOutOfRange = errors.New("date is outside the archive range")

// Strategy selects how the initial date is chosen.
type Strategy string

const (
	// StrategyStatic defaults to yesterday; today is not selectable.
	StrategyStatic Strategy = "static"
	// StrategyDynamic asks the availability endpoint; today is selectable.
	StrategyDynamic Strategy = "dynamic"
)

const availabilityLookbackDays = 10

// ParseStrategy validates a configured strategy name.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyStatic, StrategyDynamic:
		return Strategy(s), nil
	}
	return "", fmt.Errorf("unknown date strategy %q", s)
}

// AvailabilityReader lists the dates in [from, to] that have published rates.
type AvailabilityReader interface {
	GetAvailableDates(ctx context.Context, from, to string) ([]string, error)
}

// DateService resolves the initial date and enforces the selectable range.
type DateService struct {
	reader   AvailabilityReader
	strategy Strategy
	loc      *time.Location
	now      func() time.Time
}

// NewDateService creates a new service instance. now defaults to time.Now.
func NewDateService(reader AvailabilityReader, strategy Strategy, loc *time.Location, now func() time.Time) *DateService {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.UTC
	}
	return &DateService{
		reader:   reader,
		strategy: strategy,
		loc:      loc,
		now:      now,
	}
}

// Location is the time zone calendar dates are interpreted in.
func (s *DateService) Location() *time.Location {
	return s.loc
}

// Today returns the current date at midnight.
func (s *DateService) Today() time.Time {
	return dates.Day(s.now().In(s.loc))
}

// MinDate is the first selectable date.
func (s *DateService) MinDate() time.Time {
	return dates.ArchiveStart(s.loc)
}

// MaxDate is the last selectable date.
func (s *DateService) MaxDate() time.Time {
	if s.strategy == StrategyDynamic {
		return s.Today()
	}
	return s.Today().AddDate(0, 0, -1)
}

// Validate rejects dates outside [MinDate, MaxDate].
func (s *DateService) Validate(d time.Time) error {
	d = dates.Day(d.In(s.loc))
	if d.Before(s.MinDate()) || d.After(s.MaxDate()) {
		return fmt.Errorf("%w: %s", ErrDateOutOfRange, dates.Format(d))
	}
	return nil
}

// Resolve returns the date to show when the user has not picked one.
// Failures never surface: the dynamic strategy falls back to today.
func (s *DateService) Resolve(ctx context.Context) time.Time {
	today := s.Today()
	if s.strategy != StrategyDynamic {
		return today.AddDate(0, 0, -1)
	}

	from := today.AddDate(0, 0, -availabilityLookbackDays)
	available, err := s.reader.GetAvailableDates(ctx, dates.Format(from), dates.Format(today))
	if err != nil {
		logger.Log.Warnw("availability lookup failed, defaulting to today", "error", err)
		return today
	}
	if len(available) == 0 {
		logger.Log.Infow("no available dates in lookback window, defaulting to today",
			"from", dates.Format(from), "to", dates.Format(today))
		return today
	}

	// The list is newest first.
	oldest := available[len(available)-1]
	d, err := dates.Parse(oldest, s.loc)
	if err != nil {
		logger.Log.Warnw("unparseable available date, defaulting to today", "value", oldest, "error", err)
		return today
	}
	return d
}

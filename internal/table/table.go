// Package table turns one category's records and a ViewState into the rows
// of the page being shown: filter, priority partition, sort, recombine and
// paginate, in that order.
package table

import (
	"slices"
	"strings"

	"github.com/sbilibin2017/gw-forex-archive/internal/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// PageSize is the number of rows per page.
const PageSize = 10

var priorityTickers = [...]string{"USD", "EUR", "GBP", "JPY"}

// PriorityTickers returns the currencies that are always listed first.
func PriorityTickers() []string {
	return priorityTickers[:]
}

func priorityIndex(ticker string) int {
	for i, t := range priorityTickers {
		if t == ticker {
			return i
		}
	}
	return -1
}

// IsPriority reports whether ticker is one of the priority currencies.
func IsPriority(ticker string) bool {
	return priorityIndex(ticker) >= 0
}

// View is the computed content of one table.
type View struct {
	Rows       []models.RateRecord
	TotalRows  int
	TotalPages int
	State      ViewState
}

// Compute runs the table pipeline over records.
func Compute(records []models.RateRecord, state ViewState) View {
	state = state.WithPage(state.Page)
	if state.Direction != Desc {
		state.Direction = Asc
	}

	filtered := Filter(records, state.Search)

	var priority, other []models.RateRecord
	for _, r := range filtered {
		if IsPriority(r.Ticker) {
			priority = append(priority, r)
		} else {
			other = append(other, r)
		}
	}

	slices.SortStableFunc(priority, func(a, b models.RateRecord) int {
		return priorityIndex(a.Ticker) - priorityIndex(b.Ticker)
	})

	if state.Sorted() {
		cmp := comparator(state.Sort, state.Direction)
		slices.SortStableFunc(priority, cmp)
		slices.SortStableFunc(other, cmp)
	}

	combined := append(priority, other...)

	return View{
		Rows:       paginate(combined, state.Page),
		TotalRows:  len(combined),
		TotalPages: (len(combined) + PageSize - 1) / PageSize,
		State:      state,
	}
}

// Filter keeps the records whose currency name or ticker contains term,
// ignoring case. An empty term keeps everything.
func Filter(records []models.RateRecord, term string) []models.RateRecord {
	needle := strings.ToLower(term)
	out := make([]models.RateRecord, 0, len(records))
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Currency), needle) ||
			strings.Contains(strings.ToLower(r.Ticker), needle) {
			out = append(out, r)
		}
	}
	return out
}

func paginate(records []models.RateRecord, page int) []models.RateRecord {
	// Compare against the page count before multiplying so huge pages cannot overflow.
	if page > (len(records)+PageSize-1)/PageSize {
		return []models.RateRecord{}
	}
	start := (page - 1) * PageSize
	end := min(start+PageSize, len(records))
	return records[start:end]
}

// comparator orders strings by English collation and numbers by their
// difference. Mismatched or unknown fields compare equal.
func comparator(f Field, dir Direction) func(a, b models.RateRecord) int {
	col := collate.New(language.English)
	sign := 1
	if dir == Desc {
		sign = -1
	}

	return func(a, b models.RateRecord) int {
		av, aok := f.value(a)
		bv, bok := f.value(b)
		if !aok || !bok {
			return 0
		}

		switch x := av.(type) {
		case string:
			y, ok := bv.(string)
			if !ok {
				return 0
			}
			return sign * col.CompareString(x, y)
		case float64:
			y, ok := bv.(float64)
			if !ok {
				return 0
			}
			switch d := x - y; {
			case d < 0:
				return -sign
			case d > 0:
				return sign
			}
		}
		return 0
	}
}

func (f Field) value(r models.RateRecord) (any, bool) {
	switch f {
	case FieldID:
		return float64(r.ID), true
	case FieldCurrency:
		return r.Currency, true
	case FieldTicker:
		return r.Ticker, true
	case FieldTTBuy:
		return r.TTBuy, true
	case FieldTTSell:
		return r.TTSell, true
	case FieldBillBuy:
		return r.BillBuy, true
	case FieldBillSell:
		return r.BillSell, true
	case FieldFTCBuy:
		return r.FTCBuy, true
	case FieldFTCSell:
		return r.FTCSell, true
	case FieldCNBuy:
		return r.CNBuy, true
	case FieldCNSell:
		return r.CNSell, true
	case FieldDate:
		return r.Date, true
	case FieldCategory:
		return string(r.Category), true
	}
	return nil, false
}

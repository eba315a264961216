package table

import "github.com/shopspring/decimal"

// FormatRate renders v with exactly two decimals, rounding half away from zero.
func FormatRate(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// EmptyMessage is shown in the table body when the current page has no rows.
func (v View) EmptyMessage() string {
	if v.State.Search != "" {
		return "No results found for your search."
	}
	return "No data available."
}

// ShowPagination reports whether the pager is rendered.
func (v View) ShowPagination() bool {
	return v.TotalPages > 1
}

// PageNumbers lists 1..TotalPages.
func (v View) PageNumbers() []int {
	pages := make([]int, v.TotalPages)
	for i := range pages {
		pages[i] = i + 1
	}
	return pages
}

// PrevPage is the target of the "previous" control.
func (v View) PrevPage() int {
	return max(1, v.State.Page-1)
}

// NextPage is the target of the "next" control.
func (v View) NextPage() int {
	return max(1, min(v.TotalPages, v.State.Page+1))
}

// HasPrev reports whether the "previous" control is enabled.
func (v View) HasPrev() bool {
	return v.State.Page > 1
}

// HasNext reports whether the "next" control is enabled.
func (v View) HasNext() bool {
	return v.State.Page < v.TotalPages
}

package table

// Field names a sortable record attribute. The values match the JSON keys
// of models.RateRecord.
type Field string

const (
	FieldNone     Field = ""
	FieldID       Field = "id"
	FieldCurrency Field = "currency"
	FieldTicker   Field = "ticker"
	FieldTTBuy    Field = "tt_buy"
	FieldTTSell   Field = "tt_sell"
	FieldBillBuy  Field = "bill_buy"
	FieldBillSell Field = "bill_sell"
	FieldFTCBuy   Field = "ftc_buy"
	FieldFTCSell  Field = "ftc_sell"
	FieldCNBuy    Field = "cn_buy"
	FieldCNSell   Field = "cn_sell"
	FieldDate     Field = "date"
	FieldCategory Field = "category"
)

// ParseField maps a query value to a Field. Unknown names yield FieldNone.
func ParseField(s string) (Field, bool) {
	f := Field(s)
	switch f {
	case FieldID, FieldCurrency, FieldTicker,
		FieldTTBuy, FieldTTSell, FieldBillBuy, FieldBillSell,
		FieldFTCBuy, FieldFTCSell, FieldCNBuy, FieldCNSell,
		FieldDate, FieldCategory:
		return f, true
	}
	return FieldNone, false
}

// Direction is the sort order of the active field.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ParseDirection maps a query value to a Direction, defaulting to Asc.
func ParseDirection(s string) Direction {
	if Direction(s) == Desc {
		return Desc
	}
	return Asc
}

// ViewState is the user-controlled state of one table. It is a value:
// every transition returns a new state.
type ViewState struct {
	Search    string
	Sort      Field
	Direction Direction
	Page      int
}

// NewViewState returns the state of a freshly mounted table.
func NewViewState() ViewState {
	return ViewState{Direction: Asc, Page: 1}
}

// Sorted reports whether the user picked a sort field.
func (s ViewState) Sorted() bool {
	return s.Sort != FieldNone
}

// WithSearch sets the search term and goes back to the first page.
func (s ViewState) WithSearch(term string) ViewState {
	if term != s.Search {
		s.Page = 1
	}
	s.Search = term
	return s
}

// ToggleSort flips the direction when f is already active, otherwise
// activates f ascending. Either way the first page is shown.
func (s ViewState) ToggleSort(f Field) ViewState {
	if s.Sort == f {
		if s.Direction == Asc {
			s.Direction = Desc
		} else {
			s.Direction = Asc
		}
	} else {
		s.Sort = f
		s.Direction = Asc
	}
	s.Page = 1
	return s
}

// WithPage moves to page n; values below 1 clamp to 1.
func (s ViewState) WithPage(n int) ViewState {
	s.Page = max(n, 1)
	return s
}

package models

// Category is the transaction-size bucket a rate record belongs to.
type Category string

const (
	CategoryBelow10 Category = "below_10"
	Category10To20  Category = "10_to_20"
)

// Label returns the heading shown for the category.
func (c Category) Label() string {
	switch c {
	case CategoryBelow10:
		return "Transactions Below ₹10 Lakhs"
	case Category10To20:
		return "Transactions Between ₹10-20 Lakhs"
	default:
		return string(c)
	}
}

// CategorizedRateSet maps categories to their records. Categories keep
// the order in which they were first added and are only present when
// they hold at least one record. The zero value is an empty set.
type CategorizedRateSet struct {
	order  []Category
	groups map[Category][]RateRecord
}

// Add appends r to the group of its category.
func (s *CategorizedRateSet) Add(r RateRecord) {
	if s.groups == nil {
		s.groups = make(map[Category][]RateRecord)
	}
	if _, ok := s.groups[r.Category]; !ok {
		s.order = append(s.order, r.Category)
	}
	s.groups[r.Category] = append(s.groups[r.Category], r)
}

// Categories returns the populated categories in first-seen order.
func (s CategorizedRateSet) Categories() []Category {
	out := make([]Category, len(s.order))
	copy(out, s.order)
	return out
}

// Records returns the records of category c, nil when absent.
func (s CategorizedRateSet) Records(c Category) []RateRecord {
	return s.groups[c]
}

// Has reports whether category c holds any record.
func (s CategorizedRateSet) Has(c Category) bool {
	return len(s.groups[c]) > 0
}

// Len returns the number of populated categories.
func (s CategorizedRateSet) Len() int {
	return len(s.order)
}

// IsEmpty reports whether the set signals "no data for this date".
func (s CategorizedRateSet) IsEmpty() bool {
	return len(s.order) == 0
}

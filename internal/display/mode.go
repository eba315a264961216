package display

// Mode is the branch of the page rendered for the current state.
type Mode int

const (
	ModeInitializing Mode = iota
	ModeLoading
	ModeNoDateSelected
	ModeNoData
	ModeSingleCategory
	ModeMultiCategory
)

var modeNames = [...]string{
	ModeInitializing:   "initializing",
	ModeLoading:        "loading",
	ModeNoDateSelected: "no_date_selected",
	ModeNoData:         "no_data",
	ModeSingleCategory: "single_category",
	ModeMultiCategory:  "multi_category",
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "unknown"
	}
	return modeNames[m]
}

// MarshalText encodes the mode by name.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// ShowsTables reports whether category tables are drawn.
func (m Mode) ShowsTables() bool {
	return m == ModeSingleCategory || m == ModeMultiCategory
}

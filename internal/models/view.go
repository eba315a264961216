package models

// RateRow is a rate record with its values formatted for display.
// swagger:model RateRow
type RateRow struct {
	ID       int64  `json:"id" example:"1042"`
	Flag     string `json:"flag" example:"🇺🇸"`
	Currency string `json:"currency" example:"UNITED STATES DOLLAR"`
	Ticker   string `json:"ticker" example:"USD"`
	Priority bool   `json:"priority" example:"true"`
	TTBuy    string `json:"tt_buy" example:"83.12"`
	TTSell   string `json:"tt_sell" example:"83.97"`
	BillBuy  string `json:"bill_buy" example:"83.05"`
	BillSell string `json:"bill_sell" example:"84.12"`
	FTCBuy   string `json:"ftc_buy" example:"82.90"`
	FTCSell  string `json:"ftc_sell" example:"84.20"`
	CNBuy    string `json:"cn_buy" example:"82.30"`
	CNSell   string `json:"cn_sell" example:"84.80"`
	Date     string `json:"date" example:"15-03-2024"`
}

// PanelResponse is one category table.
// swagger:model PanelResponse
type PanelResponse struct {
	Category   Category  `json:"category" example:"below_10"`
	Label      string    `json:"label" example:"Transactions Below ₹10 Lakhs"`
	Active     bool      `json:"active" example:"true"`
	Sort       string    `json:"sort,omitempty" example:"tt_buy"`
	Direction  string    `json:"direction" example:"asc"`
	Page       int       `json:"page" example:"1"`
	TotalPages int       `json:"total_pages" example:"3"`
	TotalRows  int       `json:"total_rows" example:"24"`
	Empty      string    `json:"empty_message,omitempty" example:"No results found for your search."`
	Rows       []RateRow `json:"rows"`
}

// ViewResponse is the JSON rendering of the archive page.
// swagger:model ViewResponse
type ViewResponse struct {
	// One of initializing, loading, no_date_selected, no_data, single_category, multi_category
	// example: multi_category
	Mode string `json:"mode" example:"multi_category"`

	// Selected date, yyyy-MM-dd
	// example: 2024-03-15
	Date string `json:"date,omitempty" example:"2024-03-15"`

	MinDate        string          `json:"min_date" example:"2022-01-01"`
	MaxDate        string          `json:"max_date" example:"2024-03-15"`
	Search         string          `json:"search,omitempty" example:"dollar"`
	Message        string          `json:"message,omitempty" example:"No forex data available for the selected date."`
	ActiveTab      Category        `json:"active_tab,omitempty" example:"below_10"`
	ShowBranchNote bool            `json:"show_branch_note" example:"false"`
	Panels         []PanelResponse `json:"panels"`
}

// HealthResponse is returned by the health check.
// swagger:model HealthResponse
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

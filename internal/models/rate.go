package models

// RateRecord is one currency's published rates for a date and category.
// swagger:model RateRecord
type RateRecord struct {
	// Row key
	// example: 1042
	ID int64 `json:"id" example:"1042"`

	// Currency display name
	// example: UNITED STATES DOLLAR
	Currency string `json:"currency" example:"UNITED STATES DOLLAR"`

	// Three or four letter code
	// example: USD
	Ticker string `json:"ticker" example:"USD"`

	TTBuy    float64 `json:"tt_buy" example:"83.12"`
	TTSell   float64 `json:"tt_sell" example:"83.97"`
	BillBuy  float64 `json:"bill_buy" example:"83.05"`
	BillSell float64 `json:"bill_sell" example:"84.12"`
	FTCBuy   float64 `json:"ftc_buy" example:"82.90"`
	FTCSell  float64 `json:"ftc_sell" example:"84.20"`
	CNBuy    float64 `json:"cn_buy" example:"82.30"`
	CNSell   float64 `json:"cn_sell" example:"84.80"`

	// Publication date, dd-MM-yyyy
	// example: 15-03-2024
	Date string `json:"date" example:"15-03-2024"`

	Category Category `json:"category" example:"below_10"`
}

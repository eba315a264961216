// Package flags maps currency tickers to the flag of the issuing country.
package flags

// Fallback is shown for tickers without a known country.
const Fallback = "?"

var countryByTicker = map[string]string{
	"USD": "US",
	"EUR": "LU",
	"JPY": "JP",
	"GBP": "GB",
	"AUD": "AU",
	"CAD": "CA",
	"CNY": "CN",
	"SEK": "SE",
	"NZD": "NZ",
	"AED": "AE",
	"BDT": "BD",
	"BHD": "BH",
	"CHF": "CH",
	"DKK": "DK",
	"HKD": "HK",
	"KES": "KE",
	"KRW": "KR",
	"KWD": "KW",
	"LKR": "LK",
	"MYR": "MY",
	"NOK": "NO",
	"OMR": "OM",
	"PKR": "PK",
	"QAR": "QA",
	"RUB": "RU",
	"SAR": "SA",
	"SGD": "SG",
	"THB": "TH",
	"TRY": "TR",
	"ZAR": "ZA",
}

// CountryCode returns the ISO 3166 alpha-2 code for ticker.
func CountryCode(ticker string) (string, bool) {
	code, ok := countryByTicker[ticker]
	return code, ok
}

// Flag returns the regional-indicator emoji for ticker, or Fallback.
func Flag(ticker string) string {
	code, ok := CountryCode(ticker)
	if !ok {
		return Fallback
	}
	r := make([]rune, 0, 2)
	for _, c := range code {
		r = append(r, 0x1F1E6+(c-'A'))
	}
	return string(r)
}

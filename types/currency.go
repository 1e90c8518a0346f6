package types

// RateTable maps an ISO currency code to a multiplier relative to the base
// currency, such that amountInTarget = amountInBase * rate.
type RateTable map[string]float64

// CurrencyInfo describes one supported display currency.
type CurrencyInfo struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// SupportedCurrencies is the fixed static list of display currencies. It is
// used only for symbol lookup, not for validating conversion correctness.
var SupportedCurrencies = []CurrencyInfo{
	{Code: "USD", Name: "United States Dollar", Symbol: "$"},
	{Code: "EUR", Name: "Euro", Symbol: "€"},
	{Code: "JPY", Name: "Japanese Yen", Symbol: "¥"},
	{Code: "GBP", Name: "British Pound", Symbol: "£"},
	{Code: "AUD", Name: "Australian Dollar", Symbol: "A$"},
	{Code: "CAD", Name: "Canadian Dollar", Symbol: "C$"},
	{Code: "CHF", Name: "Swiss Franc", Symbol: "CHF"},
	{Code: "CNY", Name: "Chinese Yuan", Symbol: "¥"},
	{Code: "INR", Name: "Indian Rupee", Symbol: "₹"},
	{Code: "PKR", Name: "Pakistani Rupee", Symbol: "₨"},
}

// CurrencySymbol returns the display symbol registered for a currency code,
// defaulting to the USD symbol for unknown codes.
func CurrencySymbol(code string) string {
	for _, c := range SupportedCurrencies {
		if c.Code == code {
			return c.Symbol
		}
	}
	return "$"
}

// DestinationSuggestions are the default destination prompts surfaced by
// clients on the landing page.
var DestinationSuggestions = []string{
	"Paris, France",
	"Kyoto, Japan",
	"Rome, Italy",
	"Bali, Indonesia",
	"New York, USA",
	"Istanbul, Turkey",
}

package domain

import "sort"

// Currency represents a 3-letter ISO currency code (e.g., "USD", "EUR").
type Currency string

// Currencies maps the full currency names published in the CNB daily fixing
// to their ISO codes. The catalog is fixed; the bank quotes exactly this set.
var Currencies = map[string]Currency{
	"Australian dollar":      "AUD",
	"Brazilian real":         "BRL",
	"Bulgarian lev":          "BGN",
	"Chinese yuan renminbi":  "CNY",
	"Danish krone":           "DKK",
	"Euro":                   "EUR",
	"Philippine peso":        "PHP",
	"Hong Kong dollar":       "HKD",
	"Croatian kuna":          "HRK",
	"Indian rupee":           "INR",
	"Indonesian rupiah":      "IDR",
	"Icelandic krona":        "ISK",
	"Israeli shekel":         "ILS",
	"Japanese yen":           "JPY",
	"South African rand":     "ZAR",
	"Canadian dollar":        "CAD",
	"South Korean won":       "KRW",
	"Hungarian forint":       "HUF",
	"Malaysian ringgit":      "MYR",
	"Mexican peso":           "MXN",
	"Special drawing rights": "XDR",
	"Norwegian krone":        "NOK",
	"New Zealand dollar":     "NZD",
	"Polish zloty":           "PLN",
	"Romanian leu":           "RON",
	"Singapore dollar":       "SGD",
	"Swedish krona":          "SEK",
	"Swiss franc":            "CHF",
	"Thai baht":              "THB",
	"Turkish lira":           "TRY",
	"US dollar":              "USD",
	"Pound sterling":         "GBP",
}

// currencyNames is the reverse lookup, built once from Currencies.
var currencyNames = func() map[Currency]string {
	names := make(map[Currency]string, len(Currencies))
	for name, code := range Currencies {
		names[code] = name
	}
	return names
}()

// IsKnown checks if a currency code appears in the embedded catalog.
func (c Currency) IsKnown() bool {
	_, ok := currencyNames[c]
	return ok
}

// Name returns the full currency name for a known code.
func (c Currency) Name() (string, bool) {
	name, ok := currencyNames[c]
	return name, ok
}

// CurrencyOption is one entry of the list-currencies sync action output.
type CurrencyOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ListCurrencies returns the catalog as label/value pairs ordered by label.
func ListCurrencies() []CurrencyOption {
	options := make([]CurrencyOption, 0, len(Currencies))
	for name, code := range Currencies {
		options = append(options, CurrencyOption{Label: name, Value: string(code)})
	}
	sort.Slice(options, func(i, j int) bool {
		return options[i].Label < options[j].Label
	})
	return options
}

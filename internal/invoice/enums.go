package invoice

import "strings"

// Currency is an ISO 4217 currency code accepted by the generator
type Currency string

const (
	EUR Currency = "EUR"
	USD Currency = "USD"
	GBP Currency = "GBP"
	PLN Currency = "PLN"
	CHF Currency = "CHF"
	CAD Currency = "CAD"
	AUD Currency = "AUD"
	JPY Currency = "JPY"
	CZK Currency = "CZK"
	SEK Currency = "SEK"
	NOK Currency = "NOK"
	DKK Currency = "DKK"
	HUF Currency = "HUF"
	RON Currency = "RON"
	BGN Currency = "BGN"
	UAH Currency = "UAH"
	TRY Currency = "TRY"
	INR Currency = "INR"
	CNY Currency = "CNY"
	BRL Currency = "BRL"
	MXN Currency = "MXN"
	ZAR Currency = "ZAR"
	NZD Currency = "NZD"
	SGD Currency = "SGD"
	HKD Currency = "HKD"
	ILS Currency = "ILS"
	RUB Currency = "RUB"
)

var currencies = []Currency{
	EUR, USD, GBP, PLN, CHF, CAD, AUD, JPY, CZK, SEK, NOK, DKK, HUF, RON,
	BGN, UAH, TRY, INR, CNY, BRL, MXN, ZAR, NZD, SGD, HKD, ILS, RUB,
}

// Currencies returns every supported currency
func Currencies() []Currency {
	out := make([]Currency, len(currencies))
	copy(out, currencies)
	return out
}

// IsSupported reports whether c is one of the supported currency codes
func (c Currency) IsSupported() bool {
	for _, s := range currencies {
		if s == c {
			return true
		}
	}
	return false
}

func (c Currency) String() string {
	return string(c)
}

// Template selects one of the layout pipelines
type Template string

const (
	TemplateDefault Template = "default"
	TemplateStripe  Template = "stripe"
)

// ParseTemplate maps a template name to a Template. Unknown or empty names
// select the default template.
func ParseTemplate(s string) Template {
	switch Template(strings.ToLower(strings.TrimSpace(s))) {
	case TemplateStripe:
		return TemplateStripe
	default:
		return TemplateDefault
	}
}

// DefaultDateFormat is used when the input does not pick a date format
const DefaultDateFormat = "YYYY-MM-DD"

var dateFormats = []string{
	"YYYY-MM-DD",
	"DD/MM/YYYY",
	"MM/DD/YYYY",
	"DD.MM.YYYY",
	"DD-MM-YYYY",
	"YYYY.MM.DD",
	"YYYY/MM/DD",
	"D MMMM YYYY",
	"MMMM D, YYYY",
	"D MMM YYYY",
	"MMM D, YYYY",
	"DD MMMM YYYY",
	"dddd, D MMMM YYYY",
	"MMMM DD, YYYY",
	"DD MMM YYYY",
}

// DateFormats returns the date patterns the generator accepts
func DateFormats() []string {
	out := make([]string, len(dateFormats))
	copy(out, dateFormats)
	return out
}

// IsDateFormat reports whether pattern is one of the accepted date patterns
func IsDateFormat(pattern string) bool {
	for _, f := range dateFormats {
		if f == pattern {
			return true
		}
	}
	return false
}

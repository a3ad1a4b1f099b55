// Package format turns invoice values into the strings the templates print.
// Every function takes its language explicitly; nothing here keeps locale state
// between calls.
package format

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/gompdf/invoicepdf/internal/i18n"
	"github.com/gompdf/invoicepdf/internal/invoice"
)

// Sentinel is printed in place of values that cannot be formatted
const Sentinel = "-/-"

// some CLDR locales group digits with a narrow no-break space that the
// bundled fonts do not carry
var spaces = strings.NewReplacer("\u202f", "\u00a0")

// FormatCurrency renders amount with the currency symbol placed according to lang
func FormatCurrency(amount float64, cur invoice.Currency, lang i18n.Language) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Sentinel
	}
	entry := i18n.MustLookup(lang)
	p := message.NewPrinter(entry.Tag)

	scale := 2
	unit, err := currency.ParseISO(string(cur))
	symbol := string(cur)
	if err == nil {
		scale, _ = currency.Standard.Rounding(unit)
		symbol = p.Sprint(currency.Symbol(unit))
	}

	// the sign follows the rounded value so tiny negatives print as zero
	rounded := decimal.NewFromFloat(amount).Round(int32(scale))
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}
	digits := p.Sprint(number.Decimal(rounded.InexactFloat64(), number.Scale(scale)))

	out := strings.NewReplacer("{symbol}", symbol, "{amount}", digits).Replace(entry.CurrencyPattern)
	return sign + spaces.Replace(out)
}

// FormatNumber renders v grouped with two fraction digits
func FormatNumber(v float64, lang i18n.Language) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Sentinel
	}
	p := message.NewPrinter(lang.Tag())
	return spaces.Replace(p.Sprint(number.Decimal(v, number.Scale(2))))
}

// FormatQuantity renders v without trailing fraction zeros
func FormatQuantity(v float64, lang i18n.Language) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Sentinel
	}
	p := message.NewPrinter(lang.Tag())
	return spaces.Replace(p.Sprint(number.Decimal(v, number.MaxFractionDigits(4))))
}

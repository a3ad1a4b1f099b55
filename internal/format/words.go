package format

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/gompdf/invoicepdf/internal/i18n"
	"github.com/gompdf/invoicepdf/internal/invoice"
	"github.com/gompdf/invoicepdf/internal/words"
)

// AmountInWords spells the integer part of amount rounded to cents, so it
// always agrees with FractionalPart. Negative and non-finite amounts give
// Sentinel. When spelling fails the plain integer is returned and the
// failure goes to reporter.
func AmountInWords(ctx context.Context, amount float64, lang i18n.Language, reporter ErrorReporter) string {
	if !validAmount(amount) {
		return Sentinel
	}
	whole := cents(amount).Floor()
	plain := whole.String()

	var (
		s   string
		err error
	)
	if whole.GreaterThanOrEqual(decimal.NewFromInt(words.Limit)) {
		err = fmt.Errorf("%w: %s", words.ErrOutOfRange, plain)
	} else {
		s, err = words.Spell(whole.IntPart(), lang)
	}
	if err != nil {
		if reporter != nil {
			reporter.Report(ctx, fmt.Errorf("failed to spell amount: %w", err), map[string]string{
				"component": "amount_in_words",
				"language":  string(lang),
			})
		}
		return plain
	}
	return s
}

// FractionalPart returns the two digit cents of total, zero padded
func FractionalPart(total float64) string {
	if !validAmount(total) {
		return Sentinel
	}
	d := cents(total)
	return fmt.Sprintf("%02d", d.Sub(d.Floor()).Shift(2).IntPart())
}

func cents(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

func validAmount(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// FormatVAT prints numeric rates as a percentage and codes verbatim
func FormatVAT(rate invoice.TaxRate) string {
	if !rate.IsNumeric() {
		return rate.Code
	}
	return strconv.FormatFloat(rate.Percent, 'f', -1, 64) + "%"
}

// TaxLabel returns text, or the default tax name when text is blank
func TaxLabel(text string) string {
	if s := strings.TrimSpace(text); s != "" {
		return s
	}
	return invoice.DefaultTaxLabel
}

// Label substitutes the {tax} placeholder of a caption
func Label(caption, tax string) string {
	return strings.ReplaceAll(caption, "{tax}", TaxLabel(tax))
}

package format

import (
	"context"

	"github.com/gompdf/invoicepdf/internal/i18n"
	"github.com/gompdf/invoicepdf/internal/invoice"
)

// Formatter binds the formatting functions to one language, tax label and reporter
type Formatter struct {
	ctx      context.Context
	lang     i18n.Language
	tax      string
	reporter ErrorReporter
}

// New returns a Formatter for lang. A nil reporter discards reports.
func New(ctx context.Context, lang i18n.Language, tax string, reporter ErrorReporter) *Formatter {
	if ctx == nil {
		ctx = context.Background()
	}
	if reporter == nil {
		reporter = NopReporter{}
	}
	return &Formatter{ctx: ctx, lang: lang, tax: TaxLabel(tax), reporter: reporter}
}

func (f *Formatter) Language() i18n.Language {
	return f.lang
}

func (f *Formatter) Currency(amount float64, cur invoice.Currency) string {
	return FormatCurrency(amount, cur, f.lang)
}

func (f *Formatter) Number(v float64) string {
	return FormatNumber(v, f.lang)
}

func (f *Formatter) Quantity(v float64) string {
	return FormatQuantity(v, f.lang)
}

func (f *Formatter) Date(d invoice.Date, pattern string) string {
	return FormatDate(d, pattern, f.lang)
}

func (f *Formatter) AmountInWords(amount float64) string {
	return AmountInWords(f.ctx, amount, f.lang, f.reporter)
}

// Label resolves the {tax} placeholder with the bound tax name
func (f *Formatter) Label(caption string) string {
	return Label(caption, f.tax)
}

func (f *Formatter) Tax() string {
	return f.tax
}

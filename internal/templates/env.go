// Package templates turns invoice data into a layout tree. Each template is
// a pure function of the data and an Env; nothing here measures text or
// knows about pages beyond the PageSpec it copies into the document.
package templates

import (
	"context"

	"github.com/gompdf/invoicepdf/internal/format"
	"github.com/gompdf/invoicepdf/internal/i18n"
	"github.com/gompdf/invoicepdf/internal/invoice"
	"github.com/gompdf/invoicepdf/internal/layout"
)

const (
	// AttributionName is the product name in the footer link
	AttributionName = "invoicepdf"
	// DefaultAttributionURL is where the footer link points
	DefaultAttributionURL = "https://github.com/gompdf/invoicepdf"
)

// DefaultPage is A4 portrait with 40pt margins
var DefaultPage = layout.PageSpec{
	Width:   595.28,
	Height:  841.89,
	Margins: layout.Edges{Top: 40, Right: 40, Bottom: 30, Left: 40},
}

// Env carries everything a template needs besides the invoice data
type Env struct {
	Format         *format.Formatter
	Labels         i18n.Labels
	Page           layout.PageSpec
	AttributionURL string
}

// NewEnv builds the environment for rendering d in its own language
func NewEnv(ctx context.Context, d *invoice.Data, reporter format.ErrorReporter) (Env, error) {
	entry, err := i18n.Lookup(d.Language)
	if err != nil {
		return Env{}, err
	}
	return Env{
		Format:         format.New(ctx, d.Language, d.TaxLabel(), reporter),
		Labels:         entry.Labels,
		Page:           DefaultPage,
		AttributionURL: DefaultAttributionURL,
	}, nil
}

// L resolves the {tax} placeholder of a caption
func (e Env) L(caption string) string {
	return e.Format.Label(caption)
}

func (e Env) money(v float64, cur invoice.Currency) string {
	return e.Format.Currency(v, cur)
}

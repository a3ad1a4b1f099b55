package templates

import (
	"github.com/gompdf/invoicepdf/internal/invoice"
	"github.com/gompdf/invoicepdf/internal/layout"
)

// Pipeline lays out one invoice
type Pipeline interface {
	Build(d *invoice.Data, env Env) *layout.Document
}

// Select returns the pipeline for t. Unknown values get the default template.
func Select(t invoice.Template) Pipeline {
	switch t {
	case invoice.TemplateStripe:
		return Stripe{}
	case invoice.TemplateDefault:
		return Default{}
	default:
		return Default{}
	}
}

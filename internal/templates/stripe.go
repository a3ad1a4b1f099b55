package templates

import (
	"strings"

	"github.com/gompdf/invoicepdf/internal/format"
	"github.com/gompdf/invoicepdf/internal/invoice"
	"github.com/gompdf/invoicepdf/internal/layout"
)

// LogoWidth is the printed width of the Stripe header logo
const LogoWidth = 80.0

// Stripe is the minimal template modelled on Stripe invoices: a large due
// line, a short items table and a right-aligned totals block.
type Stripe struct{}

func (Stripe) Build(d *invoice.Data, env Env) *layout.Document {
	return &layout.Document{
		Meta: meta(d, env),
		Page: env.Page,
		Children: compact([]layout.Node{
			stripeHeader(d, env),
			stripeMeta(d, env),
			parties(
				partyBlock("", d.Seller, env),
				partyBlock(env.Labels.BillTo, d.Buyer, env),
			),
			stripeDue(d, env),
			stripeItems(d, env),
			stripeTotals(d, env),
			notesBlock(d, env),
			qrBlock(d),
			footer(d, env),
		}),
	}
}

// stripeHeader puts the title alone at full width, or the title and the
// logo on opposite sides when a logo is set.
func stripeHeader(d *invoice.Data, env Env) *layout.View {
	title := layout.Style{FontSize: 22, Bold: true}
	if strings.TrimSpace(d.Logo) == "" {
		v := column(layout.Style{MarginBottom: 16}, txt(env.Labels.Invoice, title))
		v.Region = layout.RegionHeader
		return v
	}

	title.Width = layout.WidthAuto
	v := row(12, layout.Style{MarginBottom: 16},
		txt(env.Labels.Invoice, title),
		&layout.Image{Src: d.Logo, Width: LogoWidth},
	)
	v.Region = layout.RegionHeader
	v.Justify = layout.JustifyBetween
	return v
}

func stripeMeta(d *invoice.Data, env Env) *layout.View {
	line := func(label, value string) layout.Node {
		return row(0, layout.Style{},
			txt(label, layout.Style{FontSize: 8, Color: mutedColor, Width: "110"}),
			txt(value, body),
		)
	}
	v := column(layout.Style{MarginBottom: 16})
	if n := strings.TrimSpace(d.InvoiceNumber.Value); n != "" {
		v.Children = append(v.Children, line(env.Labels.InvoiceNumber, n))
	}
	v.Children = append(v.Children,
		line(env.Labels.DateOfIssue, env.Format.Date(d.DateOfIssue, format.StripeDuePattern)),
		line(env.Labels.DateDue, env.Format.Date(d.PaymentDue, format.StripeDuePattern)),
	)
	if d.InvoiceType.ShouldRender() {
		v.Children = append(v.Children, line("", d.InvoiceType.Value))
	}
	v.Region = layout.RegionHeader
	return v
}

func stripeDue(d *invoice.Data, env Env) *layout.View {
	v := column(layout.Style{MarginBottom: 16},
		txt(dueLine(d, env, format.StripeDuePattern), layout.Style{FontSize: 14, Bold: true}),
	)
	if u := strings.TrimSpace(d.StripePayOnlineURL); u != "" {
		v.Children = append(v.Children, &layout.Link{
			Content: env.Labels.PayOnline,
			URL:     u,
			Style:   layout.Style{FontSize: 9, Color: accentColor, Underline: true, MarginTop: 4},
		})
	}
	v.Region = layout.RegionPayment
	return v
}

func stripeItems(d *invoice.Data, env Env) *layout.Table {
	cur := d.Currency
	right := func(s string) layout.Nodes { return layout.Nodes{txt(s, body)} }
	cols := []col{
		{
			title: env.Labels.Description, flex: 3, show: true,
			cell: func(_ int, it invoice.Item) layout.Nodes { return describe(it.Name, d, env) },
		},
		{
			title: env.Labels.Qty, width: "40", align: layout.AlignRight, show: true,
			cell: func(_ int, it invoice.Item) layout.Nodes { return right(env.Format.Quantity(it.Amount)) },
		},
		{
			title: env.Labels.UnitPrice, flex: 1, align: layout.AlignRight, show: true,
			cell: func(_ int, it invoice.Item) layout.Nodes { return right(env.money(it.NetPrice, cur)) },
		},
		{
			title: env.L(env.Labels.Tax), width: "40", align: layout.AlignRight, show: d.AnyVATVisible(),
			cell: func(_ int, it invoice.Item) layout.Nodes { return right(format.FormatVAT(it.VAT)) },
		},
		{
			title: env.Labels.LineAmount, flex: 1, align: layout.AlignRight, show: true,
			cell: func(_ int, it invoice.Item) layout.Nodes { return right(env.money(it.NetAmount, cur)) },
		},
	}
	return itemsTable(cols, d.Items, tableStyle{
		header: layout.Style{FontSize: 7, Color: mutedColor},
		row: layout.Style{
			BorderBottom: 0.5,
			BorderColor:  ruleColor,
			Padding:      layout.Edges{Top: 5, Bottom: 5, Left: 4},
		},
		reserve: rowReserve,
	}, "")
}

// stripeTotals is a right-aligned block of caption and amount pairs
func stripeTotals(d *invoice.Data, env Env) *layout.View {
	cur := d.Currency
	line := func(label, value string, st layout.Style) layout.Node {
		return row(8, layout.Style{BorderTop: 0.5, BorderColor: ruleColor, Padding: layout.Edges{Top: 4, Bottom: 4}},
			txt(label, st),
			txt(value, aligned(st, layout.AlignRight)),
		)
	}

	subtotal := sumItems(d.Items, netAmount)
	block := column(layout.Style{Width: "50%"},
		line(env.Labels.Subtotal, env.money(subtotal, cur), body),
	)
	if d.AnyVATVisible() {
		block.Children = append(block.Children, line(env.L(env.Labels.TotalExcludingTax), env.money(subtotal, cur), body))
		for _, g := range vatSummary(d.Items) {
			label := env.Format.Tax() + " (" + format.FormatVAT(g.Rate) + ")"
			block.Children = append(block.Children, line(label, env.money(g.VAT.InexactFloat64(), cur), body))
		}
	}
	block.Children = append(block.Children,
		line(env.Labels.Total, env.money(d.Total, cur), body),
		line(env.Labels.AmountDue, env.money(d.Total, cur), bold),
	)

	v := row(0, layout.Style{MarginBottom: 12}, block)
	v.Region = layout.RegionTotals
	v.Justify = layout.JustifyEnd
	return v
}

package templates

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/gompdf/invoicepdf/internal/format"
	"github.com/gompdf/invoicepdf/internal/invoice"
	"github.com/gompdf/invoicepdf/internal/layout"
)

// Default is the classic European VAT invoice: full item columns, a VAT
// summary, amount in words and signature lines.
type Default struct{}

func (Default) Build(d *invoice.Data, env Env) *layout.Document {
	return &layout.Document{
		Meta: meta(d, env),
		Page: env.Page,
		Children: compact([]layout.Node{
			defaultHeader(d, env),
			parties(
				partyBlock(env.Labels.Seller, d.Seller, env),
				partyBlock(env.Labels.Buyer, d.Buyer, env),
			),
			defaultItems(d, env),
			defaultPayment(d, env),
			defaultVATSummary(d, env),
			defaultTotals(d, env),
			notesBlock(d, env),
			signatures(d, env),
			qrBlock(d),
			footer(d, env),
		}),
	}
}

func defaultHeader(d *invoice.Data, env Env) *layout.View {
	left := column(layout.Style{},
		txt(invoiceNumber(d, env.Labels.InvoiceNumberOf), layout.Style{FontSize: 14, Bold: true}),
	)
	if d.InvoiceType.ShouldRender() {
		left.Children = append(left.Children, txt(d.InvoiceType.Value, layout.Style{FontSize: 9, MarginTop: 2}))
	}

	right := aligned(body, layout.AlignRight)
	dates := column(layout.Style{Width: "45%"},
		txt(labeled(env.Labels.DateOfIssue, env.Format.Date(d.DateOfIssue, d.DateFormat)), right),
		txt(labeled(env.Labels.DateOfService, env.Format.Date(d.DateOfService, d.DateFormat)), right),
	)

	v := row(12, layout.Style{MarginBottom: 16}, left, dates)
	v.Region = layout.RegionHeader
	v.Justify = layout.JustifyBetween
	return v
}

func defaultItems(d *invoice.Data, env Env) *layout.Table {
	items := d.Items
	cur := d.Currency
	money := func(v float64) layout.Nodes { return layout.Nodes{txt(env.money(v, cur), body)} }
	plain := func(s string) layout.Nodes { return layout.Nodes{txt(s, body)} }
	head := layout.Style{FontSize: 7, Bold: true}

	cols := []col{
		{
			title: env.Labels.ItemNo, width: "22",
			show: anyItem(items, func(it invoice.Item) bool { return it.NumberIsVisible }),
			cell: func(i int, _ invoice.Item) layout.Nodes { return plain(strconv.Itoa(i + 1)) },
		},
		{
			title: env.Labels.NameOfGoods, flex: 3,
			show: anyItem(items, func(it invoice.Item) bool { return it.NameIsVisible }),
			cell: func(_ int, it invoice.Item) layout.Nodes { return describe(it.Name, d, env) },
		},
		{
			title: env.Labels.TypeOfGTU, width: "34",
			show: anyItem(items, func(it invoice.Item) bool { return it.TypeOfGTUIsVisible }),
			cell: func(_ int, it invoice.Item) layout.Nodes { return plain(it.TypeOfGTU) },
		},
		{
			title: env.Labels.Amount, width: "40", align: layout.AlignRight,
			show: anyItem(items, func(it invoice.Item) bool { return it.AmountIsVisible }),
			cell: func(_ int, it invoice.Item) layout.Nodes { return plain(env.Format.Quantity(it.Amount)) },
		},
		{
			title: env.Labels.Unit, width: "34",
			show: anyItem(items, func(it invoice.Item) bool { return it.UnitIsVisible }),
			cell: func(_ int, it invoice.Item) layout.Nodes { return plain(it.Unit) },
		},
		{
			title: env.Labels.NetPrice, flex: 1.2, align: layout.AlignRight,
			show: anyItem(items, func(it invoice.Item) bool { return it.NetPriceIsVisible }),
			cell: func(_ int, it invoice.Item) layout.Nodes { return money(it.NetPrice) },
		},
		{
			title: env.L(env.Labels.VAT), width: "34", align: layout.AlignRight,
			show: d.AnyVATVisible(),
			cell: func(_ int, it invoice.Item) layout.Nodes { return plain(format.FormatVAT(it.VAT)) },
		},
		{
			title: env.Labels.NetAmount, flex: 1.2, align: layout.AlignRight,
			show:  anyItem(items, func(it invoice.Item) bool { return it.NetAmountIsVisible }),
			cell:  func(_ int, it invoice.Item) layout.Nodes { return money(it.NetAmount) },
			total: func() string { return env.money(sumItems(items, netAmount), cur) },
		},
		{
			title: env.L(env.Labels.VATAmount), flex: 1.2, align: layout.AlignRight,
			show:  anyItem(items, func(it invoice.Item) bool { return it.VATAmountIsVisible }),
			cell:  func(_ int, it invoice.Item) layout.Nodes { return money(it.VATAmount) },
			total: func() string { return env.money(sumItems(items, vatAmount), cur) },
		},
		{
			title: env.Labels.PreTaxAmount, flex: 1.2, align: layout.AlignRight,
			show:  anyItem(items, func(it invoice.Item) bool { return it.PreTaxAmountIsVisible }),
			cell:  func(_ int, it invoice.Item) layout.Nodes { return money(it.PreTaxAmount) },
			total: func() string { return env.money(sumItems(items, preTaxAmount), cur) },
		},
	}

	return itemsTable(cols, items, tableStyle{
		header: head,
		row: layout.Style{
			BorderBottom: 0.5,
			BorderColor:  ruleColor,
			Padding:      layout.Edges{Top: 3, Right: 2, Bottom: 3, Left: 4},
		},
		reserve: rowReserve,
	}, env.Labels.Sum)
}

func netAmount(it invoice.Item) float64    { return it.NetAmount }
func vatAmount(it invoice.Item) float64    { return it.VATAmount }
func preTaxAmount(it invoice.Item) float64 { return it.PreTaxAmount }

func defaultPayment(d *invoice.Data, env Env) *layout.View {
	v := column(layout.Style{MarginBottom: 12})
	v.Region = layout.RegionPayment
	if d.PaymentMethod.ShouldRender() {
		v.Children = append(v.Children, txt(labeled(env.Labels.PaymentMethod, d.PaymentMethod.Value), body))
	}
	v.Children = append(v.Children, txt(labeled(env.Labels.PaymentDate, env.Format.Date(d.PaymentDue, d.DateFormat)), body))
	return v
}

// defaultVATSummary is nil when switched off or when no item shows a tax rate
func defaultVATSummary(d *invoice.Data, env Env) layout.Node {
	if !d.VATTableSummaryIsVisible || !d.AnyVATVisible() {
		return nil
	}
	cur := d.Currency
	cell := func(s string, st layout.Style) layout.TableCell {
		return layout.TableCell{Children: layout.Nodes{txt(s, aligned(st, layout.AlignRight))}, Style: layout.Style{Padding: layout.Edges{Right: 4}}}
	}
	money := func(v decimal.Decimal, st layout.Style) layout.TableCell {
		return cell(env.money(v.InexactFloat64(), cur), st)
	}
	rowStyle := layout.Style{BorderBottom: 0.5, BorderColor: ruleColor, Padding: layout.Edges{Top: 3, Bottom: 3}}
	head := layout.Style{FontSize: 7, Bold: true}

	t := &layout.Table{
		Region:  layout.RegionSummary,
		Columns: []layout.TableCol{{Flex: 1}, {Flex: 1}, {Flex: 1}, {Flex: 1}},
		Header: layout.TableRow{
			Style: layout.Style{Background: headerFill, Padding: layout.Edges{Top: 4, Bottom: 4}},
			Cells: []layout.TableCell{
				cell(env.L(env.Labels.VATRate), head),
				cell(env.Labels.Net, head),
				cell(env.L(env.Labels.VAT), head),
				cell(env.Labels.PreTax, head),
			},
		},
		Style: layout.Style{Width: "60%"},
	}

	var net, vat, pre decimal.Decimal
	for _, g := range vatSummary(d.Items) {
		t.Rows = append(t.Rows, layout.TableRow{
			KeepTogether: true,
			Style:        rowStyle,
			Cells:        []layout.TableCell{cell(format.FormatVAT(g.Rate), body), money(g.Net, body), money(g.VAT, body), money(g.PreTax, body)},
		})
		net, vat, pre = net.Add(g.Net), vat.Add(g.VAT), pre.Add(g.PreTax)
	}
	t.Rows = append(t.Rows, layout.TableRow{
		KeepTogether: true,
		Style:        rowStyle,
		Cells:        []layout.TableCell{cell(env.Labels.Total, bold), money(net, bold), money(vat, bold), money(pre, bold)},
	})

	v := row(0, layout.Style{MarginBottom: 12}, t)
	v.Region = layout.RegionSummary
	v.Justify = layout.JustifyEnd
	return v
}

func defaultTotals(d *invoice.Data, env Env) *layout.View {
	cur := d.Currency
	left := decimal.NewFromFloat(d.Total).Sub(decimal.NewFromFloat(d.Paid)).InexactFloat64()
	words := env.Format.AmountInWords(d.Total) + " " + string(cur) + " " + format.FractionalPart(d.Total) + "/100"

	v := column(layout.Style{MarginBottom: 12},
		txt(labeled(env.Labels.ToPay, env.money(d.Total, cur)), layout.Style{FontSize: 11, Bold: true, MarginBottom: 2}),
		txt(labeled(env.Labels.Paid, env.money(d.Paid, cur)), body),
		txt(labeled(env.Labels.LeftToPay, env.money(left, cur)), body),
		txt(labeled(env.Labels.AmountInWords, words), body),
	)
	v.Region = layout.RegionTotals
	return v
}

// signatures is nil when both signature lines are switched off
func signatures(d *invoice.Data, env Env) layout.Node {
	line := func(caption string) layout.Node {
		return column(
			layout.Style{Flex: 1, BorderTop: 0.5, BorderColor: mutedColor, Padding: layout.Edges{Top: 4}},
			txt(caption, layout.Style{FontSize: 7, Color: mutedColor, Align: layout.AlignCenter}),
		)
	}
	var lines []layout.Node
	if d.PersonAuthorizedToReceiveIsVisible {
		lines = append(lines, line(env.Labels.PersonAuthorizedToReceive))
	}
	if d.PersonAuthorizedToIssueIsVisible {
		lines = append(lines, line(env.Labels.PersonAuthorizedToIssue))
	}
	if len(lines) == 0 {
		return nil
	}
	v := row(60, layout.Style{MarginTop: 40}, lines...)
	v.Region = layout.RegionSignatures
	return v
}

package templates

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/gompdf/invoicepdf/internal/format"
	"github.com/gompdf/invoicepdf/internal/invoice"
	"github.com/gompdf/invoicepdf/internal/layout"
	"github.com/gompdf/invoicepdf/internal/text"
)

const (
	mutedColor  = "#6b7280"
	ruleColor   = "#d1d5db"
	headerFill  = "#f3f4f6"
	accentColor = "#635bff"

	// QRSize is the printed size of the QR image in points
	QRSize = 100.0
	// rowReserve keeps a row's secondary line from landing on the last
	// sliver of a page
	rowReserve = 12.0
)

var (
	body  = layout.Style{FontSize: 8}
	bold  = layout.Style{FontSize: 8, Bold: true}
	small = layout.Style{FontSize: 7, Color: mutedColor}
)

func txt(s string, st layout.Style) *layout.Text {
	return &layout.Text{Content: s, Style: st}
}

func column(st layout.Style, children ...layout.Node) *layout.View {
	return &layout.View{Direction: layout.Column, Style: st, Children: compact(children)}
}

func row(gap float64, st layout.Style, children ...layout.Node) *layout.View {
	return &layout.View{Direction: layout.Row, Gap: gap, Style: st, Children: compact(children)}
}

// compact drops nil entries so optional blocks can be passed inline
func compact(nodes []layout.Node) layout.Nodes {
	out := make(layout.Nodes, 0, len(nodes))
	for _, n := range nodes {
		if n == nil {
			continue
		}
		if v, ok := n.(*layout.View); ok && v == nil {
			continue
		}
		if t, ok := n.(*layout.Text); ok && t == nil {
			continue
		}
		out = append(out, n)
	}
	return out
}

func labeled(label, value string) string {
	return label + ": " + value
}

func aligned(st layout.Style, a layout.Align) layout.Style {
	st.Align = a
	return st
}

// invoiceNumber joins the number caption and value, either of which may be blank
func invoiceNumber(d *invoice.Data, caption string) string {
	if l := strings.TrimSpace(d.InvoiceNumber.Label); l != "" {
		caption = l
	}
	return strings.TrimSpace(caption + " " + strings.TrimSpace(d.InvoiceNumber.Value))
}

// partyBlock prints a seller or buyer. Optional lines appear only when the
// value is non-blank and switched on.
func partyBlock(title string, p invoice.Party, env Env) *layout.View {
	var lines []layout.Node
	if title != "" {
		lines = append(lines, txt(title, layout.Style{FontSize: 9, Bold: true, MarginBottom: 4}))
	}
	lines = append(lines, txt(p.Name, bold), txt(p.Address, body))

	if p.VATNo.ShouldRender() {
		label := strings.TrimSpace(p.VATNoLabelText)
		if label == "" {
			label = env.L(env.Labels.VATNo)
		}
		lines = append(lines, txt(labeled(label, p.VATNo.Value), body))
	}
	if strings.TrimSpace(p.Email) != "" {
		lines = append(lines, txt(labeled(env.Labels.Email, p.Email), body))
	}
	if p.AccountNumber.ShouldRender() {
		lines = append(lines, txt(labeled(env.Labels.AccountNumber, p.AccountNumber.Value), body))
	}
	if p.SwiftBic.ShouldRender() {
		lines = append(lines, txt(labeled(env.Labels.SwiftBic, p.SwiftBic.Value), body))
	}
	if p.Notes.ShouldRender() {
		lines = append(lines, txt(text.PlainText(p.Notes.Value), layout.Style{FontSize: 8, MarginTop: 4}))
	}
	return column(layout.Style{}, lines...)
}

func parties(seller, buyer *layout.View) *layout.View {
	v := row(24, layout.Style{MarginBottom: 16}, seller, buyer)
	v.Region = layout.RegionParties
	return v
}

// dueLine reads like "$1,234.50 USD due Jan 31, 2025"
func dueLine(d *invoice.Data, env Env, pattern string) string {
	return fmt.Sprintf("%s %s %s %s",
		env.money(d.Total, d.Currency),
		d.Currency,
		env.Labels.Due,
		env.Format.Date(d.PaymentDue, pattern))
}

// footer is fixed to the bottom of every page. The page caption keeps its
// placeholders until pagination knows the page count.
func footer(d *invoice.Data, env Env) *layout.View {
	auto := layout.Style{FontSize: 7, Color: mutedColor, Width: layout.WidthAuto}
	var number layout.Node
	if v := strings.TrimSpace(d.InvoiceNumber.Value); v != "" {
		number = txt(v, layout.Style{FontSize: 7, Color: mutedColor})
	}
	link := &layout.Link{
		Content: env.Labels.CreatedWith + " " + AttributionName,
		URL:     env.AttributionURL,
		Style:   layout.Style{FontSize: 7, Color: accentColor, Width: layout.WidthAuto},
	}
	left := column(layout.Style{Flex: 1},
		number,
		row(3, layout.Style{}, txt(dueLine(d, env, format.FooterDuePattern), auto), txt("·", auto), link),
	)
	pages := &layout.Text{
		Content:     env.Labels.Page,
		PageNumbers: true,
		Style:       layout.Style{FontSize: 7, Color: mutedColor, Align: layout.AlignRight, Width: "25%"},
	}
	return &layout.View{
		Direction: layout.Row,
		Justify:   layout.JustifyBetween,
		Region:    layout.RegionFooter,
		Fixed:     true,
		Style: layout.Style{
			BorderTop:   0.5,
			BorderColor: ruleColor,
			Padding:     layout.Edges{Top: 6},
			MarginTop:   8,
		},
		Children: layout.Nodes{left, pages},
	}
}

// qrBlock is nil unless a QR image is supplied and switched on
func qrBlock(d *invoice.Data) layout.Node {
	if !d.QRCode.ShouldRender() {
		return nil
	}
	children := layout.Nodes{&layout.Image{Src: d.QRCode.Data, Width: QRSize, Height: QRSize}}
	if desc := strings.TrimSpace(d.QRCode.Description); desc != "" {
		children = append(children, txt(desc, layout.Style{FontSize: 7, Color: mutedColor, Width: strconv.Itoa(int(QRSize))}))
	}
	return &layout.View{Region: layout.RegionQR, Style: layout.Style{MarginTop: 12}, Children: children}
}

// notesBlock splits notes into paragraphs so long notes can break across pages
func notesBlock(d *invoice.Data, env Env) layout.Node {
	if !d.Notes.ShouldRender() {
		return nil
	}
	v := &layout.View{Region: layout.RegionNotes, Wrap: true, Style: layout.Style{MarginTop: 12}}
	v.Children = append(v.Children, txt(env.Labels.Notes, layout.Style{FontSize: 8, Bold: true, MarginBottom: 2}))
	for _, para := range strings.Split(text.PlainText(d.Notes.Value), "\n") {
		v.Children = append(v.Children, txt(para, body))
	}
	return v
}

// servicePeriod runs from the first of the service month to the service
// date. It always uses its own pattern, not the invoice's date format.
func servicePeriod(d *invoice.Data, env Env) string {
	return env.Format.Date(d.DateOfService.StartOfMonth(), format.ServicePeriodPattern) +
		" – " + env.Format.Date(d.DateOfService, format.ServicePeriodPattern)
}

func describe(name string, d *invoice.Data, env Env) layout.Nodes {
	return layout.Nodes{txt(name, body), txt(servicePeriod(d, env), small)}
}

func meta(d *invoice.Data, env Env) layout.Meta {
	return layout.Meta{
		Title:    strings.TrimSpace(env.Labels.Invoice + " " + d.InvoiceNumber.Value),
		Author:   d.Seller.Name,
		Subject:  env.Labels.Invoice,
		Keywords: strings.Join([]string{d.Seller.Name, d.Buyer.Name, string(d.Currency)}, ", "),
		Creator:  AttributionName,
		Language: d.Language.Tag().String(),
	}
}

// col describes one items-table column
type col struct {
	title string
	width string
	flex  float64
	align layout.Align
	show  bool
	cell  func(i int, it invoice.Item) layout.Nodes
	// total is printed in the summary row when set
	total func() string
}

type tableStyle struct {
	header layout.Style
	row    layout.Style
	// reserve is the trailing space each body row keeps below it
	reserve float64
}

// itemsTable keeps the visible columns and builds one row per item. Rows
// never split and the header repeats on every page.
func itemsTable(cols []col, items []invoice.Item, ts tableStyle, sumLabel string) *layout.Table {
	var visible []col
	for _, c := range cols {
		if c.show {
			visible = append(visible, c)
		}
	}

	t := &layout.Table{Region: layout.RegionItems, Style: layout.Style{MarginBottom: 12}}
	for _, c := range visible {
		t.Columns = append(t.Columns, layout.TableCol{Width: c.width, Flex: c.flex})
		t.Header.Cells = append(t.Header.Cells, layout.TableCell{
			Children: layout.Nodes{txt(c.title, aligned(ts.header, c.align))},
			Style:    layout.Style{Padding: layout.Edges{Right: 4}},
		})
	}
	t.Header.Style = layout.Style{
		Background:   headerFill,
		BorderBottom: 0.5,
		BorderColor:  ruleColor,
		Padding:      layout.Edges{Top: 4, Right: 2, Bottom: 4, Left: 4},
	}

	for i, it := range items {
		r := layout.TableRow{KeepTogether: true, MinPresenceAhead: ts.reserve, Style: ts.row}
		for _, c := range visible {
			nodes := c.cell(i, it)
			for _, n := range nodes {
				if tx, ok := n.(*layout.Text); ok && tx.Style.Align == "" {
					tx.Style.Align = c.align
				}
			}
			r.Cells = append(r.Cells, layout.TableCell{Children: nodes, Style: layout.Style{Padding: layout.Edges{Right: 4}}})
		}
		t.Rows = append(t.Rows, r)
	}

	if sumLabel != "" {
		if r, ok := totalsRow(visible, sumLabel, ts); ok {
			t.Rows = append(t.Rows, r)
		}
	}
	return t
}

// totalsRow puts the label in the column before the first summed column
func totalsRow(visible []col, label string, ts tableStyle) (layout.TableRow, bool) {
	first := -1
	for i, c := range visible {
		if c.total != nil {
			first = i
			break
		}
	}
	if first < 0 {
		return layout.TableRow{}, false
	}

	r := layout.TableRow{KeepTogether: true, Style: ts.row}
	for i, c := range visible {
		var nodes layout.Nodes
		switch {
		case i == first-1:
			nodes = layout.Nodes{txt(label, aligned(bold, layout.AlignRight))}
		case c.total != nil:
			nodes = layout.Nodes{txt(c.total(), aligned(bold, c.align))}
		}
		r.Cells = append(r.Cells, layout.TableCell{Children: nodes, Style: layout.Style{Padding: layout.Edges{Right: 4}}})
	}
	return r, true
}

// vatGroup sums the items sharing one tax rate
type vatGroup struct {
	Rate   invoice.TaxRate
	Net    decimal.Decimal
	VAT    decimal.Decimal
	PreTax decimal.Decimal
}

// vatSummary groups items by rate in order of first appearance. Sums are
// exact decimals of the upstream item values.
func vatSummary(items []invoice.Item) []vatGroup {
	var groups []vatGroup
	index := map[string]int{}
	for _, it := range items {
		key := it.VAT.Key()
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, vatGroup{Rate: it.VAT})
		}
		g := &groups[i]
		g.Net = g.Net.Add(decimal.NewFromFloat(it.NetAmount))
		g.VAT = g.VAT.Add(decimal.NewFromFloat(it.VATAmount))
		g.PreTax = g.PreTax.Add(decimal.NewFromFloat(it.PreTaxAmount))
	}
	return groups
}

func sumItems(items []invoice.Item, field func(invoice.Item) float64) float64 {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(decimal.NewFromFloat(field(it)))
	}
	return total.InexactFloat64()
}

func anyItem(items []invoice.Item, flag func(invoice.Item) bool) bool {
	for _, it := range items {
		if flag(it) {
			return true
		}
	}
	return false
}

package templates

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gompdf/invoicepdf/internal/i18n"
	"github.com/gompdf/invoicepdf/internal/invoice"
	"github.com/gompdf/invoicepdf/internal/layout"
	"github.com/gompdf/invoicepdf/internal/pagination"
	"github.com/gompdf/invoicepdf/internal/text"
)

const logo = "data:image/png;base64,iVBORw0KGgo="

func item(name string, net float64, vat invoice.TaxRate, vatAmount float64) invoice.Item {
	it := invoice.DefaultItem()
	it.Name = name
	it.Unit = "h"
	it.NetPrice = net
	it.NetAmount = net
	it.VAT = vat
	it.VATAmount = vatAmount
	it.PreTaxAmount = net + vatAmount
	return it
}

// sample is the en/USD scenario: one item of 1234.50 at 23%, due Jan 31, 2025
func sample() *invoice.Data {
	d := invoice.Defaults()
	d.Language = i18n.English
	d.Currency = invoice.USD
	d.InvoiceNumber = invoice.InvoiceNumber{Value: "1/01-2025"}
	d.DateOfIssue = invoice.NewDate(2025, time.January, 15)
	d.DateOfService = invoice.NewDate(2025, time.January, 15)
	d.PaymentDue = invoice.NewDate(2025, time.January, 31)
	d.Seller.Name = "Acme Sp. z o.o."
	d.Seller.Address = "ul. Prosta 1, Warszawa"
	d.Buyer.Name = "Globex Inc."
	d.Buyer.Address = "1 Main St, Springfield"
	d.Items = []invoice.Item{item("Consulting", 1234.5, invoice.Percent(23), 283.94)}
	d.Total = 1234.5
	return d
}

func build(t *testing.T, d *invoice.Data) *layout.Document {
	t.Helper()
	env, err := NewEnv(context.Background(), d, nil)
	require.NoError(t, err)
	return Select(d.Template).Build(d, env)
}

func paginate(t *testing.T, doc *layout.Document) []*pagination.Page {
	t.Helper()
	pages, err := pagination.NewEngine().Paginate(doc, text.NewApproxMeasurer())
	require.NoError(t, err)
	return pages
}

func regionLines(p *pagination.Page, region layout.Region) []string {
	var out []string
	for _, it := range p.Items {
		if it.Kind == pagination.ItemText && it.Region == region {
			out = append(out, it.Lines...)
		}
	}
	return out
}

// contents collects every text and link string below the nodes of region
func contents(doc *layout.Document, region layout.Region) []string {
	var out []string
	var visit func(n layout.Node, in bool)
	visitCells := func(r layout.TableRow, in bool) {
		for _, c := range r.Cells {
			for _, n := range c.Children {
				visit(n, in)
			}
		}
	}
	visit = func(n layout.Node, in bool) {
		switch n := n.(type) {
		case *layout.View:
			in = in || n.Region == region
			for _, c := range n.Children {
				visit(c, in)
			}
		case *layout.Table:
			in = in || n.Region == region
			visitCells(n.Header, in)
			for _, r := range n.Rows {
				visitCells(r, in)
			}
		case *layout.Text:
			if in {
				out = append(out, n.Content)
			}
		case *layout.Link:
			if in {
				out = append(out, n.Content)
			}
		}
	}
	for _, n := range doc.Children {
		visit(n, false)
	}
	return out
}

func findTable(doc *layout.Document, region layout.Region) *layout.Table {
	var found *layout.Table
	for _, n := range doc.Children {
		_ = layout.Walk(n, func(n layout.Node) error {
			if t, ok := n.(*layout.Table); ok && t.Region == region && found == nil {
				found = t
			}
			return nil
		})
	}
	return found
}

func TestSelect(t *testing.T) {
	assert.IsType(t, Default{}, Select(invoice.TemplateDefault))
	assert.IsType(t, Stripe{}, Select(invoice.TemplateStripe))
	assert.IsType(t, Default{}, Select(invoice.Template("fancy")))
	assert.IsType(t, Default{}, Select(""))
}

func TestNewEnvRejectsUnsupportedLanguage(t *testing.T) {
	d := sample()
	d.Language = "xx"
	_, err := NewEnv(context.Background(), d, nil)
	assert.ErrorIs(t, err, i18n.ErrUnsupportedLanguage)
}

func TestFooterScenario(t *testing.T) {
	for _, tmpl := range []invoice.Template{invoice.TemplateDefault, invoice.TemplateStripe} {
		t.Run(string(tmpl), func(t *testing.T) {
			d := sample()
			d.Template = tmpl
			pages := paginate(t, build(t, d))
			require.Len(t, pages, 1)

			assert.Equal(t, []string{
				"1/01-2025",
				"$1,234.50 USD due Jan 31, 2025",
				"·",
				"Created with invoicepdf",
				"Page 1 of 1",
			}, regionLines(pages[0], layout.RegionFooter))
		})
	}
}

func TestFooterWithoutInvoiceNumber(t *testing.T) {
	d := sample()
	d.InvoiceNumber.Value = ""
	lines := contents(build(t, d), layout.RegionFooter)
	assert.Equal(t, "$1,234.50 USD due Jan 31, 2025", lines[0])
}

func TestFooterLinkTarget(t *testing.T) {
	pages := paginate(t, build(t, sample()))
	var urls []string
	for _, it := range pages[0].Items {
		if it.Region == layout.RegionFooter && it.URL != "" {
			urls = append(urls, it.URL)
		}
	}
	assert.Equal(t, []string{DefaultAttributionURL}, urls)
}

func TestPartyOptionalFields(t *testing.T) {
	tests := []struct {
		name  string
		field invoice.VisibleField
		want  bool
	}{
		{"empty value with flag on", invoice.VisibleField{Value: "", IsVisible: true}, false},
		{"blank value with flag on", invoice.VisibleField{Value: "  ", IsVisible: true}, false},
		{"value with flag off", invoice.VisibleField{Value: "PL5261040828", IsVisible: false}, false},
		{"value with flag on", invoice.VisibleField{Value: "PL5261040828", IsVisible: true}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, tmpl := range []invoice.Template{invoice.TemplateDefault, invoice.TemplateStripe} {
				d := sample()
				d.Template = tmpl
				d.Seller.VATNo = tt.field
				d.Seller.AccountNumber = tt.field
				d.Seller.SwiftBic = tt.field
				lines := strings.Join(contents(build(t, d), layout.RegionParties), "\n")

				assert.Equal(t, tt.want, strings.Contains(lines, "VAT no: PL5261040828"), tmpl)
				assert.Equal(t, tt.want, strings.Contains(lines, "Account number: PL5261040828"), tmpl)
				assert.Equal(t, tt.want, strings.Contains(lines, "SWIFT/BIC: PL5261040828"), tmpl)
				assert.NotContains(t, lines, "VAT no: \n")
			}
		})
	}
}

func TestPartyVATLabelOverride(t *testing.T) {
	d := sample()
	d.TaxLabelText = "GST"
	d.Seller.VATNo = invoice.VisibleField{Value: "123", IsVisible: true}
	d.Buyer.VATNo = invoice.VisibleField{Value: "456", IsVisible: true}
	d.Buyer.VATNoLabelText = "Tax ID"
	lines := contents(build(t, d), layout.RegionParties)
	assert.Contains(t, lines, "GST no: 123")
	assert.Contains(t, lines, "Tax ID: 456")
}

func TestStripeHeaderWithoutLogo(t *testing.T) {
	d := sample()
	d.Template = invoice.TemplateStripe
	doc := build(t, d)

	header := doc.Children[0].(*layout.View)
	assert.Equal(t, layout.RegionHeader, header.Region)
	assert.Equal(t, layout.Column, header.Direction)
	require.Len(t, header.Children, 1)

	pages := paginate(t, doc)
	contentWidth := DefaultPage.Width - DefaultPage.Margins.Left - DefaultPage.Margins.Right
	for _, it := range pages[0].Items {
		if it.Region == layout.RegionHeader && it.Kind == pagination.ItemText && it.Lines[0] == "Invoice" {
			assert.InDelta(t, contentWidth, it.Width, 1e-6)
			return
		}
	}
	t.Fatal("title not found")
}

func TestStripeHeaderWithLogo(t *testing.T) {
	d := sample()
	d.Template = invoice.TemplateStripe
	d.Logo = logo
	doc := build(t, d)

	header := doc.Children[0].(*layout.View)
	assert.Equal(t, layout.Row, header.Direction)
	require.Len(t, header.Children, 2)
	assert.Equal(t, layout.KindText, header.Children[0].Kind())
	assert.Equal(t, layout.KindImage, header.Children[1].Kind())

	pages := paginate(t, doc)
	var title, image *pagination.Item
	for i := range pages[0].Items {
		it := &pages[0].Items[i]
		if it.Region != layout.RegionHeader {
			continue
		}
		if it.Kind == pagination.ItemImage {
			image = it
		}
		if it.Kind == pagination.ItemText && it.Lines[0] == "Invoice" {
			title = it
		}
	}
	require.NotNil(t, title)
	require.NotNil(t, image)
	assert.InDelta(t, DefaultPage.Margins.Left, title.X, 1e-6)
	assert.InDelta(t, DefaultPage.Width-DefaultPage.Margins.Right, image.X+image.Width, 1e-6)
	assert.InDelta(t, LogoWidth, image.Width, 1e-6)
	assert.Less(t, title.X+title.Width, image.X)
}

func TestTaxColumnGating(t *testing.T) {
	for _, tc := range []struct {
		tmpl    invoice.Template
		without int
	}{
		{invoice.TemplateDefault, 8},
		{invoice.TemplateStripe, 4},
	} {
		t.Run(string(tc.tmpl), func(t *testing.T) {
			d := sample()
			d.Template = tc.tmpl
			d.Items = append(d.Items, item("Hosting", 100, invoice.Code("NP"), 0))
			for i := range d.Items {
				d.Items[i].VATIsVisible = false
			}
			table := findTable(build(t, d), layout.RegionItems)
			require.NotNil(t, table)
			assert.Len(t, table.Columns, tc.without)
			assert.Nil(t, findTable(build(t, d), layout.RegionSummary))

			d.Items[1].VATIsVisible = true
			table = findTable(build(t, d), layout.RegionItems)
			assert.Len(t, table.Columns, tc.without+1)
			lines := contents(build(t, d), layout.RegionItems)
			assert.Contains(t, lines, "23%")
			assert.Contains(t, lines, "NP")
		})
	}
}

func TestServicePeriodUsesItsOwnPattern(t *testing.T) {
	d := sample()
	d.DateFormat = "DD.MM.YYYY"
	lines := contents(build(t, d), layout.RegionItems)
	assert.Contains(t, lines, "Jan 01 2025 – Jan 15 2025")

	header := contents(build(t, d), layout.RegionHeader)
	assert.Contains(t, header, "Date of issue: 15.01.2025")
}

func TestRowsKeepTogetherWithReserve(t *testing.T) {
	table := findTable(build(t, sample()), layout.RegionItems)
	require.NotNil(t, table)
	require.NotEmpty(t, table.Rows)
	for _, r := range table.Rows {
		assert.True(t, r.KeepTogether)
	}
	assert.Equal(t, rowReserve, table.Rows[0].MinPresenceAhead)
}

func TestDefaultSumRow(t *testing.T) {
	d := sample()
	d.Items = append(d.Items, item("Hosting", 100, invoice.Percent(23), 23))
	table := findTable(build(t, d), layout.RegionItems)
	last := table.Rows[len(table.Rows)-1]

	var cells []string
	for _, c := range last.Cells {
		for _, n := range c.Children {
			cells = append(cells, n.(*layout.Text).Content)
		}
	}
	assert.Equal(t, []string{"SUM", "$1,334.50", "$306.94", "$1,641.44"}, cells)
}

func TestDefaultVATSummary(t *testing.T) {
	d := sample()
	d.Items = []invoice.Item{
		item("A", 0.1, invoice.Percent(23), 0.02),
		item("B", 0.2, invoice.Percent(23), 0.05),
		item("C", 10, invoice.Code("NP"), 0),
	}
	lines := contents(build(t, d), layout.RegionSummary)
	assert.Equal(t, []string{
		"VAT rate", "Net", "VAT", "Pre-tax",
		"23%", "$0.30", "$0.07", "$0.37",
		"NP", "$10.00", "$0.00", "$10.00",
		"Total", "$10.30", "$0.07", "$10.37",
	}, lines)

	d.VATTableSummaryIsVisible = false
	assert.Empty(t, contents(build(t, d), layout.RegionSummary))
}

func TestVATSummaryIsExact(t *testing.T) {
	groups := vatSummary([]invoice.Item{
		item("A", 0.1, invoice.Percent(23), 0),
		item("B", 0.2, invoice.Percent(23), 0),
	})
	require.Len(t, groups, 1)
	assert.Equal(t, "0.3", groups[0].Net.String())
}

func TestDefaultTotals(t *testing.T) {
	d := sample()
	d.Paid = 234.5
	lines := contents(build(t, d), layout.RegionTotals)
	require.Len(t, lines, 4)
	assert.Equal(t, "To pay: $1,234.50", lines[0])
	assert.Equal(t, "Paid: $234.50", lines[1])
	assert.Equal(t, "Left to pay: $1,000.00", lines[2])
	assert.True(t, strings.HasPrefix(lines[3], "Amount in words: "))
	assert.True(t, strings.HasSuffix(lines[3], " USD 50/100"))
}

func TestSignatures(t *testing.T) {
	d := sample()
	assert.Len(t, contents(build(t, d), layout.RegionSignatures), 2)

	d.PersonAuthorizedToReceiveIsVisible = false
	assert.Equal(t, []string{"Person authorized to issue"}, contents(build(t, d), layout.RegionSignatures))

	d.PersonAuthorizedToIssueIsVisible = false
	assert.Empty(t, contents(build(t, d), layout.RegionSignatures))
}

func TestQRBlock(t *testing.T) {
	d := sample()
	assert.Nil(t, qrBlock(d))

	d.QRCode = invoice.QRCode{Data: logo, Description: "Scan to pay", IsVisible: true}
	v := qrBlock(d).(*layout.View)
	require.Len(t, v.Children, 2)
	img := v.Children[0].(*layout.Image)
	assert.Equal(t, QRSize, img.Width)
	assert.Equal(t, QRSize, img.Height)
	assert.Equal(t, "Scan to pay", v.Children[1].(*layout.Text).Content)

	d.QRCode.IsVisible = false
	assert.Nil(t, qrBlock(d))
}

func TestNotesAreStrippedAndSplit(t *testing.T) {
	d := sample()
	d.Notes = invoice.VisibleField{Value: "<p>Thank you!</p><p>Bank: <b>mBank</b></p>", IsVisible: true}
	assert.Equal(t, []string{"Notes", "Thank you!", "", "Bank: mBank"}, contents(build(t, d), layout.RegionNotes))

	d.Notes.IsVisible = false
	assert.Empty(t, contents(build(t, d), layout.RegionNotes))
}

func TestStripeTotalsAndPayOnline(t *testing.T) {
	d := sample()
	d.Template = invoice.TemplateStripe
	d.StripePayOnlineURL = "https://pay.example.com/i/1"
	doc := build(t, d)

	assert.Equal(t, []string{
		"Subtotal", "$1,234.50",
		"Total excluding VAT", "$1,234.50",
		"VAT (23%)", "$283.94",
		"Total", "$1,234.50",
		"Amount due", "$1,234.50",
	}, contents(doc, layout.RegionTotals))
	assert.Equal(t, []string{"$1,234.50 USD due January 31, 2025", "Pay online"}, contents(doc, layout.RegionPayment))

	d.StripePayOnlineURL = ""
	assert.Equal(t, []string{"$1,234.50 USD due January 31, 2025"}, contents(build(t, d), layout.RegionPayment))
}

func TestLongItemListPaginates(t *testing.T) {
	for _, tmpl := range []invoice.Template{invoice.TemplateDefault, invoice.TemplateStripe} {
		t.Run(string(tmpl), func(t *testing.T) {
			d := sample()
			d.Template = tmpl
			d.Items = nil
			for i := 0; i < 80; i++ {
				d.Items = append(d.Items, item(fmt.Sprintf("Item %d", i+1), 10, invoice.Percent(23), 2.3))
			}
			pages := paginate(t, build(t, d))
			require.Greater(t, len(pages), 1)

			bottom := DefaultPage.Height - DefaultPage.Margins.Bottom
			seen := map[int]int{}
			for _, p := range pages {
				headers := 0
				for _, r := range p.Rows {
					if r.Region != layout.RegionItems {
						continue
					}
					assert.LessOrEqual(t, r.Y+r.Height, bottom)
					assert.GreaterOrEqual(t, r.Y, DefaultPage.Margins.Top)
					if r.Header {
						headers++
					} else {
						seen[r.Index]++
					}
				}
				if p.Number < len(pages) {
					assert.Equal(t, 1, headers, "page %d", p.Number)
				} else {
					assert.LessOrEqual(t, headers, 1, "page %d", p.Number)
				}

				footer := regionLines(p, layout.RegionFooter)
				assert.Equal(t, fmt.Sprintf("Page %d of %d", p.Number, len(pages)), footer[len(footer)-1])
			}
			for i := 0; i < 80; i++ {
				assert.Equal(t, 1, seen[i], "item %d", i)
			}
		})
	}
}

func TestEveryLanguageBuilds(t *testing.T) {
	for _, lang := range i18n.Supported() {
		for _, tmpl := range []invoice.Template{invoice.TemplateDefault, invoice.TemplateStripe} {
			d := sample().WithLanguage(lang)
			d.Template = tmpl
			doc := build(t, d)
			require.NoError(t, layout.Validate(doc))
			for _, s := range contents(doc, layout.RegionFooter) {
				assert.NotContains(t, s, "{tax}", "%s/%s", lang, tmpl)
			}
			assert.Equal(t, lang.Tag().String(), doc.Meta.Language)
		}
	}
}

func TestConcurrentBuildsAreIndependent(t *testing.T) {
	langs := i18n.Supported()
	want := map[i18n.Language]string{}
	for _, l := range langs {
		want[l] = strings.Join(contents(build(t, sample().WithLanguage(l)), layout.RegionFooter), "|")
	}

	var wg sync.WaitGroup
	got := make([]string, len(langs)*4)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			d := sample().WithLanguage(langs[i%len(langs)])
			env, err := NewEnv(context.Background(), d, nil)
			if err != nil {
				return
			}
			got[i] = strings.Join(contents(Select(d.Template).Build(d, env), layout.RegionFooter), "|")
		}(i)
	}
	wg.Wait()
	for i, g := range got {
		assert.Equal(t, want[langs[i%len(langs)]], g)
	}
}

func TestDocumentSerializes(t *testing.T) {
	d := sample()
	d.QRCode = invoice.QRCode{Data: logo, IsVisible: true}
	raw, err := json.Marshal(build(t, d))
	require.NoError(t, err)

	var back layout.Document
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.NoError(t, layout.Validate(&back))
	assert.Equal(t, "Invoice 1/01-2025", back.Meta.Title)
	assert.Contains(t, string(raw), `"kind":"image"`)
}

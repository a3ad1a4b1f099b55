package api

import (
	"archive/zip"
	"bytes"
	"context"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/gompdf/invoicepdf/internal/i18n"
	"github.com/gompdf/invoicepdf/internal/invoice"
	"github.com/gompdf/invoicepdf/internal/layout"
	"github.com/gompdf/invoicepdf/internal/pagination"
)

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

	it := invoice.DefaultItem()
	it.Name = "Consulting"
	it.NetPrice, it.NetAmount = 1234.5, 1234.5
	it.VAT = invoice.Percent(23)
	it.VATAmount = 283.94
	it.PreTaxAmount = 1518.44
	d.Items = []invoice.Item{it}
	d.Total = 1234.5
	return d
}

func countPages(b []byte) int {
	return bytes.Count(b, []byte("<</Type /Page\n"))
}

func footerLines(p *pagination.Page) []string {
	var out []string
	for _, it := range p.Items {
		if it.Kind == pagination.ItemText && it.Region == layout.RegionFooter {
			out = append(out, it.Lines...)
		}
	}
	return out
}

func findImage(doc *layout.Document) *layout.Image {
	var img *layout.Image
	for _, n := range doc.Children {
		_ = layout.Walk(n, func(n layout.Node) error {
			if i, ok := n.(*layout.Image); ok && img == nil {
				img = i
			}
			return nil
		})
	}
	return img
}

func TestLayoutUsesPageOptions(t *testing.T) {
	g := New().
		WithOption(WithPageSizeLetter()).
		WithOption(WithPageOrientation(PageOrientationLandscape)).
		WithOption(WithMargins(20, 30, 40, 50))

	doc, err := g.Layout(context.Background(), sample())
	require.NoError(t, err)
	assert.Equal(t, layout.PageSpec{
		Width:   PageSizeLetterHeight,
		Height:  PageSizeLetterWidth,
		Margins: layout.Edges{Top: 20, Right: 30, Bottom: 40, Left: 50},
	}, doc.Page)
}

func TestLayoutPortraitSwapsWideSizes(t *testing.T) {
	g := NewWithOptions(DefaultOptions()).WithOption(WithPageSize(842, 595))
	doc, err := g.Layout(context.Background(), sample())
	require.NoError(t, err)
	assert.Equal(t, 595.0, doc.Page.Width)
	assert.Equal(t, 842.0, doc.Page.Height)
}

func TestLayoutRejectsInvalidData(t *testing.T) {
	d := sample()
	d.Seller.Name = ""
	_, err := New().Layout(context.Background(), d)
	assert.ErrorIs(t, err, invoice.ErrInvalid)

	_, err = New().Layout(context.Background(), nil)
	assert.ErrorIs(t, err, invoice.ErrInvalid)
}

func TestLayoutTurnsQRPayloadIntoImage(t *testing.T) {
	d := sample()
	d.QRCode = invoice.QRCode{Payload: "https://pay.example.com/i/1", IsVisible: true}

	doc, err := New().Layout(context.Background(), d)
	require.NoError(t, err)
	img := findImage(doc)
	require.NotNil(t, img)
	assert.True(t, strings.HasPrefix(img.Src, "data:image/png;base64,"))
	assert.Empty(t, d.QRCode.Data, "caller data is left alone")
}

func TestLayoutLoadsLogoFromResourcePath(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, 8, 4))))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "logo.png"), buf.Bytes(), 0o644))

	d := sample()
	d.Template = invoice.TemplateStripe
	d.Logo = "logo.png"

	g := New().WithOption(WithLocalFiles(true)).WithOption(WithResourcePath(dir))
	doc, err := g.Layout(context.Background(), d)
	require.NoError(t, err)
	img := findImage(doc)
	require.NotNil(t, img)
	assert.True(t, strings.HasPrefix(img.Src, "data:image/png;base64,"))

	d.Logo = "missing.png"
	_, err = g.Layout(context.Background(), d)
	assert.ErrorContains(t, err, "failed to load logo")
}

func TestLayoutRejectsLogoPathsByDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logo.png")
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, 8, 4))))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	d := sample()
	d.Template = invoice.TemplateStripe
	for _, logo := range []string{path, "logo.png"} {
		d.Logo = logo
		_, err := New().WithOption(WithResourcePath(dir)).Layout(context.Background(), d)
		assert.ErrorIs(t, err, invoice.ErrInvalid, logo)
	}
}

func TestPaginateResolvesFooter(t *testing.T) {
	g := New().WithOption(WithAttributionURL("https://example.com/made-with"))
	pages, err := g.Paginate(context.Background(), sample())
	require.NoError(t, err)
	require.Len(t, pages, 1)

	lines := footerLines(pages[0])
	assert.Contains(t, lines, "$1,234.50 USD due Jan 31, 2025")
	assert.Equal(t, "Page 1 of 1", lines[len(lines)-1])

	var urls []string
	for _, it := range pages[0].Items {
		if it.URL != "" {
			urls = append(urls, it.URL)
		}
	}
	assert.Equal(t, []string{"https://example.com/made-with"}, urls)
}

func TestRenderBytes(t *testing.T) {
	b, err := New().RenderBytes(context.Background(), sample())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF-")))
	assert.Equal(t, 1, countPages(b))
	assert.Contains(t, string(b), "/URI")
}

func TestRenderLongInvoiceHasSeveralPages(t *testing.T) {
	d := sample()
	base := d.Items[0]
	d.Items = nil
	for i := 0; i < 120; i++ {
		d.Items = append(d.Items, base)
	}

	pages, err := New().Paginate(context.Background(), d)
	require.NoError(t, err)
	require.Greater(t, len(pages), 1)

	b, err := New().RenderBytes(context.Background(), d)
	require.NoError(t, err)
	assert.Equal(t, len(pages), countPages(b))
}

func TestRenderFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invoice.pdf")
	require.NoError(t, New().RenderFile(context.Background(), sample(), path))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF-")))
}

func TestRenderDebugLogsGeometry(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	g := New().WithOption(WithLogger(zap.New(core))).WithOption(WithDebug(true))

	_, err := g.RenderBytes(context.Background(), sample())
	require.NoError(t, err)

	geometry := logs.FilterMessage("page geometry").All()
	require.Len(t, geometry, 1)
	assert.Equal(t, zapcore.InfoLevel, geometry[0].Level)

	done := logs.FilterMessage("rendered invoice").All()
	require.Len(t, done, 1)
	assert.Equal(t, int64(1), done[0].ContextMap()["pages"])
	assert.Equal(t, "en", done[0].ContextMap()["language"])
}

func TestRenderLanguages(t *testing.T) {
	langs := []i18n.Language{i18n.English, i18n.Polish, i18n.Ukrainian}
	d := sample()

	results, err := New().RenderLanguages(context.Background(), d, langs)
	require.NoError(t, err)
	require.Len(t, results, len(langs))
	for _, lang := range langs {
		assert.True(t, bytes.HasPrefix(results[lang], []byte("%PDF-")), lang)
	}
	assert.Equal(t, i18n.English, d.Language)
}

func TestRenderLanguagesFailsAsAWhole(t *testing.T) {
	d := sample()
	d.Buyer.Address = ""
	_, err := New().RenderLanguages(context.Background(), d, []i18n.Language{i18n.English, i18n.German})
	assert.ErrorIs(t, err, invoice.ErrInvalid)
}

func TestFileName(t *testing.T) {
	tests := []struct {
		number string
		lang   i18n.Language
		want   string
	}{
		{"1/01-2025", i18n.English, "invoice-1-01-2025-en.pdf"},
		{"FV 2025:7", i18n.Polish, "invoice-FV-2025-7-pl.pdf"},
		{"  ", i18n.German, "invoice-de.pdf"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FileName(tt.number, tt.lang))
	}
}

func TestWriteZip(t *testing.T) {
	results := map[i18n.Language][]byte{
		i18n.Polish:  []byte("pl pdf"),
		i18n.English: []byte("en pdf"),
	}
	var buf bytes.Buffer
	require.NoError(t, WriteZip(&buf, "1/01-2025", time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), results))

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	require.Len(t, zr.File, 2)
	assert.Equal(t, "invoice-1-01-2025-en.pdf", zr.File[0].Name)
	assert.Equal(t, "invoice-1-01-2025-pl.pdf", zr.File[1].Name)

	f, err := zr.File[1].Open()
	require.NoError(t, err)
	defer f.Close()
	b, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "pl pdf", string(b))
}

func TestPageSizeByName(t *testing.T) {
	w, h, ok := PageSizeByName("Letter")
	assert.True(t, ok)
	assert.Equal(t, 612.0, w)
	assert.Equal(t, 792.0, h)

	_, _, ok = PageSizeByName("B5")
	assert.False(t, ok)
}

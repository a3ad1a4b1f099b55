// Package api is the public entry point: it turns invoice data into a layout
// tree, pages or a finished PDF.
package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/gompdf/invoicepdf/internal/format"
	"github.com/gompdf/invoicepdf/internal/i18n"
	"github.com/gompdf/invoicepdf/internal/invoice"
	"github.com/gompdf/invoicepdf/internal/layout"
	"github.com/gompdf/invoicepdf/internal/pagination"
	"github.com/gompdf/invoicepdf/internal/render/pdf"
	"github.com/gompdf/invoicepdf/internal/res"
	"github.com/gompdf/invoicepdf/internal/templates"
)

// Producer is written to the PDF info dictionary
const Producer = "invoicepdf"

// Generator is the main API for turning invoices into PDFs. It is safe for
// concurrent use; each call builds its own renderer and measurer.
type Generator struct {
	options Options
	loader  *res.Loader
	logger  *zap.Logger
}

// New creates a generator with default options
func New() *Generator {
	return NewWithOptions(DefaultOptions())
}

// NewWithOptions creates a generator with the specified options
func NewWithOptions(options Options) *Generator {
	logger := options.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if options.Reporter == nil {
		options.Reporter = format.NewLogReporter(logger)
	}
	loader := res.NewLoader()
	if options.LocalFiles {
		loader = res.NewFileLoader()
	}
	for _, path := range options.ResourcePaths {
		loader.AddSearchPath(path)
	}
	return &Generator{options: options, loader: loader, logger: logger}
}

// WithOption returns a new generator with the specified option set
func (g *Generator) WithOption(option Option) *Generator {
	newOptions := g.options
	option(&newOptions)
	return NewWithOptions(newOptions)
}

// Options returns a copy of the generator's options
func (g *Generator) Options() Options {
	return g.options
}

// page resolves the configured size, margins and orientation
func (g *Generator) page() layout.PageSpec {
	w, h := g.options.PageWidth, g.options.PageHeight
	if w <= 0 || h <= 0 {
		w, h = templates.DefaultPage.Width, templates.DefaultPage.Height
	}
	switch g.options.PageOrientation {
	case PageOrientationLandscape:
		if w < h {
			w, h = h, w
		}
	case PageOrientationPortrait, "":
		if w > h {
			w, h = h, w
		}
	}
	return layout.PageSpec{
		Width:  w,
		Height: h,
		Margins: layout.Edges{
			Top:    g.options.MarginTop,
			Right:  g.options.MarginRight,
			Bottom: g.options.MarginBottom,
			Left:   g.options.MarginLeft,
		},
	}
}

// prepare copies d, turns logo files and QR payloads into data URLs and
// validates the result. The caller's data is never modified. Logo paths are
// rejected unless LocalFiles is set.
func (g *Generator) prepare(d *invoice.Data) (*invoice.Data, error) {
	if d == nil {
		return nil, fmt.Errorf("%w: no data", invoice.ErrInvalid)
	}
	c := d.Clone()

	if logo := strings.TrimSpace(c.Logo); logo != "" && !strings.HasPrefix(logo, "data:") {
		if !g.options.LocalFiles {
			return nil, fmt.Errorf("%w: logo must be a data URL", invoice.ErrInvalid)
		}
		r, err := g.loader.Load(logo)
		if err != nil {
			return nil, fmt.Errorf("failed to load logo: %w", err)
		}
		c.Logo = res.DataURL(r.MimeType, r.Data)
	}
	if c.QRCode.IsVisible && strings.TrimSpace(c.QRCode.Data) == "" && strings.TrimSpace(c.QRCode.Payload) != "" {
		src, err := res.QRDataURL(c.QRCode.Payload, g.options.QRSize)
		if err != nil {
			return nil, err
		}
		c.QRCode.Data = src
	}

	if err := invoice.Validate(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Layout builds the layout tree for d
func (g *Generator) Layout(ctx context.Context, d *invoice.Data) (*layout.Document, error) {
	c, err := g.prepare(d)
	if err != nil {
		return nil, err
	}
	return g.build(ctx, c)
}

func (g *Generator) build(ctx context.Context, d *invoice.Data) (*layout.Document, error) {
	env, err := templates.NewEnv(ctx, d, g.options.Reporter)
	if err != nil {
		return nil, err
	}
	env.Page = g.page()
	if g.options.AttributionURL != "" {
		env.AttributionURL = g.options.AttributionURL
	}
	return templates.Select(d.Template).Build(d, env), nil
}

func (g *Generator) newRenderer() *pdf.Renderer {
	r := pdf.NewRenderer()
	r.FontFamily = g.options.FontFamily
	r.RenderBackgrounds = g.options.RenderBackgrounds
	r.RenderBorders = g.options.RenderBorders
	r.DebugDrawBoxes = g.options.DebugDrawBoxes
	r.Logger = g.logger
	for _, dir := range g.options.FontDirectories {
		r.AddFontDirectory(dir)
	}
	return r
}

// paginate lays out d and breaks it into pages measured with r's fonts
func (g *Generator) paginate(ctx context.Context, d *invoice.Data, r *pdf.Renderer) (*layout.Document, []*pagination.Page, error) {
	doc, err := g.build(ctx, d)
	if err != nil {
		return nil, nil, err
	}
	m, err := r.NewMeasurer()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load fonts: %w", err)
	}

	if g.options.Debug {
		g.logger.Info("page geometry",
			zap.String("orientation", string(g.options.PageOrientation)),
			zap.Float64("width", doc.Page.Width),
			zap.Float64("height", doc.Page.Height))
	}

	pages, err := pagination.NewEngine().Paginate(doc, m)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to paginate invoice: %w", err)
	}
	return doc, pages, nil
}

// Paginate lays out d and breaks it into positioned pages
func (g *Generator) Paginate(ctx context.Context, d *invoice.Data) ([]*pagination.Page, error) {
	c, err := g.prepare(d)
	if err != nil {
		return nil, err
	}
	_, pages, err := g.paginate(ctx, c, g.newRenderer())
	return pages, err
}

// Render writes d as a PDF to w
func (g *Generator) Render(ctx context.Context, d *invoice.Data, w io.Writer) error {
	c, err := g.prepare(d)
	if err != nil {
		return err
	}
	logger := g.logger.With(
		zap.String("language", string(c.Language)),
		zap.String("template", string(c.Template)))
	logger.Debug("rendering invoice", zap.Int("items", len(c.Items)))

	r := g.newRenderer()
	doc, pages, err := g.paginate(ctx, c, r)
	if err != nil {
		return err
	}

	opts := pdf.RenderOptions{
		Title:        doc.Meta.Title,
		Author:       doc.Meta.Author,
		Subject:      doc.Meta.Subject,
		Keywords:     doc.Meta.Keywords,
		Creator:      doc.Meta.Creator,
		Producer:     Producer,
		CreationDate: c.DateOfIssue.Time,
	}
	if err := r.Render(pages, w, opts); err != nil {
		return fmt.Errorf("failed to render PDF: %w", err)
	}
	logger.Debug("rendered invoice", zap.Int("pages", len(pages)))
	return nil
}

// RenderBytes renders d and returns the PDF bytes
func (g *Generator) RenderBytes(ctx context.Context, d *invoice.Data) ([]byte, error) {
	var buf bytes.Buffer
	if err := g.Render(ctx, d, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderFile renders d to the file at path
func (g *Generator) RenderFile(ctx context.Context, d *invoice.Data, path string) error {
	b, err := g.RenderBytes(ctx, d)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("failed to write PDF file: %w", err)
	}
	return nil
}

// RenderLanguages renders d once per language, concurrently. Each render
// works on its own copy of d; the first failure cancels the rest.
func (g *Generator) RenderLanguages(ctx context.Context, d *invoice.Data, langs []i18n.Language) (map[i18n.Language][]byte, error) {
	if d == nil {
		return nil, fmt.Errorf("%w: no data", invoice.ErrInvalid)
	}
	results := make([][]byte, len(langs))
	eg, ctx := errgroup.WithContext(ctx)
	for i, lang := range langs {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			b, err := g.RenderBytes(ctx, d.WithLanguage(lang))
			if err != nil {
				return fmt.Errorf("failed to render %s: %w", lang, err)
			}
			results[i] = b
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	out := make(map[i18n.Language][]byte, len(langs))
	for i, lang := range langs {
		out[lang] = results[i]
	}
	return out, nil
}

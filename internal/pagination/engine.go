package pagination

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gompdf/invoicepdf/internal/layout"
)

// Options represents options for the pagination engine
type Options struct {
	PageWidth  float64
	PageHeight float64
	Margins    layout.Edges
}

// DefaultOptions is an A4 page with 40pt margins
func DefaultOptions() Options {
	return Options{
		PageWidth:  PageSizeA4.Width,
		PageHeight: PageSizeA4.Height,
		Margins:    layout.Edges{Top: 40, Right: 40, Bottom: 40, Left: 40},
	}
}

// Engine handles the pagination process
type Engine struct {
	options Options
}

// NewEngine creates a new pagination engine
func NewEngine() *Engine {
	return &Engine{options: DefaultOptions()}
}

// SetOptions sets the options for the pagination engine
func (e *Engine) SetOptions(options Options) {
	e.options = options
}

// Options returns the options used when a document does not set its own page
func (e *Engine) Options() Options {
	return e.options
}

// Paginate measures doc with m and breaks it into pages. A document
// PageSpec with a non-zero size overrides the engine's options.
func (e *Engine) Paginate(doc *layout.Document, m layout.Measurer) ([]*Page, error) {
	if err := layout.Validate(doc); err != nil {
		return nil, err
	}

	opts := e.options
	if doc.Page.Width > 0 && doc.Page.Height > 0 {
		opts = Options{
			PageWidth:  doc.Page.Width,
			PageHeight: doc.Page.Height,
			Margins:    doc.Page.Margins,
		}
	}
	contentWidth := opts.PageWidth - opts.Margins.Left - opts.Margins.Right
	if contentWidth <= 0 || opts.PageHeight-opts.Margins.Top-opts.Margins.Bottom <= 0 {
		return nil, fmt.Errorf("page %gx%g has no room inside its margins", opts.PageWidth, opts.PageHeight)
	}

	engine := layout.NewEngine(m)
	var fixed, flow []layout.Box
	for _, n := range doc.Children {
		box, err := engine.Layout(n, contentWidth)
		if err != nil {
			return nil, fmt.Errorf("failed to lay out %s node: %w", n.Kind(), err)
		}
		if v, ok := n.(*layout.View); ok && v.Fixed {
			fixed = append(fixed, box)
			continue
		}
		flow = append(flow, box)
	}

	p := NewPaginator(PageSize{Width: opts.PageWidth, Height: opts.PageHeight, Name: "Custom"}, opts.Margins)
	pages := p.Paginate(flow, fixed)
	resolvePageNumbers(pages)
	return pages, nil
}

// resolvePageNumbers substitutes {page} and {pages} once the page count is known
func resolvePageNumbers(pages []*Page) {
	total := strconv.Itoa(len(pages))
	for _, page := range pages {
		r := strings.NewReplacer("{page}", strconv.Itoa(page.Number), "{pages}", total)
		for i := range page.Items {
			it := &page.Items[i]
			if !it.PageNumbers {
				continue
			}
			for j, line := range it.Lines {
				it.Lines[j] = r.Replace(line)
			}
		}
	}
}

package pagination

import (
	"github.com/gompdf/invoicepdf/internal/layout"
)

// ItemKind is the type of a positioned draw item
type ItemKind int

const (
	ItemText ItemKind = iota
	ItemImage
	ItemRect
	ItemLine
)

func (k ItemKind) String() string {
	switch k {
	case ItemText:
		return "text"
	case ItemImage:
		return "image"
	case ItemRect:
		return "rect"
	case ItemLine:
		return "line"
	default:
		return "unknown"
	}
}

// Item is an absolutely positioned drawing instruction in page points,
// measured from the top-left corner of the page.
type Item struct {
	Kind   ItemKind
	Region layout.Region
	X      float64
	Y      float64
	Width  float64
	Height float64

	// text
	Lines       []string
	LineHeight  float64
	Style       layout.Style
	URL         string
	PageNumbers bool

	// image
	Src string

	// rect fill and line stroke
	Color string
}

// RowPlacement records where a table row landed
type RowPlacement struct {
	Region layout.Region
	Index  int
	Header bool
	Y      float64
	Height float64
}

// Page represents a single page in the document
type Page struct {
	Number int
	Width  float64
	Height float64
	Items  []Item
	Rows   []RowPlacement
}

// Texts returns the text lines on the page in drawing order
func (p *Page) Texts() []string {
	var out []string
	for _, it := range p.Items {
		if it.Kind == ItemText {
			out = append(out, it.Lines...)
		}
	}
	return out
}

// PageSize represents standard page sizes
type PageSize struct {
	Width  float64
	Height float64
	Name   string
}

// Standard page sizes in points (1/72 inch)
var (
	PageSizeA4     = PageSize{Width: 595.28, Height: 841.89, Name: "A4"}
	PageSizeLetter = PageSize{Width: 612.00, Height: 792.00, Name: "Letter"}
	PageSizeLegal  = PageSize{Width: 612.00, Height: 1008.00, Name: "Legal"}
	PageSizeA3     = PageSize{Width: 841.89, Height: 1190.55, Name: "A3"}
	PageSizeA5     = PageSize{Width: 419.53, Height: 595.28, Name: "A5"}
)

// Paginator handles breaking content into pages
type Paginator struct {
	PageSize PageSize
	Margins  layout.Edges

	pages  []*Page
	page   *Page
	cursor float64
	bottom float64
	// used is false until flow content lands on the current page
	used bool
}

// NewPaginator creates a new paginator
func NewPaginator(pageSize PageSize, margins layout.Edges) *Paginator {
	return &Paginator{
		PageSize: pageSize,
		Margins:  margins,
	}
}

// Paginate places flow boxes top to bottom, breaking pages as needed, and
// stamps the fixed boxes at the bottom of every page.
func (p *Paginator) Paginate(flow, fixed []layout.Box) []*Page {
	fixedHeight := 0.0
	for _, b := range fixed {
		fixedHeight += b.GetMarginTop() + b.GetHeight() + b.GetMarginBottom()
	}
	p.bottom = p.PageSize.Height - p.Margins.Bottom - fixedHeight
	p.pages = nil
	p.newPage()

	for _, b := range flow {
		p.flow(b, p.Margins.Left, "")
	}

	for _, page := range p.pages {
		y := p.PageSize.Height - p.Margins.Bottom - fixedHeight
		for _, b := range fixed {
			y += b.GetMarginTop()
			emit(page, b, p.Margins.Left+b.GetX(), y, regionOf(b, ""))
			y += b.GetHeight() + b.GetMarginBottom()
		}
	}
	return p.pages
}

func (p *Paginator) newPage() {
	p.page = &Page{
		Number: len(p.pages) + 1,
		Width:  p.PageSize.Width,
		Height: p.PageSize.Height,
	}
	p.pages = append(p.pages, p.page)
	p.cursor = p.Margins.Top
	p.used = false
}

// fits reports whether h more points fit above the flow bottom
func (p *Paginator) fits(h float64) bool {
	return p.cursor+h <= p.bottom+0.01
}

// flow places one box at the cursor. x is the absolute left edge of the
// box's parent content.
func (p *Paginator) flow(b layout.Box, x float64, region layout.Region) {
	region = regionOf(b, region)

	switch box := b.(type) {
	case *layout.BreakBox:
		if p.used {
			p.newPage()
		}
		return
	case *layout.TableBox:
		p.flowTable(box, x, region)
		return
	case *layout.BlockBox:
		if v, ok := box.Node.(*layout.View); ok {
			if v.BreakBefore && p.used {
				p.newPage()
			}
			if v.Wrap && v.Direction != layout.Row {
				p.flowChildren(box, x, region)
				return
			}
		}
	}

	top := b.GetMarginTop()
	if !p.used {
		top = 0
	}
	if p.used && !p.fits(top+b.GetHeight()) {
		p.newPage()
		top = 0
	}
	p.cursor += top
	emit(p.page, b, x+b.GetX(), p.cursor, region)
	p.cursor += b.GetHeight() + b.GetMarginBottom()
	p.used = true
}

// flowChildren breaks a wrapping view between its children. The view's own
// background and borders are not drawn.
func (p *Paginator) flowChildren(b *layout.BlockBox, x float64, region layout.Region) {
	if p.used {
		p.cursor += b.Style.MarginTop
	}
	p.cursor += b.Style.Padding.Top + b.Style.BorderTop
	prevEnd := b.Style.Padding.Top + b.Style.BorderTop
	inner := x + b.GetX()
	for _, c := range b.Children {
		// gap between this child and the previous one, margins excluded
		gap := c.GetY() - c.GetMarginTop() - prevEnd
		if gap > 0 && p.used {
			p.cursor += gap
		}
		prevEnd = c.GetY() + c.GetHeight() + c.GetMarginBottom()
		p.flow(c, inner, region)
	}
	p.cursor += b.Style.Padding.Bottom + b.Style.BorderBottom + b.Style.MarginBottom
}

// flowTable places the header, then each row, repeating the header at the
// top of every continuation page. A row moves to the next page whole when
// its height plus its reserve does not fit.
func (p *Paginator) flowTable(t *layout.TableBox, x float64, region layout.Region) {
	left := x + t.X
	headerHeight := 0.0
	if t.Header != nil {
		headerHeight = t.Header.Height
	}
	first := 0.0
	if len(t.Rows) > 0 {
		first = t.Rows[0].Height + t.Rows[0].Reserve()
	}

	top := t.Node.Style.MarginTop
	if !p.used {
		top = 0
	}
	if p.used && !p.fits(top+headerHeight+first) {
		p.newPage()
		top = 0
	}
	p.cursor += top + t.Node.Style.Padding.Top

	placeHeader := func() {
		if t.Header == nil {
			return
		}
		p.placeRow(t.Header, left, region)
	}
	placeHeader()
	p.used = true

	rowsOnPage := 0
	for _, r := range t.Rows {
		need := r.Height + r.Reserve()
		if rowsOnPage > 0 && !p.fits(need) {
			p.newPage()
			placeHeader()
			p.used = true
			rowsOnPage = 0
		}
		p.placeRow(r, left, region)
		rowsOnPage++
	}
	p.cursor += t.Node.Style.Padding.Bottom + t.Node.Style.MarginBottom
}

func (p *Paginator) placeRow(r *layout.RowBox, x float64, region layout.Region) {
	emitRow(p.page, r, x+r.X, p.cursor, region)
	p.page.Rows = append(p.page.Rows, RowPlacement{
		Region: region,
		Index:  r.Index,
		Header: r.Header,
		Y:      p.cursor,
		Height: r.Height,
	})
	p.cursor += r.Height
}

func regionOf(b layout.Box, inherited layout.Region) layout.Region {
	switch n := b.GetNode().(type) {
	case *layout.View:
		if n.Region != "" {
			return n.Region
		}
	case *layout.Table:
		if n.Region != "" {
			return n.Region
		}
	}
	return inherited
}

// emit draws box b with its top-left corner at (x, y) and recurses into
// its children without breaking pages.
func emit(page *Page, b layout.Box, x, y float64, region layout.Region) {
	region = regionOf(b, region)

	switch box := b.(type) {
	case *layout.BlockBox:
		decorate(page, box.Style, x, y, box.Width, box.Height, region)
		for _, c := range box.Children {
			emit(page, c, x+c.GetX(), y+c.GetY(), region)
		}
	case *layout.TextBox:
		st := box.Style
		decorate(page, st, x, y, box.Width, box.Height, region)
		if len(box.Lines) == 0 {
			return
		}
		page.Items = append(page.Items, Item{
			Kind:        ItemText,
			Region:      region,
			X:           x + st.Padding.Left,
			Y:           y + st.Padding.Top + st.BorderTop,
			Width:       box.Width - st.Padding.Left - st.Padding.Right,
			Height:      float64(len(box.Lines)) * box.LineHeight,
			Lines:       append([]string(nil), box.Lines...),
			LineHeight:  box.LineHeight,
			Style:       st,
			URL:         box.URL(),
			PageNumbers: box.HasPageNumbers(),
		})
	case *layout.ImageBox:
		page.Items = append(page.Items, Item{
			Kind:   ItemImage,
			Region: region,
			X:      x,
			Y:      y,
			Width:  box.Width,
			Height: box.Height,
			Src:    box.Src,
		})
	case *layout.TableBox:
		cy := y + box.Node.Style.Padding.Top
		if box.Header != nil {
			emitRow(page, box.Header, x+box.Header.X, cy, region)
			cy += box.Header.Height
		}
		for _, r := range box.Rows {
			emitRow(page, r, x+r.X, cy, region)
			cy += r.Height
		}
	}
}

func emitRow(page *Page, r *layout.RowBox, x, y float64, region layout.Region) {
	decorate(page, r.Row.Style, x, y, r.Width, r.Height, region)
	for _, c := range r.Cells {
		emit(page, c, x+c.X, y+c.Y, region)
	}
}

// decorate adds the background fill and top/bottom rules of a style
func decorate(page *Page, st layout.Style, x, y, w, h float64, region layout.Region) {
	if st.Background != "" {
		page.Items = append(page.Items, Item{Kind: ItemRect, Region: region, X: x, Y: y, Width: w, Height: h, Color: st.Background})
	}
	color := st.BorderColor
	if color == "" {
		color = "#000000"
	}
	if st.BorderTop > 0 {
		page.Items = append(page.Items, Item{Kind: ItemLine, Region: region, X: x, Y: y + st.BorderTop/2, Width: w, Height: st.BorderTop, Color: color})
	}
	if st.BorderBottom > 0 {
		page.Items = append(page.Items, Item{Kind: ItemLine, Region: region, X: x, Y: y + h - st.BorderBottom/2, Width: w, Height: st.BorderBottom, Color: color})
	}
}

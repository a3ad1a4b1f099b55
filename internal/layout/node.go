// Package layout describes an invoice as a tree of typed nodes and measures
// that tree into boxes. Nodes carry pre-formatted strings only.
package layout

// Kind discriminates node types in the tree and in its JSON form
type Kind string

const (
	KindView      Kind = "view"
	KindText      Kind = "text"
	KindLink      Kind = "link"
	KindImage     Kind = "image"
	KindTable     Kind = "table"
	KindPageBreak Kind = "page-break"
)

// Region tags the part of the invoice a view belongs to
type Region string

const (
	RegionHeader     Region = "header"
	RegionParties    Region = "parties"
	RegionItems      Region = "items"
	RegionSummary    Region = "summary"
	RegionPayment    Region = "payment"
	RegionTotals     Region = "totals"
	RegionNotes      Region = "notes"
	RegionSignatures Region = "signatures"
	RegionQR         Region = "qr"
	RegionFooter     Region = "footer"
)

// Direction is the main axis of a view
type Direction string

const (
	Column Direction = "column"
	Row    Direction = "row"
)

// Justify distributes leftover space between the children of a row
type Justify string

const (
	JustifyStart   Justify = "start"
	JustifyEnd     Justify = "end"
	JustifyBetween Justify = "space-between"
)

// Node is an element of the layout tree
type Node interface {
	Kind() Kind
	GetStyle() Style
}

// Nodes is an ordered list of child nodes
type Nodes []Node

// View is a container. Fixed views repeat at the bottom of every page.
// Views are atomic unless Wrap is set, in which case a column view may break
// between its children.
type View struct {
	Direction   Direction `json:"direction,omitempty"`
	Justify     Justify   `json:"justify,omitempty"`
	Gap         float64   `json:"gap,omitempty"`
	Region      Region    `json:"region,omitempty"`
	Fixed       bool      `json:"fixed,omitempty"`
	BreakBefore bool      `json:"breakBefore,omitempty"`
	Wrap        bool      `json:"wrap,omitempty"`
	Style       Style     `json:"style"`
	Children    Nodes     `json:"children"`
}

func (v *View) Kind() Kind      { return KindView }
func (v *View) GetStyle() Style { return v.Style }

// Text is a run of pre-formatted text. When PageNumbers is set the content
// may hold {page} and {pages}, resolved once pagination is complete.
type Text struct {
	Content     string `json:"content"`
	PageNumbers bool   `json:"pageNumbers,omitempty"`
	Style       Style  `json:"style"`
}

func (t *Text) Kind() Kind      { return KindText }
func (t *Text) GetStyle() Style { return t.Style }

// Link is text that opens URL when clicked
type Link struct {
	Content string `json:"content"`
	URL     string `json:"url"`
	Style   Style  `json:"style"`
}

func (l *Link) Kind() Kind      { return KindLink }
func (l *Link) GetStyle() Style { return l.Style }

// Image is a data URL drawn in a box of Width by Height points. A zero Height
// keeps the image's aspect ratio.
type Image struct {
	Src    string  `json:"src"`
	Width  float64 `json:"width"`
	Height float64 `json:"height,omitempty"`
	Style  Style   `json:"style"`
}

func (i *Image) Kind() Kind      { return KindImage }
func (i *Image) GetStyle() Style { return i.Style }

// Table is a header row repeated on every page it spans plus body rows
type Table struct {
	Region  Region     `json:"region,omitempty"`
	Columns []TableCol `json:"columns"`
	Header  TableRow   `json:"header"`
	Rows    []TableRow `json:"rows"`
	Style   Style      `json:"style"`
}

func (t *Table) Kind() Kind      { return KindTable }
func (t *Table) GetStyle() Style { return t.Style }

// TableCol sizes one column. Width is a length; columns without one share
// the remaining width by Flex.
type TableCol struct {
	Width string  `json:"width,omitempty"`
	Flex  float64 `json:"flex,omitempty"`
}

// TableRow is one table row. Rows are never split across pages. A
// KeepTogether row also moves to the next page unless MinPresenceAhead
// points remain below it; other rows ignore MinPresenceAhead.
type TableRow struct {
	Cells            []TableCell `json:"cells"`
	KeepTogether     bool        `json:"keepTogether,omitempty"`
	MinPresenceAhead float64     `json:"minPresenceAhead,omitempty"`
	Style            Style       `json:"style"`
}

// TableCell stacks its children vertically
type TableCell struct {
	Children Nodes `json:"children"`
	Style    Style `json:"style"`
}

// PageBreak starts a new page
type PageBreak struct{}

func (p *PageBreak) Kind() Kind      { return KindPageBreak }
func (p *PageBreak) GetStyle() Style { return Style{} }

// Meta is the document information dictionary
type Meta struct {
	Title    string `json:"title,omitempty"`
	Author   string `json:"author,omitempty"`
	Subject  string `json:"subject,omitempty"`
	Keywords string `json:"keywords,omitempty"`
	Creator  string `json:"creator,omitempty"`
	Language string `json:"language,omitempty"`
}

// PageSpec is the physical page in points
type PageSpec struct {
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Margins Edges   `json:"margins"`
}

// Document is the root of a layout tree. It is built fresh for each render
// and is not modified afterwards.
type Document struct {
	Meta     Meta     `json:"meta"`
	Page     PageSpec `json:"page"`
	Children Nodes    `json:"children"`
}

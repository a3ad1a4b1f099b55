package layout

// TextBox is a measured text or link node broken into lines
type TextBox struct {
	Node       Node
	Style      Style
	Lines      []string
	LineHeight float64
	X          float64
	Y          float64
	Width      float64
	Height     float64
}

func (e *Engine) layoutText(n Node, content string, width float64) *TextBox {
	st := n.GetStyle()
	pad := st.Padding
	inner := width - pad.Left - pad.Right
	b := &TextBox{
		Node:       n,
		Style:      st,
		Width:      width,
		LineHeight: e.measurer.LineHeight(st),
	}
	if content != "" {
		b.Lines = e.measurer.SplitLines(content, st, inner)
	}
	b.Height = float64(len(b.Lines))*b.LineHeight + pad.Top + pad.Bottom + st.BorderTop + st.BorderBottom
	return b
}

func (b *TextBox) GetNode() Node            { return b.Node }
func (b *TextBox) GetX() float64            { return b.X }
func (b *TextBox) GetY() float64            { return b.Y }
func (b *TextBox) GetWidth() float64        { return b.Width }
func (b *TextBox) GetHeight() float64       { return b.Height }
func (b *TextBox) GetMarginTop() float64    { return b.Style.MarginTop }
func (b *TextBox) GetMarginBottom() float64 { return b.Style.MarginBottom }
func (b *TextBox) SetPosition(x, y float64) { b.X, b.Y = x, y }

// URL returns the link target, or "" for plain text
func (b *TextBox) URL() string {
	if l, ok := b.Node.(*Link); ok {
		return l.URL
	}
	return ""
}

// HasPageNumbers reports whether the lines carry {page} placeholders
func (b *TextBox) HasPageNumbers() bool {
	t, ok := b.Node.(*Text)
	return ok && t.PageNumbers
}

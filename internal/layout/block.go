package layout

import "strings"

// BlockBox is a measured view or table cell
type BlockBox struct {
	Node      Node
	Style     Style
	Direction Direction
	X         float64
	Y         float64
	Width     float64
	Height    float64
	Children  []Box
}

// layoutColumn stacks children top to bottom inside b's padding
func (e *Engine) layoutColumn(b *BlockBox, children Nodes, gap float64) error {
	pad := b.Style.Padding
	inner := b.Width - pad.Left - pad.Right
	y := pad.Top + b.Style.BorderTop

	for i, n := range children {
		child, err := e.Layout(n, e.childWidth(n, inner))
		if err != nil {
			return err
		}
		if i > 0 {
			y += gap
		}
		y += child.GetMarginTop()
		child.SetPosition(pad.Left, y)
		y += child.GetHeight() + child.GetMarginBottom()
		b.Children = append(b.Children, child)
	}

	b.Height = y + pad.Bottom + b.Style.BorderBottom
	return nil
}

// layoutRow places children side by side. Children with a Width keep it; the
// others share what is left by Flex.
func (e *Engine) layoutRow(b *BlockBox, v *View) error {
	pad := b.Style.Padding
	inner := b.Width - pad.Left - pad.Right
	n := len(v.Children)
	if n == 0 {
		b.Height = pad.Top + pad.Bottom + b.Style.BorderTop + b.Style.BorderBottom
		return nil
	}

	widths := make([]float64, n)
	flex := make([]float64, n)
	used := v.Gap * float64(n-1)
	totalFlex := 0.0
	for i, c := range v.Children {
		st := c.GetStyle()
		if st.Width == WidthAuto {
			if w, ok := e.naturalWidth(c, inner); ok {
				widths[i] = w
				used += w
				continue
			}
		} else if st.Width != "" {
			widths[i] = ParseLength(st.Width, inner, 0)
			used += widths[i]
			continue
		}
		if img, ok := c.(*Image); ok && img.Width > 0 {
			widths[i] = img.Width
			used += widths[i]
			continue
		}
		flex[i] = st.Flex
		if flex[i] <= 0 {
			flex[i] = 1
		}
		totalFlex += flex[i]
	}

	left := inner - used
	if left < 0 {
		left = 0
	}
	if totalFlex > 0 {
		for i := range widths {
			if flex[i] > 0 {
				widths[i] = left * flex[i] / totalFlex
			}
		}
		left = 0
	}

	x := pad.Left
	gap := v.Gap
	switch v.Justify {
	case JustifyEnd:
		x += left
	case JustifyBetween:
		if n > 1 {
			gap += left / float64(n-1)
		}
	}

	top := pad.Top + b.Style.BorderTop
	maxH := 0.0
	for i, c := range v.Children {
		child, err := e.Layout(c, widths[i])
		if err != nil {
			return err
		}
		child.SetPosition(x, top+child.GetMarginTop())
		if h := child.GetMarginTop() + child.GetHeight() + child.GetMarginBottom(); h > maxH {
			maxH = h
		}
		b.Children = append(b.Children, child)
		x += widths[i] + gap
	}

	b.Height = top + maxH + pad.Bottom + b.Style.BorderBottom
	return nil
}

// naturalWidth is the single-line width of a text or link, capped at limit
func (e *Engine) naturalWidth(n Node, limit float64) (float64, bool) {
	var content string
	switch n := n.(type) {
	case *Text:
		content = n.Content
	case *Link:
		content = n.Content
	default:
		return 0, false
	}
	st := n.GetStyle()
	w := st.Padding.Left + st.Padding.Right
	widest := 0.0
	for _, line := range strings.Split(content, "\n") {
		if lw := e.measurer.TextWidth(line, st); lw > widest {
			widest = lw
		}
	}
	// rounding slack so the line does not wrap when measured again
	w += widest + 0.5
	if w > limit {
		w = limit
	}
	return w, true
}

// childWidth resolves a child's declared width within a column
func (e *Engine) childWidth(n Node, inner float64) float64 {
	if w := n.GetStyle().Width; w != "" {
		if v := ParseLength(w, inner, inner); v > 0 && v < inner {
			return v
		}
	}
	return inner
}

func (b *BlockBox) GetNode() Node            { return b.Node }
func (b *BlockBox) GetX() float64            { return b.X }
func (b *BlockBox) GetY() float64            { return b.Y }
func (b *BlockBox) GetWidth() float64        { return b.Width }
func (b *BlockBox) GetHeight() float64       { return b.Height }
func (b *BlockBox) GetMarginTop() float64    { return b.Style.MarginTop }
func (b *BlockBox) GetMarginBottom() float64 { return b.Style.MarginBottom }

// SetPosition sets the position of the box
func (b *BlockBox) SetPosition(x, y float64) {
	b.X = x
	b.Y = y
}

// AddChild adds a child box
func (b *BlockBox) AddChild(child Box) {
	b.Children = append(b.Children, child)
}

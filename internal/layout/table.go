package layout

// TableBox is a measured table. Rows are stacked without page breaks here;
// pagination moves them between pages.
type TableBox struct {
	Node    *Table
	Columns []float64
	Header  *RowBox
	Rows    []*RowBox
	X       float64
	Y       float64
	Width   float64
	Height  float64
}

// RowBox is one measured table row. Cells are column blocks positioned
// relative to the row.
type RowBox struct {
	Row    *TableRow
	Index  int
	Header bool
	Cells  []*BlockBox
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func (e *Engine) layoutTable(t *Table, width float64) (*TableBox, error) {
	pad := t.Style.Padding
	inner := width - pad.Left - pad.Right
	b := &TableBox{
		Node:    t,
		Columns: columnWidths(t.Columns, inner),
		Width:   width,
	}

	y := pad.Top
	if len(t.Header.Cells) > 0 {
		h, err := e.layoutTableRow(&t.Header, -1, b.Columns, inner)
		if err != nil {
			return nil, err
		}
		h.Header = true
		h.SetPosition(pad.Left, y)
		y += h.Height
		b.Header = h
	}
	for i := range t.Rows {
		r, err := e.layoutTableRow(&t.Rows[i], i, b.Columns, inner)
		if err != nil {
			return nil, err
		}
		r.SetPosition(pad.Left, y)
		y += r.Height
		b.Rows = append(b.Rows, r)
	}
	b.Height = y + pad.Bottom
	return b, nil
}

func (e *Engine) layoutTableRow(row *TableRow, index int, cols []float64, width float64) (*RowBox, error) {
	rb := &RowBox{Row: row, Index: index, Width: width}
	pad := row.Style.Padding
	x := pad.Left
	maxH := 0.0
	for i, cell := range row.Cells {
		w := 0.0
		if i < len(cols) {
			w = cols[i]
		}
		if i == len(row.Cells)-1 {
			w -= pad.Right
		}
		if i == 0 {
			w -= pad.Left
		}
		cb := &BlockBox{Style: cell.Style, Direction: Column, Width: w}
		if err := e.layoutColumn(cb, cell.Children, 0); err != nil {
			return nil, err
		}
		cb.SetPosition(x, pad.Top+row.Style.BorderTop)
		if cb.Height > maxH {
			maxH = cb.Height
		}
		rb.Cells = append(rb.Cells, cb)
		x += w
	}
	rb.Height = maxH + pad.Top + pad.Bottom + row.Style.BorderTop + row.Style.BorderBottom
	return rb, nil
}

// columnWidths assigns declared widths first and splits what remains
// between the other columns by flex.
func columnWidths(cols []TableCol, totalWidth float64) []float64 {
	out := make([]float64, len(cols))
	declared := 0.0
	totalFlex := 0.0
	for i, c := range cols {
		if c.Width != "" {
			out[i] = ParseLength(c.Width, totalWidth, 0)
			declared += out[i]
			continue
		}
		f := c.Flex
		if f <= 0 {
			f = 1
		}
		totalFlex += f
	}

	remaining := totalWidth - declared
	if remaining < 0 {
		remaining = 0
	}
	for i, c := range cols {
		if c.Width != "" {
			continue
		}
		f := c.Flex
		if f <= 0 {
			f = 1
		}
		out[i] = remaining * f / totalFlex
	}
	return out
}

func (b *TableBox) GetNode() Node            { return b.Node }
func (b *TableBox) GetX() float64            { return b.X }
func (b *TableBox) GetY() float64            { return b.Y }
func (b *TableBox) GetWidth() float64        { return b.Width }
func (b *TableBox) GetHeight() float64       { return b.Height }
func (b *TableBox) GetMarginTop() float64    { return b.Node.Style.MarginTop }
func (b *TableBox) GetMarginBottom() float64 { return b.Node.Style.MarginBottom }
func (b *TableBox) SetPosition(x, y float64) { b.X, b.Y = x, y }

func (r *RowBox) SetPosition(x, y float64) { r.X, r.Y = x, y }

// Reserve is the trailing space a row needs below it to stay on a page.
// Only KeepTogether rows carry one.
func (r *RowBox) Reserve() float64 {
	if r.Row == nil || !r.Row.KeepTogether {
		return 0
	}
	return r.Row.MinPresenceAhead
}

package layout

// ImageBox is a measured image. Src stays a data URL; the renderer decodes it.
type ImageBox struct {
	Node   *Image
	Src    string
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func (e *Engine) layoutImage(n *Image, width float64) *ImageBox {
	w := n.Width
	if w <= 0 || w > width {
		w = width
	}
	h := n.Height
	if h <= 0 {
		h = w
		if iw, ih, err := e.measurer.ImageSize(n.Src); err == nil && iw > 0 {
			h = w * ih / iw
		}
	} else if n.Width > w {
		h = h * w / n.Width
	}
	return &ImageBox{Node: n, Src: n.Src, Width: w, Height: h}
}

func (b *ImageBox) GetNode() Node            { return b.Node }
func (b *ImageBox) GetX() float64            { return b.X }
func (b *ImageBox) GetY() float64            { return b.Y }
func (b *ImageBox) GetWidth() float64        { return b.Width }
func (b *ImageBox) GetHeight() float64       { return b.Height }
func (b *ImageBox) GetMarginTop() float64    { return b.Node.Style.MarginTop }
func (b *ImageBox) GetMarginBottom() float64 { return b.Node.Style.MarginBottom }
func (b *ImageBox) SetPosition(x, y float64) { b.X, b.Y = x, y }

// BreakBox marks a page break in the measured tree
type BreakBox struct {
	Node *PageBreak
	Y    float64
}

func (b *BreakBox) GetNode() Node            { return b.Node }
func (b *BreakBox) GetX() float64            { return 0 }
func (b *BreakBox) GetY() float64            { return b.Y }
func (b *BreakBox) GetWidth() float64        { return 0 }
func (b *BreakBox) GetHeight() float64       { return 0 }
func (b *BreakBox) GetMarginTop() float64    { return 0 }
func (b *BreakBox) GetMarginBottom() float64 { return 0 }
func (b *BreakBox) SetPosition(_, y float64) { b.Y = y }

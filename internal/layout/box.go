package layout

// Box is a measured node. X and Y are relative to the parent box's top-left
// corner; pagination adds the page origin when it places a box.
type Box interface {
	GetNode() Node
	GetX() float64
	GetY() float64
	GetWidth() float64
	GetHeight() float64
	GetMarginTop() float64
	GetMarginBottom() float64
	SetPosition(x, y float64)
}

// Measurer supplies text and image metrics. The PDF renderer provides the
// real font metrics; tests use an approximation.
type Measurer interface {
	// SplitLines wraps text into lines no wider than width
	SplitLines(text string, style Style, width float64) []string
	// TextWidth is the width of text set on a single line
	TextWidth(text string, style Style) float64
	// LineHeight is the height of one line of text in style
	LineHeight(style Style) float64
	// ImageSize reports the intrinsic size of a data URL image
	ImageSize(src string) (w, h float64, err error)
}

package layout

import (
	"strconv"
	"strings"
)

// Align is the horizontal alignment of text within its box
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// WidthAuto sizes a text or link in a row to its content
const WidthAuto = "auto"

const (
	DefaultFontSize   = 10.0
	DefaultLineHeight = 1.3
)

// Edges holds the four sides of a padding or margin, in points
type Edges struct {
	Top    float64 `json:"top,omitempty"`
	Right  float64 `json:"right,omitempty"`
	Bottom float64 `json:"bottom,omitempty"`
	Left   float64 `json:"left,omitempty"`
}

// Style is the visual style of a node. Zero values mean "inherit the default".
type Style struct {
	FontFamily string  `json:"fontFamily,omitempty"`
	FontSize   float64 `json:"fontSize,omitempty"`
	Bold       bool    `json:"bold,omitempty"`
	Underline  bool    `json:"underline,omitempty"`
	Color      string  `json:"color,omitempty"`
	Align      Align   `json:"align,omitempty"`
	LineHeight float64 `json:"lineHeight,omitempty"`

	Background   string  `json:"background,omitempty"`
	BorderTop    float64 `json:"borderTop,omitempty"`
	BorderBottom float64 `json:"borderBottom,omitempty"`
	BorderColor  string  `json:"borderColor,omitempty"`

	Padding      Edges   `json:"padding,omitempty"`
	MarginTop    float64 `json:"marginTop,omitempty"`
	MarginBottom float64 `json:"marginBottom,omitempty"`

	// Width is a length such as "120", "40mm" or "25%" of the parent's inner width
	Width string  `json:"width,omitempty"`
	Flex  float64 `json:"flex,omitempty"`
}

// Size returns the font size with the default applied
func (s Style) Size() float64 {
	if s.FontSize <= 0 {
		return DefaultFontSize
	}
	return s.FontSize
}

// Leading returns the line height multiplier with the default applied
func (s Style) Leading() float64 {
	if s.LineHeight <= 0 {
		return DefaultLineHeight
	}
	return s.LineHeight
}

// ParseEdges parses shorthand like:
//   - "10"
//   - "10 20"
//   - "10 15 8"
//   - "10mm 12 8 6pt"
//
// and returns the edges in points. Percentages resolve against containerSize.
func ParseEdges(value string, containerSize float64) Edges {
	v := strings.TrimSpace(value)
	if v == "" {
		return Edges{}
	}
	parts := strings.Fields(v)
	to := func(s string) float64 { return ParseLength(s, containerSize, 0) }
	switch len(parts) {
	case 1:
		a := to(parts[0])
		return Edges{a, a, a, a}
	case 2:
		vtb := to(parts[0])
		vrl := to(parts[1])
		return Edges{vtb, vrl, vtb, vrl}
	case 3:
		t := to(parts[0])
		r := to(parts[1])
		b := to(parts[2])
		return Edges{t, r, b, r}
	default:
		return Edges{to(parts[0]), to(parts[1]), to(parts[2]), to(parts[3])}
	}
}

// Pad is ParseEdges for literal shorthand without percentages
func Pad(value string) Edges {
	return ParseEdges(value, 0)
}

var units = []struct {
	suffix string
	factor float64
}{
	{"pt", 1},
	{"px", 0.75},
	{"mm", 72 / 25.4},
	{"cm", 72 / 2.54},
	{"in", 72},
}

// ParseLength parses a length in points. Bare numbers are points.
func ParseLength(value string, containerSize float64, defaultValue float64) float64 {
	value = strings.TrimSpace(value)
	if value == "" {
		return defaultValue
	}

	if strings.HasSuffix(value, "%") {
		percentage, err := strconv.ParseFloat(value[:len(value)-1], 64)
		if err != nil {
			return defaultValue
		}
		return containerSize * percentage / 100
	}

	for _, u := range units {
		if strings.HasSuffix(value, u.suffix) {
			n, err := strconv.ParseFloat(strings.TrimSpace(value[:len(value)-len(u.suffix)]), 64)
			if err != nil {
				return defaultValue
			}
			return n * u.factor
		}
	}

	points, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return points
}

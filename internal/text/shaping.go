package text

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gompdf/invoicepdf/internal/layout"
)

// ImageSizer reports the intrinsic size of an image data URL
type ImageSizer interface {
	ImageSize(src string) (w, h float64, err error)
}

// ApproxMeasurer measures text with a fixed advance per character. It needs
// no fonts, so layout tests and the layout endpoint stay deterministic.
type ApproxMeasurer struct {
	// CharWidth is the advance of one character as a fraction of the font size
	CharWidth float64
	Images    ImageSizer
}

// NewApproxMeasurer creates a measurer with an average Latin advance
func NewApproxMeasurer() *ApproxMeasurer {
	return &ApproxMeasurer{CharWidth: 0.5}
}

var errNoImageSizer = errors.New("no image sizer configured")

func (m *ApproxMeasurer) advance(style layout.Style) float64 {
	w := m.CharWidth
	if w <= 0 {
		w = 0.5
	}
	if style.Bold {
		w *= 1.1
	}
	return w * style.Size()
}

// TextWidth returns the width of a single line of text
func (m *ApproxMeasurer) TextWidth(s string, style layout.Style) float64 {
	return float64(utf8.RuneCountInString(s)) * m.advance(style)
}

// LineHeight returns the font size times the style's leading
func (m *ApproxMeasurer) LineHeight(style layout.Style) float64 {
	return style.Size() * style.Leading()
}

// SplitLines breaks text at newlines, then wraps each paragraph at word
// boundaries. Words longer than a line are split by character.
func (m *ApproxMeasurer) SplitLines(s string, style layout.Style, maxWidth float64) []string {
	charsPerLine := int(maxWidth / m.advance(style))
	if charsPerLine <= 0 {
		charsPerLine = 1
	}

	var lines []string
	for _, para := range strings.Split(s, "\n") {
		lines = append(lines, wrap(para, charsPerLine)...)
	}
	return lines
}

func (m *ApproxMeasurer) ImageSize(src string) (float64, float64, error) {
	if m.Images == nil {
		return 0, 0, errNoImageSizer
	}
	return m.Images.ImageSize(src)
}

func wrap(para string, limit int) []string {
	words := splitIntoWords(para)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	var current []rune
	for _, word := range words {
		w := []rune(word)
		for len(w) > limit {
			if len(current) > 0 {
				lines = append(lines, string(current))
				current = nil
			}
			lines = append(lines, string(w[:limit]))
			w = w[limit:]
		}
		switch {
		case len(current) == 0:
			current = w
		case len(current)+1+len(w) > limit:
			lines = append(lines, string(current))
			current = w
		default:
			current = append(append(current, ' '), w...)
		}
	}
	if len(current) > 0 {
		lines = append(lines, string(current))
	}
	return lines
}

// splitIntoWords splits text into words
func splitIntoWords(text string) []string {
	return strings.FieldsFunc(text, unicode.IsSpace)
}

package pdf

import (
	"strings"
	"sync"

	"codeberg.org/go-pdf/fpdf"

	"github.com/gompdf/invoicepdf/internal/layout"
	"github.com/gompdf/invoicepdf/internal/res"
)

// Measurer measures text with the same fonts the renderer embeds
type Measurer struct {
	mu     sync.Mutex
	pdf    *fpdf.Fpdf
	family string
	loader *res.Loader
}

func newMeasurer(fs *fontSet, loader *res.Loader) (*Measurer, error) {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetCellMargin(0)
	if err := fs.register(pdf); err != nil {
		return nil, err
	}
	return &Measurer{pdf: pdf, family: fs.family, loader: loader}, nil
}

func (m *Measurer) setFont(style layout.Style) {
	m.pdf.SetFont(m.family, fontStyle(style.Bold, false), style.Size())
}

// TextWidth returns the width of s on one line
func (m *Measurer) TextWidth(s string, style layout.Style) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setFont(style)
	return m.pdf.GetStringWidth(s)
}

// SplitLines wraps text at word boundaries to fit width. Newlines always
// break.
func (m *Measurer) SplitLines(text string, style layout.Style, width float64) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setFont(style)

	var lines []string
	for _, para := range strings.Split(text, "\n") {
		if strings.TrimSpace(para) == "" {
			lines = append(lines, "")
			continue
		}
		if m.pdf.GetStringWidth(para) <= width {
			lines = append(lines, para)
			continue
		}
		lines = append(lines, m.pdf.SplitText(para, width)...)
	}
	return lines
}

// LineHeight returns the font size times the style's leading
func (m *Measurer) LineHeight(style layout.Style) float64 {
	return style.Size() * style.Leading()
}

// ImageSize reports the pixel size of a data URL image
func (m *Measurer) ImageSize(src string) (float64, float64, error) {
	return m.loader.ImageSize(src)
}

package pdf

import (
	"fmt"

	"codeberg.org/go-pdf/fpdf"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gompdf/invoicepdf/internal/res"
)

// DefaultFontFamily is the embedded Go font. It covers Latin, Latin-2 and
// Cyrillic, which every invoice language needs.
const DefaultFontFamily = "Go"

// fontSet holds the TrueType bytes for one family
type fontSet struct {
	family  string
	regular []byte
	bold    []byte
}

// loadFonts returns the configured family from the font directories, or
// the embedded Go fonts when no family is configured.
func loadFonts(family string, dirs []string) (*fontSet, error) {
	if family == "" || family == DefaultFontFamily {
		return &fontSet{family: DefaultFontFamily, regular: goregular.TTF, bold: gobold.TTF}, nil
	}

	loader := res.NewFileLoader()
	for _, d := range dirs {
		loader.AddSearchPath(d)
	}
	regular, err := loader.LoadFont(family + "-Regular.ttf")
	if err != nil {
		return nil, fmt.Errorf("failed to load font %s: %w", family, err)
	}
	fs := &fontSet{family: family, regular: regular.Data, bold: regular.Data}
	if bold, err := loader.LoadFont(family + "-Bold.ttf"); err == nil {
		fs.bold = bold.Data
	}
	return fs, nil
}

// register adds the family to a document
func (fs *fontSet) register(pdf *fpdf.Fpdf) error {
	pdf.AddUTF8FontFromBytes(fs.family, "", fs.regular)
	pdf.AddUTF8FontFromBytes(fs.family, "B", fs.bold)
	if err := pdf.Error(); err != nil {
		return fmt.Errorf("failed to register font %s: %w", fs.family, err)
	}
	return nil
}

func fontStyle(bold, underline bool) string {
	s := ""
	if bold {
		s += "B"
	}
	if underline {
		s += "U"
	}
	return s
}

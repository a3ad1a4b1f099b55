package pdf

import (
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"codeberg.org/go-pdf/fpdf"
	"go.uber.org/zap"

	"github.com/gompdf/invoicepdf/internal/layout"
	"github.com/gompdf/invoicepdf/internal/pagination"
	"github.com/gompdf/invoicepdf/internal/res"
)

// Renderer handles rendering to PDF
type Renderer struct {
	// FontDirs are searched for <FontFamily>-Regular.ttf and -Bold.ttf
	FontDirs []string
	// FontFamily selects a family from FontDirs; empty uses the embedded Go fonts
	FontFamily string
	// RenderBackgrounds controls whether box backgrounds are painted
	RenderBackgrounds bool
	// RenderBorders controls whether rules are painted
	RenderBorders bool
	// DebugDrawBoxes outlines every text and image item
	DebugDrawBoxes bool
	Logger         *zap.Logger

	loader *res.Loader
	fonts  *fontSet
}

// RenderOptions contains options for rendering
type RenderOptions struct {
	Title    string
	Author   string
	Subject  string
	Keywords string
	Creator  string
	Producer string
	// CreationDate is written to the info dictionary; zero uses the current time
	CreationDate time.Time
}

// NewRenderer creates a new PDF renderer
func NewRenderer() *Renderer {
	return &Renderer{
		FontDirs:          []string{},
		RenderBackgrounds: true,
		RenderBorders:     true,
		Logger:            zap.NewNop(),
		loader:            res.NewLoader(),
	}
}

// AddFontDirectory adds a directory to search for fonts
func (r *Renderer) AddFontDirectory(dir string) {
	r.FontDirs = append(r.FontDirs, dir)
}

// Loader returns the image loader shared by the renderer and its measurer
func (r *Renderer) Loader() *res.Loader {
	return r.loader
}

func (r *Renderer) fontSet() (*fontSet, error) {
	if r.fonts == nil || r.fonts.family != r.family() {
		fs, err := loadFonts(r.FontFamily, r.FontDirs)
		if err != nil {
			return nil, err
		}
		r.fonts = fs
	}
	return r.fonts, nil
}

func (r *Renderer) family() string {
	if r.FontFamily == "" {
		return DefaultFontFamily
	}
	return r.FontFamily
}

// NewMeasurer returns a measurer that uses the renderer's fonts, so text
// wraps exactly as it will be drawn.
func (r *Renderer) NewMeasurer() (*Measurer, error) {
	fs, err := r.fontSet()
	if err != nil {
		return nil, err
	}
	return newMeasurer(fs, r.loader)
}

// Render writes pages to w as a PDF document
func (r *Renderer) Render(pages []*pagination.Page, w io.Writer, options RenderOptions) error {
	if len(pages) == 0 {
		return fmt.Errorf("no pages to render")
	}
	fs, err := r.fontSet()
	if err != nil {
		return err
	}

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: pages[0].Width, Ht: pages[0].Height},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)
	pdf.SetCatalogSort(true)
	pdf.SetTitle(options.Title, true)
	pdf.SetAuthor(options.Author, true)
	pdf.SetSubject(options.Subject, true)
	pdf.SetKeywords(options.Keywords, true)
	pdf.SetCreator(options.Creator, true)
	pdf.SetProducer(options.Producer, true)
	created := options.CreationDate
	if created.IsZero() {
		created = time.Now()
	}
	pdf.SetCreationDate(created)
	pdf.SetModificationDate(created)
	if err := fs.register(pdf); err != nil {
		return err
	}

	r.Logger.Debug("rendering pages", zap.Int("pages", len(pages)), zap.String("font", fs.family))
	for _, page := range pages {
		pdf.AddPageFormat("P", fpdf.SizeType{Wd: page.Width, Ht: page.Height})
		for i := range page.Items {
			r.renderItem(pdf, fs, &page.Items[i])
		}
		if err := pdf.Error(); err != nil {
			return fmt.Errorf("failed to render page %d: %w", page.Number, err)
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}
	return nil
}

func (r *Renderer) renderItem(pdf *fpdf.Fpdf, fs *fontSet, it *pagination.Item) {
	switch it.Kind {
	case pagination.ItemRect:
		if !r.RenderBackgrounds {
			return
		}
		c := parseColor(it.Color)
		pdf.SetFillColor(c[0], c[1], c[2])
		pdf.Rect(it.X, it.Y, it.Width, it.Height, "F")
	case pagination.ItemLine:
		if !r.RenderBorders {
			return
		}
		c := parseColor(it.Color)
		pdf.SetDrawColor(c[0], c[1], c[2])
		pdf.SetLineWidth(it.Height)
		pdf.Line(it.X, it.Y, it.X+it.Width, it.Y)
	case pagination.ItemImage:
		r.renderImage(pdf, it)
	case pagination.ItemText:
		r.renderText(pdf, fs, it)
	}
}

func (r *Renderer) renderImage(pdf *fpdf.Fpdf, it *pagination.Item) {
	img, err := r.loader.LoadImage(it.Src)
	if err != nil {
		// a broken logo or QR image leaves its box empty
		r.Logger.Warn("skipping image", zap.Error(err), zap.String("region", string(it.Region)))
		return
	}

	sum := sha1.Sum([]byte(it.Src))
	name := hex.EncodeToString(sum[:])
	opts := fpdf.ImageOptions{ImageType: img.Format}
	if info := pdf.GetImageInfo(name); info == nil {
		pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(img.Data))
	}
	pdf.ImageOptions(name, it.X, it.Y, it.Width, it.Height, false, opts, 0, "")

	if r.DebugDrawBoxes {
		pdf.SetDrawColor(0, 0, 200)
		pdf.SetLineWidth(0.5)
		pdf.Rect(it.X, it.Y, it.Width, it.Height, "D")
	}
}

// renderText draws each line on its baseline. The baseline sits at the
// font's approximate ascent plus half the leading.
func (r *Renderer) renderText(pdf *fpdf.Fpdf, fs *fontSet, it *pagination.Item) {
	st := it.Style
	size := st.Size()
	pdf.SetFont(fs.family, fontStyle(st.Bold, st.Underline), size)
	c := parseColor(st.Color)
	pdf.SetTextColor(c[0], c[1], c[2])

	ascent := 0.8 * size
	half := (it.LineHeight - size) / 2
	for i, line := range it.Lines {
		if line == "" {
			continue
		}
		width := pdf.GetStringWidth(line)
		x := it.X
		switch st.Align {
		case layout.AlignCenter:
			x += (it.Width - width) / 2
		case layout.AlignRight:
			x += it.Width - width
		}
		if x < it.X {
			x = it.X
		}
		top := it.Y + float64(i)*it.LineHeight
		pdf.Text(x, top+half+ascent, line)
		if it.URL != "" {
			pdf.LinkString(x, top, width, it.LineHeight, it.URL)
		}
	}

	if r.DebugDrawBoxes {
		pdf.SetDrawColor(255, 0, 0)
		pdf.SetLineWidth(0.1)
		pdf.Rect(it.X, it.Y, it.Width, it.Height, "D")
	}
}

// parseColor parses a CSS color value
func parseColor(value string) [3]int {
	if strings.HasPrefix(value, "#") {
		if r, g, b, ok := parseHexColor(value); ok {
			return [3]int{r, g, b}
		}
	}

	var r, g, b int
	if _, err := fmt.Sscanf(value, "rgb(%d,%d,%d)", &r, &g, &b); err == nil {
		return [3]int{r, g, b}
	}
	if _, err := fmt.Sscanf(value, "rgb(%d, %d, %d)", &r, &g, &b); err == nil {
		return [3]int{r, g, b}
	}

	return [3]int{0, 0, 0}
}

// parseHexColor parses #RRGGBB or #RGB into r,g,b
func parseHexColor(s string) (int, int, int, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int((v >> 16) & 0xff), int((v >> 8) & 0xff), int(v & 0xff), true
}

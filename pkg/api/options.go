package api

import (
	"go.uber.org/zap"

	"github.com/gompdf/invoicepdf/internal/format"
	"github.com/gompdf/invoicepdf/internal/templates"
)

// Options represents configuration options for the invoice generator
type Options struct {
	// Page dimensions in points
	PageWidth  float64
	PageHeight float64
	// Page orientation: portrait or landscape
	PageOrientation PageOrientation

	// Page margins
	MarginTop    float64
	MarginRight  float64
	MarginBottom float64
	MarginLeft   float64

	// Debug logs page geometry and layout statistics at info level
	Debug bool

	// Visual rendering toggles
	// When false, fills will not be painted
	RenderBackgrounds bool
	// When false, rules will not be painted
	RenderBorders bool
	// When true, outline every text and image item
	DebugDrawBoxes bool

	// LocalFiles lets a logo name a local file instead of a data URL.
	// Leave it off for untrusted input.
	LocalFiles bool
	// ResourcePaths are searched for logo files given by name when LocalFiles is set
	ResourcePaths []string
	// FontDirectories hold <FontFamily>-Regular.ttf and -Bold.ttf
	FontDirectories []string
	// FontFamily selects a family from FontDirectories; empty uses the embedded Go fonts
	FontFamily string

	// AttributionURL is the target of the footer link
	AttributionURL string
	// QRSize is the pixel size of QR images generated from a payload
	QRSize int

	Logger   *zap.Logger
	Reporter format.ErrorReporter
}

// Option is a function that modifies Options
type Option func(*Options)

// PageOrientation represents page orientation
type PageOrientation string

const (
	// PageOrientationPortrait sets the page to portrait orientation
	PageOrientationPortrait PageOrientation = "portrait"
	// PageOrientationLandscape sets the page to landscape orientation
	PageOrientationLandscape PageOrientation = "landscape"
)

// DefaultOptions returns the default options
func DefaultOptions() Options {
	page := templates.DefaultPage
	return Options{
		PageWidth:       page.Width,
		PageHeight:      page.Height,
		PageOrientation: PageOrientationPortrait,

		MarginTop:    page.Margins.Top,
		MarginRight:  page.Margins.Right,
		MarginBottom: page.Margins.Bottom,
		MarginLeft:   page.Margins.Left,

		RenderBackgrounds: true,
		RenderBorders:     true,

		ResourcePaths:   []string{},
		FontDirectories: []string{},

		AttributionURL: templates.DefaultAttributionURL,
	}
}

// WithPageSize sets the page size
func WithPageSize(width, height float64) Option {
	return func(o *Options) {
		o.PageWidth = width
		o.PageHeight = height
	}
}

// WithMargins sets the page margins
func WithMargins(top, right, bottom, left float64) Option {
	return func(o *Options) {
		o.MarginTop = top
		o.MarginRight = right
		o.MarginBottom = bottom
		o.MarginLeft = left
	}
}

// WithDebug sets the debug mode
func WithDebug(debug bool) Option {
	return func(o *Options) {
		o.Debug = debug
	}
}

// WithLocalFiles allows logos to be read from local files
func WithLocalFiles(enabled bool) Option {
	return func(o *Options) {
		o.LocalFiles = enabled
	}
}

// WithResourcePath adds a path to search for logo files
func WithResourcePath(path string) Option {
	return func(o *Options) {
		o.ResourcePaths = append(o.ResourcePaths, path)
	}
}

// WithFontDirectory adds a directory to search for fonts
func WithFontDirectory(dir string) Option {
	return func(o *Options) {
		o.FontDirectories = append(o.FontDirectories, dir)
	}
}

// WithFontFamily selects the font family loaded from the font directories
func WithFontFamily(family string) Option {
	return func(o *Options) {
		o.FontFamily = family
	}
}

// WithAttributionURL sets the footer link target
func WithAttributionURL(u string) Option {
	return func(o *Options) {
		o.AttributionURL = u
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithReporter sets where formatting fallbacks are reported
func WithReporter(r format.ErrorReporter) Option {
	return func(o *Options) {
		o.Reporter = r
	}
}

// WithPageOrientation sets the page orientation
func WithPageOrientation(orientation PageOrientation) Option {
	return func(o *Options) {
		o.PageOrientation = orientation
	}
}

// Standard page sizes in points (1/72 inch)
const (
	PageSizeA3Width  = 841.89
	PageSizeA3Height = 1190.55
	PageSizeA4Width  = 595.28
	PageSizeA4Height = 841.89
	PageSizeA5Width  = 419.53
	PageSizeA5Height = 595.28

	// US Letter and Legal
	PageSizeLetterWidth  = 612
	PageSizeLetterHeight = 792
	PageSizeLegalWidth   = 612
	PageSizeLegalHeight  = 1008
)

// WithPageSizeA4 sets the page size to A4
func WithPageSizeA4() Option {
	return WithPageSize(PageSizeA4Width, PageSizeA4Height)
}

// WithPageSizeLetter sets the page size to US Letter
func WithPageSizeLetter() Option {
	return WithPageSize(PageSizeLetterWidth, PageSizeLetterHeight)
}

// WithPageSizeLegal sets the page size to US Legal
func WithPageSizeLegal() Option {
	return WithPageSize(PageSizeLegalWidth, PageSizeLegalHeight)
}

// PageSizeByName maps "A4", "Letter" and the other standard names to a size
func PageSizeByName(name string) (width, height float64, ok bool) {
	switch name {
	case "A3", "a3":
		return PageSizeA3Width, PageSizeA3Height, true
	case "A4", "a4", "":
		return PageSizeA4Width, PageSizeA4Height, true
	case "A5", "a5":
		return PageSizeA5Width, PageSizeA5Height, true
	case "Letter", "letter":
		return PageSizeLetterWidth, PageSizeLetterHeight, true
	case "Legal", "legal":
		return PageSizeLegalWidth, PageSizeLegalHeight, true
	}
	return 0, 0, false
}

// Package invoicepdf renders invoices to PDF. It re-exports the generator
// from pkg/api together with the input types it needs.
package invoicepdf

import (
	"io"

	"github.com/gompdf/invoicepdf/internal/i18n"
	"github.com/gompdf/invoicepdf/internal/invoice"
	"github.com/gompdf/invoicepdf/pkg/api"
)

type Generator = api.Generator
type Options = api.Options
type Option = api.Option
type PageOrientation = api.PageOrientation

type Data = invoice.Data
type Language = i18n.Language

func New() *Generator                           { return api.New() }
func NewWithOptions(options Options) *Generator { return api.NewWithOptions(options) }
func DefaultOptions() Options                   { return api.DefaultOptions() }

// Decode reads invoice JSON and applies defaults
func Decode(r io.Reader) (*Data, error) { return invoice.Decode(r) }

// DecodeShareLink decodes a compressed share-link payload
func DecodeShareLink(payload string) (*Data, error) { return invoice.DecodeShareLink(payload) }

// ParseLanguages parses a comma separated list such as "en,pl"
func ParseLanguages(s string) ([]Language, error) { return i18n.ParseLanguages(s) }

var (
	WithPageSize        = api.WithPageSize
	WithMargins         = api.WithMargins
	WithDebug           = api.WithDebug
	WithLocalFiles      = api.WithLocalFiles
	WithResourcePath    = api.WithResourcePath
	WithFontDirectory   = api.WithFontDirectory
	WithFontFamily      = api.WithFontFamily
	WithAttributionURL  = api.WithAttributionURL
	WithLogger          = api.WithLogger
	WithReporter        = api.WithReporter
	WithPageSizeA4      = api.WithPageSizeA4
	WithPageSizeLetter  = api.WithPageSizeLetter
	WithPageSizeLegal   = api.WithPageSizeLegal
	WithPageOrientation = api.WithPageOrientation
	WriteZip            = api.WriteZip
	FileName            = api.FileName
)

const (
	PageSizeA3Width  = api.PageSizeA3Width
	PageSizeA3Height = api.PageSizeA3Height
	PageSizeA4Width  = api.PageSizeA4Width
	PageSizeA4Height = api.PageSizeA4Height
	PageSizeA5Width  = api.PageSizeA5Width
	PageSizeA5Height = api.PageSizeA5Height

	PageSizeLetterWidth  = api.PageSizeLetterWidth
	PageSizeLetterHeight = api.PageSizeLetterHeight
	PageSizeLegalWidth   = api.PageSizeLegalWidth
	PageSizeLegalHeight  = api.PageSizeLegalHeight

	PageOrientationPortrait  = api.PageOrientationPortrait
	PageOrientationLandscape = api.PageOrientationLandscape
)

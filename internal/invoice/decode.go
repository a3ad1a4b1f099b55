package invoice

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	lzstring "github.com/daku10/go-lz-string"

	"github.com/gompdf/invoicepdf/internal/i18n"
)

// ErrInvalidShareLink is returned when a share link payload cannot be decompressed
var ErrInvalidShareLink = errors.New("invalid share link")

// Decode reads invoice JSON, rejecting unknown fields, and applies defaults
func Decode(r io.Reader) (*Data, error) {
	d := Defaults()
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(d); err != nil {
		return nil, fmt.Errorf("failed to decode invoice: %w", err)
	}
	d.normalize()
	return d, nil
}

// DecodeBytes is Decode over an in-memory document
func DecodeBytes(b []byte) (*Data, error) {
	return Decode(bytes.NewReader(b))
}

func (d *Data) normalize() {
	d.Template = ParseTemplate(string(d.Template))
	if strings.TrimSpace(d.DateFormat) == "" {
		d.DateFormat = DefaultDateFormat
	}
	if strings.TrimSpace(d.TaxLabelText) == "" {
		d.TaxLabelText = DefaultTaxLabel
	}
	d.Currency = Currency(strings.ToUpper(strings.TrimSpace(string(d.Currency))))
	if l, err := i18n.ParseLanguage(string(d.Language)); err == nil {
		d.Language = l
	}
}

// EncodeShareLink serializes d into the compressed URI-safe share payload
func EncodeShareLink(d *Data) (string, error) {
	b, err := json.Marshal(d)
	if err != nil {
		return "", fmt.Errorf("failed to encode invoice: %w", err)
	}
	s, err := lzstring.CompressToEncodedURIComponent(string(b))
	if err != nil {
		return "", fmt.Errorf("failed to compress share link: %w", err)
	}
	return s, nil
}

// DecodeShareLink decodes a share payload produced by EncodeShareLink
func DecodeShareLink(payload string) (*Data, error) {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return nil, fmt.Errorf("%w: empty payload", ErrInvalidShareLink)
	}
	s, err := lzstring.DecompressFromEncodedURIComponent(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidShareLink, err)
	}
	if s == "" {
		return nil, fmt.Errorf("%w: payload decompressed to nothing", ErrInvalidShareLink)
	}
	d, err := Decode(strings.NewReader(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidShareLink, err)
	}
	return d, nil
}

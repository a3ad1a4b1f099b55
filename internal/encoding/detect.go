// Package encoding normalizes invoice files saved by desktop tools to UTF-8
// before they reach the JSON decoder.
package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	xencoding "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// charsets maps chardet results to decoders. Polish, Russian and Ukrainian
// exports commonly arrive in the Windows code pages.
var charsets = map[string]xencoding.Encoding{
	"ISO-8859-1":   charmap.Windows1252,
	"windows-1252": charmap.Windows1252,
	"ISO-8859-2":   charmap.ISO8859_2,
	"windows-1250": charmap.Windows1250,
	"ISO-8859-5":   charmap.ISO8859_5,
	"windows-1251": charmap.Windows1251,
	"KOI8-R":       charmap.KOI8R,
	"ISO-8859-9":   charmap.ISO8859_9,
}

// NewUTF8Reader detects the encoding of the input and returns a reader
// that decodes the content to UTF-8.
//
// Detection order:
//  1. Check for BOM (UTF-8 BOM is stripped; UTF-16 LE/BE is decoded)
//  2. Validate if the content is valid UTF-8 and return as-is
//  3. Heuristic detection via chardet
//  4. Fallback to Windows-1252
func NewUTF8Reader(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)

	buf, err := br.Peek(4096)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, fmt.Errorf("peek: %w", err)
	}
	complete := err == io.EOF

	if bytes.HasPrefix(buf, bomUTF8) {
		_, _ = br.Discard(len(bomUTF8))
		return br, nil
	}
	if bytes.HasPrefix(buf, bomUTF16LE) {
		decoder := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		return transform.NewReader(br, decoder), nil
	}
	if bytes.HasPrefix(buf, bomUTF16BE) {
		decoder := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()
		return transform.NewReader(br, decoder), nil
	}

	if validUTF8(buf, complete) {
		return br, nil
	}

	if enc, ok := Detect(buf); ok {
		if enc == nil {
			return br, nil
		}
		return transform.NewReader(br, enc.NewDecoder()), nil
	}
	return transform.NewReader(br, charmap.Windows1252.NewDecoder()), nil
}

// validUTF8 allows a truncated rune at the end of a partial window
func validUTF8(b []byte, complete bool) bool {
	if complete {
		return utf8.Valid(b)
	}
	for i := 0; i < utf8.UTFMax && len(b) > 0; i++ {
		if utf8.Valid(b) {
			return true
		}
		b = b[:len(b)-1]
	}
	return utf8.Valid(b)
}

// Detect guesses the charset of b. A nil encoding with ok set means UTF-8.
func Detect(b []byte) (xencoding.Encoding, bool) {
	result, err := chardet.NewTextDetector().DetectBest(b)
	if err != nil {
		return nil, false
	}
	if result.Charset == "UTF-8" {
		return nil, true
	}
	enc, ok := charsets[result.Charset]
	return enc, ok
}

// ReadAll reads r fully and returns it as UTF-8
func ReadAll(r io.Reader) ([]byte, error) {
	u, err := NewUTF8Reader(r)
	if err != nil {
		return nil, err
	}
	b, err := io.ReadAll(u)
	if err != nil {
		return nil, fmt.Errorf("failed to decode input: %w", err)
	}
	return b, nil
}

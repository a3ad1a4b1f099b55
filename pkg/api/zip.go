package api

import (
	"archive/zip"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gompdf/invoicepdf/internal/i18n"
)

// FileName is the archive entry name for one language's PDF
func FileName(number string, lang i18n.Language) string {
	n := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|', ' ':
			return '-'
		}
		return r
	}, strings.TrimSpace(number))
	if n == "" {
		return fmt.Sprintf("invoice-%s.pdf", lang)
	}
	return fmt.Sprintf("invoice-%s-%s.pdf", n, lang)
}

// WriteZip streams one PDF per language to w. Entries follow the order of
// i18n.Supported so archives are reproducible.
func WriteZip(w io.Writer, number string, modified time.Time, results map[i18n.Language][]byte) error {
	zw := zip.NewWriter(w)
	for _, lang := range i18n.Supported() {
		b, ok := results[lang]
		if !ok {
			continue
		}
		f, err := zw.CreateHeader(&zip.FileHeader{
			Name:     FileName(number, lang),
			Method:   zip.Deflate,
			Modified: modified,
		})
		if err != nil {
			return fmt.Errorf("failed to create zip entry: %w", err)
		}
		if _, err := f.Write(b); err != nil {
			return fmt.Errorf("failed to write zip entry: %w", err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finish zip: %w", err)
	}
	return nil
}

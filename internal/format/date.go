package format

import (
	"strings"

	"github.com/goodsign/monday"

	"github.com/gompdf/invoicepdf/internal/i18n"
	"github.com/gompdf/invoicepdf/internal/invoice"
)

// Fixed patterns used by the templates regardless of the invoice's date format
const (
	ServicePeriodPattern = "MMM DD YYYY"
	FooterDuePattern     = "MMM D, YYYY"
	StripeDuePattern     = "MMMM D, YYYY"
)

// dayjs style tokens, longest first, mapped to Go reference layout pieces
var dateTokens = []struct{ token, layout string }{
	{"YYYY", "2006"},
	{"YY", "06"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"MM", "01"},
	{"M", "1"},
	{"DD", "02"},
	{"D", "2"},
	{"dddd", "Monday"},
	{"ddd", "Mon"},
}

// separators that can be copied into a Go layout unchanged
const layoutSafe = " ,.-/:"

// FormatDate renders d using a dayjs style pattern. Text in square brackets
// is copied verbatim. Month and weekday names come from lang's locale.
func FormatDate(d invoice.Date, pattern string, lang i18n.Language) string {
	if d.IsZero() {
		return ""
	}
	layout, literals := dateLayout(pattern)
	out := monday.Format(d.Time, layout, lang.DateLocale())
	for i, lit := range literals {
		out = strings.Replace(out, placeholder(i), lit, 1)
	}
	return out
}

// dateLayout converts pattern into a Go layout. Literal text that Go could
// mistake for a layout element is swapped for placeholders.
func dateLayout(pattern string) (string, []string) {
	var (
		b        strings.Builder
		literals []string
		pending  strings.Builder
	)
	flush := func() {
		if pending.Len() == 0 {
			return
		}
		b.WriteString(placeholder(len(literals)))
		literals = append(literals, pending.String())
		pending.Reset()
	}

	for i := 0; i < len(pattern); {
		if pattern[i] == '[' {
			end := strings.IndexByte(pattern[i:], ']')
			if end > 0 {
				pending.WriteString(pattern[i+1 : i+end])
				i += end + 1
				continue
			}
		}
		matched := false
		for _, t := range dateTokens {
			if strings.HasPrefix(pattern[i:], t.token) {
				flush()
				b.WriteString(t.layout)
				i += len(t.token)
				matched = true
				break
			}
		}
		if matched {
			continue
		}
		if strings.IndexByte(layoutSafe, pattern[i]) >= 0 {
			flush()
			b.WriteByte(pattern[i])
		} else {
			pending.WriteByte(pattern[i])
		}
		i++
	}
	flush()
	return b.String(), literals
}

func placeholder(i int) string {
	return "\x00" + string(rune('a'+i%26)) + "\x00"
}

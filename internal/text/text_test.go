package text

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gompdf/invoicepdf/internal/layout"
)

func TestSplitLinesWrapsAtWords(t *testing.T) {
	m := NewApproxMeasurer()
	st := layout.Style{FontSize: 10}

	// 5pt per char, 50pt is 10 chars
	lines := m.SplitLines("alpha beta gamma delta", st, 50)
	assert.Equal(t, []string{"alpha beta", "gamma", "delta"}, lines)
}

func TestSplitLinesKeepsNewlines(t *testing.T) {
	m := NewApproxMeasurer()
	lines := m.SplitLines("one\n\ntwo", layout.Style{FontSize: 10}, 500)
	assert.Equal(t, []string{"one", "", "two"}, lines)
}

func TestSplitLinesBreaksLongWords(t *testing.T) {
	m := NewApproxMeasurer()
	lines := m.SplitLines("abcdefghijkl", layout.Style{FontSize: 10}, 25)
	assert.Equal(t, []string{"abcde", "fghij", "kl"}, lines)
}

func TestSplitLinesCountsRunes(t *testing.T) {
	m := NewApproxMeasurer()
	lines := m.SplitLines("żółć gęś", layout.Style{FontSize: 10}, 40)
	assert.Equal(t, []string{"żółć gęś"}, lines)
}

func TestTextWidthAndLineHeight(t *testing.T) {
	m := NewApproxMeasurer()
	assert.InDelta(t, 20.0, m.TextWidth("abcd", layout.Style{FontSize: 10}), 1e-9)
	assert.InDelta(t, 22.0, m.TextWidth("abcd", layout.Style{FontSize: 10, Bold: true}), 1e-9)
	assert.InDelta(t, 13.0, m.LineHeight(layout.Style{FontSize: 10}), 1e-9)
	assert.InDelta(t, 24.0, m.LineHeight(layout.Style{FontSize: 20, LineHeight: 1.2}), 1e-9)
}

type fixedSizer struct{}

func (fixedSizer) ImageSize(string) (float64, float64, error) { return 200, 100, nil }

func TestImageSize(t *testing.T) {
	m := NewApproxMeasurer()
	_, _, err := m.ImageSize("data:image/png;base64,")
	assert.True(t, errors.Is(err, errNoImageSizer))

	m.Images = fixedSizer{}
	w, h, err := m.ImageSize("x")
	require.NoError(t, err)
	assert.Equal(t, 200.0, w)
	assert.Equal(t, 100.0, h)
}

func TestPlainText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "  Thanks for your business  ", "Thanks for your business"},
		{"breaks", "line one<br>line two<br/>three", "line one\nline two\nthree"},
		{"paragraphs", "<p>One</p><p>Two</p>", "One\n\nTwo"},
		{"entities", "Fish &amp; Chips &lt;3", "Fish & Chips <3"},
		{"inline", "Pay <b>now</b> or <i>later</i>", "Pay now or later"},
		{"list", "<ul><li>a</li><li>b</li></ul>", "• a\n• b"},
		{"script", "ok<script>alert(1)</script>", "ok"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlainText(tt.in))
		})
	}
}

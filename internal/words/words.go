// Package words spells non-negative integers out in the supported languages.
package words

import (
	"errors"
	"fmt"
	"strings"

	"github.com/divan/num2words"

	"github.com/gompdf/invoicepdf/internal/i18n"
)

// Limit is the first value Spell refuses
const Limit int64 = 1_000_000_000_000

// ErrOutOfRange is returned for negative values and values at or above Limit
var ErrOutOfRange = errors.New("number out of range")

type speller interface {
	spell(n int64) string
}

var spellers = map[i18n.Language]speller{
	i18n.English:    english{},
	i18n.Polish:     polish,
	i18n.Russian:    russian,
	i18n.Ukrainian:  ukrainian,
	i18n.German:     german{},
	i18n.Dutch:      dutch{},
	i18n.French:     french{},
	i18n.Italian:    italian{},
	i18n.Spanish:    spanish{},
	i18n.Portuguese: portuguese{},
}

// Spell returns n written out in words
func Spell(n int64, lang i18n.Language) (string, error) {
	if n < 0 || n >= Limit {
		return "", fmt.Errorf("%w: %d", ErrOutOfRange, n)
	}
	s, ok := spellers[lang]
	if !ok {
		return "", fmt.Errorf("%w: %q", i18n.ErrUnsupportedLanguage, string(lang))
	}
	return s.spell(n), nil
}

type english struct{}

func (english) spell(n int64) string {
	return num2words.Convert(int(n))
}

// groups splits n into base-1000 groups, least significant first
func groups(n int64) []int {
	if n == 0 {
		return []int{0}
	}
	var out []int
	for n > 0 {
		out = append(out, int(n%1000))
		n /= 1000
	}
	return out
}

func join(parts ...string) string {
	out := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}

package i18n

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goodsign/monday"
	"golang.org/x/text/language"
)

// ErrUnsupportedLanguage is returned when a language code is not in the supported set
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Language is one of the supported invoice languages
type Language string

const (
	English    Language = "en"
	Polish     Language = "pl"
	German     Language = "de"
	Spanish    Language = "es"
	Portuguese Language = "pt"
	Russian    Language = "ru"
	Ukrainian  Language = "uk"
	French     Language = "fr"
	Italian    Language = "it"
	Dutch      Language = "nl"
)

var supported = []Language{
	English, Polish, German, Spanish, Portuguese, Russian, Ukrainian, French, Italian, Dutch,
}

// Supported returns the supported languages in a stable order
func Supported() []Language {
	out := make([]Language, len(supported))
	copy(out, supported)
	return out
}

// ParseLanguage parses a language code such as "en" or "pl-PL"
func ParseLanguage(s string) (Language, error) {
	code := strings.ToLower(strings.TrimSpace(s))
	if i := strings.IndexAny(code, "-_"); i > 0 {
		code = code[:i]
	}
	for _, l := range supported {
		if string(l) == code {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, s)
}

// ParseLanguages parses a comma separated list of language codes
func ParseLanguages(s string) ([]Language, error) {
	var out []Language
	seen := make(map[Language]bool)
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		l, err := ParseLanguage(part)
		if err != nil {
			return nil, err
		}
		if !seen[l] {
			seen[l] = true
			out = append(out, l)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: empty list", ErrUnsupportedLanguage)
	}
	return out, nil
}

// IsSupported reports whether l has a localization entry
func (l Language) IsSupported() bool {
	_, ok := table[l]
	return ok
}

// Tag returns the BCP 47 tag used for number formatting
func (l Language) Tag() language.Tag {
	return MustLookup(l).Tag
}

// DateLocale returns the locale used for month and weekday names
func (l Language) DateLocale() monday.Locale {
	return MustLookup(l).DateLocale
}

func (l Language) String() string {
	return string(l)
}

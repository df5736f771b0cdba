package devtools

import (
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/leonelquinteros/gotext"
)

//go:embed locales/*.po
var locales embed.FS

// ErrUnknownLanguage is returned by LoadLabels when no catalogue exists
var ErrUnknownLanguage = errors.New("unknown language")

// Labels holds the translated section titles used by dumps and previews
type Labels struct {
	lang string
	po   *gotext.Po
}

// Languages lists the bundled catalogues
func Languages() []string {
	return []string{"en", "de"}
}

// LoadLabels loads the catalogue for lang. Region suffixes are ignored, so
// "de_DE.UTF-8" loads "de".
func LoadLabels(lang string) (*Labels, error) {
	base := strings.ToLower(lang)
	if i := strings.IndexAny(base, "_-."); i >= 0 {
		base = base[:i]
	}
	if base == "" {
		base = "en"
	}

	buf, err := locales.ReadFile("locales/" + base + ".po")
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
	}

	po := gotext.NewPo()
	po.Parse(buf)
	return &Labels{lang: base, po: po}, nil
}

// MustLoadLabels is LoadLabels that panics on error
func MustLoadLabels(lang string) *Labels {
	l, err := LoadLabels(lang)
	if err != nil {
		panic(err)
	}
	return l
}

// Language returns the loaded catalogue's language code
func (l *Labels) Language() string {
	if l == nil {
		return ""
	}
	return l.lang
}

// Get returns the translation for key, formatted with vars. A nil Labels or a
// missing key yields the key itself.
func (l *Labels) Get(key string, vars ...any) string {
	if l == nil {
		if len(vars) == 0 {
			return key
		}
		return fmt.Sprintf(key, vars...)
	}
	return l.po.Get(key, vars...)
}

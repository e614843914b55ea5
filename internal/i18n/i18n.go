// Package i18n resolves the UI locale and prints localized rental desk strings.
package i18n

import (
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	supported = []language.Tag{language.Spanish, language.English}
	matcher   = language.NewMatcher(supported)

	dateLayouts = map[language.Tag]string{
		language.Spanish: "02/01/2006",
		language.English: "1/2/2006",
	}
)

// Supported returns the list of supported language tags. The first entry is
// the default.
func Supported() []language.Tag {
	return append([]language.Tag(nil), supported...)
}

// Default returns the default language tag.
func Default() language.Tag {
	return supported[0]
}

// Resolve maps a locale string such as "en", "en-US" or "es_MX" to a supported
// tag. Unknown or malformed values resolve to the default.
func Resolve(locale string) language.Tag {
	locale = strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
	if locale == "" {
		return Default()
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return Default()
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return Default()
	}
	return supported[idx]
}

// Localizer prints messages for one resolved language.
type Localizer struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns a Localizer for the given locale string.
func New(locale string) *Localizer {
	tag := Resolve(locale)
	return &Localizer{tag: tag, printer: message.NewPrinter(tag)}
}

// Tag returns the resolved language.
func (l *Localizer) Tag() language.Tag {
	return l.tag
}

// T formats the message registered under key.
func (l *Localizer) T(key string, args ...any) string {
	return l.printer.Sprintf(key, args...)
}

// Date formats t as a short local date. The zero time formats as "".
func (l *Localizer) Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	layout, ok := dateLayouts[l.tag]
	if !ok {
		layout = time.DateOnly
	}
	return t.Local().Format(layout)
}

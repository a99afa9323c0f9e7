/*
Package locale maps spell-checker locales to the script their dictionaries
are written in.

Only the language subtag of a locale is consulted; region and variant are
ignored, so "en-US" and "en-GB" resolve identically. Languages without a
dictionary are unsupported and reported as errors, never silently mapped to
script.Unknown. Clients which prefer a fallback may check for
ErrUnsupportedLocale and use script.Unknown themselves.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package locale

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	gotext "github.com/go-text/typesetting/language"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/spellscript/script"
	"golang.org/x/text/language"
)

// tracer traces with key 'spellscript.locale'
func tracer() tracing.Trace {
	return tracing.Select("spellscript.locale")
}

// Languages with a spell-checker dictionary and their script. Only languages
// go in here, never countries.
var dictionaryScripts = []struct {
	lang   string
	script script.ID
}{
	{"cs", script.Latin},
	{"da", script.Latin},
	{"de", script.Latin},
	{"el", script.Greek},
	{"en", script.Latin},
	{"es", script.Latin},
	{"fi", script.Latin},
	{"fr", script.Latin},
	{"hr", script.Latin},
	{"it", script.Latin},
	{"lt", script.Latin},
	{"lv", script.Latin},
	{"nb", script.Latin},
	{"nl", script.Latin},
	{"pt", script.Latin},
	{"sl", script.Latin},
	{"ru", script.Cyrillic},
}

var (
	scriptTableOnce sync.Once
	scriptTable     map[string]script.ID
)

func initScriptTable() {
	scriptTable = make(map[string]script.ID, len(dictionaryScripts))
	for _, entry := range dictionaryScripts {
		if _, dup := scriptTable[entry.lang]; dup {
			panic(fmt.Sprintf("locale: duplicate language %q in script table", entry.lang))
		}
		scriptTable[entry.lang] = entry.script
	}
	tracer().Debugf("script table initialized with %d languages", len(scriptTable))
}

func lookup(lang string) (script.ID, bool) {
	scriptTableOnce.Do(initScriptTable)
	id, ok := scriptTable[lang]
	return id, ok
}

// ErrUnsupportedLocale is the error class for locales without a dictionary.
var ErrUnsupportedLocale = errors.New("unsupported locale")

// UnsupportedLocaleError is returned for locales whose language is not in the
// script table. It matches ErrUnsupportedLocale with errors.Is.
type UnsupportedLocaleError struct {
	Locale   string // the locale as requested
	Language string // the language subtag extracted from Locale
}

// Error implements the error interface.
func (e *UnsupportedLocaleError) Error() string {
	if e.Locale == e.Language || e.Locale == "" {
		return fmt.Sprintf("unsupported locale: language %q", e.Language)
	}
	return fmt.Sprintf("unsupported locale %q: language %q", e.Locale, e.Language)
}

// Is makes UnsupportedLocaleError match ErrUnsupportedLocale.
func (e *UnsupportedLocaleError) Is(target error) bool {
	return target == ErrUnsupportedLocale
}

// ScriptForSpellCheckerLocale returns the script of the dictionary for tag.
// Only the base language of tag is considered. If there is no dictionary for
// the language, or tag does not state a language, an *UnsupportedLocaleError
// is returned.
func ScriptForSpellCheckerLocale(tag language.Tag) (script.ID, error) {
	lang, ok := baseLanguage(tag)
	if !ok {
		tracer().Infof("spell checker called without a language in locale %q", tag)
		return script.Unknown, &UnsupportedLocaleError{Locale: tag.String(), Language: lang}
	}
	id, ok := lookup(lang)
	if !ok {
		tracer().Infof("spell checker called with unsupported language %q", lang)
		return script.Unknown, &UnsupportedLocaleError{Locale: tag.String(), Language: lang}
	}
	tracer().Debugf("locale %s uses script %s", tag, id)
	return id, nil
}

// baseLanguage returns the language subtag of tag. x/text infers a likely
// language for tags without one ("und-RU" yields "ru"); such guesses are
// reported as "und" and false.
func baseLanguage(tag language.Tag) (string, bool) {
	base, conf := tag.Base()
	if conf != language.Exact {
		return "und", false
	}
	return base.String(), true
}

// ScriptForLanguage is like ScriptForSpellCheckerLocale, but takes a locale
// string such as "en", "en-US" or "de_CH". Unknown region or variant subtags
// are ignored, an unknown language is unsupported.
func ScriptForLanguage(locale string) (script.ID, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		var verr language.ValueError
		if !errors.As(err, &verr) {
			return script.Unknown, fmt.Errorf("locale %q: %w", locale, err)
		}
		if _, ok := baseLanguage(tag); !ok {
			// the unknown subtag is the language itself
			return script.Unknown, &UnsupportedLocaleError{Locale: locale, Language: primarySubtag(locale)}
		}
		tracer().Debugf("ignoring unknown subtag in %q: %v", locale, err)
	}
	return ScriptForSpellCheckerLocale(tag)
}

// primarySubtag returns the lower-cased part of locale before the first
// separator.
func primarySubtag(locale string) string {
	primary, _, _ := strings.Cut(strings.ReplaceAll(locale, "_", "-"), "-")
	return strings.ToLower(primary)
}

// ScriptForGoTextLanguage is like ScriptForSpellCheckerLocale, but takes a
// language as used by go-text shaping and layout packages.
func ScriptForGoTextLanguage(lang gotext.Language) (script.ID, error) {
	primary := string(lang.Primary())
	id, ok := lookup(primary)
	if !ok {
		return script.Unknown, &UnsupportedLocaleError{Locale: string(lang), Language: primary}
	}
	return id, nil
}

// IsSupported reports whether there is a dictionary for the language of tag.
func IsSupported(tag language.Tag) bool {
	lang, ok := baseLanguage(tag)
	if !ok {
		return false
	}
	_, ok = lookup(lang)
	return ok
}

// SupportedLanguages returns the language subtags of the script table in
// sorted order. The result is a copy and may be modified by the caller.
func SupportedLanguages() []string {
	langs := make([]string, 0, len(dictionaryScripts))
	for _, entry := range dictionaryScripts {
		langs = append(langs, entry.lang)
	}
	slices.Sort(langs)
	return langs
}

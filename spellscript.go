/*
Package spellscript helps spell checkers to skip words written in a foreign
script.

A spell checker with a fixed set of dictionaries cannot say anything useful
about words written in a script none of its dictionaries use. Looking such
words up wastes time, and flagging them as misspelled is wrong. This module
provides the building blocks to avoid both:

▪︎ Package script classifies runes by writing script.

▪︎ Package locale maps the language of a spell-checker locale to the script
its dictionary is written in.

▪︎ Package wordfilter decides which words are worth a dictionary lookup.

Type Session ties these together for the common case: resolve the script of
a locale once, then classify runes and words while scanning text.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package spellscript

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/spellscript/locale"
	"github.com/npillmayer/spellscript/script"
	"github.com/npillmayer/spellscript/wordfilter"
	"golang.org/x/text/language"
)

// tracer traces with key 'spellscript'
func tracer() tracing.Trace {
	return tracing.Select("spellscript")
}

// Session holds the script of a spell checker's locale. A session is
// immutable and may be shared between goroutines.
type Session struct {
	locale   language.Tag
	script   script.ID
	fallback bool // true if locale is unsupported and script fell back to Unknown
}

// Option configures a session.
type Option func(*sessionConfig)

type sessionConfig struct {
	unknownFallback bool
}

// WithUnknownFallback lets NewSession use script.Unknown for locales without
// a dictionary instead of failing. A session for script.Unknown accepts
// every rune.
func WithUnknownFallback() Option {
	return func(c *sessionConfig) {
		c.unknownFallback = true
	}
}

// NewSession resolves the script for tag. By default, an unsupported locale
// is an error matching locale.ErrUnsupportedLocale.
func NewSession(tag language.Tag, opts ...Option) (*Session, error) {
	var conf sessionConfig
	for _, opt := range opts {
		opt(&conf)
	}
	id, err := locale.ScriptForSpellCheckerLocale(tag)
	if err != nil {
		if conf.unknownFallback && errors.Is(err, locale.ErrUnsupportedLocale) {
			tracer().Infof("no dictionary for %s, spell checking all scripts", tag)
			return &Session{locale: tag, script: script.Unknown, fallback: true}, nil
		}
		return nil, fmt.Errorf("spell-checker session: %w", err)
	}
	tracer().Debugf("spell-checker session for %s with script %s", tag, id)
	return &Session{locale: tag, script: id}, nil
}

// NewHardwareKeyboardSession creates a session for input of undeterminable
// script, which accepts every rune.
func NewHardwareKeyboardSession() *Session {
	return &Session{locale: language.Und, script: script.Unknown}
}

// Locale returns the locale the session was created for.
func (s *Session) Locale() language.Tag {
	return s.locale
}

// Script returns the script of the session's dictionary.
func (s *Session) Script() script.ID {
	return s.script
}

// IsFallback reports whether the session's locale is unsupported and the
// session fell back to script.Unknown.
func (s *Session) IsFallback() bool {
	return s.fallback
}

// Accepts reports whether r is a letter of the session's script.
func (s *Session) Accepts(r rune) bool {
	return script.IsLetterPartOfScript(r, s.script)
}

// ShouldCheck reports whether word should be looked up in the dictionary.
func (s *Session) ShouldCheck(word string) bool {
	return !wordfilter.ShouldFilterOut(word, s.script)
}

// CheckableWords returns the words of text to look up in the dictionary.
func (s *Session) CheckableWords(text string) []string {
	return wordfilter.CheckableWords(text, s.script)
}

func (s *Session) String() string {
	if s.fallback {
		return fmt.Sprintf("session(%s, %s, fallback)", s.locale, s.script)
	}
	return fmt.Sprintf("session(%s, %s)", s.locale, s.script)
}

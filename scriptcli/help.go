package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, op *Op) (error, bool) {
	help(op.arg)
	return nil, false
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	t := strings.ToLower(topic)
	switch t {
	case "locale", "locales", "lang", "langs":
		pterm.Info.Println("Locales")
		pterm.Println(`
	A locale selects the spell-checker dictionary. Only the language part
	is relevant: "en-US", "en-GB" and "en" all select the English dictionary.

	locale <tag>    switch to locale <tag>, e.g. "locale ru"
	locale          print the current locale
	langs           list languages with a dictionary and their script
	`)
	case "classify", "script", "scripts":
		pterm.Info.Println("Scripts")
		pterm.Println(`
	Every dictionary is written in one script. Runes outside that script
	are never part of a correctly spelled word.

	classify <text> print the script of every rune of <text>, and whether
	                it is a letter of the current locale's script
	scripts         list the known scripts
	`)
	case "check", "words":
		pterm.Info.Println("Word filter")
		pterm.Println(`
	check <text>    split <text> into words and tell which of them would be
	                looked up in the dictionary. Words are skipped if they
	                are too short, contain a slash, do not start with a letter
	                of the script, or consist of less than 3/4 letters.
	`)
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
	locale [tag] | langs | classify <text> | scripts | check <text> | help [topic] | quit

	Help topics: locale, classify, check
	`)
	}
}

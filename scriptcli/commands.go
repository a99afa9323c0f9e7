package main

import (
	"errors"
	"fmt"

	"github.com/npillmayer/spellscript/locale"
	"github.com/npillmayer/spellscript/script"
	"github.com/npillmayer/spellscript/wordfilter"
	"github.com/pterm/pterm"
	"golang.org/x/text/language"
)

var errNoText = errors.New("no text given")

func localeOp(intp *Intp, op *Op) (error, bool) {
	if op.arg == "" {
		pterm.Printf("Current locale is %s\n", intp.session.Locale())
		return nil, false
	}
	return intp.switchLocale(op.arg), false
}

func classifyOp(intp *Intp, op *Op) (error, bool) {
	if op.arg == "" {
		return errNoText, false
	}
	data := classificationTable(op.arg, intp.session.Script())
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

func classificationTable(text string, active script.ID) [][]string {
	data := [][]string{{"Rune", "Code point", "Script", "Letter of " + active.String()}}
	for _, r := range text {
		data = append(data, []string{
			fmt.Sprintf("%q", r),
			fmt.Sprintf("%U", r),
			script.Detect(r).String(),
			yesNo(script.IsLetterPartOfScript(r, active)),
		})
	}
	return data
}

func checkOp(intp *Intp, op *Op) (error, bool) {
	if op.arg == "" {
		return errNoText, false
	}
	data := [][]string{{"Word", "Spell check"}}
	for _, w := range wordfilter.Words(op.arg) {
		data = append(data, []string{w, yesNo(intp.session.ShouldCheck(w))})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

func langsOp(intp *Intp, op *Op) (error, bool) {
	data, err := languagesTable()
	if err != nil {
		return err, false
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

func languagesTable() ([][]string, error) {
	data := [][]string{{"Language", "ISO 639-2", "Script"}}
	for _, l := range locale.SupportedLanguages() {
		tag := language.Make(l)
		id, err := locale.ScriptForSpellCheckerLocale(tag)
		if err != nil {
			return nil, err
		}
		base, _ := tag.Base()
		data = append(data, []string{l, base.ISO3(), id.String()})
	}
	return data, nil
}

func scriptsOp(intp *Intp, op *Op) (error, bool) {
	pterm.DefaultTable.WithHasHeader().WithData(scriptsTable()).Render()
	return nil, false
}

func scriptsTable() [][]string {
	data := [][]string{{"Script", "Code", "ISO 15924"}}
	for _, id := range script.All() {
		data = append(data, []string{id.String(), fmt.Sprintf("%d", id.Code()), id.ISOCode()})
	}
	return data
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

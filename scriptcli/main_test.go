package main

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/spellscript/script"
	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "spellscript")
	defer teardown()
	//
	tests := []struct {
		line string
		code int
		arg  string
	}{
		{"quit", QUIT, ""},
		{"LOCALE ru", LOCALE, "ru"},
		{"classify Hello Wörld", CLASSIFY, "Hello Wörld"},
		{"check  don't  ", CHECK, "don't"},
		{"frobnicate", HELP, ""},
	}
	for _, tt := range tests {
		op := parseCommand(tt.line)
		assert.Equal(t, tt.code, op.code, "command code for %q", tt.line)
		assert.Equal(t, tt.arg, op.arg, "argument for %q", tt.line)
	}
}

func TestSwitchLocale(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "spellscript")
	defer teardown()
	//
	intp := &Intp{}
	assert.Equal(t, "()", intp.String())
	assert.NoError(t, intp.switchLocale("el-GR"))
	assert.Equal(t, "( session(el-GR, Greek) )", intp.String())
	assert.Error(t, intp.switchLocale("ja"))
	assert.Equal(t, "( session(el-GR, Greek) )", intp.String(), "failed switch keeps session")
	assert.Error(t, intp.switchLocale("not a locale"))
	assert.Error(t, intp.switchLocale("und"), "locale without a language")
	assert.Error(t, intp.switchLocale("und-RU"), "locale without a language")
}

func TestSwitchLocaleWithFallback(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "spellscript")
	defer teardown()
	//
	intp := &Intp{fallback: true}
	assert.NoError(t, intp.switchLocale("ja"))
	assert.True(t, intp.session.IsFallback())
	assert.Equal(t, script.Unknown, intp.session.Script())
	assert.NoError(t, intp.switchLocale("ru"))
	assert.False(t, intp.session.IsFallback())
	assert.Equal(t, script.Cyrillic, intp.session.Script())
}

func TestInvalidTraceLevel(t *testing.T) {
	assert.Error(t, configureTracing("Verbose"))
}

func TestTables(t *testing.T) {
	data := classificationTable("aЖ", script.Latin)
	assert.Len(t, data, 3)
	assert.Equal(t, []string{"'a'", "U+0061", "Latin", "yes"}, data[1])
	assert.Equal(t, []string{"'Ж'", "U+0416", "Cyrillic", "no"}, data[2])
	//
	langs, err := languagesTable()
	assert.NoError(t, err)
	assert.Len(t, langs, 18)
	assert.Equal(t, []string{"cs", "ces", "Latin"}, langs[1])
	//
	scripts := scriptsTable()
	assert.Len(t, scripts, 15)
	assert.Equal(t, []string{"Unknown", "-1", "Zzzz"}, scripts[1])
}

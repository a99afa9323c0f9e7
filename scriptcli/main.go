package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/spellscript"
	"github.com/pterm/pterm"
	"golang.org/x/text/language"
)

// tracer traces with key 'spellscript'
func tracer() tracing.Trace {
	return tracing.Select("spellscript")
}

func main() {
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	loc := flag.String("locale", "en", "Spell-checker locale (BCP 47, e.g. en-US, ru, el)")
	fallback := flag.Bool("fallback", false, "Accept all scripts for locales without a dictionary")
	flag.Parse()

	initDisplay()
	if err := configureTracing(*tlevel); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
	intp := &Intp{fallback: *fallback}
	if err := intp.switchLocale(*loc); err != nil {
		pterm.Error.Println(err)
		os.Exit(2)
	}
	repl, err := readline.New("script > ")
	if err != nil {
		tracer().Errorf("cannot start line editor: %v", err)
		os.Exit(3)
	}
	defer repl.Close()
	intp.repl = repl

	pterm.Info.Printf("Spell checking for %s, quit with <ctrl>D\n", intp.session.Locale())
	intp.REPL()
}

// traceKeys are the tracers of the spellscript packages.
var traceKeys = []string{"spellscript", "spellscript.script", "spellscript.locale", "spellscript.filter"}

// configureTracing routes all spellscript tracers to Go's log package. Level
// applies to the CLI itself and to locale resolution.
func configureTracing(level string) error {
	switch level {
	case "Debug", "Info", "Error":
	default:
		return fmt.Errorf("invalid trace level: %s", level)
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{"tracing.adapter": "go"}
	for _, key := range traceKeys {
		conf["trace."+key] = "Error"
	}
	conf["trace.spellscript"] = level
	conf["trace.spellscript.locale"] = level
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return fmt.Errorf("configuring tracing: %w", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracer().Debugf("trace level is %s", level)
	return nil
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	repl     *readline.Instance
	session  *spellscript.Session
	fallback bool // accept every rune for locales without a dictionary
}

func (intp *Intp) String() string {
	if intp == nil || intp.session == nil {
		return "()"
	}
	return fmt.Sprintf("( %s )", intp.session)
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		pterm.Println(intp.String())
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		op := parseCommand(line)
		err, quit := intp.execute(op)
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// Op is a single command with its argument, which is the remainder of the
// input line.
type Op struct {
	code int
	arg  string
}

const (
	QUIT int = iota
	HELP
	LOCALE
	CLASSIFY
	CHECK
	LANGS
	SCRIPTS
)

var opMap = map[string]int{
	"quit":     QUIT,
	"help":     HELP,
	"locale":   LOCALE,
	"classify": CLASSIFY,
	"check":    CHECK,
	"langs":    LANGS,
	"scripts":  SCRIPTS,
}

var commandFn = map[int]func(*Intp, *Op) (error, bool){
	QUIT:     quitOp,
	HELP:     helpOp,
	LOCALE:   localeOp,
	CLASSIFY: classifyOp,
	CHECK:    checkOp,
	LANGS:    langsOp,
	SCRIPTS:  scriptsOp,
}

// parseCommand splits an input line into command and argument, e.g.
// "classify Hello Wörld" or "locale ru". Unknown commands map to HELP.
func parseCommand(line string) *Op {
	cmd, arg, _ := strings.Cut(line, " ")
	code, ok := opMap[strings.ToLower(cmd)]
	if !ok {
		code = HELP
	}
	op := &Op{code: code, arg: strings.TrimSpace(arg)}
	tracer().Debugf("parsed command: %s %q", cmd, op.arg)
	return op
}

func (intp *Intp) execute(op *Op) (err error, stop bool) {
	f, ok := commandFn[op.code]
	if !ok {
		return fmt.Errorf("unknown command code: %d", op.code), false
	}
	return f(intp, op)
}

func quitOp(intp *Intp, op *Op) (error, bool) {
	pterm.Println("Goodbye!")
	return nil, true
}

// --- Session handling -------------------------------------------------

func (intp *Intp) switchLocale(loc string) error {
	tag, err := language.Parse(loc)
	if err != nil {
		return fmt.Errorf("invalid locale %q: %w", loc, err)
	}
	var opts []spellscript.Option
	if intp.fallback {
		opts = append(opts, spellscript.WithUnknownFallback())
	}
	s, err := spellscript.NewSession(tag, opts...)
	if err != nil {
		return err
	}
	intp.session = s
	if s.IsFallback() {
		pterm.Warning.Printf("no dictionary for %s, all scripts are accepted\n", tag)
	}
	tracer().Infof("spell-checker locale is %s, script is %s", tag, s.Script())
	return nil
}

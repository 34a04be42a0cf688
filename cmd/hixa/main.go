// Command hixa is the hosting tool for the Hixa language core: file
// runner, syntax checker, formatter, REPL, project scaffolder. The core
// never touches the terminal or the filesystem on its own (file
// builtins aside); everything host-facing lives here.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"syscall"

	"github.com/alecthomas/repr"
	"github.com/peterh/liner"
	"github.com/urfave/cli/v2"
	"github.com/ztrue/tracerr"
	"gopkg.in/yaml.v3"

	hixa "github.com/latenightai/Hixa"
)

const (
	appName      = "hixa"
	manifestName = "hixa.yaml"
	historyFile  = ".hixa_history"
	promptMain   = "hixa> "
	promptCont   = "...   "
)

func red(s string) string   { return "\x1b[31m" + s + "\x1b[0m" }
func green(s string) string { return "\x1b[32m" + s + "\x1b[0m" }
func blue(s string) string  { return "\x1b[94m" + s + "\x1b[0m" }

// stderrColored reports whether stderr is a terminal; piped output
// stays free of escape codes.
func stderrColored() bool {
	st, err := os.Stderr.Stat()
	return err == nil && st.Mode()&os.ModeCharDevice != 0
}

func errorf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if stderrColored() {
		msg = red(msg)
	}
	fmt.Fprintln(os.Stderr, msg)
}

func main() {
	app := &cli.App{
		Name:        appName,
		Usage:       "the Hixa programming language",
		Version:     hixa.Version,
		HideVersion: true,
		Commands: []*cli.Command{
			runCommand(),
			checkCommand(),
			fmtCommand(),
			replCommand(),
			initCommand(),
			versionCommand(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		errorf("%s: %v", appName, err)
		os.Exit(2)
	}
}

// Manifest is the hixa.yaml project file written by `init` and read by
// `run` when no file argument is given.
type Manifest struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Entry   string `yaml:"entry"`
}

func loadManifest(dir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, manifestName))
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%s: %w", manifestName, err)
	}
	if m.Entry == "" {
		return nil, fmt.Errorf("%s: missing entry", manifestName)
	}
	return &m, nil
}

// -----------------------------------------------------------------------------
// run
// -----------------------------------------------------------------------------

func runCommand() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "run a Hixa program (the manifest entry point when no file is given)",
		ArgsUsage: "[file.hx]",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "report phase progress and internal stacks"},
			&cli.BoolFlag{Name: "show-tokens", Usage: "dump the token stream before running"},
			&cli.BoolFlag{Name: "show-ast", Usage: "dump the parsed AST before running"},
		},
		Action: cmdRun,
	}
}

func cmdRun(c *cli.Context) error {
	file := c.Args().First()
	if file == "" {
		m, err := loadManifest(".")
		if err != nil {
			errorf("%s run: no file argument and no usable %s: %v", appName, manifestName, err)
			return cli.Exit("", 2)
		}
		file = m.Entry
	}
	data, err := os.ReadFile(file)
	if err != nil {
		errorf("%s: cannot read %s: %v", appName, file, err)
		return cli.Exit("", 1)
	}
	src := string(data)
	verbose := c.Bool("verbose")

	if c.Bool("show-tokens") {
		toks, err := hixa.NewLexer(src).Scan()
		if err != nil {
			return reportLanguageError(err, file, src, verbose)
		}
		for _, t := range toks {
			fmt.Println(t)
		}
	}
	if c.Bool("show-ast") {
		prog, err := hixa.Parse(src)
		if err != nil {
			return reportLanguageError(err, file, src, verbose)
		}
		fmt.Println(repr.String(prog, repr.Indent("  ")))
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "%s: running %s\n", appName, file)
	}
	ip := hixa.New()
	if err := ip.Run(src); err != nil {
		return reportLanguageError(err, file, src, verbose)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "%s: done\n", appName)
	}
	return nil
}

// reportLanguageError renders a staged error with the caret snippet and
// maps it to exit code 1. With --verbose, internal failures additionally
// get a Go stack.
func reportLanguageError(err error, name, src string, verbose bool) error {
	rendered := hixa.WrapErrorWithName(err, name, src)
	msg := rendered.Error()
	if stderrColored() {
		msg = red(msg)
	}
	fmt.Fprintln(os.Stderr, msg)

	var rerr *hixa.RuntimeError
	if verbose && errors.As(err, &rerr) && strings.HasPrefix(rerr.Msg, "internal error") {
		fmt.Fprint(os.Stderr, tracerr.Sprint(tracerr.Wrap(err)))
	}
	return cli.Exit("", 1)
}

// -----------------------------------------------------------------------------
// check
// -----------------------------------------------------------------------------

func checkCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "lex and parse files without running them",
		ArgsUsage: "<file.hx...>",
		Action:    cmdCheck,
	}
}

func cmdCheck(c *cli.Context) error {
	files := c.Args().Slice()
	if len(files) == 0 {
		errorf("usage: %s check <file.hx...>", appName)
		return cli.Exit("", 2)
	}
	bad := 0
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			errorf("%s: cannot read %s: %v", appName, file, err)
			bad++
			continue
		}
		if err := hixa.Check(string(data)); err != nil {
			errorf("%s", hixa.WrapErrorWithName(err, file, string(data)))
			bad++
			continue
		}
		msg := "ok " + file
		if stderrColored() {
			msg = green(msg)
		}
		fmt.Println(msg)
	}
	if bad > 0 {
		return cli.Exit("", 1)
	}
	return nil
}

// -----------------------------------------------------------------------------
// fmt
// -----------------------------------------------------------------------------

func fmtCommand() *cli.Command {
	return &cli.Command{
		Name:      "fmt",
		Usage:     "format Hixa source files",
		ArgsUsage: "<file.hx...>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "write", Aliases: []string{"w"}, Usage: "rewrite files in place"},
			&cli.BoolFlag{Name: "check", Usage: "list files that would change; exit 1 if any"},
		},
		Action: cmdFmt,
	}
}

func cmdFmt(c *cli.Context) error {
	files := c.Args().Slice()
	if len(files) == 0 {
		errorf("usage: %s fmt [-w] [--check] <file.hx...>", appName)
		return cli.Exit("", 2)
	}
	changed := 0
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			errorf("%s: cannot read %s: %v", appName, file, err)
			return cli.Exit("", 1)
		}
		src := string(data)
		out, err := hixa.Format(src)
		if err != nil {
			errorf("%s", hixa.WrapErrorWithName(err, file, src))
			return cli.Exit("", 1)
		}
		switch {
		case c.Bool("check"):
			if out != src {
				fmt.Println(file)
				changed++
			}
		case c.Bool("write"):
			if out != src {
				if err := os.WriteFile(file, []byte(out), 0o644); err != nil {
					errorf("%s: cannot write %s: %v", appName, file, err)
					return cli.Exit("", 1)
				}
			}
		default:
			fmt.Print(out)
		}
	}
	if changed > 0 {
		return cli.Exit("", 1)
	}
	return nil
}

// -----------------------------------------------------------------------------
// repl
// -----------------------------------------------------------------------------

func replCommand() *cli.Command {
	return &cli.Command{
		Name:   "repl",
		Usage:  "start an interactive session",
		Action: cmdRepl,
	}
}

func cmdRepl(_ *cli.Context) error {
	fmt.Printf("Hixa %s — dui bhaxa, ekta mon. Type 'help' for commands, 'exit' to leave.\n", hixa.Version)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	ip := hixa.New()
	for {
		code, ok := readByParseProbe(ln)
		if !ok {
			fmt.Println()
			return nil
		}
		trimmed := strings.TrimSpace(code)
		switch strings.TrimSuffix(strings.ToLower(trimmed), ";") {
		case "":
			continue
		case "exit", "quit":
			return nil
		case "help":
			fmt.Print(replHelp)
			continue
		case "clear":
			fmt.Print("\x1b[2J\x1b[H")
			continue
		}

		ln.AppendHistory(strings.ReplaceAll(trimmed, "\n", " "))
		v, hasValue, err := ip.RunEcho(code)
		if err != nil {
			errorf("%s", hixa.WrapErrorWithName(err, "<repl>", code))
			continue
		}
		// Echo the value of a trailing expression statement; null is
		// suppressed so print(...) lines are not followed by noise.
		if hasValue && v.Tag != hixa.VTNull {
			echo := hixa.FormatValue(v)
			if stderrColored() {
				echo = blue(echo)
			}
			fmt.Println(echo)
		}
	}
}

const replHelp = `REPL commands:
  help     Show this message
  clear    Clear the screen
  exit     Leave the REPL (also: quit, Ctrl+D)

Statements accumulate in one persistent scope. Unfinished input
(an open brace, bracket, or string) continues on the next line.
`

// readByParseProbe accumulates lines until the buffer parses, or fails
// with a real error (which is surfaced by evaluation). A line that does
// not end in ';' or '}' gets a ';' appended before the probe and the
// evaluation.
func readByParseProbe(ln *liner.State) (string, bool) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			// Ctrl+C throws away the partial input.
			b.Reset()
			continue
		}
		if err != nil {
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := autoSemi(b.String())
		if _, err := hixa.ParseInteractive(src); hixa.IsIncomplete(err) {
			continue
		}
		return src, true
	}
}

func autoSemi(src string) string {
	t := strings.TrimRight(src, " \t\n")
	if t == "" || strings.HasSuffix(t, ";") || strings.HasSuffix(t, "}") {
		return src
	}
	return t + ";"
}

// -----------------------------------------------------------------------------
// init
// -----------------------------------------------------------------------------

func initCommand() *cli.Command {
	return &cli.Command{
		Name:      "init",
		Usage:     "scaffold a new Hixa project",
		ArgsUsage: "[name]",
		Action:    cmdInit,
	}
}

func cmdInit(c *cli.Context) error {
	name := c.Args().First()
	if name == "" {
		name = "hello-hixa"
	}
	if _, err := os.Stat(name); err == nil {
		errorf("%s init: %s already exists", appName, name)
		return cli.Exit("", 2)
	}
	if err := os.MkdirAll(name, 0o755); err != nil {
		errorf("%s init: %v", appName, err)
		return cli.Exit("", 1)
	}

	manifest, err := yaml.Marshal(&Manifest{Name: name, Version: "0.1.0", Entry: "main.hx"})
	if err != nil {
		errorf("%s init: %v", appName, err)
		return cli.Exit("", 1)
	}
	files := map[string]string{
		manifestName: string(manifest),
		"main.hx":    starterProgram(name),
		"README.md":  starterReadme(name),
	}
	for base, content := range files {
		if err := os.WriteFile(filepath.Join(name, base), []byte(content), 0o644); err != nil {
			errorf("%s init: %v", appName, err)
			return cli.Exit("", 1)
		}
	}
	fmt.Printf("created %s/ (run it with: cd %s && %s run)\n", name, name, appName)
	return nil
}

func starterProgram(name string) string {
	return fmt.Sprintf(`// %s — a bilingual Hixa starter. Both keyword sets work, mixed freely.
dhora greeting = "Hello from %s!";
print(greeting);

kam square(n) {
    ghurai_diya n * n;
}

for (let i = 1; i <= 3; i = i + 1) {
    print("square(" + i + ") = " + square(i));
}
`, name, name)
}

func starterReadme(name string) string {
	return fmt.Sprintf(`# %s

A Hixa project. Run it with:

    hixa run

Check syntax without running:

    hixa check main.hx

Format the source:

    hixa fmt -w main.hx
`, name)
}

// -----------------------------------------------------------------------------
// version
// -----------------------------------------------------------------------------

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "print version and platform",
		Action: func(_ *cli.Context) error {
			fmt.Printf("%s %s (built %s) %s/%s\n",
				appName, hixa.Version, hixa.BuildDate, runtime.GOOS, runtime.GOARCH)
			return nil
		},
	}
}

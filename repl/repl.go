// Copyright © 2026 The curt authors

// Package repl implements an interactive read-eval-print loop over the
// curt evaluator.
package repl

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/curtlang/curt/parser"
	"github.com/curtlang/curt/term"
	"github.com/ergochat/readline"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
)

type config struct {
	stdin    io.ReadCloser
	stderr   io.Writer
	maxDepth int
}

func newConfig(opts ...Option) *config {
	config := &config{maxDepth: term.DefaultMaximumDepth}
	for _, opt := range opts {
		opt(config)
	}
	return config
}

// Option configures the REPL.
type Option func(*config)

// WithStdin allows overriding the input to the REPL.
func WithStdin(stdin io.ReadCloser) Option {
	return func(c *config) {
		c.stdin = stdin
	}
}

// WithStderr allows overriding the output of the REPL.
func WithStderr(stderr io.Writer) Option {
	return func(c *config) {
		c.stderr = stderr
	}
}

// WithMaximumDepth bounds the reduction depth of the underlying
// interpreter.
func WithMaximumDepth(n int) Option {
	return func(c *config) {
		c.maxDepth = n
	}
}

const banner = `Every term is a function applied to a list.  Atoms and exhausted ` +
	`lambdas reduce to themselves; lists apply their head to their tail.  ` +
	`Built-in operators: + - * / car cdr lambda.  Use Ctrl-D to exit.`

// RunRepl runs a read-eval-print loop until EOF.
func RunRepl(prompt string, opts ...Option) {
	cfg := newConfig(opts...)
	stderr := cfg.stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	in := term.New(term.WithMaximumDepth(cfg.maxDepth))

	fmt.Fprintln(stderr, indent.String(wordwrap.String(banner, 72), 2)) //nolint:errcheck // best-effort banner

	histFile := historyPath()
	ensureHistoryFilePermissions(histFile)

	rlCfg := &readline.Config{
		Stdout:            stderr,
		Stderr:            stderr,
		Prompt:            prompt,
		HistoryFile:       histFile,
		HistorySearchFold: true,
	}
	if cfg.stdin != nil {
		rlCfg.Stdin = cfg.stdin
	}
	rl, err := readline.NewEx(rlCfg)
	if err != nil {
		panic(err)
	}
	defer rl.Close() //nolint:errcheck // best-effort cleanup

	for {
		line, err := rl.ReadSlice()
		if err == readline.ErrInterrupt {
			continue
		}
		if err != nil {
			break
		}
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		exprs, _, err := parser.Parse(line)
		if err != nil {
			errlnf(stderr, "parse error: %v", err)
			continue
		}
		for _, expr := range exprs {
			res, err := in.Eval(expr)
			if err != nil {
				errlnf(stderr, "%v", err)
				continue
			}
			fmt.Fprintln(stderr, res) //nolint:errcheck // best-effort REPL output
		}
	}
}

// ensureHistoryFilePermissions creates the history file when it does not
// exist and restricts it to the owner.  Session history may contain
// sensitive input.
func ensureHistoryFilePermissions(path string) {
	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE, 0600) //#nosec G304
	if err != nil {
		return
	}
	f.Close() //nolint:errcheck,gosec // best-effort cleanup
	_ = os.Chmod(path, 0600)
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".curt_history")
}

func errlnf(w io.Writer, format string, v ...interface{}) {
	if !strings.HasSuffix(format, "\n") {
		format += "\n"
	}
	fmt.Fprintf(w, format, v...) //nolint:errcheck // best-effort error display
}

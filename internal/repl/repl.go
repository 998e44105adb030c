// Package repl implements the interactive shell around the expression
// evaluator. The shell loops forever: read a line, evaluate it, print the
// truth value or the error, prompt again. Errors never terminate the loop.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/ltungv/proplog/internal/config"
	"github.com/ltungv/proplog/internal/prop"
)

// REPL reads expressions line by line and prints their truth values.
type REPL struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer
	prompt string
	styles styles
}

// New creates a shell reading from in, printing results to out and errors to
// errOut, configured by cfg.
func New(in io.Reader, out, errOut io.Writer, cfg *config.Config) *REPL {
	repl := new(REPL)
	repl.in = in
	repl.out = out
	repl.errOut = errOut
	repl.prompt = cfg.Prompt
	repl.styles = newStyles(cfg.NoColor)
	return repl
}

// Run processes input lines until the reader is exhausted. Blank lines are
// skipped; every other line is evaluated as one expression.
func (repl *REPL) Run() error {
	s := bufio.NewScanner(repl.in)
	s.Split(bufio.ScanLines)
	for {
		fmt.Fprint(repl.out, repl.styles.prompt.Render(repl.prompt))
		if !s.Scan() {
			break
		}
		line := s.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		started := time.Now()
		val, err := prop.Evaluate(line)
		if err != nil {
			fmt.Fprintln(repl.errOut, repl.styles.problem.Render(err.Error()))
			continue
		}
		slog.Debug("evaluated expression",
			"source", line,
			"value", val,
			"duration", time.Since(started),
		)
		fmt.Fprintln(repl.out, repl.renderValue(val))
	}
	fmt.Fprintln(repl.out)
	return s.Err()
}

func (repl *REPL) renderValue(val bool) string {
	if val {
		return repl.styles.truth.Render("true")
	}
	return repl.styles.falsehood.Render("false")
}

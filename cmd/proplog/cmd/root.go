package cmd

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ltungv/proplog/internal/config"
	"github.com/ltungv/proplog/internal/prop"
	"github.com/ltungv/proplog/internal/repl"
)

var (
	cfgFile string
	verbose bool
	expr    string
)

var rootCmd = &cobra.Command{
	Use:   "proplog [script]",
	Short: "Interpreter for propositional-logic expressions",
	Long: `proplog evaluates propositional-logic expressions such as

  T ^ (F v ~T) -> F.

Operators, loosest to tightest binding: -> (implication, right-associative),
v (or), ^ (and), ~ (not). Atoms are T and F, sub-expressions can be grouped
with parentheses, and every expression is terminated by '.'.

Without arguments an interactive prompt is started. With a script path every
non-blank line of the file is evaluated as one expression.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (TOML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Flags().StringVarP(&expr, "expr", "e", "", "evaluate a single expression and exit")
}

func run(cmd *cobra.Command, args []string) error {
	if verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	if expr != "" {
		val, err := prop.Evaluate(expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatBool(val))
		return nil
	}

	if len(args) == 1 {
		runScript(args[0], cmd.OutOrStdout(), cmd.ErrOrStderr())
		return nil
	}

	shell := repl.New(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg)
	return shell.Run()
}

// runScript evaluates every non-blank line of the file as one expression,
// printing one result per line and reporting every failed line before exiting.
func runScript(fpath string, out, errOut io.Writer) {
	f, err := os.Open(fpath)
	exitOnError(err, 1)
	defer f.Close()

	reporter := prop.NewSimpleReporter(errOut)
	s := bufio.NewScanner(f)
	s.Split(bufio.ScanLines)
	for s.Scan() {
		line := s.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		val, err := prop.Evaluate(line)
		if err != nil {
			reporter.Report(err)
			continue
		}
		fmt.Fprintln(out, strconv.FormatBool(val))
	}
	exitOnError(s.Err(), 1)
	exitIf(reporter.HadParseError(), 65)
	exitIf(reporter.HadScanError(), 70)
}

func exitOnError(err error, status int) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(status)
	}
}

func exitIf(cond bool, status int) {
	if cond {
		os.Exit(status)
	}
}

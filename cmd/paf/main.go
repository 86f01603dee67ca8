package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"paf/internal/version"
)

// cliApp держит отложенные cleanup-функции одного запуска.
type cliApp struct {
	cleanups []func(failed bool)
}

func (a *cliApp) onClose(fn func(failed bool)) {
	a.cleanups = append(a.cleanups, fn)
}

// close runs cleanups in reverse order.
func (a *cliApp) close(failed bool) {
	for i := len(a.cleanups) - 1; i >= 0; i-- {
		a.cleanups[i](failed)
	}
	a.cleanups = nil
}

func newRootCmd(app *cliApp) *cobra.Command {
	root := &cobra.Command{
		Use:           "paf",
		Short:         "Partially Applied Functions language front end",
		Long:          `paf tokenizes Partially Applied Functions sources and reports lexical diagnostics`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			st, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			cmd.SetContext(withSettings(cmd.Context(), st))
			applyColor(st.cfg.Diagnostics.Color, cmd.OutOrStdout())

			stopProf, err := setupProfiling(cmd)
			if err != nil {
				return err
			}
			app.onClose(func(bool) { stopProf() })

			closeTrace, err := setupTracing(cmd, st)
			if err != nil {
				return err
			}
			app.onClose(closeTrace)
			return nil
		},
	}

	// Глобальные флаги
	pf := root.PersistentFlags()
	pf.String("config", "", "path to paf.toml (default: search upward from the working directory)")
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Bool("quiet", false, "suppress non-essential output")
	pf.Bool("timings", false, "show timing information")
	pf.Int("max-diagnostics", 100, "maximum number of diagnostics to show")

	pf.String("trace", "", "trace output file ('-' for stderr)")
	pf.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	pf.String("trace-format", "auto", "trace format (auto|text|ndjson)")
	pf.String("trace-mode", "stream", "trace storage (stream|ring|both)")
	pf.Int("trace-ring-size", 4096, "events kept in ring mode")

	pf.String("cpuprofile", "", "write CPU profile to file")
	pf.String("memprofile", "", "write heap profile to file on exit")
	pf.String("runtime-trace", "", "write Go runtime trace to file")

	root.AddCommand(newTokenizeCmd())
	root.AddCommand(newCacheCmd())
	root.AddCommand(newVersionCmd())
	return root
}

// execute runs the CLI and returns the process exit code.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	app := &cliApp{}
	root := newRootCmd(app)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	app.close(err != nil)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// isTerminal проверяет, является ли w терминалом
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func useColor(mode string, w io.Writer) bool {
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(w) && os.Getenv("NO_COLOR") == ""
	}
}

func applyColor(mode string, w io.Writer) {
	color.NoColor = !useColor(mode, w)
}

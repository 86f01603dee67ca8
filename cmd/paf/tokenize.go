package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"paf/internal/diag"
	"paf/internal/diagfmt"
	"paf/internal/driver"
	"paf/internal/observ"
	"paf/internal/source"
	"paf/internal/token"
)

// exprFileName is the virtual file name used for -e sources.
const exprFileName = "<expr>"

func newTokenizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] (path | -e source)",
		Short: "Tokenize a paf source file, directory or expression",
		Long: `Tokenize breaks paf source into tokens.
A directory argument tokenizes every *.paf file under it in parallel.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runTokenize,
	}
	cmd.Flags().StringP("expr", "e", "", "tokenize the given source text instead of a file")
	cmd.Flags().String("format", "pretty", "token output format (pretty|json)")
	cmd.Flags().String("diag-format", "pretty", "diagnostics format (pretty|json|short)")
	cmd.Flags().Int("jobs", 0, "max parallel files in directory mode (0 = GOMAXPROCS)")
	cmd.Flags().String("ui", "auto", "progress UI in directory mode (auto|on|off)")
	cmd.Flags().Bool("cache", false, "use the on-disk token cache in directory mode")
	return cmd
}

func runTokenize(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	st := settingsFrom(ctx)

	expr, err := cmd.Flags().GetString("expr")
	if err != nil {
		return fmt.Errorf("failed to get expr flag: %w", err)
	}
	exprSet := cmd.Flags().Changed("expr")
	switch {
	case exprSet && len(args) > 0:
		return errors.New("tokenize: either a path or --expr, not both")
	case !exprSet && len(args) == 0:
		return errors.New("tokenize: a path or --expr is required")
	}

	timings, err := cmd.Flags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}
	var timer *observ.Timer
	if timings {
		timer = observ.NewTimer()
	}

	opts := driver.Options{
		MaxDiagnostics: st.cfg.Diagnostics.Max,
		Jobs:           st.cfg.Tokenize.Jobs,
		Timer:          timer,
	}
	out := &tokenizeOutput{
		stdout: cmd.OutOrStdout(),
		stderr: cmd.ErrOrStderr(),
		st:     st,
		timer:  timer,
	}

	if exprSet {
		return out.single(driver.TokenizeSource(ctx, exprFileName, expr, opts))
	}

	path := args[0]
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	if info.IsDir() {
		return runTokenizeDir(cmd, path, opts, out)
	}

	res, err := driver.TokenizeFile(ctx, path, opts)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	return out.single(res)
}

func runTokenizeDir(cmd *cobra.Command, dir string, opts driver.Options, out *tokenizeOutput) error {
	ctx := cmd.Context()
	st := out.st

	if st.cfg.Tokenize.Cache {
		cache, err := openTokenCache()
		if err != nil {
			fmt.Fprintf(out.stderr, "warning: token cache disabled: %v\n", err)
		} else {
			opts.Cache = cache
		}
	}

	mode, err := readUIMode(st.cfg.Tokenize.UI)
	if err != nil {
		return err
	}
	quiet, err := cmd.Flags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	var (
		fileSet *source.FileSet
		results []driver.TokenizeDirResult
	)
	if shouldUseTUI(mode, out.stderr, quiet) {
		files, listErr := driver.ListSourceFiles(dir)
		if listErr != nil {
			return fmt.Errorf("tokenization failed: %w", listErr)
		}
		fileSet, results, err = runTokenizeDirWithUI(ctx, out.stderr, dir, files, opts)
	} else {
		fileSet, results, err = driver.TokenizeDir(ctx, dir, opts)
	}
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	return out.dir(fileSet, results)
}

// tokenizeOutput renders tokens to stdout and diagnostics/timings to stderr.
type tokenizeOutput struct {
	stdout io.Writer
	stderr io.Writer
	st     *settings
	timer  *observ.Timer
}

func (o *tokenizeOutput) single(res *driver.TokenizeResult) error {
	if err := o.diagnostics(res.Bag, res.FileSet); err != nil {
		return err
	}
	if !res.Failed() {
		if err := o.tokens(res.Tokens); err != nil {
			return err
		}
	}
	if err := o.timings(res.FileSet); err != nil {
		return err
	}
	if res.Failed() {
		return fmt.Errorf("tokenization failed: %w", res.Err)
	}
	return nil
}

// fileTokens is the per-file result of directory mode.
type fileTokens struct {
	Path   string
	Cached bool
	Error  string
	Tokens []token.Token
}

func (o *tokenizeOutput) dir(fileSet *source.FileSet, results []driver.TokenizeDirResult) error {
	bag := driver.MergeBags(results, o.st.cfg.Diagnostics.Max)
	if err := o.diagnostics(bag, fileSet); err != nil {
		return err
	}

	entries := make([]fileTokens, 0, len(results))
	for _, r := range results {
		e := fileTokens{Path: fileSet.Get(r.FileID).FormatPath("relative", fileSet.BaseDir()), Cached: r.Cached, Tokens: r.Tokens}
		if r.Err != nil {
			e.Error = r.Err.Error()
		}
		entries = append(entries, e)
	}
	if err := o.fileTokens(entries); err != nil {
		return err
	}
	if err := o.timings(fileSet); err != nil {
		return err
	}
	if err := driver.JoinErrors(results); err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	return nil
}

func (o *tokenizeOutput) tokens(tokens []token.Token) error {
	if o.st.cfg.Tokenize.Format == "json" {
		return diagfmt.FormatTokensJSON(o.stdout, tokens)
	}
	return diagfmt.FormatTokensPretty(o.stdout, tokens)
}

func (o *tokenizeOutput) fileTokens(entries []fileTokens) error {
	if o.st.cfg.Tokenize.Format == "json" {
		return diagfmt.FormatFileTokensJSON(o.stdout, toFileTokenOutputs(entries))
	}
	for _, e := range entries {
		switch {
		case e.Error != "":
			continue
		case e.Cached:
			fmt.Fprintf(o.stdout, "== %s (cached)\n", e.Path)
		default:
			fmt.Fprintf(o.stdout, "== %s\n", e.Path)
		}
		if err := diagfmt.FormatTokensPretty(o.stdout, e.Tokens); err != nil {
			return err
		}
	}
	return nil
}

func toFileTokenOutputs(entries []fileTokens) []diagfmt.FileTokensOutput {
	out := make([]diagfmt.FileTokensOutput, len(entries))
	for i, e := range entries {
		out[i] = diagfmt.FileTokensOutput{
			Path:   e.Path,
			Cached: e.Cached,
			Error:  e.Error,
			Tokens: diagfmt.TokenOutputs(e.Tokens),
		}
	}
	return out
}

func (o *tokenizeOutput) diagnostics(bag *diag.Bag, fs *source.FileSet) error {
	if bag == nil || bag.Len() == 0 {
		return nil
	}
	bag.Sort()
	cfg := o.st.cfg.Diagnostics
	switch cfg.Format {
	case "json":
		return diagfmt.JSON(o.stderr, bag, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         diagfmt.PathModeAuto,
			Max:              cfg.Max,
			IncludeNotes:     true,
		})
	case "short":
		_, err := fmt.Fprintln(o.stderr, diag.FormatShortDiagnostics(bag.Items(), fs, true))
		return err
	default:
		return diagfmt.Pretty(o.stderr, bag, fs, diagfmt.PrettyOpts{
			Color:     useColor(cfg.Color, o.stderr),
			Context:   1,
			PathMode:  diagfmt.PathModeAuto,
			ShowNotes: true,
		})
	}
}

func (o *tokenizeOutput) timings(fs *source.FileSet) error {
	if o.timer == nil {
		return nil
	}
	if o.st.cfg.Diagnostics.Format == "json" && fs != nil && fs.Len() > 0 {
		bag := diag.NewBag(1)
		bag.Add(o.timer.Diagnostic(source.Span{File: 0}))
		return diagfmt.JSON(o.stderr, bag, fs, diagfmt.JSONOpts{IncludeNotes: true})
	}
	_, err := fmt.Fprintln(o.stderr, o.timer.Summary())
	return err
}

func openTokenCache() (*driver.DiskCache, error) {
	return driver.OpenDiskCache("paf")
}

package driver

import (
	"context"
	"fmt"
	"time"

	"paf/internal/buildpipeline"
	"paf/internal/diag"
	"paf/internal/lexer"
	"paf/internal/observ"
	"paf/internal/source"
	"paf/internal/token"
	"paf/internal/trace"
)

// Options configures a tokenization run. The zero value lexes without
// cache, progress or timings.
type Options struct {
	MaxDiagnostics int
	Jobs           int // параллелизм для TokenizeDir, 0 = GOMAXPROCS
	Cache          *DiskCache
	Progress       buildpipeline.ProgressSink
	Timer          *observ.Timer
}

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
	Err     error // *lexer.Error, если токенизация прервалась
	Cached  bool
}

// Failed reports whether the lexer stopped on an error.
func (r *TokenizeResult) Failed() bool { return r.Err != nil }

// TokenizeFile loads path and tokenizes it. A load failure is returned as error;
// a lexical failure is recorded in the result (Err + Bag).
func TokenizeFile(ctx context.Context, path string, opts Options) (*TokenizeResult, error) {
	ctx, span := trace.Start(ctx, trace.ScopeDriver, "tokenize")
	defer span.End("")

	fs := source.NewFileSet()
	fileID, err := load(ctx, fs, path, opts.Timer)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return tokenizeLoaded(ctx, fs, fs.Get(fileID), opts), nil
}

// TokenizeSource tokenizes an in-memory snippet registered as a virtual file.
func TokenizeSource(ctx context.Context, name, src string, opts Options) *TokenizeResult {
	ctx, span := trace.Start(ctx, trace.ScopeDriver, "tokenize")
	defer span.End("")

	fs := source.NewFileSet()
	id := fs.AddVirtual(name, []byte(src))
	return tokenizeLoaded(ctx, fs, fs.Get(id), opts)
}

func load(ctx context.Context, fs *source.FileSet, path string, timer *observ.Timer) (source.FileID, error) {
	_, span := trace.Start(ctx, trace.ScopePass, "load")
	start := time.Now()
	id, err := fs.Load(path)
	addTiming(timer, "load", time.Since(start))
	if err != nil {
		span.End(err.Error())
		return 0, err
	}
	span.End("")
	return id, nil
}

// tokenizeLoaded: кэш (если включён и файл не виртуальный), иначе лексер.
// Успешный результат лексера записывается в кэш.
func tokenizeLoaded(ctx context.Context, fs *source.FileSet, file *source.File, opts Options) *TokenizeResult {
	bag := diag.NewBag(opts.maxDiagnostics())
	res := &TokenizeResult{FileSet: fs, File: file, Bag: bag}
	useCache := opts.Cache != nil && !file.Flags.Has(source.FileVirtual)

	key := CacheKey(file)
	if useCache {
		start := time.Now()
		tokens, ok, err := opts.Cache.GetTokens(key, file)
		addTiming(opts.Timer, "cache", time.Since(start))
		switch {
		case err != nil:
			trace.Point(trace.FromContext(ctx), trace.ScopeFile, "cache-read-failed", err.Error(), trace.CurrentSpanID(ctx))
			bag.Add(diag.New(diag.SevWarning, diag.IOCacheReadError,
				source.Span{File: file.ID}, fmt.Sprintf("token cache unreadable, re-lexing: %v", err)))
		case ok:
			res.Tokens = tokens
			res.Cached = true
			return res
		}
	}

	_, span := trace.Start(ctx, trace.ScopeFile, "lex:"+file.Path)
	start := time.Now()
	tokens, err := lexer.TokenizeFile(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	addTiming(opts.Timer, "lex", time.Since(start))
	if err != nil {
		span.End(err.Error())
		trace.Point(trace.FromContext(ctx), trace.ScopeFile, "lex-error", err.Error(), span.ID())
		res.Err = err
		return res
	}
	span.WithExtra("tokens", fmt.Sprint(len(tokens))).End("")
	res.Tokens = tokens

	if useCache {
		if err := opts.Cache.PutTokens(key, tokens); err != nil {
			trace.Point(trace.FromContext(ctx), trace.ScopeFile, "cache-write-failed", err.Error(), trace.CurrentSpanID(ctx))
		}
	}
	return res
}

// DefaultMaxDiagnostics applies when Options.MaxDiagnostics is not positive.
const DefaultMaxDiagnostics = 100

func (o Options) maxDiagnostics() int {
	if o.MaxDiagnostics <= 0 {
		return DefaultMaxDiagnostics
	}
	return o.MaxDiagnostics
}

func addTiming(t *observ.Timer, phase string, d time.Duration) {
	if t != nil {
		t.Add(phase, d)
	}
}

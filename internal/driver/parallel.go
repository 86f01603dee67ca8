package driver

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"paf/internal/buildpipeline"
	"paf/internal/diag"
	"paf/internal/source"
	"paf/internal/token"
	"paf/internal/trace"
)

// SourceExt is the extension of files picked up by TokenizeDir.
const SourceExt = ".paf"

// TokenizeDirResult содержит результат токенизации одного файла
type TokenizeDirResult struct {
	Path   string        // путь к файлу
	FileID source.FileID // ID файла в FileSet
	Tokens []token.Token
	Bag    *diag.Bag
	Err    error // ошибка лексера или загрузки
	Cached bool
}

// ListSourceFiles возвращает отсортированный список всех *.paf файлов в директории
func ListSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, SourceExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// TokenizeDir токенизирует все *.paf файлы в директории параллельно.
// Ошибки отдельных файлов остаются в их результатах; error возвращается
// только при сбое обхода директории или отмене ctx.
func TokenizeDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []TokenizeDirResult, error) {
	ctx, span := trace.Start(ctx, trace.ScopeDriver, "tokenize-dir")
	defer span.End("")

	files, err := ListSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	fileSet := source.NewFileSetWithBase(dir)
	span.WithExtra("files", fmt.Sprint(len(files)))
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	buildpipeline.Emit(opts.Progress, files, buildpipeline.StageLoad, buildpipeline.StatusQueued, nil, 0)

	// Загрузка последовательная: FileSet не потокобезопасен на запись
	fileIDs := make([]source.FileID, len(files))
	loadErrors := make([]error, len(files))
	{
		loadCtx, loadSpan := trace.Start(ctx, trace.ScopePass, "load")
		for i, path := range files {
			id, err := load(loadCtx, fileSet, path, opts.Timer)
			if err != nil {
				// пустая запись, чтобы у диагностики был корректный путь
				id = fileSet.Add(path, nil, 0)
				loadErrors[i] = err
			}
			fileIDs[i] = id
		}
		loadSpan.End("")
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]TokenizeDirResult, len(files))
	lexCtx, lexSpan := trace.Start(ctx, trace.ScopePass, "lex")
	defer lexSpan.End("")

	g, gctx := errgroup.WithContext(lexCtx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			started := time.Now()
			fileID := fileIDs[i]

			if loadErr := loadErrors[i]; loadErr != nil {
				bag := diag.NewBag(opts.maxDiagnostics())
				bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{File: fileID},
					"failed to load file: "+loadErr.Error()))
				results[i] = TokenizeDirResult{Path: path, FileID: fileID, Bag: bag, Err: loadErr}
				buildpipeline.Emit(opts.Progress, []string{path}, buildpipeline.StageLoad, buildpipeline.StatusError, loadErr, time.Since(started))
				return nil
			}

			buildpipeline.Emit(opts.Progress, []string{path}, buildpipeline.StageLex, buildpipeline.StatusWorking, nil, 0)
			res := tokenizeLoaded(gctx, fileSet, fileSet.Get(fileID), opts)

			// индекс i уникален для горутины, мьютекс не нужен
			results[i] = TokenizeDirResult{
				Path:   path,
				FileID: fileID,
				Tokens: res.Tokens,
				Bag:    res.Bag,
				Err:    res.Err,
				Cached: res.Cached,
			}

			status := buildpipeline.StatusDone
			stage := buildpipeline.StageLex
			switch {
			case res.Err != nil:
				status = buildpipeline.StatusError
			case res.Cached:
				status = buildpipeline.StatusCached
				stage = buildpipeline.StageCache
			}
			buildpipeline.Emit(opts.Progress, []string{path}, stage, status, res.Err, time.Since(started))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

// MergeBags собирает диагностики всех файлов в один Bag.
func MergeBags(results []TokenizeDirResult, maxDiagnostics int) *diag.Bag {
	out := diag.NewBag(maxDiagnostics)
	for _, r := range results {
		if r.Bag != nil {
			out.Merge(r.Bag)
		}
	}
	return out
}

// JoinErrors joins per-file errors in path order; nil when every file succeeded.
func JoinErrors(results []TokenizeDirResult) error {
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", r.Path, r.Err))
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errors.Join(errs...)
}

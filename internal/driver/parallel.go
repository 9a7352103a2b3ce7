package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// SourceExt is the extension of athena source files.
const SourceExt = ".ath"

// ListSourceFiles returns the sorted list of source files under dir.
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

	// Sorted for deterministic output order.
	sort.Strings(files)
	return files, nil
}

// DirResult pairs one file's path with its check outcome.
type DirResult struct {
	Path  string
	Check *CheckResult
}

// CheckDir checks every source file under dir concurrently. Each file is an
// independent translation unit; results come back in path order.
func CheckDir(ctx context.Context, dir string, maxDiagnostics, jobs int) ([]DirResult, error) {
	files, err := ListSourceFiles(dir)
	if err != nil {
		return nil, err
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]DirResult, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			check, err := Check(path, maxDiagnostics)
			if err != nil {
				return err
			}
			results[i] = DirResult{Path: path, Check: check}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// TokenizeDirResult pairs one file's path with its token stream.
type TokenizeDirResult struct {
	Path   string
	Result *TokenizeResult
}

// TokenizeDir tokenizes every source file under dir concurrently.
func TokenizeDir(ctx context.Context, dir string, maxDiagnostics, jobs int) ([]TokenizeDirResult, error) {
	files, err := ListSourceFiles(dir)
	if err != nil {
		return nil, err
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]TokenizeDirResult, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := Tokenize(path, maxDiagnostics)
			if err != nil {
				return err
			}
			results[i] = TokenizeDirResult{Path: path, Result: res}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

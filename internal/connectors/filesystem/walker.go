// Package filesystem walks a directory tree, parses every supported file
// and aggregates the normalised documents.
package filesystem

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/harvestly/harvest-cli/internal/core/domain"
	"github.com/harvestly/harvest-cli/internal/core/ports/driven"
	"github.com/harvestly/harvest-cli/internal/logger"
	"github.com/harvestly/harvest-cli/internal/normalise"
)

// Walker enumerates files under a root and turns each parseable file into
// documents. Per-file failures are logged and swallowed; they never abort
// the walk.
type Walker struct {
	parser   driven.FileParser
	opts     driven.ParseOptions
	progress driven.ProgressFunc
}

// New creates a walker over the given parser. A nil progress hook is
// allowed.
func New(parser driven.FileParser, opts driven.ParseOptions, progress driven.ProgressFunc) *Walker {
	return &Walker{parser: parser, opts: opts, progress: progress}
}

// ItemResult records the outcome for a single enumerated file.
type ItemResult struct {
	// Path is the enumerated file.
	Path string

	// Documents holds the documents the file contributed (nil on failure).
	Documents []domain.Document

	// Err is the per-file failure, nil on success.
	Err error
}

// Report is the per-item outcome of one walk.
type Report struct {
	// ID identifies the walk run.
	ID string

	// Root is the walked directory.
	Root string

	// Items lists per-file outcomes in enumeration order.
	Items []ItemResult
}

// Documents flattens the successful items into one document sequence.
func (r *Report) Documents() []domain.Document {
	var docs []domain.Document
	for _, item := range r.Items {
		docs = append(docs, item.Documents...)
	}
	return docs
}

// Failures returns the items that contributed no documents due to an error.
func (r *Report) Failures() []ItemResult {
	var failed []ItemResult
	for _, item := range r.Items {
		if item.Err != nil {
			failed = append(failed, item)
		}
	}
	return failed
}

// Walk enumerates files under root (recursively or single-level, in the
// order the platform yields them), parses and normalises each one, and
// returns the aggregated documents. It fails with domain.ErrEmptyResult
// when no file contributed anything; a bad root path and a root full of
// unparseable files are indistinguishable at this level, use WalkReport
// for the per-file outcomes.
func (w *Walker) Walk(ctx context.Context, root string, recursive bool) ([]domain.Document, error) {
	report, err := w.WalkReport(ctx, root, recursive)
	if err != nil {
		return nil, err
	}

	docs := report.Documents()
	if len(docs) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrEmptyResult, root)
	}
	return docs, nil
}

// WalkReport is Walk with the per-item outcomes preserved. The returned
// error is non-nil only for enumeration-level failures (context
// cancellation); an empty result is not an error here.
func (w *Walker) WalkReport(ctx context.Context, root string, recursive bool) (*Report, error) {
	report := &Report{
		ID:   uuid.New().String(),
		Root: root,
	}

	paths, err := w.enumerate(root, recursive)
	if err != nil {
		// Enumeration failure means zero documents; the walk contract
		// folds it into the empty aggregate.
		logger.Warn("walk %s: %v", root, err)
		return report, nil
	}

	for _, path := range paths {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		item := ItemResult{Path: path}
		blocks, err := w.parser.Parse(ctx, path, w.opts)
		if err != nil {
			logger.Warn("parse %s: %v", path, err)
			item.Err = err
		} else {
			for _, block := range blocks {
				item.Documents = append(item.Documents, normalise.Normalise(domain.FileRecord(block)))
			}
		}
		report.Items = append(report.Items, item)

		if w.progress != nil {
			w.progress(len(report.Items), path)
		}
	}

	return report, nil
}

// enumerate lists regular files under root, recursively or single-level.
// No ordering guarantee beyond what the platform's iteration yields.
func (w *Walker) enumerate(root string, recursive bool) ([]string, error) {
	if !recursive {
		entries, err := os.ReadDir(root)
		if err != nil {
			return nil, err
		}
		var paths []string
		for _, entry := range entries {
			if entry.Type().IsRegular() {
				paths = append(paths, filepath.Join(root, entry.Name()))
			}
		}
		return paths, nil
	}

	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}

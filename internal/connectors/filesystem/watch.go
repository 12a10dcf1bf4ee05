package filesystem

import (
	"context"

	"github.com/fsnotify/fsnotify"

	"github.com/harvestly/harvest-cli/internal/core/domain"
	"github.com/harvestly/harvest-cli/internal/logger"
	"github.com/harvestly/harvest-cli/internal/normalise"
)

// Watch emits documents for files created or rewritten under root after the
// initial walk. Unsupported and unparseable files are skipped with a log
// line, matching the walk's per-file policy. The stream closes when ctx is
// cancelled.
func (w *Walker) Watch(ctx context.Context, root string) (<-chan domain.Document, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(root); err != nil {
		watcher.Close()
		return nil, err
	}

	docs := make(chan domain.Document)

	go func() {
		defer close(docs)
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
					continue
				}

				blocks, err := w.parser.Parse(ctx, event.Name, w.opts)
				if err != nil {
					logger.Debug("watch parse %s: %v", event.Name, err)
					continue
				}
				for _, block := range blocks {
					select {
					case <-ctx.Done():
						return
					case docs <- normalise.Normalise(domain.FileRecord(block)):
					}
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("watch %s: %v", root, err)
			}
		}
	}()

	return docs, nil
}

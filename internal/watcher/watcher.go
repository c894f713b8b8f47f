// Package watcher ingests documents dropped into a watched directory.
// Files created under the directory are read and handed to the document
// service; hidden files and subdirectories are skipped.
package watcher

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/parley-labs/parley/internal/core/ports/driving"
	"github.com/parley-labs/parley/internal/logger"
)

// settleDelay gives the writer time to finish before the file is read.
const settleDelay = 200 * time.Millisecond

// Watcher watches a drop folder and ingests new files.
type Watcher struct {
	dir  string
	docs driving.DocumentService
}

// New creates a watcher for the given directory.
func New(dir string, docs driving.DocumentService) *Watcher {
	return &Watcher{dir: dir, docs: docs}
}

// Run watches the directory until the context is cancelled.
// The directory is created if it does not exist.
func (w *Watcher) Run(ctx context.Context) error {
	if err := os.MkdirAll(w.dir, 0700); err != nil {
		return err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	if err := fw.Add(w.dir); err != nil {
		return err
	}

	logger.Info("watching %s for new documents", w.dir)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			w.handleEvent(ctx, event)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		}
	}
}

// handleEvent ingests newly created files. Other operations, directories
// and hidden files are ignored.
func (w *Watcher) handleEvent(ctx context.Context, event fsnotify.Event) {
	if !event.Has(fsnotify.Create) {
		return
	}
	if isHidden(event.Name) {
		return
	}

	// Let the writer finish before reading
	select {
	case <-ctx.Done():
		return
	case <-time.After(settleDelay):
	}

	info, err := os.Stat(event.Name)
	if err != nil || info.IsDir() {
		return
	}

	content, err := os.ReadFile(event.Name)
	if err != nil {
		logger.Warn("failed to read %s: %v", event.Name, err)
		return
	}

	filename := filepath.Base(event.Name)
	doc, err := w.docs.Ingest(ctx, driving.IngestInput{
		Filename: filename,
		Content:  content,
	})
	if err != nil {
		logger.Warn("failed to ingest %s: %v", filename, err)
		return
	}

	logger.Info("ingested %s as document %s (%d chunks)", filename, doc.ID, doc.ChunkCount)
}

// isHidden reports whether any path element starts with a dot.
func isHidden(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part == "." || part == ".." || part == "" {
			continue
		}
		if strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}

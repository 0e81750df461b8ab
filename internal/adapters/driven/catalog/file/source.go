// Package file provides a catalog source backed by a local JSON file,
// with change notification through filesystem watching.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/civika-labs/serbisyo-cli/internal/core/domain"
	"github.com/civika-labs/serbisyo-cli/internal/core/ports/driven"
	"github.com/civika-labs/serbisyo-cli/internal/logger"
)

// Ensure Source implements both interfaces.
var (
	_ driven.CatalogSource  = (*Source)(nil)
	_ driven.CatalogWatcher = (*Source)(nil)
)

// Source reads the catalog document from a JSON file on disk. Useful for
// offline use and for municipal staff editing the catalog locally.
type Source struct {
	path string
}

// NewSource creates a file catalog source for the given path.
func NewSource(path string) *Source {
	return &Source{path: path}
}

// Fetch reads and decodes the catalog file.
func (s *Source) Fetch(_ context.Context) (*domain.CatalogDocument, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("catalog file %s: %w", s.path, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	var doc domain.CatalogDocument
	if err := json.Unmarshal(data, &doc); err == nil && doc.Services != nil {
		return &doc, nil
	}

	var services []domain.ServiceRecord
	if err := json.Unmarshal(data, &services); err != nil {
		return nil, fmt.Errorf("%w: decoding catalog file: %v", domain.ErrInvalidInput, err)
	}
	return &domain.CatalogDocument{Services: services}, nil
}

// Describe identifies the source in logs.
func (s *Source) Describe() string {
	return s.path
}

// Watch signals whenever the catalog file changes on disk. The channel
// closes when ctx is cancelled. The parent directory is watched rather
// than the file itself so that editors replacing the file via rename are
// still observed.
func (s *Source) Watch(ctx context.Context) (<-chan struct{}, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}

	changes := make(chan struct{}, 1)
	target := filepath.Clean(s.path)

	go func() {
		defer watcher.Close()
		defer close(changes)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				// Coalesce: drop the signal if one is already pending.
				select {
				case changes <- struct{}{}:
				default:
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("Catalog file watcher: %v", err)
			}
		}
	}()

	return changes, nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package loader loads a study catalog from disk and caches the built
// dataset. Concurrent callers share a single load; a forced reload
// replaces the cache atomically, so readers always see either the old
// or the new dataset, never a partial one.
package loader

import (
	"bytes"
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/pdiddy/study-atlas/internal/csvio"
	"github.com/pdiddy/study-atlas/internal/fetch"
	"github.com/pdiddy/study-atlas/internal/normalize"
	"github.com/pdiddy/study-atlas/pkg/types"
)

// Loader reads a catalog file on demand and keeps the built dataset in
// memory for subsequent calls.
type Loader struct {
	cfg types.LoadConfig

	mu     sync.RWMutex
	cached *types.Dataset

	group singleflight.Group
}

// New returns a Loader for the catalog described by cfg. Nothing is
// read until Load is called.
func New(cfg types.LoadConfig) *Loader {
	return &Loader{cfg: cfg}
}

// Load returns the dataset, reading and normalizing the catalog file on
// first use. Concurrent first calls perform one read between them.
func (l *Loader) Load() (*types.Dataset, error) {
	l.mu.RLock()
	ds := l.cached
	l.mu.RUnlock()
	if ds != nil {
		return ds, nil
	}
	return l.load()
}

// Reload discards the cache and reads the catalog again. Callers that
// already hold the previous dataset keep a consistent snapshot.
func (l *Loader) Reload() (*types.Dataset, error) {
	l.mu.Lock()
	l.cached = nil
	l.mu.Unlock()
	return l.load()
}

func (l *Loader) load() (*types.Dataset, error) {
	v, err, _ := l.group.Do(l.cfg.CSVPath, func() (interface{}, error) {
		table, err := l.read()
		if err != nil {
			return nil, err
		}
		ds, err := normalize.Build(table.Columns, table.Rows)
		if err != nil {
			return nil, err
		}
		l.mu.Lock()
		l.cached = ds
		l.mu.Unlock()
		return ds, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*types.Dataset), nil
}

// read parses the catalog from its local or remote source.
func (l *Loader) read() (*csvio.Table, error) {
	if fetch.IsURL(l.cfg.CSVPath) {
		data, err := fetch.Catalog(context.Background(), nil, l.cfg.CSVPath)
		if err != nil {
			return nil, err
		}
		return csvio.Read(bytes.NewReader(data), l.delimiter())
	}
	return csvio.ReadFile(l.cfg.CSVPath, l.delimiter())
}

// delimiter returns the configured delimiter rune, or zero to let the
// reader guess from the header line.
func (l *Loader) delimiter() rune {
	if l.cfg.Delimiter == "" {
		return 0
	}
	return []rune(l.cfg.Delimiter)[0]
}

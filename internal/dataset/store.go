// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dataset loads the publication table and holds it as an immutable
// snapshot. Readers always see a complete snapshot; a reload builds a new
// one and swaps it in atomically.
package dataset

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/singleflight"

	"github.com/pdiddy/pubflow/internal/enrich"
	"github.com/pdiddy/pubflow/internal/logging"
	"github.com/pdiddy/pubflow/pkg/types"
)

// Snapshot is one loaded, enriched record collection. It is never mutated
// after construction; share it freely across goroutines.
type Snapshot struct {
	Records  []types.PublicationRecord `json:"records"`
	Source   string                    `json:"source"`
	LoadedAt time.Time                 `json:"loadedAt"`
	AsOfYear int                       `json:"asOfYear"`
}

// NewSnapshot wraps already-enriched records.
func NewSnapshot(records []types.PublicationRecord, source string, asOfYear int) *Snapshot {
	return &Snapshot{Records: records, Source: source, LoadedAt: time.Now(), AsOfYear: asOfYear}
}

// Read parses and enriches a CSV stream into a snapshot.
func Read(r io.Reader, source string, e *enrich.Enricher) (*Snapshot, error) {
	rows, err := ReadCSV(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", source, err)
	}
	return NewSnapshot(e.EnrichAll(rows), source, e.AsOfYear()), nil
}

// ReadFile parses and enriches the CSV file at path.
func ReadFile(path string, e *enrich.Enricher) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()
	return Read(f, path, e)
}

// Store owns the current snapshot for one CSV file.
type Store struct {
	path     string
	enricher *enrich.Enricher
	logger   *log.Logger

	current atomic.Pointer[Snapshot]
	group   singleflight.Group
}

// NewStore returns a Store for path. Nothing is read until Load.
func NewStore(path string, e *enrich.Enricher, logger *log.Logger) *Store {
	return &Store{path: path, enricher: e, logger: logging.OrDiscard(logger)}
}

// NewStaticStore returns a Store that always serves snap. It has no file,
// so Reload returns snap unchanged.
func NewStaticStore(snap *Snapshot) *Store {
	s := &Store{logger: logging.Discard()}
	s.current.Store(snap)
	return s
}

// Current returns the loaded snapshot, or nil before the first Load.
func (s *Store) Current() *Snapshot {
	return s.current.Load()
}

// Load returns the current snapshot, reading the file on first use.
// Concurrent first calls share one read.
func (s *Store) Load(ctx context.Context) (*Snapshot, error) {
	if snap := s.current.Load(); snap != nil {
		return snap, nil
	}
	return s.refresh(ctx, "load", func() *Snapshot { return s.current.Load() })
}

// Reload reads the file again and swaps the new snapshot in. On failure the
// previous snapshot stays current.
func (s *Store) Reload(ctx context.Context) (*Snapshot, error) {
	return s.refresh(ctx, "reload", func() *Snapshot { return nil })
}

func (s *Store) refresh(ctx context.Context, key string, existing func() *Snapshot) (*Snapshot, error) {
	if s.path == "" {
		if snap := s.current.Load(); snap != nil {
			return snap, nil
		}
		return nil, fmt.Errorf("dataset: no data file configured")
	}

	v, err, _ := s.group.Do(key, func() (any, error) {
		if snap := existing(); snap != nil {
			return snap, nil
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		start := time.Now()
		snap, err := ReadFile(s.path, s.enricher)
		if err != nil {
			return nil, err
		}
		s.current.Store(snap)
		s.logger.Info("dataset loaded", "source", snap.Source, "records", len(snap.Records), "took", time.Since(start).Round(time.Millisecond))
		return snap, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Snapshot), nil
}

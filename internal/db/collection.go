package db

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/renameio/v2"
	"go.uber.org/zap"
)

var ErrCorrupt = errors.New("corrupt document")

// LoadStatus classifies what was found on disk for a collection.
type LoadStatus int

const (
	Found LoadStatus = iota
	Absent
	Corrupt
)

func (s LoadStatus) String() string {
	switch s {
	case Found:
		return "found"
	case Absent:
		return "absent"
	case Corrupt:
		return "corrupt"
	}
	return fmt.Sprintf("LoadStatus(%d)", int(s))
}

// Collection is a homogeneous list of records kept as one JSON array on disk.
// Nothing is cached: every Load reads the file and every Save rewrites it.
// The mutex serialises load/compute/save sequences within this process.
type Collection[T any] struct {
	mu   sync.Mutex
	path string
	seed func() []T

	// reseedOnCorrupt restores the legacy behaviour of treating any read or
	// decode failure as a missing file. This discards the existing file.
	reseedOnCorrupt bool
	log             *zap.Logger
}

func NewCollection[T any](path string, seed func() []T, reseedOnCorrupt bool, log *zap.Logger) *Collection[T] {
	if log == nil {
		log = zap.NewNop()
	}
	return &Collection[T]{
		path:            path,
		seed:            seed,
		reseedOnCorrupt: reseedOnCorrupt,
		log:             log.With(zap.String("collection", filepath.Base(path))),
	}
}

func (c *Collection[T]) Path() string {
	return c.path
}

// Probe reports the on-disk state without seeding anything.
func (c *Collection[T]) Probe() (LoadStatus, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, status, err := c.read()
	return status, err
}

// Load returns the full collection, seeding the file first if it is absent.
func (c *Collection[T]) Load() ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loadLocked()
}

// Save overwrites the file with items.
func (c *Collection[T]) Save(items []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.saveLocked(items)
}

// Update runs fn on the current collection and persists what it returns,
// holding the collection lock for the whole sequence. If fn fails nothing is
// written.
func (c *Collection[T]) Update(fn func(items []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.loadLocked()
	if err != nil {
		return err
	}
	updated, err := fn(items)
	if err != nil {
		return err
	}
	return c.saveLocked(updated)
}

func (c *Collection[T]) read() ([]T, LoadStatus, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, Absent, nil
		}
		return nil, Corrupt, fmt.Errorf("read %s: %w", c.path, err)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, Corrupt, fmt.Errorf("%w: %s: %v", ErrCorrupt, c.path, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, Found, nil
}

func (c *Collection[T]) loadLocked() ([]T, error) {
	items, status, err := c.read()
	switch status {
	case Found:
		return items, nil
	case Absent:
		c.log.Info("seeding absent collection", zap.String("path", c.path))
		return c.seedLocked()
	}

	if !c.reseedOnCorrupt {
		return nil, err
	}
	c.log.Warn("replacing unreadable collection with seed data", zap.String("path", c.path), zap.Error(err))
	return c.seedLocked()
}

func (c *Collection[T]) seedLocked() ([]T, error) {
	items := []T{}
	if c.seed != nil {
		items = c.seed()
	}
	if err := c.saveLocked(items); err != nil {
		return nil, err
	}
	return items, nil
}

// saveLocked writes to a temp file next to the target, syncs it and renames
// it into place, so readers never observe a half-written document.
func (c *Collection[T]) saveLocked(items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.path, err)
	}

	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	if err := renameio.WriteFile(c.path, data, 0o644, renameio.WithTempDir(dir)); err != nil {
		return fmt.Errorf("write %s: %w", c.path, err)
	}
	return nil
}

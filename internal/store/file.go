package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xpointcnc/xpoint-backend/internal/domain"
)

// FileBackend keeps the snapshot in one pretty-printed JSON file, the same
// layout the data file has always had.
type FileBackend struct {
	path     string
	readOnly bool
}

// NewFileBackend returns a file backend rooted at path. A read-only backend
// serves loads normally and fails every save with ErrReadOnly.
func NewFileBackend(path string, readOnly bool) *FileBackend {
	return &FileBackend{path: path, readOnly: readOnly}
}

// Load reads the data file. A missing or unparseable file is treated as an
// empty database, not an error.
func (b *FileBackend) Load(ctx context.Context) (*domain.Database, error) {
	raw, err := os.ReadFile(b.path)
	if err != nil {
		return domain.NewDatabase(), nil
	}
	db := domain.NewDatabase()
	if err := json.Unmarshal(raw, db); err != nil {
		return domain.NewDatabase(), nil
	}
	return db, nil
}

// Save replaces the data file atomically: the snapshot is written to a temp
// file in the same directory, synced, then renamed over the target. Readers
// never observe a partially written file.
func (b *FileBackend) Save(ctx context.Context, db *domain.Database) error {
	if b.readOnly {
		return ErrReadOnly
	}
	raw, err := json.MarshalIndent(db, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %s", ErrWriteFailed, err)
	}
	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: %s", ErrWriteFailed, err)
	}
	tmp, err := os.CreateTemp(dir, ".data-*.json")
	if err != nil {
		return fmt.Errorf("%w: %s", ErrWriteFailed, err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: %s", ErrWriteFailed, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: %s", ErrWriteFailed, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %s", ErrWriteFailed, err)
	}
	if err := os.Rename(tmp.Name(), b.path); err != nil {
		return fmt.Errorf("%w: %s", ErrWriteFailed, err)
	}
	return nil
}

package record

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/povarna/prompt-playground/internal/models"
)

// FileStore writes each record as <dir>/<slug>_demo.json. Concurrent
// writers for the same technique race last-writer-wins; records are small
// and this is accepted.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (s *FileStore) Save(ctx context.Context, techniqueName string, record models.DemonstrationRecord) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", s.dir, err)
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize record: %w", err)
	}

	path := filepath.Join(s.dir, Slug(techniqueName)+"_demo.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write record %s: %w", path, err)
	}

	return nil
}

// Package storage persists the application snapshot as a single YAML file
// under the base path.
package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/fokus-app/fokus/pkg/models"
)

// Schema keys. Each key is a distinct file name, so bumping the schema
// abandons the previous file in place rather than migrating it: users start
// the new schema from a clean slate.
const (
	SchemaKeyV3 = "fokus-storage-v3"
	SchemaKeyV4 = "fokus-storage-v4"

	// SchemaKey is the current persistence key.
	SchemaKey = "fokus-storage-v6"
)

// SnapshotStore loads and saves the full application state.
type SnapshotStore interface {
	Load() (*models.Snapshot, error)
	Save(snap *models.Snapshot) error
}

type fileSnapshotStore struct {
	basePath string
}

// NewSnapshotStore creates a SnapshotStore backed by <basePath>/<SchemaKey>.yaml.
func NewSnapshotStore(basePath string) SnapshotStore {
	return &fileSnapshotStore{basePath: basePath}
}

func (s *fileSnapshotStore) filePath() string {
	return filepath.Join(s.basePath, SchemaKey+".yaml")
}

// Load reads the snapshot file. A missing file yields the default snapshot;
// so does an unreadable or malformed one, because losing the focus state is
// better than refusing to start.
func (s *fileSnapshotStore) Load() (*models.Snapshot, error) {
	data, err := os.ReadFile(s.filePath())
	if err != nil {
		return models.DefaultSnapshot(), nil
	}

	snap := models.DefaultSnapshot()
	if err := yaml.Unmarshal(data, snap); err != nil {
		return models.DefaultSnapshot(), nil
	}
	return snap, nil
}

// Save writes the snapshot atomically enough for a single-writer app:
// marshal, then replace the file contents in one WriteFile call.
func (s *fileSnapshotStore) Save(snap *models.Snapshot) error {
	if err := os.MkdirAll(s.basePath, 0755); err != nil {
		return fmt.Errorf("creating storage directory: %w", err)
	}

	data, err := yaml.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshaling snapshot: %w", err)
	}

	if err := os.WriteFile(s.filePath(), data, 0644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}

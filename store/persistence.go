package store

import (
	"encoding/json"
	"os"

	"hr-dashboard-server/models"
)

// Snapshot is the durable slice of store state: bookmarks and feedback only.
// The employee list is deliberately excluded; it is re-fetched from the
// directory source on every start.
type Snapshot struct {
	Bookmarks []int             `json:"bookmarks"`
	Feedback  []models.Feedback `json:"feedback"`
}

// SnapshotFile reads and writes the store snapshot at a fixed path.
type SnapshotFile struct {
	path string
}

// NewSnapshotFile returns a snapshot file handle for path.
func NewSnapshotFile(path string) *SnapshotFile {
	return &SnapshotFile{path: path}
}

// Load reads and decodes the snapshot. A missing file returns an empty
// snapshot with no error.
func (sf *SnapshotFile) Load() (Snapshot, error) {
	var snap Snapshot

	data, err := os.ReadFile(sf.path)
	if err != nil {
		if os.IsNotExist(err) {
			return snap, nil
		}
		return snap, err
	}

	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

// Save writes the snapshot atomically by renaming over the previous file.
func (sf *SnapshotFile) Save(snap Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}

	tmp := sf.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, sf.path)
}

package state

import (
	"encoding/json"
	"os"
	"time"

	"techbbswatcher/logger"
	"techbbswatcher/pkg/errors"
)

// FileStore implements Store on a flat JSON file mapping listing identifier
// to first-seen timestamp (RFC3339).
type FileStore struct {
	path    string
	entries map[string]time.Time
	log     *logger.Logger
}

// NewFileStore creates a file-backed store at the given path
func NewFileStore(path string) *FileStore {
	return &FileStore{
		path:    path,
		entries: make(map[string]time.Time),
		log:     logger.ForComponent("state"),
	}
}

// Load reads the state file. A missing file yields an empty store; a file
// that cannot be read or decoded is an error.
func (s *FileStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.entries = make(map[string]time.Time)
			return nil
		}
		return errors.NewState("store", "failed to read state file "+s.path, err)
	}

	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.NewState("store", "corrupt state file "+s.path, err)
	}

	entries := make(map[string]time.Time, len(raw))
	for id, stamp := range raw {
		seenAt, err := time.Parse(time.RFC3339, stamp)
		if err != nil {
			return errors.NewState("store", "invalid timestamp for "+id+" in "+s.path, err)
		}
		entries[id] = seenAt
	}
	s.entries = entries
	return nil
}

// Has reports whether the identifier has already been alerted on
func (s *FileStore) Has(id string) bool {
	_, ok := s.entries[id]
	return ok
}

// Add records an identifier with its first-seen timestamp
func (s *FileStore) Add(id string, seenAt time.Time) {
	s.entries[id] = seenAt
}

// Prune drops entries older than maxAge and returns how many were removed
func (s *FileStore) Prune(maxAge time.Duration) int {
	now := time.Now()
	removed := 0
	for id, seenAt := range s.entries {
		if now.Sub(seenAt) > maxAge {
			delete(s.entries, id)
			removed++
		}
	}
	if removed > 0 {
		s.log.Debug().Int("removed", removed).Msg("Pruned old entries")
	}
	return removed
}

// Save persists the state file, overwriting the previous contents
func (s *FileStore) Save() error {
	raw := make(map[string]string, len(s.entries))
	for id, seenAt := range s.entries {
		raw[id] = seenAt.Format(time.RFC3339)
	}

	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return errors.NewState("store", "failed to encode state", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return errors.NewState("store", "failed to write state file "+s.path, err)
	}
	return nil
}

// Len returns the number of tracked identifiers
func (s *FileStore) Len() int {
	return len(s.entries)
}

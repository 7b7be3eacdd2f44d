// Package archive forwards a channel's message history to a webhook, with
// per-source resume state persisted so an interrupted run picks up where it
// stopped instead of duplicating messages.
package archive

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

// SourceState is the resume record for one source channel.
type SourceState struct {
	SourceChannelID string `json:"source_channel_id"`
	Completed       bool   `json:"completed"`
	LastMessageID   string `json:"last_message_id,omitempty"`
	UpdatedAt       string `json:"updated_at,omitempty"`
}

type stateFile struct {
	Sources map[string]SourceState `json:"sources"`
}

// StateStore persists the per-source resume state. Same conventions as the
// other JSON stores: reload per call, atomic tmp+rename writes.
type StateStore struct {
	path string
}

// NewStateStore creates a StateStore backed by path.
func NewStateStore(path string) *StateStore {
	return &StateStore{path: path}
}

func (s *StateStore) load() stateFile {
	var f stateFile
	raw, err := os.ReadFile(s.path)
	if err == nil {
		err = json.Unmarshal(raw, &f)
	}
	if err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not load %s: %v (using defaults)", s.path, err)
	}
	if f.Sources == nil {
		f.Sources = make(map[string]SourceState)
	}
	return f
}

func (s *StateStore) save(f stateFile) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", s.path, err)
	}
	raw, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", s.path, err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", s.path, err)
	}
	return nil
}

// Get returns the source's state, zero-valued when never seen.
func (s *StateStore) Get(sourceID string) SourceState {
	f := s.load()
	st, ok := f.Sources[sourceID]
	if !ok {
		return SourceState{SourceChannelID: sourceID}
	}
	return st
}

// Update mutates the source's state via fn and persists it.
func (s *StateStore) Update(sourceID string, fn func(*SourceState)) error {
	f := s.load()
	st, ok := f.Sources[sourceID]
	if !ok {
		st = SourceState{SourceChannelID: sourceID}
	}
	fn(&st)
	st.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	f.Sources[sourceID] = st
	return s.save(f)
}

// Reset clears the source's completion flag and resume position, for
// override re-runs.
func (s *StateStore) Reset(sourceID string) error {
	return s.Update(sourceID, func(st *SourceState) {
		st.Completed = false
		st.LastMessageID = ""
	})
}

// WebhookFingerprint returns a short digest of the webhook URL, so logs
// never carry the secret token.
func WebhookFingerprint(url string) string {
	h := sha256.Sum256([]byte(url))
	return fmt.Sprintf("sha256:%x", h[:5])
}

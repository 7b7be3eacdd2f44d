// Package reminder implements one-shot time-based notifications: a JSON
// persisted record list, a free-text time parser, and a polling dispatcher
// with at-most-one delivery attempt per record.
package reminder

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// MaxMessageLen caps the stored reminder text.
const MaxMessageLen = 200

// Record is one pending reminder.
type Record struct {
	UserID    string    `json:"user_id"`
	ChannelID string    `json:"channel_id"`
	Message   string    `json:"message"`
	Time      time.Time `json:"time"`
}

// Store holds the active reminders in memory and mirrors them to a JSON
// file. The file is rewritten whole on every persist (atomic tmp+rename).
type Store struct {
	path string

	mu      sync.Mutex
	records []Record
}

// NewStore creates a Store backed by path and loads any persisted records.
// Load failures are logged, not fatal: the bot starts with an empty list.
func NewStore(path string) *Store {
	s := &Store{path: path}
	s.load()
	return s
}

func (s *Store) load() {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: could not read reminders file %s: %v", s.path, err)
		}
		return
	}
	var records []Record
	if err := json.Unmarshal(raw, &records); err != nil {
		log.Printf("Warning: malformed reminders file %s: %v (starting empty)", s.path, err)
		return
	}
	s.records = records
	log.Printf("Loaded %d reminders", len(records))
}

func (s *Store) persistLocked() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create reminders directory: %w", err)
	}
	raw, err := json.MarshalIndent(s.records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal reminders: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0644); err != nil {
		return fmt.Errorf("failed to write reminders: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace reminders file: %w", err)
	}
	return nil
}

// Add appends a record and persists the list.
func (s *Store) Add(r Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, r)
	return s.persistLocked()
}

// Count returns the number of pending reminders.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// TakeDue removes and returns every record whose fire time has passed.
// The remaining list is persisted once, regardless of how many records
// fired.
func (s *Store) TakeDue(now time.Time) []Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	var due, remaining []Record
	for _, r := range s.records {
		if !r.Time.After(now) {
			due = append(due, r)
		} else {
			remaining = append(remaining, r)
		}
	}
	if len(due) == 0 {
		return nil
	}

	s.records = remaining
	if err := s.persistLocked(); err != nil {
		log.Printf("Could not persist reminders after dispatch: %v", err)
	}
	return due
}

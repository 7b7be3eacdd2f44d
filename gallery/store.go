// Package gallery serves the JSON-backed media gallery. Policy: random and
// tag lookups never serve NSFW entries; title lookups require both the
// global nsfw flag and an NSFW-marked channel.
package gallery

import (
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Entry is one gallery item.
type Entry struct {
	Title   string   `json:"title"`
	URL     string   `json:"url"`
	Caption string   `json:"caption,omitempty"`
	Author  string   `json:"author,omitempty"`
	Tags    []string `json:"tags,omitempty"`
	NSFW    bool     `json:"nsfw,omitempty"`
	Pinned  bool     `json:"pinned,omitempty"`
	Type    string   `json:"type,omitempty"`
}

var videoExts = map[string]bool{"mp4": true, "webm": true, "mov": true}

// MediaType returns "image" or "video", preferring the explicit field and
// falling back to the URL extension.
func (e Entry) MediaType() string {
	t := strings.ToLower(strings.TrimSpace(e.Type))
	if t == "image" || t == "video" {
		return t
	}
	u, err := url.Parse(e.URL)
	if err != nil {
		return "image"
	}
	path := u.Path
	if idx := strings.LastIndex(path, "."); idx >= 0 && videoExts[strings.ToLower(path[idx+1:])] {
		return "video"
	}
	return "image"
}

// FirstTag returns the entry's first tag, or an em dash placeholder.
func (e Entry) FirstTag() string {
	if len(e.Tags) > 0 {
		return e.Tags[0]
	}
	return "—"
}

// Config is the gallery policy file.
type Config struct {
	NSFWEnabled bool `json:"nsfw_enabled"`
}

// Store reads and writes the gallery file. Reads accept a bare entry list
// or the legacy {"entries":[...]} wrapper.
type Store struct {
	path       string
	configPath string
}

// NewStore creates a Store over the gallery and config files.
func NewStore(path, configPath string) *Store {
	return &Store{path: path, configPath: configPath}
}

// Entries loads the gallery list. Missing or malformed files yield an
// empty list, never an error.
func (s *Store) Entries() []Entry {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: could not read gallery file %s: %v", s.path, err)
		}
		return nil
	}

	var entries []Entry
	if err := json.Unmarshal(raw, &entries); err == nil {
		return entries
	}

	var legacy struct {
		Entries []Entry `json:"entries"`
	}
	if err := json.Unmarshal(raw, &legacy); err != nil {
		log.Printf("Warning: malformed gallery file %s: %v", s.path, err)
		return nil
	}
	return legacy.Entries
}

// LoadConfig loads the gallery policy, defaulting to NSFW disabled.
func (s *Store) LoadConfig() Config {
	var cfg Config
	raw, err := os.ReadFile(s.configPath)
	if err != nil {
		return cfg
	}
	if err := json.Unmarshal(raw, &cfg); err != nil {
		log.Printf("Warning: malformed gallery config %s: %v", s.configPath, err)
	}
	return cfg
}

func (s *Store) write(entries []Entry) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create gallery directory: %w", err)
	}
	raw, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal gallery: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0644); err != nil {
		return fmt.Errorf("failed to write gallery: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace gallery file: %w", err)
	}
	return nil
}

// Merge adds entries whose URL is not yet present, keeping existing order.
// It returns the number of entries added.
func (s *Store) Merge(incoming []Entry) (int, error) {
	existing := s.Entries()
	seen := make(map[string]bool, len(existing))
	for _, e := range existing {
		seen[e.URL] = true
	}

	added := 0
	for _, e := range incoming {
		u := strings.TrimSpace(e.URL)
		if u == "" || seen[u] {
			continue
		}
		seen[u] = true
		e.URL = u
		existing = append(existing, e)
		added++
	}

	if err := s.write(existing); err != nil {
		return 0, err
	}
	return added, nil
}

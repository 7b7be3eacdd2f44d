// Package storage holds the per-guild JSON config stores. Every accessor
// reloads from disk on each call so external edits are picked up immediately;
// writes go through a temp file and rename so a crash never leaves a torn
// file behind. Single-process last-writer-wins, no locking.
package storage

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// readJSON unmarshals path into v. A missing or malformed file is reported
// to the caller so it can substitute defaults.
func readJSON(path string, v interface{}) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// writeJSON atomically writes v to path, creating parent directories as
// needed.
func writeJSON(path string, v interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", path, err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

// warnLoad logs a load failure unless the file simply does not exist yet.
func warnLoad(path string, err error) {
	if os.IsNotExist(err) {
		return
	}
	log.Printf("Warning: could not load %s: %v (using defaults)", path, err)
}

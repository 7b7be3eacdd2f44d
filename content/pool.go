package content

import (
	"encoding/json"
	"log"
	"os"
	"strings"
)

// item is one entry of the {"items":[{"text":...}]} document shape.
type item struct {
	Text      string `json:"text"`
	Setup     string `json:"setup"`
	Punchline string `json:"punchline"`
}

type itemsDoc struct {
	Items []item `json:"items"`
}

// LoadLines reads a content pool from a JSON file. Both supported shapes are
// accepted: a bare list of strings, or {"items":[{"text":"..."}]}. When the
// file is missing, malformed, or yields no usable lines, the fallback set is
// returned instead. LoadLines never fails.
func LoadLines(path string, fallback []string) []string {
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Could not read content file %s: %v (using %d fallback lines)", path, err, len(fallback))
		return append([]string(nil), fallback...)
	}

	lines := parseLines(raw)
	if len(lines) == 0 {
		log.Printf("No usable lines in %s, using %d fallback lines", path, len(fallback))
		return append([]string(nil), fallback...)
	}

	log.Printf("Loaded %d lines from %s", len(lines), path)
	return lines
}

func parseLines(raw []byte) []string {
	// Shape 1: bare list of strings.
	var plain []string
	if err := json.Unmarshal(raw, &plain); err == nil {
		out := make([]string, 0, len(plain))
		for _, s := range plain {
			if t := strings.TrimSpace(s); t != "" {
				out = append(out, t)
			}
		}
		return out
	}

	// Shape 2: {"items":[{"text":"..."}]}.
	var doc itemsDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil
	}
	out := make([]string, 0, len(doc.Items))
	for _, it := range doc.Items {
		if t := strings.TrimSpace(it.Text); t != "" {
			out = append(out, t)
		}
	}
	return out
}

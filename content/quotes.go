package content

import (
	"encoding/json"
	"log"
	"math/rand"
	"os"
	"strings"
)

// Quote is one quote entry with optional attribution and tags.
type Quote struct {
	Text   string   `json:"text"`
	Author string   `json:"author,omitempty"`
	Tags   []string `json:"tags,omitempty"`
}

// LoadQuotes reads the quote pool from a JSON list. A missing or malformed
// file yields the built-in fallback set.
func LoadQuotes(path string) []Quote {
	fallback := []Quote{{Text: "Luck favors the prepared.", Author: "AURA"}}

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Could not read quotes file %s: %v (using fallback)", path, err)
		return fallback
	}

	var quotes []Quote
	if err := json.Unmarshal(raw, &quotes); err != nil || len(quotes) == 0 {
		log.Printf("No usable quotes in %s, using fallback", path)
		return fallback
	}
	return quotes
}

// FilterQuotesByTag returns the quotes carrying the tag (case-insensitive).
// An unknown tag returns the full pool so the command never comes up empty.
func FilterQuotesByTag(quotes []Quote, tag string) []Quote {
	if tag == "" {
		return quotes
	}
	tagLower := strings.ToLower(tag)
	var out []Quote
	for _, q := range quotes {
		for _, t := range q.Tags {
			if strings.ToLower(t) == tagLower {
				out = append(out, q)
				break
			}
		}
	}
	if len(out) == 0 {
		return quotes
	}
	return out
}

// RandomQuote picks a uniformly random quote.
func RandomQuote(quotes []Quote) Quote {
	if len(quotes) == 0 {
		return Quote{Text: "…"}
	}
	return quotes[rand.Intn(len(quotes))]
}

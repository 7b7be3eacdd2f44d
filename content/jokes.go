package content

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
)

// Joke is a single joke. Either Setup/Punchline are set, or Text is set.
type Joke struct {
	Setup     string `json:"setup,omitempty"`
	Punchline string `json:"punchline,omitempty"`
	Text      string `json:"text,omitempty"`
}

// Format renders the joke for Discord. Setup/punchline jokes hide the answer
// behind a spoiler.
func (j Joke) Format() string {
	if j.Setup != "" && j.Punchline != "" {
		return fmt.Sprintf("**Q:** %s →\n**A:** ||%s||", j.Setup, j.Punchline)
	}
	return j.Text
}

// cleanText strips stray trailing spoiler delimiters and whitespace.
func cleanText(s string) string {
	s = strings.TrimSpace(s)
	for strings.HasSuffix(s, "|") {
		s = strings.TrimSpace(strings.TrimRight(s, "|"))
	}
	return s
}

// normalizeJoke turns a raw text line into a Joke, splitting on the first
// "||" when the line carries an inline punchline.
func normalizeJoke(text string) Joke {
	text = cleanText(text)
	if idx := strings.Index(text, "||"); idx >= 0 {
		return Joke{
			Setup:     cleanText(text[:idx]),
			Punchline: cleanText(text[idx+2:]),
		}
	}
	return Joke{Text: text}
}

// LoadJokes reads the joke pool from a JSON file. Accepted entry shapes:
// plain strings (with optional "setup || punchline" inline form),
// {"setup":..., "punchline":...} objects, and {"text":...} objects, in
// either a bare list or under "items". Missing or malformed files yield an
// empty pool, never an error.
func LoadJokes(path string) []Joke {
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Could not read jokes file %s: %v", path, err)
		return nil
	}

	jokes := parseJokes(raw)
	log.Printf("Jokes loaded: %d", len(jokes))
	return jokes
}

func parseJokes(raw []byte) []Joke {
	var entries []json.RawMessage

	var doc struct {
		Items []json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(raw, &doc); err == nil && doc.Items != nil {
		entries = doc.Items
	} else if err := json.Unmarshal(raw, &entries); err != nil {
		return nil
	}

	jokes := make([]Joke, 0, len(entries))
	for _, e := range entries {
		var s string
		if err := json.Unmarshal(e, &s); err == nil {
			if s = strings.TrimSpace(s); s != "" {
				jokes = append(jokes, normalizeJoke(s))
			}
			continue
		}

		var obj item
		if err := json.Unmarshal(e, &obj); err != nil {
			continue
		}
		switch {
		case obj.Setup != "" && obj.Punchline != "":
			jokes = append(jokes, Joke{Setup: cleanText(obj.Setup), Punchline: cleanText(obj.Punchline)})
		case obj.Text != "":
			jokes = append(jokes, normalizeJoke(obj.Text))
		}
	}
	return jokes
}

package content

import (
	"encoding/json"
	"log"
	"math/rand"
	"os"
	"strings"
)

// NameTheme holds the word parts for one name theme.
type NameTheme struct {
	Prefixes []string `json:"prefixes"`
	Cores    []string `json:"cores"`
	Suffixes []string `json:"suffixes"`
}

// NameBank is the full themed name-part bank.
type NameBank struct {
	DefaultTheme string               `json:"default_theme"`
	Themes       map[string]NameTheme `json:"themes"`
}

func defaultNameBank() NameBank {
	return NameBank{
		DefaultTheme: "cozy",
		Themes: map[string]NameTheme{
			"cozy": {
				Prefixes: []string{"Clover", "Maple", "Willow", "Honey"},
				Cores:    []string{"brook", "fern", "moss", "ember"},
				Suffixes: []string{"whisper", "glow", "patch", "song"},
			},
		},
	}
}

// LoadNameBank reads the themed name bank from disk, falling back to the
// built-in bank when missing or malformed.
func LoadNameBank(path string) NameBank {
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Could not read name bank %s: %v (using built-in)", path, err)
		return defaultNameBank()
	}

	var bank NameBank
	if err := json.Unmarshal(raw, &bank); err != nil || len(bank.Themes) == 0 {
		log.Printf("No usable themes in %s, using built-in bank", path)
		return defaultNameBank()
	}
	if bank.DefaultTheme == "" || bank.Themes[bank.DefaultTheme].isEmpty() {
		for name := range bank.Themes {
			bank.DefaultTheme = name
			break
		}
	}
	return bank
}

func (t NameTheme) isEmpty() bool {
	return len(t.Prefixes) == 0 && len(t.Cores) == 0 && len(t.Suffixes) == 0
}

// ThemeNames lists the available themes, for command choices.
func (b NameBank) ThemeNames() []string {
	names := make([]string, 0, len(b.Themes))
	for name := range b.Themes {
		names = append(names, name)
	}
	return names
}

// Generate builds a name from the requested theme, falling back to the
// default theme when the requested one is unknown.
func (b NameBank) Generate(theme string, rng *rand.Rand) string {
	t, ok := b.Themes[strings.ToLower(theme)]
	if !ok || t.isEmpty() {
		t = b.Themes[b.DefaultTheme]
	}

	pick := func(parts []string) string {
		if len(parts) == 0 {
			return ""
		}
		return parts[rng.Intn(len(parts))]
	}

	prefix := pick(t.Prefixes)
	core := pick(t.Cores)
	suffix := pick(t.Suffixes)

	// Prefix joins the core directly; the suffix hangs off with a space.
	name := prefix + core
	if name == "" {
		name = capitalize(suffix)
	} else if suffix != "" {
		name += " " + capitalize(suffix)
	}
	if name == "" {
		return "Nameless One"
	}
	return name
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

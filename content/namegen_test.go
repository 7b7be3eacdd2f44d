package content

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadNameBankMissingFileUsesBuiltIn(t *testing.T) {
	t.Parallel()

	bank := LoadNameBank(filepath.Join(t.TempDir(), "nope.json"))
	require.NotEmpty(t, bank.Themes)
	assert.NotEmpty(t, bank.DefaultTheme)
}

func TestNameBankGenerate(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "names.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"default_theme": "forest",
		"themes": {
			"forest": {"prefixes": ["Oak"], "cores": ["leaf"], "suffixes": ["shade"]}
		}
	}`), 0o644))

	bank := LoadNameBank(path)
	rng := rand.New(rand.NewSource(1))

	assert.Equal(t, "Oakleaf Shade", bank.Generate("forest", rng))
	// Unknown themes fall back to the default theme.
	assert.Equal(t, "Oakleaf Shade", bank.Generate("space", rng))
}

func TestFilterQuotesByTag(t *testing.T) {
	t.Parallel()

	quotes := []Quote{
		{Text: "a", Tags: []string{"luck"}},
		{Text: "b", Tags: []string{"Courage"}},
		{Text: "c"},
	}

	luck := FilterQuotesByTag(quotes, "LUCK")
	require.Len(t, luck, 1)
	assert.Equal(t, "a", luck[0].Text)

	// Unknown tags fall back to the whole pool instead of an empty answer.
	assert.Len(t, FilterQuotesByTag(quotes, "space"), 3)
	assert.Len(t, FilterQuotesByTag(quotes, ""), 3)
}

package gallery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T, body string) *Store {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "gallery.json")
	if body != "" {
		require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	}
	return NewStore(path, filepath.Join(dir, "config.json"))
}

func TestEntriesAcceptsBothShapes(t *testing.T) {
	t.Parallel()

	bare := newStore(t, `[{"title":"a","url":"https://x/a.png"}]`)
	require.Len(t, bare.Entries(), 1)

	legacy := newStore(t, `{"entries":[{"title":"a","url":"https://x/a.png"},{"title":"b","url":"https://x/b.mp4"}]}`)
	entries := legacy.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "image", entries[0].MediaType())
	assert.Equal(t, "video", entries[1].MediaType())
}

func TestEntriesMissingOrMalformed(t *testing.T) {
	t.Parallel()

	assert.Empty(t, newStore(t, "").Entries())
	assert.Empty(t, newStore(t, "{oops").Entries())
}

func TestMergeDeduplicatesByURL(t *testing.T) {
	t.Parallel()

	s := newStore(t, `[{"title":"a","url":"https://x/a.png"}]`)

	added, err := s.Merge([]Entry{
		{Title: "a again", URL: "https://x/a.png"},
		{Title: "b", URL: "https://x/b.png"},
		{Title: "no url"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	entries := s.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "a", entries[0].Title, "existing order preserved")
	assert.Equal(t, "b", entries[1].Title)
}

func TestFilterExcludesNSFWUnlessAllowed(t *testing.T) {
	t.Parallel()

	entries := []Entry{
		{Title: "sfw", URL: "u1", Tags: []string{"art"}},
		{Title: "nsfw", URL: "u2", Tags: []string{"art"}, NSFW: true},
	}

	sfwOnly := Filter(entries, false, "")
	require.Len(t, sfwOnly, 1)
	assert.Equal(t, "sfw", sfwOnly[0].Title)

	all := Filter(entries, true, "")
	assert.Len(t, all, 2)
}

func TestFilterByTag(t *testing.T) {
	t.Parallel()

	entries := []Entry{
		{Title: "a", URL: "u1", Tags: []string{"Landscape"}},
		{Title: "b", URL: "u2", Tags: []string{"portrait"}},
	}

	got := Filter(entries, true, "land")
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].Title)

	assert.Empty(t, Filter(entries, true, "nope"))
}

func TestNSFWViewablePolicy(t *testing.T) {
	t.Parallel()

	nsfw := Entry{NSFW: true}
	sfw := Entry{}

	tests := []struct {
		name        string
		cfg         Config
		channelNSFW bool
		want        bool
	}{
		{name: "both off", cfg: Config{}, channelNSFW: false, want: false},
		{name: "config on, channel sfw", cfg: Config{NSFWEnabled: true}, channelNSFW: false, want: false},
		{name: "config off, channel nsfw", cfg: Config{}, channelNSFW: true, want: false},
		{name: "both on", cfg: Config{NSFWEnabled: true}, channelNSFW: true, want: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, NSFWViewable(nsfw, tc.cfg, tc.channelNSFW))
			assert.True(t, NSFWViewable(sfw, tc.cfg, tc.channelNSFW), "sfw always viewable")
		})
	}
}

func TestFindByTitleCaseInsensitive(t *testing.T) {
	t.Parallel()

	entries := []Entry{{Title: "Sunset Over Pier", URL: "u1"}}
	got, ok := FindByTitle(entries, "sunset over pier")
	require.True(t, ok)
	assert.Equal(t, "u1", got.URL)

	_, ok = FindByTitle(entries, "missing")
	assert.False(t, ok)
}

package content

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEventsAcceptsBothTimeForms(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "events.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"name": "RFC", "time": "2026-09-01T18:00:00Z"},
		{"name": "Short", "time": "2026-09-02 19:30"},
		{"name": "Broken", "time": "next tuesday-ish"}
	]`), 0o644))

	events := LoadEvents(path)
	require.Len(t, events, 2, "the unparseable entry is skipped")

	assert.Equal(t, "RFC", events[0].Name)
	assert.True(t, events[0].Time.Equal(time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC)))

	// The short form reads as US Eastern (EDT in September, UTC-4).
	assert.Equal(t, "Short", events[1].Name)
	assert.True(t, events[1].Time.Equal(time.Date(2026, 9, 2, 23, 30, 0, 0, time.UTC)))
}

func TestLoadEventsMissingFile(t *testing.T) {
	t.Parallel()
	assert.Empty(t, LoadEvents(filepath.Join(t.TempDir(), "nope.json")))
}

func TestUpcomingEventsSortsAndFilters(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	events := []Event{
		{Name: "later", Time: now.Add(48 * time.Hour)},
		{Name: "past", Time: now.Add(-time.Minute)},
		{Name: "soon", Time: now.Add(time.Hour)},
	}

	upcoming := UpcomingEvents(events, now)
	require.Len(t, upcoming, 2)
	assert.Equal(t, "soon", upcoming[0].Name)
	assert.Equal(t, "later", upcoming[1].Name)
}

func TestCountdown(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "2d 3h 15m", Countdown(now.Add(51*time.Hour+15*time.Minute), now))
	assert.Equal(t, "3h 5m", Countdown(now.Add(3*time.Hour+5*time.Minute), now))
	assert.Equal(t, "42m", Countdown(now.Add(42*time.Minute), now))
	assert.Equal(t, "now", Countdown(now, now))
}

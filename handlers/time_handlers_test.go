package handlers

import (
	"strings"
	"testing"
	"time"

	"aura-bot/content"

	"github.com/stretchr/testify/assert"
)

func TestRenderClocksShowsAllZones(t *testing.T) {
	t.Parallel()

	// 17:00 UTC on March 1 is noon Eastern (EST) and 9 AM Pacific.
	now := time.Date(2026, 3, 1, 17, 0, 0, 0, time.UTC)
	out := renderClocks(now)

	assert.Contains(t, out, "Eastern")
	assert.Contains(t, out, "Central")
	assert.Contains(t, out, "Mountain")
	assert.Contains(t, out, "Pacific")
	assert.Contains(t, out, "12:00 PM")
	assert.Contains(t, out, "9:00 AM")
}

func TestRenderEvents(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	events := []content.Event{
		{Name: "Movie Night", Time: now.Add(26 * time.Hour)},
		{Name: "Game Jam", Time: now.Add(2 * time.Hour)},
		{Name: "Old Thing", Time: now.Add(-time.Hour)},
	}

	out := renderEvents(events, "", now)
	assert.Contains(t, out, "Movie Night")
	assert.Contains(t, out, "Game Jam")
	assert.NotContains(t, out, "Old Thing")
	// Soonest first.
	assert.Less(t, strings.Index(out, "Game Jam"), strings.Index(out, "Movie Night"))

	filtered := renderEvents(events, "movie", now)
	assert.Contains(t, filtered, "Movie Night")
	assert.NotContains(t, filtered, "Game Jam")

	assert.Contains(t, renderEvents(events, "nothing-matches", now), "No upcoming events")
	assert.Contains(t, renderEvents(nil, "", now), "No upcoming events")
}

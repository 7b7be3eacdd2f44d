package content

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickerStaysInsidePool(t *testing.T) {
	t.Parallel()

	pool := []string{"a", "b", "c"}
	p := NewPicker(pool, "fallback")
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	members := map[string]bool{"a": true, "b": true, "c": true}
	for i := 0; i < 50; i++ {
		assert.True(t, members[p.Pick(now)])
	}
}

func TestPickerEmptyPoolReturnsFallback(t *testing.T) {
	t.Parallel()

	p := NewPicker(nil, "nothing to see")
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "nothing to see", p.Pick(now))
	assert.Equal(t, "nothing to see", p.Pick(now))
}

func TestPickerNoRepeatUntilExhausted(t *testing.T) {
	t.Parallel()

	pool := []string{"a", "b", "c", "d"}
	p := NewPicker(pool, "fallback")
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	seen := make(map[string]bool)
	for i := 0; i < len(pool); i++ {
		got := p.Pick(now)
		assert.False(t, seen[got], "repeated %q before pool exhaustion", got)
		seen[got] = true
	}
	require.Len(t, seen, len(pool))

	// Pool exhausted: the next pick clears the used set and serves again.
	got := p.Pick(now)
	assert.True(t, seen[got])
	assert.Equal(t, 1, p.UsedToday())
}

func TestPickerResetsOnUTCDayRollover(t *testing.T) {
	t.Parallel()

	pool := []string{"a", "b"}
	p := NewPicker(pool, "fallback")

	day1 := time.Date(2026, 3, 1, 23, 59, 0, 0, time.UTC)
	p.Pick(day1)
	p.Pick(day1)
	require.Equal(t, 2, p.UsedToday())

	day2 := time.Date(2026, 3, 2, 0, 1, 0, 0, time.UTC)
	p.Pick(day2)
	assert.Equal(t, 1, p.UsedToday())
}

func TestPickerReloadClearsUsage(t *testing.T) {
	t.Parallel()

	p := NewPicker([]string{"a"}, "fallback")
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	p.Pick(now)
	require.Equal(t, 1, p.UsedToday())

	p.Reload([]string{"x", "y"})
	assert.Equal(t, 2, p.Size())
	assert.Equal(t, 0, p.UsedToday())

	got := p.Pick(now)
	assert.Contains(t, []string{"x", "y"}, got)
}

package autopost

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestActivityUnseenChannelIdlesFromBoot(t *testing.T) {
	t.Parallel()

	boot := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	act := NewActivity(boot)

	assert.Equal(t, time.Duration(0), act.IdleFor("c1", boot))
	assert.Equal(t, 5*time.Minute, act.IdleFor("c1", boot.Add(5*time.Minute)))
}

func TestActivityTouchResetsIdle(t *testing.T) {
	t.Parallel()

	boot := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	act := NewActivity(boot)

	act.Touch("c1", boot.Add(40*time.Minute))
	assert.Equal(t, 2*time.Minute, act.IdleFor("c1", boot.Add(42*time.Minute)))

	// Other channels still idle from boot.
	assert.Equal(t, 42*time.Minute, act.IdleFor("c2", boot.Add(42*time.Minute)))
}

package autopost

import (
	"sync"
	"time"
)

// Activity tracks the last human message time per channel. Purely in-memory:
// channels with no recorded message count as active at boot, so a restart
// only delays the next autopost by one inactivity window instead of firing
// an immediate burst.
type Activity struct {
	mu   sync.RWMutex
	boot time.Time
	last map[string]time.Time
}

// NewActivity creates an activity tracker booted at the given time.
func NewActivity(boot time.Time) *Activity {
	return &Activity{boot: boot, last: make(map[string]time.Time)}
}

// Touch records a non-bot message in the channel.
func (a *Activity) Touch(channelID string, now time.Time) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.last[channelID] = now
}

// IdleFor returns how long the channel has been without human messages.
// A channel never seen counts as last active at boot.
func (a *Activity) IdleFor(channelID string, now time.Time) time.Duration {
	a.mu.RLock()
	defer a.mu.RUnlock()
	last, ok := a.last[channelID]
	if !ok {
		last = a.boot
	}
	return now.Sub(last)
}

package autopost

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aura-bot/content"
	"aura-bot/storage"
)

type fakeSender struct {
	sent []string // channel IDs in delivery order
	fail bool
}

func (f *fakeSender) SendMessage(channelID, content string) error {
	if f.fail {
		return errors.New("missing permissions")
	}
	f.sent = append(f.sent, channelID)
	return nil
}

type fixture struct {
	sched  *Scheduler
	sender *fakeSender
	flags  *storage.FlagStore
	act    *Activity
	state  *storage.StateStore
}

// Common reference time for the scheduler tests; the fixture boots an hour
// earlier so the inactivity window has already elapsed for unseen channels.
var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newFixture(t *testing.T) *fixture {
	return newFixtureBootedAt(t, testNow.Add(-time.Hour))
}

func newFixtureBootedAt(t *testing.T, boot time.Time) *fixture {
	t.Helper()
	dir := t.TempDir()

	flags := storage.NewFlagStore(filepath.Join(dir, "guild_flags.json"))
	targets := storage.NewTargetStore(filepath.Join(dir, "autopost_map.json"))
	state := storage.NewStateStore(filepath.Join(dir, "autopost_state.json"))
	require.NoError(t, targets.Set("g1", "c1"))

	sender := &fakeSender{}
	act := NewActivity(boot)

	sched := New(Config{
		Flags:      flags,
		Targets:    targets,
		State:      state,
		Hourly:     content.NewPicker([]string{"hourly line"}, "fallback"),
		Jokes:      content.NewPicker([]string{"joke line"}, "fallback"),
		Activity:   act,
		Sender:     sender,
		Inactivity: 30 * time.Minute,
		Cooldown:   60 * time.Minute,
	})

	return &fixture{sched: sched, sender: sender, flags: flags, act: act, state: state}
}

func TestSchedulerPostsWhenAllGatesOpen(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	now := testNow

	// Booted over an inactivity window ago, no message seen since, no
	// previous post: every gate is open.
	f.sched.Tick(now)
	assert.Equal(t, []string{"c1"}, f.sender.sent)
}

func TestSchedulerNoBurstRightAfterRestart(t *testing.T) {
	t.Parallel()

	// A fresh process: the activity map is empty and the boot clock just
	// started, even though the channel was busy seconds before the restart.
	f := newFixtureBootedAt(t, testNow)

	f.sched.Tick(testNow)
	f.sched.Tick(testNow.Add(10 * time.Minute))
	assert.Empty(t, f.sender.sent, "unseen channels appear freshly active after a restart")

	// One full inactivity window after boot the gate opens again.
	f.sched.Tick(testNow.Add(31 * time.Minute))
	assert.Equal(t, []string{"c1"}, f.sender.sent)
}

func TestSchedulerNeverPostsWhileSilent(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	require.NoError(t, f.flags.SetSilent("g1", true))

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		f.sched.Tick(now.Add(time.Duration(i) * time.Minute))
	}
	assert.Empty(t, f.sender.sent)
}

func TestSchedulerNoBurstAfterSilenceLifted(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, f.flags.SetSilent("g1", true))
	f.sched.Tick(now)
	f.sched.Tick(now.Add(time.Minute))

	// Lift silence: the first tick afterwards resets the clocks instead of
	// firing a backlog post.
	require.NoError(t, f.flags.SetSilent("g1", false))
	f.sched.Tick(now.Add(2 * time.Minute))
	assert.Empty(t, f.sender.sent)

	// Still inside cooldown.
	f.sched.Tick(now.Add(30 * time.Minute))
	assert.Empty(t, f.sender.sent)

	// Cooldown has elapsed since the reset.
	f.sched.Tick(now.Add(2*time.Minute + 61*time.Minute))
	assert.Equal(t, []string{"c1"}, f.sender.sent)
}

func TestSchedulerSilentToggleWithoutPostDoesNotBurst(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	// false -> true -> false without an intervening post.
	require.NoError(t, f.flags.SetSilent("g1", true))
	f.sched.Tick(now)
	require.NoError(t, f.flags.SetSilent("g1", false))
	f.sched.Tick(now.Add(time.Minute))
	assert.Empty(t, f.sender.sent, "reset tick must not post")
}

func TestSchedulerRespectsInactivityGate(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	// Human activity 10 minutes ago: below the 30 minute threshold, even
	// though cooldown has long elapsed.
	f.act.Touch("c1", now.Add(-10*time.Minute))
	f.sched.Tick(now)
	assert.Empty(t, f.sender.sent)

	// 31 minutes idle: gate opens.
	f.sched.Tick(now.Add(21 * time.Minute))
	assert.Equal(t, []string{"c1"}, f.sender.sent)
}

func TestSchedulerRespectsCooldownGate(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	f.sched.Tick(now)
	require.Len(t, f.sender.sent, 1)

	// 59 minutes later: still cooling down.
	f.sched.Tick(now.Add(59 * time.Minute))
	assert.Len(t, f.sender.sent, 1)

	// 61 minutes later: cooldown elapsed.
	f.sched.Tick(now.Add(61 * time.Minute))
	assert.Len(t, f.sender.sent, 2)
}

func TestSchedulerAlternatesContentTypes(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	f.sched.Tick(now)
	first := f.state.LastType()
	require.NotEmpty(t, first)

	f.sched.Tick(now.Add(61 * time.Minute))
	second := f.state.LastType()
	assert.NotEqual(t, first, second, "content type must flip on every successful post")
}

func TestSchedulerEmptyJokePoolFallsBackToHourly(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	targets := storage.NewTargetStore(filepath.Join(dir, "autopost_map.json"))
	require.NoError(t, targets.Set("g1", "c1"))
	state := storage.NewStateStore(filepath.Join(dir, "autopost_state.json"))
	// Last post was hourly, so a joke is due, but the joke pool is empty.
	require.NoError(t, state.SetLastType(storage.ContentHourly))

	sender := &fakeSender{}
	sched := New(Config{
		Flags:      storage.NewFlagStore(filepath.Join(dir, "guild_flags.json")),
		Targets:    targets,
		State:      state,
		Hourly:     content.NewPicker([]string{"hourly line"}, "fallback"),
		Jokes:      content.NewPicker(nil, "fallback"),
		Activity:   NewActivity(testNow.Add(-time.Hour)),
		Sender:     sender,
		Inactivity: 30 * time.Minute,
		Cooldown:   60 * time.Minute,
	})

	sched.Tick(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	require.Len(t, sender.sent, 1)
	assert.Equal(t, storage.ContentHourly, state.LastType())
}

func TestSchedulerDeliveryFailureDoesNotAdvanceState(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.sender.fail = true
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	f.sched.Tick(now)
	assert.Empty(t, f.sender.sent)
	assert.Equal(t, "", f.state.LastType(), "failed send must not flip the alternator")

	// Next tick retries naturally once the sender recovers.
	f.sender.fail = false
	f.sched.Tick(now.Add(time.Minute))
	assert.Len(t, f.sender.sent, 1)
}

package reminder

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWhenDurations(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		in   string
		want time.Duration
	}{
		{"in 10m", 10 * time.Minute},
		{"2h", 2 * time.Hour},
		{"in 2 hours", 2 * time.Hour},
		{"1d", 24 * time.Hour},
		{"2h30m", 2*time.Hour + 30*time.Minute},
		{"1 week", 7 * 24 * time.Hour},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.in, func(t *testing.T) {
			t.Parallel()
			got, err := ParseWhen(tc.in, now)
			require.NoError(t, err)
			assert.Equal(t, now.Add(tc.want), got)
		})
	}
}

func TestParseWhenAbsoluteDate(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	got, err := ParseWhen("2026-11-05 8:00pm", now)
	require.NoError(t, err)

	want := time.Date(2026, 11, 5, 20, 0, 0, 0, easternTime).UTC()
	assert.Equal(t, want, got)
}

func TestParseWhenTomorrowClock(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	got, err := ParseWhen("tomorrow 3pm", now)
	require.NoError(t, err)

	nowEastern := now.In(easternTime)
	base := nowEastern.AddDate(0, 0, 1)
	want := time.Date(base.Year(), base.Month(), base.Day(), 15, 0, 0, 0, easternTime).UTC()
	assert.Equal(t, want, got)
}

func TestParseWhenBareClockRollsToTomorrow(t *testing.T) {
	t.Parallel()

	// 12:00 UTC on March 1st is 07:00 in New York; "6am" has already
	// passed, so the reminder lands tomorrow.
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	got, err := ParseWhen("6am", now)
	require.NoError(t, err)
	assert.True(t, got.After(now), "past clock time must roll forward")
	assert.Equal(t, 6, got.In(easternTime).Hour())
	assert.Equal(t, 2, got.In(easternTime).Day())
}

func TestParseWhenRejectsGarbage(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for _, in := range []string{"", "whenever", "13pm-ish", "soonish please"} {
		_, err := ParseWhen(in, now)
		assert.Error(t, err, "input %q", in)
	}
}

func TestValidateGuards(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	assert.Error(t, Validate(now.Add(time.Second), now), "1s lead must be rejected")
	assert.Error(t, Validate(now.Add(9*time.Second), now))
	assert.NoError(t, Validate(now.Add(11*time.Second), now))
	assert.NoError(t, Validate(now.Add(364*24*time.Hour), now))
	assert.Error(t, Validate(now.Add(366*24*time.Hour), now), ">365d must be rejected")
}

func TestTruncateMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short", TruncateMessage("  short  "))

	long := make([]rune, 250)
	for i := range long {
		long[i] = 'x'
	}
	got := TruncateMessage(string(long))
	assert.Equal(t, MaxMessageLen+1, len([]rune(got))) // 200 + ellipsis
	assert.Equal(t, '…', []rune(got)[MaxMessageLen])
}

// --- dispatcher ---

type fakeReminderSender struct {
	channelSends []Record
	dmSends      []string
	failChannel  bool
	failDM       bool
}

func (f *fakeReminderSender) SendMessage(channelID, content string) error {
	if f.failChannel {
		return errors.New("channel gone")
	}
	f.channelSends = append(f.channelSends, Record{ChannelID: channelID, Message: content})
	return nil
}

func (f *fakeReminderSender) SendDM(userID, content string) error {
	if f.failDM {
		return errors.New("dms closed")
	}
	f.dmSends = append(f.dmSends, userID)
	return nil
}

func TestDispatcherFiresPastDueAndPersistsRemoval(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "reminders.json")
	store := NewStore(path)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, store.Add(Record{UserID: "u1", ChannelID: "c1", Message: "due", Time: now.Add(-time.Minute)}))
	require.NoError(t, store.Add(Record{UserID: "u2", ChannelID: "c2", Message: "later", Time: now.Add(time.Hour)}))

	sender := &fakeReminderSender{}
	NewDispatcher(store, sender).Tick(now)

	require.Len(t, sender.channelSends, 1)
	assert.Contains(t, sender.channelSends[0].Message, "due")
	assert.Equal(t, 1, store.Count())

	// The persisted file no longer contains the fired record.
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var persisted []Record
	require.NoError(t, json.Unmarshal(raw, &persisted))
	require.Len(t, persisted, 1)
	assert.Equal(t, "u2", persisted[0].UserID)
}

func TestDispatcherDMFallback(t *testing.T) {
	t.Parallel()

	store := NewStore(filepath.Join(t.TempDir(), "reminders.json"))
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, store.Add(Record{UserID: "u1", ChannelID: "c1", Message: "hi", Time: now.Add(-time.Second)}))

	sender := &fakeReminderSender{failChannel: true}
	NewDispatcher(store, sender).Tick(now)

	assert.Equal(t, []string{"u1"}, sender.dmSends)
	assert.Equal(t, 0, store.Count(), "record removed even after channel failure")
}

func TestDispatcherDropsRecordWhenBothDeliveriesFail(t *testing.T) {
	t.Parallel()

	store := NewStore(filepath.Join(t.TempDir(), "reminders.json"))
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, store.Add(Record{UserID: "u1", ChannelID: "c1", Message: "hi", Time: now.Add(-time.Second)}))

	sender := &fakeReminderSender{failChannel: true, failDM: true}
	NewDispatcher(store, sender).Tick(now)

	assert.Equal(t, 0, store.Count(), "at-most-one-attempt: no retry queue")
}

func TestStoreReloadsPersistedRecords(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "reminders.json")
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	first := NewStore(path)
	require.NoError(t, first.Add(Record{UserID: "u1", ChannelID: "c1", Message: "persisted", Time: now.Add(time.Hour)}))

	second := NewStore(path)
	assert.Equal(t, 1, second.Count())
}

package emoji

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T, cfg GuildConfig, pools Pools) *Engine {
	t.Helper()
	dir := t.TempDir()
	store := NewConfigStore(filepath.Join(dir, "config.json"), filepath.Join(dir, "pools"))
	require.NoError(t, store.Save(map[string]GuildConfig{"g1": cfg}))
	require.NoError(t, store.SavePools("g1", cfg, pools))
	return NewEngine(store)
}

func enabledConfig() GuildConfig {
	cfg := DefaultGuildConfig()
	cfg.Enabled = true
	cfg.ProbUserMessage = 1.0 // deterministic for tests
	return cfg
}

func userMsg(channel, author string) Message {
	return Message{GuildID: "g1", ChannelID: channel, AuthorID: author}
}

func botMsg(channel string) Message {
	return Message{GuildID: "g1", ChannelID: channel, AuthorID: "bot", IsBot: true, IsSelf: true}
}

func TestEngineDisabledGuildNeverReacts(t *testing.T) {
	t.Parallel()

	cfg := DefaultGuildConfig() // Enabled false
	e := newEngine(t, cfg, Pools{})
	assert.Nil(t, e.Decide(userMsg("c1", "u1"), time.Now()))
	assert.Nil(t, e.Decide(botMsg("c1"), time.Now()))
}

func TestEngineUnknownGuildIgnored(t *testing.T) {
	t.Parallel()

	e := newEngine(t, enabledConfig(), Pools{})
	msg := Message{GuildID: "other", ChannelID: "c1", AuthorID: "u1"}
	assert.Nil(t, e.Decide(msg, time.Now()))
}

func TestEngineChannelAllowDenyLists(t *testing.T) {
	t.Parallel()

	cfg := enabledConfig()
	cfg.ChannelsAllow = []string{"c-ok"}
	e := newEngine(t, cfg, Pools{UserMessage: []string{"🍀"}})

	now := time.Now()
	assert.Nil(t, e.Decide(userMsg("c-blocked", "u1"), now))
	assert.NotNil(t, e.Decide(userMsg("c-ok", "u1"), now))

	cfg2 := enabledConfig()
	cfg2.ChannelsDeny = []string{"c-deny"}
	e2 := newEngine(t, cfg2, Pools{UserMessage: []string{"🍀"}})
	assert.Nil(t, e2.Decide(userMsg("c-deny", "u1"), now))
	assert.NotNil(t, e2.Decide(userMsg("c-other", "u1"), now))
}

func TestEngineChannelCooldown(t *testing.T) {
	t.Parallel()

	cfg := enabledConfig()
	cfg.RateChannelSeconds = 300
	e := newEngine(t, cfg, Pools{UserMessage: []string{"🍀"}})

	now := time.Now()
	require.NotNil(t, e.Decide(userMsg("c1", "u1"), now))

	// Same channel inside the window, different user.
	assert.Nil(t, e.Decide(userMsg("c1", "u2"), now.Add(10*time.Second)))

	// Window elapsed.
	assert.NotNil(t, e.Decide(userMsg("c1", "u2"), now.Add(301*time.Second)))
}

func TestEngineUserCooldownIndependentOfChannel(t *testing.T) {
	t.Parallel()

	cfg := enabledConfig()
	cfg.RateChannelSeconds = 1
	cfg.RateUserSeconds = 600
	e := newEngine(t, cfg, Pools{UserMessage: []string{"🍀"}})

	now := time.Now()
	require.NotNil(t, e.Decide(userMsg("c1", "u1"), now))

	// Different channel, same user, channel window elapsed but user window
	// has not.
	assert.Nil(t, e.Decide(userMsg("c2", "u1"), now.Add(5*time.Second)))
}

func TestEngineZeroProbabilitySkipsUserMessages(t *testing.T) {
	t.Parallel()

	cfg := enabledConfig()
	cfg.ProbUserMessage = 0.0
	e := newEngine(t, cfg, Pools{UserMessage: []string{"🍀"}})

	for i := 0; i < 20; i++ {
		assert.Nil(t, e.Decide(userMsg("c1", "u1"), time.Now()))
	}
}

func TestEngineBotMessagesNeedOptIn(t *testing.T) {
	t.Parallel()

	e := newEngine(t, enabledConfig(), Pools{UserMessage: []string{"🍀"}})
	otherBot := Message{GuildID: "g1", ChannelID: "c1", AuthorID: "b2", IsBot: true}
	assert.Nil(t, e.Decide(otherBot, time.Now()))

	cfg := enabledConfig()
	cfg.ReactToBots = true
	e2 := newEngine(t, cfg, Pools{UserMessage: []string{"🍀"}})
	assert.NotNil(t, e2.Decide(otherBot, time.Now()))
}

func TestEngineOwnEventPostGetsClockReaction(t *testing.T) {
	t.Parallel()

	e := newEngine(t, enabledConfig(), Pools{
		Autopost:  []string{"🍀"},
		EventSoon: []string{"🎉"},
	})

	msg := botMsg("c1")
	msg.Content = "Movie night starts at 8pm, event in #general"
	got := e.Decide(msg, time.Now())
	require.Len(t, got, 2)
	assert.Equal(t, "⏰", got[0])
	assert.Equal(t, "🎉", got[1])
}

func TestEngineFallbackSprinklesWhenPoolEmpty(t *testing.T) {
	t.Parallel()

	e := newEngine(t, enabledConfig(), Pools{})
	got := e.Decide(userMsg("c1", "u1"), time.Now())
	require.Len(t, got, 1)
	assert.Contains(t, fallbackSprinkles, got[0])
}

func TestEngineAddToPoolDeduplicates(t *testing.T) {
	t.Parallel()

	e := newEngine(t, enabledConfig(), Pools{})

	added, err := e.AddToPool("g1", BucketUserMessage, []string{"🍀", "✨", "🍀", ""})
	require.NoError(t, err)
	assert.Equal(t, 2, added)

	pools := e.GuildPools("g1")
	assert.Equal(t, []string{"🍀", "✨"}, pools.UserMessage)
}

func TestEnginePeekDoesNotAdvanceCooldowns(t *testing.T) {
	t.Parallel()

	cfg := enabledConfig()
	cfg.RateChannelSeconds = 300
	cfg.RateUserSeconds = 300
	e := newEngine(t, cfg, Pools{Autopost: []string{"✨"}, UserMessage: []string{"🍀"}})

	now := time.Now()

	// Peeks never start a cooldown window, for bot or user traffic.
	require.NotNil(t, e.Peek(botMsg("c1"), now))
	require.NotNil(t, e.Peek(userMsg("c1", "u1"), now))

	// A real decision right after still fires.
	require.NotNil(t, e.Decide(userMsg("c1", "u1"), now.Add(time.Second)))

	// And that one did start the window.
	assert.Nil(t, e.Decide(userMsg("c1", "u2"), now.Add(2*time.Second)))
}

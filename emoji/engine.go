package emoji

import (
	"math/rand"
	"strings"
	"sync"
	"time"
)

// fallbackSprinkles are used when a guild's bucket has no entries.
var fallbackSprinkles = []string{"✨", "🍀", "🐞", "🌟"}

// Message describes an inbound message for the sprinkler decision.
type Message struct {
	GuildID   string
	ChannelID string
	AuthorID  string
	Content   string
	IsBot     bool // author is any bot
	IsSelf    bool // author is this bot (autopost bucket)
}

// Engine decides which reactions, if any, a message receives. All state
// (configs, pools, cooldown clocks) lives in memory; Reload pulls fresh
// config from the store.
type Engine struct {
	store *ConfigStore

	mu          sync.Mutex
	configs     map[string]GuildConfig
	pools       map[string]Pools
	lastChannel map[string]time.Time // guildID:channelID
	lastUser    map[string]time.Time // guildID:userID
	rng         *rand.Rand
}

// NewEngine creates an Engine and loads the sprinkler config.
func NewEngine(store *ConfigStore) *Engine {
	e := &Engine{
		store:       store,
		lastChannel: make(map[string]time.Time),
		lastUser:    make(map[string]time.Time),
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	e.Reload()
	return e
}

// Reload re-reads config and pools from disk.
func (e *Engine) Reload() {
	configs := e.store.Load()
	pools := make(map[string]Pools, len(configs))
	for gid, cfg := range configs {
		pools[gid] = e.store.LoadPools(gid, cfg)
	}

	e.mu.Lock()
	e.configs = configs
	e.pools = pools
	e.mu.Unlock()
}

// GuildConfig returns the guild's sprinkler config.
func (e *Engine) GuildConfig(guildID string) (GuildConfig, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	cfg, ok := e.configs[guildID]
	return cfg, ok
}

// UpdateGuild mutates a guild's config via fn and persists the result.
func (e *Engine) UpdateGuild(guildID string, fn func(*GuildConfig)) error {
	e.mu.Lock()
	cfg, ok := e.configs[guildID]
	if !ok {
		cfg = DefaultGuildConfig()
	}
	fn(&cfg)
	e.configs[guildID] = cfg
	snapshot := make(map[string]GuildConfig, len(e.configs))
	for k, v := range e.configs {
		snapshot[k] = v
	}
	e.mu.Unlock()

	return e.store.Save(snapshot)
}

// GuildPools returns the guild's emoji pools.
func (e *Engine) GuildPools(guildID string) Pools {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pools[guildID]
}

// AddToPool appends unique entries to a bucket and persists the pool file.
func (e *Engine) AddToPool(guildID, bucket string, entries []string) (int, error) {
	e.mu.Lock()
	cfg, ok := e.configs[guildID]
	if !ok {
		cfg = DefaultGuildConfig()
		e.configs[guildID] = cfg
	}
	pools := e.pools[guildID]

	target := pools.Bucket(bucket)
	seen := make(map[string]bool, len(target))
	for _, t := range target {
		seen[t] = true
	}
	added := 0
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" || seen[entry] {
			continue
		}
		seen[entry] = true
		target = append(target, entry)
		added++
	}

	switch bucket {
	case BucketAutopost:
		pools.Autopost = target
	case BucketUserMessage:
		pools.UserMessage = target
	case BucketEventSoon:
		pools.EventSoon = target
	}
	e.pools[guildID] = pools
	e.mu.Unlock()

	return added, e.store.SavePools(guildID, cfg, pools)
}

func channelAllowed(cfg GuildConfig, channelID string) bool {
	if len(cfg.ChannelsAllow) > 0 {
		for _, id := range cfg.ChannelsAllow {
			if id == channelID {
				return true
			}
		}
		return false
	}
	for _, id := range cfg.ChannelsDeny {
		if id == channelID {
			return false
		}
	}
	return true
}

func looksLikeEvent(cfg GuildConfig, content string) bool {
	lower := strings.ToLower(content)
	for _, hint := range cfg.EventHints {
		if hint != "" && strings.Contains(lower, strings.ToLower(hint)) {
			return true
		}
	}
	return false
}

// Decide returns the reactions to add to a message, or nil when no gate
// passes. Cooldown clocks only advance when a gate passes, so a skipped
// message does not push the next window out.
func (e *Engine) Decide(msg Message, now time.Time) []string {
	return e.decide(msg, now, true)
}

// Peek evaluates the same gates as Decide without advancing any cooldown
// clock. Used by diagnostics, which must not suppress real sprinkles.
func (e *Engine) Peek(msg Message, now time.Time) []string {
	return e.decide(msg, now, false)
}

func (e *Engine) decide(msg Message, now time.Time, commit bool) []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	cfg, ok := e.configs[msg.GuildID]
	if !ok || !cfg.Enabled {
		return nil
	}
	if !channelAllowed(cfg, msg.ChannelID) {
		return nil
	}

	bucket := BucketUserMessage
	if msg.IsSelf {
		bucket = BucketAutopost
	} else {
		if msg.IsBot && !cfg.ReactToBots {
			return nil
		}
		if e.rng.Float64() > cfg.ProbUserMessage {
			return nil
		}
	}

	// Independent per-channel and per-user cooldowns.
	chKey := msg.GuildID + ":" + msg.ChannelID
	if last, ok := e.lastChannel[chKey]; ok && now.Sub(last) < time.Duration(cfg.RateChannelSeconds)*time.Second {
		return nil
	}
	if bucket == BucketUserMessage {
		userKey := msg.GuildID + ":" + msg.AuthorID
		if last, ok := e.lastUser[userKey]; ok && now.Sub(last) < time.Duration(cfg.RateUserSeconds)*time.Second {
			return nil
		}
		if commit {
			e.lastUser[userKey] = now
		}
	}
	if commit {
		e.lastChannel[chKey] = now
	}

	pools := e.pools[msg.GuildID]
	items := pools.Bucket(bucket)
	if len(items) == 0 {
		items = fallbackSprinkles
	}

	var out []string
	if bucket == BucketAutopost && looksLikeEvent(cfg, msg.Content) {
		out = append(out, "⏰")
		eventItems := pools.EventSoon
		if len(eventItems) == 0 {
			eventItems = items
		}
		out = append(out, eventItems[e.rng.Intn(len(eventItems))])
		return out
	}

	return append(out, items[e.rng.Intn(len(items))])
}

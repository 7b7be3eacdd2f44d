// Package emoji implements the reaction sprinkler: qualifying messages get
// one reaction drawn from a per-guild, per-bucket emoji pool, subject to
// independent per-channel and per-user cooldown windows.
package emoji

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Bucket names for the emoji pools.
const (
	BucketAutopost    = "autopost"
	BucketUserMessage = "user_message"
	BucketEventSoon   = "event_soon"
)

// GuildConfig is the per-guild sprinkler configuration.
type GuildConfig struct {
	Enabled            bool     `json:"enabled"`
	ChannelsAllow      []string `json:"channels_allow,omitempty"`
	ChannelsDeny       []string `json:"channels_deny,omitempty"`
	RateChannelSeconds int      `json:"rate_channel_seconds"`
	RateUserSeconds    int      `json:"rate_user_seconds"`
	ProbUserMessage    float64  `json:"prob_user_message"`
	ReactToBots        bool     `json:"react_to_bots"`
	PoolsFile          string   `json:"pools_file,omitempty"`
	EventHints         []string `json:"event_hints,omitempty"`
}

// DefaultGuildConfig returns the baseline settings for a newly enabled guild.
func DefaultGuildConfig() GuildConfig {
	return GuildConfig{
		RateChannelSeconds: 300,
		RateUserSeconds:    120,
		ProbUserMessage:    0.06,
		EventHints:         []string{"when:", "starts", "start:", "event", "go live"},
	}
}

// Pools holds the emoji candidates per bucket. Entries are either unicode
// literals or custom emoji in "<:name:id>" form.
type Pools struct {
	Autopost    []string `json:"autopost"`
	UserMessage []string `json:"user_message"`
	EventSoon   []string `json:"event_soon"`
}

// Bucket returns the named bucket's entries.
func (p Pools) Bucket(name string) []string {
	switch name {
	case BucketAutopost:
		return p.Autopost
	case BucketUserMessage:
		return p.UserMessage
	case BucketEventSoon:
		return p.EventSoon
	}
	return nil
}

type configDoc struct {
	Guilds map[string]GuildConfig `json:"guilds"`
}

// ConfigStore reads and writes the sprinkler config file and the per-guild
// pool files under poolsDir.
type ConfigStore struct {
	path     string
	poolsDir string
}

// NewConfigStore creates a ConfigStore.
func NewConfigStore(path, poolsDir string) *ConfigStore {
	return &ConfigStore{path: path, poolsDir: poolsDir}
}

// Load returns the per-guild config map. Missing or malformed files yield
// an empty map.
func (s *ConfigStore) Load() map[string]GuildConfig {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: could not read emoji config %s: %v", s.path, err)
		}
		return make(map[string]GuildConfig)
	}
	var doc configDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		log.Printf("Warning: malformed emoji config %s: %v", s.path, err)
		return make(map[string]GuildConfig)
	}
	if doc.Guilds == nil {
		return make(map[string]GuildConfig)
	}
	return doc.Guilds
}

// Save persists the full per-guild config map.
func (s *ConfigStore) Save(guilds map[string]GuildConfig) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create emoji config directory: %w", err)
	}
	raw, err := json.MarshalIndent(configDoc{Guilds: guilds}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal emoji config: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0644); err != nil {
		return fmt.Errorf("failed to write emoji config: %w", err)
	}
	return os.Rename(tmp, s.path)
}

func (s *ConfigStore) poolsPath(guildID string, cfg GuildConfig) string {
	name := cfg.PoolsFile
	if name == "" {
		name = guildID + ".json"
	}
	return filepath.Join(s.poolsDir, name)
}

// LoadPools loads a guild's emoji pools. Missing files yield empty pools.
func (s *ConfigStore) LoadPools(guildID string, cfg GuildConfig) Pools {
	var pools Pools
	raw, err := os.ReadFile(s.poolsPath(guildID, cfg))
	if err != nil {
		return pools
	}
	if err := json.Unmarshal(raw, &pools); err != nil {
		log.Printf("Warning: malformed emoji pools for guild %s: %v", guildID, err)
	}
	return pools
}

// SavePools persists a guild's emoji pools.
func (s *ConfigStore) SavePools(guildID string, cfg GuildConfig, pools Pools) error {
	path := s.poolsPath(guildID, cfg)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create emoji pools directory: %w", err)
	}
	raw, err := json.MarshalIndent(pools, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal emoji pools: %w", err)
	}
	return os.WriteFile(path, raw, 0644)
}

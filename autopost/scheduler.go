// Package autopost decides, once per minute, whether each configured
// guild/channel should receive the next rotating content item. Three gates
// apply in order: guild silence, channel inactivity, and per-channel
// cooldown. Content alternates between the joke and hourly pools, with the
// alternation persisted so it survives restarts.
package autopost

import (
	"log"
	"sync"
	"time"

	"aura-bot/content"
	"aura-bot/storage"
)

// Sender delivers a message to a channel. *discordgo.Session satisfies it
// through a thin adapter; tests substitute a fake.
type Sender interface {
	SendMessage(channelID, content string) error
}

// Scheduler evaluates the autopost gates on every tick.
type Scheduler struct {
	flags   *storage.FlagStore
	targets *storage.TargetStore
	state   *storage.StateStore

	hourly *content.Picker
	jokes  *content.Picker

	activity *Activity
	sender   Sender

	inactivity time.Duration
	cooldown   time.Duration

	mu        sync.Mutex
	lastPost  map[string]time.Time // channelID -> last autopost time
	wasSilent map[string]bool      // guildID -> silent on previous tick
}

// Config carries the scheduler's collaborators and thresholds.
type Config struct {
	Flags      *storage.FlagStore
	Targets    *storage.TargetStore
	State      *storage.StateStore
	Hourly     *content.Picker
	Jokes      *content.Picker
	Activity   *Activity
	Sender     Sender
	Inactivity time.Duration
	Cooldown   time.Duration
}

// New creates a Scheduler.
func New(cfg Config) *Scheduler {
	return &Scheduler{
		flags:      cfg.Flags,
		targets:    cfg.Targets,
		state:      cfg.State,
		hourly:     cfg.Hourly,
		jokes:      cfg.Jokes,
		activity:   cfg.Activity,
		sender:     cfg.Sender,
		inactivity: cfg.Inactivity,
		cooldown:   cfg.Cooldown,
		lastPost:   make(map[string]time.Time),
		wasSilent:  make(map[string]bool),
	}
}

// Tick re-evaluates every configured guild/channel pair. One guild's
// failure never halts the pass for the others.
func (s *Scheduler) Tick(now time.Time) {
	for guildID, channels := range s.targets.All() {
		func() {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("Autopost tick panicked for guild %s: %v", guildID, r)
				}
			}()
			s.tickGuild(guildID, channels, now)
		}()
	}
}

func (s *Scheduler) tickGuild(guildID string, channels []string, now time.Time) {
	// Gate 1: silence. When silence is lifted the lastPost clocks reset so
	// the normal cooldown applies before the next post, never a backlog
	// burst.
	if s.flags.IsSilent(guildID) {
		s.mu.Lock()
		s.wasSilent[guildID] = true
		s.mu.Unlock()
		return
	}

	s.mu.Lock()
	if s.wasSilent[guildID] {
		delete(s.wasSilent, guildID)
		for _, ch := range channels {
			s.lastPost[ch] = now
		}
		s.mu.Unlock()
		log.Printf("Silence lifted for guild %s, cooldown clocks reset", guildID)
		return
	}
	s.mu.Unlock()

	for _, channelID := range channels {
		s.tickChannel(channelID, now)
	}
}

func (s *Scheduler) tickChannel(channelID string, now time.Time) {
	// Gate 2: inactivity.
	if s.activity.IdleFor(channelID, now) < s.inactivity {
		return
	}

	// Gate 3: cooldown.
	s.mu.Lock()
	last, posted := s.lastPost[channelID]
	s.mu.Unlock()
	if posted && now.Sub(last) < s.cooldown {
		return
	}

	contentType, msg := s.nextContent(now)
	if msg == "" {
		return
	}

	if err := s.sender.SendMessage(channelID, msg); err != nil {
		log.Printf("Autopost delivery to channel %s failed: %v", channelID, err)
		return
	}

	s.mu.Lock()
	s.lastPost[channelID] = now
	s.mu.Unlock()

	if err := s.state.SetLastType(contentType); err != nil {
		log.Printf("Could not persist autopost state: %v", err)
	}
	log.Printf("Autoposted %s content to channel %s", contentType, channelID)
}

// nextContent alternates joke and hourly content. An empty joke pool falls
// back to hourly without being treated as an error.
func (s *Scheduler) nextContent(now time.Time) (string, string) {
	next := storage.ContentJoke
	if s.state.LastType() == storage.ContentJoke {
		next = storage.ContentHourly
	}

	if next == storage.ContentJoke && s.jokes.Size() == 0 {
		next = storage.ContentHourly
	}

	switch next {
	case storage.ContentJoke:
		return storage.ContentJoke, s.jokes.Pick(now)
	default:
		return storage.ContentHourly, s.hourly.Pick(now)
	}
}

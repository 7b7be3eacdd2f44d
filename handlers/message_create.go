package handlers

import (
	"log"
	"strings"
	"time"

	"aura-bot/bot"
	"aura-bot/database"
	"aura-bot/emoji"

	"github.com/bwmarrin/discordgo"
	"github.com/spf13/viper"
)

// MessageCreate returns the handler for new messages. The chain: track
// human activity, log it to the activity database, answer mentions with a
// quip, react to "good bot" and greetings, then let the emoji sprinkler
// have a look.
func MessageCreate(b *bot.Bot) func(s *discordgo.Session, m *discordgo.MessageCreate) {
	return func(s *discordgo.Session, m *discordgo.MessageCreate) {
		if m.Author == nil {
			return
		}
		now := time.Now().UTC()
		isSelf := m.Author.ID == s.State.User.ID

		// The bot's own autoposts only interest the sprinkler.
		if isSelf {
			sprinkle(b, s, m, now, true)
			return
		}

		if !m.Author.Bot {
			b.Activity.Touch(m.ChannelID, now)
			if b.ActivityDB != nil && m.GuildID != "" {
				if err := database.RecordMessage(b.ActivityDB, m.GuildID, m.ChannelID, now); err != nil {
					log.Printf("Could not record channel activity: %v", err)
				}
			}

			reactToKeywords(s, m)

			if mentionsBot(s, m) {
				if quip := b.RandomQuip(m.ChannelID, now); quip != "" && autoReplyAllowed(m.ChannelID) {
					if _, err := s.ChannelMessageSendReply(m.ChannelID, quip, m.Reference()); err != nil {
						log.Printf("Could not send auto-reply: %v", err)
					}
				}
			}
		}

		sprinkle(b, s, m, now, false)
	}
}

func sprinkle(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, now time.Time, isSelf bool) {
	if m.GuildID == "" {
		return
	}
	reactions := b.Emoji.Decide(emoji.Message{
		GuildID:   m.GuildID,
		ChannelID: m.ChannelID,
		AuthorID:  m.Author.ID,
		Content:   m.Content,
		IsBot:     m.Author.Bot,
		IsSelf:    isSelf,
	}, now)
	for _, r := range reactions {
		if err := s.MessageReactionAdd(m.ChannelID, m.ID, r); err != nil {
			log.Printf("Could not add sprinkle reaction: %v", err)
		}
	}
}

// reactToKeywords handles the little courtesy reactions: praise gets a
// heart, greetings get a wave.
func reactToKeywords(s *discordgo.Session, m *discordgo.MessageCreate) {
	content := strings.ToLower(m.Content)
	switch {
	case strings.Contains(content, "good bot"):
		if err := s.MessageReactionAdd(m.ChannelID, m.ID, "💚"); err != nil {
			log.Printf("Could not add praise reaction: %v", err)
		}
	case strings.Contains(content, "hi aura"), strings.Contains(content, "hello aura"):
		if err := s.MessageReactionAdd(m.ChannelID, m.ID, "👋"); err != nil {
			log.Printf("Could not add greeting reaction: %v", err)
		}
	}
}

func mentionsBot(s *discordgo.Session, m *discordgo.MessageCreate) bool {
	for _, u := range m.Mentions {
		if u.ID == s.State.User.ID {
			return true
		}
	}
	return false
}

// autoReplyAllowed checks the configured channel list; an empty list allows
// every channel.
func autoReplyAllowed(channelID string) bool {
	allowed := viper.GetStringSlice("autoreply.channels")
	if len(allowed) == 0 {
		return true
	}
	for _, id := range allowed {
		if id == channelID {
			return true
		}
	}
	return false
}

package handlers

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"aura-bot/bot"
	"aura-bot/content"

	"github.com/bwmarrin/discordgo"
)

// HandleJoke handles the logic for the /joke command.
func HandleJoke(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	respond(s, i, b.Jokes.Pick(time.Now().UTC()))
}

// HandleJokeStatus handles the logic for the /joke_status command.
func HandleJokeStatus(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	respondEphemeral(s, i, fmt.Sprintf("🃏 Jokes loaded: %d · served today: %d",
		b.Jokes.Size(), b.Jokes.UsedToday()))
}

// HandleFortune handles the logic for the /fortune command.
func HandleFortune(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	respond(s, i, "🔮 "+b.Fortunes.Pick(time.Now().UTC()))
}

// HandleFortuneStatus handles the logic for the /fortune_status command.
func HandleFortuneStatus(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	respondEphemeral(s, i, fmt.Sprintf("🔮 Fortunes loaded: %d · served today: %d",
		b.Fortunes.Size(), b.Fortunes.UsedToday()))
}

// HandleQuote handles the logic for the /quote command.
func HandleQuote(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	var tag string
	if opt, ok := optionMap(i)["tag"]; ok {
		tag = opt.StringValue()
	}

	q := content.RandomQuote(content.FilterQuotesByTag(b.Quotes, tag))

	embed := &discordgo.MessageEmbed{
		Description: fmt.Sprintf("*%s*", q.Text),
		Color:       0x9b59b6,
	}
	if q.Author != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: "— " + q.Author}
	}
	respondEmbed(s, i, embed)
}

// HandleFlip handles the logic for the /flip command.
func HandleFlip(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	side := "Heads"
	if rand.Intn(2) == 1 {
		side = "Tails"
	}
	respond(s, i, fmt.Sprintf("🪙 **%s!**", side))
}

// HandleNamegen handles the logic for the /namegen command.
func HandleNamegen(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	theme := b.Names.DefaultTheme
	if opt, ok := optionMap(i)["theme"]; ok {
		theme = opt.StringValue()
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	name := b.Names.Generate(theme, rng)
	respond(s, i, fmt.Sprintf("✨ How about… **%s**?", name))
}

// HandleProfile handles the logic for the /profile command.
func HandleProfile(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	var user *discordgo.User
	if opt, ok := optionMap(i)["user"]; ok {
		user = opt.UserValue(s)
	} else if i.Member != nil {
		user = i.Member.User
	} else {
		user = i.User
	}
	if user == nil {
		respondEphemeral(s, i, "I couldn't work out who to look up.")
		return
	}

	created, _ := discordgo.SnowflakeTimestamp(user.ID)
	fields := []*discordgo.MessageEmbedField{
		{Name: "User ID", Value: user.ID, Inline: true},
		{Name: "Created", Value: created.Format("2006-01-02"), Inline: true},
	}

	if i.GuildID != "" {
		if member, err := s.GuildMember(i.GuildID, user.ID); err == nil {
			if !member.JoinedAt.IsZero() {
				fields = append(fields, &discordgo.MessageEmbedField{
					Name: "Joined", Value: member.JoinedAt.Format("2006-01-02"), Inline: true,
				})
			}
			fields = append(fields, &discordgo.MessageEmbedField{
				Name: "Roles", Value: fmt.Sprintf("%d", len(member.Roles)), Inline: true,
			})
		}
	}

	respondEmbed(s, i, &discordgo.MessageEmbed{
		Title:     user.Username,
		Color:     0x2ecc71,
		Thumbnail: &discordgo.MessageEmbedThumbnail{URL: user.AvatarURL("256")},
		Fields:    fields,
	})
}

// HandleHello handles the logic for the /hello command.
func HandleHello(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	name := "friend"
	if i.Member != nil && i.Member.User != nil {
		name = i.Member.User.Username
	} else if i.User != nil {
		name = i.User.Username
	}
	respond(s, i, fmt.Sprintf("Hi %s! 🍀", name))
}

// HandlePing handles the logic for the /ping command.
func HandlePing(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	latency := s.HeartbeatLatency().Round(time.Millisecond)
	respond(s, i, fmt.Sprintf("Pong! 🏓 (%s)", latency))
}

// HandleAbout handles the logic for the /about command.
func HandleAbout(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	lines := []string{
		"**Aura** — a small companion bot. 🍀",
		"I tell jokes, share fortunes and quotes, run polls, keep reminders,",
		"tend a little gallery, and sprinkle the occasional emoji.",
	}
	respond(s, i, strings.Join(lines, "\n"))
}

package handlers

import (
	"fmt"
	"strings"
	"time"

	"aura-bot/bot"
	"aura-bot/emoji"

	"github.com/bwmarrin/discordgo"
)

// HandleEmoji handles the /emoji admin command group.
func HandleEmoji(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.GuildID == "" {
		respondEphemeral(s, i, "This command only works in a server.")
		return
	}

	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		respondEphemeral(s, i, "🚫 Missing subcommand.")
		return
	}
	sub := options[0]

	switch sub.Name {
	case "status":
		emojiStatus(b, s, i)
	case "on":
		emojiToggle(b, s, i, true)
	case "off":
		emojiToggle(b, s, i, false)
	case "rate":
		emojiRate(b, s, i, sub, false)
	case "rate_user":
		emojiRate(b, s, i, sub, true)
	case "prob":
		emojiProb(b, s, i, sub)
	case "allow":
		emojiChannelList(b, s, i, sub, true)
	case "deny":
		emojiChannelList(b, s, i, sub, false)
	case "clear":
		emojiClear(b, s, i)
	case "pool_add":
		emojiPoolAdd(b, s, i, sub)
	case "pool_list":
		emojiPoolList(b, s, i)
	case "ids":
		emojiIDs(b, s, i, sub)
	case "diag":
		emojiDiag(b, s, i)
	default:
		respondEphemeral(s, i, "🚫 Unknown subcommand.")
	}
}

func emojiStatus(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	cfg, ok := b.Emoji.GuildConfig(i.GuildID)
	if !ok {
		respondEphemeral(s, i, "✨ The sprinkler has never been configured here. Use `/emoji on` to start.")
		return
	}

	state := "off"
	if cfg.Enabled {
		state = "on"
	}
	lines := []string{
		"✨ **Emoji sprinkler**",
		"Enabled: " + state,
		fmt.Sprintf("Channel cooldown: %ds · User cooldown: %ds", cfg.RateChannelSeconds, cfg.RateUserSeconds),
		fmt.Sprintf("User-message chance: %.0f%%", cfg.ProbUserMessage*100),
		fmt.Sprintf("React to bots: %v", cfg.ReactToBots),
		"Allowed channels: " + channelMentions(cfg.ChannelsAllow),
		"Blocked channels: " + channelMentions(cfg.ChannelsDeny),
	}
	respondEphemeral(s, i, strings.Join(lines, "\n"))
}

func channelMentions(ids []string) string {
	if len(ids) == 0 {
		return "—"
	}
	mentions := make([]string, len(ids))
	for idx, id := range ids {
		mentions[idx] = "<#" + id + ">"
	}
	return strings.Join(mentions, ", ")
}

func emojiToggle(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate, enabled bool) {
	err := b.Emoji.UpdateGuild(i.GuildID, func(cfg *emoji.GuildConfig) {
		cfg.Enabled = enabled
	})
	if err != nil {
		respondEphemeral(s, i, "I couldn't save that setting, sorry.")
		return
	}
	if enabled {
		respondEphemeral(s, i, "✨ Sprinkler enabled!")
	} else {
		respondEphemeral(s, i, "💤 Sprinkler disabled.")
	}
}

func emojiRate(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption, perUser bool) {
	seconds := int(subOptionMap(sub)["seconds"].IntValue())
	if seconds < 0 {
		respondEphemeral(s, i, "🚫 The cooldown can't be negative.")
		return
	}

	err := b.Emoji.UpdateGuild(i.GuildID, func(cfg *emoji.GuildConfig) {
		if perUser {
			cfg.RateUserSeconds = seconds
		} else {
			cfg.RateChannelSeconds = seconds
		}
	})
	if err != nil {
		respondEphemeral(s, i, "I couldn't save that setting, sorry.")
		return
	}

	which := "per-channel"
	if perUser {
		which = "per-user"
	}
	respondEphemeral(s, i, fmt.Sprintf("⏱️ %s cooldown set to %ds.", which, seconds))
}

func emojiProb(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) {
	percent := subOptionMap(sub)["percent"].IntValue()
	if percent < 0 || percent > 100 {
		respondEphemeral(s, i, "🚫 The chance must be between 0 and 100.")
		return
	}

	err := b.Emoji.UpdateGuild(i.GuildID, func(cfg *emoji.GuildConfig) {
		cfg.ProbUserMessage = float64(percent) / 100
	})
	if err != nil {
		respondEphemeral(s, i, "I couldn't save that setting, sorry.")
		return
	}
	respondEphemeral(s, i, fmt.Sprintf("🎲 User-message reaction chance set to %d%%.", percent))
}

func emojiChannelList(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption, allow bool) {
	channelID := subOptionMap(sub)["channel"].ChannelValue(s).ID

	err := b.Emoji.UpdateGuild(i.GuildID, func(cfg *emoji.GuildConfig) {
		if allow {
			cfg.ChannelsAllow = appendUnique(cfg.ChannelsAllow, channelID)
		} else {
			cfg.ChannelsDeny = appendUnique(cfg.ChannelsDeny, channelID)
		}
	})
	if err != nil {
		respondEphemeral(s, i, "I couldn't save that setting, sorry.")
		return
	}

	if allow {
		respondEphemeral(s, i, fmt.Sprintf("✅ Sprinkler allowed in <#%s>.", channelID))
	} else {
		respondEphemeral(s, i, fmt.Sprintf("⛔ Sprinkler blocked in <#%s>.", channelID))
	}
}

func appendUnique(list []string, entry string) []string {
	for _, e := range list {
		if e == entry {
			return list
		}
	}
	return append(list, entry)
}

func emojiClear(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	err := b.Emoji.UpdateGuild(i.GuildID, func(cfg *emoji.GuildConfig) {
		cfg.ChannelsAllow = nil
		cfg.ChannelsDeny = nil
	})
	if err != nil {
		respondEphemeral(s, i, "I couldn't save that setting, sorry.")
		return
	}
	respondEphemeral(s, i, "🧹 Allow and deny lists cleared.")
}

func emojiPoolAdd(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) {
	opts := subOptionMap(sub)
	bucket := opts["bucket"].StringValue()
	entries := strings.Fields(opts["emojis"].StringValue())

	added, err := b.Emoji.AddToPool(i.GuildID, bucket, entries)
	if err != nil {
		respondEphemeral(s, i, "I couldn't save the pool, sorry.")
		return
	}
	respondEphemeral(s, i, fmt.Sprintf("✨ Added %d new emoji to the %s pool.", added, bucket))
}

func emojiPoolList(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	pools := b.Emoji.GuildPools(i.GuildID)
	render := func(entries []string) string {
		if len(entries) == 0 {
			return "(built-in sprinkles)"
		}
		return strings.Join(entries, " ")
	}
	lines := []string{
		"✨ **Reaction pools**",
		"autopost: " + render(pools.Autopost),
		"user_message: " + render(pools.UserMessage),
		"event_soon: " + render(pools.EventSoon),
	}
	respondEphemeral(s, i, strings.Join(lines, "\n"))
}

// renderEmojiTags formats custom emoji as raw <:name:id> tags, optionally
// filtered by a name substring, truncated to fit a single message.
func renderEmojiTags(emojis []*discordgo.Emoji, filter string) string {
	const maxLen = 1800

	filterLower := strings.ToLower(filter)
	var tags []string
	for _, e := range emojis {
		if filterLower != "" && !strings.Contains(strings.ToLower(e.Name), filterLower) {
			continue
		}
		prefix := ""
		if e.Animated {
			prefix = "a"
		}
		tags = append(tags, fmt.Sprintf("<%s:%s:%s>", prefix, e.Name, e.ID))
	}
	if len(tags) == 0 {
		return "(none)"
	}

	out := strings.Join(tags, ", ")
	if len(out) > maxLen {
		out = out[:maxLen] + "\n… (truncated)"
	}
	return out
}

func emojiIDs(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) {
	var filter string
	if opt, ok := subOptionMap(sub)["filter"]; ok {
		filter = opt.StringValue()
	}

	emojis, err := s.GuildEmojis(i.GuildID)
	if err != nil {
		respondEphemeral(s, i, "I couldn't fetch this server's emoji, sorry.")
		return
	}
	respondEphemeral(s, i, renderEmojiTags(emojis, filter))
}

// emojiDiag explains what the sprinkler would do with a hypothetical user
// message in the current channel right now.
func emojiDiag(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	cfg, ok := b.Emoji.GuildConfig(i.GuildID)
	if !ok {
		respondEphemeral(s, i, "🔍 No sprinkler config for this server yet.")
		return
	}

	var notes []string
	if !cfg.Enabled {
		notes = append(notes, "the sprinkler is disabled")
	}
	sample := emoji.Message{
		GuildID:   i.GuildID,
		ChannelID: i.ChannelID,
		AuthorID:  invokerID(i),
		Content:   "diagnostic sample",
		IsSelf:    true, // autopost bucket bypasses the probability roll
	}
	if reactions := b.Emoji.Peek(sample, time.Now().UTC()); len(reactions) > 0 {
		notes = append(notes, "an autopost here would get "+strings.Join(reactions, " "))
	} else if cfg.Enabled {
		notes = append(notes, "this channel is filtered out or cooling down")
	}

	respondEphemeral(s, i, "🔍 "+strings.Join(notes, "; ")+".")
}

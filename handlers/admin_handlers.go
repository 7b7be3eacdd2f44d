package handlers

import (
	"fmt"
	"strings"

	"aura-bot/bot"
	"aura-bot/database"
	"aura-bot/utils"

	"github.com/bwmarrin/discordgo"
	"github.com/spf13/viper"
)

// HandleContentStatus handles the logic for the /content_status command.
func HandleContentStatus(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	lines := []string{
		"📚 **Content pools**",
		fmt.Sprintf("Jokes: %d (served today: %d)", b.Jokes.Size(), b.Jokes.UsedToday()),
		fmt.Sprintf("Hourly: %d (served today: %d)", b.Hourly.Size(), b.Hourly.UsedToday()),
		fmt.Sprintf("Fortunes: %d (served today: %d)", b.Fortunes.Size(), b.Fortunes.UsedToday()),
		fmt.Sprintf("Presence: %d", b.Presence.Size()),
		fmt.Sprintf("Quotes: %d · Quips: %d · Events: %d", len(b.Quotes), len(b.Quips), len(b.Events)),
		fmt.Sprintf("Pending reminders: %d", b.Reminders.Count()),
	}
	respondEphemeral(s, i, strings.Join(lines, "\n"))
}

// HandlePoolReload handles the four pool-reload commands.
func HandlePoolReload(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate, commandName string) {
	var pool string
	var size int
	switch commandName {
	case "presence_reload":
		pool, size = "presence", b.ReloadPresence()
	case "hourly_reload":
		pool, size = "hourly", b.ReloadHourly()
	case "joke_reload":
		pool, size = "joke", b.ReloadJokes()
	case "fortune_reload":
		pool, size = "fortune", b.ReloadFortunes()
	default:
		respondEphemeral(s, i, "🚫 Unknown pool.")
		return
	}

	utils.Info("content", "reload", fmt.Sprintf("%s pool reloaded, %d entries", pool, size))
	respondEphemeral(s, i, fmt.Sprintf("🔄 Reloaded the %s pool: %d entries.", pool, size))
}

// HandleAdminStatus handles the logic for the /admin_status command.
func HandleAdminStatus(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.GuildID == "" {
		respondEphemeral(s, i, "This command only works in a server.")
		return
	}

	channels := b.Targets.Channels(i.GuildID)
	mentions := make([]string, 0, len(channels))
	for _, ch := range channels {
		mentions = append(mentions, "<#"+ch+">")
	}
	channelLine := "none configured"
	if len(mentions) > 0 {
		channelLine = strings.Join(mentions, ", ")
	}

	silent := "off"
	if b.Flags.IsSilent(i.GuildID) {
		silent = "ON (autoposting muted)"
	}

	lines := []string{
		"⚙️ **Autopost settings**",
		"Channels: " + channelLine,
		"Silent mode: " + silent,
		fmt.Sprintf("Inactivity gate: %dm · Cooldown: %dm",
			viper.GetInt("autopost.inactivityMinutes"),
			viper.GetInt("autopost.cooldownMinutes")),
	}
	respondEphemeral(s, i, strings.Join(lines, "\n"))
}

// HandleAdminSilent handles the logic for the /admin_silent command.
func HandleAdminSilent(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.GuildID == "" {
		respondEphemeral(s, i, "This command only works in a server.")
		return
	}

	silent := optionMap(i)["silent"].BoolValue()
	if err := b.Flags.SetSilent(i.GuildID, silent); err != nil {
		respondEphemeral(s, i, "I couldn't save that setting, sorry.")
		return
	}

	utils.Info("autopost", "silent", fmt.Sprintf("guild %s silent=%v", i.GuildID, silent))
	if silent {
		respondEphemeral(s, i, "🤫 Autoposting muted for this server.")
	} else {
		respondEphemeral(s, i, "🔊 Autoposting resumed for this server.")
	}
}

// HandleAutopostSet handles the logic for the /admin_autopost_set command.
func HandleAutopostSet(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	mutateTargets(b, s, i, "set")
}

// HandleAutopostAdd handles the logic for the /admin_autopost_add command.
func HandleAutopostAdd(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	mutateTargets(b, s, i, "add")
}

// HandleAutopostRemove handles the logic for the /admin_autopost_remove command.
func HandleAutopostRemove(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	mutateTargets(b, s, i, "remove")
}

func mutateTargets(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate, op string) {
	if i.GuildID == "" {
		respondEphemeral(s, i, "This command only works in a server.")
		return
	}

	channelID := optionMap(i)["channel"].ChannelValue(s).ID

	var err error
	var reply string
	switch op {
	case "set":
		err = b.Targets.Set(i.GuildID, channelID)
		reply = fmt.Sprintf("📌 Autoposting now targets only <#%s>.", channelID)
	case "add":
		err = b.Targets.Add(i.GuildID, channelID)
		reply = fmt.Sprintf("➕ Added <#%s> to the autopost channels.", channelID)
	case "remove":
		err = b.Targets.Remove(i.GuildID, channelID)
		reply = fmt.Sprintf("➖ Removed <#%s> from the autopost channels.", channelID)
	}
	if err != nil {
		respondEphemeral(s, i, "I couldn't save that change, sorry.")
		return
	}

	utils.Info("autopost", op, fmt.Sprintf("guild %s channel %s", i.GuildID, channelID))
	respondEphemeral(s, i, reply)
}

// HandleActivity handles the logic for the /activity command.
func HandleActivity(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.GuildID == "" {
		respondEphemeral(s, i, "This command only works in a server.")
		return
	}
	if b.ActivityDB == nil {
		respondEphemeral(s, i, "📈 Activity tracking is not available right now.")
		return
	}

	limit := 5
	if opt, ok := optionMap(i)["limit"]; ok {
		if v := int(opt.IntValue()); v > 0 && v <= 25 {
			limit = v
		}
	}

	rows, err := database.TopChannels(b.ActivityDB, i.GuildID, limit)
	if err != nil {
		respondEphemeral(s, i, "I couldn't read the activity log, sorry.")
		return
	}
	if len(rows) == 0 {
		respondEphemeral(s, i, "📈 No activity recorded yet.")
		return
	}

	lines := []string{"📈 **Busiest channels**"}
	for idx, row := range rows {
		lines = append(lines, fmt.Sprintf("%d. <#%s> — %d messages",
			idx+1, row.ChannelID, row.MessageCount))
	}
	respondEphemeral(s, i, strings.Join(lines, "\n"))
}

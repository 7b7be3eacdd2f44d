package handlers

import (
	"fmt"
	"strings"
	"time"

	"aura-bot/bot"
	"aura-bot/reminder"
	"aura-bot/utils"

	"github.com/bwmarrin/discordgo"
)

// HandleRemind handles the logic for the /remind command.
func HandleRemind(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	opts := optionMap(i)
	when := opts["when"].StringValue()
	message := reminder.TruncateMessage(opts["message"].StringValue())

	now := time.Now().UTC()
	target, err := reminder.ParseWhen(when, now)
	if err != nil {
		respondEphemeral(s, i, fmt.Sprintf("⏰ I couldn't read that time: %v\nTry `in 10m`, `tomorrow 9am`, or `2026-09-01 18:00`.", err))
		return
	}
	if err := reminder.Validate(target, now); err != nil {
		respondEphemeral(s, i, "⏰ "+err.Error())
		return
	}

	record := reminder.Record{
		UserID:    invokerID(i),
		ChannelID: i.ChannelID,
		Message:   message,
		Time:      target,
	}
	if err := b.Reminders.Add(record); err != nil {
		respondEphemeral(s, i, "⏰ I couldn't save that reminder, sorry. Try again?")
		return
	}

	respondEphemeral(s, i, fmt.Sprintf("⏰ Got it! I'll remind you <t:%d:R> (<t:%d:f>).",
		target.Unix(), target.Unix()))
}

// HandleSay handles the logic for the /say command. Mass mentions are
// refused, and every use is mirrored to the admin log channel.
func HandleSay(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	opts := optionMap(i)
	message := opts["message"].StringValue()

	if strings.Contains(message, "@everyone") || strings.Contains(message, "@here") {
		respondEphemeral(s, i, "🚫 I won't post mass mentions.")
		return
	}

	channelID := i.ChannelID
	if opt, ok := opts["channel"]; ok {
		channelID = opt.ChannelValue(s).ID
	}

	if _, err := s.ChannelMessageSend(channelID, message); err != nil {
		respondEphemeral(s, i, "I couldn't post there. Do I have access to that channel?")
		return
	}

	utils.Info("say", "post",
		fmt.Sprintf("user %s posted to <#%s>: %s", invokerID(i), channelID, message))
	respondEphemeral(s, i, "📣 Said it!")
}

package handlers

import (
	"fmt"
	"log"
	"strings"

	"aura-bot/archive"
	"aura-bot/bot"

	"github.com/bwmarrin/discordgo"
)

// HandleArchiveForward handles the logic for the /archive_forward command.
// Without confirm it only shows a dry-run preview; a completed source is
// refused unless override is set.
func HandleArchiveForward(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	opts := optionMap(i)
	source := opts["source_channel"].ChannelValue(s)
	webhookURL := opts["webhook"].StringValue()
	logChannel := opts["log_channel"].ChannelValue(s)

	override := false
	if opt, ok := opts["override"]; ok {
		override = opt.BoolValue()
	}
	confirm := false
	if opt, ok := opts["confirm"]; ok {
		confirm = opt.BoolValue()
	}

	forwarder, err := archive.NewWebhookForwarder(s, webhookURL)
	if err != nil {
		respondEphemeral(s, i, "🚫 That doesn't look like a Discord webhook URL.")
		return
	}
	fp := archive.WebhookFingerprint(webhookURL)

	st := b.Archive.Get(source.ID)
	if st.Completed && !override {
		respondEphemeral(s, i, fmt.Sprintf("🚫 <#%s> was already fully forwarded. Pass `override: true` to run it again.", source.ID))
		return
	}

	if !confirm {
		resume := "from the beginning"
		if st.LastMessageID != "" {
			resume = "resuming after message " + st.LastMessageID
		}
		lines := []string{
			"📦 **Archive forward — dry run**",
			"Operator: <@" + invokerID(i) + ">",
			fmt.Sprintf("Source: <#%s>", source.ID),
			"Webhook: " + fp,
			fmt.Sprintf("Log channel: <#%s>", logChannel.ID),
			"Would start " + resume + ".",
			"Re-run with `confirm: true` to start forwarding.",
		}
		respondEphemeral(s, i, strings.Join(lines, "\n"))
		return
	}

	if override {
		if err := b.Archive.Reset(source.ID); err != nil {
			respondEphemeral(s, i, "I couldn't reset the archive state, sorry.")
			return
		}
	}

	respondEphemeral(s, i, fmt.Sprintf("📦 Forwarding <#%s> — progress goes to <#%s>.", source.ID, logChannel.ID))

	operator := "<@" + invokerID(i) + ">"
	runner := &archive.Runner{
		State:   b.Archive,
		History: &archive.SessionHistory{Session: s},
		Forward: forwarder,
		Log:     &archive.SessionSender{Session: s},
	}
	go func() {
		n, runErr := runner.Run(source.ID, logChannel.ID, operator, fp)
		content := fmt.Sprintf("📦 Archive forward of <#%s> finished: %d messages forwarded.", source.ID, n)
		if runErr != nil {
			content = fmt.Sprintf("📦 Archive forward of <#%s> stopped after %d messages: %v", source.ID, n, runErr)
		}
		if _, ferr := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		}); ferr != nil {
			log.Printf("Could not send archive followup: %v", ferr)
		}
	}()
}

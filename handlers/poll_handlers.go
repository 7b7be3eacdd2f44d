package handlers

import (
	"errors"
	"log"

	"aura-bot/bot"
	"aura-bot/poll"

	"github.com/bwmarrin/discordgo"
)

// HandlePoll handles the logic for the /poll command. Options come from
// explicit option fields, a delimited list, or an "X or Y" question, in that
// order of preference.
func HandlePoll(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	opts := optionMap(i)

	question := opts["question"].StringValue()

	var list string
	if opt, ok := opts["options"]; ok {
		list = opt.StringValue()
	}

	var fields []string
	for _, n := range []string{"option1", "option2", "option3", "option4", "option5", "option6"} {
		if opt, ok := opts[n]; ok && opt.StringValue() != "" {
			fields = append(fields, opt.StringValue())
		}
	}

	options, err := poll.Resolve(question, fields, list)
	if err != nil {
		if errors.Is(err, poll.ErrBadOptionCount) {
			respondEphemeral(s, i, "🗳️ "+err.Error())
			return
		}
		respondEphemeral(s, i, "Something went wrong building that poll.")
		return
	}

	respond(s, i, poll.Render(question, options))

	// Pre-attach the numbered reactions in order so voting is one click.
	msg, err := s.InteractionResponse(i.Interaction)
	if err != nil {
		log.Printf("Could not fetch poll message for reactions: %v", err)
		return
	}
	for idx := range options {
		if err := s.MessageReactionAdd(msg.ChannelID, msg.ID, poll.NumberEmoji[idx]); err != nil {
			log.Printf("Could not add poll reaction %d: %v", idx+1, err)
		}
	}
}

package command

import "github.com/bwmarrin/discordgo"

// TimeCommand defines the structure for the /time command.
type TimeCommand struct{}

// Definition returns the application command definition.
func (c *TimeCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "time",
		Description: "Show the current time across US time zones",
	}
}

// EventCommand defines the structure for the /event command.
type EventCommand struct{}

// Definition returns the application command definition.
func (c *EventCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "event",
		Description: "Show upcoming events and their countdowns",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Name:        "name",
				Description: "Only show events matching this name",
				Type:        discordgo.ApplicationCommandOptionString,
				Required:    false,
			},
		},
	}
}

// RemindCommand defines the structure for the /remind command.
type RemindCommand struct{}

// Definition returns the application command definition.
func (c *RemindCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "remind",
		Description: "Set a reminder",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Name:        "when",
				Description: "When to remind you (`in 10m`, `tomorrow 9am`, `2026-09-01 18:00`)",
				Type:        discordgo.ApplicationCommandOptionString,
				Required:    true,
			},
			{
				Name:        "message",
				Description: "What to remind you about",
				Type:        discordgo.ApplicationCommandOptionString,
				Required:    true,
			},
		},
	}
}

// SayCommand defines the structure for the /say command.
type SayCommand struct{}

// Definition returns the application command definition.
func (c *SayCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "say",
		Description: "Have Aura say something",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Name:        "message",
				Description: "What Aura should say",
				Type:        discordgo.ApplicationCommandOptionString,
				Required:    true,
			},
			{
				Name:        "channel",
				Description: "Where to say it (defaults to here)",
				Type:        discordgo.ApplicationCommandOptionChannel,
				Required:    false,
				ChannelTypes: []discordgo.ChannelType{
					discordgo.ChannelTypeGuildText,
				},
			},
		},
	}
}

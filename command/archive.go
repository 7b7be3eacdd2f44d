package command

import "github.com/bwmarrin/discordgo"

// ArchiveForwardCommand defines the /archive_forward admin command.
type ArchiveForwardCommand struct{}

// Definition returns the application command definition.
func (c *ArchiveForwardCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "archive_forward",
		Description: "Forward a channel's message history to a webhook",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Name:        "source_channel",
				Description: "Channel whose history to forward",
				Type:        discordgo.ApplicationCommandOptionChannel,
				Required:    true,
			},
			{
				Name:        "webhook",
				Description: "Destination webhook URL",
				Type:        discordgo.ApplicationCommandOptionString,
				Required:    true,
			},
			{
				Name:        "log_channel",
				Description: "Channel for progress and error reports",
				Type:        discordgo.ApplicationCommandOptionChannel,
				Required:    true,
			},
			{
				Name:        "override",
				Description: "Re-run a source that already completed",
				Type:        discordgo.ApplicationCommandOptionBoolean,
				Required:    false,
			},
			{
				Name:        "confirm",
				Description: "Actually start; without it you get a dry-run preview",
				Type:        discordgo.ApplicationCommandOptionBoolean,
				Required:    false,
			},
		},
	}
}

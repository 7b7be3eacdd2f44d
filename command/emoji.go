package command

import "github.com/bwmarrin/discordgo"

// EmojiCommand defines the /emoji admin command group for the reaction
// sprinkler.
type EmojiCommand struct{}

// Definition returns the application command definition.
func (c *EmojiCommand) Definition() *discordgo.ApplicationCommand {
	bucketChoices := []*discordgo.ApplicationCommandOptionChoice{
		{Name: "autopost", Value: "autopost"},
		{Name: "user_message", Value: "user_message"},
		{Name: "event_soon", Value: "event_soon"},
	}

	return &discordgo.ApplicationCommand{
		Name:        "emoji",
		Description: "Configure the emoji reaction sprinkler",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Name:        "status",
				Description: "Show the sprinkler settings for this server",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
			},
			{
				Name:        "on",
				Description: "Enable the sprinkler",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
			},
			{
				Name:        "off",
				Description: "Disable the sprinkler",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
			},
			{
				Name:        "rate",
				Description: "Set the per-channel cooldown",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Options: []*discordgo.ApplicationCommandOption{
					{
						Name:        "seconds",
						Description: "Seconds between reactions in one channel",
						Type:        discordgo.ApplicationCommandOptionInteger,
						Required:    true,
					},
				},
			},
			{
				Name:        "rate_user",
				Description: "Set the per-user cooldown",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Options: []*discordgo.ApplicationCommandOption{
					{
						Name:        "seconds",
						Description: "Seconds between reactions to one user",
						Type:        discordgo.ApplicationCommandOptionInteger,
						Required:    true,
					},
				},
			},
			{
				Name:        "prob",
				Description: "Set the user-message reaction probability",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Options: []*discordgo.ApplicationCommandOption{
					{
						Name:        "percent",
						Description: "Chance (0-100) of reacting to a user message",
						Type:        discordgo.ApplicationCommandOptionInteger,
						Required:    true,
					},
				},
			},
			{
				Name:        "allow",
				Description: "Restrict the sprinkler to a channel",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Options: []*discordgo.ApplicationCommandOption{
					{
						Name:        "channel",
						Description: "Channel to allow",
						Type:        discordgo.ApplicationCommandOptionChannel,
						Required:    true,
					},
				},
			},
			{
				Name:        "deny",
				Description: "Block the sprinkler in a channel",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Options: []*discordgo.ApplicationCommandOption{
					{
						Name:        "channel",
						Description: "Channel to block",
						Type:        discordgo.ApplicationCommandOptionChannel,
						Required:    true,
					},
				},
			},
			{
				Name:        "clear",
				Description: "Clear the allow and deny channel lists",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
			},
			{
				Name:        "pool_add",
				Description: "Add emojis to a reaction pool",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Options: []*discordgo.ApplicationCommandOption{
					{
						Name:        "bucket",
						Description: "Which pool to add to",
						Type:        discordgo.ApplicationCommandOptionString,
						Required:    true,
						Choices:     bucketChoices,
					},
					{
						Name:        "emojis",
						Description: "Emojis to add, separated by spaces",
						Type:        discordgo.ApplicationCommandOptionString,
						Required:    true,
					},
				},
			},
			{
				Name:        "pool_list",
				Description: "Show the reaction pools",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
			},
			{
				Name:        "ids",
				Description: "List this server's custom emoji in raw <:name:id> form",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Options: []*discordgo.ApplicationCommandOption{
					{
						Name:        "filter",
						Description: "Case-insensitive name filter",
						Type:        discordgo.ApplicationCommandOptionString,
						Required:    false,
					},
				},
			},
			{
				Name:        "diag",
				Description: "Explain what the sprinkler would do right now",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
			},
		},
	}
}

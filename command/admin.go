package command

import "github.com/bwmarrin/discordgo"

// ContentStatusCommand defines the structure for the /content_status command.
type ContentStatusCommand struct{}

// Definition returns the application command definition.
func (c *ContentStatusCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "content_status",
		Description: "Show the sizes and usage of every content pool",
	}
}

// PresenceReloadCommand defines the structure for the /presence_reload command.
type PresenceReloadCommand struct{}

// Definition returns the application command definition.
func (c *PresenceReloadCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "presence_reload",
		Description: "Reload the presence pool from disk",
	}
}

// HourlyReloadCommand defines the structure for the /hourly_reload command.
type HourlyReloadCommand struct{}

// Definition returns the application command definition.
func (c *HourlyReloadCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "hourly_reload",
		Description: "Reload the hourly message pool from disk",
	}
}

// JokeReloadCommand defines the structure for the /joke_reload command.
type JokeReloadCommand struct{}

// Definition returns the application command definition.
func (c *JokeReloadCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "joke_reload",
		Description: "Reload the joke pool from disk",
	}
}

// FortuneReloadCommand defines the structure for the /fortune_reload command.
type FortuneReloadCommand struct{}

// Definition returns the application command definition.
func (c *FortuneReloadCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "fortune_reload",
		Description: "Reload the fortune pool from disk",
	}
}

// AdminStatusCommand defines the structure for the /admin_status command.
type AdminStatusCommand struct{}

// Definition returns the application command definition.
func (c *AdminStatusCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "admin_status",
		Description: "Show autopost settings for this server",
	}
}

// AdminSilentCommand defines the structure for the /admin_silent command.
type AdminSilentCommand struct{}

// Definition returns the application command definition.
func (c *AdminSilentCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "admin_silent",
		Description: "Mute or unmute autoposting for this server",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Name:        "silent",
				Description: "true to mute autoposting, false to resume",
				Type:        discordgo.ApplicationCommandOptionBoolean,
				Required:    true,
			},
		},
	}
}

// AdminAutopostSetCommand defines the structure for /admin_autopost_set.
type AdminAutopostSetCommand struct{}

// Definition returns the application command definition.
func (c *AdminAutopostSetCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "admin_autopost_set",
		Description: "Replace the autopost channels with a single channel",
		Options:     []*discordgo.ApplicationCommandOption{channelOption("Channel to autopost into")},
	}
}

// AdminAutopostAddCommand defines the structure for /admin_autopost_add.
type AdminAutopostAddCommand struct{}

// Definition returns the application command definition.
func (c *AdminAutopostAddCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "admin_autopost_add",
		Description: "Add an autopost channel",
		Options:     []*discordgo.ApplicationCommandOption{channelOption("Channel to add")},
	}
}

// AdminAutopostRemoveCommand defines the structure for /admin_autopost_remove.
type AdminAutopostRemoveCommand struct{}

// Definition returns the application command definition.
func (c *AdminAutopostRemoveCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "admin_autopost_remove",
		Description: "Remove an autopost channel",
		Options:     []*discordgo.ApplicationCommandOption{channelOption("Channel to remove")},
	}
}

// ActivityCommand defines the structure for the /activity command.
type ActivityCommand struct{}

// Definition returns the application command definition.
func (c *ActivityCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "activity",
		Description: "Show the busiest channels in this server",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Name:        "limit",
				Description: "How many channels to show (default 5)",
				Type:        discordgo.ApplicationCommandOptionInteger,
				Required:    false,
			},
		},
	}
}

func channelOption(description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Name:        "channel",
		Description: description,
		Type:        discordgo.ApplicationCommandOptionChannel,
		Required:    true,
		ChannelTypes: []discordgo.ChannelType{
			discordgo.ChannelTypeGuildText,
		},
	}
}

package command

import "github.com/bwmarrin/discordgo"

// JokeCommand defines the structure for the /joke command.
type JokeCommand struct{}

// Definition returns the application command definition.
func (c *JokeCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "joke",
		Description: "Tell a joke (answers hide behind a spoiler)",
	}
}

// JokeStatusCommand defines the structure for the /joke_status command.
type JokeStatusCommand struct{}

// Definition returns the application command definition.
func (c *JokeStatusCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "joke_status",
		Description: "Show how many jokes are loaded and used today",
	}
}

// FortuneCommand defines the structure for the /fortune command.
type FortuneCommand struct{}

// Definition returns the application command definition.
func (c *FortuneCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "fortune",
		Description: "Receive a fortune",
	}
}

// FortuneStatusCommand defines the structure for the /fortune_status command.
type FortuneStatusCommand struct{}

// Definition returns the application command definition.
func (c *FortuneStatusCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "fortune_status",
		Description: "Show how many fortunes are loaded and used today",
	}
}

// QuoteCommand defines the structure for the /quote command.
type QuoteCommand struct{}

// Definition returns the application command definition.
func (c *QuoteCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "quote",
		Description: "Share a quote from the pool",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Name:        "tag",
				Description: "Only pick quotes with this tag",
				Type:        discordgo.ApplicationCommandOptionString,
				Required:    false,
			},
		},
	}
}

// PollCommand defines the structure for the /poll command.
type PollCommand struct{}

// Definition returns the application command definition.
func (c *PollCommand) Definition() *discordgo.ApplicationCommand {
	options := []*discordgo.ApplicationCommandOption{
		{
			Name:        "question",
			Description: "The poll question (try `pizza or tacos?`)",
			Type:        discordgo.ApplicationCommandOptionString,
			Required:    true,
		},
		{
			Name:        "options",
			Description: "Answer list, separated by `;` (or `,`)",
			Type:        discordgo.ApplicationCommandOptionString,
			Required:    false,
		},
	}
	for _, n := range []string{"option1", "option2", "option3", "option4", "option5", "option6"} {
		options = append(options, &discordgo.ApplicationCommandOption{
			Name:        n,
			Description: "An answer option",
			Type:        discordgo.ApplicationCommandOptionString,
			Required:    false,
		})
	}
	return &discordgo.ApplicationCommand{
		Name:        "poll",
		Description: "Start a reaction poll with 2-6 options",
		Options:     options,
	}
}

// FlipCommand defines the structure for the /flip command.
type FlipCommand struct{}

// Definition returns the application command definition.
func (c *FlipCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "flip",
		Description: "Flip a coin",
	}
}

// NamegenCommand defines the structure for the /namegen command.
type NamegenCommand struct{}

// Definition returns the application command definition.
func (c *NamegenCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "namegen",
		Description: "Generate a themed name",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Name:         "theme",
				Description:  "Name theme",
				Type:         discordgo.ApplicationCommandOptionString,
				Required:     false,
				Autocomplete: true,
			},
		},
	}
}

// ProfileCommand defines the structure for the /profile command.
type ProfileCommand struct{}

// Definition returns the application command definition.
func (c *ProfileCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "profile",
		Description: "Show a member snapshot",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Name:        "user",
				Description: "The member to look up (defaults to you)",
				Type:        discordgo.ApplicationCommandOptionUser,
				Required:    false,
			},
		},
	}
}

// HelloCommand defines the structure for the /hello command.
type HelloCommand struct{}

// Definition returns the application command definition.
func (c *HelloCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "hello",
		Description: "Say hello to Aura",
	}
}

// PingCommand defines the structure for the /ping command.
type PingCommand struct{}

// Definition returns the application command definition.
func (c *PingCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "ping",
		Description: "Check that Aura is responsive",
	}
}

// AboutCommand defines the structure for the /about command.
type AboutCommand struct{}

// Definition returns the application command definition.
func (c *AboutCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "about",
		Description: "About this bot",
	}
}

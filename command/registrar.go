package command

import "github.com/bwmarrin/discordgo"

// Command is an interface for application commands.
type Command interface {
	Definition() *discordgo.ApplicationCommand
}

// AllCommands holds all the command instances.
var AllCommands = []Command{
	// Fun
	&JokeCommand{},
	&JokeStatusCommand{},
	&FortuneCommand{},
	&FortuneStatusCommand{},
	&QuoteCommand{},
	&PollCommand{},
	&FlipCommand{},
	&NamegenCommand{},
	&ProfileCommand{},
	&HelloCommand{},
	&PingCommand{},
	&AboutCommand{},
	// Time and messaging
	&TimeCommand{},
	&EventCommand{},
	&RemindCommand{},
	&SayCommand{},
	// Gallery
	&GalleryRandomCommand{},
	&GalleryShowCommand{},
	&GalleryTagCommand{},
	&GalleryListCommand{},
	&GalleryImportCommand{},
	// Emoji sprinkler admin
	&EmojiCommand{},
	// Admin
	&ContentStatusCommand{},
	&PresenceReloadCommand{},
	&HourlyReloadCommand{},
	&JokeReloadCommand{},
	&FortuneReloadCommand{},
	&AdminStatusCommand{},
	&AdminSilentCommand{},
	&AdminAutopostSetCommand{},
	&AdminAutopostAddCommand{},
	&AdminAutopostRemoveCommand{},
	&ActivityCommand{},
	&ArchiveForwardCommand{},
}

// GetCommandDefinitions returns a slice of all command definitions.
func GetCommandDefinitions() []*discordgo.ApplicationCommand {
	defs := make([]*discordgo.ApplicationCommand, len(AllCommands))
	for i, cmd := range AllCommands {
		defs[i] = cmd.Definition()
	}
	return defs
}

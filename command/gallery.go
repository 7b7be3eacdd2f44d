package command

import "github.com/bwmarrin/discordgo"

// GalleryRandomCommand defines the structure for the /gallery_random command.
type GalleryRandomCommand struct{}

// Definition returns the application command definition.
func (c *GalleryRandomCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "gallery_random",
		Description: "Show a random gallery entry",
	}
}

// GalleryShowCommand defines the structure for the /gallery_show command.
type GalleryShowCommand struct{}

// Definition returns the application command definition.
func (c *GalleryShowCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "gallery_show",
		Description: "Show a gallery entry by title",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Name:         "title",
				Description:  "Entry title",
				Type:         discordgo.ApplicationCommandOptionString,
				Required:     true,
				Autocomplete: true,
			},
		},
	}
}

// GalleryTagCommand defines the structure for the /gallery_tag command.
type GalleryTagCommand struct{}

// Definition returns the application command definition.
func (c *GalleryTagCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "gallery_tag",
		Description: "Show a random gallery entry with a tag",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Name:        "tag",
				Description: "Tag to search for",
				Type:        discordgo.ApplicationCommandOptionString,
				Required:    true,
			},
		},
	}
}

// GalleryImportCommand defines the structure for the /gallery_import command.
type GalleryImportCommand struct{}

// Definition returns the application command definition.
func (c *GalleryImportCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "gallery_import",
		Description: "Merge a JSON list of entries into the gallery",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Name:        "entries",
				Description: "JSON list of gallery entries",
				Type:        discordgo.ApplicationCommandOptionString,
				Required:    true,
			},
		},
	}
}

// GalleryListCommand defines the structure for the /gallery_list command.
type GalleryListCommand struct{}

// Definition returns the application command definition.
func (c *GalleryListCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "gallery_list",
		Description: "List gallery entry titles",
	}
}

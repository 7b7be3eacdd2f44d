package handlers

import (
	"log"
	"sort"
	"strings"

	"aura-bot/bot"

	"github.com/bwmarrin/discordgo"
)

// HandleAutocomplete handles all autocomplete interactions.
func HandleAutocomplete(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()
	switch data.Name {
	case "gallery_show":
		for _, opt := range data.Options {
			if opt.Name == "title" && opt.Focused {
				galleryTitleAutocomplete(b, s, i, opt.StringValue())
			}
		}
	case "namegen":
		for _, opt := range data.Options {
			if opt.Name == "theme" && opt.Focused {
				namegenThemeAutocomplete(b, s, i, opt.StringValue())
			}
		}
	}
}

func galleryTitleAutocomplete(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate, partial string) {
	partialLower := strings.ToLower(partial)

	var choices []*discordgo.ApplicationCommandOptionChoice
	for _, e := range b.Gallery.Entries() {
		if partialLower != "" && !strings.Contains(strings.ToLower(e.Title), partialLower) {
			continue
		}
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  e.Title,
			Value: e.Title,
		})
		if len(choices) == 25 {
			break
		}
	}
	sendChoices(s, i, choices)
}

func namegenThemeAutocomplete(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate, partial string) {
	names := b.Names.ThemeNames()
	sort.Strings(names)

	partialLower := strings.ToLower(partial)
	var choices []*discordgo.ApplicationCommandOptionChoice
	for _, name := range names {
		if partialLower != "" && !strings.Contains(strings.ToLower(name), partialLower) {
			continue
		}
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  name,
			Value: name,
		})
		if len(choices) == 25 {
			break
		}
	}
	sendChoices(s, i, choices)
}

func sendChoices(s *discordgo.Session, i *discordgo.InteractionCreate, choices []*discordgo.ApplicationCommandOptionChoice) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{Choices: choices},
	})
	if err != nil {
		log.Printf("Error responding to autocomplete interaction: %v", err)
	}
}

package handlers

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"

	"aura-bot/bot"
	"aura-bot/gallery"

	"github.com/bwmarrin/discordgo"
)

func galleryEmbed(e gallery.Entry) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       e.Title,
		Description: e.Caption,
		Color:       0xe91e63,
	}
	if e.MediaType() == "image" {
		embed.Image = &discordgo.MessageEmbedImage{URL: e.URL}
	} else {
		// Videos can't be embedded; link them instead.
		if embed.Description != "" {
			embed.Description += "\n"
		}
		embed.Description += e.URL
	}
	if e.Author != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: "by " + e.Author}
	}
	return embed
}

func pickRandomEntry(entries []gallery.Entry) (gallery.Entry, bool) {
	if len(entries) == 0 {
		return gallery.Entry{}, false
	}
	return entries[rand.Intn(len(entries))], true
}

func channelIsNSFW(s *discordgo.Session, channelID string) bool {
	if ch, err := s.State.Channel(channelID); err == nil {
		return ch.NSFW
	}
	if ch, err := s.Channel(channelID); err == nil {
		return ch.NSFW
	}
	return false
}

// HandleGalleryRandom handles the logic for the /gallery_random command.
// Random picks never serve NSFW entries.
func HandleGalleryRandom(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	entries := gallery.Filter(b.Gallery.Entries(), false, "")
	e, ok := pickRandomEntry(entries)
	if !ok {
		respondEphemeral(s, i, "🖼️ The gallery is empty.")
		return
	}
	respondEmbed(s, i, galleryEmbed(e))
}

// HandleGalleryShow handles the logic for the /gallery_show command.
func HandleGalleryShow(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	title := optionMap(i)["title"].StringValue()

	e, found := gallery.FindByTitle(b.Gallery.Entries(), title)
	if !found {
		respondEphemeral(s, i, fmt.Sprintf("🖼️ I don't have an entry called %q.", title))
		return
	}

	if !gallery.NSFWViewable(e, b.Gallery.LoadConfig(), channelIsNSFW(s, i.ChannelID)) {
		respondEphemeral(s, i, "🔞 That entry can only be shown in an age-restricted channel.")
		return
	}
	respondEmbed(s, i, galleryEmbed(e))
}

// HandleGalleryTag handles the logic for the /gallery_tag command. Tag
// lookups never serve NSFW entries.
func HandleGalleryTag(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	tag := optionMap(i)["tag"].StringValue()

	entries := gallery.Filter(b.Gallery.Entries(), false, tag)
	e, ok := pickRandomEntry(entries)
	if !ok {
		respondEphemeral(s, i, fmt.Sprintf("🖼️ Nothing tagged %q in the gallery.", tag))
		return
	}
	respondEmbed(s, i, galleryEmbed(e))
}

// HandleGalleryImport handles the logic for the /gallery_import command.
// Entries are merged by URL, so re-importing the same list is harmless.
func HandleGalleryImport(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	raw := optionMap(i)["entries"].StringValue()

	var incoming []gallery.Entry
	if err := json.Unmarshal([]byte(raw), &incoming); err != nil {
		respondEphemeral(s, i, "🖼️ That isn't a valid JSON list of entries.")
		return
	}

	added, err := b.Gallery.Merge(incoming)
	if err != nil {
		respondEphemeral(s, i, "I couldn't save the gallery, sorry.")
		return
	}
	respondEphemeral(s, i, fmt.Sprintf("🖼️ Imported %d new entries (%d submitted).", added, len(incoming)))
}

// HandleGalleryList handles the logic for the /gallery_list command. Shows
// the first 25 titles.
func HandleGalleryList(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	entries := b.Gallery.Entries()
	if len(entries) == 0 {
		respondEphemeral(s, i, "🖼️ The gallery is empty.")
		return
	}

	const maxListed = 25
	lines := []string{fmt.Sprintf("🖼️ **Gallery** (%d entries)", len(entries))}
	for idx, e := range entries {
		if idx >= maxListed {
			lines = append(lines, fmt.Sprintf("… and %d more", len(entries)-maxListed))
			break
		}
		marker := ""
		if e.NSFW {
			marker = " 🔞"
		}
		lines = append(lines, fmt.Sprintf("%d. **%s** [%s]%s", idx+1, e.Title, e.FirstTag(), marker))
	}
	respondEphemeral(s, i, strings.Join(lines, "\n"))
}

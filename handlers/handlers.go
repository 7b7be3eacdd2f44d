package handlers

import (
	"log"

	"aura-bot/bot"

	"github.com/bwmarrin/discordgo"
)

// Register all handlers to the bot.
func Register(b *bot.Bot) {
	b.Session.AddHandler(InteractionCreate(b))
	b.Session.AddHandler(MessageCreate(b))

	// Set the initial presence once connected.
	b.Session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.Printf("Logged in as: %v#%v", s.State.User.Username, s.State.User.Discriminator)
		b.RotatePresence()
	})
}

package main

import (
	"aura-bot/bot"
	"aura-bot/command"
	"aura-bot/handlers"
)

func main() {
	bot.Run(handlers.Register, command.GetCommandDefinitions())
}

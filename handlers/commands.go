package handlers

import (
	"aura-bot/bot"

	"github.com/bwmarrin/discordgo"
)

// commandPermissions maps every command to the level it requires. Commands
// missing from the map are refused.
var commandPermissions = map[string]string{
	"joke":           "guest",
	"joke_status":    "guest",
	"fortune":        "guest",
	"fortune_status": "guest",
	"quote":          "guest",
	"poll":           "guest",
	"flip":           "guest",
	"time":           "guest",
	"event":          "guest",
	"remind":         "guest",
	"namegen":        "guest",
	"profile":        "guest",
	"hello":          "guest",
	"ping":           "guest",
	"about":          "guest",
	"gallery_random": "guest",
	"gallery_show":   "guest",
	"gallery_tag":    "guest",
	"gallery_list":   "guest",

	"say":                   "admin",
	"content_status":        "admin",
	"presence_reload":       "admin",
	"hourly_reload":         "admin",
	"joke_reload":           "admin",
	"fortune_reload":        "admin",
	"admin_status":          "admin",
	"admin_silent":          "admin",
	"admin_autopost_set":    "admin",
	"admin_autopost_add":    "admin",
	"admin_autopost_remove": "admin",
	"gallery_import":        "admin",
	"emoji":                 "admin",
	"activity":              "admin",
	"archive_forward":       "admin",
}

// CommandDispatcher is the central handler for all application command
// interactions. It performs permission checks and then dispatches the
// interaction to the appropriate handler.
func CommandDispatcher(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	commandName := i.ApplicationCommandData().Name

	requiredLevel, known := commandPermissions[commandName]
	if !known || !b.Auth.CheckPermission(s, i, requiredLevel) {
		respondEphemeral(s, i, "🚫 You don't have permission to run this command.")
		return
	}

	switch commandName {
	case "joke":
		HandleJoke(b, s, i)
	case "joke_status":
		HandleJokeStatus(b, s, i)
	case "fortune":
		HandleFortune(b, s, i)
	case "fortune_status":
		HandleFortuneStatus(b, s, i)
	case "quote":
		HandleQuote(b, s, i)
	case "poll":
		HandlePoll(b, s, i)
	case "flip":
		HandleFlip(b, s, i)
	case "time":
		HandleTime(b, s, i)
	case "event":
		HandleEvent(b, s, i)
	case "remind":
		HandleRemind(b, s, i)
	case "namegen":
		HandleNamegen(b, s, i)
	case "profile":
		HandleProfile(b, s, i)
	case "hello":
		HandleHello(b, s, i)
	case "ping":
		HandlePing(b, s, i)
	case "about":
		HandleAbout(b, s, i)
	case "gallery_random":
		HandleGalleryRandom(b, s, i)
	case "gallery_show":
		HandleGalleryShow(b, s, i)
	case "gallery_tag":
		HandleGalleryTag(b, s, i)
	case "gallery_list":
		HandleGalleryList(b, s, i)
	case "gallery_import":
		HandleGalleryImport(b, s, i)
	case "say":
		HandleSay(b, s, i)
	case "content_status":
		HandleContentStatus(b, s, i)
	case "presence_reload", "hourly_reload", "joke_reload", "fortune_reload":
		HandlePoolReload(b, s, i, commandName)
	case "admin_status":
		HandleAdminStatus(b, s, i)
	case "admin_silent":
		HandleAdminSilent(b, s, i)
	case "admin_autopost_set":
		HandleAutopostSet(b, s, i)
	case "admin_autopost_add":
		HandleAutopostAdd(b, s, i)
	case "admin_autopost_remove":
		HandleAutopostRemove(b, s, i)
	case "emoji":
		HandleEmoji(b, s, i)
	case "activity":
		HandleActivity(b, s, i)
	case "archive_forward":
		HandleArchiveForward(b, s, i)
	default:
		respondEphemeral(s, i, "🚫 Unknown command.")
	}
}

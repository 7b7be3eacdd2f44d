package bot

import (
	"path/filepath"

	"aura-bot/content"
)

// Built-in pool fallbacks, used when the data files are missing or empty so
// the bot always has something to say.
var (
	defaultPresence = []string{
		"the clovers grow 🍀",
		"over the server ✨",
		"the stars align 🌟",
	}
	defaultHourly = []string{
		"✨ A little sparkle for your hour.",
		"🍀 May a bit of luck find you today.",
		"🌟 Keep going, you're doing great.",
	}
	defaultFortunes = []string{
		"Good things are coming your way. 🍀",
		"A small kindness today returns tomorrow.",
		"The next message you read brings good news.",
	}
	defaultQuips = []string{
		"You rang? ✨",
		"I was just thinking about this channel!",
		"Always happy to be mentioned 🍀",
	}
)

const (
	hourlyFallbackLine   = "✨ Wishing you a lovely hour."
	jokeFallbackLine     = "I had a joke ready, but it slipped away. 🍀"
	fortuneFallbackLine  = "The clover keeps its secrets today. 🍀"
	presenceFallbackLine = "over the server ✨"
)

func (b *Bot) dataPath(name string) string {
	return filepath.Join(b.DataDir, name)
}

// ReloadPresence re-reads the presence pool from disk and returns its size.
func (b *Bot) ReloadPresence() int {
	b.Presence.Reload(content.LoadLines(b.dataPath("presence.json"), defaultPresence))
	return b.Presence.Size()
}

// ReloadHourly re-reads the hourly message pool and returns its size.
func (b *Bot) ReloadHourly() int {
	b.Hourly.Reload(content.LoadLines(b.dataPath("hourly.json"), defaultHourly))
	return b.Hourly.Size()
}

// ReloadJokes re-reads the joke pool and returns its size.
func (b *Bot) ReloadJokes() int {
	jokes := content.LoadJokes(b.dataPath("jokes.json"))
	b.Jokes.Reload(formatJokes(jokes))
	return b.Jokes.Size()
}

// ReloadFortunes re-reads the fortune pool and returns its size.
func (b *Bot) ReloadFortunes() int {
	b.Fortunes.Reload(content.LoadLines(b.dataPath("fortunes.json"), defaultFortunes))
	return b.Fortunes.Size()
}

func formatJokes(jokes []content.Joke) []string {
	lines := make([]string, 0, len(jokes))
	for _, j := range jokes {
		if f := j.Format(); f != "" {
			lines = append(lines, f)
		}
	}
	return lines
}

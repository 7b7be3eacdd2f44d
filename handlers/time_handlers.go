package handlers

import (
	"fmt"
	"strings"
	"time"

	"aura-bot/bot"
	"aura-bot/content"

	"github.com/bwmarrin/discordgo"
)

type usZone struct {
	label string
	loc   *time.Location
}

var usZones = loadUSZones()

func loadUSZones() []usZone {
	zones := []struct{ label, name string }{
		{"Eastern", "America/New_York"},
		{"Central", "America/Chicago"},
		{"Mountain", "America/Denver"},
		{"Pacific", "America/Los_Angeles"},
	}
	out := make([]usZone, 0, len(zones))
	for _, z := range zones {
		loc, err := time.LoadLocation(z.name)
		if err != nil {
			loc = time.UTC
		}
		out = append(out, usZone{label: z.label, loc: loc})
	}
	return out
}

// renderClocks formats the moment across the US time zones in 12-hour time.
func renderClocks(now time.Time) string {
	lines := make([]string, 0, len(usZones)+1)
	lines = append(lines, "🕰️ **Current time**")
	for _, z := range usZones {
		t := now.In(z.loc)
		lines = append(lines, fmt.Sprintf("**%s** · %s", z.label, t.Format("3:04 PM (Mon)")))
	}
	return strings.Join(lines, "\n")
}

// HandleTime handles the logic for the /time command.
func HandleTime(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	respond(s, i, renderClocks(time.Now()))
}

// renderEvents formats the upcoming events with countdowns, optionally
// filtered by a name substring.
func renderEvents(events []content.Event, filter string, now time.Time) string {
	upcoming := content.UpcomingEvents(events, now)
	if filter != "" {
		filterLower := strings.ToLower(filter)
		var matched []content.Event
		for _, e := range upcoming {
			if strings.Contains(strings.ToLower(e.Name), filterLower) {
				matched = append(matched, e)
			}
		}
		upcoming = matched
	}

	if len(upcoming) == 0 {
		return "📅 No upcoming events on the calendar."
	}

	lines := []string{"📅 **Upcoming events**"}
	for _, e := range upcoming {
		lines = append(lines, fmt.Sprintf("**%s** — %s (in %s)",
			e.Name,
			e.Time.In(usZones[0].loc).Format("Mon Jan 2, 3:04 PM"),
			content.Countdown(e.Time, now)))
	}
	return strings.Join(lines, "\n")
}

// HandleEvent handles the logic for the /event command.
func HandleEvent(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	var filter string
	if opt, ok := optionMap(i)["name"]; ok {
		filter = opt.StringValue()
	}
	respond(s, i, renderEvents(b.Events, filter, time.Now()))
}

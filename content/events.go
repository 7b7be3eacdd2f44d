package content

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sort"
	"time"
)

// Event is a scheduled community event loaded from the events file.
type Event struct {
	Name string    `json:"name"`
	Time time.Time `json:"-"`

	RawTime string `json:"time"`
}

var eastern = func() *time.Location {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		return time.UTC
	}
	return loc
}()

// LoadEvents reads the event list. Times accept RFC 3339 or the short
// "2006-01-02 15:04" form, which is read as US Eastern. Entries whose time
// cannot be parsed are skipped with a warning.
func LoadEvents(path string) []Event {
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Could not read events file %s: %v", path, err)
		return nil
	}

	var events []Event
	if err := json.Unmarshal(raw, &events); err != nil {
		log.Printf("Could not parse events file %s: %v", path, err)
		return nil
	}

	out := events[:0]
	for _, e := range events {
		t, err := parseEventTime(e.RawTime)
		if err != nil {
			log.Printf("Skipping event %q: %v", e.Name, err)
			continue
		}
		e.Time = t
		out = append(out, e)
	}
	return out
}

func parseEventTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02 15:04", s, eastern); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unrecognized event time %q", s)
}

// UpcomingEvents returns the events still in the future, soonest first.
func UpcomingEvents(events []Event, now time.Time) []Event {
	var out []Event
	for _, e := range events {
		if e.Time.After(now) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Time.Before(out[j].Time) })
	return out
}

// Countdown renders the time remaining until t in a friendly "2d 3h 15m"
// style, dropping leading zero units.
func Countdown(t, now time.Time) string {
	d := t.Sub(now)
	if d <= 0 {
		return "now"
	}
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}

package reminder

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Creation-side guard rails.
const (
	MinLead = 10 * time.Second
	MaxLead = 365 * 24 * time.Hour
)

// Absolute time expressions are interpreted in US Eastern time.
var easternTime = loadEastern()

func loadEastern() *time.Location {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		return time.UTC
	}
	return loc
}

var unitSeconds = map[string]int{
	"s": 1, "sec": 1, "secs": 1, "second": 1, "seconds": 1,
	"m": 60, "min": 60, "mins": 60, "minute": 60, "minutes": 60,
	"h": 3600, "hr": 3600, "hrs": 3600, "hour": 3600, "hours": 3600,
	"d": 86400, "day": 86400, "days": 86400,
	"w": 604800, "wk": 604800, "wks": 604800, "week": 604800, "weeks": 604800,
}

var (
	reTime12        = regexp.MustCompile(`(?i)^\s*(\d{1,2})(?::(\d{2}))?\s*([ap]m)\s*$`)
	reTime24        = regexp.MustCompile(`^\s*(\d{1,2}):(\d{2})\s*$`)
	reDateDash      = regexp.MustCompile(`(?i)^\s*(\d{4})-(\d{1,2})-(\d{1,2})(?:[ T](\d{1,2})(?::(\d{2}))?\s*([ap]m)?)?\s*$`)
	reDateSlashFull = regexp.MustCompile(`(?i)^\s*(\d{4})/(\d{1,2})/(\d{1,2})(?:\s+(\d{1,2})(?::(\d{2}))?\s*([ap]m)?)?\s*$`)
	reDateSlashMD   = regexp.MustCompile(`(?i)^\s*(\d{1,2})/(\d{1,2})(?:\s+(\d{1,2})(?::(\d{2}))?\s*([ap]m)?)?\s*$`)
	reDuration      = regexp.MustCompile(`(\d+)\s*([a-zA-Z]+)`)
)

// parseClock parses "3pm", "8:05am" or "15:30" into (hour, minute).
func parseClock(s string) (int, int, bool) {
	if m := reTime12.FindStringSubmatch(s); m != nil {
		hh, _ := strconv.Atoi(m[1])
		mm := 0
		if m[2] != "" {
			mm, _ = strconv.Atoi(m[2])
		}
		if hh == 12 {
			hh = 0
		}
		if strings.EqualFold(m[3], "pm") {
			hh += 12
		}
		return hh, mm, hh < 24 && mm < 60
	}
	if m := reTime24.FindStringSubmatch(s); m != nil {
		hh, _ := strconv.Atoi(m[1])
		mm, _ := strconv.Atoi(m[2])
		return hh, mm, hh < 24 && mm < 60
	}
	return 0, 0, false
}

// parseDuration handles "in 10m", "2h30m", "1 day".
func parseDuration(s string) (time.Duration, bool) {
	s = strings.TrimSpace(strings.ToLower(s))
	s = strings.TrimPrefix(s, "in ")

	total := 0
	found := false
	for _, m := range reDuration.FindAllStringSubmatch(s, -1) {
		secs, ok := unitSeconds[m[2]]
		if !ok {
			continue
		}
		n, _ := strconv.Atoi(m[1])
		total += n * secs
		found = true
	}
	if !found || total <= 0 {
		return 0, false
	}
	return time.Duration(total) * time.Second, true
}

func applyMeridiem(hh int, ap string) int {
	if ap == "" {
		return hh
	}
	if hh == 12 {
		hh = 0
	}
	if strings.EqualFold(ap, "pm") {
		hh += 12
	}
	return hh
}

func atoiOr(s string, def int) int {
	if s == "" {
		return def
	}
	n, _ := strconv.Atoi(s)
	return n
}

// ParseWhen resolves a free-text time expression into a UTC instant.
// Priority order: duration, today/tomorrow + clock, explicit date, bare
// clock (next occurrence). Absolute inputs are anchored to Eastern time.
func ParseWhen(text string, now time.Time) (time.Time, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, errors.New("empty time expression")
	}

	if d, ok := parseDuration(text); ok {
		return now.Add(d), nil
	}

	lower := strings.ToLower(text)
	nowEastern := now.In(easternTime)

	for _, day := range []struct {
		prefix string
		offset int
	}{{"today", 0}, {"tomorrow", 1}} {
		if strings.HasPrefix(lower, day.prefix) {
			frag := strings.TrimSpace(strings.TrimPrefix(lower, day.prefix))
			frag = strings.TrimSpace(strings.TrimPrefix(frag, "at"))
			if hh, mm, ok := parseClock(frag); ok {
				base := nowEastern.AddDate(0, 0, day.offset)
				dt := time.Date(base.Year(), base.Month(), base.Day(), hh, mm, 0, 0, easternTime)
				return dt.UTC(), nil
			}
		}
	}

	for _, rx := range []*regexp.Regexp{reDateDash, reDateSlashFull} {
		if m := rx.FindStringSubmatch(text); m != nil {
			hh := applyMeridiem(atoiOr(m[4], 0), m[6])
			dt := time.Date(atoiOr(m[1], 0), time.Month(atoiOr(m[2], 1)), atoiOr(m[3], 1),
				hh, atoiOr(m[5], 0), 0, 0, easternTime)
			return dt.UTC(), nil
		}
	}

	if m := reDateSlashMD.FindStringSubmatch(text); m != nil {
		hh := applyMeridiem(atoiOr(m[3], 0), m[5])
		dt := time.Date(nowEastern.Year(), time.Month(atoiOr(m[1], 1)), atoiOr(m[2], 1),
			hh, atoiOr(m[4], 0), 0, 0, easternTime)
		return dt.UTC(), nil
	}

	// Bare clock time: today in Eastern, rolling to tomorrow once passed.
	if hh, mm, ok := parseClock(text); ok {
		dt := time.Date(nowEastern.Year(), nowEastern.Month(), nowEastern.Day(), hh, mm, 0, 0, easternTime)
		if !dt.UTC().After(now.Add(5 * time.Second)) {
			dt = dt.AddDate(0, 0, 1)
		}
		return dt.UTC(), nil
	}

	return time.Time{}, fmt.Errorf("unparseable time expression %q", text)
}

// Validate enforces the creation guards: at least MinLead in the future,
// no more than MaxLead out.
func Validate(target, now time.Time) error {
	if !target.After(now.Add(MinLead)) {
		return errors.New("that time is too soon; pick something at least 10 seconds from now")
	}
	if !target.Before(now.Add(MaxLead)) {
		return errors.New("that time is too far in the future; the limit is 1 year")
	}
	return nil
}

// TruncateMessage trims the reminder text to MaxMessageLen runes.
func TruncateMessage(s string) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= MaxMessageLen {
		return s
	}
	return string(runes[:MaxMessageLen]) + "…"
}

package gallery

import "strings"

// Filter narrows entries by tag and NSFW permission. A tag matches on
// equality or substring, case-insensitive.
func Filter(entries []Entry, allowNSFW bool, tag string) []Entry {
	out := make([]Entry, 0, len(entries))
	tagLower := strings.ToLower(strings.TrimSpace(tag))
	for _, e := range entries {
		if tagLower != "" && !matchesTag(e, tagLower) {
			continue
		}
		if !allowNSFW && e.NSFW {
			continue
		}
		out = append(out, e)
	}
	return out
}

func matchesTag(e Entry, tagLower string) bool {
	for _, t := range e.Tags {
		tl := strings.ToLower(t)
		if tl == tagLower || strings.Contains(tl, tagLower) {
			return true
		}
	}
	return false
}

// FindByTitle returns the entry with the given title, case-insensitive.
func FindByTitle(entries []Entry, title string) (Entry, bool) {
	for _, e := range entries {
		if strings.EqualFold(e.Title, title) {
			return e, true
		}
	}
	return Entry{}, false
}

// NSFWViewable reports whether an NSFW entry may be shown: the global
// config flag and the channel's NSFW marking must both permit it. SFW
// entries are always viewable.
func NSFWViewable(e Entry, cfg Config, channelNSFW bool) bool {
	if !e.NSFW {
		return true
	}
	return cfg.NSFWEnabled && channelNSFW
}

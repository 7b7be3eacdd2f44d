package storage

import "encoding/json"

// TargetStore reads and writes the autopost target file. The value for a
// guild has evolved across deployments: older files hold a single channel ID
// string, newer ones a list. Both shapes are accepted on read; writes always
// produce the list form.
type TargetStore struct {
	path string
}

// NewTargetStore creates a TargetStore backed by path.
func NewTargetStore(path string) *TargetStore {
	return &TargetStore{path: path}
}

func (s *TargetStore) load() map[string]json.RawMessage {
	m := make(map[string]json.RawMessage)
	if err := readJSON(s.path, &m); err != nil {
		warnLoad(s.path, err)
		return make(map[string]json.RawMessage)
	}
	return m
}

// normalizeTarget decodes a raw target value into an ordered, de-duplicated
// channel list.
func normalizeTarget(raw json.RawMessage) []string {
	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		if single == "" {
			return nil
		}
		return []string{single}
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil
	}

	seen := make(map[string]bool, len(list))
	out := make([]string, 0, len(list))
	for _, id := range list {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// Channels returns the autopost channel list for a guild, in insertion
// order, with duplicates removed.
func (s *TargetStore) Channels(guildID string) []string {
	return normalizeTarget(s.load()[guildID])
}

// All returns the full guild→channels map.
func (s *TargetStore) All() map[string][]string {
	out := make(map[string][]string)
	for gid, raw := range s.load() {
		if chans := normalizeTarget(raw); len(chans) > 0 {
			out[gid] = chans
		}
	}
	return out
}

func (s *TargetStore) save(m map[string]json.RawMessage) error {
	return writeJSON(s.path, m)
}

// Set replaces the guild's target list with a single channel.
func (s *TargetStore) Set(guildID, channelID string) error {
	m := s.load()
	raw, _ := json.Marshal([]string{channelID})
	m[guildID] = raw
	return s.save(m)
}

// Add appends a channel to the guild's target list if not already present.
func (s *TargetStore) Add(guildID, channelID string) error {
	m := s.load()
	chans := normalizeTarget(m[guildID])
	for _, id := range chans {
		if id == channelID {
			return nil
		}
	}
	chans = append(chans, channelID)
	raw, _ := json.Marshal(chans)
	m[guildID] = raw
	return s.save(m)
}

// Remove drops a channel from the guild's target list. Removing the last
// channel removes the guild entry entirely.
func (s *TargetStore) Remove(guildID, channelID string) error {
	m := s.load()
	chans := normalizeTarget(m[guildID])
	out := make([]string, 0, len(chans))
	for _, id := range chans {
		if id != channelID {
			out = append(out, id)
		}
	}
	if len(out) == 0 {
		delete(m, guildID)
	} else {
		raw, _ := json.Marshal(out)
		m[guildID] = raw
	}
	return s.save(m)
}

package storage

// GuildFlags is the per-guild flag set stored in guild_flags.json.
type GuildFlags struct {
	Silent bool `json:"silent"`
}

// FlagStore reads and writes the guild flags file,
// shaped {"<guild_id>": {"silent": bool}}.
type FlagStore struct {
	path string
}

// NewFlagStore creates a FlagStore backed by path.
func NewFlagStore(path string) *FlagStore {
	return &FlagStore{path: path}
}

func (s *FlagStore) load() map[string]GuildFlags {
	flags := make(map[string]GuildFlags)
	if err := readJSON(s.path, &flags); err != nil {
		warnLoad(s.path, err)
		return make(map[string]GuildFlags)
	}
	return flags
}

// IsSilent reports whether the guild is in silent mode. Absent guilds
// default to not silent.
func (s *FlagStore) IsSilent(guildID string) bool {
	return s.load()[guildID].Silent
}

// SetSilent updates the guild's silent flag and persists the whole map.
func (s *FlagStore) SetSilent(guildID string, silent bool) error {
	flags := s.load()
	f := flags[guildID]
	f.Silent = silent
	flags[guildID] = f
	return writeJSON(s.path, flags)
}

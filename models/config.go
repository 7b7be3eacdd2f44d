package models

// CommandsConfig represents the "commands" section of config.yaml.
type CommandsConfig struct {
	Auth AuthConfig `json:"auth" mapstructure:"auth"`
}

// AuthConfig lists who may run privileged commands. A "0" entry under
// guest means public access.
type AuthConfig struct {
	Developers  []string `json:"developers" mapstructure:"developers"`
	AdminsRoles []string `json:"admins_roles" mapstructure:"admins_roles"`
	Guest       []string `json:"guest" mapstructure:"guest"`
}

// AutopostConfig represents the "autopost" section of config.yaml.
type AutopostConfig struct {
	InactivityMinutes int `json:"inactivityMinutes" mapstructure:"inactivityMinutes"`
	CooldownMinutes   int `json:"cooldownMinutes" mapstructure:"cooldownMinutes"`
}

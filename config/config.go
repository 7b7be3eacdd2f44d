package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// LoadConfig loads configuration from multiple sources: the .env file for
// secrets, then config.yaml for base settings. Environment variables
// override file settings of the same name.
func LoadConfig() {
	// Environment variables from .env, skipped when the file is absent.
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, skipping.")
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Running without config.yaml is fine; env vars and defaults
			// carry the process.
			log.Printf("No config.yaml found, using environment variables and defaults.")
		} else {
			panic(fmt.Errorf("fatal error reading config file: %w", err))
		}
	}
}

func setDefaults() {
	viper.SetDefault("bot.dataDir", "data")

	// Observed deployments have drifted between 30 and 97 minutes for the
	// inactivity gate; 30/60 are the canonical defaults, overridable here.
	viper.SetDefault("autopost.inactivityMinutes", 30)
	viper.SetDefault("autopost.cooldownMinutes", 60)

	viper.SetDefault("reminder.tickSeconds", 30)

	viper.SetDefault("activity.dbPath", "data/activity.db")
	viper.SetDefault("web.port", 8000)
}

package bot

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
)

var c *cron.Cron

// startScheduler starts the periodic jobs: the autopost gate check, the
// reminder dispatch, and the hourly presence rotation.
func startScheduler(b *Bot) {
	log.Println("Initializing scheduler...")
	c = cron.New()

	if _, err := c.AddFunc("@every 1m", func() {
		b.Scheduler.Tick(time.Now().UTC())
	}); err != nil {
		log.Fatalf("Could not set up autopost job: %v", err)
	}

	tickSeconds := viper.GetInt("reminder.tickSeconds")
	if tickSeconds <= 0 {
		tickSeconds = 30
	}
	if _, err := c.AddFunc(fmt.Sprintf("@every %ds", tickSeconds), func() {
		b.Dispatcher.Tick(time.Now().UTC())
	}); err != nil {
		log.Fatalf("Could not set up reminder job: %v", err)
	}

	if _, err := c.AddFunc("@hourly", b.RotatePresence); err != nil {
		log.Fatalf("Could not set up presence job: %v", err)
	}

	c.Start()
	log.Println("Scheduler running: autopost every 1m, reminders every",
		tickSeconds, "s, presence hourly.")
}

// stopScheduler stops the cron jobs.
func stopScheduler() {
	if c != nil {
		c.Stop()
		log.Println("Scheduler stopped.")
	}
}

package bot

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"aura-bot/archive"
	"aura-bot/autopost"
	"aura-bot/config"
	"aura-bot/content"
	"aura-bot/database"
	"aura-bot/emoji"
	"aura-bot/gallery"
	"aura-bot/models"
	"aura-bot/reminder"
	"aura-bot/storage"
	"aura-bot/utils"
	"aura-bot/web"

	"github.com/bwmarrin/discordgo"
	"github.com/spf13/viper"
)

// Bot carries the session plus every store, pool, and engine the handlers
// and scheduled jobs need. It is built once at startup and passed around
// explicitly.
type Bot struct {
	Session *discordgo.Session
	Auth    *utils.Auth

	DataDir string

	Flags   *storage.FlagStore
	Targets *storage.TargetStore
	State   *storage.StateStore

	Presence *content.Picker
	Hourly   *content.Picker
	Jokes    *content.Picker
	Fortunes *content.Picker

	Quotes []content.Quote
	Names  content.NameBank
	Quips  []string
	Events []content.Event

	Reminders  *reminder.Store
	Dispatcher *reminder.Dispatcher
	Activity   *autopost.Activity
	Scheduler  *autopost.Scheduler
	Gallery    *gallery.Store
	Emoji      *emoji.Engine
	Archive    *archive.StateStore

	// ActivityDB is nil when the sqlite database could not be opened;
	// recording is then disabled but the bot keeps running.
	ActivityDB *sql.DB

	mu            sync.Mutex
	autoReplyLast map[string]time.Time
}

// NewBot loads configuration and builds a fully wired Bot.
func NewBot() (*Bot, error) {
	config.LoadConfig()
	token := viper.GetString("BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("no bot token provided")
	}

	dg, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}

	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMessageReactions |
		discordgo.IntentsDirectMessages |
		discordgo.IntentMessageContent

	b := &Bot{
		Session:       dg,
		DataDir:       viper.GetString("bot.dataDir"),
		autoReplyLast: make(map[string]time.Time),
	}

	b.Flags = storage.NewFlagStore(b.dataPath("autopost_flags.json"))
	b.Targets = storage.NewTargetStore(b.dataPath("autopost_channels.json"))
	b.State = storage.NewStateStore(b.dataPath("autopost_state.json"))

	b.Presence = content.NewPicker(nil, presenceFallbackLine)
	b.Hourly = content.NewPicker(nil, hourlyFallbackLine)
	b.Jokes = content.NewPicker(nil, jokeFallbackLine)
	b.Fortunes = content.NewPicker(nil, fortuneFallbackLine)
	b.ReloadPresence()
	b.ReloadHourly()
	b.ReloadJokes()
	b.ReloadFortunes()

	b.Quotes = content.LoadQuotes(b.dataPath("quotes.json"))
	b.Names = content.LoadNameBank(b.dataPath("names.json"))
	b.Quips = content.LoadLines(b.dataPath("quips.json"), defaultQuips)
	b.Events = content.LoadEvents(b.dataPath("events.json"))

	b.Reminders = reminder.NewStore(b.dataPath("reminders.json"))
	b.Activity = autopost.NewActivity(time.Now().UTC())
	b.Gallery = gallery.NewStore(b.dataPath("gallery.json"), b.dataPath("gallery_config.json"))
	b.Emoji = emoji.NewEngine(emoji.NewConfigStore(b.dataPath("emoji_config.json"), b.dataPath("emoji_pools")))
	b.Archive = archive.NewStateStore(b.dataPath("archive_forward_state.json"))

	var apCfg models.AutopostConfig
	if err := viper.UnmarshalKey("autopost", &apCfg); err != nil {
		return nil, fmt.Errorf("error loading autopost config: %w", err)
	}

	sender := &sessionSender{s: dg}
	b.Scheduler = autopost.New(autopost.Config{
		Flags:      b.Flags,
		Targets:    b.Targets,
		State:      b.State,
		Hourly:     b.Hourly,
		Jokes:      b.Jokes,
		Activity:   b.Activity,
		Sender:     sender,
		Inactivity: time.Duration(apCfg.InactivityMinutes) * time.Minute,
		Cooldown:   time.Duration(apCfg.CooldownMinutes) * time.Minute,
	})
	b.Dispatcher = reminder.NewDispatcher(b.Reminders, sender)

	b.Auth, err = utils.NewAuth()
	if err != nil {
		return nil, fmt.Errorf("error loading auth config: %w", err)
	}

	return b, nil
}

// OpenActivityDB opens the channel-activity database. Failure disables
// recording with a warning instead of stopping the bot.
func (b *Bot) OpenActivityDB() {
	db, err := database.InitDB(viper.GetString("activity.dbPath"))
	if err != nil {
		log.Printf("Channel activity database unavailable: %v", err)
		return
	}
	b.ActivityDB = db
}

// Start registers handlers, opens the session, registers slash commands,
// and launches the background jobs.
func (b *Bot) Start(registerHandlers func(*Bot), defs []*discordgo.ApplicationCommand) error {
	registerHandlers(b)

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}

	utils.InitLogger(b.Session)

	for _, def := range defs {
		if _, err := b.Session.ApplicationCommandCreate(b.Session.State.User.ID, "", def); err != nil {
			log.Printf("Cannot create '%v' command: %v", def.Name, err)
		}
	}

	startScheduler(b)
	web.Start(viper.GetInt("web.port"))

	fmt.Println("Bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop gracefully closes the bot's session.
func (b *Bot) Stop() {
	stopScheduler()
	if b.ActivityDB != nil {
		b.ActivityDB.Close()
	}
	if b.Session != nil {
		b.Session.Close()
	}
	fmt.Println("Bot stopped gracefully.")
}

// RotatePresence sets the next presence line from the pool.
func (b *Bot) RotatePresence() {
	line := b.Presence.Pick(time.Now().UTC())
	if err := b.Session.UpdateWatchStatus(0, line); err != nil {
		log.Printf("Could not update presence: %v", err)
	}
}

// RandomQuip returns an auto-reply line, or "" when the channel is still in
// its auto-reply cooldown window.
func (b *Bot) RandomQuip(channelID string, now time.Time) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.Quips) == 0 {
		return ""
	}
	if last, ok := b.autoReplyLast[channelID]; ok && now.Sub(last) < 5*time.Second {
		return ""
	}
	b.autoReplyLast[channelID] = now
	return b.Quips[int(now.UnixNano())%len(b.Quips)]
}

// Run is the main entry point for the bot application.
func Run(registerHandlers func(*Bot), defs []*discordgo.ApplicationCommand) {
	bot, err := NewBot()
	if err != nil {
		log.Fatalf("Error initializing bot: %v", err)
	}

	bot.OpenActivityDB()

	if err := bot.Start(registerHandlers, defs); err != nil {
		log.Fatalf("Error starting bot: %v", err)
	}

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	bot.Stop()
}

// Package database keeps the channel activity log in SQLite. Recording is
// best effort: if the database cannot be opened the bot runs without it.
package database

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite3 driver
)

// ChannelActivity is one row of the activity summary.
type ChannelActivity struct {
	ChannelID    string
	MessageCount int64
	LastMessage  time.Time
}

// InitDB opens (creating if necessary) the activity database at dbPath.
func InitDB(dbPath string) (*sql.DB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := createActivityTable(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create activity table: %w", err)
	}

	log.Println("Successfully connected to the activity database at", dbPath)
	return db, nil
}

func createActivityTable(db *sql.DB) error {
	query := `
    CREATE TABLE IF NOT EXISTS channel_activity (
        guild_id TEXT,
        channel_id TEXT,
        message_count INTEGER DEFAULT 0,
        last_message INTEGER,
        PRIMARY KEY (guild_id, channel_id)
    );`
	_, err := db.Exec(query)
	return err
}

// RecordMessage bumps the message counter for a channel and stamps the
// last-message time.
func RecordMessage(db *sql.DB, guildID, channelID string, ts time.Time) error {
	query := `
    INSERT INTO channel_activity (guild_id, channel_id, message_count, last_message)
    VALUES (?, ?, 1, ?)
    ON CONFLICT(guild_id, channel_id) DO UPDATE SET
        message_count = message_count + 1,
        last_message = excluded.last_message;`

	_, err := db.Exec(query, guildID, channelID, ts.Unix())
	if err != nil {
		return fmt.Errorf("failed to record message for channel %s: %w", channelID, err)
	}
	return nil
}

// TopChannels returns the guild's busiest channels, most active first.
func TopChannels(db *sql.DB, guildID string, limit int) ([]ChannelActivity, error) {
	query := `
    SELECT channel_id, message_count, last_message
    FROM channel_activity
    WHERE guild_id = ?
    ORDER BY message_count DESC
    LIMIT ?;`

	rows, err := db.Query(query, guildID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query channel activity for guild %s: %w", guildID, err)
	}
	defer rows.Close()

	var out []ChannelActivity
	for rows.Next() {
		var a ChannelActivity
		var last int64
		if err := rows.Scan(&a.ChannelID, &a.MessageCount, &last); err != nil {
			return nil, fmt.Errorf("failed to scan activity row: %w", err)
		}
		a.LastMessage = time.Unix(last, 0).UTC()
		out = append(out, a)
	}
	return out, rows.Err()
}

package archive

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
)

const (
	// MaxResumeAttempts bounds how often a run restarts after an error.
	MaxResumeAttempts = 3
	// ResumeDelay is the pause before a resume attempt.
	ResumeDelay = 12 * time.Second
	// ProgressInterval is how many forwarded messages pass between progress
	// reports to the log channel.
	ProgressInterval = 100
	// MaxContentLen caps a forwarded message's length.
	MaxContentLen = 1900

	historyPageSize = 100
)

// History pages through a channel's message history. *discordgo.Session
// satisfies it through SessionHistory; tests substitute a fake.
type History interface {
	// MessagesAfter returns up to limit messages strictly after afterID
	// (all history when afterID is empty), in any order.
	MessagesAfter(channelID, afterID string, limit int) ([]*discordgo.Message, error)
}

// Forwarder delivers one forwarded message to the destination webhook.
type Forwarder interface {
	Forward(content string) error
}

// Sender posts log lines to the log channel.
type Sender interface {
	SendMessage(channelID, content string) error
}

// Runner executes one archive-forward run.
type Runner struct {
	State   *StateStore
	History History
	Forward Forwarder
	Log     Sender

	// Delay between resume attempts; tests shorten it.
	Delay time.Duration
}

var imageExts = []string{".png", ".jpg", ".jpeg", ".gif", ".webp"}

func isImageAttachment(att *discordgo.MessageAttachment) bool {
	if strings.HasPrefix(att.ContentType, "image/") {
		return true
	}
	name := strings.ToLower(att.Filename)
	for _, ext := range imageExts {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// forwardableContent renders the parts of a message worth forwarding: the
// text plus image attachment URLs. An empty result means skip the message.
func forwardableContent(msg *discordgo.Message) string {
	if msg.Type != discordgo.MessageTypeDefault {
		return ""
	}

	parts := []string{}
	if text := strings.TrimSpace(msg.Content); text != "" {
		parts = append(parts, text)
	}
	for _, att := range msg.Attachments {
		if isImageAttachment(att) {
			parts = append(parts, att.URL)
		}
	}
	return truncate(strings.Join(parts, "\n"))
}

func truncate(s string) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= MaxContentLen {
		return s
	}
	return strings.TrimSpace(string(runes[:MaxContentLen-1])) + "…"
}

func (r *Runner) logf(logChannelID, format string, args ...interface{}) {
	line := fmt.Sprintf(format, args...)
	if err := r.Log.SendMessage(logChannelID, line); err != nil {
		log.Printf("Archive log delivery failed: %v", err)
	}
}

// Run forwards the source channel's eligible history to the webhook,
// resuming from the persisted position. It returns the number of messages
// forwarded; an error means the run aborted after exhausting its resume
// attempts.
func (r *Runner) Run(sourceID, logChannelID, operatorID, webhookFP string) (int, error) {
	delay := r.Delay
	if delay <= 0 {
		delay = ResumeDelay
	}

	forwarded := 0
	for attempt := 1; attempt <= MaxResumeAttempts; attempt++ {
		st := r.State.Get(sourceID)
		if attempt > 1 {
			r.logf(logChannelID, "ArchiveForward RESUME attempt %d/%d (after %s)",
				attempt, MaxResumeAttempts, orNone(st.LastMessageID))
		}

		n, err := r.runOnce(sourceID, logChannelID, operatorID, webhookFP, st.LastMessageID, forwarded)
		forwarded = n
		if err == nil {
			if uerr := r.State.Update(sourceID, func(st *SourceState) {
				st.Completed = true
			}); uerr != nil {
				log.Printf("Could not persist archive completion for %s: %v", sourceID, uerr)
			}
			r.logf(logChannelID,
				"ArchiveForward COMPLETE\nOperator: %s\nSource: %s\nWebhook: %s\nForwarded: %d",
				operatorID, sourceID, webhookFP, forwarded)
			return forwarded, nil
		}

		r.logf(logChannelID,
			"ArchiveForward ERROR\nOperator: %s\nSource: %s\nWebhook: %s\nAttempt: %d/%d\nError: %v",
			operatorID, sourceID, webhookFP, attempt, MaxResumeAttempts, err)

		if attempt == MaxResumeAttempts {
			st := r.State.Get(sourceID)
			r.logf(logChannelID,
				"ArchiveForward ABORT\nOperator: %s\nSource: %s\nWebhook: %s\nForwarded: %d\nLast message_id: %s\nReason: max resume attempts reached",
				operatorID, sourceID, webhookFP, forwarded, orNone(st.LastMessageID))
			return forwarded, fmt.Errorf("archive aborted after %d attempts: %w", MaxResumeAttempts, err)
		}
		time.Sleep(delay)
	}
	return forwarded, nil
}

// runOnce walks the history from afterID to the end, forwarding eligible
// messages and persisting the resume position after each delivery.
func (r *Runner) runOnce(sourceID, logChannelID, operatorID, webhookFP, afterID string, already int) (int, error) {
	forwarded := already
	for {
		page, err := r.History.MessagesAfter(sourceID, afterID, historyPageSize)
		if err != nil {
			return forwarded, fmt.Errorf("history fetch after %s: %w", orNone(afterID), err)
		}
		if len(page) == 0 {
			return forwarded, nil
		}

		// The API pages newest-first; the archive replays oldest-first.
		sort.Slice(page, func(i, j int) bool { return page[i].ID < page[j].ID })

		for _, msg := range page {
			afterID = msg.ID

			out := forwardableContent(msg)
			if out == "" {
				continue
			}
			if err := r.Forward.Forward(out); err != nil {
				return forwarded, fmt.Errorf("forward message %s: %w", msg.ID, err)
			}
			forwarded++

			if uerr := r.State.Update(sourceID, func(st *SourceState) {
				st.LastMessageID = msg.ID
			}); uerr != nil {
				log.Printf("Could not persist archive position for %s: %v", sourceID, uerr)
			}

			if forwarded%ProgressInterval == 0 {
				r.logf(logChannelID,
					"ArchiveForward PROGRESS\nOperator: %s\nSource: %s\nWebhook: %s\nForwarded: %d\nLast message_id: %s",
					operatorID, sourceID, webhookFP, forwarded, msg.ID)
			}
		}
	}
}

func orNone(s string) string {
	if s == "" {
		return "None"
	}
	return s
}

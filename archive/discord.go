package archive

import (
	"fmt"
	"regexp"

	"github.com/bwmarrin/discordgo"
)

var webhookURLPattern = regexp.MustCompile(`discord(?:app)?\.com/api/(?:v\d+/)?webhooks/(\d+)/([\w-]+)`)

// ParseWebhookURL extracts the webhook ID and token from a Discord webhook
// URL.
func ParseWebhookURL(url string) (id, token string, err error) {
	m := webhookURLPattern.FindStringSubmatch(url)
	if m == nil {
		return "", "", fmt.Errorf("not a Discord webhook URL")
	}
	return m[1], m[2], nil
}

// WebhookForwarder delivers forwarded messages through a Discord webhook,
// with all mentions suppressed so the replay never pings anyone.
type WebhookForwarder struct {
	Session *discordgo.Session
	ID      string
	Token   string
}

// NewWebhookForwarder builds a WebhookForwarder from a webhook URL.
func NewWebhookForwarder(s *discordgo.Session, url string) (*WebhookForwarder, error) {
	id, token, err := ParseWebhookURL(url)
	if err != nil {
		return nil, err
	}
	return &WebhookForwarder{Session: s, ID: id, Token: token}, nil
}

func (w *WebhookForwarder) Forward(content string) error {
	_, err := w.Session.WebhookExecute(w.ID, w.Token, true, &discordgo.WebhookParams{
		Content:         content,
		AllowedMentions: &discordgo.MessageAllowedMentions{},
	})
	return err
}

// SessionSender posts log lines through the bot session.
type SessionSender struct {
	Session *discordgo.Session
}

func (s *SessionSender) SendMessage(channelID, content string) error {
	_, err := s.Session.ChannelMessageSend(channelID, content)
	return err
}

// SessionHistory adapts *discordgo.Session to the History interface.
type SessionHistory struct {
	Session *discordgo.Session
}

func (h *SessionHistory) MessagesAfter(channelID, afterID string, limit int) ([]*discordgo.Message, error) {
	return h.Session.ChannelMessages(channelID, limit, "", afterID, "")
}

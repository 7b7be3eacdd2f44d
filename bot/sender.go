package bot

import "github.com/bwmarrin/discordgo"

// sessionSender adapts *discordgo.Session to the Sender interfaces the
// autopost scheduler and reminder dispatcher expect.
type sessionSender struct {
	s *discordgo.Session
}

func (ss *sessionSender) SendMessage(channelID, content string) error {
	_, err := ss.s.ChannelMessageSend(channelID, content)
	return err
}

func (ss *sessionSender) SendDM(userID, content string) error {
	ch, err := ss.s.UserChannelCreate(userID)
	if err != nil {
		return err
	}
	_, err = ss.s.ChannelMessageSend(ch.ID, content)
	return err
}

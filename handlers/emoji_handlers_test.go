package handlers

import (
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func TestRenderEmojiTags(t *testing.T) {
	t.Parallel()

	emojis := []*discordgo.Emoji{
		{ID: "111", Name: "raccoon"},
		{ID: "222", Name: "raccoon_dance", Animated: true},
		{ID: "333", Name: "clover"},
	}

	all := renderEmojiTags(emojis, "")
	assert.Contains(t, all, "<:raccoon:111>")
	assert.Contains(t, all, "<a:raccoon_dance:222>")
	assert.Contains(t, all, "<:clover:333>")

	filtered := renderEmojiTags(emojis, "RACCOON")
	assert.Contains(t, filtered, "<:raccoon:111>")
	assert.Contains(t, filtered, "<a:raccoon_dance:222>")
	assert.NotContains(t, filtered, "clover")

	assert.Equal(t, "(none)", renderEmojiTags(emojis, "owl"))
	assert.Equal(t, "(none)", renderEmojiTags(nil, ""))
}

func TestRenderEmojiTagsTruncatesLongLists(t *testing.T) {
	t.Parallel()

	var emojis []*discordgo.Emoji
	for i := 0; i < 300; i++ {
		emojis = append(emojis, &discordgo.Emoji{ID: "1234567890", Name: "very_long_emoji_name"})
	}

	out := renderEmojiTags(emojis, "")
	assert.True(t, strings.HasSuffix(out, "… (truncated)"))
	assert.Less(t, len(out), 2000)
}

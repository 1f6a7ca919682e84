package triage

import (
	"strings"
	"unicode/utf16"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Directed reports whether a group message is addressed to the bot:
// either an explicit @mention entity equal to the bot's handle, or a
// reply to one of the bot's own messages. Substring hits outside a
// mention entity do not count. Private messages never reach this check.
func Directed(msg *tgbotapi.Message, botHandle string, botID int64) bool {
	if msg == nil {
		return false
	}
	if msg.ReplyToMessage != nil && msg.ReplyToMessage.From != nil && msg.ReplyToMessage.From.ID == botID {
		return true
	}
	want := "@" + botHandle
	for _, e := range msg.Entities {
		if e.Type != "mention" {
			continue
		}
		if strings.EqualFold(entityText(msg.Text, e.Offset, e.Length), want) {
			return true
		}
	}
	return false
}

// entityText slices a message by entity span. Telegram entity offsets
// count UTF-16 code units, not bytes or runes.
func entityText(text string, offset, length int) string {
	u := utf16.Encode([]rune(text))
	if offset < 0 || length < 0 || offset+length > len(u) {
		return ""
	}
	return string(utf16.Decode(u[offset : offset+length]))
}

package telegram

import (
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"lensbot/internal/history"
)

const greeting = "👁 Привет! Я эксперт по объективам, оптике, камерам и фотографии.\n" +
	"Задавай вопросы — отвечу чётко и без лишней воды.\n\n" +
	"/reset — сбросить историю диалога"

const resetReply = "История сброшена. Начнём заново."

func (b *Bot) handleCommand(msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		b.send(msg.Chat.ID, 0, greeting)
	case "reset":
		key := conversationKey(msg)
		b.history.Reset(key)
		log.Printf("History reset for %s", key)
		b.send(msg.Chat.ID, 0, resetReply)
	}
}

// conversationKey maps a chat message to its history bucket: group
// chats share one buffer, private dialogs are per user.
func conversationKey(msg *tgbotapi.Message) history.Key {
	if msg.Chat.IsGroup() || msg.Chat.IsSuperGroup() {
		return history.Group(msg.Chat.ID)
	}
	return history.Private(msg.From.ID)
}

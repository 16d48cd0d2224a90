package service

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// TelegramNotifier delivers messages to one fixed Telegram chat.
// Delivery is best effort: a failed send is logged and swallowed so it
// can never break the poll loop.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegramNotifier creates a TelegramNotifier bound to the given chat.
func NewTelegramNotifier(bot *tgbotapi.BotAPI, chatID int64) *TelegramNotifier {
	return &TelegramNotifier{bot: bot, chatID: chatID}
}

// SendMessage sends the text to the configured chat.
func (n *TelegramNotifier) SendMessage(text string) {
	msg := tgbotapi.NewMessage(n.chatID, text)
	if _, err := n.bot.Send(msg); err != nil {
		logrus.Errorf("Failed to send message to chat %d: %v", n.chatID, err)
		return
	}
	logrus.Debugf("Message sent to chat %d: %s", n.chatID, text)
}

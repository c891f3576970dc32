package notifier

import (
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/amehta/fight-events/internal/event"
)

// TelegramNotifier posts event announcements to a Telegram chat
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegramNotifier creates a Telegram notifier for the given bot token and
// chat ID.
func NewTelegramNotifier(token string, chatID int64) (*TelegramNotifier, error) {
	if token == "" || chatID == 0 {
		return nil, fmt.Errorf("missing Telegram bot token or chat ID")
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("creating Telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID}, nil
}

// Notify sends one message per event
func (n *TelegramNotifier) Notify(events []*event.Event) error {
	for i, evt := range events {
		msg := tgbotapi.NewMessage(n.chatID, formatMessage(evt))
		if _, err := n.bot.Send(msg); err != nil {
			return fmt.Errorf("sending message for event %s: %w", evt.ID, err)
		}

		// Rate limiting: wait between messages
		if i < len(events)-1 {
			time.Sleep(time.Second)
		}
	}
	return nil
}

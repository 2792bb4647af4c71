package notify

import (
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/example/skool/internal/scheduler"
)

// TelegramNotifier sends review reminders to a parent's Telegram chat.
type TelegramNotifier struct {
	api *tgbotapi.BotAPI
}

// NewTelegramNotifier creates a notifier with the given bot token.
func NewTelegramNotifier(token string) (*TelegramNotifier, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %v", err)
	}
	return &TelegramNotifier{api: api}, nil
}

// SendReminder implements scheduler.Notifier.
func (n *TelegramNotifier) SendReminder(r scheduler.Reminder) error {
	text := fmt.Sprintf("%s has %d character(s) ready for review today!", r.User.Name, r.DueItems)
	if r.DueItems == 0 {
		text = fmt.Sprintf("%s hasn't played yet today.", r.User.Name)
	}
	if r.StreakAtRisk {
		text += fmt.Sprintf(" Their %d-day streak ends unless they play today. 🔥", r.User.Streak)
	}

	msg := tgbotapi.NewMessage(r.User.ParentChatID, text)
	if _, err := n.api.Send(msg); err != nil {
		log.Printf("Error sending reminder for user %d: %v", r.User.ID, err)
		return err
	}
	log.Printf("Sent reminder for user %d (%d due)", r.User.ID, r.DueItems)
	return nil
}

package notifier

import (
	"net/http"
	"time"

	tele "gopkg.in/telebot.v4"

	"techbbswatcher/logger"
	"techbbswatcher/pkg/errors"
)

// TelegramNotifier delivers alerts through the Telegram bot API
type TelegramNotifier struct {
	bot  *tele.Bot
	chat tele.ChatID
	log  *logger.Logger
}

// NewTelegramNotifier creates a notifier for the given bot token and chat.
// The bot is send-only; no update polling is started.
func NewTelegramNotifier(token string, chatID int64, timeout time.Duration) (*TelegramNotifier, error) {
	bot, err := tele.NewBot(tele.Settings{
		Token:  token,
		Client: &http.Client{Timeout: timeout},
	})
	if err != nil {
		return nil, errors.NewConfiguration("failed to initialize telegram bot", err)
	}

	return &TelegramNotifier{
		bot:  bot,
		chat: tele.ChatID(chatID),
		log:  logger.ForComponent("notifier"),
	}, nil
}

// Send delivers one alert message
func (n *TelegramNotifier) Send(alert Alert) error {
	text := FormatAlert(alert)

	_, err := n.bot.Send(n.chat, text, &tele.SendOptions{
		ParseMode:             tele.ModeMarkdown,
		DisableWebPagePreview: true,
	})
	if err != nil {
		return errors.NewNotification("telegram", "failed to send alert for thread "+alert.Listing.ID, err)
	}

	n.log.Info().
		Str("thread", alert.Listing.ID).
		Str("keyword", alert.Listing.Keyword).
		Msg("Alert sent")
	return nil
}

// Close releases transport resources
func (n *TelegramNotifier) Close() error {
	return nil
}

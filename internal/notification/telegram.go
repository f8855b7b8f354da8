package notification

import (
	"context"
	"fmt"
	"strings"

	"github.com/anderssondelao/eventos-locales-app/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, announcements disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) AnnounceEvent(ctx context.Context, event *domain.Event) {
	n.send(ctx, FormatAnnouncement(event))
}

// FormatAnnouncement renders the event the way the listing card shows it.
// User supplied values are escaped for Telegram Markdown.
func FormatAnnouncement(event *domain.Event) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*Nuevo evento cerca de ti!*\n\n%s\n", escape(event.Title))
	fmt.Fprintf(&b, "Lugar: %s\n", escape(event.Place))
	fmt.Fprintf(&b, "Fecha: %s\n", escape(event.Date))
	if event.Category != "" {
		fmt.Fprintf(&b, "Categoría: %s\n", escape(string(event.Category)))
	}
	if event.Kind == domain.EventKindPaid {
		fmt.Fprintf(&b, "PAGO - $%s", escape(event.Price))
	} else {
		b.WriteString("GRATIS")
	}

	return b.String()
}

func escape(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("announcement skipped (bot disabled)", logger.String("text", text))
		return
	}

	if n.chatID == 0 {
		n.logger.Debug("announcement skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("announcement skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram announcement",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}

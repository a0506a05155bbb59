package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joshishrau/FacilityFlow/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// TelegramSender delivers outbox notifications to users who registered a
// chat id. Users without one are skipped successfully: the core only
// guarantees the event exists, delivery channels are best effort.
type TelegramSender struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramSender(token string, logger logger.Logger) (*TelegramSender, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, external delivery disabled")
		return &TelegramSender{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramSender{bot: bot, logger: logger}, nil
}

func (s *TelegramSender) Send(ctx context.Context, user *domain.User, message string) error {
	if s.bot == nil {
		s.logger.Debug("delivery skipped (bot disabled)",
			logger.String("uid", user.UID),
		)
		return nil
	}

	if user.TelegramChatID == nil {
		s.logger.Debug("delivery skipped (no chat_id)",
			logger.String("uid", user.UID),
		)
		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(*user.TelegramChatID, message)
	if _, err := s.bot.Send(msg); err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}
	return nil
}

package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/EventApproval/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const timeLayout = "02.01.2006 15:04"

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyStatusChanged(ctx context.Context, user *domain.User, event *domain.Event) {
	n.send(ctx, user.TelegramChatID, statusChangedText(event))
}

func (n *TelegramNotifier) NotifyAllocationRejected(
	ctx context.Context, user *domain.User, event *domain.Event, reason *domain.AllocationError,
) {
	n.send(ctx, user.TelegramChatID, allocationRejectedText(event, reason))
}

func statusChangedText(event *domain.Event) string {
	text := fmt.Sprintf(
		"*Event status changed*\n\n"+"Event: %s\n"+"Status: %s\n"+"When (UTC): %s - %s",
		tgbotapi.EscapeText(tgbotapi.ModeMarkdown, event.Title),
		escapeStatus(event.Status),
		event.StartTime.UTC().Format(timeLayout),
		event.EndTime.UTC().Format(timeLayout),
	)
	if event.Status == domain.StatusRejected && event.RejectionReason != nil {
		text += "\nReason: " + tgbotapi.EscapeText(tgbotapi.ModeMarkdown, *event.RejectionReason)
	}
	return text
}

func allocationRejectedText(event *domain.Event, reason *domain.AllocationError) string {
	return fmt.Sprintf(
		"*Final approval refused*\n\n"+"Event: %s\n"+"Reason: %s\n"+"The event stays %s.",
		tgbotapi.EscapeText(tgbotapi.ModeMarkdown, event.Title),
		tgbotapi.EscapeText(tgbotapi.ModeMarkdown, reason.Error()),
		escapeStatus(event.Status),
	)
}

func escapeStatus(s domain.EventStatus) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, string(s))
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}

// Package notifier forwards ledger events to a Telegram chat. Events are
// observability-only; losing one never affects the ledger.
package notifier

import (
	"context"
	"fmt"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	"charity_token/internal/domain/entity"
	"charity_token/pkg/contextx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type TelegramBot struct {
	bot    *telego.Bot
	chatID int64
}

func NewTelegramBot(token string, chatID int64) (*TelegramBot, error) {
	bot, err := telego.NewBot(token)
	if err != nil {
		return nil, fmt.Errorf("create bot: %w", err)
	}

	return &TelegramBot{
		bot:    bot,
		chatID: chatID,
	}, nil
}

// Run consumes notifications until the channel closes or the context ends.
func (b *TelegramBot) Run(ctx context.Context, notifications <-chan entity.Notification) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case n, ok := <-notifications:
			if !ok {
				return nil
			}
			if err := b.Send(ctx, n); err != nil {
				logger(ctx).Error("failed to send notification", "error", err)
			}
		}
	}
}

func (b *TelegramBot) Send(ctx context.Context, n entity.Notification) error {
	var text string

	switch n.Kind {
	case entity.NotificationTokensSent:
		text = fmt.Sprintf(
			"💸 <b>Tokens sent</b>\n\n"+
				"👤 <b>Recipient:</b> %s\n"+
				"🪙 <b>Tokens:</b> %d",
			n.Recipient, n.Tokens,
		)
	case entity.NotificationBasisRateChange:
		text = fmt.Sprintf(
			"⚖️ <b>Basis rate changed</b>\n\n"+
				"🔢 <b>New rate:</b> %d",
			n.NewRate,
		)
	case entity.NotificationTokensRedeem:
		text = fmt.Sprintf(
			"🎁 <b>Tokens redeemed</b>\n\n"+
				"🪙 <b>Price:</b> %d\n"+
				"📦 <b>Gift:</b> %s",
			n.Price, n.Description,
		)
	default:
		return fmt.Errorf("unknown notification kind: %s", n.Kind)
	}

	msg := tu.Message(
		tu.ID(b.chatID),
		text,
	).WithParseMode(telego.ModeHTML)

	if _, err := b.bot.SendMessage(ctx, msg); err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	return nil
}

// SendText sends a plain text message.
func (b *TelegramBot) SendText(ctx context.Context, text string) error {
	msg := tu.Message(tu.ID(b.chatID), text)

	_, err := b.bot.SendMessage(ctx, msg)
	return err
}

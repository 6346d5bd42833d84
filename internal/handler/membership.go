package handler

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/study-room/studybot/internal/middleware"
	tg "github.com/study-room/studybot/internal/telegram"
)

// handleCheckMembership re-probes the channel when the user presses the
// re-check button after joining.
func (h *Handler) handleCheckMembership(ctx context.Context, b *bot.Bot, update *models.Update) {
	cb := update.CallbackQuery
	if cb == nil || cb.Message.Message == nil {
		return
	}
	chatID := cb.Message.Message.Chat.ID

	if !middleware.IsChannelMember(ctx, b, h.cfg.MustJoinChannel, cb.From.ID) {
		h.answer(ctx, b, cb.ID, "❌ Please join the channel first!")
		return
	}

	h.answer(ctx, b, cb.ID, "✅ Membership verified!")
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        "✅ Welcome! You can now use the bot.",
		ReplyMarkup: tg.MainMenu(),
	})
}

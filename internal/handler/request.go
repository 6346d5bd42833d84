package handler

import (
	"context"
	"errors"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/study-room/studybot/internal/domain"
	tg "github.com/study-room/studybot/internal/telegram"
)

const requestFormText = `📋 Request Study Materials

Please provide the following information:
Format: Subject Name | Branch | Regulation | Type (notes/paper) | Description

Example: Data Structures | CSE | R18 | notes | Need complete notes for exam`

func (h *Handler) startRequest(ctx context.Context, b *bot.Bot, chatID int64) {
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   requestFormText,
	})
	h.dialogs.Put(chatID, domain.NewRequestDialog())
}

// submitRequest parses the form reply the open request dialog was waiting
// for. A malformed reply ends the dialog without saving; the user starts
// over from the menu.
func (h *Handler) submitRequest(ctx context.Context, b *bot.Bot, update *models.Update, text string) {
	chatID := update.Message.Chat.ID

	req, err := domain.ParseRequest(text)
	if err != nil {
		if errors.Is(err, domain.ErrBadRequestFormat) {
			b.SendMessage(ctx, &bot.SendMessageParams{
				ChatID: chatID,
				Text:   "❌ Invalid format. Please use: Subject | Branch | Regulation | Type | Description",
			})
			return
		}
		slog.Error("parse request", "error", err)
		return
	}

	if from := update.Message.From; from != nil {
		req.UserID = from.ID
		req.Username = from.Username
		req.FirstName = from.FirstName
	}

	if err := h.requests.Save(ctx, req); err != nil {
		slog.Error("save request", "error", err, "chat_id", chatID)
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "❌ Error submitting your request. Please try again.",
		})
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   "✅ Your request has been submitted! Admins will review it soon.",
	})

	tg.NotifyAdmins(ctx, b, h.cfg.AdminIDs, 0,
		"📋 New file request from "+requesterName(update)+":\n\n"+text)
}

func requesterName(update *models.Update) string {
	from := update.Message.From
	if from == nil {
		return "unknown"
	}
	if from.Username != "" {
		return "@" + from.Username
	}
	return from.FirstName
}

package handler

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	tg "github.com/study-room/studybot/internal/telegram"
)

const welcomeText = `🎓 Welcome to JNTUH Student Helper Bot!

I can help you with:
📚 Find Notes by Subject
📝 Find Previous Papers
📋 Request Study Materials
🔍 Search by Branch & Regulation

Use the menu below to get started!`

func (h *Handler) handleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	// Registration happened in the user loader; a fresh /start also clears
	// any dialog left over from before.
	h.dialogs.Remove(update.Message.Chat.ID)

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      update.Message.Chat.ID,
		Text:        welcomeText,
		ReplyMarkup: tg.MainMenu(),
	})
}

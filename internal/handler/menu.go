package handler

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/study-room/studybot/internal/domain"
	"github.com/study-room/studybot/internal/middleware"
	tg "github.com/study-room/studybot/internal/telegram"
)

// HandleText routes a plain text message: an open dialog consumes it first,
// otherwise it is matched against the main menu.
func (h *Handler) HandleText(ctx context.Context, b *bot.Bot, update *models.Update) {
	msg := update.Message
	if msg == nil || msg.From == nil || strings.HasPrefix(msg.Text, "/") {
		return
	}

	chatID := msg.Chat.ID
	text := msg.Text

	if d, ok := h.dialogs.Get(chatID); ok {
		switch d.Kind {
		case domain.DialogSearch:
			h.dialogs.Remove(chatID)
			h.runSearch(ctx, b, chatID, text, d.SearchType)
		case domain.DialogRequest:
			h.dialogs.Remove(chatID)
			h.submitRequest(ctx, b, update, text)
		case domain.DialogUpload:
			h.continueUpload(ctx, b, chatID, msg.From.ID, text)
		}
		return
	}

	switch text {
	case tg.MenuFindNotes:
		h.startSearch(ctx, b, chatID, domain.FileTypeNotes)
	case tg.MenuFindPapers:
		h.startSearch(ctx, b, chatID, domain.FileTypePaper)
	case tg.MenuRequestFiles:
		h.startRequest(ctx, b, chatID)
	case tg.MenuBrowseBranch:
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:      chatID,
			Text:        "Select your branch:",
			ReplyMarkup: tg.BrowseBranchKeyboard(),
		})
	case tg.MenuFileStatus:
		h.showFileStatus(ctx, b, chatID)
	case tg.MenuBotUsers:
		if user := middleware.GetUser(ctx); user != nil && h.cfg.IsAdmin(user.TelegramID) {
			h.showAllUsers(ctx, b, chatID)
		} else {
			h.showUserStats(ctx, b, chatID, update.Message.From.ID)
		}
	case tg.MenuHelp:
		h.showHelp(ctx, b, chatID)
	}
}

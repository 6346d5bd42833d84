package handler

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/study-room/studybot/internal/config"
	"github.com/study-room/studybot/internal/domain"
	tg "github.com/study-room/studybot/internal/telegram"
)

// handleToggleBranch flips one branch in the multi-select and re-renders the
// selector message in place.
func (h *Handler) handleToggleBranch(ctx context.Context, b *bot.Bot, update *models.Update) {
	cb := update.CallbackQuery
	if cb == nil || cb.Message.Message == nil {
		return
	}

	code := strings.TrimPrefix(cb.Data, tg.CallbackToggleBranch)
	if !config.IsKnownBranch(code) {
		h.answer(ctx, b, cb.ID, "")
		return
	}

	chatID := cb.Message.Message.Chat.ID

	var selected, active bool
	var text string
	var markup *models.InlineKeyboardMarkup
	h.dialogs.Update(chatID, func(d *domain.Dialog) {
		if !d.InBranchSelection() {
			return
		}
		active = true
		selected = d.ToggleBranch(code)
		text = branchSelectorText(d)
		markup = tg.BranchSelectKeyboard(d)
	})
	if !active {
		h.answer(ctx, b, cb.ID, "")
		return
	}

	if selected {
		h.answer(ctx, b, cb.ID, "✅ Added "+code)
	} else {
		h.answer(ctx, b, cb.ID, "❌ Removed "+code)
	}
	h.editSelector(ctx, b, chatID, cb.Message.Message.ID, text, markup)
}

func (h *Handler) handleSelectAllBranches(ctx context.Context, b *bot.Bot, update *models.Update) {
	cb := update.CallbackQuery
	if cb == nil || cb.Message.Message == nil {
		return
	}
	chatID := cb.Message.Message.Chat.ID

	var active bool
	var text string
	var markup *models.InlineKeyboardMarkup
	h.dialogs.Update(chatID, func(d *domain.Dialog) {
		if !d.InBranchSelection() {
			return
		}
		active = true
		d.SelectAllBranches(config.Branches)
		text = branchSelectorText(d)
		markup = tg.BranchSelectKeyboard(d)
	})
	if !active {
		h.answer(ctx, b, cb.ID, "")
		return
	}

	h.answer(ctx, b, cb.ID, "✅ All branches selected!")
	h.editSelector(ctx, b, chatID, cb.Message.Message.ID, text, markup)
}

func (h *Handler) handleClearAllBranches(ctx context.Context, b *bot.Bot, update *models.Update) {
	cb := update.CallbackQuery
	if cb == nil || cb.Message.Message == nil {
		return
	}
	chatID := cb.Message.Message.Chat.ID

	var active bool
	var text string
	var markup *models.InlineKeyboardMarkup
	h.dialogs.Update(chatID, func(d *domain.Dialog) {
		if !d.InBranchSelection() {
			return
		}
		active = true
		d.ClearBranches()
		text = branchSelectorText(d)
		markup = tg.BranchSelectKeyboard(d)
	})
	if !active {
		h.answer(ctx, b, cb.ID, "")
		return
	}

	h.answer(ctx, b, cb.ID, "❌ All branches cleared!")
	h.editSelector(ctx, b, chatID, cb.Message.Message.ID, text, markup)
}

// handleConfirmBranches advances the upload past the sub-dialog. An empty
// selection is refused and the dialog stays where it is.
func (h *Handler) handleConfirmBranches(ctx context.Context, b *bot.Bot, update *models.Update) {
	cb := update.CallbackQuery
	if cb == nil || cb.Message.Message == nil {
		return
	}
	chatID := cb.Message.Message.Chat.ID

	var active bool
	var confirmErr error
	var selection string
	h.dialogs.Update(chatID, func(d *domain.Dialog) {
		if !d.InBranchSelection() {
			return
		}
		active = true
		confirmErr = d.ConfirmBranches()
		selection = d.SelectionLabel()
	})
	if !active {
		h.answer(ctx, b, cb.ID, "")
		return
	}

	if confirmErr != nil {
		h.answer(ctx, b, cb.ID, "❌ Please select at least one branch!")
		return
	}

	h.answer(ctx, b, cb.ID, "✅ Branch selection confirmed!")
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   fmt.Sprintf("✅ Selected branches: %s\n\nStep 3/4: Enter Regulation\nExample: R18, R16, R15, R13", selection),
	})
}

// handleBrowseBranch lists the files tagged with the chosen branch and
// delivers them, counting each successful send as a download.
func (h *Handler) handleBrowseBranch(ctx context.Context, b *bot.Bot, update *models.Update) {
	cb := update.CallbackQuery
	if cb == nil || cb.Message.Message == nil {
		return
	}
	h.answer(ctx, b, cb.ID, "")

	code := strings.TrimPrefix(cb.Data, tg.CallbackBrowseBranch)
	chatID := cb.Message.Message.Chat.ID

	files, err := h.catalog.ListByBranch(ctx, code)
	if err != nil {
		slog.Error("list by branch", "error", err, "branch", code)
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "❌ Error fetching files. Please try again.",
		})
		return
	}

	if len(files) == 0 {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   fmt.Sprintf("❌ No files found for %s branch.", code),
		})
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   fmt.Sprintf("📚 Files for %s branch:", code),
	})

	tg.DeliverFiles(ctx, b, chatID, files, browseCaption, func(f domain.File) {
		if err := h.catalog.RecordDownload(ctx, f.ID); err != nil {
			slog.Error("record download", "error", err, "file_id", f.ID)
		}
	})
}

func browseCaption(f domain.File) string {
	return fmt.Sprintf("📄 %s\n🎓 %s\n🏢 %s\n📅 %s", f.FileName, f.Subject, f.BranchLabel(), f.Regulation)
}

func (h *Handler) answer(ctx context.Context, b *bot.Bot, callbackID, text string) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
	})
}

// editSelector rewrites the multi-select message in place so the chat is not
// flooded with one message per toggle.
func (h *Handler) editSelector(ctx context.Context, b *bot.Bot, chatID int64, messageID int, text string, markup *models.InlineKeyboardMarkup) {
	_, err := b.EditMessageText(ctx, &bot.EditMessageTextParams{
		ChatID:      chatID,
		MessageID:   messageID,
		Text:        text,
		ReplyMarkup: markup,
	})
	if err != nil {
		slog.Warn("edit selector message", "error", err, "chat_id", chatID)
	}
}

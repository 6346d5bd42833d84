package handler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/study-room/studybot/internal/domain"
	tg "github.com/study-room/studybot/internal/telegram"
)

// HandleDocument starts the guided upload when an admin sends a document.
// A document from anyone else is rejected and no dialog is created.
func (h *Handler) HandleDocument(ctx context.Context, b *bot.Bot, update *models.Update) {
	msg := update.Message
	if msg == nil || msg.Document == nil || msg.From == nil {
		return
	}

	chatID := msg.Chat.ID

	if !h.cfg.IsAdmin(msg.From.ID) {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "❌ Only admins can upload files.",
		})
		return
	}

	// A new document replaces whatever dialog was in flight for this chat.
	if d, ok := h.dialogs.Get(chatID); ok && d.Kind == domain.DialogUpload {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "⚠️ Previous upload discarded; starting over with the new file.",
		})
	}

	h.dialogs.Put(chatID, domain.NewUploadDialog(msg.Document.FileID, msg.Document.FileName))

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text: fmt.Sprintf("📁 File received: %s\n\nPlease provide the following details:\n\nStep 1/4: Enter Subject Name\nExample: Data Structures, Operating Systems",
			msg.Document.FileName),
	})
}

// continueUpload feeds one text reply into the open upload dialog. The
// transition runs under the store lock; the follow-up message is decided by
// the step the dialog landed on. A dialog that reaches the final step is
// consumed inside the same critical section, so a second text racing in can
// never see the finished state and save the record twice.
func (h *Handler) continueUpload(ctx context.Context, b *bot.Bot, chatID, senderID int64, text string) {
	var step domain.UploadStep
	var selector string
	var markup *models.InlineKeyboardMarkup
	var file *domain.File

	ok := h.dialogs.Complete(chatID, func(d *domain.Dialog) bool {
		switch d.Step {
		case domain.StepSubject:
			d.SetSubject(text)
		case domain.StepBranches:
			// Stray text during the multi-select: leave the selection alone
			// and re-display the keyboard below.
		case domain.StepRegulation:
			d.SetRegulation(text)
		case domain.StepType:
			d.SetType(text)
		}
		step = d.Step
		if step == domain.StepBranches {
			selector = branchSelectorText(d)
			markup = tg.BranchSelectKeyboard(d)
		}
		if step == domain.StepDone {
			file = d.File(senderID)
			return true
		}
		return false
	})
	if !ok {
		return
	}

	switch step {
	case domain.StepBranches:
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:      chatID,
			Text:        selector,
			ReplyMarkup: markup,
		})
	case domain.StepType:
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "Step 4/4: Enter Type\nChoose: notes or paper",
		})
	case domain.StepDone:
		h.finishUpload(ctx, b, chatID, file)
	}
}

// finishUpload persists the assembled record. The dialog was already consumed
// under the store lock; a failed save is not retried.
func (h *Handler) finishUpload(ctx context.Context, b *bot.Bot, chatID int64, file *domain.File) {
	if err := h.catalog.SaveFile(ctx, file); err != nil {
		slog.Error("save file", "error", err, "chat_id", chatID)
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "❌ Error uploading file. Please try again.",
		})
		return
	}

	summary := fmt.Sprintf("✅ File uploaded successfully!\n\n📄 File: %s\n🎓 Subject: %s\n🏢 Branches: %s\n📅 Regulation: %s\n📝 Type: %s",
		file.FileName, file.Subject, file.BranchLabel(), file.Regulation, file.Type)

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   summary,
	})

	tg.NotifyAdmins(ctx, b, h.cfg.AdminIDs, file.UploadedBy,
		"📤 New file uploaded by admin:\n\n"+summary)
}

func branchSelectorText(d *domain.Dialog) string {
	return fmt.Sprintf("Step 2/4: Select Branch(es)\n\nChoose one or multiple branches for this file:\n\nSelected: %s",
		d.SelectionLabel())
}

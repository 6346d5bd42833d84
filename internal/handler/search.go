package handler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-telegram/bot"

	"github.com/study-room/studybot/internal/domain"
	tg "github.com/study-room/studybot/internal/telegram"
)

func (h *Handler) startSearch(ctx context.Context, b *bot.Bot, chatID int64, kind domain.FileType) {
	label := "Notes"
	if kind == domain.FileTypePaper {
		label = "Papers"
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   fmt.Sprintf("🔍 Search for %s\n\nPlease enter the subject name:", label),
	})
	h.dialogs.Put(chatID, domain.NewSearchDialog(kind))
}

// runSearch executes the query the open search dialog was waiting for and
// delivers every match. The dialog has already been closed by the caller.
func (h *Handler) runSearch(ctx context.Context, b *bot.Bot, chatID int64, query string, kind domain.FileType) {
	files, err := h.catalog.SearchByKindAndSubject(ctx, kind, query)
	if err != nil {
		slog.Error("search catalog", "error", err, "query", query)
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "❌ Error searching the catalog. Please try again.",
		})
		return
	}

	if len(files) == 0 {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   fmt.Sprintf("❌ No %s found for %q. Try requesting it using 📋 Request Files.", kind, query),
		})
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   fmt.Sprintf("📚 Found %d %s for %q:", len(files), kind, query),
	})

	tg.DeliverFiles(ctx, b, chatID, files, searchCaption, func(f domain.File) {
		// Two independent increments; a lost update under concurrent
		// downloads is tolerated.
		if err := h.catalog.RecordDownload(ctx, f.ID); err != nil {
			slog.Error("record download", "error", err, "file_id", f.ID)
		}
		if err := h.users.IncrementDownloads(ctx, chatID); err != nil {
			slog.Error("record user download", "error", err, "chat_id", chatID)
		}
	})
}

func searchCaption(f domain.File) string {
	return fmt.Sprintf("📄 %s\n🎓 Subject: %s\n🏢 Branches: %s\n📅 Regulation: %s\n📥 Downloads: %d",
		f.FileName, f.Subject, f.BranchLabel(), f.Regulation, f.Downloads)
}

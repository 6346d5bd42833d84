package telegram

import (
	"context"
	"log/slog"
	"sync"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/study-room/studybot/internal/domain"
)

// Sender is the subset of the bot API used for outbound delivery. *bot.Bot
// satisfies it; tests substitute a fake.
type Sender interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
	SendDocument(ctx context.Context, params *bot.SendDocumentParams) (*models.Message, error)
}

// DeliverFiles sends each catalog file to the chat as a document with a
// caption. A failure on one file is reported to the chat and logged but does
// not stop delivery of the rest. onSent runs after each successful send.
// Returns the number of files delivered.
func DeliverFiles(ctx context.Context, s Sender, chatID int64, files []domain.File, caption func(domain.File) string, onSent func(domain.File)) int {
	sent := 0
	for _, f := range files {
		_, err := s.SendDocument(ctx, &bot.SendDocumentParams{
			ChatID:   chatID,
			Document: &models.InputFileString{Data: f.FileID},
			Caption:  caption(f),
		})
		if err != nil {
			slog.Error("send document", "error", err, "file", f.FileName, "chat_id", chatID)
			s.SendMessage(ctx, &bot.SendMessageParams{
				ChatID: chatID,
				Text:   "❌ Error sending file: " + f.FileName,
			})
			continue
		}
		sent++
		if onSent != nil {
			onSent(f)
		}
	}
	return sent
}

// NotifyAdmins fans text out to every admin except exclude, one goroutine per
// recipient so a single unreachable admin cannot delay the others. Delivery
// failures are logged and swallowed.
func NotifyAdmins(ctx context.Context, s Sender, adminIDs []int64, exclude int64, text string) {
	var wg sync.WaitGroup
	for _, id := range adminIDs {
		if id == exclude {
			continue
		}
		wg.Add(1)
		go func(adminID int64) {
			defer wg.Done()
			_, err := s.SendMessage(ctx, &bot.SendMessageParams{
				ChatID: adminID,
				Text:   text,
			})
			if err != nil {
				slog.Error("notify admin", "error", err, "admin_id", adminID)
			}
		}(id)
	}
	wg.Wait()
}

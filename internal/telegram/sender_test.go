package telegram

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/study-room/studybot/internal/domain"
)

type fakeSender struct {
	mu        sync.Mutex
	messages  []*bot.SendMessageParams
	documents []*bot.SendDocumentParams
	failDocs  map[string]error
	failMsgs  map[int64]error
}

func (f *fakeSender) SendMessage(_ context.Context, p *bot.SendMessageParams) (*models.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, p)
	if id, ok := p.ChatID.(int64); ok {
		if err := f.failMsgs[id]; err != nil {
			return nil, err
		}
	}
	return &models.Message{}, nil
}

func (f *fakeSender) SendDocument(_ context.Context, p *bot.SendDocumentParams) (*models.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.documents = append(f.documents, p)
	if doc, ok := p.Document.(*models.InputFileString); ok {
		if err := f.failDocs[doc.Data]; err != nil {
			return nil, err
		}
	}
	return &models.Message{}, nil
}

func TestDeliverFilesContinuesPastFailure(t *testing.T) {
	sender := &fakeSender{
		failDocs: map[string]error{"id-2": errors.New("file is gone")},
	}
	files := []domain.File{
		{FileID: "id-1", FileName: "a.pdf"},
		{FileID: "id-2", FileName: "b.pdf"},
		{FileID: "id-3", FileName: "c.pdf"},
	}

	var delivered []string
	sent := DeliverFiles(context.Background(), sender, 10, files,
		func(f domain.File) string { return f.FileName },
		func(f domain.File) { delivered = append(delivered, f.FileID) })

	assert.Equal(t, 2, sent)
	assert.Equal(t, []string{"id-1", "id-3"}, delivered)
	assert.Len(t, sender.documents, 3)

	require.Len(t, sender.messages, 1)
	assert.Equal(t, "❌ Error sending file: b.pdf", sender.messages[0].Text)
}

func TestDeliverFilesNilOnSent(t *testing.T) {
	sender := &fakeSender{}
	files := []domain.File{{FileID: "id-1", FileName: "a.pdf"}}

	sent := DeliverFiles(context.Background(), sender, 10, files,
		func(f domain.File) string { return f.FileName }, nil)

	assert.Equal(t, 1, sent)
}

func TestNotifyAdminsExcludesSender(t *testing.T) {
	sender := &fakeSender{}

	NotifyAdmins(context.Background(), sender, []int64{1, 2, 3}, 2, "new upload")

	assert.Len(t, sender.messages, 2)
	var targets []int64
	for _, m := range sender.messages {
		targets = append(targets, m.ChatID.(int64))
	}
	assert.ElementsMatch(t, []int64{1, 3}, targets)
}

func TestNotifyAdminsSwallowsFailures(t *testing.T) {
	sender := &fakeSender{
		failMsgs: map[int64]error{2: errors.New("blocked by user")},
	}

	NotifyAdmins(context.Background(), sender, []int64{1, 2, 3}, 0, "new upload")

	assert.Len(t, sender.messages, 3)
}

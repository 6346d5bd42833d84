package handler

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/study-room/studybot/internal/config"
	tg "github.com/study-room/studybot/internal/telegram"
)

const uploadHelpText = `📤 How to upload files:

1. Send any document to this chat
2. Enter the subject name when asked
3. Pick one or more branches on the keyboard
4. Enter the regulation (R18, R16, ...)
5. Enter the type (notes or paper)

The file is published to students as soon as the last step completes.`

// handleAdminPanel serves /admin. Non-admins get a flat refusal.
func (h *Handler) handleAdminPanel(ctx context.Context, b *bot.Bot, update *models.Update) {
	msg := update.Message
	if msg == nil || msg.From == nil {
		return
	}

	if !h.cfg.IsAdmin(msg.From.ID) {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: msg.Chat.ID,
			Text:   "❌ You are not authorized to use admin commands.",
		})
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      msg.Chat.ID,
		Text:        "🔧 Admin Panel\n\nChoose an option:",
		ReplyMarkup: tg.AdminPanelKeyboard(),
	})
}

// handleAdminCallback dispatches the admin panel buttons. Every action is
// re-authorized here because callback data is forgeable from old messages.
func (h *Handler) handleAdminCallback(ctx context.Context, b *bot.Bot, update *models.Update) {
	cb := update.CallbackQuery
	if cb == nil || cb.Message.Message == nil {
		return
	}
	h.answer(ctx, b, cb.ID, "")

	if !h.cfg.IsAdmin(cb.From.ID) {
		return
	}
	chatID := cb.Message.Message.Chat.ID

	switch cb.Data {
	case "admin_upload_help":
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   uploadHelpText,
		})
	case "admin_view_requests":
		h.showPendingRequests(ctx, b, chatID)
	case "admin_stats":
		h.showAdminStats(ctx, b, chatID)
	case "admin_all_users":
		h.showAllUsers(ctx, b, chatID)
	}
}

func (h *Handler) showPendingRequests(ctx context.Context, b *bot.Bot, chatID int64) {
	pending, err := h.requests.ListPending(ctx, config.PendingRequestsLimit)
	if err != nil {
		slog.Error("list pending requests", "error", err)
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "❌ Error fetching requests.",
		})
		return
	}

	if len(pending) == 0 {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "📋 No pending requests.",
		})
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "📋 Pending Requests (%d):\n\n", len(pending))
	for i, r := range pending {
		fmt.Fprintf(&sb, "%d. %s\n🏢 %s | 📅 %s | 📝 %s\n👤 %s\n🕒 %s\n\n",
			i+1, r.Subject, r.Branch, r.Regulation, r.Type,
			requestAuthor(r.Username, r.FirstName),
			r.RequestDate.Format("Jan 2, 2006"))
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   sb.String(),
	})
}

func (h *Handler) showAdminStats(ctx context.Context, b *bot.Bot, chatID int64) {
	users, err := h.users.Count(ctx)
	if err != nil {
		slog.Error("count users", "error", err)
		h.sendStatsError(ctx, b, chatID)
		return
	}
	files, err := h.catalog.CountFiles(ctx)
	if err != nil {
		slog.Error("count files", "error", err)
		h.sendStatsError(ctx, b, chatID)
		return
	}
	pending, err := h.requests.CountPending(ctx)
	if err != nil {
		slog.Error("count pending requests", "error", err)
		h.sendStatsError(ctx, b, chatID)
		return
	}
	downloads, err := h.catalog.TotalDownloads(ctx)
	if err != nil {
		slog.Error("total downloads", "error", err)
		h.sendStatsError(ctx, b, chatID)
		return
	}
	branches, err := h.catalog.BranchCounts(ctx)
	if err != nil {
		slog.Error("branch counts", "error", err)
		h.sendStatsError(ctx, b, chatID)
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "📊 Bot Statistics\n\n👥 Total Users: %d\n📚 Total Files: %d\n📋 Pending Requests: %d\n📥 Total Downloads: %d\n\n📂 Files by Branch:\n",
		users, files, pending, downloads)
	for _, bc := range branches {
		fmt.Fprintf(&sb, "• %s: %d\n", bc.Branch, bc.Count)
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   sb.String(),
	})
}

func (h *Handler) sendStatsError(ctx context.Context, b *bot.Bot, chatID int64) {
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   "❌ Error fetching statistics.",
	})
}

func requestAuthor(username, firstName string) string {
	if username != "" {
		return "@" + username
	}
	if firstName != "" {
		return firstName
	}
	return "Unknown"
}

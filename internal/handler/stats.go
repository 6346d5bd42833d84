package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-telegram/bot"

	"github.com/study-room/studybot/internal/config"
	"github.com/study-room/studybot/internal/domain"
)

func (h *Handler) showFileStatus(ctx context.Context, b *bot.Bot, chatID int64) {
	status, err := h.catalog.FileStatus(ctx)
	if err != nil {
		slog.Error("file status", "error", err)
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "❌ Error fetching file status.",
		})
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "📊 File Status Report\n\n📚 Total Files: %d\n📖 Notes: %d\n📝 Papers: %d\n\n📅 Recent Uploads:\n",
		status.Total, status.Notes, status.Papers)
	for i, f := range status.Recent {
		fmt.Fprintf(&sb, "%d. %s (%s)\n", i+1, f.Subject, f.BranchLabel())
	}
	sb.WriteString("\n🔥 Most Downloaded:\n")
	for i, f := range status.TopDownloads {
		fmt.Fprintf(&sb, "%d. %s - %d downloads\n", i+1, f.Subject, f.Downloads)
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   sb.String(),
	})
}

// showUserStats renders the caller's own counters plus the bot-wide totals.
func (h *Handler) showUserStats(ctx context.Context, b *bot.Bot, chatID, userID int64) {
	user, err := h.users.GetByTelegramID(ctx, userID)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		slog.Error("get user stats", "error", err, "user_id", userID)
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "❌ Error fetching user stats.",
		})
		return
	}

	total, err := h.users.Count(ctx)
	if err != nil {
		slog.Error("count users", "error", err)
		return
	}
	active, err := h.users.CountActive(ctx)
	if err != nil {
		slog.Error("count active users", "error", err)
		return
	}

	downloads := int64(0)
	joined, lastActive := "Unknown", "Unknown"
	if user != nil {
		downloads = user.DownloadCount
		joined = user.JoinDate.Format("Mon Jan 2 2006")
		lastActive = user.LastActive.Format("Mon Jan 2 2006")
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text: fmt.Sprintf("👤 Your Statistics\n\n📥 Downloads: %d\n📅 Joined: %s\n🕒 Last Active: %s\n\n🌐 Bot Statistics:\n👥 Total Users: %d\n🟢 Active Users (7 days): %d",
			downloads, joined, lastActive, total, active),
	})
}

// showAllUsers renders the admin overview of the user base.
func (h *Handler) showAllUsers(ctx context.Context, b *bot.Bot, chatID int64) {
	total, err := h.users.Count(ctx)
	if err != nil {
		slog.Error("count users", "error", err)
		h.sendUsersError(ctx, b, chatID)
		return
	}
	active, err := h.users.CountActive(ctx)
	if err != nil {
		slog.Error("count active users", "error", err)
		h.sendUsersError(ctx, b, chatID)
		return
	}
	recent, err := h.users.Recent(ctx, config.RecentUsersLimit)
	if err != nil {
		slog.Error("recent users", "error", err)
		h.sendUsersError(ctx, b, chatID)
		return
	}
	top, err := h.users.TopByDownloads(ctx, config.TopUsersLimit)
	if err != nil {
		slog.Error("top users", "error", err)
		h.sendUsersError(ctx, b, chatID)
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "👥 Bot Users Report\n\n📊 Overview:\n• Total Users: %d\n• Active Users (7 days): %d\n• Inactive Users: %d\n\n👆 Recent Users:\n",
		total, active, total-active)
	for i, u := range recent {
		fmt.Fprintf(&sb, "%d. %s - %s\n", i+1, u.DisplayName(), u.FirstName)
	}
	sb.WriteString("\n🔥 Top Users (Downloads):\n")
	for i, u := range top {
		fmt.Fprintf(&sb, "%d. %s - %d downloads\n", i+1, u.DisplayName(), u.DownloadCount)
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   sb.String(),
	})
}

func (h *Handler) sendUsersError(ctx context.Context, b *bot.Bot, chatID int64) {
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   "❌ Error fetching users data.",
	})
}

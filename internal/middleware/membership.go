package middleware

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/study-room/studybot/internal/config"
	"github.com/study-room/studybot/internal/dialog"
	tg "github.com/study-room/studybot/internal/telegram"
)

// ChatMemberGetter is the single gateway call the gate depends on.
type ChatMemberGetter interface {
	GetChatMember(ctx context.Context, params *bot.GetChatMemberParams) (*models.ChatMember, error)
}

// IsChannelMember asks the gateway whether the user belongs to the channel.
// The probe is synchronous and uncached; a gateway error counts as not a
// member, so the gate denies rather than letting strangers through.
func IsChannelMember(ctx context.Context, g ChatMemberGetter, channel string, userID int64) bool {
	member, err := g.GetChatMember(ctx, &bot.GetChatMemberParams{
		ChatID: channel,
		UserID: userID,
	})
	if err != nil {
		slog.Warn("membership check failed", "error", err, "user_id", userID)
		return false
	}
	switch member.Type {
	case models.ChatMemberTypeOwner, models.ChatMemberTypeAdministrator, models.ChatMemberTypeMember:
		return true
	}
	return false
}

// MembershipGate returns middleware that blocks non-members. Admins pass
// unconditionally, continuations of an open dialog pass so a dialog already
// underway is never interrupted, and the re-check button passes so a freshly
// joined user can get in. Everyone else is re-checked against the channel on
// every attempt and prompted to join on failure.
func MembershipGate(dialogs dialog.Store, cfg *config.Config) bot.Middleware {
	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			from := SenderOf(update)
			if from == nil {
				next(ctx, b, update)
				return
			}
			if cfg.IsAdmin(from.ID) {
				next(ctx, b, update)
				return
			}

			chatID := ChatOf(update)
			if _, open := dialogs.Get(chatID); open {
				next(ctx, b, update)
				return
			}

			if update.CallbackQuery != nil && update.CallbackQuery.Data == tg.CallbackCheckMembership {
				next(ctx, b, update)
				return
			}

			if IsChannelMember(ctx, b, cfg.MustJoinChannel, from.ID) {
				next(ctx, b, update)
				return
			}

			if chatID == 0 {
				return
			}
			b.SendMessage(ctx, &bot.SendMessageParams{
				ChatID:      chatID,
				Text:        "❌ You must join our channel first to use this bot!\n\n👆 Click the button below to join our channel, then try again.",
				ReplyMarkup: tg.JoinKeyboard(cfg.ChannelURL()),
			})
		}
	}
}

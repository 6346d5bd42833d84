package middleware

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/study-room/studybot/internal/domain"
	"github.com/study-room/studybot/internal/service"
)

type ctxKey string

const UserKey ctxKey = "user"

// GetUser extracts the catalog user record from context.
func GetUser(ctx context.Context) *domain.User {
	u, ok := ctx.Value(UserKey).(*domain.User)
	if !ok {
		return nil
	}
	return u
}

// UserLoader returns middleware that upserts the sender into the users
// collection on every inbound event and puts the record into context.
// An upsert failure is logged and the update still proceeds; the catalog
// being down must not silence the bot entirely.
func UserLoader(users *service.UserService) bot.Middleware {
	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			from := SenderOf(update)
			if from == nil {
				next(ctx, b, update)
				return
			}

			user, err := users.Upsert(ctx, from.ID, from.Username, from.FirstName, from.LastName)
			if err != nil {
				slog.Error("upsert user", "error", err, "user_id", from.ID)
			} else {
				ctx = context.WithValue(ctx, UserKey, user)
			}

			next(ctx, b, update)
		}
	}
}

// SenderOf extracts the originating user of an update, if any.
func SenderOf(update *models.Update) *models.User {
	if update.Message != nil {
		return update.Message.From
	}
	if update.CallbackQuery != nil {
		return &update.CallbackQuery.From
	}
	return nil
}

// ChatOf extracts the chat an update belongs to; zero when absent.
func ChatOf(update *models.Update) int64 {
	if update.Message != nil {
		return update.Message.Chat.ID
	}
	if update.CallbackQuery != nil && update.CallbackQuery.Message.Message != nil {
		return update.CallbackQuery.Message.Message.Chat.ID
	}
	return 0
}

package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/study-room/studybot/internal/config"
	"github.com/study-room/studybot/internal/dialog"
	"github.com/study-room/studybot/internal/handler"
	"github.com/study-room/studybot/internal/middleware"
	"github.com/study-room/studybot/internal/repository"
	"github.com/study-room/studybot/internal/service"
	"github.com/study-room/studybot/internal/web"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	if len(cfg.AdminIDs) == 0 {
		slog.Warn("no admin ids configured, uploads and admin panel are unreachable")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := repository.Connect(ctx, cfg.MongoURI)
	if err != nil {
		slog.Error("connect database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			slog.Error("disconnect database", "error", err)
		}
	}()

	collections := repository.NewCollections(client, cfg.DatabaseName)
	catalog := service.NewCatalogService(collections)
	requests := service.NewRequestService(collections)
	users := service.NewUserService(collections)
	dialogs := dialog.NewMemoryStore()

	var h *handler.Handler
	b, err := bot.New(cfg.BotToken,
		bot.WithMiddlewares(
			middleware.Recover(),
			middleware.Logging(),
			middleware.UserLoader(users),
			middleware.MembershipGate(dialogs, cfg),
		),
		bot.WithDefaultHandler(func(ctx context.Context, b *bot.Bot, update *models.Update) {
			if update.Message == nil {
				return
			}
			if update.Message.Document != nil {
				h.HandleDocument(ctx, b, update)
				return
			}
			h.HandleText(ctx, b, update)
		}),
	)
	if err != nil {
		slog.Error("create bot", "error", err)
		os.Exit(1)
	}

	h = handler.New(handler.Deps{
		Bot:      b,
		Cfg:      cfg,
		Dialogs:  dialogs,
		Catalog:  catalog,
		Requests: requests,
		Users:    users,
	})
	h.Register()

	srv := web.NewServer(cfg, catalog, users)
	go func() {
		slog.Info("web server listening", "port", cfg.Port)
		if err := srv.Run(ctx); err != nil {
			slog.Error("web server", "error", err)
		}
	}()

	slog.Info("bot started", "channel", cfg.MustJoinChannel, "admins", len(cfg.AdminIDs))
	b.Start(ctx)
	slog.Info("bot stopped")
}

package handler

import (
	"github.com/go-telegram/bot"

	"github.com/study-room/studybot/internal/config"
	"github.com/study-room/studybot/internal/dialog"
	"github.com/study-room/studybot/internal/service"
)

// Handler holds all dependencies needed by message and callback handlers.
type Handler struct {
	bot      *bot.Bot
	cfg      *config.Config
	dialogs  dialog.Store
	catalog  *service.CatalogService
	requests *service.RequestService
	users    *service.UserService
}

// Deps contains all dependencies required to construct a Handler.
type Deps struct {
	Bot      *bot.Bot
	Cfg      *config.Config
	Dialogs  dialog.Store
	Catalog  *service.CatalogService
	Requests *service.RequestService
	Users    *service.UserService
}

// New creates a new Handler from the provided dependencies.
func New(deps Deps) *Handler {
	return &Handler{
		bot:      deps.Bot,
		cfg:      deps.Cfg,
		dialogs:  deps.Dialogs,
		catalog:  deps.Catalog,
		requests: deps.Requests,
		users:    deps.Users,
	}
}

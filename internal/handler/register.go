package handler

import (
	"github.com/go-telegram/bot"

	tg "github.com/study-room/studybot/internal/telegram"
)

// Register registers all command and callback handlers on the bot instance.
func (h *Handler) Register() {
	// Commands
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypePrefix, h.handleStart)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/admin", bot.MatchTypePrefix, h.handleAdminPanel)

	// Membership re-check
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, tg.CallbackCheckMembership, bot.MatchTypeExact, h.handleCheckMembership)

	// Branch multi-select sub-dialog
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, tg.CallbackToggleBranch, bot.MatchTypePrefix, h.handleToggleBranch)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, tg.CallbackSelectAll, bot.MatchTypeExact, h.handleSelectAllBranches)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, tg.CallbackClearAll, bot.MatchTypeExact, h.handleClearAllBranches)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, tg.CallbackConfirmBranches, bot.MatchTypeExact, h.handleConfirmBranches)

	// Branch browsing
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, tg.CallbackBrowseBranch, bot.MatchTypePrefix, h.handleBrowseBranch)

	// Admin panel
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, tg.CallbackAdminPrefix, bot.MatchTypePrefix, h.handleAdminCallback)
}

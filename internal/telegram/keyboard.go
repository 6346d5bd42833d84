package telegram

import (
	"github.com/go-telegram/bot/models"

	"github.com/study-room/studybot/internal/config"
	"github.com/study-room/studybot/internal/domain"
)

// Main menu labels. The reply keyboard sends these back as plain text, so the
// dispatcher matches on them verbatim.
const (
	MenuFindNotes    = "📚 Find Notes"
	MenuFindPapers   = "📝 Find Papers"
	MenuRequestFiles = "📋 Request Files"
	MenuBrowseBranch = "🔍 Browse by Branch"
	MenuFileStatus   = "📊 File Status"
	MenuBotUsers     = "👥 Bot Users"
	MenuHelp         = "❓ Help"
)

// Callback action tokens.
const (
	CallbackCheckMembership = "check_membership"
	CallbackToggleBranch    = "toggle_branch_"
	CallbackSelectAll       = "select_all_branches"
	CallbackClearAll        = "clear_all_branches"
	CallbackConfirmBranches = "confirm_branch_selection"
	CallbackBrowseBranch    = "branch_"
	CallbackAdminPrefix     = "admin_"
)

// InlineButton creates a single inline keyboard button.
func InlineButton(text, callbackData string) models.InlineKeyboardButton {
	return models.InlineKeyboardButton{
		Text:         text,
		CallbackData: callbackData,
	}
}

// URLButton creates a URL inline keyboard button.
func URLButton(text, url string) models.InlineKeyboardButton {
	return models.InlineKeyboardButton{
		Text: text,
		URL:  url,
	}
}

// InlineKeyboard creates an inline keyboard from rows of buttons.
func InlineKeyboard(rows ...[]models.InlineKeyboardButton) *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: rows,
	}
}

// ButtonRow creates a row of inline buttons.
func ButtonRow(buttons ...models.InlineKeyboardButton) []models.InlineKeyboardButton {
	return buttons
}

// MainMenu is the persistent reply keyboard shown after /start.
func MainMenu() *models.ReplyKeyboardMarkup {
	return &models.ReplyKeyboardMarkup{
		Keyboard: [][]models.KeyboardButton{
			{{Text: MenuFindNotes}, {Text: MenuFindPapers}},
			{{Text: MenuRequestFiles}, {Text: MenuBrowseBranch}},
			{{Text: MenuFileStatus}, {Text: MenuBotUsers}},
			{{Text: MenuHelp}},
		},
		ResizeKeyboard: true,
	}
}

// JoinKeyboard prompts a non-member to join the required channel and re-check.
func JoinKeyboard(channelURL string) *models.InlineKeyboardMarkup {
	return InlineKeyboard(ButtonRow(
		URLButton("📢 Join Channel", channelURL),
		InlineButton("✅ Check Membership", CallbackCheckMembership),
	))
}

// BranchSelectKeyboard is the multi-select sub-dialog keyboard. Selected
// branches are marked so the edited message reflects the current set.
func BranchSelectKeyboard(d *domain.Dialog) *models.InlineKeyboardMarkup {
	var rows [][]models.InlineKeyboardButton

	for i := 0; i < len(config.Branches); i += config.BranchButtonsPerRow {
		var row []models.InlineKeyboardButton
		for j := i; j < i+config.BranchButtonsPerRow && j < len(config.Branches); j++ {
			code := config.Branches[j]
			label := code
			if d.HasBranch(code) {
				label = "✅ " + code
			}
			row = append(row, InlineButton(label, CallbackToggleBranch+code))
		}
		rows = append(rows, row)
	}

	rows = append(rows, ButtonRow(
		InlineButton("✅ Select All", CallbackSelectAll),
		InlineButton("❌ Clear All", CallbackClearAll),
	))
	rows = append(rows, ButtonRow(InlineButton("✅ Done", CallbackConfirmBranches)))

	return InlineKeyboard(rows...)
}

// BrowseBranchKeyboard is the read-side branch grid.
func BrowseBranchKeyboard() *models.InlineKeyboardMarkup {
	var rows [][]models.InlineKeyboardButton
	for i := 0; i < len(config.Branches); i += config.BranchButtonsPerRow {
		var row []models.InlineKeyboardButton
		for j := i; j < i+config.BranchButtonsPerRow && j < len(config.Branches); j++ {
			code := config.Branches[j]
			row = append(row, InlineButton(code, CallbackBrowseBranch+code))
		}
		rows = append(rows, row)
	}
	return InlineKeyboard(rows...)
}

// AdminPanelKeyboard is the inline menu behind /admin.
func AdminPanelKeyboard() *models.InlineKeyboardMarkup {
	return InlineKeyboard(
		ButtonRow(InlineButton("📤 Upload Instructions", "admin_upload_help")),
		ButtonRow(InlineButton("📋 View Requests", "admin_view_requests")),
		ButtonRow(InlineButton("📊 Statistics", "admin_stats")),
		ButtonRow(InlineButton("👥 All Users", "admin_all_users")),
	)
}

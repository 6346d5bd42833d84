package handler

import (
	"context"

	"github.com/go-telegram/bot"
)

const helpText = `❓ How to use this bot:

📚 Find Notes - Search for study notes by subject
📝 Find Papers - Search for question papers by subject
📋 Request Files - Request materials we don't have yet
🔍 Browse by Branch - See everything for your branch
📊 File Status - Library totals and recent uploads
👥 Bot Users - Your personal statistics

💡 Tips:
• Type any part of the subject name when searching
• Use the request form if a search comes up empty
• Files are sent directly in this chat

📢 Stay in the channel to keep access to the bot.`

func (h *Handler) showHelp(ctx context.Context, b *bot.Bot, chatID int64) {
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   helpText,
	})
}

// Package handlers contains Telegram bot command and message handlers,
// along with their registration logic and middleware.
package handlers

import (
	"context"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// OwnerOnly creates a middleware that checks if the message sender is the
// configured owner. If not, it sends the not-authorized message and stops
// processing by returning early.
func OwnerOnly(deps HandlerDeps) tgbot.Middleware {
	return func(next tgbot.HandlerFunc) tgbot.HandlerFunc {
		return func(ctx context.Context, b *tgbot.Bot, update *models.Update) {
			if ownerGate(ctx, deps, b, update) {
				next(ctx, b, update)
			}
		}
	}
}

// ownerGate reports whether processing may continue. It notifies the chat
// when a non-owner tries an owner-only command.
func ownerGate(ctx context.Context, deps HandlerDeps, api telegramAPI, update *models.Update) bool {
	if update.Message == nil || update.Message.From == nil {
		return true
	}

	userID := update.Message.From.ID
	if userID == deps.Config.Telegram.OwnerID {
		return true
	}

	chatID := update.Message.Chat.ID
	log := deps.Logger.With("middleware", "owner_only")
	log.WarnContext(ctx, "Unauthorized access attempt", "user_id", userID, "chat_id", chatID)

	_, err := api.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID: chatID,
		Text:   deps.Config.Messages.NotAuthorized,
	})
	if err != nil {
		log.ErrorContext(ctx, "Failed to send unauthorized message", "error", err, "chat_id", chatID)
	}
	return false
}

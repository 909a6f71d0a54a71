package handlers

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// NewAskHandler returns a handler for the /ask command. It forwards the
// question to the AI client and relays the completion back to the chat.
func NewAskHandler(deps HandlerDeps) bot.HandlerFunc {
	h := askHandler{deps}
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		h.handle(ctx, b, update)
	}
}

type askHandler struct {
	deps HandlerDeps
}

func (h askHandler) handle(ctx context.Context, api telegramAPI, update *models.Update) {
	log := h.deps.Logger.With("handler", "ask")

	if update.Message == nil || update.Message.From == nil {
		log.WarnContext(ctx, "Ask handler received update with nil message or sender", "update_id", update.ID)
		return
	}

	chatID := update.Message.Chat.ID
	question := commandArgument(update.Message.Text)

	if question == "" {
		log.InfoContext(ctx, "Received /ask without a question", "chat_id", chatID)
		if _, err := api.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   h.deps.Config.Messages.AskUsage,
		}); err != nil {
			log.ErrorContext(ctx, "Failed to send usage message", "error", err, "chat_id", chatID)
		}
		return
	}

	log.InfoContext(ctx, "Handling /ask command", "chat_id", chatID, "user_id", update.Message.From.ID)

	// Typing indicator while the completion is in flight. This is a chat
	// action, not a message, so the question gets exactly one reply.
	_, _ = api.SendChatAction(ctx, &bot.SendChatActionParams{ChatID: chatID, Action: models.ChatActionTyping})

	answer, err := h.deps.AI.Complete(ctx, question)
	if err != nil {
		log.ErrorContext(ctx, "AI completion failed", "error", err, "chat_id", chatID)
		if _, sendErr := api.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   h.deps.Config.Messages.AskError,
		}); sendErr != nil {
			log.ErrorContext(ctx, "Failed to send error message", "error", sendErr, "chat_id", chatID)
		}
		return
	}

	if _, err := api.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: answer}); err != nil {
		log.ErrorContext(ctx, "Failed to send answer", "error", err, "chat_id", chatID)
	}
}

// commandArgument returns the text after the command itself, trimmed.
// It handles both "/ask question" and "/ask@BotName question" forms.
func commandArgument(text string) string {
	if i := strings.IndexAny(text, " \n"); i >= 0 {
		return strings.TrimSpace(text[i+1:])
	}
	return ""
}

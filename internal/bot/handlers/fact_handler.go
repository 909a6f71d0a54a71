package handlers

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// NewFactHandler returns a handler for the /fact command, which replies with
// a random fact from the store.
func NewFactHandler(deps HandlerDeps) bot.HandlerFunc {
	h := factHandler{deps}
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		h.handle(ctx, b, update)
	}
}

type factHandler struct {
	deps HandlerDeps
}

func (h factHandler) handle(ctx context.Context, api telegramAPI, update *models.Update) {
	log := h.deps.Logger.With("handler", "fact")

	if update.Message == nil {
		log.WarnContext(ctx, "Fact handler received update with nil message", "update_id", update.ID)
		return
	}

	chatID := update.Message.Chat.ID
	log.InfoContext(ctx, "Handling /fact command", "chat_id", chatID)

	fact, err := h.deps.Store.GetRandomFact(ctx)
	if err != nil {
		log.ErrorContext(ctx, "Failed to fetch random fact", "error", err, "chat_id", chatID)
		fact = nil
	}

	text := h.deps.Config.Messages.NoFacts
	if fact != nil {
		text = fmt.Sprintf(h.deps.Config.Messages.FactHeader, fact.Content)
	}

	if _, err := api.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: text}); err != nil {
		log.ErrorContext(ctx, "Failed to send fact", "error", err, "chat_id", chatID)
	}
}

package handlers

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// NewHelpHandler returns a handler for the /help command.
func NewHelpHandler(deps HandlerDeps) bot.HandlerFunc {
	return newStaticReplyHandler(deps, "help", func(m *models.Update) string {
		return deps.Config.Messages.Help
	})
}

// NewIDHandler returns a handler for the /id command, which links the
// community web app.
func NewIDHandler(deps HandlerDeps) bot.HandlerFunc {
	return newStaticReplyHandler(deps, "id", func(m *models.Update) string {
		return deps.Config.Messages.IDCard
	})
}

// NewRulesHandler returns a handler for the /rules command.
func NewRulesHandler(deps HandlerDeps) bot.HandlerFunc {
	return newStaticReplyHandler(deps, "rules", func(m *models.Update) string {
		return deps.Config.Messages.Rules
	})
}

// NewHashtagsHandler returns a handler for the /hashtags command.
func NewHashtagsHandler(deps HandlerDeps) bot.HandlerFunc {
	return newStaticReplyHandler(deps, "hashtags", func(m *models.Update) string {
		return "Hashtags:\n" + strings.Join(deps.Config.Messages.Hashtags, "\n")
	})
}

// NewTopicsHandler returns a handler for the /topics command.
func NewTopicsHandler(deps HandlerDeps) bot.HandlerFunc {
	return newStaticReplyHandler(deps, "topics", func(m *models.Update) string {
		return "Topics:\n" + strings.Join(deps.Config.Messages.Topics, "\n")
	})
}

// newStaticReplyHandler builds a handler that replies with a fixed text
// derived from the update. All read-only informational commands share it.
func newStaticReplyHandler(deps HandlerDeps, name string, text func(*models.Update) string) bot.HandlerFunc {
	h := staticReplyHandler{deps: deps, name: name, text: text}
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		h.handle(ctx, b, update)
	}
}

type staticReplyHandler struct {
	deps HandlerDeps
	name string
	text func(*models.Update) string
}

func (h staticReplyHandler) handle(ctx context.Context, api telegramAPI, update *models.Update) {
	log := h.deps.Logger.With("handler", h.name)

	if update.Message == nil {
		log.WarnContext(ctx, "Handler received update with nil message", "update_id", update.ID)
		return
	}

	chatID := update.Message.Chat.ID
	log.InfoContext(ctx, "Handling command", "chat_id", chatID)

	if _, err := api.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: h.text(update)}); err != nil {
		log.ErrorContext(ctx, "Failed to send reply", "error", err, "chat_id", chatID)
	}
}

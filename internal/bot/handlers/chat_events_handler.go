package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// NewChatEventsHandler returns the default handler for updates that match no
// command pattern. It welcomes joining members, says farewell to leaving
// ones, and otherwise runs the keyword responder over plain text messages.
func NewChatEventsHandler(deps HandlerDeps) bot.HandlerFunc {
	h := chatEventsHandler{deps}
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		h.handle(ctx, b, update)
	}
}

type chatEventsHandler struct {
	deps HandlerDeps
}

func (h chatEventsHandler) handle(ctx context.Context, api telegramAPI, update *models.Update) {
	log := h.deps.Logger.With("handler", "chat_events")

	msg := update.Message
	if msg == nil {
		log.DebugContext(ctx, "Ignoring update without message", "update_id", update.ID)
		return
	}

	chatID := msg.Chat.ID

	if len(msg.NewChatMembers) > 0 {
		for _, member := range msg.NewChatMembers {
			if member.IsBot {
				continue
			}
			text := fmt.Sprintf(h.deps.Config.Messages.MemberWelcome, memberName(member))
			if _, err := api.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: text}); err != nil {
				log.ErrorContext(ctx, "Failed to send welcome", "error", err, "chat_id", chatID, "user_id", member.ID)
			}
		}
		return
	}

	if msg.LeftChatMember != nil {
		if msg.LeftChatMember.IsBot {
			return
		}
		text := fmt.Sprintf(h.deps.Config.Messages.MemberFarewell, memberName(*msg.LeftChatMember))
		if _, err := api.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: text}); err != nil {
			log.ErrorContext(ctx, "Failed to send farewell", "error", err, "chat_id", chatID)
		}
		return
	}

	if msg.Text == "" || strings.HasPrefix(msg.Text, "/") {
		return
	}

	h.respondToKeywords(ctx, api, chatID, msg.Text)
}

// respondToKeywords replies with the canned response of the first keyword
// contained in the message text. At most one reply is sent.
func (h chatEventsHandler) respondToKeywords(ctx context.Context, api telegramAPI, chatID int64, text string) {
	log := h.deps.Logger.With("handler", "chat_events")

	keywords, err := h.deps.Store.ListKeywords(ctx)
	if err != nil {
		log.ErrorContext(ctx, "Failed to list keywords", "error", err, "chat_id", chatID)
		return
	}

	lowered := strings.ToLower(text)
	for _, kw := range keywords {
		if kw.Keyword == "" || !strings.Contains(lowered, strings.ToLower(kw.Keyword)) {
			continue
		}
		log.InfoContext(ctx, "Keyword matched", "chat_id", chatID, "keyword", kw.Keyword)
		if _, err := api.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: kw.Response}); err != nil {
			log.ErrorContext(ctx, "Failed to send keyword response", "error", err, "chat_id", chatID)
		}
		return
	}
}

func memberName(user models.User) string {
	name := user.FirstName
	if user.LastName != "" {
		name = name + " " + user.LastName
	}
	if name == "" {
		name = user.Username
	}
	return name
}

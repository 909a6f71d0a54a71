package handlers

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// FAQCallbackPrefix prefixes the callback data attached to FAQ keyboard
// buttons; the rest of the data is the FAQ ID.
const FAQCallbackPrefix = "faq_"

// NewFAQHandler returns a handler for the /faq command. It presents the
// stored questions as an inline keyboard.
func NewFAQHandler(deps HandlerDeps) bot.HandlerFunc {
	h := faqHandler{deps}
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		h.handle(ctx, b, update)
	}
}

type faqHandler struct {
	deps HandlerDeps
}

func (h faqHandler) handle(ctx context.Context, api telegramAPI, update *models.Update) {
	log := h.deps.Logger.With("handler", "faq")

	if update.Message == nil {
		log.WarnContext(ctx, "FAQ handler received update with nil message", "update_id", update.ID)
		return
	}

	chatID := update.Message.Chat.ID
	log.InfoContext(ctx, "Handling /faq command", "chat_id", chatID)

	faqs, err := h.deps.Store.ListFAQs(ctx)
	if err != nil {
		log.ErrorContext(ctx, "Failed to list FAQs", "error", err, "chat_id", chatID)
		faqs = nil
	}

	if len(faqs) == 0 {
		if _, err := api.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   h.deps.Config.Messages.NoFAQ,
		}); err != nil {
			log.ErrorContext(ctx, "Failed to send empty FAQ message", "error", err, "chat_id", chatID)
		}
		return
	}

	keyboard := make([][]models.InlineKeyboardButton, 0, len(faqs))
	for _, faq := range faqs {
		keyboard = append(keyboard, []models.InlineKeyboardButton{{
			Text:         faq.Question,
			CallbackData: fmt.Sprintf("%s%d", FAQCallbackPrefix, faq.ID),
		}})
	}

	_, err = api.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        h.deps.Config.Messages.FAQPrompt,
		ReplyMarkup: &models.InlineKeyboardMarkup{InlineKeyboard: keyboard},
	})
	if err != nil {
		log.ErrorContext(ctx, "Failed to send FAQ keyboard", "error", err, "chat_id", chatID)
	}
}

// NewFAQCallbackHandler returns a handler for FAQ keyboard button presses.
// It edits the keyboard message in place, replacing it with the answer.
func NewFAQCallbackHandler(deps HandlerDeps) bot.HandlerFunc {
	h := faqCallbackHandler{deps}
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		h.handle(ctx, b, update)
	}
}

type faqCallbackHandler struct {
	deps HandlerDeps
}

func (h faqCallbackHandler) handle(ctx context.Context, api telegramAPI, update *models.Update) {
	log := h.deps.Logger.With("handler", "faq_callback")

	cb := update.CallbackQuery
	if cb == nil {
		log.WarnContext(ctx, "FAQ callback handler received update without callback query", "update_id", update.ID)
		return
	}

	// The button press needs acknowledging regardless of the outcome,
	// otherwise the client keeps showing a spinner.
	if _, err := api.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{CallbackQueryID: cb.ID}); err != nil {
		log.ErrorContext(ctx, "Failed to answer callback query", "error", err, "callback_query_id", cb.ID)
	}

	// Keyboards older than 48 hours come back as inaccessible messages with
	// Message left nil, so there is nothing to edit.
	if cb.Message.Message == nil {
		log.WarnContext(ctx, "FAQ callback on inaccessible message, cannot edit", "callback_query_id", cb.ID)
		return
	}

	h.respond(ctx, api, cb.Message.Message.Chat.ID, cb.Message.Message.ID, cb.Data)
}

func (h faqCallbackHandler) respond(ctx context.Context, api telegramAPI, chatID int64, messageID int, data string) {
	log := h.deps.Logger.With("handler", "faq_callback")

	id, err := strconv.ParseInt(strings.TrimPrefix(data, FAQCallbackPrefix), 10, 64)
	if err != nil {
		log.WarnContext(ctx, "Invalid FAQ callback data", "data", data)
		return
	}

	answer := h.deps.Config.Messages.FAQNotFound
	faq, err := h.deps.Store.GetFAQ(ctx, id)
	if err != nil {
		log.ErrorContext(ctx, "Failed to fetch FAQ", "error", err, "faq_id", id)
	} else if faq != nil {
		answer = faq.Answer
	}

	_, err = api.EditMessageText(ctx, &bot.EditMessageTextParams{
		ChatID:    chatID,
		MessageID: messageID,
		Text:      answer,
	})
	if err != nil {
		log.ErrorContext(ctx, "Failed to edit FAQ message", "error", err, "chat_id", chatID, "faq_id", id)
	}
}

package handlers

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/anica-blip/aurion-bot/internal/database"
)

// NewManualPostHandler returns a handler for the owner-only /manual_post
// command, which immediately posts an announcement to the chat.
func NewManualPostHandler(deps HandlerDeps) bot.HandlerFunc {
	h := manualPostHandler{deps}
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		h.handle(ctx, b, update)
	}
}

type manualPostHandler struct {
	deps HandlerDeps
}

func (h manualPostHandler) handle(ctx context.Context, api telegramAPI, update *models.Update) {
	log := h.deps.Logger.With("handler", "manual_post")

	if update.Message == nil || update.Message.From == nil {
		log.WarnContext(ctx, "Manual post handler received update with nil message or sender", "update_id", update.ID)
		return
	}

	chatID := update.Message.Chat.ID
	content := commandArgument(update.Message.Text)

	if content == "" {
		if _, err := api.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   h.deps.Config.Messages.ManualPostUsage,
		}); err != nil {
			log.ErrorContext(ctx, "Failed to send usage message", "error", err, "chat_id", chatID)
		}
		return
	}

	log.InfoContext(ctx, "Handling /manual_post command", "chat_id", chatID, "user_id", update.Message.From.ID)

	if _, err := api.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   "📢 " + content,
	}); err != nil {
		log.ErrorContext(ctx, "Failed to send announcement", "error", err, "chat_id", chatID)
	}
}

// NewSchedulePostHandler returns a handler for the owner-only /schedule_post
// command. The post is stored and delivered later by the due_posts task.
func NewSchedulePostHandler(deps HandlerDeps) bot.HandlerFunc {
	h := schedulePostHandler{deps}
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		h.handle(ctx, b, update)
	}
}

type schedulePostHandler struct {
	deps HandlerDeps
}

func (h schedulePostHandler) handle(ctx context.Context, api telegramAPI, update *models.Update) {
	log := h.deps.Logger.With("handler", "schedule_post")

	if update.Message == nil || update.Message.From == nil {
		log.WarnContext(ctx, "Schedule post handler received update with nil message or sender", "update_id", update.ID)
		return
	}

	chatID := update.Message.Chat.ID

	minutes, content, ok := parseScheduleArgs(commandArgument(update.Message.Text))
	if !ok {
		if _, err := api.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   h.deps.Config.Messages.SchedulePostUsage,
		}); err != nil {
			log.ErrorContext(ctx, "Failed to send usage message", "error", err, "chat_id", chatID)
		}
		return
	}

	log.InfoContext(ctx, "Handling /schedule_post command",
		"chat_id", chatID, "user_id", update.Message.From.ID, "minutes", minutes)

	post := &database.ScheduledPost{
		ChatID:      chatID,
		Content:     content,
		ScheduledAt: time.Now().UTC().Add(time.Duration(minutes) * time.Minute),
	}
	if err := h.deps.Store.SaveScheduledPost(ctx, post); err != nil {
		log.ErrorContext(ctx, "Failed to save scheduled post", "error", err, "chat_id", chatID)
		if _, sendErr := api.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   h.deps.Config.Messages.AskError,
		}); sendErr != nil {
			log.ErrorContext(ctx, "Failed to send error message", "error", sendErr, "chat_id", chatID)
		}
		return
	}

	if _, err := api.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   fmt.Sprintf(h.deps.Config.Messages.PostScheduled, minutes),
	}); err != nil {
		log.ErrorContext(ctx, "Failed to send confirmation", "error", err, "chat_id", chatID)
	}
}

// parseScheduleArgs splits "<minutes> <message>" into its parts.
func parseScheduleArgs(args string) (int, string, bool) {
	fields := strings.SplitN(args, " ", 2)
	if len(fields) != 2 {
		return 0, "", false
	}

	minutes, err := strconv.Atoi(fields[0])
	if err != nil || minutes <= 0 {
		return 0, "", false
	}

	content := strings.TrimSpace(fields[1])
	if content == "" {
		return 0, "", false
	}

	return minutes, content, true
}

package handlers

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/anica-blip/aurion-bot/internal/ai"
	"github.com/anica-blip/aurion-bot/internal/config"
	"github.com/anica-blip/aurion-bot/internal/database"
)

// HandlerDeps provides dependencies for Telegram command handlers.
type HandlerDeps struct {
	Logger *slog.Logger
	Config *config.Config
	Store  database.Store
	AI     ai.Client
}

// telegramAPI is the subset of bot.Bot methods the handlers call, so handler
// logic can be exercised against a fake in tests.
type telegramAPI interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
	SendChatAction(ctx context.Context, params *bot.SendChatActionParams) (bool, error)
	AnswerCallbackQuery(ctx context.Context, params *bot.AnswerCallbackQueryParams) (bool, error)
	EditMessageText(ctx context.Context, params *bot.EditMessageTextParams) (*models.Message, error)
}

var _ telegramAPI = (*bot.Bot)(nil)

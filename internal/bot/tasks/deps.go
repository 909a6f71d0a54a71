// Package tasks implements scheduled tasks for the Aurion Telegram bot.
// It includes task definitions, dependencies, and registration mechanisms.
package tasks

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/anica-blip/aurion-bot/internal/config"
	"github.com/anica-blip/aurion-bot/internal/database"
)

// Sender is the subset of the Telegram client that tasks need for
// delivering messages. *bot.Bot satisfies it.
type Sender interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
}

var _ Sender = (*bot.Bot)(nil)

// TaskDeps contains all dependencies required by scheduled tasks.
// It provides access to logging, database, the Telegram client, and
// configuration.
type TaskDeps struct {
	Logger *slog.Logger
	Store  database.Store
	Bot    Sender
	Config *config.Config
}

package telegram

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

func TestTokenPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		token string
		want  string
	}{
		{name: "long token is truncated", token: "123456789:AAEverythingAfterThis", want: "12345678..."},
		{name: "short token is kept whole", token: "abc", want: "abc..."},
		{name: "exactly eight characters", token: "12345678", want: "12345678..."},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := tokenPrefix(tc.token); got != tc.want {
				t.Errorf("tokenPrefix(%q) = %q, want %q", tc.token, got, tc.want)
			}
		})
	}
}

func TestNewTelegramBotRejectsEmptyToken(t *testing.T) {
	t.Parallel()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	if _, err := NewTelegramBot("", log); err == nil {
		t.Fatal("expected error for empty token, got nil")
	}
}

func TestApplyMiddlewareOrder(t *testing.T) {
	t.Parallel()

	var calls []string
	mw := func(name string) bot.Middleware {
		return func(next bot.HandlerFunc) bot.HandlerFunc {
			return func(ctx context.Context, b *bot.Bot, update *models.Update) {
				calls = append(calls, name)
				next(ctx, b, update)
			}
		}
	}

	handler := applyMiddleware(func(ctx context.Context, b *bot.Bot, update *models.Update) {
		calls = append(calls, "handler")
	}, []bot.Middleware{mw("first"), mw("second")})

	handler(context.Background(), nil, &models.Update{})

	want := []string{"first", "second", "handler"}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Fatalf("calls = %v, want %v", calls, want)
		}
	}
}

func TestRegisterHandlersRejectsNilBot(t *testing.T) {
	t.Parallel()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	if err := RegisterHandlers(nil, log, nil); err == nil {
		t.Fatal("expected error for nil bot, got nil")
	}
}

package tasks

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/anica-blip/aurion-bot/internal/config"
	"github.com/anica-blip/aurion-bot/internal/database"
)

type fakeSender struct {
	sent    []*bot.SendMessageParams
	failFor map[int64]bool
}

func (f *fakeSender) SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error) {
	chatID, _ := params.ChatID.(int64)
	if f.failFor[chatID] {
		return nil, errors.New("chat not found")
	}
	f.sent = append(f.sent, params)
	return &models.Message{ID: len(f.sent)}, nil
}

type fakePostStore struct {
	database.Store

	due     []*database.ScheduledPost
	dueErr  error
	marked  []int64
	markErr error
}

func (f *fakePostStore) GetDuePosts(ctx context.Context, before time.Time) ([]*database.ScheduledPost, error) {
	return f.due, f.dueErr
}

func (f *fakePostStore) MarkPostSent(ctx context.Context, id int64) error {
	if f.markErr != nil {
		return f.markErr
	}
	f.marked = append(f.marked, id)
	return nil
}

func taskDeps(store database.Store, sender Sender) TaskDeps {
	return TaskDeps{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Store:  store,
		Bot:    sender,
		Config: &config.Config{Messages: config.DefaultMessages},
	}
}

func TestDuePostsTaskDeliversAndMarks(t *testing.T) {
	t.Parallel()

	store := &fakePostStore{due: []*database.ScheduledPost{
		{ID: 1, ChatID: 10, Content: "Morning challenge"},
		{ID: 2, ChatID: 20, Content: "Evening wrap-up"},
	}}
	sender := &fakeSender{}

	task := newDuePostsTask(taskDeps(store, sender))

	if err := task(context.Background()); err != nil {
		t.Fatalf("task returned error: %v", err)
	}

	if len(sender.sent) != 2 {
		t.Fatalf("sent = %d messages, want 2", len(sender.sent))
	}
	if sender.sent[0].Text != "Morning challenge" || sender.sent[1].Text != "Evening wrap-up" {
		t.Errorf("unexpected message texts: %q, %q", sender.sent[0].Text, sender.sent[1].Text)
	}
	if len(store.marked) != 2 || store.marked[0] != 1 || store.marked[1] != 2 {
		t.Errorf("marked = %v, want [1 2]", store.marked)
	}
}

func TestDuePostsTaskNothingDue(t *testing.T) {
	t.Parallel()

	store := &fakePostStore{}
	sender := &fakeSender{}

	task := newDuePostsTask(taskDeps(store, sender))

	if err := task(context.Background()); err != nil {
		t.Fatalf("task returned error: %v", err)
	}
	if len(sender.sent) != 0 {
		t.Errorf("sent = %d messages, want 0", len(sender.sent))
	}
}

func TestDuePostsTaskFailedSendStaysUnsent(t *testing.T) {
	t.Parallel()

	store := &fakePostStore{due: []*database.ScheduledPost{
		{ID: 1, ChatID: 10, Content: "Will fail"},
		{ID: 2, ChatID: 20, Content: "Will succeed"},
	}}
	sender := &fakeSender{failFor: map[int64]bool{10: true}}

	task := newDuePostsTask(taskDeps(store, sender))

	if err := task(context.Background()); err == nil {
		t.Fatal("expected error for partial failure, got nil")
	}

	if len(sender.sent) != 1 || sender.sent[0].Text != "Will succeed" {
		t.Fatalf("expected only the second post to be delivered, got %+v", sender.sent)
	}
	if len(store.marked) != 1 || store.marked[0] != 2 {
		t.Errorf("marked = %v, want [2]", store.marked)
	}
}

func TestDuePostsTaskFetchFailure(t *testing.T) {
	t.Parallel()

	store := &fakePostStore{dueErr: errors.New("db locked")}
	sender := &fakeSender{}

	task := newDuePostsTask(taskDeps(store, sender))

	if err := task(context.Background()); err == nil {
		t.Fatal("expected error, got nil")
	}
	if len(sender.sent) != 0 {
		t.Errorf("sent = %d messages, want 0", len(sender.sent))
	}
}

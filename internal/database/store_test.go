package database

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
)

func newTestStore(t *testing.T) (*sqlx.DB, Store) {
	t.Helper()

	db, err := NewDB(":memory:")
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	t.Cleanup(func() { CloseDB(db) })

	return db, NewStore(db, nil)
}

func seedFAQ(t *testing.T, db *sqlx.DB, question, answer string) int64 {
	t.Helper()
	res, err := db.Exec(
		`INSERT INTO faqs (question, answer, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		question, answer, time.Now().UTC(), time.Now().UTC(),
	)
	if err != nil {
		t.Fatalf("failed to seed faq: %v", err)
	}
	id, _ := res.LastInsertId()
	return id
}

func TestFAQs(t *testing.T) {
	db, store := newTestStore(t)
	ctx := context.Background()

	faqs, err := store.ListFAQs(ctx)
	if err != nil {
		t.Fatalf("ListFAQs on empty table: %v", err)
	}
	if len(faqs) != 0 {
		t.Fatalf("expected no faqs, got %d", len(faqs))
	}

	id1 := seedFAQ(t, db, "What is 3C?", "3C stands for Connect, Communicate, Collaborate.")
	seedFAQ(t, db, "How do I use Aurion?", "Just type /ask followed by your question!")

	faqs, err = store.ListFAQs(ctx)
	if err != nil {
		t.Fatalf("ListFAQs: %v", err)
	}
	if len(faqs) != 2 {
		t.Fatalf("expected 2 faqs, got %d", len(faqs))
	}
	if faqs[0].Question != "What is 3C?" {
		t.Errorf("first question = %q", faqs[0].Question)
	}

	faq, err := store.GetFAQ(ctx, id1)
	if err != nil {
		t.Fatalf("GetFAQ: %v", err)
	}
	if faq == nil || faq.Answer != "3C stands for Connect, Communicate, Collaborate." {
		t.Errorf("unexpected faq: %+v", faq)
	}

	missing, err := store.GetFAQ(ctx, 9999)
	if err != nil {
		t.Fatalf("GetFAQ missing: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for missing faq, got %+v", missing)
	}
}

func TestGetRandomFact(t *testing.T) {
	db, store := newTestStore(t)
	ctx := context.Background()

	fact, err := store.GetRandomFact(ctx)
	if err != nil {
		t.Fatalf("GetRandomFact on empty table: %v", err)
	}
	if fact != nil {
		t.Fatalf("expected nil fact, got %+v", fact)
	}

	if _, err := db.Exec(
		`INSERT INTO facts (content, created_at, updated_at) VALUES (?, ?, ?)`,
		"Every person is a diamond.", time.Now().UTC(), time.Now().UTC(),
	); err != nil {
		t.Fatalf("failed to seed fact: %v", err)
	}

	fact, err = store.GetRandomFact(ctx)
	if err != nil {
		t.Fatalf("GetRandomFact: %v", err)
	}
	if fact == nil || fact.Content != "Every person is a diamond." {
		t.Errorf("unexpected fact: %+v", fact)
	}
}

func TestListKeywords(t *testing.T) {
	db, store := newTestStore(t)
	ctx := context.Background()

	if _, err := db.Exec(
		`INSERT INTO keywords (keyword, response, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		"motivate", "You’re stronger than you think, Champ!", time.Now().UTC(), time.Now().UTC(),
	); err != nil {
		t.Fatalf("failed to seed keyword: %v", err)
	}

	keywords, err := store.ListKeywords(ctx)
	if err != nil {
		t.Fatalf("ListKeywords: %v", err)
	}
	if len(keywords) != 1 || keywords[0].Keyword != "motivate" {
		t.Errorf("unexpected keywords: %+v", keywords)
	}
}

func TestScheduledPosts(t *testing.T) {
	_, store := newTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	tests := []struct {
		name string
		post *ScheduledPost
		due  bool
	}{
		{
			name: "already due",
			post: &ScheduledPost{ChatID: 100, Content: "due post", ScheduledAt: now.Add(-time.Minute)},
			due:  true,
		},
		{
			name: "future post",
			post: &ScheduledPost{ChatID: 100, Content: "future post", ScheduledAt: now.Add(time.Hour)},
			due:  false,
		},
	}

	for _, tc := range tests {
		if err := store.SaveScheduledPost(ctx, tc.post); err != nil {
			t.Fatalf("SaveScheduledPost(%s): %v", tc.name, err)
		}
		if tc.post.ID == 0 {
			t.Errorf("SaveScheduledPost(%s) did not set ID", tc.name)
		}
	}

	due, err := store.GetDuePosts(ctx, now)
	if err != nil {
		t.Fatalf("GetDuePosts: %v", err)
	}
	if len(due) != 1 {
		t.Fatalf("expected 1 due post, got %d", len(due))
	}
	if due[0].Content != "due post" {
		t.Errorf("due post content = %q", due[0].Content)
	}

	if err := store.MarkPostSent(ctx, due[0].ID); err != nil {
		t.Fatalf("MarkPostSent: %v", err)
	}

	due, err = store.GetDuePosts(ctx, now)
	if err != nil {
		t.Fatalf("GetDuePosts after mark: %v", err)
	}
	if len(due) != 0 {
		t.Fatalf("expected no due posts after marking sent, got %d", len(due))
	}
}

func TestSaveScheduledPostValidation(t *testing.T) {
	_, store := newTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	tests := []struct {
		name string
		post *ScheduledPost
	}{
		{name: "nil post", post: nil},
		{name: "zero chat id", post: &ScheduledPost{Content: "x", ScheduledAt: now}},
		{name: "empty content", post: &ScheduledPost{ChatID: 1, ScheduledAt: now}},
		{name: "zero scheduled at", post: &ScheduledPost{ChatID: 1, Content: "x"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := store.SaveScheduledPost(ctx, tc.post); err == nil {
				t.Fatal("expected validation error, got nil")
			}
		})
	}
}

func TestRunSQLMaintenance(t *testing.T) {
	_, store := newTestStore(t)
	if err := store.RunSQLMaintenance(context.Background()); err != nil {
		t.Fatalf("RunSQLMaintenance: %v", err)
	}
}

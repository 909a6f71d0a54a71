package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
)

// Store defines the interface for database operations.
// Methods accept context.Context for cancellation and timeouts.
type Store interface {
	// Ping checks the database connection.
	Ping(ctx context.Context) error

	// ListFAQs retrieves all FAQ entries ordered by ID.
	ListFAQs(ctx context.Context) ([]FAQ, error)

	// GetFAQ retrieves a single FAQ entry by ID. Returns nil, nil if not found.
	GetFAQ(ctx context.Context, id int64) (*FAQ, error)

	// GetRandomFact retrieves one random fact. Returns nil, nil if the table is empty.
	GetRandomFact(ctx context.Context) (*Fact, error)

	// ListKeywords retrieves all keyword responses.
	ListKeywords(ctx context.Context) ([]Keyword, error)

	// SaveScheduledPost inserts a new scheduled post record.
	SaveScheduledPost(ctx context.Context, post *ScheduledPost) error

	// GetDuePosts retrieves unsent posts whose scheduled time is at or before 'before'.
	GetDuePosts(ctx context.Context, before time.Time) ([]*ScheduledPost, error)

	// MarkPostSent records the delivery time of a scheduled post.
	MarkPostSent(ctx context.Context, id int64) error

	// RunSQLMaintenance performs database maintenance tasks like VACUUM.
	RunSQLMaintenance(ctx context.Context) error
}

// sqlxStore provides an implementation of the Store interface using sqlx.
type sqlxStore struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewStore creates a new Store implementation backed by sqlx.
// It requires a connected sqlx.DB instance and a logger.
func NewStore(db *sqlx.DB, logger *slog.Logger) Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &sqlxStore{
		db:     db,
		logger: logger.With("component", "store"),
	}
}

func (s *sqlxStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *sqlxStore) ListFAQs(ctx context.Context) ([]FAQ, error) {
	var faqs []FAQ
	query := `SELECT id, created_at, updated_at, question, answer FROM faqs ORDER BY id;`

	if err := s.db.SelectContext(ctx, &faqs, query); err != nil {
		s.logger.ErrorContext(ctx, "Error listing FAQs", "error", err)
		return nil, fmt.Errorf("failed to list faqs: %w", err)
	}

	s.logger.DebugContext(ctx, "Fetched FAQs", "count", len(faqs))
	return faqs, nil
}

func (s *sqlxStore) GetFAQ(ctx context.Context, id int64) (*FAQ, error) {
	if id <= 0 {
		return nil, fmt.Errorf("faq id must be positive")
	}

	var faq FAQ
	query := `SELECT id, created_at, updated_at, question, answer FROM faqs WHERE id = ?;`

	err := s.db.GetContext(ctx, &faq, query, id)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		s.logger.DebugContext(ctx, "No FAQ found", "faq_id", id)
		return nil, nil
	case err != nil:
		s.logger.ErrorContext(ctx, "Error getting FAQ", "faq_id", id, "error", err)
		return nil, fmt.Errorf("failed to get faq %d: %w", id, err)
	}

	return &faq, nil
}

func (s *sqlxStore) GetRandomFact(ctx context.Context) (*Fact, error) {
	var fact Fact
	query := `SELECT id, created_at, updated_at, content FROM facts ORDER BY RANDOM() LIMIT 1;`

	err := s.db.GetContext(ctx, &fact, query)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		s.logger.DebugContext(ctx, "No facts in database")
		return nil, nil
	case err != nil:
		s.logger.ErrorContext(ctx, "Error getting random fact", "error", err)
		return nil, fmt.Errorf("failed to get random fact: %w", err)
	}

	return &fact, nil
}

func (s *sqlxStore) ListKeywords(ctx context.Context) ([]Keyword, error) {
	var keywords []Keyword
	query := `SELECT id, created_at, updated_at, keyword, response FROM keywords ORDER BY id;`

	if err := s.db.SelectContext(ctx, &keywords, query); err != nil {
		s.logger.ErrorContext(ctx, "Error listing keywords", "error", err)
		return nil, fmt.Errorf("failed to list keywords: %w", err)
	}

	return keywords, nil
}

func (s *sqlxStore) SaveScheduledPost(ctx context.Context, post *ScheduledPost) error {
	if post == nil {
		return fmt.Errorf("cannot save nil scheduled post")
	}
	if post.ChatID == 0 {
		return fmt.Errorf("scheduled post must have a non-zero chat_id")
	}
	if post.Content == "" {
		return fmt.Errorf("scheduled post must have non-empty content")
	}
	if post.ScheduledAt.IsZero() {
		return fmt.Errorf("scheduled post must have a non-zero scheduled_at")
	}

	now := time.Now().UTC()
	post.CreatedAt = now
	post.UpdatedAt = now

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to begin transaction for saving post",
			"chat_id", post.ChatID, "error", err)
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if tx != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
				s.logger.WarnContext(ctx, "Error rolling back transaction", "error", rollbackErr)
			}
		}
	}()

	query := `
        INSERT INTO scheduled_posts (chat_id, content, scheduled_at, sent_at, created_at, updated_at)
        VALUES (:chat_id, :content, :scheduled_at, :sent_at, :created_at, :updated_at);
    `

	result, err := tx.NamedExecContext(ctx, query, post)
	if err != nil {
		s.logger.ErrorContext(ctx, "Error saving scheduled post", "chat_id", post.ChatID, "error", err)
		return fmt.Errorf("failed to save scheduled post for chat %d: %w", post.ChatID, err)
	}

	if id, err := result.LastInsertId(); err == nil {
		post.ID = id
	} else {
		s.logger.WarnContext(ctx, "Could not retrieve last insert ID for scheduled post",
			"chat_id", post.ChatID, "error", err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.ErrorContext(ctx, "Failed to commit transaction", "chat_id", post.ChatID, "error", err)
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	tx = nil

	s.logger.DebugContext(ctx, "Scheduled post saved",
		"post_id", post.ID, "chat_id", post.ChatID, "scheduled_at", post.ScheduledAt)
	return nil
}

func (s *sqlxStore) GetDuePosts(ctx context.Context, before time.Time) ([]*ScheduledPost, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	var posts []*ScheduledPost
	query := `
        SELECT id, created_at, updated_at, chat_id, content, scheduled_at, sent_at
        FROM scheduled_posts
        WHERE sent_at IS NULL AND scheduled_at <= ?
        ORDER BY scheduled_at ASC;
    `

	err := s.db.SelectContext(ctx, &posts, query, before.UTC())
	if err != nil {
		s.logger.ErrorContext(ctx, "Error getting due posts", "before", before, "error", err)
		return nil, fmt.Errorf("failed to get due posts: %w", err)
	}

	s.logger.DebugContext(ctx, "Fetched due posts", "count", len(posts))
	return posts, nil
}

func (s *sqlxStore) MarkPostSent(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("post id must be positive")
	}

	now := time.Now().UTC()
	query := `UPDATE scheduled_posts SET sent_at = ?, updated_at = ? WHERE id = ? AND sent_at IS NULL;`

	result, err := s.db.ExecContext(ctx, query, now, now, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "Error marking post as sent", "post_id", id, "error", err)
		return fmt.Errorf("failed to mark post %d as sent: %w", id, err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected != 1 {
		s.logger.WarnContext(ctx, "Unexpected number of rows affected when marking post sent",
			"post_id", id, "affected", affected)
	}

	return nil
}

// RunSQLMaintenance executes a VACUUM command on the SQLite database.
// VACUUM must run outside a transaction in SQLite.
func (s *sqlxStore) RunSQLMaintenance(ctx context.Context) error {
	if ctx.Err() != nil {
		s.logger.WarnContext(ctx, "Context cancelled before starting VACUUM", "error", ctx.Err())
		return ctx.Err()
	}

	s.logger.InfoContext(ctx, "Starting database maintenance (VACUUM)...")

	_, err := s.db.ExecContext(ctx, "VACUUM;")
	switch {
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled):
		s.logger.WarnContext(ctx, "VACUUM operation timed out or was cancelled", "error", err)
		return fmt.Errorf("database maintenance (VACUUM) timed out: %w", err)
	case err != nil:
		s.logger.ErrorContext(ctx, "Database maintenance (VACUUM) failed", "error", err)
		return fmt.Errorf("failed to execute VACUUM: %w", err)
	}

	s.logger.InfoContext(ctx, "Database maintenance (VACUUM) completed")
	return nil
}

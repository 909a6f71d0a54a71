package database

import (
	"database/sql"
	"time"
)

// FAQ is a question and answer pair served through the /faq inline keyboard.
type FAQ struct {
	ID        int64     `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`

	Question string `db:"question"`
	Answer   string `db:"answer"`
}

// Fact is a community fact served randomly through /fact.
type Fact struct {
	ID        int64     `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`

	Content string `db:"content"`
}

// Keyword maps a trigger word contained in a plain text message to a canned
// response.
type Keyword struct {
	ID        int64     `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`

	Keyword  string `db:"keyword"`
	Response string `db:"response"`
}

// ScheduledPost is a message queued for delivery to a chat at a later time.
// SentAt is NULL until the due_posts task delivers it.
type ScheduledPost struct {
	ID        int64     `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`

	ChatID      int64        `db:"chat_id"`
	Content     string       `db:"content"`
	ScheduledAt time.Time    `db:"scheduled_at"`
	SentAt      sql.NullTime `db:"sent_at"`
}

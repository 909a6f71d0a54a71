// Package config manages application configuration from default values,
// an optional config.yaml file, and environment variables.
package config

import (
	"time"
)

// Config defines the application configuration parameters for all components
// of the Aurion bot, including logging, Telegram settings, the OpenAI client,
// storage, scheduled tasks, and user-facing message texts.
type Config struct {
	Log       LogConfig       `mapstructure:"log"`
	Telegram  TelegramConfig  `mapstructure:"telegram"`
	OpenAI    OpenAIConfig    `mapstructure:"openai"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Messages  MessagesConfig  `mapstructure:"messages"`
}

// LogConfig controls the slog logger output.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	JSON  bool   `mapstructure:"json"`
}

// TelegramConfig holds Telegram-specific settings. Token comes from the
// TELEGRAM_BOT_TOKEN environment variable (or config.yaml) and is mandatory.
type TelegramConfig struct {
	Token   string `mapstructure:"token"    validate:"required"`
	OwnerID int64  `mapstructure:"owner_id"`
}

// OpenAIConfig holds settings for the chat-completion client. APIKey comes
// from the OPENAI_API_KEY environment variable (or config.yaml) and is mandatory.
type OpenAIConfig struct {
	APIKey      string        `mapstructure:"api_key"     validate:"required"`
	BaseURL     string        `mapstructure:"base_url"    validate:"required,url"`
	Model       string        `mapstructure:"model"       validate:"required"`
	Temperature float32       `mapstructure:"temperature" validate:"min=0,max=2"`
	MaxTokens   int           `mapstructure:"max_tokens"  validate:"min=1"`
	Timeout     time.Duration `mapstructure:"timeout"     validate:"min=1s,max=10m"`
	Instruction string        `mapstructure:"instruction" validate:"required"`
}

// DatabaseConfig holds SQLite storage settings.
type DatabaseConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// SchedulerConfig holds the per-task scheduling configuration, keyed by
// task name as registered in the tasks package.
type SchedulerConfig struct {
	Tasks map[string]TaskConfig `mapstructure:"tasks"`
}

// TaskConfig enables or disables a single scheduled task and sets its
// cron schedule.
type TaskConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule"`
}

// MessagesConfig holds all user-facing message texts so deployments can
// rephrase the bot without code changes.
type MessagesConfig struct {
	Welcome           string   `mapstructure:"welcome"             validate:"required"`
	Help              string   `mapstructure:"help"                validate:"required"`
	AskUsage          string   `mapstructure:"ask_usage"           validate:"required"`
	AskError          string   `mapstructure:"ask_error"           validate:"required"`
	IDCard            string   `mapstructure:"id_card"             validate:"required"`
	Rules             string   `mapstructure:"rules"               validate:"required"`
	Hashtags          []string `mapstructure:"hashtags"            validate:"required,min=1"`
	Topics            []string `mapstructure:"topics"              validate:"required,min=1"`
	FactHeader        string   `mapstructure:"fact_header"         validate:"required"`
	NoFacts           string   `mapstructure:"no_facts"            validate:"required"`
	FAQPrompt         string   `mapstructure:"faq_prompt"          validate:"required"`
	NoFAQ             string   `mapstructure:"no_faq"              validate:"required"`
	FAQNotFound       string   `mapstructure:"faq_not_found"       validate:"required"`
	NotAuthorized     string   `mapstructure:"not_authorized"      validate:"required"`
	ManualPostUsage   string   `mapstructure:"manual_post_usage"   validate:"required"`
	SchedulePostUsage string   `mapstructure:"schedule_post_usage" validate:"required"`
	PostScheduled     string   `mapstructure:"post_scheduled"      validate:"required"`
	MemberWelcome     string   `mapstructure:"member_welcome"      validate:"required"`
	MemberFarewell    string   `mapstructure:"member_farewell"     validate:"required"`
}

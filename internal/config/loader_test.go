package config

import (
	"testing"
)

func TestLoadRequiresCredentials(t *testing.T) {
	tests := []struct {
		name          string
		telegramToken string
		openaiKey     string
		wantErr       bool
	}{
		{name: "both set", telegramToken: "123456:test-token", openaiKey: "sk-test", wantErr: false},
		{name: "missing telegram token", telegramToken: "", openaiKey: "sk-test", wantErr: true},
		{name: "missing openai key", telegramToken: "123456:test-token", openaiKey: "", wantErr: true},
		{name: "both missing", telegramToken: "", openaiKey: "", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("TELEGRAM_BOT_TOKEN", tc.telegramToken)
			t.Setenv("OPENAI_API_KEY", tc.openaiKey)

			cfg, err := Load()
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.Telegram.Token != tc.telegramToken {
				t.Errorf("telegram token = %q, want %q", cfg.Telegram.Token, tc.telegramToken)
			}
			if cfg.OpenAI.APIKey != tc.openaiKey {
				t.Errorf("openai api key = %q, want %q", cfg.OpenAI.APIKey, tc.openaiKey)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "123456:test-token")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.OpenAI.Model != DefaultOpenAIModel {
		t.Errorf("model = %q, want %q", cfg.OpenAI.Model, DefaultOpenAIModel)
	}
	if cfg.OpenAI.MaxTokens != DefaultOpenAIMaxTokens {
		t.Errorf("max tokens = %d, want %d", cfg.OpenAI.MaxTokens, DefaultOpenAIMaxTokens)
	}
	if cfg.OpenAI.Instruction != DefaultOpenAIInstruction {
		t.Errorf("instruction = %q, want %q", cfg.OpenAI.Instruction, DefaultOpenAIInstruction)
	}
	if cfg.Log.Level != DefaultLogLevel {
		t.Errorf("log level = %q, want %q", cfg.Log.Level, DefaultLogLevel)
	}
	if cfg.Messages.Welcome == "" || cfg.Messages.AskUsage == "" || cfg.Messages.AskError == "" {
		t.Error("expected default messages to be populated")
	}
	if len(cfg.Scheduler.Tasks) == 0 {
		t.Error("expected default scheduler tasks to be populated")
	}
	if task, ok := cfg.Scheduler.Tasks["due_posts"]; !ok || !task.Enabled {
		t.Error("expected due_posts task to be enabled by default")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "123456:test-token")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("BOT_OPENAI_MODEL", "gpt-4o-mini")
	t.Setenv("BOT_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.OpenAI.Model != "gpt-4o-mini" {
		t.Errorf("model = %q, want gpt-4o-mini", cfg.OpenAI.Model)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q, want debug", cfg.Log.Level)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "bad log level", key: "BOT_LOG_LEVEL", value: "verbose"},
		{name: "bad base url", key: "BOT_OPENAI_BASE_URL", value: "not-a-url"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("TELEGRAM_BOT_TOKEN", "123456:test-token")
			t.Setenv("OPENAI_API_KEY", "sk-test")
			t.Setenv(tc.key, tc.value)

			if _, err := Load(); err == nil {
				t.Fatal("expected validation error, got nil")
			}
		})
	}
}

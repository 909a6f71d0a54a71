package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// ErrConfiguration indicates a configuration loading or validation failure.
var ErrConfiguration = errors.New("configuration error")

// Load loads and validates configuration from:
// 1. Default values
// 2. config.yaml file (optional)
// 3. Environment variables (BOT_* plus TELEGRAM_BOT_TOKEN and OPENAI_API_KEY)
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("BOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The credentials are expected under their conventional names, without
	// the BOT_ prefix.
	if err := v.BindEnv("telegram.token", "TELEGRAM_BOT_TOKEN", "BOT_TELEGRAM_TOKEN"); err != nil {
		return nil, fmt.Errorf("%w: failed to bind telegram token: %v", ErrConfiguration, err)
	}
	if err := v.BindEnv("openai.api_key", "OPENAI_API_KEY", "BOT_OPENAI_API_KEY"); err != nil {
		return nil, fmt.Errorf("%w: failed to bind openai api key: %v", ErrConfiguration, err)
	}

	// Allow missing config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("%w: failed to read config file: %v", ErrConfiguration, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("%w: failed to parse config: %v", ErrConfiguration, err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}

	return cfg, nil
}

// setDefaults sets default values for optional configuration parameters.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.json", DefaultLogJSON)

	v.SetDefault("database.path", DefaultDBPath)

	v.SetDefault("openai.base_url", DefaultOpenAIBaseURL)
	v.SetDefault("openai.model", DefaultOpenAIModel)
	v.SetDefault("openai.temperature", DefaultOpenAITemperature)
	v.SetDefault("openai.max_tokens", DefaultOpenAIMaxTokens)
	v.SetDefault("openai.timeout", DefaultOpenAITimeout)
	v.SetDefault("openai.instruction", DefaultOpenAIInstruction)

	v.SetDefault("scheduler.tasks", DefaultSchedulerTasks)

	v.SetDefault("messages.welcome", DefaultMessages.Welcome)
	v.SetDefault("messages.help", DefaultMessages.Help)
	v.SetDefault("messages.ask_usage", DefaultMessages.AskUsage)
	v.SetDefault("messages.ask_error", DefaultMessages.AskError)
	v.SetDefault("messages.id_card", DefaultMessages.IDCard)
	v.SetDefault("messages.rules", DefaultMessages.Rules)
	v.SetDefault("messages.hashtags", DefaultMessages.Hashtags)
	v.SetDefault("messages.topics", DefaultMessages.Topics)
	v.SetDefault("messages.fact_header", DefaultMessages.FactHeader)
	v.SetDefault("messages.no_facts", DefaultMessages.NoFacts)
	v.SetDefault("messages.faq_prompt", DefaultMessages.FAQPrompt)
	v.SetDefault("messages.no_faq", DefaultMessages.NoFAQ)
	v.SetDefault("messages.faq_not_found", DefaultMessages.FAQNotFound)
	v.SetDefault("messages.not_authorized", DefaultMessages.NotAuthorized)
	v.SetDefault("messages.manual_post_usage", DefaultMessages.ManualPostUsage)
	v.SetDefault("messages.schedule_post_usage", DefaultMessages.SchedulePostUsage)
	v.SetDefault("messages.post_scheduled", DefaultMessages.PostScheduled)
	v.SetDefault("messages.member_welcome", DefaultMessages.MemberWelcome)
	v.SetDefault("messages.member_farewell", DefaultMessages.MemberFarewell)
}

// Package config loads the command line settings from config.toml, .env files and the environment.
package config

import (
	"errors"
	"fmt"
	"strings"

	"telegramapis/retry"
	"telegramapis/telegram"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

var ErrMissingToken = errors.New("no bot token configured, set telegram.bot_token or TELEGRAM_TOKEN")

type Config struct {
	Token    string
	ChatID   string
	APIURL   string
	LogLevel string
	Retry    retry.Policy
}

// Load reads path, or config.toml in the working directory when path is empty. A missing default
// config file is fine as long as the environment provides the token.
func Load(path string) (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	v.SetConfigType("toml")
	v.SetDefault("telegram.api_url", telegram.DefaultBaseURL)
	v.SetDefault("bot.log_level", "info")
	v.SetDefault("retry.attempts", 3)
	v.SetDefault("retry.interval", "2s")

	for key, env := range map[string]string{
		"telegram.bot_token": "TELEGRAM_TOKEN",
		"telegram.chat_id":   "TELEGRAM_GROUP_LOG",
		"telegram.api_url":   "TELEGRAM_API_URL",
		"bot.log_level":      "LOG_LEVEL",
	} {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("error binding %s: %w", env, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
			log.Debug().Msg("no config file found, using environment")
		}
	}

	cfg := &Config{
		Token:    strings.TrimSpace(v.GetString("telegram.bot_token")),
		ChatID:   strings.TrimSpace(v.GetString("telegram.chat_id")),
		APIURL:   v.GetString("telegram.api_url"),
		LogLevel: v.GetString("bot.log_level"),
		Retry: retry.Policy{
			Attempts: v.GetUint("retry.attempts"),
			Interval: v.GetDuration("retry.interval"),
		},
	}

	if cfg.Token == "" {
		return nil, ErrMissingToken
	}

	return cfg, nil
}

// loadEnvFiles never overrides variables already set in the environment.
func loadEnvFiles() {
	for _, f := range []string{".env", ".env.local"} {
		_ = godotenv.Load(f)
	}
}

func (c *Config) Level() zerolog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

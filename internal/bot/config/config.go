package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds the application configuration parameters.
// Each field corresponds to an expected environment variable.
type Config struct {
	EnvLogsLevel      string `env:"LOG_LEVEL" envDefault:"info"`                // Log level for the application (e.g., DEBUG, INFO)
	EnvLogFileName    string `env:"LOG_FILE_NAME" envDefault:"homeworkBot.log"` // File's name for log
	EnvPracticumToken string `env:"PRACTICUM_TOKEN"`                            // OAuth token for the homework statuses API
	EnvBotToken       string `env:"TELEGRAM_TOKEN"`                             // Telegram Bot Token for authentication with the Telegram API
	EnvChatID         int64  `env:"TELEGRAM_CHAT_ID"`                           // TG chat ID that receives status notifications
}

// NewConfig initializes a new Config instance by loading environment variables from a .env file.
// It returns a pointer to the Config struct and an error if any of the required variables are missing.
func NewConfig() (*Config, error) {
	if err := godotenv.Load("bot.env"); err != nil {
		logrus.Infof("No bot.env file found, reading configuration from environment: %v", err)
	}

	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	// A variable exported as an empty string bypasses envDefault,
	// so optional fields are normalized here.
	if config.EnvLogsLevel == "" {
		config.EnvLogsLevel = "info"
	}
	if config.EnvLogFileName == "" {
		config.EnvLogFileName = "homeworkBot.log"
	}

	var missing []string
	if config.EnvPracticumToken == "" {
		missing = append(missing, "PRACTICUM_TOKEN")
	}
	if config.EnvBotToken == "" {
		missing = append(missing, "TELEGRAM_TOKEN")
	}
	if config.EnvChatID == 0 {
		missing = append(missing, "TELEGRAM_CHAT_ID")
	}
	if len(missing) > 0 {
		err := fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
		logrus.Error(err)
		return nil, err
	}

	return config, nil
}

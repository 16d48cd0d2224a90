// Package bot provides dependency injection and service management for the
// homework status bot. It initializes and provides access to the API client,
// the notifier and the polling service.
package bot

import (
	"fmt"
	"sync"

	"github.com/Ramengor/homework-bot/internal/bot/api"
	"github.com/Ramengor/homework-bot/internal/bot/service"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// ServiceProvider manages the dependency injection for the bot components.
type ServiceProvider struct {
	// Practicum API client
	apiClient service.HomeworkAPI

	// Notifier
	notifier service.Notifier

	// Bot API
	botAPI *tgbotapi.BotAPI

	// Polling service
	homeworkBot *service.HomeworkBot

	// Config values
	apiEndpoint    string
	practicumToken string
	chatID         int64

	apiClientOnce   sync.Once
	notifierOnce    sync.Once
	botAPIOnce      sync.Once
	homeworkBotOnce sync.Once
}

// NewServiceProvider creates a new instance of the service provider.
func NewServiceProvider(apiEndpoint, practicumToken string, chatID int64) *ServiceProvider {
	if apiEndpoint == "" || practicumToken == "" || chatID == 0 {
		logrus.Fatal("All ServiceProvider configuration fields must be non-empty")
	}
	return &ServiceProvider{
		apiEndpoint:    apiEndpoint,
		practicumToken: practicumToken,
		chatID:         chatID,
	}
}

// APIClient returns the client for the homework statuses API.
func (s *ServiceProvider) APIClient() service.HomeworkAPI {
	s.apiClientOnce.Do(func() {
		s.apiClient = api.NewClient(s.apiEndpoint, s.practicumToken)
		logrus.Info("APIClient initialized")
	})
	return s.apiClient
}

// Notifier returns the best-effort Telegram notifier.
func (s *ServiceProvider) Notifier(botAPI *tgbotapi.BotAPI) service.Notifier {
	s.notifierOnce.Do(func() {
		s.notifier = service.NewTelegramNotifier(botAPI, s.chatID)
		logrus.Info("Notifier initialized")
	})
	return s.notifier
}

// BotAPI returns the Telegram Bot API instance.
func (s *ServiceProvider) BotAPI(token string) (*tgbotapi.BotAPI, error) {
	var err error
	s.botAPIOnce.Do(func() {
		s.botAPI, err = tgbotapi.NewBotAPI(token)
		if err != nil {
			logrus.Errorf("Failed to initialize BotAPI: %v", err)
			s.botAPI = nil
		}
	})
	if s.botAPI == nil {
		return nil, fmt.Errorf("bot API not initialized")
	}

	logrus.Info("BotApi initialized")
	return s.botAPI, nil
}

// HomeworkBot returns the main polling service.
func (s *ServiceProvider) HomeworkBot(botAPI *tgbotapi.BotAPI, fromDate int64) *service.HomeworkBot {
	s.homeworkBotOnce.Do(func() {
		s.homeworkBot = service.NewHomeworkBot(
			s.APIClient(),
			s.Notifier(botAPI),
			fromDate,
		)
		logrus.Info("HomeworkBot initialized")
	})
	return s.homeworkBot
}

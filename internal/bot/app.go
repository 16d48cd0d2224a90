package bot

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Ramengor/homework-bot/internal/bot/config"
	"github.com/Ramengor/homework-bot/internal/logcfg"
	"github.com/sirupsen/logrus"
)

// App represents the application structure responsible for initializing dependencies
// and running the homework status bot.
type App struct {
	serviceProvider *ServiceProvider // The service provider for dependency injection
	config          *config.Config   // The configuration object for the application
}

// NewApp creates a new instance of the application.
func NewApp(ctx context.Context) (*App, error) {
	app := &App{}
	err := app.initDeps(ctx)
	if err != nil {
		return nil, err
	}
	return app, nil
}

// Run starts the application and runs the polling loop.
func (a *App) Run() {
	a.runPolling()
}

// initDeps initializes all dependencies required by the application.
func (a *App) initDeps(ctx context.Context) error {
	inits := []func(context.Context) error{
		a.initConfig,
		a.initServiceProvider,
	}

	for _, f := range inits {
		err := f(ctx)
		if err != nil {
			return err
		}
	}

	return nil
}

// initConfig initializes the application configuration.
func (a *App) initConfig(_ context.Context) error {
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}
	a.config = cfg
	logcfg.RunLoggerConfig(a.config.EnvLogsLevel, a.config.EnvLogFileName)
	return nil
}

// initServiceProvider initializes the service provider for dependency injection.
func (a *App) initServiceProvider(_ context.Context) error {
	const HomeworkStatusesAPI = "https://practicum.yandex.ru/api/user_api/homework_statuses/"

	a.serviceProvider = NewServiceProvider(
		HomeworkStatusesAPI,
		a.config.EnvPracticumToken,
		a.config.EnvChatID,
	)
	return nil
}

// runPolling starts the polling loop with graceful shutdown.
func (a *App) runPolling() {
	const retryPeriod = 600 * time.Second

	// Initialize bot API
	botAPI, err := a.serviceProvider.BotAPI(a.config.EnvBotToken)
	if err != nil {
		logrus.Fatalf("[ERROR] can't make telegram bot, %v", err)
	}
	logrus.Infof("Bot API created successfully for %s", botAPI.Self.UserName)

	// Initialize homework bot service with the cursor set to "now"
	homeworkBot := a.serviceProvider.HomeworkBot(botAPI, time.Now().Unix())

	ticker := time.NewTicker(retryPeriod)
	defer ticker.Stop()

	// Setup signal handling for graceful shutdown
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)

	// Main loop: one iteration, then wait out the retry period.
	// The wait happens unconditionally, even when the iteration failed.
	for {
		homeworkBot.ProcessOnce()

		select {
		case sig := <-signalChan:
			logrus.Infof("Received %v signal, shutting down bot...", sig)
			logrus.Info("Shutting down main loop...")
			return
		case <-ticker.C:
		}
	}
}

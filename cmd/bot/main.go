package main

import (
	"context"

	"github.com/Ramengor/homework-bot/internal/bot"
	"github.com/sirupsen/logrus"
)

func main() {
	ctx := context.Background()

	application, err := bot.NewApp(ctx)
	if err != nil {
		logrus.Fatalf("Failed to start bot: %v", err)
	}
	application.Run()
}

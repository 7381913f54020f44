package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"remindbot/internal/ai"
	"remindbot/internal/bot"
	"remindbot/internal/config"
	"remindbot/internal/database"
	"remindbot/internal/repository"
	"remindbot/internal/scheduler"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("zap.NewDevelopment: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	cfg, err := config.Load()
	if err != nil {
		sugar.Fatalf("Failed to load config: %v", err)
	}

	if cfg.DatabaseURI == "" {
		sugar.Fatal("DATABASE_URI is required")
	}
	if cfg.TelegramToken == "" {
		sugar.Fatal("TELEGRAM_TOKEN is required")
	}

	loc, err := cfg.Location()
	if err != nil {
		sugar.Fatalf("Invalid REMINDER_TIMEZONE %q: %v", cfg.Timezone, err)
	}
	sugar.Infof("Reminder timezone: %s", cfg.Timezone)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := database.New(ctx, cfg.DatabaseURI, logger)
	if err != nil {
		sugar.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	sugar.Info("Connected to database")

	if err := db.Migrate(ctx, sugar); err != nil {
		sugar.Fatalf("Failed to run migrations: %v", err)
	}

	// AI suggestions are optional
	var aiClient *ai.Client
	if cfg.AIAPIKey != "" {
		aiClient = ai.New(cfg.AIAPIKey, cfg.AIBaseURL, cfg.AIModel)
		sugar.Infof("AI client initialized (model: %s)", cfg.AIModel)
	}

	// Separate Telegram API client for the scheduler
	tgAPI, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		sugar.Fatalf("Failed to create Telegram API: %v", err)
	}

	reminderRepo := repository.NewReminderRepository(db)

	sched := scheduler.New(tgAPI, reminderRepo, loc, sugar)
	go sched.Start(ctx)

	b, err := bot.New(cfg.TelegramToken, reminderRepo, aiClient, loc, sugar)
	if err != nil {
		sugar.Fatalf("Failed to create bot: %v", err)
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		sugar.Info("Shutting down...")
		cancel()
	}()

	sugar.Info("Starting bot...")
	if err := b.Start(ctx); err != nil && err != context.Canceled {
		sugar.Fatalf("Bot error: %v", err)
	}
}

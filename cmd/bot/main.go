package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Traverser25/GetCoditer/internal/bot"
	"github.com/Traverser25/GetCoditer/internal/config"
	"github.com/Traverser25/GetCoditer/internal/database"
	"github.com/Traverser25/GetCoditer/internal/query"
)

func main() {
	cfg := config.Load()
	if cfg.TelegramToken == "" {
		log.Fatal("TELEGRAM_BOT_TOKEN is required")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	repo, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer repo.Close()

	engine := query.NewEngine(repo)

	b, err := bot.New(cfg.TelegramToken, engine, repo)
	if err != nil {
		log.Fatalf("❌ Failed to init Telegram bot: %v", err)
	}

	log.Println("🤖 Candidate search bot started.")
	if err := b.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("❌ Bot stopped: %v", err)
	}
	log.Println("🏁 Bot shut down.")
}

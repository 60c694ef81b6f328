package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Traverser25/GetCoditer/internal/config"
	"github.com/Traverser25/GetCoditer/internal/database"
	"github.com/Traverser25/GetCoditer/internal/dedup"
	"github.com/Traverser25/GetCoditer/internal/parser"
	"github.com/Traverser25/GetCoditer/internal/reddit"
	"github.com/Traverser25/GetCoditer/internal/scheduler"
)

func main() {
	//load config
	cfg := config.Load()
	log.Printf("🔧 Config loaded. Source: r/%s, query: %q", cfg.Subreddit, cfg.SearchQuery)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	//store unavailability is fatal: no retry, no degraded mode
	repo, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer repo.Close()

	client := reddit.NewClient(cfg.Subreddit, cfg.SearchQuery)
	cache := dedup.NewCommentCache(cfg.CachePath)

	run := func(ctx context.Context) {
		runBatch(ctx, client, cache, repo)
	}

	//scheduled mode keeps the process alive and re-scans periodically
	if cfg.CronSpec != "" {
		log.Printf("⏰ Scheduling ingestion: %s", cfg.CronSpec)
		sched := scheduler.New(cfg.CronSpec)
		if err := sched.Start(ctx, run); err != nil {
			log.Fatalf("❌ Failed to start scheduler: %v", err)
		}
		defer sched.Stop()
		<-ctx.Done()
		return
	}

	run(ctx)
}

// runBatch processes one retrieval batch: fetch the current megathread,
// build a candidate per comment, insert the keepers. Each comment resolves
// to exactly one counted outcome.
func runBatch(ctx context.Context, client *reddit.Client, cache *dedup.CommentCache, store database.Store) {
	log.Println("🔍 Searching for the current megathread...")
	permalink, err := client.SearchMegathread(ctx, time.Now())
	if err != nil {
		log.Printf("❌ %v", err)
		return
	}

	thread, err := client.FetchThread(ctx, permalink)
	if err != nil {
		log.Printf("❌ Could not fetch thread: %v", err)
		return
	}
	log.Printf("📝 %s", thread.Title)
	log.Printf("💬 Total comments: %d", len(thread.Comments))

	var inserted, rejected, duplicates int
	var ingestedKeys []string

	for _, comment := range thread.Comments {
		key := dedup.Key(comment)
		if cache.IsSeen(key) {
			duplicates++
			continue
		}

		candidate, ok := parser.Build(comment)
		if !ok {
			rejected++
			continue
		}

		if _, err := store.Insert(ctx, &candidate); err != nil {
			log.Fatalf("❌ Insert failed: %v", err)
		}
		ingestedKeys = append(ingestedKeys, key)
		inserted++
	}

	cache.Add(ingestedKeys)
	log.Printf("✅ Done. inserted=%d rejected=%d duplicates=%d", inserted, rejected, duplicates)
}

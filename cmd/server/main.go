package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v3"

	"github.com/SanaUllah13/youtools-go/internal/config"
	"github.com/SanaUllah13/youtools-go/internal/db"
	"github.com/SanaUllah13/youtools-go/internal/handler"
	"github.com/SanaUllah13/youtools-go/internal/middleware"
	"github.com/SanaUllah13/youtools-go/internal/repository"
	"github.com/SanaUllah13/youtools-go/internal/router"
	"github.com/SanaUllah13/youtools-go/internal/service"
	"github.com/SanaUllah13/youtools-go/internal/youtube"
)

func main() {
	cfg := config.Load()

	middleware.InitLogger(cfg.LogLevel, "youtools-api")

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	if pool != nil {
		defer pool.Close()
	}

	cache := service.NewCacheService(cfg.RedisURL, cfg.CacheTTL)
	defer cache.Close()

	repo := repository.NewAnalysisRepo(pool)

	// Classifier: rule-based always, LLM in front when a key is configured.
	var external service.ExternalClassifier
	if cfg.ClassifierAPIKey != "" {
		external = service.NewLLMClassifier(cfg.ClassifierAPIKey, cfg.ClassifierBaseURL, cfg.ClassifierModel)
	}
	classifier := service.NewClassifierService(external)

	fetcher := service.NewFetcherService(
		youtube.NewSearchClient(),
		youtube.NewChannelClient(),
		cfg.SearchInterval,
	)

	analyze := service.NewAnalyzeService(
		classifier,
		fetcher,
		service.NewScoreService(),
		service.NewInsightService(),
		youtube.NewMetadataClient(),
		cache,
		repo,
		cfg.MaxVideos,
	)

	worker := service.NewRefreshWorker(analyze, cache, repo, cfg.RefreshInterval)
	go worker.Start(ctx)
	defer worker.Stop()

	handler.InitMetrics(pool)

	app := fiber.New(fiber.Config{
		AppName:      "YouTools API",
		ServerHeader: "YouTools",
	})

	router.Setup(app, &router.Handlers{
		Analyze: handler.NewAnalyzeHandler(analyze),
		Stats:   handler.NewStatsHandler(repo),
		Health:  handler.NewHealthHandler(pool, cache.Client()),
	}, cfg.CORSOrigins)

	log.Printf("YouTools Go backend starting on :%s (env=%s)", cfg.Port, cfg.Environment)
	log.Fatal(app.Listen(":" + cfg.Port))
}

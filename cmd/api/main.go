package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"purna/internal/api"
	"purna/internal/config"
	"purna/internal/metrics"
	"purna/internal/plan"
	"purna/internal/platform/gemini"
	"purna/internal/platform/purna"
	"purna/internal/session"
	"purna/internal/store"
)

var configPath = flag.String("config", "config.json", "Path to the JSON configuration file")

func main() {
	flag.Parse()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	remote := purna.NewClient(cfg.APIBaseURL)
	source, closeSource, err := newRecipeSource(ctx, cfg, remote)
	if err != nil {
		log.Fatalf("Failed to create recipe source: %v", err)
	}
	defer closeSource()

	fixtures, err := newFixtures(cfg)
	if err != nil {
		log.Fatalf("Failed to load store fixtures: %v", err)
	}

	collector := metrics.NewCollector()
	planner := plan.NewPlanner(source, collector)
	aggregator := store.NewAggregator(remote, fixtures, collector)
	manager := session.NewManager(collector)
	service := session.NewService(manager, planner, aggregator, collector)

	handler := api.NewHandler(planner, aggregator, manager, service, cfg.Timeout())
	server := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: api.NewRouter(handler, collector.Handler(), cfg.AllowedOrigins),
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down server...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
		cancel()
	}()

	log.Printf("Starting API server on %s (recipe source: %s)", cfg.ListenAddr, cfg.RecipeSource)
	if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("API server error: %v", err)
	}
}

// newRecipeSource picks the recipe backend named in cfg. The returned func
// releases it.
func newRecipeSource(ctx context.Context, cfg config.Config, remote *purna.Client) (plan.RecipeSource, func(), error) {
	switch cfg.RecipeSource {
	case config.SourcePurna:
		return remote, func() {}, nil
	case config.SourceGemini:
		client, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, nil, fmt.Errorf("error creating gemini client: %w", err)
		}
		return client, func() {
			if err := client.Close(); err != nil {
				log.Printf("Failed to close gemini client: %v", err)
			}
		}, nil
	}
	return nil, nil, fmt.Errorf("unknown recipe source %q", cfg.RecipeSource)
}

// newFixtures returns the local store table, or none when demo fixtures are off.
func newFixtures(cfg config.Config) (store.Fixtures, error) {
	if !cfg.DemoFixtures {
		return store.NoFixtures{}, nil
	}
	set, err := store.LoadFixtures(cfg.FixturesPath)
	if err != nil {
		return nil, err
	}
	return set, nil
}

package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"wordbook/internal/cache"
	"wordbook/internal/config"
	"wordbook/internal/dictionary"
	"wordbook/internal/jobs"
	"wordbook/internal/metrics"
	"wordbook/internal/models"
	"wordbook/internal/offline"
	"wordbook/internal/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	metrics.Init()

	// Offline store: redis when configured, in-memory for development.
	var kv offline.KV
	if cfg.RedisURL != "" {
		kv = offline.NewRedisKV(cfg.RedisURL)
		log.Println("Offline store backed by redis")
	} else {
		kv = offline.NewMemoryKV()
		log.Println("Offline store is in-memory (set REDIS_URL to persist)")
	}
	storage := offline.NewStorage(kv)

	// Precache manifest (optional config.yaml).
	precache, err := config.LoadPrecacheConfig()
	if err != nil {
		log.Fatalf("Failed to load precache config: %v", err)
	}
	version := cfg.CacheVersion
	if precache != nil && precache.Version != "" {
		version = precache.Version
	}
	assets, fallbackURL := precache.ResolveAssets(cfg.BaseURL)

	// Intercepting transport: definition requests are network-first,
	// everything else cache-first.
	transport, err := offline.NewTransport(offline.TransportConfig{
		Static:      storage.Open(offline.StaticNamespace(version)),
		Runtime:     storage.Open(offline.RuntimeNamespace),
		APIOrigin:   cfg.APIOrigin,
		FallbackURL: fallbackURL,
	})
	if err != nil {
		log.Fatalf("Failed to build offline transport: %v", err)
	}
	httpClient := &http.Client{
		Transport: transport,
		Timeout:   10 * time.Second,
	}

	lookupCache := cache.New[[]models.Entry](cfg.LookupTTL, cfg.LookupMaxEntries)
	dict := dictionary.New(httpClient, lookupCache, cfg.APIOrigin)

	// HTTP server
	srv := server.New(cfg)
	srv.RegisterRoutes(dict, storage)

	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	// Install/activate the static store once the server can answer for
	// its own assets. An install failure keeps the previous version's
	// stores in place, so activation is skipped.
	if len(assets) > 0 {
		installer := offline.NewInstaller(storage, nil, version, assets)
		if err := installer.Install(ctx); err != nil {
			log.Printf("Static precache failed, keeping previous version: %v", err)
		} else if err := installer.Activate(); err != nil {
			log.Printf("Failed to retire old static stores: %v", err)
		}
	}

	// Background sweep of expired lookups.
	janitor := jobs.NewJanitor(lookupCache, cfg.LookupTTL)
	go janitor.Start(ctx)

	<-ctx.Done()

	log.Println("Shutting down server...")
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}

package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"

	"conference-central/cache"
	"conference-central/config"
	"conference-central/database"
	"conference-central/handlers"
	"conference-central/logger"
	"conference-central/router"
	"conference-central/service"
	"conference-central/tasks"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("cannot load configuration: %v", err)
	}

	zlog, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatalf("cannot build logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	ctx := context.Background()

	var store database.Store
	if cfg.MongoURI != "" {
		mongoStore, err := database.NewMongoStore(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			zlog.Fatalw("cannot connect to the entity store", "error", err)
		}
		defer func() { _ = mongoStore.Close(ctx) }()
		store = mongoStore
	} else {
		zlog.Warnw("MONGODB_CONNSTRING not set, using in-memory store")
		store = database.NewMemoryStore()
	}

	var cch cache.Cache
	if cfg.RedisAddr != "" {
		redisCache, err := cache.NewRedisCache(ctx, cfg.RedisAddr)
		if err != nil {
			zlog.Fatalw("cannot connect to the cache", "error", err)
		}
		defer func() { _ = redisCache.Close() }()
		cch = redisCache
	} else {
		zlog.Warnw("REDIS_ADDR not set, using in-memory cache")
		cch = cache.NewMemoryCache()
	}

	queue := tasks.NewQueue(zlog, cfg.TaskWorkers, cfg.TaskQueueSize)
	defer queue.Close()

	profiles := service.NewProfileService(store, zlog)
	announcements := service.NewAnnouncementService(store, cch, zlog)
	conferences := service.NewConferenceService(store, profiles, announcements, queue, zlog)
	sessions := service.NewSessionService(store, announcements, queue, zlog)
	registrations := service.NewRegistrationService(store, announcements, queue, zlog)
	wishlists := service.NewWishlistService(store, zlog)

	h := handlers.New(profiles, conferences, sessions, registrations, wishlists,
		announcements, store, cfg.JWTSecret, zlog)

	app := fiber.New()
	router.SetupRoutes(app, h, cfg.JWTSecret)

	zlog.Infow("listening", "addr", cfg.ListenAddr)
	if err := app.Listen(cfg.ListenAddr); err != nil {
		zlog.Fatalw("server stopped", "error", err)
	}
}

package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"movie-catalog/internal/config"
	"movie-catalog/internal/database"
	"movie-catalog/internal/handler"
	"movie-catalog/internal/logger"
	"movie-catalog/internal/repository"
	"movie-catalog/internal/router"
	"movie-catalog/internal/service"
	"movie-catalog/internal/session"
	"movie-catalog/internal/view"
)

func main() {
	_ = godotenv.Load()
	logger.Init()
	cfg := config.Load()

	client, err := database.Open(cfg.MongoURI)
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := database.EnsureIndexes(ctx, client, cfg.MongoDB); err != nil {
		log.Warn().Err(err).Msg("index bootstrap failed")
	}
	cancel()

	movies := repository.NewMovieRepo(database.Collection(client, cfg.MongoDB, "movies"))
	users := repository.NewUserRepo(database.Collection(client, cfg.MongoDB, "registration"))

	ttl := time.Duration(cfg.SessionTTLMin) * time.Minute
	rdb := config.NewRedisClient()
	var sessions session.Store
	if rdb != nil {
		sessions = session.NewRedisStore(rdb, ttl)
	} else {
		log.Warn().Msg("redis unavailable, sessions are in-process only")
		sessions = session.NewMemoryStore(ttl)
	}

	var events service.EventPublisher = service.NopPublisher{}
	if cfg.RabbitURL != "" {
		events = &service.AMQPPublisher{URL: cfg.RabbitURL}
	}

	e := echo.New()
	e.HideBanner = true
	e.Renderer = view.New()

	a := handler.NewAuthHandler(users, sessions)
	m := handler.NewMovieHandler(movies, events)
	router.RegisterRoutes(e, a, m, sessions, movies, config.LoadLoginRateLimit(), rdb)

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("listening")
	if err := e.Start(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

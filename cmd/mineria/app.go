package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Sanji-devv/Mineria-dc-bot/internal/catalog"
	"github.com/Sanji-devv/Mineria-dc-bot/internal/config"
	"github.com/Sanji-devv/Mineria-dc-bot/internal/errors"
	"github.com/Sanji-devv/Mineria-dc-bot/internal/orchestrators/creation"
	"github.com/Sanji-devv/Mineria-dc-bot/internal/orchestrators/roster"
	"github.com/Sanji-devv/Mineria-dc-bot/internal/pkg/clock"
	"github.com/Sanji-devv/Mineria-dc-bot/internal/redis"
	"github.com/Sanji-devv/Mineria-dc-bot/internal/repositories/character"
	creationsession "github.com/Sanji-devv/Mineria-dc-bot/internal/repositories/creation_session"
)

// app wires the engine together for CLI commands that need storage.
type app struct {
	cfg      *config.Config
	client   redis.Client
	races    *catalog.Races
	creation creation.Service
	roster   roster.Service
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	setupLogging(cfg.LogLevel)

	client, err := redis.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		return nil, err
	}

	races, err := catalog.LoadRaces(filepath.Join(cfg.DataDir, "races.json"))
	if err != nil {
		return nil, err
	}
	classes, err := catalog.LoadClasses(filepath.Join(cfg.DataDir, "classes.json"))
	if err != nil {
		return nil, err
	}

	sessions, err := creationsession.NewRedisRepository(&creationsession.Config{
		Client: client,
		Clock:  clock.New(),
	})
	if err != nil {
		return nil, err
	}
	characters, err := character.NewRedisRepository(&character.Config{Client: client})
	if err != nil {
		return nil, err
	}

	creationSvc, err := creation.New(&creation.Config{
		SessionRepo:   sessions,
		CharacterRepo: characters,
		Races:         races,
		Classes:       classes,
		SessionTTL:    cfg.SessionTTL,
	})
	if err != nil {
		return nil, err
	}

	rosterSvc, err := roster.New(&roster.Config{
		CharacterRepo: characters,
		Classes:       classes,
	})
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:      cfg,
		client:   client,
		races:    races,
		creation: creationSvc,
		roster:   rosterSvc,
	}, nil
}

func (a *app) Close() {
	if err := a.client.Close(); err != nil {
		slog.Warn("failed to close redis client", "error", err)
	}
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}

// userMessage strips internal wrapping so players see the guidance, not
// the plumbing.
func userMessage(err error) string {
	return errors.GetMessage(err)
}

package main

import (
	"context"
	"net/http"

	"hoardhub/internal/blob"
	"hoardhub/internal/logging"
	"hoardhub/internal/store"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fallback := logging.Setup("info", "json")
		fallback.Fatal().Err(err).Msg("load config")
	}

	logger := logging.Setup(cfg.LogLevel, cfg.LogFormat)

	var st dataStore
	if cfg.DatabaseURL != "" {
		db, err := openDatabase(context.Background(), cfg.DatabaseURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("connect database")
		}
		defer db.Close()

		pg := store.NewPostgres(db, cfg.Districts)
		if err := pg.Init(context.Background()); err != nil {
			logger.Fatal().Err(err).Msg("init database schema")
		}
		st = pg
		logger.Info().Msg("using postgres backend")
	} else {
		st = store.NewFileStore(cfg.HoardingsFile, cfg.BookingsFile, cfg.Districts)
		logger.Info().
			Str("hoardings", cfg.HoardingsFile).
			Str("bookings", cfg.BookingsFile).
			Msg("using flat-file backend")
	}

	if err := seedDemoHoardings(st); err != nil {
		logger.Fatal().Err(err).Msg("seed demo data")
	}

	images, err := blob.New(cfg.ImageDir)
	if err != nil {
		logger.Fatal().Err(err).Msg("init image store")
	}

	handler := newHTTPHandler(cfg, st, images)

	logger.Info().Str("addr", cfg.Addr).Msg("API listening")
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		logger.Fatal().Err(err).Msg("server error")
	}
}

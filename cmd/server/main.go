package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/yusufstudio18-creator-1/yusuf-market/internal/config"
	"github.com/yusufstudio18-creator-1/yusuf-market/internal/db"
	"github.com/yusufstudio18-creator-1/yusuf-market/internal/web"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Load()

	gdb, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("failed to open database")
	}
	sqlDB, _ := gdb.DB()
	defer sqlDB.Close()

	srv := web.New(cfg, gdb)

	log.Info().Str("port", cfg.Port).Msg("server listening")
	if err := srv.Run(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

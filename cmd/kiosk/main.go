package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/Showichiro/gacha-machine-flutter-kaigi-2025/config"
	"github.com/Showichiro/gacha-machine-flutter-kaigi-2025/prize"
	"github.com/Showichiro/gacha-machine-flutter-kaigi-2025/server"
	"github.com/Showichiro/gacha-machine-flutter-kaigi-2025/storage"
)

func main() {
	// Load .env so DATABASE_URL is set: cwd .env or project root .env/.env.local
	_ = godotenv.Load(".env")
	_ = godotenv.Load("../.env")
	_ = godotenv.Load("../.env.local")

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("loading config failed")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		logger = logger.Level(level)
	}

	store, err := openStore(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("opening store failed")
	}

	prizes := prize.NewService(store, logger)
	prize.NewInitializer(store, prizes, logger).Initialize()

	filters := prize.NewFilterState()
	display := prize.NewDisplayService(prizes, filters)
	sounds := server.NewLogNotifier(logger)

	srv := server.New(cfg, prizes, display, filters, sounds, logger)
	if err := srv.Run(); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

func openStore(cfg *config.Config, logger zerolog.Logger) (storage.Store, error) {
	if cfg.DatabaseURL != "" {
		logger.Info().Msg("using postgres storage")
		return storage.NewPostgresStore(cfg.DatabaseURL)
	}
	logger.Info().Str("dir", cfg.DataDir).Msg("using file storage")
	return storage.NewFileStore(cfg.DataDir, logger), nil
}

// Command catalog-importer bulk-loads a prize catalog JSON file into the
// kiosk's store through the prize service, so an operator can prepare a
// pool without clicking through the settings screen.
//
// The catalog is a JSON array of add requests:
//
//	[
//	  {"name": "ぬいぐるみ", "imageUrl": "https://...", "stock": 10,
//	   "description": "ふわふわ"},
//	  ...
//	]
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/Showichiro/gacha-machine-flutter-kaigi-2025/config"
	"github.com/Showichiro/gacha-machine-flutter-kaigi-2025/prize"
	"github.com/Showichiro/gacha-machine-flutter-kaigi-2025/storage"
)

func main() {
	catalogPath := flag.String("catalog", "", "Path to the prize catalog JSON file")
	flag.Parse()

	if *catalogPath == "" {
		fmt.Fprintln(os.Stderr, "missing required -catalog argument")
		os.Exit(1)
	}

	_ = godotenv.Load(".env")
	_ = godotenv.Load("../.env")

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	if err := run(*catalogPath, logger); err != nil {
		fmt.Fprintf(os.Stderr, "import failed: %v\n", err)
		os.Exit(1)
	}
}

func run(catalogPath string, logger zerolog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	var store storage.Store
	if cfg.DatabaseURL != "" {
		store, err = storage.NewPostgresStore(cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("connect db: %w", err)
		}
	} else {
		store = storage.NewFileStore(cfg.DataDir, logger)
	}

	imported, skipped, err := importCatalog(catalogPath, store, logger)
	if err != nil {
		return err
	}

	fmt.Printf("Imported %d prizes (%d skipped) into %q\n", imported, skipped, storeLabel(cfg))
	return nil
}

// importCatalog appends every valid catalog entry to the stored pool and
// reports how many were imported and how many were skipped as invalid.
func importCatalog(catalogPath string, store storage.Store, logger zerolog.Logger) (imported, skipped int, err error) {
	data, err := os.ReadFile(catalogPath)
	if err != nil {
		return 0, 0, fmt.Errorf("read catalog: %w", err)
	}
	var requests []prize.AddRequest
	if err := json.Unmarshal(data, &requests); err != nil {
		return 0, 0, fmt.Errorf("parse catalog: %w", err)
	}

	// Existing data must survive the import, so run the same boot sequence
	// as the kiosk before appending.
	svc := prize.NewService(store, logger)
	prize.NewInitializer(store, svc, logger).Initialize()

	for i, req := range requests {
		if err := req.Validate(); err != nil {
			logger.Warn().Int("entry", i).Err(err).Msg("skipping invalid catalog entry")
			skipped++
			continue
		}
		if _, err := svc.Add(req); err != nil {
			return imported, skipped, fmt.Errorf("add %q: %w", req.Name, err)
		}
		imported++
	}
	return imported, skipped, nil
}

func storeLabel(cfg *config.Config) string {
	if cfg.DatabaseURL != "" {
		return "postgres"
	}
	return cfg.DataDir
}

// Command migrate applies the Postgres schema migrations for the turn
// archive. Usage: migrate [up|down] (defaults to up).
package main

import (
	"errors"
	"flag"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"

	"github.com/oppd-health/whatsapp-intake/internal/config"
	"github.com/oppd-health/whatsapp-intake/pkg/logging"
)

func main() {
	_ = godotenv.Load()

	var dir string
	flag.StringVar(&dir, "path", "migrations", "migrations directory")
	flag.Parse()

	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)

	if cfg.DatabaseURL == "" {
		logger.Error("DATABASE_URL is required")
		os.Exit(1)
	}

	m, err := migrate.New("file://"+dir, cfg.DatabaseURL)
	if err != nil {
		logger.Error("migrate init failed", "error", err)
		os.Exit(1)
	}
	defer m.Close()

	action := "up"
	if args := flag.Args(); len(args) > 0 {
		action = args[0]
	}

	switch action {
	case "up":
		err = m.Up()
	case "down":
		err = m.Steps(-1)
	default:
		logger.Error("unknown action", "action", action)
		os.Exit(1)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		logger.Error("migration failed", "action", action, "error", err)
		os.Exit(1)
	}
	logger.Info("migrations applied", "action", action)
}

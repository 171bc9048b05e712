package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/loungecreations-byte/Booking-system-pro-sub001/internal/config"
)

// Утилита миграций схемы
//
// Использование:
//
//	go run ./cmd/migrate -action=up
//	go run ./cmd/migrate -action=down
func main() {
	configPath := flag.String("config", "config.toml", "путь к конфигурационному файлу")
	action := flag.String("action", "up", "действие: up | down | step-up | step-down")
	source := flag.String("source", "file://migrations", "источник миграций")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	connectionString := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
		cfg.Database.SSLMode,
	)

	mig, err := migrate.New(*source, connectionString)
	if err != nil {
		fmt.Printf("Failed to create migrate instance: %v\n", err)
		os.Exit(1)
	}
	defer mig.Close()

	switch *action {
	case "up":
		err = mig.Up()
	case "down":
		err = mig.Down()
	case "step-up":
		err = mig.Steps(1)
	case "step-down":
		err = mig.Steps(-1)
	default:
		fmt.Printf("Unknown action: %s\n", *action)
		os.Exit(1)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		fmt.Printf("Migration failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Migration action %q completed\n", *action)
}

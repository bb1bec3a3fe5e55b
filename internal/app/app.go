package app

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/domdomvn/domdom/internal/api"
	"github.com/domdomvn/domdom/internal/config"
	"github.com/domdomvn/domdom/internal/service"
	"github.com/domdomvn/domdom/internal/store"
)

type App struct {
	Service *service.Service
	Store   store.Repository
}

// NewApp initializes config, database and the API client, then returns the App entity
func NewApp(cfg *config.Config, migrationFS fs.FS) (*App, func(), error) {
	dbPathRaw := cfg.Database.Path

	if dbPathRaw == "" {
		appDir, _ := getAppDataDir()
		dbPathRaw = filepath.Join(appDir, "domdom.db")
	}

	dbStore, err := store.NewStore(dbPathRaw, migrationFS)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	client := api.NewClient(cfg.API.BaseURL, cfg.API.Timeout)
	svc := service.NewService(dbStore, client, cfg)

	cleanup := func() {
		if err := dbStore.Close(); err != nil {
			fmt.Printf("Error closing DB: %v\n", err)
		}
	}

	return &App{
		Service: svc,
		Store:   dbStore,
	}, cleanup, nil
}

func getAppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".domdom"), nil
	}

	return filepath.Join(configDir, "domdom"), nil
}

package cmd

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/domdomvn/domdom/internal/service"
	"github.com/domdomvn/domdom/internal/store"
	"github.com/domdomvn/domdom/internal/ui/views"
	"github.com/spf13/cobra"
)

type infoRunner struct {
	svc *service.Service
}

func NewInfoCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application and account information",
		Long:  `Display current configuration, database path, API endpoint and the signed-in account.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				svc: svc,
			}

			return runner.Run()
		},
	}
}

func (r *infoRunner) Run() error {
	configPath := r.svc.Config.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	rawDBPath := r.svc.Config.Database.Path
	if rawDBPath == "" {
		if appDir, err := getAppDataDir(); err == nil {
			rawDBPath = filepath.Join(appDir, "domdom.db")
		}
	}
	expandedDBPath, _ := expandPath(rawDBPath)

	dbExists := false
	if _, err := os.Stat(expandedDBPath); err == nil {
		dbExists = true
	}

	items := views.SystemInfoItem{
		ConfigPath:      configPath,
		DBPath:          expandedDBPath,
		DBExists:        dbExists,
		APIBaseURL:      r.svc.Config.API.BaseURL,
		DefaultCurrency: r.svc.Config.Defaults.Currency,
		AppDataDir:      getAppDataDirOrPanic(),
	}

	if err := views.RenderSystemInfo(items); err != nil {
		return err
	}

	snap, err := r.svc.Session.Current()
	if err != nil {
		if errors.Is(err, store.ErrNoSession) {
			return nil
		}
		return err
	}

	return views.RenderAccountInfo(snap)
}

func getAppDataDirOrPanic() string {
	dir, err := getAppDataDir()
	if err != nil {
		return "Unknown"
	}
	return dir
}

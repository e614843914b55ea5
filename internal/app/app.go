package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/rentdesk/internal/config"
	"github.com/five82/rentdesk/internal/dvdapi"
	"github.com/five82/rentdesk/internal/i18n"
	"github.com/five82/rentdesk/internal/prefs"
	"github.com/five82/rentdesk/internal/state"
	"github.com/five82/rentdesk/internal/telemetry"
	"github.com/five82/rentdesk/internal/ui"
)

// Options configure the rental desk. Non-empty APIHost and Locale override
// both the config file and the environment.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/rentdesk/prefs.toml
	APIHost    string
	Locale     string
}

// Run boots the rental desk TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.LogDir, 0o755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}
	logFile, err := tea.LogToFile(cfg.LogPath(), "rentdesk")
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()

	shutdown, err := telemetry.Setup(ctx, telemetry.ServiceName, cfg.OTelEndpoint)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			log.Printf("tracing shutdown: %v", err)
		}
	}()

	client, err := dvdapi.NewClient(cfg.APIHost, dvdapi.WithTimeout(cfg.RequestTimeout))
	if err != nil {
		return fmt.Errorf("init api client: %w", err)
	}
	log.Printf("starting: api=%s locale=%s", client.BaseURL(), cfg.Locale)

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	store := &state.Store{}
	if cfg.HealthInterval > 0 {
		StartPoller(ctx, store, client, cfg.HealthInterval)
	}

	return ui.Run(ui.Options{
		Context:   ctx,
		API:       client,
		Store:     store,
		Localizer: i18n.New(cfg.Locale),
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	})
}

func loadConfig(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if host := strings.TrimSpace(opts.APIHost); host != "" {
		cfg.APIHost = host
	}
	if locale := strings.TrimSpace(opts.Locale); locale != "" {
		cfg.Locale = strings.ToLower(locale)
	}
	return cfg, nil
}

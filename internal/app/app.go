// Package app provides the composition root for the shelf application.
package app

import (
	"context"
	"fmt"
	"log"

	"github.com/aferrand/shelf/internal/api"
	"github.com/aferrand/shelf/internal/command"
	"github.com/aferrand/shelf/internal/config"
	"github.com/aferrand/shelf/internal/prefs"
	"github.com/aferrand/shelf/internal/store"
	"github.com/aferrand/shelf/internal/ui"
)

// Options configure the shelf application.
type Options struct {
	ConfigPath string // empty uses default ~/.config/shelf/config.toml
	PrefsPath  string // empty uses default ~/.config/shelf/prefs.toml
	APIBase    string // overrides the configured api_base when set
}

// Run boots the shelf TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.APIBase != "" {
		cfg.APIBase = opts.APIBase
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	client, err := api.NewClient(cfg.APIBase, cfg.RequestTimeout)
	if err != nil {
		return fmt.Errorf("init api client: %w", err)
	}

	st := &store.Store{}
	commander := command.NewCommander(client, st, cfg.CoverPlaceholder)

	// Initial load. A failure is not fatal: the UI starts with an empty
	// collection and surfaces the error as a notification.
	var startupErr error
	if outcome := commander.Reload(ctx); outcome.Err != nil {
		startupErr = outcome.Err
		log.Printf("initial load failed: %v", outcome.Err)
	}

	uiOpts := ui.Options{
		Context:    ctx,
		Commander:  commander,
		Store:      st,
		ThemeName:  userPrefs.Theme,
		PrefsPath:  opts.PrefsPath,
		StartupErr: startupErr,
	}
	return ui.Run(uiOpts)
}

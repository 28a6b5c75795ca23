package app

import (
	"context"
	"fmt"

	"github.com/five82/itemdeck/internal/catalog"
	"github.com/five82/itemdeck/internal/config"
	"github.com/five82/itemdeck/internal/logging"
	"github.com/five82/itemdeck/internal/prefs"
	"github.com/five82/itemdeck/internal/state"
	"github.com/five82/itemdeck/internal/ui"
)

// Options configure the itemdeck application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/itemdeck/prefs.toml
	LogLevel   string // overrides the configured level when set
	BatchSize  int    // overrides the configured batch size when positive
}

// Run boots the itemdeck TUI until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	if opts.BatchSize > 0 {
		cfg.BatchSize = opts.BatchSize
	}

	log, closer, err := logging.New(logging.Options{File: cfg.LogFile, Level: cfg.LogLevel})
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = closer.Close() }()

	client, err := catalog.NewClient(cfg.CatalogURL, cfg.RequestTimeout)
	if err != nil {
		return fmt.Errorf("init catalog client: %w", err)
	}
	prober := catalog.NewAssetProber(catalog.ProberOptions{
		Base:    cfg.AssetBase,
		Timeout: cfg.RequestTimeout,
		Rate:    cfg.ProbeRate,
		Burst:   cfg.ProbeBurst,
		Logger:  log,
	})

	log.Info().
		Str("catalog", client.Endpoint()).
		Str("assets", cfg.AssetBase).
		Int("batch", cfg.BatchSize).
		Msg("itemdeck starting")

	store := &state.Store{}
	StartLoader(ctx, store, client, log)

	uiOpts := ui.Options{
		Context:   ctx,
		Store:     store,
		Assets:    prober,
		Config:    cfg,
		Prefs:     prefs.Load(opts.PrefsPath),
		PrefsPath: opts.PrefsPath,
		Logger:    log,
	}
	err = ui.Run(uiOpts)
	log.Info().Msg("itemdeck exiting")
	return err
}

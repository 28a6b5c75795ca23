package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the itemdeck settings.
type Config struct {
	CatalogURL     string
	AssetBase      string
	BatchSize      int
	RangeStart     int64
	RangeEnd       int64
	RequestTimeout time.Duration
	ProbeRate      float64
	ProbeBurst     int
	LogFile        string
	LogLevel       string
}

const (
	defaultConfigPath     = "~/.config/itemdeck/config.toml"
	defaultCatalogURL     = "https://server-api.arizona.games/client/json/table/get?project=arizona&server=0&key=inventory_items"
	defaultAssetBase      = "https://reserve-cdn.azresources.cloud/projects/arizona-rp/assets/images/donate/"
	defaultBatchSize      = 40
	defaultRangeStart     = 9760
	defaultRangeEnd       = 10000
	defaultRequestTimeout = 10 * time.Second
	defaultProbeRate      = 8
	defaultProbeBurst     = 4
	defaultLogFile        = "~/.local/state/itemdeck/itemdeck.log"
	defaultLogLevel       = "info"
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		CatalogURL:     defaultCatalogURL,
		AssetBase:      defaultAssetBase,
		BatchSize:      defaultBatchSize,
		RangeStart:     defaultRangeStart,
		RangeEnd:       defaultRangeEnd,
		RequestTimeout: defaultRequestTimeout,
		ProbeRate:      defaultProbeRate,
		ProbeBurst:     defaultProbeBurst,
		LogFile:        mustExpand(defaultLogFile),
		LogLevel:       defaultLogLevel,
	}
}

// Load locates and parses the config file, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		CatalogURL     string  `toml:"catalog_url"`
		AssetBase      string  `toml:"asset_base"`
		BatchSize      int     `toml:"batch_size"`
		RangeStart     *int64  `toml:"range_start"`
		RangeEnd       *int64  `toml:"range_end"`
		RequestTimeout string  `toml:"request_timeout"`
		ProbeRate      float64 `toml:"probe_rate"`
		ProbeBurst     int     `toml:"probe_burst"`
		LogFile        string  `toml:"log_file"`
		LogLevel       string  `toml:"log_level"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.CatalogURL); v != "" {
		cfg.CatalogURL = v
	}
	if v := strings.TrimSpace(raw.AssetBase); v != "" {
		cfg.AssetBase = v
	}
	if raw.BatchSize > 0 {
		cfg.BatchSize = raw.BatchSize
	}
	if raw.RangeStart != nil {
		cfg.RangeStart = *raw.RangeStart
	}
	if raw.RangeEnd != nil {
		cfg.RangeEnd = *raw.RangeEnd
	}
	if v := strings.TrimSpace(raw.RequestTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse config: request_timeout %q: %w", v, err)
		}
		if d > 0 {
			cfg.RequestTimeout = d
		}
	}
	if raw.ProbeRate > 0 {
		cfg.ProbeRate = raw.ProbeRate
	}
	if raw.ProbeBurst > 0 {
		cfg.ProbeBurst = raw.ProbeBurst
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}

	return cfg, nil
}

// LogDir returns the directory holding the log file.
func (c Config) LogDir() string {
	if strings.TrimSpace(c.LogFile) == "" {
		return filepath.Dir(mustExpand(defaultLogFile))
	}
	return filepath.Dir(c.LogFile)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}

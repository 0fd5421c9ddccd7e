package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/coolstat/coolstat/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

// Heatmap bandwidth rules the estimator accepts.
const (
	BandwidthScott     = "scott"
	BandwidthSilverman = "silverman"
)

// Config stores the runtime configuration of the pipeline.
type Config struct {
	AppEnv         string
	ServiceName    string
	ServiceVersion string
	LogLevel       logging.Level

	// DBPath is the SQLite file holding ingested extracts.
	DBPath string

	CacheEnabled bool
	// CacheTTL bounds the lifetime of cached reads and memoized
	// analytics. Zero keeps entries until invalidation or exit;
	// extract tables only change on ingest, so that is the default.
	CacheTTL time.Duration

	// Display conventions, overridable per request.
	PassExcludeThrowIns  bool
	ShotExcludePenalties bool

	HeatmapGridWidth  int
	HeatmapGridHeight int
	HeatmapBandwidth  string

	ReportWorkers int
}

// Load reads the configuration from the environment, applying defaults
// for everything unset, and validates the result.
func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	cacheEnabled, err := getEnvAsBool("CACHE_ENABLED", true)
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}
	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "0s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}

	passExcludeThrowIns, err := getEnvAsBool("PASS_EXCLUDE_THROW_INS", true)
	if err != nil {
		return Config{}, fmt.Errorf("parse PASS_EXCLUDE_THROW_INS: %w", err)
	}
	shotExcludePenalties, err := getEnvAsBool("SHOT_EXCLUDE_PENALTIES", false)
	if err != nil {
		return Config{}, fmt.Errorf("parse SHOT_EXCLUDE_PENALTIES: %w", err)
	}

	gridWidth, err := getEnvAsInt("HEATMAP_GRID_WIDTH", 100)
	if err != nil {
		return Config{}, fmt.Errorf("parse HEATMAP_GRID_WIDTH: %w", err)
	}
	gridHeight, err := getEnvAsInt("HEATMAP_GRID_HEIGHT", 100)
	if err != nil {
		return Config{}, fmt.Errorf("parse HEATMAP_GRID_HEIGHT: %w", err)
	}

	reportWorkers, err := getEnvAsInt("REPORT_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse REPORT_WORKERS: %w", err)
	}

	cfg := Config{
		AppEnv:               appEnv,
		ServiceName:          getEnv("APP_SERVICE_NAME", "coolstat"),
		ServiceVersion:       getEnv("APP_SERVICE_VERSION", "dev"),
		LogLevel:             parseLogLevel(getEnv("LOG_LEVEL", "info")),
		DBPath:               getEnv("DB_PATH", "coolstat.db"),
		CacheEnabled:         cacheEnabled,
		CacheTTL:             cacheTTL,
		PassExcludeThrowIns:  passExcludeThrowIns,
		ShotExcludePenalties: shotExcludePenalties,
		HeatmapGridWidth:     gridWidth,
		HeatmapGridHeight:    gridHeight,
		HeatmapBandwidth:     strings.ToLower(strings.TrimSpace(getEnv("HEATMAP_BANDWIDTH", BandwidthScott))),
		ReportWorkers:        reportWorkers,
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks ranges and enumerations. Load calls it after
// parsing; tests call it on hand-built configs.
func (c Config) Validate() error {
	if strings.TrimSpace(c.DBPath) == "" {
		return fmt.Errorf("DB_PATH cannot be empty")
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("CACHE_TTL must be >= 0")
	}
	if c.HeatmapGridWidth < 2 || c.HeatmapGridWidth > 500 {
		return fmt.Errorf("HEATMAP_GRID_WIDTH must be in [2, 500], got %d", c.HeatmapGridWidth)
	}
	if c.HeatmapGridHeight < 2 || c.HeatmapGridHeight > 500 {
		return fmt.Errorf("HEATMAP_GRID_HEIGHT must be in [2, 500], got %d", c.HeatmapGridHeight)
	}
	switch c.HeatmapBandwidth {
	case BandwidthScott, BandwidthSilverman:
	default:
		return fmt.Errorf("invalid HEATMAP_BANDWIDTH %q: valid values are %s, %s", c.HeatmapBandwidth, BandwidthScott, BandwidthSilverman)
	}
	if c.ReportWorkers < 1 || c.ReportWorkers > 32 {
		return fmt.Errorf("REPORT_WORKERS must be in [1, 32], got %d", c.ReportWorkers)
	}

	return nil
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func getEnvAsBool(key string, fallback bool) (bool, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	return strconv.ParseBool(value)
}

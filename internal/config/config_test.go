package config

import (
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.AppEnv != EnvDev {
		t.Fatalf("unexpected default APP_ENV: %q", cfg.AppEnv)
	}
	if cfg.DBPath != "coolstat.db" {
		t.Fatalf("unexpected default DB_PATH: %q", cfg.DBPath)
	}
	if !cfg.CacheEnabled {
		t.Fatalf("expected cache enabled by default")
	}
	if cfg.CacheTTL != 0 {
		t.Fatalf("unexpected default cache ttl: %s", cfg.CacheTTL)
	}
	if !cfg.PassExcludeThrowIns {
		t.Fatalf("expected throw-ins excluded from pass views by default")
	}
	if cfg.ShotExcludePenalties {
		t.Fatalf("expected penalties kept in shot views by default")
	}
	if cfg.HeatmapGridWidth != 100 || cfg.HeatmapGridHeight != 100 {
		t.Fatalf("unexpected default heatmap grid: %dx%d", cfg.HeatmapGridWidth, cfg.HeatmapGridHeight)
	}
	if cfg.HeatmapBandwidth != BandwidthScott {
		t.Fatalf("unexpected default bandwidth rule: %q", cfg.HeatmapBandwidth)
	}
	if cfg.ReportWorkers != 4 {
		t.Fatalf("unexpected default report workers: %d", cfg.ReportWorkers)
	}
}

func TestLoad_CacheConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	t.Run("explicit ttl", func(t *testing.T) {
		t.Setenv("CACHE_TTL", "90s")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.CacheTTL != 90*time.Second {
			t.Fatalf("unexpected cache ttl: %s", cfg.CacheTTL)
		}
	})

	t.Run("invalid ttl", func(t *testing.T) {
		t.Setenv("CACHE_TTL", "bad")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid CACHE_TTL")
		}
	})

	t.Run("negative ttl", func(t *testing.T) {
		t.Setenv("CACHE_TTL", "-5s")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for negative CACHE_TTL")
		}
	})
}

func TestLoad_PolicyFlags(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("PASS_EXCLUDE_THROW_INS", "false")
	t.Setenv("SHOT_EXCLUDE_PENALTIES", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PassExcludeThrowIns {
		t.Fatalf("expected PASS_EXCLUDE_THROW_INS=false to be honored")
	}
	if !cfg.ShotExcludePenalties {
		t.Fatalf("expected SHOT_EXCLUDE_PENALTIES=true to be honored")
	}
}

func TestLoad_HeatmapValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	t.Run("grid too small", func(t *testing.T) {
		t.Setenv("HEATMAP_GRID_WIDTH", "1")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for HEATMAP_GRID_WIDTH=1")
		}
	})

	t.Run("grid too large", func(t *testing.T) {
		t.Setenv("HEATMAP_GRID_WIDTH", "50")
		t.Setenv("HEATMAP_GRID_HEIGHT", "501")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for HEATMAP_GRID_HEIGHT=501")
		}
	})

	t.Run("bandwidth rule", func(t *testing.T) {
		t.Setenv("HEATMAP_BANDWIDTH", "Silverman")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.HeatmapBandwidth != BandwidthSilverman {
			t.Fatalf("unexpected bandwidth rule: %q", cfg.HeatmapBandwidth)
		}
	})

	t.Run("unknown bandwidth rule", func(t *testing.T) {
		t.Setenv("HEATMAP_BANDWIDTH", "epanechnikov")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for unknown HEATMAP_BANDWIDTH")
		}
	})
}

func TestLoad_ReportWorkersValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	t.Run("zero workers", func(t *testing.T) {
		t.Setenv("REPORT_WORKERS", "0")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for REPORT_WORKERS=0")
		}
	})

	t.Run("too many workers", func(t *testing.T) {
		t.Setenv("REPORT_WORKERS", "64")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for REPORT_WORKERS=64")
		}
	})
}

func TestValidate_DBPath(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	cfg.DBPath = "   "
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for blank DBPath")
	}
}

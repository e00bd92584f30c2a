package config

import (
	"testing"
	"time"

	"github.com/riskibarqy/sports-dashboard/internal/platform/logging"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("ESPN_TIMEOUT", "")
	t.Setenv("DASHBOARD_DEFAULT_LEAGUE", "")
	t.Setenv("DASHBOARD_DEFAULT_TIMEZONE", "")
	t.Setenv("DASHBOARD_NEWS_LIMIT", "")
	t.Setenv("DASHBOARD_TIMEZONES", "")
	t.Setenv("APP_LOG_LEVEL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.ESPNTimeout != 10*time.Second {
		t.Fatalf("unexpected ESPN timeout: %s", cfg.ESPNTimeout)
	}
	if cfg.DashboardDefaultLeague != "nhl" {
		t.Fatalf("unexpected default league: %q", cfg.DashboardDefaultLeague)
	}
	if cfg.DashboardDefaultTimezone != "America/New_York" {
		t.Fatalf("unexpected default timezone: %q", cfg.DashboardDefaultTimezone)
	}
	if cfg.DashboardNewsLimit != 5 {
		t.Fatalf("unexpected news limit: %d", cfg.DashboardNewsLimit)
	}
	if len(cfg.DashboardTimezones) != 6 || cfg.DashboardTimezones[0] != "America/New_York" {
		t.Fatalf("unexpected timezones: %+v", cfg.DashboardTimezones)
	}
	if cfg.ESPNSiteBaseURL != "https://site.api.espn.com/apis/site/v2/sports" {
		t.Fatalf("unexpected site base url: %q", cfg.ESPNSiteBaseURL)
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("unexpected log level: %s", cfg.LogLevel)
	}
}

func TestLoad_ESPNTimeoutValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("invalid duration", func(t *testing.T) {
		t.Setenv("ESPN_TIMEOUT", "soon")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid ESPN_TIMEOUT")
		}
	})

	t.Run("non positive", func(t *testing.T) {
		t.Setenv("ESPN_TIMEOUT", "0s")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for zero ESPN_TIMEOUT")
		}
	})

	t.Run("custom", func(t *testing.T) {
		t.Setenv("ESPN_TIMEOUT", "3s")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.ESPNTimeout != 3*time.Second {
			t.Fatalf("unexpected ESPN timeout: %s", cfg.ESPNTimeout)
		}
	})
}

func TestLoad_DashboardSettings(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("news limit bounds", func(t *testing.T) {
		for _, v := range []string{"0", "51", "five"} {
			t.Setenv("DASHBOARD_NEWS_LIMIT", v)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for DASHBOARD_NEWS_LIMIT=%s", v)
			}
		}
	})

	t.Run("invalid default timezone", func(t *testing.T) {
		t.Setenv("DASHBOARD_NEWS_LIMIT", "")
		t.Setenv("DASHBOARD_DEFAULT_TIMEZONE", "Mars/Base")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for unknown timezone")
		}
	})

	t.Run("default timezone joins selectable list", func(t *testing.T) {
		t.Setenv("DASHBOARD_NEWS_LIMIT", "")
		t.Setenv("DASHBOARD_DEFAULT_TIMEZONE", "Asia/Jakarta")
		t.Setenv("DASHBOARD_TIMEZONES", "UTC, Europe/London")
		t.Setenv("DASHBOARD_DEFAULT_LEAGUE", " EPL ")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		want := []string{"Asia/Jakarta", "UTC", "Europe/London"}
		if len(cfg.DashboardTimezones) != len(want) {
			t.Fatalf("unexpected timezones: %+v", cfg.DashboardTimezones)
		}
		for i := range want {
			if cfg.DashboardTimezones[i] != want[i] {
				t.Fatalf("unexpected timezones: %+v", cfg.DashboardTimezones)
			}
		}
		if cfg.DashboardDefaultLeague != "epl" {
			t.Fatalf("expected normalized league id, got %q", cfg.DashboardDefaultLeague)
		}
	})
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", `foo=bar, uptrace-dsn="https://token@api.uptrace.dev?grpc=4317"`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected dsn: %q", cfg.UptraceDSN)
	}
}

func TestLoad_PprofDefaultsAddrWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PPROF_ENABLED", "true")
	t.Setenv("PPROF_ADDR", "  ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PprofAddr != ":6060" {
		t.Fatalf("expected default pprof addr :6060, got %q", cfg.PprofAddr)
	}
}

func TestLoad_PyroscopeRequiresServerAddressWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_PyroscopeAppNameDefaultsToServiceName(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("APP_SERVICE_NAME", "sports-dashboard-api-test")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "http://localhost:4040")
	t.Setenv("PYROSCOPE_APP_NAME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PyroscopeAppName != "sports-dashboard-api-test" {
		t.Fatalf("unexpected pyroscope app name: %q", cfg.PyroscopeAppName)
	}
}

func TestLoad_CORSOriginsDefaultAndParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("default wildcard", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
			t.Fatalf("unexpected default CORS origins: %+v", cfg.CORSAllowedOrigins)
		}
	})

	t.Run("comma separated parsing", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com, http://localhost:5173 ")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 2 {
			t.Fatalf("unexpected CORS origins length: %d", len(cfg.CORSAllowedOrigins))
		}
		if cfg.CORSAllowedOrigins[0] != "https://a.example.com" {
			t.Fatalf("unexpected first CORS origin: %s", cfg.CORSAllowedOrigins[0])
		}
		if cfg.CORSAllowedOrigins[1] != "http://localhost:5173" {
			t.Fatalf("unexpected second CORS origin: %s", cfg.CORSAllowedOrigins[1])
		}
	})
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]logging.Level{
		"debug":   logging.LevelDebug,
		"WARNING": logging.LevelWarn,
		"error":   logging.LevelError,
		"":        logging.LevelInfo,
		"verbose": logging.LevelInfo,
	}
	for in, want := range tests {
		if got := parseLogLevel(in); got != want {
			t.Fatalf("parseLogLevel(%q)=%s want %s", in, got, want)
		}
	}
}

package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"navtitle/internal/logger"
	"navtitle/internal/subtitle"
	"navtitle/models"
)

func TestLoadConfig_FlagOverrides(t *testing.T) {
	t.Cleanup(func() { logger.SetLevel(logger.LevelInfo) })

	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := models.DefaultConfig()
	cfg.Title = "Drafts"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := loadConfig(&globalFlags{configPath: path, logLevel: "debug", noAnimations: true})
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if got.Title != "Drafts" {
		t.Errorf("Title = %q, want Drafts", got.Title)
	}
	if got.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", got.LogLevel)
	}
	if got.AnimationsEnabled {
		t.Error("AnimationsEnabled = true with --no-animations")
	}
}

func TestLoadConfig_BadLogLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if _, err := loadConfig(&globalFlags{configPath: path, logLevel: "loud"}); err == nil {
		t.Error("loadConfig accepted log level \"loud\"")
	}
}

func TestMetricsHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := subtitle.NewMetrics(subtitle.MetricsConfig{Registry: reg})

	c := subtitle.NewCoordinator(subtitle.NopSurface{}, subtitle.Options{
		Metrics: metrics,
		Logger:  logger.New(logger.LevelError, io.Discard),
	})
	c.SetSubtitle(models.Standard("hello"), subtitle.HideAfter(time.Second))
	c.Close()

	rec := httptest.NewRecorder()
	metricsHandler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "navtitle_subtitle_messages_enqueued_total") {
		t.Errorf("body missing enqueued counter:\n%s", rec.Body.String())
	}
}

func TestStartMetrics_Disabled(t *testing.T) {
	metrics, stop, err := startMetrics("")
	if err != nil {
		t.Fatalf("startMetrics: %v", err)
	}
	defer stop()
	if metrics != nil {
		t.Error("metrics != nil with empty addr")
	}
}

func TestVersionCmd(t *testing.T) {
	var buf bytes.Buffer
	cmd := versionCmd()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--short"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != version {
		t.Errorf("version = %q, want %q", got, version)
	}
}

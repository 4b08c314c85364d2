package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestGetConfigDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	config, err := getConfig(v)
	if err != nil {
		t.Fatalf("getConfig returned error: %v", err)
	}

	if config.MaxInputLength != 20000 {
		t.Fatalf("unexpected max input length: %d", config.MaxInputLength)
	}
	if config.Keywords.PoolLimit != 18 || config.Keywords.InsightLimit != 12 {
		t.Fatalf("unexpected keyword limits: %+v", config.Keywords)
	}
	if config.Keywords.DefaultSelection != "recommended" {
		t.Fatalf("unexpected default selection: %q", config.Keywords.DefaultSelection)
	}
	if config.Server.Listen != ":3001" {
		t.Fatalf("unexpected listen address: %q", config.Server.Listen)
	}
	if config.Server.RateLimit.Requests != 10 || config.Server.RateLimit.Window != time.Minute {
		t.Fatalf("unexpected rate limit: %+v", config.Server.RateLimit)
	}
}

func TestReadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cv-tailor.yaml")
	content := `keywords:
  pool-limit: 10
  exclude:
    - java
server:
  listen: 127.0.0.1:8080
  rate-limit:
    window: 30s
tuning:
  high-value-bonus: 2
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	v := viper.New()
	setDefaults(v)
	if err := readConfig(v, path); err != nil {
		t.Fatalf("readConfig returned error: %v", err)
	}

	config, err := getConfig(v)
	if err != nil {
		t.Fatalf("getConfig returned error: %v", err)
	}

	if config.Keywords.PoolLimit != 10 {
		t.Fatalf("expected pool limit 10, got %d", config.Keywords.PoolLimit)
	}
	if len(config.Keywords.Exclude) != 1 || config.Keywords.Exclude[0] != "java" {
		t.Fatalf("unexpected exclude list: %v", config.Keywords.Exclude)
	}
	if config.Server.Listen != "127.0.0.1:8080" {
		t.Fatalf("unexpected listen address: %q", config.Server.Listen)
	}
	if config.Server.RateLimit.Window != 30*time.Second || config.Server.RateLimit.Requests != 10 {
		t.Fatalf("unexpected rate limit: %+v", config.Server.RateLimit)
	}
	if _, ok := config.Tuning["high-value-bonus"]; !ok {
		t.Fatalf("expected tuning override, got %v", config.Tuning)
	}
}

func TestReadConfigMissingDefaultFile(t *testing.T) {
	t.Chdir(t.TempDir())

	v := viper.New()
	if err := readConfig(v, ""); err != nil {
		t.Fatalf("expected a missing default config to be ignored, got %v", err)
	}
}

func TestReadConfigMissingExplicitFile(t *testing.T) {
	v := viper.New()
	err := readConfig(v, filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil || !strings.Contains(err.Error(), "reading config") {
		t.Fatalf("expected a read error, got %v", err)
	}
}

func TestGetConfigFromEnv(t *testing.T) {
	t.Setenv("CV_TAILOR_KEYWORDS_POOL_LIMIT", "7")
	t.Setenv("CV_TAILOR_SERVER_LISTEN", ":9000")

	v := viper.New()
	setDefaults(v)

	config, err := getConfig(v)
	if err != nil {
		t.Fatalf("getConfig returned error: %v", err)
	}
	if config.Keywords.PoolLimit != 7 {
		t.Fatalf("expected pool limit from env, got %d", config.Keywords.PoolLimit)
	}
	if config.Server.Listen != ":9000" {
		t.Fatalf("expected listen address from env, got %q", config.Server.Listen)
	}
}

func TestGetConfigRejectsInvalidLimits(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("keywords.pool-limit", 0)

	if _, err := getConfig(v); err == nil {
		t.Fatal("expected an error for a zero pool limit")
	}
}

package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_NAME", "site")
	t.Setenv("ADMIN_PASSWORD", "")
	t.Setenv("APP_ENV", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.UsingDefaultPassword() {
		t.Error("default password not reported")
	}
	if cfg.Auth.TokenSecret != DefaultAdminPassword {
		t.Errorf("token secret should fall back to the password, got %q", cfg.Auth.TokenSecret)
	}
	if cfg.Auth.MaxAttempts != 5 || cfg.Auth.Window != 15*time.Minute || cfg.Auth.TokenTTL != 24*time.Hour {
		t.Errorf("auth defaults = %+v", cfg.Auth)
	}
	if cfg.Storage.MaxImageSize != 10<<20 || cfg.Storage.MaxAudioSize != 50<<20 {
		t.Errorf("storage limits = %d/%d", cfg.Storage.MaxImageSize, cfg.Storage.MaxAudioSize)
	}
	if cfg.IsDev() {
		t.Error("prod expected by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_NAME", "site")
	t.Setenv("ADMIN_PASSWORD", "s3cret")
	t.Setenv("AUTH_WINDOW", "1m")
	t.Setenv("AUTH_LIMIT_BACKEND", "REDIS")
	t.Setenv("APP_ENV", "Dev")
	t.Setenv("DB_AUTO_MIGRATE", "yes")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Auth.Window != time.Minute || cfg.Auth.Backend != "redis" || !cfg.IsDev() || !cfg.DBAutoMigrate {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.UsingDefaultPassword() {
		t.Error("custom password reported as default")
	}
}

func TestValidateReportsEverything(t *testing.T) {
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_NAME", "")
	t.Setenv("AUTH_MAX_ATTEMPTS", "0")
	t.Setenv("AUTH_LIMIT_BACKEND", "etcd")

	_, err := Load()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"DB_HOST", "DB_NAME", "AUTH_MAX_ATTEMPTS", "AUTH_LIMIT_BACKEND"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestEnvHelpersFallBack(t *testing.T) {
	t.Setenv("X_INT", "abc")
	t.Setenv("X_BOOL", "maybe")
	t.Setenv("X_DUR", "soon")
	if envInt("X_INT", 3) != 3 || !envBool("X_BOOL", true) || envDur("X_DUR", time.Second) != time.Second {
		t.Error("unparseable values did not fall back to defaults")
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Database.Path != "gymdesk.db" {
		t.Errorf("expected default db path, got %q", cfg.Database.Path)
	}
	if cfg.Email.Provider != "noop" {
		t.Errorf("expected noop provider, got %q", cfg.Email.Provider)
	}
	if cfg.Reminders.AfterDays != 0 {
		t.Errorf("expected reminder days unset, got %d", cfg.Reminders.AfterDays)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	yaml := "database:\n  path: /tmp/test.db\nemail:\n  provider: resend\n  api_key: re_test\nreminders:\n  after_days: 14\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Database.Path != "/tmp/test.db" {
		t.Errorf("expected file db path, got %q", cfg.Database.Path)
	}
	if cfg.Email.Provider != "resend" || cfg.Email.APIKey != "re_test" {
		t.Errorf("unexpected email config %+v", cfg.Email)
	}
	if cfg.Reminders.AfterDays != 14 {
		t.Errorf("expected 14 reminder days, got %d", cfg.Reminders.AfterDays)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("GYMDESK_DATABASE_PATH", "/var/lib/gymdesk/state.db")

	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Database.Path != "/var/lib/gymdesk/state.db" {
		t.Errorf("expected env override, got %q", cfg.Database.Path)
	}
}

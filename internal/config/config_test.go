package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SFGARDEN_DATABASE_DSN", "")
	t.Setenv("SFGARDEN_USER", "")

	// Setenv with "" still counts as set; unset explicitly via empty
	// override is not what we want here, so test LoadDefaults directly.
	cfg := &Config{}
	cfg.LoadDefaults()

	if cfg.DatabaseDSN == "" {
		t.Error("default DSN should not be empty")
	}
	if cfg.UserID != "local" {
		t.Errorf("default UserID = %q, want local", cfg.UserID)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SFGARDEN_DATABASE_DSN", "postgres://u:p@db:5432/garden")
	t.Setenv("SFGARDEN_USER", "alice")

	cfg := Load()
	if cfg.DatabaseDSN != "postgres://u:p@db:5432/garden" {
		t.Errorf("DatabaseDSN = %q, want env value", cfg.DatabaseDSN)
	}
	if cfg.UserID != "alice" {
		t.Errorf("UserID = %q, want alice", cfg.UserID)
	}
}

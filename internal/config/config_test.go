package config

import (
	"strings"
	"testing"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DB_USER", "quillpad")
	t.Setenv("DB_PASSWORD", "quillpad-pw")
	t.Setenv("DB_NAME", "quillpad")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Database.Host != "localhost" {
		t.Errorf("DB host = %q, want localhost", cfg.Database.Host)
	}
	if cfg.Database.Port != "5432" {
		t.Errorf("DB port = %q, want 5432", cfg.Database.Port)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("server port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.JWT.Expiration.Minutes() != 60 {
		t.Errorf("token expiration = %v, want 60m", cfg.JWT.Expiration)
	}
}

func TestLoadMissingRequired(t *testing.T) {
	required := []string{"JWT_SECRET", "DB_USER", "DB_PASSWORD", "DB_NAME"}

	for _, key := range required {
		t.Run(key, func(t *testing.T) {
			setRequired(t)
			t.Setenv(key, "")

			if _, err := Load(); err == nil {
				t.Errorf("Load() succeeded with %s unset", key)
			} else if !strings.Contains(err.Error(), key) {
				t.Errorf("Load() error %q does not name %s", err, key)
			}
		})
	}
}

func TestDatabaseURL(t *testing.T) {
	d := DatabaseConfig{
		Host:     "db.internal",
		Port:     "5433",
		User:     "app",
		Password: "p@ss:word/1",
		Name:     "notes",
	}

	url := d.URL()
	if !strings.HasPrefix(url, "postgres://app:") {
		t.Errorf("URL() = %q, want postgres scheme with user", url)
	}
	if !strings.HasSuffix(url, "@db.internal:5433/notes") {
		t.Errorf("URL() = %q, want host, port and database suffix", url)
	}
	if strings.Contains(url, "p@ss:word/1") {
		t.Errorf("URL() = %q, special characters in password not escaped", url)
	}
}

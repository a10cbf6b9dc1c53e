package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		wantErr  bool
		validate func(*testing.T, *Config)
	}{
		{
			name:    "defaults",
			envVars: map[string]string{},
			validate: func(t *testing.T, cfg *Config) {
				if cfg.APIBaseURL != "https://localhost:7154" {
					t.Errorf("APIBaseURL = %q, want default", cfg.APIBaseURL)
				}
				if cfg.ServerPort != "8080" {
					t.Errorf("ServerPort = %q, want 8080", cfg.ServerPort)
				}
				if cfg.SessionBackend != SessionBackendFile {
					t.Errorf("SessionBackend = %q, want file", cfg.SessionBackend)
				}
				if cfg.HTTPTimeoutSecs != 30 {
					t.Errorf("HTTPTimeoutSecs = %d, want 30", cfg.HTTPTimeoutSecs)
				}
				if cfg.LoginRateLimit != "10-M" {
					t.Errorf("LoginRateLimit = %q, want 10-M", cfg.LoginRateLimit)
				}
			},
		},
		{
			name: "custom values",
			envVars: map[string]string{
				"API_BASE_URL":         "https://api.example.com",
				"SERVER_PORT":          "9000",
				"HTTP_TIMEOUT_SECONDS": "10",
				"SERVER_DEBUG_MODE":    "true",
			},
			validate: func(t *testing.T, cfg *Config) {
				if cfg.APIBaseURL != "https://api.example.com" {
					t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
				}
				if cfg.ServerPort != "9000" {
					t.Errorf("ServerPort = %q", cfg.ServerPort)
				}
				if cfg.HTTPTimeoutSecs != 10 {
					t.Errorf("HTTPTimeoutSecs = %d", cfg.HTTPTimeoutSecs)
				}
				if !cfg.ServerDebugMode {
					t.Error("ServerDebugMode should be true")
				}
			},
		},
		{
			name: "redis backend with url",
			envVars: map[string]string{
				"SESSION_BACKEND": "redis",
				"REDIS_URL":       "redis://localhost:6379/0",
			},
			validate: func(t *testing.T, cfg *Config) {
				if cfg.SessionBackend != SessionBackendRedis {
					t.Errorf("SessionBackend = %q, want redis", cfg.SessionBackend)
				}
			},
		},
		{
			name: "redis backend without url",
			envVars: map[string]string{
				"SESSION_BACKEND": "redis",
			},
			wantErr: true,
		},
		{
			name: "invalid session backend",
			envVars: map[string]string{
				"SESSION_BACKEND": "memcached",
			},
			wantErr: true,
		},
		{
			name: "non-positive timeout",
			envVars: map[string]string{
				"HTTP_TIMEOUT_SECONDS": "-5",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.envVars {
				t.Setenv(key, value)
			}

			cfg, err := Load()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Load() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadWithFile(t *testing.T) {
	t.Run("overlay overrides environment defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := "apiBaseUrl: https://file.example.com\nhttpTimeoutSeconds: 5\n"
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("failed to write config file: %v", err)
		}

		cfg, err := LoadWithFile(path)
		if err != nil {
			t.Fatalf("LoadWithFile failed: %v", err)
		}
		if cfg.APIBaseURL != "https://file.example.com" {
			t.Errorf("APIBaseURL = %q, want file value", cfg.APIBaseURL)
		}
		if cfg.HTTPTimeoutSecs != 5 {
			t.Errorf("HTTPTimeoutSecs = %d, want 5", cfg.HTTPTimeoutSecs)
		}
		// Unset file fields keep their defaults
		if cfg.SessionBackend != SessionBackendFile {
			t.Errorf("SessionBackend = %q, want default", cfg.SessionBackend)
		}
	})

	t.Run("missing file is not an error", func(t *testing.T) {
		cfg, err := LoadWithFile(filepath.Join(t.TempDir(), "nope.yaml"))
		if err != nil {
			t.Fatalf("LoadWithFile failed: %v", err)
		}
		if cfg.APIBaseURL != "https://localhost:7154" {
			t.Errorf("APIBaseURL = %q, want default", cfg.APIBaseURL)
		}
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte("{not yaml:"), 0o600); err != nil {
			t.Fatalf("failed to write config file: %v", err)
		}
		if _, err := LoadWithFile(path); err == nil {
			t.Error("LoadWithFile accepted a malformed file")
		}
	})

	t.Run("empty path skips the overlay", func(t *testing.T) {
		if _, err := LoadWithFile(""); err != nil {
			t.Fatalf("LoadWithFile(\"\") failed: %v", err)
		}
	})
}

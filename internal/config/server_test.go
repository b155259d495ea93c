package config_test

import (
	"testing"

	"github.com/forestscape/soldmis/internal/config"
)

func clearServerEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		config.EnvPort,
		config.EnvServerHost,
		config.EnvServerPort,
		config.EnvServerReadTimeout,
		config.EnvServerWriteTimeout,
		config.EnvServerShutdownTimeout,
	} {
		t.Setenv(key, "")
	}
}

func TestServerDefaults(t *testing.T) {
	clearServerEnv(t)

	cfg := config.ServerConfig{}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	tests := []struct {
		name     string
		got      any
		expected any
	}{
		{"host", cfg.Host, "0.0.0.0"},
		{"port", cfg.Port, 8080},
		{"read_timeout", cfg.ReadTimeout, "1m"},
		{"write_timeout", cfg.WriteTimeout, "2m"},
		{"shutdown_timeout", cfg.ShutdownTimeout, "30s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("got %v, want %v", tt.got, tt.expected)
			}
		})
	}

	if got := cfg.Addr(); got != "0.0.0.0:8080" {
		t.Errorf("addr: got %q, want 0.0.0.0:8080", got)
	}
}

func TestServerPortEnv(t *testing.T) {
	clearServerEnv(t)
	t.Setenv(config.EnvPort, "9090")

	cfg := config.ServerConfig{}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if cfg.Port != 9090 {
		t.Errorf("got port %d, want 9090", cfg.Port)
	}
}

func TestServerPortPrecedence(t *testing.T) {
	clearServerEnv(t)
	t.Setenv(config.EnvPort, "9090")
	t.Setenv(config.EnvServerPort, "7070")

	cfg := config.ServerConfig{}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if cfg.Port != 7070 {
		t.Errorf("got port %d, want 7070", cfg.Port)
	}
}

func TestServerPortEnvOverridesFile(t *testing.T) {
	clearServerEnv(t)
	t.Setenv(config.EnvPort, "9090")

	cfg := config.ServerConfig{Port: 3000}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if cfg.Port != 9090 {
		t.Errorf("got port %d, want 9090", cfg.Port)
	}
}

func TestServerPortInvalidEnvIgnored(t *testing.T) {
	clearServerEnv(t)
	t.Setenv(config.EnvPort, "not-a-port")

	cfg := config.ServerConfig{}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if cfg.Port != 8080 {
		t.Errorf("got port %d, want default 8080", cfg.Port)
	}
}

func TestServerValidation(t *testing.T) {
	clearServerEnv(t)

	cfg := config.ServerConfig{Port: 70000}
	if err := cfg.Finalize(); err == nil {
		t.Error("expected error for out-of-range port")
	}

	cfg = config.ServerConfig{ReadTimeout: "soon"}
	if err := cfg.Finalize(); err == nil {
		t.Error("expected error for invalid read_timeout")
	}
}

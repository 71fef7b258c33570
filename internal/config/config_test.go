package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.App.Name != "admin-event-ops-service" {
		t.Errorf("Expected default app name, got %s", cfg.App.Name)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Expected default port 8080, got %d", cfg.Server.Port)
	}

	if cfg.Server.ReadTimeout != 10*time.Second {
		t.Errorf("Expected default read timeout 10s, got %v", cfg.Server.ReadTimeout)
	}

	if cfg.OTel.Enabled {
		t.Error("Expected telemetry disabled by default")
	}
}

func TestServerConfig_Addr(t *testing.T) {
	cfg := ServerConfig{Host: "127.0.0.1", Port: 9090}
	if addr := cfg.Addr(); addr != "127.0.0.1:9090" {
		t.Errorf("Expected 127.0.0.1:9090, got %s", addr)
	}
}

func TestConfig_EnvironmentChecks(t *testing.T) {
	cfg := &Config{App: AppConfig{Environment: "development"}}
	if !cfg.IsDevelopment() || cfg.IsProduction() {
		t.Error("Expected development environment")
	}

	cfg.App.Environment = "production"
	if cfg.IsDevelopment() || !cfg.IsProduction() {
		t.Error("Expected production environment")
	}
}

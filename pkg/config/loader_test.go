package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestLoadConfigMergesEnvOverlay(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "base.yaml", `
server:
  port: "8080"
db:
  host: "localhost"
  name: "daykeeper"
`)
	writeConfigFile(t, dir, "prod.yaml", `
db:
  host: "db.internal"
`)

	cfg, err := LoadConfig("prod", dir)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	dbCfg, ok := cfg["db"].(map[string]interface{})
	if !ok {
		t.Fatalf("db section missing: %v", cfg)
	}
	if dbCfg["host"] != "db.internal" {
		t.Errorf("db.host = %v, want the overlay value", dbCfg["host"])
	}
	if dbCfg["name"] != "daykeeper" {
		t.Errorf("db.name = %v, want the base value preserved", dbCfg["name"])
	}

	serverCfg, ok := cfg["server"].(map[string]interface{})
	if !ok || serverCfg["port"] != "8080" {
		t.Errorf("server section = %v, want base port 8080", cfg["server"])
	}
}

func TestLoadConfigMissingOverlayIsIgnored(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "base.yaml", `
server:
  port: "8080"
`)

	cfg, err := LoadConfig("staging", dir)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if _, ok := cfg["server"]; !ok {
		t.Errorf("server section missing: %v", cfg)
	}
}

func TestLoadConfigMissingBaseFails(t *testing.T) {
	if _, err := LoadConfig("local", t.TempDir()); err == nil {
		t.Fatal("expected an error when base.yaml is absent")
	}
}

func TestOverrideDBFromEnv(t *testing.T) {
	t.Setenv("DB_HOST", "db.example.com")
	t.Setenv("DB_PORT", "6543")

	cfg := DBConfig{Host: "localhost", Port: 5432, User: "daykeeper"}
	OverrideDBFromEnv(&cfg)

	if cfg.Host != "db.example.com" {
		t.Errorf("host = %q, want db.example.com", cfg.Host)
	}
	if cfg.Port != 6543 {
		t.Errorf("port = %d, want 6543", cfg.Port)
	}
	if cfg.User != "daykeeper" {
		t.Errorf("user = %q, unset variables must not override", cfg.User)
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("DAYKEEPER_TEST_KEY", "value")
	if got := GetEnv("DAYKEEPER_TEST_KEY", "fallback"); got != "value" {
		t.Errorf("GetEnv = %q, want value", got)
	}
	if got := GetEnv("DAYKEEPER_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("GetEnv = %q, want fallback", got)
	}
}

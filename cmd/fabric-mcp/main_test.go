package main

import (
	"os"
	"path/filepath"
	"testing"
)

func clearFabricEnv(t *testing.T) {
	t.Helper()
	t.Setenv("FABRIC_API_TOKEN", "")
	t.Setenv("FABRIC_BASE_URL", "")
	t.Setenv("FABRIC_MCP_PORT", "")
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearFabricEnv(t)

	cfg := loadConfig("")
	if cfg.Fabric.BaseURL != "https://api.equinix.com/fabric" {
		t.Errorf("Expected default base URL, got %s", cfg.Fabric.BaseURL)
	}
	if cfg.Fabric.Token != "" {
		t.Errorf("Expected no default token, got %q", cfg.Fabric.Token)
	}
	if cfg.Fabric.TimeoutSeconds != 30 {
		t.Errorf("Expected default timeout 30, got %d", cfg.Fabric.TimeoutSeconds)
	}
	if cfg.Server.Port != "4270" {
		t.Errorf("Expected default port 4270, got %s", cfg.Server.Port)
	}
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	clearFabricEnv(t)

	cfg := loadConfig(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if cfg.Server.Name != "Fabric-MCP" {
		t.Errorf("Expected default server name, got %s", cfg.Server.Name)
	}
}

func TestLoadConfig_FileValues(t *testing.T) {
	clearFabricEnv(t)

	path := filepath.Join(t.TempDir(), "fabric-mcp.toml")
	content := `
[server]
port = "9999"

[fabric]
base_url = "https://sandbox.example.com/fabric"
token = "file-token"

[logging]
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg := loadConfig(path)
	if cfg.Server.Port != "9999" {
		t.Errorf("Expected port 9999, got %s", cfg.Server.Port)
	}
	if cfg.Fabric.BaseURL != "https://sandbox.example.com/fabric" {
		t.Errorf("Expected file base URL, got %s", cfg.Fabric.BaseURL)
	}
	if cfg.Fabric.Token != "file-token" {
		t.Errorf("Expected file token, got %q", cfg.Fabric.Token)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Expected debug level, got %s", cfg.Logging.Level)
	}
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fabric-mcp.toml")
	content := `
[fabric]
token = "file-token"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	t.Setenv("FABRIC_API_TOKEN", "env-token")
	t.Setenv("FABRIC_BASE_URL", "https://env.example.com/fabric")
	t.Setenv("FABRIC_MCP_PORT", "4321")

	cfg := loadConfig(path)
	if cfg.Fabric.Token != "env-token" {
		t.Errorf("Env token should win over file, got %q", cfg.Fabric.Token)
	}
	if cfg.Fabric.BaseURL != "https://env.example.com/fabric" {
		t.Errorf("Env base URL should win, got %s", cfg.Fabric.BaseURL)
	}
	if cfg.Server.Port != "4321" {
		t.Errorf("Env port should win, got %s", cfg.Server.Port)
	}
}

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/server"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/bobmcallan/fabric-mcp/internal/fabric/common"
)

// FabricConfig holds the upstream API configuration. The token is the single
// required credential; everything else has a working default.
type FabricConfig struct {
	BaseURL        string `toml:"base_url"`
	Token          string `toml:"token"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// ServerConfig holds MCP server settings.
type ServerConfig struct {
	Name string `toml:"name"`
	Port string `toml:"port"`
}

// Config holds all fabric-mcp configuration.
type Config struct {
	Server  ServerConfig         `toml:"server"`
	Fabric  FabricConfig         `toml:"fabric"`
	Logging common.LoggingConfig `toml:"logging"`
}

// newDefaultConfig returns a Config with sensible defaults.
func newDefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Name: "Fabric-MCP",
			Port: "4270",
		},
		Fabric: FabricConfig{
			BaseURL:        "https://api.equinix.com/fabric",
			TimeoutSeconds: 30,
		},
		Logging: common.LoggingConfig{
			Level:      "info",
			Outputs:    []string{"console", "file"},
			FilePath:   "logs/fabric-mcp.log",
			MaxSizeMB:  100,
			MaxBackups: 3,
		},
	}
}

// loadConfig loads configuration from a TOML file with defaults and env overrides.
func loadConfig(path string) Config {
	cfg := newDefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				log.Fatalf("Failed to read config file %s: %v", path, err)
			}
			// File not found — use defaults
		} else {
			if err := toml.Unmarshal(data, &cfg); err != nil {
				log.Fatalf("Failed to parse config file %s: %v", path, err)
			}
		}
	}

	// Environment overrides — the env token wins over any file value
	if tok := os.Getenv("FABRIC_API_TOKEN"); tok != "" {
		cfg.Fabric.Token = tok
	}
	if base := os.Getenv("FABRIC_BASE_URL"); base != "" {
		cfg.Fabric.BaseURL = base
	}
	if port := os.Getenv("FABRIC_MCP_PORT"); port != "" {
		cfg.Server.Port = port
	}

	return cfg
}

func main() {
	stdio := flag.Bool("stdio", false, "Use stdio transport (for Claude Desktop)")
	configFile := flag.String("config", "fabric-mcp.toml", "Path to config file")
	flag.Parse()

	cfg := loadConfig(*configFile)

	// Missing credential is fatal before any invocation is accepted
	if cfg.Fabric.Token == "" {
		fmt.Fprintln(os.Stderr, "fabric-mcp: FABRIC_API_TOKEN environment variable is required")
		os.Exit(1)
	}

	common.LoadVersionFromFile()

	logger := common.NewLoggerFromConfig(cfg.Logging)

	client := NewFabricClient(cfg.Fabric, logger)

	mcpServer := server.NewMCPServer(
		cfg.Server.Name,
		common.GetVersion(),
		server.WithToolCapabilities(true),
	)

	registerTools(mcpServer, client, logger)

	if *stdio {
		// Stdio transport — reads stdin, writes stdout
		if err := server.ServeStdio(mcpServer); err != nil {
			fmt.Fprintf(os.Stderr, "stdio server error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	port := cfg.Server.Port

	// Streamable HTTP transport — listens on configured port
	httpServer := server.NewStreamableHTTPServer(mcpServer,
		server.WithStateLess(true),
	)

	logger.Info().Str("port", port).Msg("Starting MCP Streamable HTTP")
	fmt.Fprintf(os.Stderr, "Starting MCP Streamable HTTP on :%s\n", port)

	if err := httpServer.Start(":" + port); err != nil {
		fmt.Fprintf(os.Stderr, "http server error: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bobmcallan/fabric-mcp/internal/fabric/common"
)

var startTime = time.Now()

func createGetVersionTool() mcp.Tool {
	return mcp.NewTool("get_version",
		mcp.WithDescription("Get the Fabric MCP server version and status. Use this to verify connectivity."),
	)
}

func createGetDiagnosticsTool() mcp.Tool {
	return mcp.NewTool("get_diagnostics",
		mcp.WithDescription("Get server diagnostics: uptime, version, recent log entries."),
		mcp.WithString("correlation_id", mcp.Description("If provided, returns logs for a specific correlation ID")),
		mcp.WithNumber("limit", mcp.Description("Maximum recent log entries (default: 50)")),
	)
}

func handleGetVersion() server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result := fmt.Sprintf("Fabric MCP Server\nVersion: %s\nBuild: %s\nCommit: %s\nStatus: OK",
			common.GetVersion(), common.GetBuild(), common.GetGitCommit())
		return textResult(result), nil
	}
}

func handleGetDiagnostics(logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var sb strings.Builder
		sb.WriteString("# Server Diagnostics\n\n")
		sb.WriteString("## Server Info\n\n")
		sb.WriteString("| Field | Value |\n")
		sb.WriteString("|-------|-------|\n")
		sb.WriteString(fmt.Sprintf("| Version | %s |\n", common.GetVersion()))
		sb.WriteString(fmt.Sprintf("| Build | %s |\n", common.GetBuild()))
		sb.WriteString(fmt.Sprintf("| Commit | %s |\n", common.GetGitCommit()))
		sb.WriteString(fmt.Sprintf("| Uptime | %s |\n", time.Since(startTime).Round(time.Second)))
		sb.WriteString(fmt.Sprintf("| Started | %s |\n", startTime.Format(time.RFC3339)))
		sb.WriteString("\n")

		var (
			logs map[string]string
			err  error
		)
		if cid := request.GetString("correlation_id", ""); cid != "" {
			logs, err = logger.GetMemoryLogsForCorrelation(cid)
			sb.WriteString(fmt.Sprintf("## Logs for %s\n\n", cid))
		} else {
			logs, err = logger.GetMemoryLogsWithLimit(request.GetInt("limit", 50))
			sb.WriteString("## Recent Logs\n\n")
		}
		if err != nil {
			sb.WriteString(fmt.Sprintf("log query failed: %v\n", err))
			return textResult(sb.String()), nil
		}

		if len(logs) == 0 {
			sb.WriteString("No log entries recorded.\n")
			return textResult(sb.String()), nil
		}

		keys := make([]string, 0, len(logs))
		for k := range logs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			sb.WriteString(logs[k])
			sb.WriteString("\n")
		}

		return textResult(sb.String()), nil
	}
}

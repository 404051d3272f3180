// Package mcpserver exposes s2match's graph-pair comparison as a single MCP
// tool, s2match_compare. Follows pkg/mcp's registerTools tool-registration
// pattern (mcp-go's server.NewMCPServer + AddTool(name, schema, handler)),
// trimmed from a six-tool memory-database surface down to the one
// operation s2match exposes.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	mcpproto "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/s2match/s2match/pkg/amrio"
	"github.com/s2match/s2match/pkg/config"
	"github.com/s2match/s2match/pkg/embedding"
	"github.com/s2match/s2match/pkg/s2match"
)

const toolCompare = "s2match_compare"

// New builds an MCP server exposing s2match_compare. table is shared
// read-only across every tool invocation, the same way it is shared
// read-only across pairs in the corpus driver.
func New(table embedding.Table, base *config.Config) *mcpserver.MCPServer {
	s := mcpserver.NewMCPServer(
		"s2match-mcp",
		"1.0.0",
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithRecovery(),
	)

	s.AddTool(mcpproto.NewTool(toolCompare,
		mcpproto.WithDescription("Compare two AMR graphs with the S2Match graded similarity metric and return precision/recall/F1."),
		mcpproto.WithString("test_amr", mcpproto.Required(), mcpproto.Description("Penman-notation AMR block for the test graph, e.g. \"(x / hit-01 :ARG0 (y / boy))\".")),
		mcpproto.WithString("gold_amr", mcpproto.Required(), mcpproto.Description("Penman-notation AMR block for the gold graph.")),
		mcpproto.WithString("similarity_function", mcpproto.Description("cosine|euclidean|cityblock (optional, defaults to configured value).")),
		mcpproto.WithNumber("cutoff", mcpproto.Description("Similarity cutoff in [0,1] (optional).")),
		mcpproto.WithBoolean("report_pr", mcpproto.Description("Sets the reportPR config value (optional). The JSON result always carries precision and recall, whatever this value.")),
	), handleCompare(table, base))

	return s
}

func handleCompare(table embedding.Table, base *config.Config) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcpproto.CallToolRequest) (*mcpproto.CallToolResult, error) {
		args := req.GetArguments()
		testAMR := getString(args, "test_amr", "")
		goldAMR := getString(args, "gold_amr", "")
		if testAMR == "" || goldAMR == "" {
			return errResult("test_amr and gold_amr are required"), nil
		}

		cfg := *base
		if v := getString(args, "similarity_function", ""); v != "" {
			cfg.Similarity.Function = v
		}
		if v, ok := args["cutoff"].(float64); ok {
			cfg.Similarity.Cutoff = v
		}
		if v, ok := args["report_pr"].(bool); ok {
			cfg.Output.ReportPR = v
		}
		if err := cfg.Validate(); err != nil {
			return errResult(err.Error()), nil
		}

		parser := amrio.NewParser(amrio.Options{DoNotMarkQuotes: cfg.Parser.DoNotMarkQuotes})
		g1, err := parser.Parse(testAMR)
		if err != nil {
			return errResult(fmt.Sprintf("test_amr: %v", err)), nil
		}
		g2, err := parser.Parse(goldAMR)
		if err != nil {
			return errResult(fmt.Sprintf("gold_amr: %v", err)), nil
		}

		result, err := s2match.CompareGraphs(g1, g2, &cfg, table)
		if err != nil {
			return errResult(err.Error()), nil
		}

		return structuredResult(fmt.Sprintf("Smatch score F1 %.3f", result.F1), result)
	}
}

func getString(args map[string]any, key, def string) string {
	if args == nil {
		return def
	}
	if v, ok := args[key].(string); ok {
		return v
	}
	return def
}

func errResult(msg string) *mcpproto.CallToolResult {
	return &mcpproto.CallToolResult{
		Content: []mcpproto.Content{
			mcpproto.TextContent{Type: "text", Text: "Error: " + msg},
		},
		IsError: true,
	}
}

func structuredResult(summary string, data any) (*mcpproto.CallToolResult, error) {
	blob, err := json.Marshal(data)
	if err != nil {
		return errResult(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}
	return &mcpproto.CallToolResult{
		Content: []mcpproto.Content{
			mcpproto.TextContent{Type: "text", Text: summary},
			mcpproto.TextContent{Type: "text", Text: string(blob)},
		},
	}, nil
}

// Serve runs s over stdio, the default transport for local tool
// integration.
func Serve(s *mcpserver.MCPServer) error {
	return mcpserver.ServeStdio(s)
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/s2match/s2match/pkg/config"
	"github.com/s2match/s2match/pkg/embedding"
	"github.com/s2match/s2match/pkg/mcpserver"
)

// newServeMCPCmd builds the serve-mcp subcommand, starting the
// s2match_compare MCP tool over stdio.
func newServeMCPCmd() *cobra.Command {
	var configPath, vectorsPath string

	cmd := &cobra.Command{
		Use:   "serve-mcp",
		Short: "Serve the s2match_compare tool over MCP (stdio transport)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				configPath = os.Getenv("S2MATCH_CONFIG")
			}
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
				os.Exit(1)
			}
			if vectorsPath != "" {
				cfg.Vectors.Path = vectorsPath
			}
			if err := cfg.Validate(); err != nil {
				fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
				os.Exit(1)
			}

			table, err := embedding.Load(cfg.Vectors.Path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "failed to load embedding table: %v\n", err)
				os.Exit(2)
			}

			s := mcpserver.New(table, cfg)
			return mcpserver.Serve(s)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "f", "", "Path to YAML config file (overrides S2MATCH_CONFIG env)")
	cmd.Flags().StringVar(&vectorsPath, "vectors", "", "Path to whitespace-separated word-vector file")

	return cmd
}

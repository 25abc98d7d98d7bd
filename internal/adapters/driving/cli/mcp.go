package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TonyLeary/nms-companion/internal/adapters/driving/mcp"
)

var mcpHTTPAddr string

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the MCP server",
	Long: `Runs a Model Context Protocol server exposing the ask tool,
so AI assistants can answer No Man's Sky questions through the
companion. Serves stdio by default, or HTTP with --http.`,
	RunE: runMCP,
}

func init() {
	mcpCmd.Flags().StringVar(&mcpHTTPAddr, "http", "", "serve over HTTP on this address instead of stdio")
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, _ []string) error {
	if askService == nil {
		return errors.New("ask service not configured")
	}

	server, err := mcp.NewServer(&mcp.Ports{
		Ask:       askService,
		Favorites: favoritesService,
	})
	if err != nil {
		return fmt.Errorf("create mcp server: %w", err)
	}

	ctx := cmd.Context()
	if mcpHTTPAddr != "" {
		return server.RunHTTP(ctx, mcpHTTPAddr)
	}
	return server.Run(ctx)
}

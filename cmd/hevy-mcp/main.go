package main

import (
	"log"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/ixiliae/mcp-fitness-stack/internal/config"
	"github.com/ixiliae/mcp-fitness-stack/internal/hevy"
	"github.com/ixiliae/mcp-fitness-stack/internal/logging"
	"github.com/ixiliae/mcp-fitness-stack/internal/mcp"
	"github.com/ixiliae/mcp-fitness-stack/internal/mcp/tools"
)

func main() {
	root := &cobra.Command{
		Use:   "hevy-mcp",
		Short: "Hevy fitness tracker MCP server",
		RunE:  run,
	}

	root.PersistentFlags().Int("port", 0, "HTTP port (0 serves stdio)")
	root.PersistentFlags().String("host", "0.0.0.0", "HTTP host")

	config.Init(root)

	if err := root.Execute(); err != nil {
		log.Fatalf("command failed: %v", err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if err := config.RequireHevy(); err != nil {
		return err
	}
	logger := logging.New(logging.DefaultLogger(config.LogLevel())).WithName("hevy-mcp")

	client := hevy.NewClient(config.HevyBaseURL(), config.HevyAPIKey())
	srv := mcp.New(mcp.Config{
		Name:    "hevy-fitness-tracker",
		Version: "1.0.0",
		Tools:   tools.HevyToolSet(client),
		Options: []server.StreamableHTTPOption{server.WithStateLess(true)},
	})

	host, _ := cmd.Flags().GetString("host")
	port, _ := cmd.Flags().GetInt("port")
	return mcp.Run(srv, host, port, logger)
}

package main

import (
	"log"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/ixiliae/mcp-fitness-stack/internal/config"
	"github.com/ixiliae/mcp-fitness-stack/internal/logging"
	"github.com/ixiliae/mcp-fitness-stack/internal/mcp"
	"github.com/ixiliae/mcp-fitness-stack/internal/mcp/tools"
	"github.com/ixiliae/mcp-fitness-stack/internal/strava"
)

func main() {
	root := &cobra.Command{
		Use:   "strava-mcp",
		Short: "Strava MCP server",
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
	if err := config.RequireStrava(); err != nil {
		return err
	}
	logger := logging.New(logging.DefaultLogger(config.LogLevel())).WithName("strava-mcp")

	client := strava.NewClient(config.StravaBaseURL(), config.StravaAccessToken())
	srv := mcp.New(mcp.Config{
		Name:    "strava-mcp",
		Version: "1.0.0",
		Tools:   tools.StravaToolSet(client),
		Options: []server.StreamableHTTPOption{server.WithStateLess(true)},
	})

	host, _ := cmd.Flags().GetString("host")
	port, _ := cmd.Flags().GetInt("port")
	return mcp.Run(srv, host, port, logger)
}

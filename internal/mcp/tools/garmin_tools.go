package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ixiliae/mcp-fitness-stack/internal/garmin"
)

// WellnessService is the slice of the Garmin client the tools need.
type WellnessService interface {
	DailyStats(ctx context.Context, days int) ([]map[string]any, error)
	TrainingLoad(ctx context.Context) (string, error)
}

type GetGarminStatsHandler struct {
	Service WellnessService
}

func (h *GetGarminStatsHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	days := optionalInt(req.GetArguments(), "days", 7)
	stats, err := h.Service.DailyStats(ctx, days)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(mustMarshal(stats))), nil
}

type GetTrainingLoadHandler struct {
	Service WellnessService
}

func (h *GetTrainingLoadHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	load, err := h.Service.TrainingLoad(ctx)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(load), nil
}

// GarminToolSet declares the Garmin tool inventory wired to one client.
func GarminToolSet(client *garmin.Client) []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: mcp.NewTool("get_garmin_stats",
				mcp.WithDescription("Get Garmin daily wellness stats: HRV, sleep, body battery, stress, training readiness and training load"),
				mcp.WithNumber("days", mcp.Description("Number of days to fetch (default: 7)")),
			),
			Handler: (&GetGarminStatsHandler{Service: client}).ToolAdapter,
		},
		{
			Tool: mcp.NewTool("get_training_load",
				mcp.WithDescription("Get a combined view of current training load and readiness"),
			),
			Handler: (&GetTrainingLoadHandler{Service: client}).ToolAdapter,
		},
	}
}

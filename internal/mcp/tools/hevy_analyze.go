package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// AnalyzeService produces the recent-training summary.
type AnalyzeService interface {
	AnalyzeRecent(ctx context.Context, days int) (string, error)
}

type AnalyzeRecentWorkoutsHandler struct {
	Service AnalyzeService
}

func (h *AnalyzeRecentWorkoutsHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	days := optionalInt(req.GetArguments(), "days", 7)
	summary, err := h.Service.AnalyzeRecent(ctx, days)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(summary), nil
}

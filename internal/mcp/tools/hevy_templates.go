package tools

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

// TemplateService is the slice of the Hevy client the exercise-template tools
// need.
type TemplateService interface {
	ListExerciseTemplates(ctx context.Context, page, pageSize int) (json.RawMessage, error)
	GetExerciseTemplate(ctx context.Context, templateID string) (json.RawMessage, error)
}

type GetExerciseTemplatesHandler struct {
	Service TemplateService
}

func (h *GetExerciseTemplatesHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	raw, err := h.Service.ListExerciseTemplates(ctx, optionalInt(args, "page", 1), optionalInt(args, "page_size", 20))
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(prettyJSON(raw)), nil
}

type GetExerciseTemplateHandler struct {
	Service TemplateService
}

func (h *GetExerciseTemplateHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	templateID, _ := req.GetArguments()["template_id"].(string)
	if templateID == "" {
		return mcp.NewToolResultError("template_id parameter is required"), nil
	}
	raw, err := h.Service.GetExerciseTemplate(ctx, templateID)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(prettyJSON(raw)), nil
}

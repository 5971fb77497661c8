package tools

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ixiliae/mcp-fitness-stack/internal/hevy"
)

// RoutineService is the slice of the Hevy client the routine tools need.
type RoutineService interface {
	ListRoutines(ctx context.Context, page, pageSize int) (json.RawMessage, error)
	GetRoutine(ctx context.Context, routineID string) (json.RawMessage, error)
	CreateRoutine(ctx context.Context, params hevy.RoutineParams) (json.RawMessage, error)
	UpdateRoutine(ctx context.Context, routineID string, params hevy.RoutineParams) (json.RawMessage, error)
}

type GetRoutinesHandler struct {
	Service RoutineService
}

func (h *GetRoutinesHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	raw, err := h.Service.ListRoutines(ctx, optionalInt(args, "page", 1), optionalInt(args, "page_size", 10))
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(prettyJSON(raw)), nil
}

type GetRoutineHandler struct {
	Service RoutineService
}

func (h *GetRoutineHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	routineID, _ := req.GetArguments()["routine_id"].(string)
	if routineID == "" {
		return mcp.NewToolResultError("routine_id parameter is required"), nil
	}
	raw, err := h.Service.GetRoutine(ctx, routineID)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(prettyJSON(raw)), nil
}

type CreateRoutineHandler struct {
	Service RoutineService
}

func (h *CreateRoutineHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params, errResult := routineParams(req.GetArguments())
	if errResult != nil {
		return errResult, nil
	}
	raw, err := h.Service.CreateRoutine(ctx, params)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(prettyJSON(raw)), nil
}

type UpdateRoutineHandler struct {
	Service RoutineService
}

func (h *UpdateRoutineHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	routineID, _ := args["routine_id"].(string)
	if routineID == "" {
		return mcp.NewToolResultError("routine_id parameter is required"), nil
	}
	params, errResult := routineParams(args)
	if errResult != nil {
		return errResult, nil
	}
	raw, err := h.Service.UpdateRoutine(ctx, routineID, params)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(prettyJSON(raw)), nil
}

func routineParams(args map[string]any) (hevy.RoutineParams, *mcp.CallToolResult) {
	title, _ := args["title"].(string)
	if title == "" {
		return hevy.RoutineParams{}, mcp.NewToolResultError("title parameter is required")
	}
	notes, _ := args["notes"].(string)

	exercises, errResult := decodeExercises(args)
	if errResult != nil {
		return hevy.RoutineParams{}, errResult
	}

	params := hevy.RoutineParams{Title: title, Notes: notes, Exercises: exercises}
	if raw, ok := args["folder_id"].(float64); ok {
		folderID := int(raw)
		params.FolderID = &folderID
	}
	return params, nil
}

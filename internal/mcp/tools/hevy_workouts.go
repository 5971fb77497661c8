package tools

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ixiliae/mcp-fitness-stack/internal/hevy"
)

// WorkoutService is the slice of the Hevy client the workout tools need.
type WorkoutService interface {
	ListWorkouts(ctx context.Context, page, pageSize int) (json.RawMessage, error)
	WorkoutCount(ctx context.Context) (json.RawMessage, error)
	GetWorkout(ctx context.Context, workoutID string) (json.RawMessage, error)
	CreateWorkout(ctx context.Context, params hevy.WorkoutParams) (json.RawMessage, error)
	UpdateWorkout(ctx context.Context, workoutID string, params hevy.WorkoutParams) (json.RawMessage, error)
}

type GetWorkoutsHandler struct {
	Service WorkoutService
}

func (h *GetWorkoutsHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	page := optionalInt(args, "page", 1)
	pageSize := optionalInt(args, "page_size", 10)
	raw, err := h.Service.ListWorkouts(ctx, page, pageSize)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(prettyJSON(raw)), nil
}

type GetWorkoutCountHandler struct {
	Service WorkoutService
}

func (h *GetWorkoutCountHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := h.Service.WorkoutCount(ctx)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(prettyJSON(raw)), nil
}

type GetWorkoutHandler struct {
	Service WorkoutService
}

func (h *GetWorkoutHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	workoutID, _ := req.GetArguments()["workout_id"].(string)
	if workoutID == "" {
		return mcp.NewToolResultError("workout_id parameter is required"), nil
	}
	raw, err := h.Service.GetWorkout(ctx, workoutID)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(prettyJSON(raw)), nil
}

type CreateWorkoutHandler struct {
	Service WorkoutService
}

func (h *CreateWorkoutHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params, errResult := workoutParams(req.GetArguments())
	if errResult != nil {
		return errResult, nil
	}
	raw, err := h.Service.CreateWorkout(ctx, params)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(prettyJSON(raw)), nil
}

type UpdateWorkoutHandler struct {
	Service WorkoutService
}

func (h *UpdateWorkoutHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	workoutID, _ := args["workout_id"].(string)
	if workoutID == "" {
		return mcp.NewToolResultError("workout_id parameter is required"), nil
	}
	params, errResult := workoutParams(args)
	if errResult != nil {
		return errResult, nil
	}
	raw, err := h.Service.UpdateWorkout(ctx, workoutID, params)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(prettyJSON(raw)), nil
}

// workoutParams assembles the workout payload from tool arguments. The
// exercises argument is a JSON-encoded array carried as a string.
func workoutParams(args map[string]any) (hevy.WorkoutParams, *mcp.CallToolResult) {
	title, _ := args["title"].(string)
	if title == "" {
		return hevy.WorkoutParams{}, mcp.NewToolResultError("title parameter is required")
	}
	startTime, _ := args["start_time"].(string)
	endTime, _ := args["end_time"].(string)
	description, _ := args["description"].(string)

	exercises, errResult := decodeExercises(args)
	if errResult != nil {
		return hevy.WorkoutParams{}, errResult
	}
	return hevy.WorkoutParams{
		Title:       title,
		Description: description,
		StartTime:   startTime,
		EndTime:     endTime,
		Exercises:   exercises,
	}, nil
}

func decodeExercises(args map[string]any) (any, *mcp.CallToolResult) {
	encoded, _ := args["exercises"].(string)
	if encoded == "" {
		return nil, mcp.NewToolResultError("exercises parameter is required")
	}
	var exercises any
	if err := json.Unmarshal([]byte(encoded), &exercises); err != nil {
		return nil, mcp.NewToolResultError("exercises must be a JSON-encoded array: " + err.Error())
	}
	return exercises, nil
}

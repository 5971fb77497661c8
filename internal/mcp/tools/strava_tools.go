package tools

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ixiliae/mcp-fitness-stack/internal/strava"
)

// ActivityService is the slice of the Strava client the tools need.
type ActivityService interface {
	ListActivities(ctx context.Context, limit int) ([]map[string]any, error)
	ActivityDetail(ctx context.Context, activityID int64) (map[string]any, error)
	AthleteStats(ctx context.Context) (map[string]any, error)
	ActivityStreams(ctx context.Context, activityID int64, types []string) (map[string]any, error)
}

type GetActivitiesHandler struct {
	Service ActivityService
}

func (h *GetActivitiesHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := optionalInt(req.GetArguments(), "limit", 10)
	activities, err := h.Service.ListActivities(ctx, limit)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(mustMarshal(activities))), nil
}

type GetActivityHandler struct {
	Service ActivityService
}

func (h *GetActivityHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	activityID, err := intArgument(req.GetArguments()["activity_id"], "activity_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	detail, err := h.Service.ActivityDetail(ctx, int64(activityID))
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(mustMarshal(detail))), nil
}

type GetAthleteStatsHandler struct {
	Service ActivityService
}

func (h *GetAthleteStatsHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	stats, err := h.Service.AthleteStats(ctx)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(mustMarshal(stats))), nil
}

type GetStreamsHandler struct {
	Service ActivityService
}

func (h *GetStreamsHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	activityID, err := intArgument(args["activity_id"], "activity_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	var types []string
	if rawTypes, ok := args["types"].([]any); ok {
		for _, t := range rawTypes {
			if s, ok := t.(string); ok {
				types = append(types, s)
			}
		}
	}
	streams, err := h.Service.ActivityStreams(ctx, int64(activityID), types)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(mustMarshal(streams))), nil
}

// StravaToolSet declares the Strava tool inventory wired to one client.
func StravaToolSet(client *strava.Client) []server.ServerTool {
	defaultTypes, _ := json.Marshal(strava.DefaultStreamTypes)
	return []server.ServerTool{
		{
			Tool: mcp.NewTool("get_strava_activities",
				mcp.WithDescription("List recent Strava activities"),
				mcp.WithNumber("limit", mcp.Description("Maximum number of activities to return (default: 10)")),
			),
			Handler: (&GetActivitiesHandler{Service: client}).ToolAdapter,
		},
		{
			Tool: mcp.NewTool("get_strava_activity",
				mcp.WithDescription("Get full detail of a specific Strava activity by ID"),
				mcp.WithNumber("activity_id", mcp.Required(), mcp.Description("The activity ID")),
			),
			Handler: (&GetActivityHandler{Service: client}).ToolAdapter,
		},
		{
			Tool: mcp.NewTool("get_strava_athlete_stats",
				mcp.WithDescription("Get athlete cumulative stats: recent, year-to-date, and all-time totals per sport"),
			),
			Handler: (&GetAthleteStatsHandler{Service: client}).ToolAdapter,
		},
		{
			Tool: mcp.NewTool("get_strava_streams",
				mcp.WithDescription("Get time-series streams for an activity (heartrate, watts, velocity, cadence, altitude)"),
				mcp.WithNumber("activity_id", mcp.Required(), mcp.Description("The activity ID")),
				mcp.WithArray("types",
					mcp.Description("Stream types to fetch (default: "+string(defaultTypes)+")"),
					mcp.WithStringItems(),
				),
			),
			Handler: (&GetStreamsHandler{Service: client}).ToolAdapter,
		},
	}
}

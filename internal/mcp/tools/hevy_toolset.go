package tools

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ixiliae/mcp-fitness-stack/internal/hevy"
)

const exercisesFormat = "JSON string array of exercises. Each exercise object must have exercise_template_id (string), superset_id (null or int), notes (string), and sets (array of {type, weight_kg, reps, distance_meters, duration_seconds, rpe})."

// HevyToolSet declares the full Hevy tool inventory wired to one client.
func HevyToolSet(client *hevy.Client) []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: mcp.NewTool("get_workouts",
				mcp.WithDescription("Fetch a paginated list of workouts from your Hevy training log, with exercises, sets, reps, weight, and timestamps."),
				mcp.WithNumber("page", mcp.Description("Page number (default: 1)")),
				mcp.WithNumber("page_size", mcp.Description("Number of workouts per page (max 10, default: 10)")),
			),
			Handler: (&GetWorkoutsHandler{Service: client}).ToolAdapter,
		},
		{
			Tool: mcp.NewTool("get_workout_count",
				mcp.WithDescription("Get the total number of workouts logged in your Hevy account."),
			),
			Handler: (&GetWorkoutCountHandler{Service: client}).ToolAdapter,
		},
		{
			Tool: mcp.NewTool("get_workout",
				mcp.WithDescription("Get detailed information about a specific workout by its ID, including all exercises and sets."),
				mcp.WithString("workout_id", mcp.Required(), mcp.Description("The unique identifier of the workout")),
			),
			Handler: (&GetWorkoutHandler{Service: client}).ToolAdapter,
		},
		{
			Tool: mcp.NewTool("create_workout",
				mcp.WithDescription("Create a new workout session in Hevy."),
				mcp.WithString("title", mcp.Required(), mcp.Description("Name of the workout (e.g., 'Push Day', 'Leg Day')")),
				mcp.WithString("start_time", mcp.Required(), mcp.Description("ISO 8601 start datetime (e.g., '2024-01-15T09:00:00+00:00')")),
				mcp.WithString("end_time", mcp.Required(), mcp.Description("ISO 8601 end datetime")),
				mcp.WithString("exercises", mcp.Required(), mcp.Description(exercisesFormat)),
				mcp.WithString("description", mcp.Description("Optional workout description/notes")),
			),
			Handler: (&CreateWorkoutHandler{Service: client}).ToolAdapter,
		},
		{
			Tool: mcp.NewTool("update_workout",
				mcp.WithDescription("Update an existing workout in Hevy."),
				mcp.WithString("workout_id", mcp.Required(), mcp.Description("The unique identifier of the workout to update")),
				mcp.WithString("title", mcp.Required(), mcp.Description("Updated name of the workout")),
				mcp.WithString("start_time", mcp.Required(), mcp.Description("ISO 8601 start datetime")),
				mcp.WithString("end_time", mcp.Required(), mcp.Description("ISO 8601 end datetime")),
				mcp.WithString("exercises", mcp.Required(), mcp.Description(exercisesFormat)),
				mcp.WithString("description", mcp.Description("Optional updated description")),
			),
			Handler: (&UpdateWorkoutHandler{Service: client}).ToolAdapter,
		},
		{
			Tool: mcp.NewTool("get_routines",
				mcp.WithDescription("Fetch all workout routines saved in your Hevy account."),
				mcp.WithNumber("page", mcp.Description("Page number (default: 1)")),
				mcp.WithNumber("page_size", mcp.Description("Number of routines per page (default: 10)")),
			),
			Handler: (&GetRoutinesHandler{Service: client}).ToolAdapter,
		},
		{
			Tool: mcp.NewTool("get_routine",
				mcp.WithDescription("Get a specific workout routine by its ID, including all exercises, sets, and notes."),
				mcp.WithString("routine_id", mcp.Required(), mcp.Description("The unique identifier of the routine")),
			),
			Handler: (&GetRoutineHandler{Service: client}).ToolAdapter,
		},
		{
			Tool: mcp.NewTool("create_routine",
				mcp.WithDescription("Create a new workout routine in Hevy."),
				mcp.WithString("title", mcp.Required(), mcp.Description("Name of the routine (e.g., 'Push A', 'Upper Body')")),
				mcp.WithString("exercises", mcp.Required(), mcp.Description(exercisesFormat)),
				mcp.WithNumber("folder_id", mcp.Description("Optional ID of the folder to save the routine in")),
				mcp.WithString("notes", mcp.Description("Optional routine-level notes")),
			),
			Handler: (&CreateRoutineHandler{Service: client}).ToolAdapter,
		},
		{
			Tool: mcp.NewTool("update_routine",
				mcp.WithDescription("Update an existing workout routine in Hevy."),
				mcp.WithString("routine_id", mcp.Required(), mcp.Description("The unique identifier of the routine to update")),
				mcp.WithString("title", mcp.Required(), mcp.Description("Updated routine name")),
				mcp.WithString("exercises", mcp.Required(), mcp.Description(exercisesFormat)),
				mcp.WithNumber("folder_id", mcp.Description("Optional folder ID to move the routine to")),
				mcp.WithString("notes", mcp.Description("Optional updated notes")),
			),
			Handler: (&UpdateRoutineHandler{Service: client}).ToolAdapter,
		},
		{
			Tool: mcp.NewTool("get_exercise_templates",
				mcp.WithDescription("Fetch available exercise templates from Hevy's library. Use the returned template IDs when creating workouts or routines."),
				mcp.WithNumber("page", mcp.Description("Page number (default: 1)")),
				mcp.WithNumber("page_size", mcp.Description("Number of templates per page (default: 20, max 100)")),
			),
			Handler: (&GetExerciseTemplatesHandler{Service: client}).ToolAdapter,
		},
		{
			Tool: mcp.NewTool("get_exercise_template",
				mcp.WithDescription("Get details about a specific exercise template by its ID, including muscles targeted and equipment."),
				mcp.WithString("template_id", mcp.Required(), mcp.Description("The unique identifier of the exercise template")),
			),
			Handler: (&GetExerciseTemplateHandler{Service: client}).ToolAdapter,
		},
		{
			Tool: mcp.NewTool("get_routine_folders",
				mcp.WithDescription("Fetch all routine folders used to organize your workout routines."),
				mcp.WithNumber("page", mcp.Description("Page number (default: 1)")),
				mcp.WithNumber("page_size", mcp.Description("Number of folders per page (default: 10)")),
			),
			Handler: (&GetRoutineFoldersHandler{Service: client}).ToolAdapter,
		},
		{
			Tool: mcp.NewTool("get_routine_folder",
				mcp.WithDescription("Get a specific routine folder by its ID."),
				mcp.WithNumber("folder_id", mcp.Required(), mcp.Description("The unique identifier of the folder")),
			),
			Handler: (&GetRoutineFolderHandler{Service: client}).ToolAdapter,
		},
		{
			Tool: mcp.NewTool("create_routine_folder",
				mcp.WithDescription("Create a new folder to organize your workout routines."),
				mcp.WithString("title", mcp.Required(), mcp.Description("Name of the folder (e.g., 'Push Pull Legs', 'Strength Program')")),
			),
			Handler: (&CreateRoutineFolderHandler{Service: client}).ToolAdapter,
		},
		{
			Tool: mcp.NewTool("update_routine_folder",
				mcp.WithDescription("Update the name of an existing routine folder."),
				mcp.WithNumber("folder_id", mcp.Required(), mcp.Description("The unique identifier of the folder to update")),
				mcp.WithString("title", mcp.Required(), mcp.Description("New name for the folder")),
			),
			Handler: (&UpdateRoutineFolderHandler{Service: client}).ToolAdapter,
		},
		{
			Tool: mcp.NewTool("delete_routine_folder",
				mcp.WithDescription("Delete a routine folder. This may also affect routines in the folder."),
				mcp.WithNumber("folder_id", mcp.Required(), mcp.Description("The unique identifier of the folder to delete")),
			),
			Handler: (&DeleteRoutineFolderHandler{Service: client}).ToolAdapter,
		},
		{
			Tool: mcp.NewTool("analyze_recent_workouts",
				mcp.WithDescription("Analyze recent workouts by fetching the latest data and computing summary stats: total volume, frequency, and exercises performed in the last N days."),
				mcp.WithNumber("days", mcp.Description("Number of days to analyze (default: 7)")),
			),
			Handler: (&AnalyzeRecentWorkoutsHandler{Service: client}).ToolAdapter,
		},
	}
}

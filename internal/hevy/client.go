package hevy

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/ixiliae/mcp-fitness-stack/internal/httpapi"
)

// Client wraps the Hevy v1 REST API. Every operation is a synchronous
// pass-through: raw JSON in, raw JSON out, upstream failures propagated
// unchanged as *httpapi.Error.
type Client struct {
	api *httpapi.Client
}

// NewClient builds a Hevy client authenticated with the given API key.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		api: httpapi.New(baseURL, map[string]string{"api-key": apiKey}, nil),
	}
}

func pageQuery(page, pageSize int) url.Values {
	return url.Values{
		"page":     {strconv.Itoa(page)},
		"pageSize": {strconv.Itoa(pageSize)},
	}
}

// ListWorkouts fetches one page of the training log.
func (c *Client) ListWorkouts(ctx context.Context, page, pageSize int) (json.RawMessage, error) {
	return c.api.Get(ctx, "/workouts", pageQuery(page, pageSize))
}

// WorkoutCount returns the total number of logged workouts.
func (c *Client) WorkoutCount(ctx context.Context) (json.RawMessage, error) {
	return c.api.Get(ctx, "/workouts/count", nil)
}

// GetWorkout fetches a single workout with all exercises and sets.
func (c *Client) GetWorkout(ctx context.Context, workoutID string) (json.RawMessage, error) {
	return c.api.Get(ctx, "/workouts/"+url.PathEscape(workoutID), nil)
}

// CreateWorkout logs a new workout session.
func (c *Client) CreateWorkout(ctx context.Context, params WorkoutParams) (json.RawMessage, error) {
	return c.api.Post(ctx, "/workouts", map[string]any{"workout": params})
}

// UpdateWorkout replaces an existing workout.
func (c *Client) UpdateWorkout(ctx context.Context, workoutID string, params WorkoutParams) (json.RawMessage, error) {
	return c.api.Put(ctx, "/workouts/"+url.PathEscape(workoutID), map[string]any{"workout": params})
}

// ListRoutines fetches one page of saved routines.
func (c *Client) ListRoutines(ctx context.Context, page, pageSize int) (json.RawMessage, error) {
	return c.api.Get(ctx, "/routines", pageQuery(page, pageSize))
}

// GetRoutine fetches a single routine.
func (c *Client) GetRoutine(ctx context.Context, routineID string) (json.RawMessage, error) {
	return c.api.Get(ctx, "/routines/"+url.PathEscape(routineID), nil)
}

// CreateRoutine saves a new routine.
func (c *Client) CreateRoutine(ctx context.Context, params RoutineParams) (json.RawMessage, error) {
	return c.api.Post(ctx, "/routines", map[string]any{"routine": params})
}

// UpdateRoutine replaces an existing routine.
func (c *Client) UpdateRoutine(ctx context.Context, routineID string, params RoutineParams) (json.RawMessage, error) {
	return c.api.Put(ctx, "/routines/"+url.PathEscape(routineID), map[string]any{"routine": params})
}

// ListExerciseTemplates fetches one page of the exercise library.
func (c *Client) ListExerciseTemplates(ctx context.Context, page, pageSize int) (json.RawMessage, error) {
	return c.api.Get(ctx, "/exercise_templates", pageQuery(page, pageSize))
}

// GetExerciseTemplate fetches a single exercise template.
func (c *Client) GetExerciseTemplate(ctx context.Context, templateID string) (json.RawMessage, error) {
	return c.api.Get(ctx, "/exercise_templates/"+url.PathEscape(templateID), nil)
}

// ListRoutineFolders fetches one page of routine folders.
func (c *Client) ListRoutineFolders(ctx context.Context, page, pageSize int) (json.RawMessage, error) {
	return c.api.Get(ctx, "/routine_folders", pageQuery(page, pageSize))
}

// GetRoutineFolder fetches a single routine folder.
func (c *Client) GetRoutineFolder(ctx context.Context, folderID int) (json.RawMessage, error) {
	return c.api.Get(ctx, "/routine_folders/"+strconv.Itoa(folderID), nil)
}

// CreateRoutineFolder creates a folder for organizing routines.
func (c *Client) CreateRoutineFolder(ctx context.Context, title string) (json.RawMessage, error) {
	return c.api.Post(ctx, "/routine_folders", map[string]any{"routine_folder": map[string]string{"title": title}})
}

// UpdateRoutineFolder renames an existing folder.
func (c *Client) UpdateRoutineFolder(ctx context.Context, folderID int, title string) (json.RawMessage, error) {
	return c.api.Put(ctx, "/routine_folders/"+strconv.Itoa(folderID), map[string]any{"routine_folder": map[string]string{"title": title}})
}

// DeleteRoutineFolder deletes a folder. An empty upstream response yields the
// canonical success marker.
func (c *Client) DeleteRoutineFolder(ctx context.Context, folderID int) (json.RawMessage, error) {
	return c.api.Delete(ctx, "/routine_folders/"+strconv.Itoa(folderID))
}

// fetchWorkoutPage decodes one page of workouts for the aggregator.
func (c *Client) fetchWorkoutPage(ctx context.Context, page, pageSize int) ([]Workout, error) {
	raw, err := c.ListWorkouts(ctx, page, pageSize)
	if err != nil {
		return nil, err
	}
	var decoded workoutPage
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("decode workout page %d: %w", page, err)
	}
	return decoded.Workouts, nil
}

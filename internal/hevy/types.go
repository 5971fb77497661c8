package hevy

// Set is a single logged set. Weight and reps are pointers because the API
// reports bodyweight or duration-based sets with null values; a nil field
// contributes nothing to volume.
type Set struct {
	WeightKg *float64 `json:"weight_kg"`
	Reps     *int     `json:"reps"`
}

// Exercise is one exercise entry within a workout, in logged order.
type Exercise struct {
	Title string `json:"title"`
	Sets  []Set  `json:"sets"`
}

// Workout is the aggregator's view of a logged workout. Records are immutable
// once decoded; unknown upstream fields are ignored.
type Workout struct {
	Title     string     `json:"title"`
	StartTime string     `json:"start_time"`
	Exercises []Exercise `json:"exercises"`
}

type workoutPage struct {
	Workouts []Workout `json:"workouts"`
}

// WorkoutParams mirrors the Hevy workout payload. Exercises is the raw JSON
// array supplied by the caller and is forwarded verbatim.
type WorkoutParams struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Exercises   any    `json:"exercises"`
}

// RoutineParams mirrors the Hevy routine payload.
type RoutineParams struct {
	Title     string `json:"title"`
	Notes     string `json:"notes"`
	Exercises any    `json:"exercises"`
	FolderID  *int   `json:"folder_id,omitempty"`
}

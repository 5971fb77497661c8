package hevy

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

const workoutFixture = `{
  "id": "abc-123",
  "title": "Push Day",
  "start_time": "2024-06-14T09:00:00Z",
  "end_time": "2024-06-14T10:15:00Z",
  "exercises": [
    {
      "title": "Bench Press",
      "exercise_template_id": "tmpl-1",
      "superset_id": null,
      "sets": [
        {"type": "normal", "weight_kg": 80, "reps": 10, "rpe": 8.5},
        {"type": "normal", "weight_kg": null, "reps": null, "duration_seconds": 60}
      ]
    }
  ]
}`

func TestGetWorkoutPassThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/workouts/abc-123" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(workoutFixture))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "key")
	raw, err := client.GetWorkout(context.Background(), "abc-123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Round-trip: the tool output must deserialize to a structurally
	// identical object, with no field loss.
	var upstream, returned map[string]any
	if err := json.Unmarshal([]byte(workoutFixture), &upstream); err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	if err := json.Unmarshal(raw, &returned); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !reflect.DeepEqual(upstream, returned) {
		t.Fatalf("pass-through altered the payload:\n%v\n%v", upstream, returned)
	}
}

func TestFetchWorkoutPageDecodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("api-key"); got != "key" {
			t.Fatalf("missing api-key header, got %q", got)
		}
		if r.URL.Query().Get("page") != "2" || r.URL.Query().Get("pageSize") != "10" {
			t.Fatalf("unexpected query %s", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`{"page": 2, "page_count": 3, "workouts": [` + workoutFixture + `]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "key")
	workouts, err := client.fetchWorkoutPage(context.Background(), 2, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(workouts) != 1 {
		t.Fatalf("expected 1 workout, got %d", len(workouts))
	}
	w := workouts[0]
	if w.Title != "Push Day" || w.StartTime != "2024-06-14T09:00:00Z" {
		t.Fatalf("unexpected workout %+v", w)
	}
	if len(w.Exercises) != 1 || len(w.Exercises[0].Sets) != 2 {
		t.Fatalf("unexpected exercise decoding %+v", w.Exercises)
	}
	first, second := w.Exercises[0].Sets[0], w.Exercises[0].Sets[1]
	if first.WeightKg == nil || *first.WeightKg != 80 || first.Reps == nil || *first.Reps != 10 {
		t.Fatalf("unexpected first set %+v", first)
	}
	if second.WeightKg != nil || second.Reps != nil {
		t.Fatalf("null weight/reps must decode to nil, got %+v", second)
	}
}

func TestCreateWorkoutWrapsPayload(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&body)
		_, _ = w.Write([]byte(`{"id": "new"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "key")
	_, err := client.CreateWorkout(context.Background(), WorkoutParams{
		Title:     "Leg Day",
		StartTime: "2024-06-14T09:00:00Z",
		EndTime:   "2024-06-14T10:00:00Z",
		Exercises: []any{},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	workout, ok := body["workout"].(map[string]any)
	if !ok {
		t.Fatalf("payload must be wrapped in a workout object: %v", body)
	}
	if workout["title"] != "Leg Day" {
		t.Fatalf("unexpected payload %v", workout)
	}
}

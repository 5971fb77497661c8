package strava

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

const activityFixture = `{
  "id": 987654,
  "name": "Morning Ride",
  "sport_type": "Ride",
  "start_date_local": "2024-06-14T07:02:13Z",
  "distance": 40250.0,
  "moving_time": 5400,
  "elapsed_time": 5700,
  "total_elevation_gain": 412.3,
  "average_speed": 7.45,
  "max_speed": 14.2,
  "average_heartrate": 148.2,
  "max_heartrate": 176,
  "average_watts": 210.5,
  "average_cadence": 87.1,
  "kudos_count": 12,
  "suffer_score": 55,
  "description": "Easy spin",
  "calories": 980.4
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "token"), srv
}

func TestSummarizeActivityThinning(t *testing.T) {
	got := summarizeActivity(gjson.Parse(activityFixture))

	assert.Equal(t, "Morning Ride", got["name"])
	assert.Equal(t, "Ride", got["type"])
	assert.Equal(t, "2024-06-14T07:02:13Z", got["date"])
	assert.Equal(t, 40.25, got["distance_km"])
	assert.Equal(t, int64(90), got["duration_min"])
	assert.Equal(t, int64(412), got["elevation_gain_m"])
	assert.Equal(t, 148.2, got["avg_hr"])
}

func TestSummarizeActivityAbsentFieldsAreNil(t *testing.T) {
	got := summarizeActivity(gjson.Parse(`{"id": 1, "name": "Walk", "sport_type": "Walk", "distance": 0}`))

	assert.Nil(t, got["distance_km"], "zero distance thins out like the original")
	assert.Nil(t, got["avg_watts"])
	assert.Nil(t, got["calories"])
}

func TestListActivitiesSendsBearerToken(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))
		assert.Equal(t, "/athlete/activities", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("per_page"))
		_, _ = w.Write([]byte("[" + activityFixture + "]"))
	})

	activities, err := client.ListActivities(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, "Morning Ride", activities[0]["name"])
}

func TestActivityDetailIncludesLaps(t *testing.T) {
	fixture := activityFixture[:len(activityFixture)-1] + `,
  "laps": [
    {"distance": 10000, "moving_time": 1500, "average_heartrate": 150, "average_watts": 220},
    {"distance": 10000, "moving_time": 1440, "average_heartrate": 155, "average_watts": 231}
  ]
}`
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/activities/987654", r.URL.Path)
		_, _ = w.Write([]byte(fixture))
	})

	detail, err := client.ActivityDetail(context.Background(), 987654)
	require.NoError(t, err)

	assert.Equal(t, int64(90), detail["moving_time_min"])
	assert.Equal(t, int64(95), detail["elapsed_time_min"])
	assert.Equal(t, 26.82, detail["avg_speed_kmh"])
	assert.Equal(t, "Easy spin", detail["description"])
	assert.NotContains(t, detail, "duration_min")

	laps, ok := detail["laps"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, laps, 2)
	assert.Equal(t, 1, laps[0]["lap"])
	assert.Equal(t, 10.0, laps[0]["distance_km"])
	assert.Equal(t, int64(25), laps[0]["duration_min"])
}

func TestAthleteStatsTotals(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/athlete":
			_, _ = w.Write([]byte(`{"id": 42}`))
		case "/athletes/42/stats":
			_, _ = w.Write([]byte(`{
			  "recent_run_totals": {"count": 3, "distance": 25000, "moving_time": 9000, "elevation_gain": 310}
			}`))
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	})

	stats, err := client.AthleteStats(context.Background())
	require.NoError(t, err)

	recentRun, ok := stats["recent_run"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 25.0, recentRun["distance_km"])
	assert.Equal(t, 2.5, recentRun["moving_time_h"])
	assert.Equal(t, int64(310), recentRun["elevation_gain_m"])
	assert.Nil(t, stats["ytd_swim"], "absent totals stay nil")
}

func TestActivityStreamsKeyedByType(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/activities/7/streams", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("key_by_type"))
		assert.Equal(t, "medium", r.URL.Query().Get("resolution"))
		assert.Equal(t, "heartrate,watts", r.URL.Query().Get("keys"))
		_, _ = w.Write([]byte(`{
		  "heartrate": {"data": [120, 125, 130], "resolution": "medium"},
		  "watts": {"data": [200, 210, 190], "resolution": "medium"}
		}`))
	})

	streams, err := client.ActivityStreams(context.Background(), 7, []string{"heartrate", "watts"})
	require.NoError(t, err)
	assert.Equal(t, []any{120.0, 125.0, 130.0}, streams["heartrate"])
	assert.Equal(t, []any{200.0, 210.0, 190.0}, streams["watts"])
}

func TestActivityStreamsDefaultTypes(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "heartrate,velocity_smooth,cadence,altitude,watts", r.URL.Query().Get("keys"))
		_, _ = w.Write([]byte(`{}`))
	})

	_, err := client.ActivityStreams(context.Background(), 7, nil)
	require.NoError(t, err)
}

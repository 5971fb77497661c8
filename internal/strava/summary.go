package strava

import (
	"context"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// DefaultStreamTypes are the time-series streams fetched when the caller does
// not name any.
var DefaultStreamTypes = []string{"heartrate", "velocity_smooth", "cadence", "altitude", "watts"}

// ListActivities returns thinned summaries of the athlete's most recent
// activities, newest first.
func (c *Client) ListActivities(ctx context.Context, limit int) ([]map[string]any, error) {
	raw, err := c.api.Get(ctx, "/athlete/activities", url.Values{"per_page": {strconv.Itoa(limit)}})
	if err != nil {
		return nil, err
	}
	summaries := []map[string]any{}
	gjson.ParseBytes(raw).ForEach(func(_, a gjson.Result) bool {
		summaries = append(summaries, summarizeActivity(a))
		return true
	})
	return summaries, nil
}

// ActivityDetail returns a thinned detail view of one activity, including
// per-lap splits when the activity has laps.
func (c *Client) ActivityDetail(ctx context.Context, activityID int64) (map[string]any, error) {
	raw, err := c.api.Get(ctx, "/activities/"+strconv.FormatInt(activityID, 10), nil)
	if err != nil {
		return nil, err
	}
	a := gjson.ParseBytes(raw)

	detail := summarizeActivity(a)
	delete(detail, "duration_min")
	detail["moving_time_min"] = scaled(a, "moving_time", 1.0/60, 0)
	detail["elapsed_time_min"] = scaled(a, "elapsed_time", 1.0/60, 0)
	detail["avg_speed_kmh"] = scaled(a, "average_speed", 3.6, 2)
	detail["max_speed_kmh"] = scaled(a, "max_speed", 3.6, 2)
	detail["max_watts"] = value(a, "max_watts")
	detail["description"] = value(a, "description")
	detail["kudos"] = value(a, "kudos_count")
	detail["suffer_score"] = value(a, "suffer_score")

	if laps := a.Get("laps"); laps.IsArray() && len(laps.Array()) > 0 {
		lines := []map[string]any{}
		laps.ForEach(func(_, lap gjson.Result) bool {
			lines = append(lines, map[string]any{
				"lap":          len(lines) + 1,
				"distance_km":  scaled(lap, "distance", 0.001, 2),
				"duration_min": scaled(lap, "moving_time", 1.0/60, 0),
				"avg_hr":       value(lap, "average_heartrate"),
				"avg_watts":    value(lap, "average_watts"),
			})
			return true
		})
		detail["laps"] = lines
	}
	return detail, nil
}

// AthleteStats returns the athlete's cumulative totals: recent, year-to-date
// and all-time, per sport.
func (c *Client) AthleteStats(ctx context.Context) (map[string]any, error) {
	rawAthlete, err := c.api.Get(ctx, "/athlete", nil)
	if err != nil {
		return nil, err
	}
	athleteID := gjson.GetBytes(rawAthlete, "id").Int()

	raw, err := c.api.Get(ctx, "/athletes/"+strconv.FormatInt(athleteID, 10)+"/stats", nil)
	if err != nil {
		return nil, err
	}
	stats := gjson.ParseBytes(raw)

	result := map[string]any{}
	for key, path := range map[string]string{
		"recent_run":  "recent_run_totals",
		"recent_ride": "recent_ride_totals",
		"recent_swim": "recent_swim_totals",
		"ytd_run":     "ytd_run_totals",
		"ytd_ride":    "ytd_ride_totals",
		"ytd_swim":    "ytd_swim_totals",
		"all_run":     "all_run_totals",
		"all_ride":    "all_ride_totals",
		"all_swim":    "all_swim_totals",
	} {
		result[key] = summarizeTotals(stats.Get(path))
	}
	return result, nil
}

// ActivityStreams returns the requested time-series streams keyed by type, at
// medium resolution.
func (c *Client) ActivityStreams(ctx context.Context, activityID int64, types []string) (map[string]any, error) {
	if len(types) == 0 {
		types = DefaultStreamTypes
	}
	query := url.Values{
		"keys":        {strings.Join(types, ",")},
		"key_by_type": {"true"},
		"resolution":  {"medium"},
	}
	raw, err := c.api.Get(ctx, "/activities/"+strconv.FormatInt(activityID, 10)+"/streams", query)
	if err != nil {
		return nil, err
	}
	result := map[string]any{}
	gjson.ParseBytes(raw).ForEach(func(key, stream gjson.Result) bool {
		result[key.String()] = stream.Get("data").Value()
		return true
	})
	return result, nil
}

func summarizeActivity(a gjson.Result) map[string]any {
	return map[string]any{
		"id":               value(a, "id"),
		"name":             value(a, "name"),
		"type":             value(a, "sport_type"),
		"date":             value(a, "start_date_local"),
		"distance_km":      scaled(a, "distance", 0.001, 2),
		"duration_min":     scaled(a, "moving_time", 1.0/60, 0),
		"elevation_gain_m": scaled(a, "total_elevation_gain", 1, 0),
		"avg_hr":           value(a, "average_heartrate"),
		"max_hr":           value(a, "max_heartrate"),
		"avg_watts":        value(a, "average_watts"),
		"avg_cadence":      value(a, "average_cadence"),
		"calories":         value(a, "calories"),
	}
}

func summarizeTotals(t gjson.Result) any {
	if !t.Exists() {
		return nil
	}
	return map[string]any{
		"count":            value(t, "count"),
		"distance_km":      scaled(t, "distance", 0.001, 1),
		"moving_time_h":    scaled(t, "moving_time", 1.0/3600, 1),
		"elevation_gain_m": scaled(t, "elevation_gain", 1, 0),
	}
}

// value returns the raw field, or nil when absent or null.
func value(g gjson.Result, path string) any {
	v := g.Get(path)
	if !v.Exists() || v.Type == gjson.Null {
		return nil
	}
	return v.Value()
}

// scaled converts a numeric field by a factor and rounds to the given number
// of decimals; absent or zero values thin out to nil.
func scaled(g gjson.Result, path string, factor float64, decimals int) any {
	v := g.Get(path)
	if !v.Exists() || v.Type == gjson.Null || v.Float() == 0 {
		return nil
	}
	shift := math.Pow(10, float64(decimals))
	rounded := math.Round(v.Float()*factor*shift) / shift
	if decimals == 0 {
		return int64(rounded)
	}
	return rounded
}

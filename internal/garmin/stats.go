package garmin

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/tidwall/gjson"
)

// dailyMetrics lists the wellness endpoints fetched per day, in render order.
// A metric whose fetch fails is simply omitted for that day; Garmin reports
// many of these sparsely depending on device model.
var dailyMetrics = []struct {
	key  string
	path func(date string) string
}{
	{"stats", func(d string) string { return "/usersummary-service/usersummary/daily?calendarDate=" + d }},
	{"hrv", func(d string) string { return "/hrv-service/hrv/" + d }},
	{"body_battery", func(d string) string {
		return "/wellness-service/wellness/bodyBattery/reports/daily?startDate=" + d + "&endDate=" + d
	}},
	{"sleep", func(d string) string { return "/wellness-service/wellness/dailySleepData?date=" + d }},
	{"stress", func(d string) string { return "/wellness-service/wellness/dailyStress/" + d }},
	{"training_readiness", func(d string) string { return "/metrics-service/metrics/trainingreadiness/" + d }},
	{"training_load", func(d string) string { return "/metrics-service/metrics/trainingload/" + d }},
}

// DailyStats fetches the last N days of wellness data, today first. Each day
// carries whichever metrics could be fetched; per-metric failures are skipped
// rather than failing the whole report.
func (c *Client) DailyStats(ctx context.Context, days int) ([]map[string]any, error) {
	api, err := c.session()
	if err != nil {
		return nil, err
	}

	report := make([]map[string]any, 0, days)
	for i := 0; i < days; i++ {
		date := time.Now().UTC().AddDate(0, 0, -i).Format("2006-01-02")
		day := map[string]any{"date": date}
		for _, metric := range dailyMetrics {
			raw, err := api.Get(ctx, metric.path(date), nil)
			if err != nil {
				continue
			}
			day[metric.key] = json.RawMessage(raw)
		}
		report = append(report, day)
	}
	return report, nil
}

// TrainingLoad renders a short combined view of today's training load and
// readiness.
func (c *Client) TrainingLoad(ctx context.Context) (string, error) {
	api, err := c.session()
	if err != nil {
		return "", err
	}

	date := time.Now().UTC().Format("2006-01-02")
	line := fmt.Sprintf("Training load — %s", date)

	if raw, err := api.Get(ctx, "/metrics-service/metrics/trainingload/"+date, nil); err == nil {
		if load := gjson.GetBytes(raw, "dailyTrainingLoadAcute"); load.Exists() {
			line += fmt.Sprintf("\nAcute load: %s", load.String())
		}
		if chronic := gjson.GetBytes(raw, "dailyTrainingLoadChronic"); chronic.Exists() {
			line += fmt.Sprintf("\nChronic load: %s", chronic.String())
		}
	}
	if raw, err := api.Get(ctx, "/metrics-service/metrics/trainingreadiness/"+date, nil); err == nil {
		if score := gjson.GetBytes(raw, "0.score"); score.Exists() {
			line += fmt.Sprintf("\nReadiness score: %s", score.String())
		}
	}
	return line, nil
}

package hevy

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	analyzePageSize = 10
	analyzeMaxPages = 5
)

// workoutSource abstracts paginated access to the training log so the
// aggregation can be exercised without a live API.
type workoutSource interface {
	fetchWorkoutPage(ctx context.Context, page, pageSize int) ([]Workout, error)
}

// AnalyzeRecent fetches recent workouts and renders a training summary for
// the last N days.
func (c *Client) AnalyzeRecent(ctx context.Context, days int) (string, error) {
	return analyzeRecent(ctx, c, days, time.Now().UTC())
}

// analyzeRecent scans the training log newest-first in pages of ten, keeping
// records whose start time falls inside the lookback window. The scan is
// bounded at five pages: fifty records is a deliberate cost guard, not a full
// pagination walk, so heavy loggers may be under-counted. The log is assumed
// newest-first; the first record strictly older than the cutoff ends the
// whole scan, including all later pages.
func analyzeRecent(ctx context.Context, src workoutSource, days int, now time.Time) (string, error) {
	cutoff := now.Add(-time.Duration(days) * 24 * time.Hour)

	var kept []Workout
	stop := false
	for page := 1; page <= analyzeMaxPages && !stop; page++ {
		workouts, err := src.fetchWorkoutPage(ctx, page, analyzePageSize)
		if err != nil {
			return "", err
		}
		if len(workouts) == 0 {
			break
		}
		for _, w := range workouts {
			started, ok := parseStartTime(w.StartTime)
			if !ok {
				// Malformed timestamp: skip this record, keep scanning.
				continue
			}
			if started.Before(cutoff) {
				stop = true
				break
			}
			kept = append(kept, w)
		}
	}

	if len(kept) == 0 {
		return fmt.Sprintf("No workouts found in the last %d days.", days), nil
	}
	return render(days, summarize(kept)), nil
}

// parseStartTime parses an ISO-8601 timestamp. A trailing Z is the RFC 3339
// spelling of +00:00, which time.Parse already accepts; anything it rejects
// (including offset-less timestamps) is reported as unparseable.
func parseStartTime(value string) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

type workoutLine struct {
	date          string
	title         string
	exerciseCount int
}

type exerciseCount struct {
	title string
	count int
}

// summary holds the aggregation totals. Workout lines preserve the
// newest-first fetch order; exercise counts preserve first-seen order until
// rendering sorts them by descending count.
type summary struct {
	totalWorkouts int
	totalSets     int
	totalVolumeKg float64
	workouts      []workoutLine
	exercises     []exerciseCount
}

func summarize(kept []Workout) summary {
	s := summary{totalWorkouts: len(kept)}
	index := map[string]int{}

	for _, w := range kept {
		title := w.Title
		if title == "" {
			title = "Untitled"
		}
		date := w.StartTime
		if len(date) > 10 {
			date = date[:10]
		}
		s.workouts = append(s.workouts, workoutLine{date: date, title: title, exerciseCount: len(w.Exercises)})

		for _, ex := range w.Exercises {
			exTitle := ex.Title
			if exTitle == "" {
				exTitle = "Unknown"
			}
			i, seen := index[exTitle]
			if !seen {
				index[exTitle] = len(s.exercises)
				i = len(s.exercises)
				s.exercises = append(s.exercises, exerciseCount{title: exTitle})
			}
			s.exercises[i].count++

			for _, set := range ex.Sets {
				s.totalSets++
				if set.WeightKg != nil && set.Reps != nil {
					s.totalVolumeKg += *set.WeightKg * float64(*set.Reps)
				}
			}
		}
	}
	return s
}

var volumePrinter = message.NewPrinter(language.English)

func render(days int, s summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📊 **Training Summary — Last %d days**\n\n", days)
	fmt.Fprintf(&b, "Total workouts: %d\n", s.totalWorkouts)
	fmt.Fprintf(&b, "Total sets: %d\n", s.totalSets)
	volumePrinter.Fprintf(&b, "Total volume: %.1f kg\n", s.totalVolumeKg)
	b.WriteString("\n**Workouts:**\n")
	for _, w := range s.workouts {
		fmt.Fprintf(&b, "  • %s — %s (%d exercises)\n", w.date, w.title, w.exerciseCount)
	}

	if len(s.exercises) > 0 {
		// Stable sort keeps first-seen order among equal counts.
		ranked := make([]exerciseCount, len(s.exercises))
		copy(ranked, s.exercises)
		sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].count > ranked[j].count })
		if len(ranked) > 10 {
			ranked = ranked[:10]
		}
		b.WriteString("\n**Most frequent exercises:**\n")
		for _, ex := range ranked {
			fmt.Fprintf(&b, "  • %s: %dx\n", ex.title, ex.count)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

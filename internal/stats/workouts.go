package stats

import (
	"fmt"
	"sort"
	"time"

	"github.com/2beens/gymprogress/internal/records"
)

type WorkoutProgressPoint struct {
	Date        string  `json:"date"`
	TotalWeight float64 `json:"totalWeight"`
}

type WorkoutVolumeStatistics struct {
	WorkoutName         string                 `json:"workoutName"`
	Progress            []WorkoutProgressPoint `json:"progress"`
	TotalSessions       int                    `json:"totalSessions"`
	TotalVolume         float64                `json:"totalVolume"`
	AvgVolumePerSession float64                `json:"avgVolumePerSession"`
	FirstSessionDate    time.Time              `json:"firstSessionDate"`
	LastSessionDate     time.Time              `json:"lastSessionDate"`
}

// AggregateByWorkoutLabel groups pre-aggregated daily workout totals by
// workout label, using UTC day keys in the progress series. Days with
// zero logged weight are not sessions and get dropped up front.
func AggregateByWorkoutLabel(workoutStats []records.WorkoutStat) ([]WorkoutVolumeStatistics, error) {
	return AggregateByWorkoutLabelIn(workoutStats, time.UTC)
}

// AggregateByWorkoutLabelIn is AggregateByWorkoutLabel with an explicit
// day bucketing time zone. Nil falls back to UTC.
func AggregateByWorkoutLabelIn(workoutStats []records.WorkoutStat, loc *time.Location) ([]WorkoutVolumeStatistics, error) {
	groups := make(map[string][]records.WorkoutStat)
	for _, ws := range workoutStats {
		if ws.TotalWeight <= 0 {
			continue
		}
		if ws.Date.IsZero() {
			return nil, fmt.Errorf("workout %q: %w", ws.WorkoutName, records.ErrInvalidDate)
		}
		groups[ws.WorkoutName] = append(groups[ws.WorkoutName], ws)
	}

	result := make([]WorkoutVolumeStatistics, 0, len(groups))
	for name, group := range groups {
		stats, err := workoutVolumeStatistics(name, group, loc)
		if err != nil {
			return nil, err
		}
		result = append(result, *stats)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].WorkoutName < result[j].WorkoutName
	})
	return result, nil
}

func workoutVolumeStatistics(name string, group []records.WorkoutStat, loc *time.Location) (*WorkoutVolumeStatistics, error) {
	// groups are built from existing entries only, so an empty one is a bug
	if len(group) == 0 {
		return nil, fmt.Errorf("%w: empty group for workout %q", ErrInvariantViolation, name)
	}

	sort.SliceStable(group, func(i, j int) bool {
		return group[i].Date.Before(group[j].Date)
	})

	progress := make([]WorkoutProgressPoint, 0, len(group))
	var totalVolume float64
	for _, ws := range group {
		progress = append(progress, WorkoutProgressPoint{
			Date:        records.DayKeyIn(ws.Date, loc),
			TotalWeight: ws.TotalWeight,
		})
		totalVolume += ws.TotalWeight
	}

	return &WorkoutVolumeStatistics{
		WorkoutName:         name,
		Progress:            progress,
		TotalSessions:       len(group),
		TotalVolume:         totalVolume,
		AvgVolumePerSession: totalVolume / float64(len(group)),
		FirstSessionDate:    group[0].Date,
		LastSessionDate:     group[len(group)-1].Date,
	}, nil
}

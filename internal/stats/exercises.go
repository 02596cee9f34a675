package stats

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/2beens/gymprogress/internal/records"
)

// ErrInvariantViolation signals a state the grouping logic must never
// produce, like a group with zero members. Better to fail loudly than
// to hand NaN averages to the UI.
var ErrInvariantViolation = errors.New("invariant violation")

// ExerciseProgressPoint is one day bucket in a per-exercise series.
// Date is the lexically sortable day key (YYYY-MM-DD).
type ExerciseProgressPoint struct {
	Date        string  `json:"date"`
	TotalWeight float64 `json:"totalWeight"`
	RecordCount int     `json:"recordCount"`
}

type ExerciseStatistics struct {
	ExerciseID      int                     `json:"exerciseId"`
	ExerciseName    string                  `json:"exerciseName"`
	Progress        []ExerciseProgressPoint `json:"progress"`
	TotalRecords    int                     `json:"totalRecords"`
	FirstRecordDate time.Time               `json:"firstRecordDate"`
	LastRecordDate  time.Time               `json:"lastRecordDate"`
}

// datedRecord pairs a record with its resolved effective date, so the
// date fallback logic runs exactly once per record.
type datedRecord struct {
	rec  records.Record
	date time.Time
}

func resolveDates(recs []records.Record) ([]datedRecord, error) {
	dated := make([]datedRecord, 0, len(recs))
	for _, r := range recs {
		d, err := records.EffectiveDate(r)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", r.ID, err)
		}
		dated = append(dated, datedRecord{rec: r, date: d})
	}
	sort.SliceStable(dated, func(i, j int) bool {
		return dated[i].date.Before(dated[j].date)
	})
	return dated, nil
}

// AggregateByExercise groups records by exercise and builds an ascending
// day-bucketed progress series per exercise, using UTC day bucketing.
// Empty input yields an empty slice, not an error.
func AggregateByExercise(recs []records.Record) ([]ExerciseStatistics, error) {
	return AggregateByExerciseIn(recs, time.UTC)
}

// AggregateByExerciseIn is AggregateByExercise with an explicit day
// bucketing time zone. Nil falls back to UTC.
func AggregateByExerciseIn(recs []records.Record, loc *time.Location) ([]ExerciseStatistics, error) {
	groups := make(map[int][]records.Record)
	for _, r := range recs {
		groups[r.ExerciseID] = append(groups[r.ExerciseID], r)
	}

	result := make([]ExerciseStatistics, 0, len(groups))
	for exerciseID, group := range groups {
		exStats, err := exerciseStatistics(exerciseID, group, loc)
		if err != nil {
			return nil, err
		}
		result = append(result, *exStats)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].ExerciseName != result[j].ExerciseName {
			return result[i].ExerciseName < result[j].ExerciseName
		}
		// two exercises can share a display name, keep the order stable
		return result[i].ExerciseID < result[j].ExerciseID
	})
	return result, nil
}

func exerciseStatistics(exerciseID int, group []records.Record, loc *time.Location) (*ExerciseStatistics, error) {
	if len(group) == 0 {
		return nil, fmt.Errorf("%w: empty group for exercise %d", ErrInvariantViolation, exerciseID)
	}

	dated, err := resolveDates(group)
	if err != nil {
		return nil, err
	}

	buckets := make(map[string]*ExerciseProgressPoint)
	for _, dr := range dated {
		key := records.DayKeyIn(dr.date, loc)
		b, ok := buckets[key]
		if !ok {
			b = &ExerciseProgressPoint{Date: key}
			buckets[key] = b
		}
		b.TotalWeight += dr.rec.AdjustedVolume()
		b.RecordCount++
	}

	progress := make([]ExerciseProgressPoint, 0, len(buckets))
	for _, b := range buckets {
		progress = append(progress, *b)
	}
	sort.Slice(progress, func(i, j int) bool {
		return progress[i].Date < progress[j].Date
	})

	return &ExerciseStatistics{
		ExerciseID: exerciseID,
		// all group members share the exercise id, so any snapshot
		// carries the right name
		ExerciseName:    dated[0].rec.Exercise.Name,
		Progress:        progress,
		TotalRecords:    len(dated),
		FirstRecordDate: dated[0].date,
		LastRecordDate:  dated[len(dated)-1].date,
	}, nil
}

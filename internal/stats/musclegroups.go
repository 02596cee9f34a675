package stats

import (
	"sort"
	"strings"
	"time"

	"github.com/2beens/gymprogress/internal/records"
)

// MuscleGroupProgressPoint is one day bucket in a per-muscle-group
// series. ExerciseCount is the running number of distinct exercises
// seen in the group up to and including that date, not a per-day count.
type MuscleGroupProgressPoint struct {
	Date          string  `json:"date"`
	TotalWeight   float64 `json:"totalWeight"`
	RecordCount   int     `json:"recordCount"`
	ExerciseCount int     `json:"exerciseCount"`
}

type MuscleGroupStatistics struct {
	MuscleGroup     string                     `json:"muscleGroup"`
	Progress        []MuscleGroupProgressPoint `json:"progress"`
	TotalRecords    int                        `json:"totalRecords"`
	FirstRecordDate time.Time                  `json:"firstRecordDate"`
	LastRecordDate  time.Time                  `json:"lastRecordDate"`
	// Exercises contributing to this group, most frequent first,
	// ties broken alphabetically.
	Exercises []string `json:"exercises"`
}

// NormalizeMuscleGroup lowercases the label and folds one trailing "s",
// so "Biceps" and "bicep" land in the same group. This is a heuristic,
// not a pluralization rule: a legitimately singular name ending in "s"
// gets folded too.
func NormalizeMuscleGroup(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	return strings.TrimSuffix(n, "s")
}

type muscleGroupAccumulator struct {
	spellings      []string // original spellings, insertion order
	dated          []datedRecord
	exercise2count map[string]int
}

// AggregateByMuscleGroup fans each record out to every muscle group its
// exercise targets and builds a day-bucketed progress series per
// normalized group, using UTC day bucketing. Records whose exercise has
// no muscle groups are skipped entirely, there is no synthetic
// "unknown" group. Empty input yields an empty slice.
func AggregateByMuscleGroup(recs []records.Record) ([]MuscleGroupStatistics, error) {
	return AggregateByMuscleGroupIn(recs, time.UTC)
}

// AggregateByMuscleGroupIn is AggregateByMuscleGroup with an explicit
// day bucketing time zone. Nil falls back to UTC.
func AggregateByMuscleGroupIn(recs []records.Record, loc *time.Location) ([]MuscleGroupStatistics, error) {
	dated, err := resolveDates(recs)
	if err != nil {
		return nil, err
	}

	groups := make(map[string]*muscleGroupAccumulator)
	for _, dr := range dated {
		for _, muscle := range dr.rec.Exercise.PrimaryMuscles {
			key := NormalizeMuscleGroup(muscle)
			if key == "" {
				continue
			}
			acc, ok := groups[key]
			if !ok {
				acc = &muscleGroupAccumulator{
					exercise2count: make(map[string]int),
				}
				groups[key] = acc
			}
			if !containsString(acc.spellings, muscle) {
				acc.spellings = append(acc.spellings, muscle)
			}
			acc.dated = append(acc.dated, dr)
			acc.exercise2count[dr.rec.Exercise.Name]++
		}
	}

	result := make([]MuscleGroupStatistics, 0, len(groups))
	for _, acc := range groups {
		result = append(result, muscleGroupStatistics(acc, loc))
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].MuscleGroup < result[j].MuscleGroup
	})
	return result, nil
}

func muscleGroupStatistics(acc *muscleGroupAccumulator, loc *time.Location) MuscleGroupStatistics {
	// acc.dated is in ascending date order already (resolveDates sorts,
	// fan-out appends in order), so the running distinct-exercise count
	// can be maintained in a single pass
	buckets := make(map[string]*MuscleGroupProgressPoint)
	seenExercises := make(map[string]struct{})
	for _, dr := range acc.dated {
		key := records.DayKeyIn(dr.date, loc)
		b, ok := buckets[key]
		if !ok {
			b = &MuscleGroupProgressPoint{Date: key}
			buckets[key] = b
		}
		b.TotalWeight += dr.rec.AdjustedVolume()
		b.RecordCount++
		seenExercises[dr.rec.Exercise.Name] = struct{}{}
		b.ExerciseCount = len(seenExercises)
	}

	progress := make([]MuscleGroupProgressPoint, 0, len(buckets))
	for _, b := range buckets {
		progress = append(progress, *b)
	}
	sort.Slice(progress, func(i, j int) bool {
		return progress[i].Date < progress[j].Date
	})

	exercises := make([]string, 0, len(acc.exercise2count))
	for name := range acc.exercise2count {
		exercises = append(exercises, name)
	}
	sort.Slice(exercises, func(i, j int) bool {
		ci, cj := acc.exercise2count[exercises[i]], acc.exercise2count[exercises[j]]
		if ci != cj {
			return ci > cj
		}
		return exercises[i] < exercises[j]
	})

	return MuscleGroupStatistics{
		MuscleGroup:     displayName(acc.spellings),
		Progress:        progress,
		TotalRecords:    len(acc.dated),
		FirstRecordDate: acc.dated[0].date,
		LastRecordDate:  acc.dated[len(acc.dated)-1].date,
		Exercises:       exercises,
	}
}

// displayName picks the spelling shown for a normalized group: the
// first observed spelling that does not look plural, else just the
// first one observed.
func displayName(spellings []string) string {
	for _, s := range spellings {
		if !strings.HasSuffix(strings.ToLower(s), "s") {
			return s
		}
	}
	return spellings[0]
}

func containsString(list []string, s string) bool {
	for _, el := range list {
		if el == s {
			return true
		}
	}
	return false
}

package records

import "time"

// Exercise is the catalog entry a record points at. The aggregation code
// only reads Name, TotalWeightMultiplier and PrimaryMuscles; the rest is
// instructional metadata carried through for JSON round-tripping.
type Exercise struct {
	ID                    int      `json:"id"`
	Name                  string   `json:"name"`
	TotalWeightMultiplier float64  `json:"totalWeightMultiplier,omitempty"`
	PrimaryMuscles        []string `json:"primaryMuscles,omitempty"`
	SecondaryMuscles      []string `json:"secondaryMuscles,omitempty"`
	Instructions          []string `json:"instructions,omitempty"`
	Images                []string `json:"images,omitempty"`
}

// Multiplier returns the effective weight multiplier for the exercise.
// A zero (unset) value means no equipment adjustment, i.e. 1.0.
// Values below 1 model pulley-style equipment that halves/reduces the
// actually lifted weight.
func (e Exercise) Multiplier() float64 {
	if e.TotalWeightMultiplier <= 0 {
		return 1.0
	}
	return e.TotalWeightMultiplier
}

type Set struct {
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"` // kilos
}

// Record is one logged performance of one exercise, with at least one set.
// Date is the optional user override for when the workout actually
// happened, as opposed to CreatedAt, which is when it was entered.
type Record struct {
	ID         int        `json:"id"`
	ExerciseID int        `json:"exerciseId"`
	Exercise   Exercise   `json:"exercise"`
	Sets       []Set      `json:"sets"`
	CreatedAt  time.Time  `json:"createdAt"`
	Date       *time.Time `json:"date,omitempty"`
}

// WorkoutStat is a pre-aggregated daily total for one workout label,
// computed by the collaborator that owns the workout sessions.
type WorkoutStat struct {
	Date        time.Time `json:"date"`
	TotalWeight float64   `json:"totalWeight"`
	WorkoutName string    `json:"workoutName"`
}

type RecordsExport struct {
	Records []Record `json:"records"`
	Count   int      `json:"count"`
}

type WorkoutStatsExport struct {
	Stats []WorkoutStat `json:"stats"`
	Count int           `json:"count"`
}

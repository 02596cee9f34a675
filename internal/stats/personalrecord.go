package stats

import (
	"fmt"
	"time"

	"github.com/2beens/gymprogress/internal/records"
)

// PersonalRecord is the best (max adjusted volume) performance ever
// logged for one exercise. RecordID is a back-reference into the
// caller's record collection, not an owning copy.
type PersonalRecord struct {
	MaxTotalWeight float64   `json:"maxTotalWeight"`
	Date           time.Time `json:"date"`
	RecordID       int       `json:"recordId"`
}

type PRStatus string

const (
	PRStatusAbove PRStatus = "above"
	PRStatusBelow PRStatus = "below"
	PRStatusTied  PRStatus = "tied"
	PRStatusNone  PRStatus = "none"
)

type PRComparison struct {
	Status PRStatus `json:"status"`
	// Difference is the absolute volume distance to the PR, in kilos.
	Difference float64 `json:"difference"`
}

// PersonalRecordFor scans the records of the given exercise and returns
// the one with the maximum adjusted volume, ties broken by the earliest
// effective date (the first time that peak was reached). No records for
// the exercise is a legitimate "no PR yet" state and yields nil, nil.
func PersonalRecordFor(recs []records.Record, exerciseID int) (*PersonalRecord, error) {
	var best *PersonalRecord
	for _, r := range recs {
		if r.ExerciseID != exerciseID {
			continue
		}
		date, err := records.EffectiveDate(r)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", r.ID, err)
		}
		volume := r.AdjustedVolume()
		if best == nil ||
			volume > best.MaxTotalWeight ||
			(volume == best.MaxTotalWeight && date.Before(best.Date)) {
			best = &PersonalRecord{
				MaxTotalWeight: volume,
				Date:           date,
				RecordID:       r.ID,
			}
		}
	}
	return best, nil
}

// CompareToPersonalRecord compares an in-progress, not-yet-saved set
// list against an existing PR. The status is "none" when there is no PR
// or the in-progress volume is zero. The raw (unadjusted) volume of the
// current sets is used, parsing of numeric input is the caller's job.
func CompareToPersonalRecord(currentSets []records.Set, pr *PersonalRecord) PRComparison {
	current := records.SetsVolume(currentSets)
	if pr == nil || current == 0 {
		return PRComparison{Status: PRStatusNone}
	}

	diff := current - pr.MaxTotalWeight
	switch {
	case diff > 0:
		return PRComparison{Status: PRStatusAbove, Difference: diff}
	case diff < 0:
		return PRComparison{Status: PRStatusBelow, Difference: -diff}
	default:
		return PRComparison{Status: PRStatusTied}
	}
}

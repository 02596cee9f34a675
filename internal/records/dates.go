package records

import (
	"errors"
	"time"
)

// ErrInvalidDate is returned when a record's effective date cannot be
// resolved. Callers must propagate it instead of substituting "now",
// otherwise the chronological ordering of the series gets corrupted.
var ErrInvalidDate = errors.New("invalid date")

const dayKeyLayout = "2006-01-02"

// EffectiveDate resolves the authoritative date of a record: the
// user-supplied override when present, the creation timestamp otherwise.
// All date-based sorting and bucketing uses this value.
func EffectiveDate(r Record) (time.Time, error) {
	if r.Date != nil {
		if r.Date.IsZero() {
			return time.Time{}, ErrInvalidDate
		}
		return *r.Date, nil
	}
	if r.CreatedAt.IsZero() {
		return time.Time{}, ErrInvalidDate
	}
	return r.CreatedAt, nil
}

// DayKey truncates a timestamp to its UTC calendar day, formatted as
// YYYY-MM-DD. The keys sort lexically in chronological order.
func DayKey(t time.Time) string {
	return DayKeyIn(t, time.UTC)
}

// DayKeyIn is DayKey with an explicit time zone policy. A nil location
// falls back to UTC. Bucketing in a local zone is a deliberate caller
// choice, the default everywhere in this module is UTC.
func DayKeyIn(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(dayKeyLayout)
}

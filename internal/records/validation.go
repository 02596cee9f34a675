package records

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

// Validate checks the data-entry invariants of a record: at least one
// set, strictly positive reps and weights, non-negative multiplier.
// All violations are reported at once. The aggregators do not call
// this themselves, they assume validated input and merely stay
// defensive about empty set lists.
func Validate(r Record) error {
	var errs error
	if len(r.Sets) == 0 {
		errs = multierr.Append(errs, errors.New("record has no sets"))
	}
	for i, s := range r.Sets {
		if s.Reps <= 0 {
			errs = multierr.Append(errs, fmt.Errorf("set %d: reps must be positive, got %d", i+1, s.Reps))
		}
		if s.Weight <= 0 {
			errs = multierr.Append(errs, fmt.Errorf("set %d: weight must be positive, got %v", i+1, s.Weight))
		}
	}
	if r.Exercise.TotalWeightMultiplier < 0 {
		errs = multierr.Append(errs, fmt.Errorf(
			"exercise %q: weight multiplier must not be negative, got %v",
			r.Exercise.Name, r.Exercise.TotalWeightMultiplier,
		))
	}
	return errs
}

package records

// SetsVolume sums reps * weight over the given sets.
// An empty set list yields 0.
func SetsVolume(sets []Set) float64 {
	var volume float64
	for _, s := range sets {
		volume += float64(s.Reps) * s.Weight
	}
	return volume
}

// TotalVolume returns the raw training volume of the record,
// without any equipment adjustment.
func (r Record) TotalVolume() float64 {
	return SetsVolume(r.Sets)
}

// AdjustedVolume returns the training volume scaled by the exercise
// weight multiplier. This is the value used for progress series and
// personal records. No rounding happens here, formatting is up to
// the caller.
func (r Record) AdjustedVolume() float64 {
	return r.TotalVolume() * r.Exercise.Multiplier()
}

package stats

import (
	"context"
	"time"

	"github.com/2beens/gymprogress/internal/records"
	"github.com/2beens/gymprogress/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=analyzer.go -destination=mocks_test.go -package=stats_test

// recordsRepo is the boundary to whatever fetched the records, an API
// client, a DB repo, a test mock. The analyzer never fetches anything
// itself beyond calling these.
type recordsRepo interface {
	ListAll(ctx context.Context) ([]records.Record, error)
	ListForExercise(ctx context.Context, exerciseID int) ([]records.Record, error)
}

type workoutStatsRepo interface {
	ListWorkoutStats(ctx context.Context) ([]records.WorkoutStat, error)
}

// Options holds aggregation policy knobs shared by all analyzer calls.
type Options struct {
	// Location used to truncate effective dates into calendar-day
	// buckets. Nil means UTC, which matches what the web UI shows.
	Location *time.Location
}

// Analyzer ties the pure aggregation functions to a records source.
// It holds no state between calls, every invocation is a fresh fold
// over freshly listed input.
type Analyzer struct {
	repo        recordsRepo
	workoutRepo workoutStatsRepo
	loc         *time.Location
}

func NewAnalyzer(repo recordsRepo, workoutRepo workoutStatsRepo, opts Options) *Analyzer {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	return &Analyzer{
		repo:        repo,
		workoutRepo: workoutRepo,
		loc:         loc,
	}
}

func (a *Analyzer) ExerciseStatistics(ctx context.Context) (_ []ExerciseStatistics, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.gymprogress.exerciseStatistics")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	recs, err := a.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	log.Tracef("aggregating %d records per exercise", len(recs))
	return AggregateByExerciseIn(recs, a.loc)
}

func (a *Analyzer) MuscleGroupStatistics(ctx context.Context) (_ []MuscleGroupStatistics, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.gymprogress.muscleGroupStatistics")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	recs, err := a.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	log.Tracef("aggregating %d records per muscle group", len(recs))
	return AggregateByMuscleGroupIn(recs, a.loc)
}

func (a *Analyzer) WorkoutVolumeStatistics(ctx context.Context) (_ []WorkoutVolumeStatistics, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.gymprogress.workoutVolumeStatistics")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	workoutStats, err := a.workoutRepo.ListWorkoutStats(ctx)
	if err != nil {
		return nil, err
	}

	log.Tracef("aggregating %d workout stats per label", len(workoutStats))
	return AggregateByWorkoutLabelIn(workoutStats, a.loc)
}

func (a *Analyzer) PersonalRecord(ctx context.Context, exerciseID int) (_ *PersonalRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.gymprogress.personalRecord")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise_id", exerciseID))

	recs, err := a.repo.ListForExercise(ctx, exerciseID)
	if err != nil {
		return nil, err
	}

	return PersonalRecordFor(recs, exerciseID)
}

// ComparePersonalRecord compares the in-progress sets against the
// stored PR of the given exercise.
func (a *Analyzer) ComparePersonalRecord(
	ctx context.Context,
	exerciseID int,
	currentSets []records.Set,
) (_ PRComparison, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.gymprogress.comparePersonalRecord")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise_id", exerciseID))

	pr, err := a.PersonalRecord(ctx, exerciseID)
	if err != nil {
		return PRComparison{}, err
	}

	return CompareToPersonalRecord(currentSets, pr), nil
}

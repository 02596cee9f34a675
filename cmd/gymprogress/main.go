package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/2beens/gymprogress/internal/config"
	"github.com/2beens/gymprogress/internal/logging"
	"github.com/2beens/gymprogress/internal/records"
	"github.com/2beens/gymprogress/internal/stats"

	log "github.com/sirupsen/logrus"
)

// gymprogress reads a JSON export of workout records (and optionally
// pre-aggregated workout stats), runs the aggregation engine over it
// and prints a plain text progress report. It plays the role of the
// data-fetching collaborator, the engine itself never touches disk.
func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "", "path for the TOML config file (optional)")
	recordsPath := flag.String("records", "records.json", "path to the records JSON export")
	workoutsPath := flag.String("workouts", "", "path to the workout stats JSON export (optional)")
	exerciseID := flag.Int("exercise", 0, "exercise id to show the personal record for (optional)")
	flag.Parse()

	cfg := &config.Config{LogToStdout: true}
	if *configPath != "" {
		loaded, err := config.Load(*env, *configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "load config: %s\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName: cfg.LogsPath,
		LogToStdout: cfg.LogToStdout,
		LogLevel:    cfg.LogLevel,
	})

	loc, err := cfg.BucketingLocation()
	if err != nil {
		log.Fatalf("resolve bucketing time zone: %s", err)
	}
	if loc != time.UTC {
		log.Warnf("bucketing days in [%s] instead of UTC", loc)
	}

	repo, err := loadExports(*recordsPath, *workoutsPath)
	if err != nil {
		log.Fatalf("load exports: %s", err)
	}

	analyzer := stats.NewAnalyzer(repo, repo, stats.Options{Location: loc})
	ctx := context.Background()

	if err := printReport(ctx, analyzer, repo, *exerciseID); err != nil {
		log.Fatalf("build report: %s", err)
	}
}

func printReport(ctx context.Context, analyzer *stats.Analyzer, repo *exportRepo, exerciseID int) error {
	exerciseStats, err := analyzer.ExerciseStatistics(ctx)
	if err != nil {
		return fmt.Errorf("exercise statistics: %w", err)
	}

	fmt.Printf("== progress per exercise [%d exercises] ==\n", len(exerciseStats))
	for _, es := range exerciseStats {
		fmt.Printf(
			" - %s: %d records between %s and %s\n",
			es.ExerciseName, es.TotalRecords,
			es.FirstRecordDate.Format("2006-01-02"), es.LastRecordDate.Format("2006-01-02"),
		)
		for _, p := range es.Progress {
			fmt.Printf("     %s  %8.1f kg  (%d records)\n", p.Date, p.TotalWeight, p.RecordCount)
		}
	}

	muscleGroupStats, err := analyzer.MuscleGroupStatistics(ctx)
	if err != nil {
		return fmt.Errorf("muscle group statistics: %w", err)
	}

	fmt.Printf("\n== progress per muscle group [%d groups] ==\n", len(muscleGroupStats))
	for _, mg := range muscleGroupStats {
		fmt.Printf(" - %s: %d records, exercises: %v\n", mg.MuscleGroup, mg.TotalRecords, mg.Exercises)
	}

	if len(repo.workoutStats) > 0 {
		workoutStats, err := analyzer.WorkoutVolumeStatistics(ctx)
		if err != nil {
			return fmt.Errorf("workout volume statistics: %w", err)
		}
		fmt.Printf("\n== workout volume [%d labels] ==\n", len(workoutStats))
		for _, ws := range workoutStats {
			fmt.Printf(
				" - %s: %d sessions, %.1f kg total, %.1f kg avg per session\n",
				ws.WorkoutName, ws.TotalSessions, ws.TotalVolume, ws.AvgVolumePerSession,
			)
		}
	}

	if exerciseID > 0 {
		pr, err := analyzer.PersonalRecord(ctx, exerciseID)
		if err != nil {
			return fmt.Errorf("personal record: %w", err)
		}
		if pr == nil {
			fmt.Printf("\n== exercise %d: no PR yet ==\n", exerciseID)
		} else {
			fmt.Printf(
				"\n== exercise %d PR: %.1f kg, set on %s (record %d) ==\n",
				exerciseID, pr.MaxTotalWeight, pr.Date.Format("2006-01-02"), pr.RecordID,
			)
		}
	}

	return nil
}

// exportRepo serves already-fetched collections to the analyzer.
type exportRepo struct {
	records      []records.Record
	workoutStats []records.WorkoutStat
}

func (r *exportRepo) ListAll(_ context.Context) ([]records.Record, error) {
	return r.records, nil
}

func (r *exportRepo) ListForExercise(_ context.Context, exerciseID int) ([]records.Record, error) {
	var filtered []records.Record
	for _, rec := range r.records {
		if rec.ExerciseID == exerciseID {
			filtered = append(filtered, rec)
		}
	}
	return filtered, nil
}

func (r *exportRepo) ListWorkoutStats(_ context.Context) ([]records.WorkoutStat, error) {
	return r.workoutStats, nil
}

func loadExports(recordsPath, workoutsPath string) (*exportRepo, error) {
	repo := &exportRepo{}

	recordsFile, err := os.ReadFile(recordsPath)
	if err != nil {
		return nil, fmt.Errorf("read records export: %w", err)
	}
	var recordsExport records.RecordsExport
	if err := json.Unmarshal(recordsFile, &recordsExport); err != nil {
		return nil, fmt.Errorf("unmarshal records export: %w", err)
	}
	repo.records = recordsExport.Records
	log.Debugf("loaded %d records from %s", len(repo.records), recordsPath)

	if workoutsPath == "" {
		return repo, nil
	}

	workoutsFile, err := os.ReadFile(workoutsPath)
	if err != nil {
		return nil, fmt.Errorf("read workout stats export: %w", err)
	}
	var workoutStatsExport records.WorkoutStatsExport
	if err := json.Unmarshal(workoutsFile, &workoutStatsExport); err != nil {
		return nil, fmt.Errorf("unmarshal workout stats export: %w", err)
	}
	repo.workoutStats = workoutStatsExport.Stats
	log.Debugf("loaded %d workout stats from %s", len(repo.workoutStats), workoutsPath)

	return repo, nil
}

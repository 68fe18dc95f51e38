package workout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/treinorpg/backend/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrWorkoutNotFound = errors.New("workout not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Add stores a completed workout together with all its sets, in one
// transaction.
func (r *Repo) Add(ctx context.Context, w Workout) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout.id", w.ID))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				err = fmt.Errorf("%w [rollback err: %s]", err, rbErr)
			}
		}
	}()

	_, err = tx.Exec(
		ctx,
		`INSERT INTO workout (id, user_id, difficulty, duration_seconds, completed_at)
			VALUES ($1, $2, $3, $4, $5);`,
		w.ID, w.UserID, w.Difficulty, w.DurationSeconds, w.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("insert workout: %w", err)
	}

	setOrder := 0
	for _, ex := range w.Exercises {
		for _, s := range ex.Sets {
			_, err = tx.Exec(
				ctx,
				`INSERT INTO workout_set
					(workout_id, exercise_id, exercise_name, weight, reps, completed, set_order)
					VALUES ($1, $2, $3, $4, $5, $6, $7);`,
				w.ID, ex.ExerciseID, ex.Name, s.Weight, s.Reps, s.Completed, setOrder,
			)
			if err != nil {
				return fmt.Errorf("insert workout set: %w", err)
			}
			setOrder++
		}
	}

	return tx.Commit(ctx)
}

func (r *Repo) Get(ctx context.Context, id string) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var w Workout
	err = r.db.QueryRow(
		ctx,
		`SELECT id, user_id, difficulty, duration_seconds, completed_at FROM workout WHERE id = $1;`,
		id,
	).Scan(&w.ID, &w.UserID, &w.Difficulty, &w.DurationSeconds, &w.CompletedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrWorkoutNotFound
	}
	if err != nil {
		return nil, err
	}

	return &w, nil
}

// HasWorkoutOnDay reports whether the user completed a structured workout
// on the given calendar day, power day detection uses it.
func (r *Repo) HasWorkoutOnDay(ctx context.Context, userID string, day time.Time) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.hasonday")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	var count int
	err = r.db.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM workout WHERE user_id = $1 AND completed_at >= $2 AND completed_at < $3;`,
		userID, dayStart, dayEnd,
	).Scan(&count)
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// ExerciseHistoryEntry is one past performance of an exercise, backing
// the personal record history view.
type ExerciseHistoryEntry struct {
	WorkoutID   string    `json:"workoutId"`
	MaxWeight   float64   `json:"maxWeight"`
	CompletedAt time.Time `json:"completedAt"`
}

func (r *Repo) ExerciseHistory(ctx context.Context, userID, exerciseID string, limit int) (_ []ExerciseHistoryEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.exercisehistory")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise.id", exerciseID))

	rows, err := r.db.Query(
		ctx,
		`SELECT w.id, MAX(ws.weight), w.completed_at
			FROM workout w JOIN workout_set ws ON ws.workout_id = w.id
			WHERE w.user_id = $1 AND ws.exercise_id = $2
			GROUP BY w.id, w.completed_at
			ORDER BY w.completed_at DESC
			LIMIT $3;`,
		userID, exerciseID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []ExerciseHistoryEntry
	for rows.Next() {
		var entry ExerciseHistoryEntry
		if err := rows.Scan(&entry.WorkoutID, &entry.MaxWeight, &entry.CompletedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		history = append(history, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}

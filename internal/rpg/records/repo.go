package records

import (
	"context"
	"errors"
	"fmt"

	"github.com/treinorpg/backend/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// BestWeights returns the stored best weight per exercise for the user,
// missing exercises are simply absent from the map.
func (r *Repo) BestWeights(ctx context.Context, userID string, exerciseIDs []string) (_ map[string]float64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.bestweights")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT exercise_id, weight FROM personal_record
			WHERE user_id = $1 AND exercise_id = ANY($2);`,
		userID, exerciseIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bestWeights := make(map[string]float64, len(exerciseIDs))
	for rows.Next() {
		var (
			exerciseID string
			weight     float64
		)
		if err := rows.Scan(&exerciseID, &weight); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		bestWeights[exerciseID] = weight
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return bestWeights, nil
}

// Record persists a personal record and updates the record-count
// achievement progress rows in the same transaction, both land or
// neither does. The upsert only ever raises the stored weight. Returns
// the user's record count after the write.
func (r *Repo) Record(ctx context.Context, rec PersonalRecord) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.record")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("exercise.id", rec.ExerciseID),
		attribute.Float64("weight", rec.Weight),
	)

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
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
		`INSERT INTO personal_record (user_id, exercise_id, exercise_name, weight, previous_weight, recorded_at)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (user_id, exercise_id) DO UPDATE
				SET previous_weight = personal_record.weight,
					weight = EXCLUDED.weight,
					recorded_at = EXCLUDED.recorded_at
				WHERE EXCLUDED.weight > personal_record.weight;`,
		rec.UserID, rec.ExerciseID, rec.ExerciseName, rec.Weight, rec.PreviousWeight, rec.RecordedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("upsert personal record: %w", err)
	}

	var recordsCount int
	if err = tx.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM personal_record WHERE user_id = $1;`,
		rec.UserID,
	).Scan(&recordsCount); err != nil {
		return 0, fmt.Errorf("count personal records: %w", err)
	}

	_, err = tx.Exec(
		ctx,
		`UPDATE achievement_progress
			SET current_value = $2, is_complete = $2 >= target_value
			WHERE user_id = $1 AND achievement_id LIKE 'pr-%';`,
		rec.UserID, recordsCount,
	)
	if err != nil {
		return 0, fmt.Errorf("update record achievement progress: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return 0, err
	}
	return recordsCount, nil
}

// ListForUser returns the user's personal records, newest first.
func (r *Repo) ListForUser(ctx context.Context, userID string) (_ []PersonalRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.listforuser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT user_id, exercise_id, exercise_name, weight, previous_weight, recorded_at
			FROM personal_record WHERE user_id = $1 ORDER BY recorded_at DESC;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var personalRecords []PersonalRecord
	for rows.Next() {
		var rec PersonalRecord
		if err := rows.Scan(
			&rec.UserID, &rec.ExerciseID, &rec.ExerciseName,
			&rec.Weight, &rec.PreviousWeight, &rec.RecordedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		personalRecords = append(personalRecords, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return personalRecords, nil
}

// CountForUser returns how many personal records the user holds.
func (r *Repo) CountForUser(ctx context.Context, userID string) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.countforuser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	if err = r.db.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM personal_record WHERE user_id = $1;`,
		userID,
	).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

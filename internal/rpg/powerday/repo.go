package powerday

import (
	"context"
	"errors"
	"time"

	"github.com/treinorpg/backend/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repo persists weekly power day usage. The unique constraint on
// (user_id, week, year) keeps RecordUsage idempotent.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) UsageForWeek(ctx context.Context, userID string, week, year int) (_ int, _ *time.Time, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.powerday.usageforweek")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var (
		used   int
		usedOn *time.Time
	)
	err = r.db.QueryRow(
		ctx,
		`SELECT used, used_on FROM power_day_usage WHERE user_id = $1 AND week = $2 AND year = $3;`,
		userID, week, year,
	).Scan(&used, &usedOn)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil, nil
	}
	if err != nil {
		return 0, nil, err
	}

	return used, usedOn, nil
}

func (r *Repo) RecordUsage(ctx context.Context, userID string, week, year int, usedOn time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.powerday.recordusage")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO power_day_usage (user_id, week, year, used, used_on)
			VALUES ($1, $2, $3, 1, $4)
			ON CONFLICT (user_id, week, year) DO NOTHING;`,
		userID, week, year, usedOn,
	)
	return err
}

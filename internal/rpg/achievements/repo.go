package achievements

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/treinorpg/backend/internal/rpg/xp"
	"github.com/treinorpg/backend/internal/telemetry/tracing"
	"github.com/treinorpg/backend/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

// Unlock is the fact that a user achieved a catalog entry.
type Unlock struct {
	UserID        string    `json:"userId"`
	AchievementID string    `json:"achievementId"`
	AchievedAt    time.Time `json:"achievedAt"`
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) UnlockedIDs(ctx context.Context, userID string) (_ map[string]bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.achievements.unlockedids")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT achievement_id FROM user_achievement WHERE user_id = $1;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	unlocked := map[string]bool{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		unlocked[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return unlocked, nil
}

// Award unlocks an achievement: the unlock row, the points increment,
// the cap-exempt XP reward and the level recompute land in one
// transaction. A duplicate award is a clean no-op, the unique constraint
// on (user_id, achievement_id) catches races with concurrent callers.
func (r *Repo) Award(ctx context.Context, userID string, achievement Achievement, achievedAt time.Time) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.achievements.award")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("achievement.id", achievement.ID))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				err = fmt.Errorf("%w [rollback err: %s]", err, rbErr)
			}
		}
	}()

	tag, err := tx.Exec(
		ctx,
		`INSERT INTO user_achievement (user_id, achievement_id, achieved_at)
			VALUES ($1, $2, $3)
			ON CONFLICT (user_id, achievement_id) DO NOTHING;`,
		userID, achievement.ID, achievedAt,
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return false, nil
		}
		return false, fmt.Errorf("insert unlock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// already awarded by an earlier or concurrent call
		return false, nil
	}

	var newTotalXP int
	if err = tx.QueryRow(
		ctx,
		`UPDATE profiles
			SET achievement_points = achievement_points + $1,
				total_xp = total_xp + $2
			WHERE user_id = $3
			RETURNING total_xp;`,
		achievement.Points, achievement.XPReward, userID,
	).Scan(&newTotalXP); err != nil {
		return false, fmt.Errorf("add points and reward: %w", err)
	}

	if _, err = tx.Exec(
		ctx,
		`UPDATE profiles SET level = $1 WHERE user_id = $2;`,
		xp.LevelForXP(newTotalXP), userID,
	); err != nil {
		return false, fmt.Errorf("recompute level: %w", err)
	}

	if _, err = tx.Exec(
		ctx,
		`UPDATE achievement_progress SET is_complete = TRUE
			WHERE user_id = $1 AND achievement_id = $2;`,
		userID, achievement.ID,
	); err != nil {
		return false, fmt.Errorf("mark progress complete: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return false, err
	}
	return true, nil
}

func (r *Repo) ListForUser(ctx context.Context, userID string) (_ []Unlock, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.achievements.listforuser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT user_id, achievement_id, achieved_at
			FROM user_achievement WHERE user_id = $1 ORDER BY achieved_at;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var unlocks []Unlock
	for rows.Next() {
		var u Unlock
		if err := rows.Scan(&u.UserID, &u.AchievementID, &u.AchievedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		unlocks = append(unlocks, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return unlocks, nil
}

func (r *Repo) UpsertProgress(ctx context.Context, userID string, entries []ProgressEntry) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.achievements.upsertprogress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

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

	for _, entry := range entries {
		_, err = tx.Exec(
			ctx,
			`INSERT INTO achievement_progress (user_id, achievement_id, current_value, target_value, is_complete)
				VALUES ($1, $2, $3, $4, $5)
				ON CONFLICT (user_id, achievement_id) DO UPDATE
					SET current_value = EXCLUDED.current_value,
						is_complete = achievement_progress.is_complete OR EXCLUDED.is_complete;`,
			userID, entry.AchievementID, entry.CurrentValue, entry.TargetValue, entry.IsComplete,
		)
		if err != nil {
			return fmt.Errorf("upsert progress %s: %w", entry.AchievementID, err)
		}
	}

	return tx.Commit(ctx)
}

func (r *Repo) ProgressForUser(ctx context.Context, userID string) (_ []ProgressEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.achievements.progressforuser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT achievement_id, current_value, target_value, is_complete
			FROM achievement_progress WHERE user_id = $1;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []ProgressEntry
	for rows.Next() {
		var entry ProgressEntry
		if err := rows.Scan(&entry.AchievementID, &entry.CurrentValue, &entry.TargetValue, &entry.IsComplete); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

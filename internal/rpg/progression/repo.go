package progression

import (
	"context"
	"errors"
	"time"

	"github.com/treinorpg/backend/internal/rpg/classes"
	"github.com/treinorpg/backend/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrProfileNotFound = errors.New("profile not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Get(ctx context.Context, userID string) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progression.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	var (
		p        Profile
		rawClass string
	)
	err = r.db.QueryRow(
		ctx,
		`SELECT user_id, class, total_xp, level, streak, last_activity_at,
				daily_xp, daily_xp_date, achievement_points, workouts_count,
				manual_workouts_count, guild_contribution, streak_shield_expires_at
			FROM profiles WHERE user_id = $1;`,
		userID,
	).Scan(
		&p.UserID, &rawClass, &p.TotalXP, &p.Level, &p.Streak, &p.LastActivityAt,
		&p.DailyXP, &p.DailyXPDate, &p.AchievementPoints, &p.WorkoutsCount,
		&p.ManualWorkoutsCount, &p.GuildContribution, &p.StreakShieldExpiresAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}

	p.Class = classes.ParseClass(rawClass)
	return &p, nil
}

func (r *Repo) Create(ctx context.Context, userID string, class classes.Class) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progression.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO profiles (user_id, class, total_xp, level, streak, daily_xp,
				achievement_points, workouts_count, manual_workouts_count, guild_contribution)
			VALUES ($1, $2, 0, 1, 0, 0, 0, 0, 0, 0);`,
		userID, string(class),
	)
	return err
}

// AwardUpdate carries the post-award progression values persisted in one
// statement.
type AwardUpdate struct {
	TotalXP        int
	Level          int
	Streak         int
	DailyXP        int
	DailyXPDate    time.Time
	LastActivityAt time.Time
	ManualWorkout  bool
}

// ApplyAward writes the outcome of an XP award: new totals, streak and
// daily accumulation, and bumps the matching activity counter.
func (r *Repo) ApplyAward(ctx context.Context, userID string, upd AwardUpdate) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progression.applyaward")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("user.id", userID),
		attribute.Int("total.xp", upd.TotalXP),
	)

	counterColumn := "workouts_count"
	if upd.ManualWorkout {
		counterColumn = "manual_workouts_count"
	}

	tag, err := r.db.Exec(
		ctx,
		`UPDATE profiles SET
				total_xp = $1, level = $2, streak = $3,
				daily_xp = $4, daily_xp_date = $5, last_activity_at = $6,
				`+counterColumn+` = `+counterColumn+` + 1
			WHERE user_id = $7;`,
		upd.TotalXP, upd.Level, upd.Streak,
		upd.DailyXP, upd.DailyXPDate, upd.LastActivityAt,
		userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrProfileNotFound
	}

	return nil
}

// PreserveStreak implements the Bruxo streak shield: when an unexpired
// shield is stored for the user, it is consumed and the streak survives
// the missed day.
func (r *Repo) PreserveStreak(ctx context.Context, userID string, now time.Time) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progression.preservestreak")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(
		ctx,
		`UPDATE profiles SET streak_shield_expires_at = NULL
			WHERE user_id = $1 AND streak_shield_expires_at > $2;`,
		userID, now,
	)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}

// GrantStreakShield arms the shield until the given expiry.
func (r *Repo) GrantStreakShield(ctx context.Context, userID string, expiresAt time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progression.grantstreakshield")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(
		ctx,
		`UPDATE profiles SET streak_shield_expires_at = $1 WHERE user_id = $2;`,
		expiresAt, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrProfileNotFound
	}

	return nil
}

// AddGuildContribution bumps the cumulative guild contribution backing
// Paladino's guild multiplier.
func (r *Repo) AddGuildContribution(ctx context.Context, userID string, amount int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progression.addguildcontribution")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(
		ctx,
		`UPDATE profiles SET guild_contribution = guild_contribution + $1 WHERE user_id = $2;`,
		amount, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrProfileNotFound
	}

	return nil
}

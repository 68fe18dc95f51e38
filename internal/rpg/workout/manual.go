package workout

import (
	"context"
	"errors"
	"time"

	"github.com/treinorpg/backend/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrManualPhotoRequired = errors.New("manual workout photo is required")
	ErrManualTooOld        = errors.New("manual workout date older than 24 hours")
	ErrManualAlreadyToday  = errors.New("manual workout already submitted today")
)

// ManualWorkout is a free-form activity submitted outside a structured
// workout session. One allowed per calendar day.
type ManualWorkout struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	Description  string    `json:"description"`
	ActivityType string    `json:"activityType"`
	PhotoURL     string    `json:"photoUrl"`
	XPAwarded    int       `json:"xpAwarded"`
	IsPowerDay   bool      `json:"isPowerDay"`
	WorkoutDate  time.Time `json:"workoutDate"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Validate checks the submission preconditions against the current time.
func (m *ManualWorkout) Validate(now time.Time) error {
	if m.PhotoURL == "" {
		return ErrManualPhotoRequired
	}
	if now.Sub(m.WorkoutDate) > 24*time.Hour {
		return ErrManualTooOld
	}
	return nil
}

func (r *Repo) AddManual(ctx context.Context, m ManualWorkout) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.addmanual")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("manual.id", m.ID))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO manual_workout
			(id, user_id, description, activity_type, photo_url, xp_awarded, is_power_day, workout_date, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`,
		m.ID, m.UserID, m.Description, m.ActivityType, m.PhotoURL,
		m.XPAwarded, m.IsPowerDay, m.WorkoutDate, m.CreatedAt,
	)
	return err
}

// HasManualOnDay reports whether the user already submitted a manual
// workout on the given calendar day.
func (r *Repo) HasManualOnDay(ctx context.Context, userID string, day time.Time) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.hasmanualonday")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	var count int
	err = r.db.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM manual_workout WHERE user_id = $1 AND workout_date >= $2 AND workout_date < $3;`,
		userID, dayStart, dayEnd,
	).Scan(&count)
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

package streak

import (
	"context"
	"fmt"
	"time"

	"github.com/treinorpg/backend/internal/rpg/classes"
	"github.com/treinorpg/backend/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=streak_mocks_test.go -package=streak_test

// PreservationHook answers whether a missed day should be forgiven for
// the user, consuming whatever persisted state backs the rule.
type PreservationHook interface {
	PreserveStreak(ctx context.Context, userID string, now time.Time) (bool, error)
}

// NoPreservation is the default hook: a missed day always resets.
type NoPreservation struct{}

func (NoPreservation) PreserveStreak(context.Context, string, time.Time) (bool, error) {
	return false, nil
}

// Accountant tracks the consecutive-day activity streak.
type Accountant struct {
	preservation PreservationHook
}

func NewAccountant(preservation PreservationHook) *Accountant {
	if preservation == nil {
		preservation = NoPreservation{}
	}
	return &Accountant{preservation: preservation}
}

// Update computes the new streak value for an activity happening now.
// Same calendar day as the last activity is a no-op, the previous day
// increments, a larger gap resets to 1 unless the user's class preserves
// the streak (then the gap counts as a single missed day).
func (a *Accountant) Update(
	ctx context.Context,
	userID string,
	class classes.Class,
	current int,
	lastActivity time.Time,
	now time.Time,
) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "streak.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("streak.current", current))

	if lastActivity.IsZero() || current == 0 {
		return 1, nil
	}

	switch gap := calendarDaysBetween(lastActivity, now); {
	case gap <= 0:
		// today already counted
		return current, nil
	case gap == 1:
		return current + 1, nil
	default:
		if class.HasStreakPreservation() {
			preserved, err := a.preservation.PreserveStreak(ctx, userID, now)
			if err != nil {
				return 0, fmt.Errorf("check streak preservation: %w", err)
			}
			if preserved {
				return current + 1, nil
			}
		}
		return 1, nil
	}
}

// Multiplier returns the streak XP multiplier, a monotonic step function
// starting at 1.0 and capped at 1.35.
func Multiplier(streak int) float64 {
	if streak < 2 {
		return 1.0
	}
	steps := streak - 1
	if steps > 7 {
		steps = 7
	}
	return 1 + 0.05*float64(steps)
}

func calendarDaysBetween(from, to time.Time) int {
	fromDay := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	toDay := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, to.Location())
	return int(toDay.Sub(fromDay).Hours() / 24)
}

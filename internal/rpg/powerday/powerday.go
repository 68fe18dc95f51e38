package powerday

import (
	"context"
	"fmt"
	"time"

	"github.com/treinorpg/backend/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=powerday_mocks_test.go -package=powerday_test

// activityStore answers whether qualifying activities happened on a
// calendar day.
type activityStore interface {
	HasWorkoutOnDay(ctx context.Context, userID string, day time.Time) (bool, error)
	HasManualOnDay(ctx context.Context, userID string, day time.Time) (bool, error)
}

type usageStore interface {
	UsageForWeek(ctx context.Context, userID string, week, year int) (int, *time.Time, error)
	RecordUsage(ctx context.Context, userID string, week, year int, usedOn time.Time) error
}

// Availability is the result of a weekly power day usage check.
type Availability struct {
	Available bool       `json:"available"`
	Used      int        `json:"used"`
	Limit     int        `json:"limit"`
	Week      int        `json:"week"`
	Year      int        `json:"year"`
	UsedOn    *time.Time `json:"usedOn,omitempty"`
}

// ActiveOn reports whether the raised cap applies on the given day:
// either a use is still available this week, or the week's use happened
// on that very day.
func (a Availability) ActiveOn(day time.Time) bool {
	if a.Available {
		return true
	}
	return a.UsedOn != nil &&
		a.UsedOn.Year() == day.Year() &&
		a.UsedOn.Month() == day.Month() &&
		a.UsedOn.Day() == day.Day()
}

// Accountant detects power days and enforces the weekly usage cap.
type Accountant struct {
	activities  activityStore
	usage       usageStore
	usesPerWeek int
}

func NewAccountant(activities activityStore, usage usageStore, usesPerWeek int) *Accountant {
	if usesPerWeek <= 0 {
		usesPerWeek = 1
	}
	return &Accountant{
		activities:  activities,
		usage:       usage,
		usesPerWeek: usesPerWeek,
	}
}

// IsPowerDay reports whether the user has both a structured workout and
// a manual activity on the given calendar day. A manual submission still
// in flight counts as the day's manual activity before its row exists,
// callers awarding one pass pendingManual and only the workout side is
// checked.
func (a *Accountant) IsPowerDay(ctx context.Context, userID string, day time.Time, pendingManual bool) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "powerday.ispowerday")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Bool("manual.pending", pendingManual))

	hasWorkout, err := a.activities.HasWorkoutOnDay(ctx, userID, day)
	if err != nil {
		return false, fmt.Errorf("check workout on day: %w", err)
	}
	if !hasWorkout {
		return false, nil
	}
	if pendingManual {
		return true, nil
	}

	hasManual, err := a.activities.HasManualOnDay(ctx, userID, day)
	if err != nil {
		return false, fmt.Errorf("check manual activity on day: %w", err)
	}

	return hasManual, nil
}

// CheckAvailability reports whether the user still has a power day use
// left in the current ISO week.
func (a *Accountant) CheckAvailability(ctx context.Context, userID string, now time.Time) (_ Availability, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "powerday.checkavailability")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	year, week := now.ISOWeek()
	span.SetAttributes(attribute.Int("week", week), attribute.Int("year", year))

	used, usedOn, err := a.usage.UsageForWeek(ctx, userID, week, year)
	if err != nil {
		return Availability{}, fmt.Errorf("get power day usage: %w", err)
	}

	return Availability{
		Available: used < a.usesPerWeek,
		Used:      used,
		Limit:     a.usesPerWeek,
		Week:      week,
		Year:      year,
		UsedOn:    usedOn,
	}, nil
}

// RecordUsage marks a power day as used for the ISO week of now. A
// repeated call for the same week does not double-count.
func (a *Accountant) RecordUsage(ctx context.Context, userID string, now time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "powerday.recordusage")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	year, week := now.ISOWeek()
	if err := a.usage.RecordUsage(ctx, userID, week, year, now); err != nil {
		return fmt.Errorf("record power day usage: %w", err)
	}
	return nil
}

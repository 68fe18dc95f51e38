package xp

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/treinorpg/backend/internal/rpg/classes"
	"github.com/treinorpg/backend/internal/rpg/powerday"
	"github.com/treinorpg/backend/internal/rpg/progression"
	"github.com/treinorpg/backend/internal/rpg/streak"
	"github.com/treinorpg/backend/internal/rpg/workout"
	"github.com/treinorpg/backend/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=engine_mocks_test.go -package=xp_test

const (
	manualBaseXP = 100

	baseXPPerExercise   = 10
	baseXPPerTenMinutes = 5
	baseXPTimeTermCap   = 30
)

type profileStore interface {
	ApplyAward(ctx context.Context, userID string, upd progression.AwardUpdate) error
}

type powerDayAccountant interface {
	IsPowerDay(ctx context.Context, userID string, day time.Time, pendingManual bool) (bool, error)
	CheckAvailability(ctx context.Context, userID string, now time.Time) (powerday.Availability, error)
	RecordUsage(ctx context.Context, userID string, now time.Time) error
}

type streakAccountant interface {
	Update(ctx context.Context, userID string, class classes.Class, current int, lastActivity, now time.Time) (int, error)
}

// AwardResult is the full outcome of an XP award, including the audit
// breakdown shown in the app.
type AwardResult struct {
	BaseXP         int                  `json:"baseXP"`
	BonusXP        int                  `json:"bonusXP"`
	Breakdown      []classes.SkillBonus `json:"breakdown"`
	StreakXP       int                  `json:"streakXP"`
	FinalXP        int                  `json:"finalXP"`
	Capped         bool                 `json:"capped"`
	ActiveCap      int                  `json:"activeCap"`
	PowerDayActive bool                 `json:"powerDayActive"`
	NewStreak      int                  `json:"newStreak"`
	NewTotalXP     int                  `json:"newTotalXP"`
	NewLevel       int                  `json:"newLevel"`
	LeveledUp      bool                 `json:"leveledUp"`
}

// Engine computes and awards workout XP: base XP, class bonuses, streak
// multiplier, daily and power day caps, then persists the new totals.
// Callers guarantee a given workout's XP is awarded only once.
type Engine struct {
	profiles    profileStore
	powerDays   powerDayAccountant
	streaks     streakAccountant
	dailyCap    int
	powerDayCap int
	now         func() time.Time
}

func NewEngine(
	profiles profileStore,
	powerDays powerDayAccountant,
	streaks streakAccountant,
	dailyCap, powerDayCap int,
) *Engine {
	return &Engine{
		profiles:    profiles,
		powerDays:   powerDays,
		streaks:     streaks,
		dailyCap:    dailyCap,
		powerDayCap: powerDayCap,
		now:         time.Now,
	}
}

// WithClock replaces the engine clock, tests use it.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// CalculateWorkoutXP computes the deterministic base XP for a workout
// from its exercise count, duration and difficulty tier. A workout with
// no exercises yields 0.
func CalculateWorkoutXP(w *workout.Workout) int {
	if len(w.Exercises) == 0 {
		return 0
	}

	timeTerm := baseXPPerTenMinutes * (w.DurationSeconds / 600)
	if timeTerm > baseXPTimeTermCap {
		timeTerm = baseXPTimeTermCap
	}

	base := baseXPPerExercise*len(w.Exercises) + timeTerm
	return int(math.Round(float64(base) * w.Difficulty.Multiplier()))
}

// AwardWorkoutXP runs the award algorithm for a completed structured
// workout and persists the outcome. Hitting the cap is not an error, the
// result carries the clamping fact.
func (e *Engine) AwardWorkoutXP(
	ctx context.Context,
	profile *progression.Profile,
	w *workout.Workout,
	hasPR bool,
) (_ *AwardResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "xp.awardworkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	baseXP := CalculateWorkoutXP(w)
	bonusCtx := func(newStreak int) classes.BonusContext {
		return classes.BonusContext{
			Workout:         w,
			Streak:          newStreak,
			HasPR:           hasPR,
			GuildMultiplier: profile.GuildMultiplier(),
		}
	}

	res, err := e.award(ctx, profile, baseXP, false, func(newStreak int) classes.BonusResult {
		return classes.ForClass(profile.Class).ApplyBonuses(baseXP, bonusCtx(newStreak))
	})
	if err != nil {
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("xp.base", res.BaseXP),
		attribute.Int("xp.final", res.FinalXP),
		attribute.Bool("xp.capped", res.Capped),
	)
	return res, nil
}

// AwardManualXP awards the flat manual activity XP with the class
// activity-type bonus.
func (e *Engine) AwardManualXP(
	ctx context.Context,
	profile *progression.Profile,
	activityType string,
) (_ *AwardResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "xp.awardmanual")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	res, err := e.award(ctx, profile, manualBaseXP, true, func(int) classes.BonusResult {
		return classes.ManualActivityBonus(profile.Class, manualBaseXP, activityType)
	})
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("xp.final", res.FinalXP))
	return res, nil
}

func (e *Engine) award(
	ctx context.Context,
	profile *progression.Profile,
	baseXP int,
	manual bool,
	bonusFn func(newStreak int) classes.BonusResult,
) (*AwardResult, error) {
	now := e.now()

	newStreak, err := e.streaks.Update(
		ctx, profile.UserID, profile.Class, profile.Streak, profile.LastActivity(), now,
	)
	if err != nil {
		return nil, fmt.Errorf("update streak: %w", err)
	}

	bonus := bonusFn(newStreak)
	rawXP := baseXP + bonus.BonusXP
	streakXP := int(math.Round(float64(rawXP) * streak.Multiplier(newStreak)))

	activeCap, powerDayActive, consumeUse, err := e.activeCap(ctx, profile.UserID, now, manual)
	if err != nil {
		return nil, err
	}

	dailySoFar := profile.DailyXPFor(now)
	finalXP := streakXP
	if remaining := activeCap - dailySoFar; finalXP > remaining {
		finalXP = remaining
	}
	if finalXP < 0 {
		finalXP = 0
	}

	newTotal := profile.TotalXP + finalXP
	newLevel := LevelForXP(newTotal)

	if err := e.profiles.ApplyAward(ctx, profile.UserID, progression.AwardUpdate{
		TotalXP:        newTotal,
		Level:          newLevel,
		Streak:         newStreak,
		DailyXP:        dailySoFar + finalXP,
		DailyXPDate:    now,
		LastActivityAt: now,
		ManualWorkout:  manual,
	}); err != nil {
		return nil, fmt.Errorf("persist award: %w", err)
	}

	// the weekly use is consumed only once the award is persisted, a
	// failed profile write must not burn it
	if consumeUse {
		if err := e.powerDays.RecordUsage(ctx, profile.UserID, now); err != nil {
			return nil, fmt.Errorf("record power day usage: %w", err)
		}
	}

	return &AwardResult{
		BaseXP:         baseXP,
		BonusXP:        bonus.BonusXP,
		Breakdown:      bonus.Breakdown,
		StreakXP:       streakXP,
		FinalXP:        finalXP,
		Capped:         finalXP < streakXP,
		ActiveCap:      activeCap,
		PowerDayActive: powerDayActive,
		NewStreak:      newStreak,
		NewTotalXP:     newTotal,
		NewLevel:       newLevel,
		LeveledUp:      newLevel > profile.Level,
	}, nil
}

// activeCap resolves which daily cap applies right now: the power day
// cap when today qualifies and a weekly use is available (or was already
// spent today), else the base daily cap. During a manual award the
// submission in flight is the day's manual activity, so qualification
// only needs a structured workout on the books. A fresh qualification
// asks the caller to consume the weekly use after the award persists.
func (e *Engine) activeCap(
	ctx context.Context,
	userID string,
	now time.Time,
	pendingManual bool,
) (int, bool, bool, error) {
	isPowerDay, err := e.powerDays.IsPowerDay(ctx, userID, now, pendingManual)
	if err != nil {
		return 0, false, false, fmt.Errorf("check power day: %w", err)
	}
	if !isPowerDay {
		return e.dailyCap, false, false, nil
	}

	availability, err := e.powerDays.CheckAvailability(ctx, userID, now)
	if err != nil {
		return 0, false, false, fmt.Errorf("check power day availability: %w", err)
	}
	if !availability.ActiveOn(now) {
		// weekly uses exhausted, normal branch, cap not raised
		return e.dailyCap, false, false, nil
	}

	return e.powerDayCap, true, availability.Available, nil
}

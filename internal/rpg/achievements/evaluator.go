package achievements

import (
	"context"
	"fmt"
	"time"

	"github.com/treinorpg/backend/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=evaluator_mocks_test.go -package=achievements_test

// Counters are the post-award profile counters the requirements are
// evaluated against.
type Counters struct {
	WorkoutsCount int
	Streak        int
	RecordsCount  int
	TotalXP       int
	Level         int
	ManualCount   int
}

func (c Counters) valueFor(req RequirementType) int {
	switch req {
	case ReqWorkoutCount:
		return c.WorkoutsCount
	case ReqStreak:
		return c.Streak
	case ReqRecordCount:
		return c.RecordsCount
	case ReqTotalXP:
		return c.TotalXP
	case ReqLevel:
		return c.Level
	case ReqManualCount:
		return c.ManualCount
	default:
		return 0
	}
}

type unlockStore interface {
	UnlockedIDs(ctx context.Context, userID string) (map[string]bool, error)
	// Award inserts the unlock, adds the points and the cap-exempt XP
	// reward in one transaction. Returns false without error when the
	// unlock already exists.
	Award(ctx context.Context, userID string, achievement Achievement, achievedAt time.Time) (bool, error)
}

// Evaluator checks the catalog against the user's counters and awards
// everything newly qualified. Awards are idempotent, a concurrent or
// repeated call never double-grants.
type Evaluator struct {
	store unlockStore
}

func NewEvaluator(store unlockStore) *Evaluator {
	return &Evaluator{store: store}
}

// CheckAchievements returns the achievements newly unlocked by this
// call. Every unmet catalog entry is evaluated each time, a counter jump
// across several thresholds awards all of them in one pass.
func (e *Evaluator) CheckAchievements(
	ctx context.Context,
	userID string,
	counters Counters,
	now time.Time,
) (_ []Achievement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "achievements.check")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	unlocked, err := e.store.UnlockedIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get unlocked achievements: %w", err)
	}

	var newlyUnlocked []Achievement
	for _, achievement := range Catalog() {
		if unlocked[achievement.ID] {
			continue
		}
		if counters.valueFor(achievement.Requirement) < achievement.Target {
			continue
		}

		awarded, err := e.store.Award(ctx, userID, achievement, now)
		if err != nil {
			return newlyUnlocked, fmt.Errorf("award achievement %s: %w", achievement.ID, err)
		}
		if awarded {
			newlyUnlocked = append(newlyUnlocked, achievement)
		}
	}

	span.SetAttributes(attribute.Int("achievements.new", len(newlyUnlocked)))
	return newlyUnlocked, nil
}

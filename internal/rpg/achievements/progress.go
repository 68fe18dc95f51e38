package achievements

import (
	"context"
	"fmt"

	"github.com/treinorpg/backend/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

// ProgressEntry is the partial progress toward one unachieved
// achievement, it backs the progress bars in the app.
type ProgressEntry struct {
	AchievementID string `json:"achievementId"`
	CurrentValue  int    `json:"currentValue"`
	TargetValue   int    `json:"targetValue"`
	IsComplete    bool   `json:"isComplete"`
}

//go:generate mockgen -source=$GOFILE -destination=progress_mocks_test.go -package=achievements_test

type progressStore interface {
	UpsertProgress(ctx context.Context, userID string, entries []ProgressEntry) error
	ProgressForUser(ctx context.Context, userID string) ([]ProgressEntry, error)
}

// Tracker maintains the progress rows. It only records progress,
// granting stays with the Evaluator.
type Tracker struct {
	store progressStore
}

func NewTracker(store progressStore) *Tracker {
	return &Tracker{store: store}
}

// InitForUser seeds (0, target, false) rows for every catalog entry,
// called once at user setup.
func (t *Tracker) InitForUser(ctx context.Context, userID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "achievements.progress.init")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	entries := make([]ProgressEntry, 0, len(Catalog()))
	for _, achievement := range Catalog() {
		entries = append(entries, ProgressEntry{
			AchievementID: achievement.ID,
			CurrentValue:  0,
			TargetValue:   achievement.Target,
		})
	}
	if err := t.store.UpsertProgress(ctx, userID, entries); err != nil {
		return fmt.Errorf("init achievement progress: %w", err)
	}
	return nil
}

// SyncCounters refreshes the progress rows of every counter-backed
// achievement from the current counters. It runs on each relevant
// change, independent of whether a threshold fired.
func (t *Tracker) SyncCounters(ctx context.Context, userID string, counters Counters) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "achievements.progress.sync")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	entries := make([]ProgressEntry, 0, len(Catalog()))
	for _, achievement := range Catalog() {
		current := counters.valueFor(achievement.Requirement)
		entries = append(entries, ProgressEntry{
			AchievementID: achievement.ID,
			CurrentValue:  current,
			TargetValue:   achievement.Target,
			IsComplete:    current >= achievement.Target,
		})
	}
	if err := t.store.UpsertProgress(ctx, userID, entries); err != nil {
		return fmt.Errorf("sync achievement progress: %w", err)
	}
	return nil
}

// ProgressForUser returns the stored progress rows.
func (t *Tracker) ProgressForUser(ctx context.Context, userID string) (_ []ProgressEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "achievements.progress.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	entries, err := t.store.ProgressForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get achievement progress: %w", err)
	}
	return entries, nil
}

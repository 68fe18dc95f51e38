package records

import (
	"context"
	"fmt"
	"time"

	"github.com/treinorpg/backend/internal/rpg/workout"
	"github.com/treinorpg/backend/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=records_mocks_test.go -package=records_test

// PersonalRecord is the best known weight for a (user, exercise) pair.
type PersonalRecord struct {
	UserID         string    `json:"userId"`
	ExerciseID     string    `json:"exerciseId"`
	ExerciseName   string    `json:"exerciseName"`
	Weight         float64   `json:"weight"`
	PreviousWeight float64   `json:"previousWeight"`
	RecordedAt     time.Time `json:"recordedAt"`
}

// MajorImprovement reports whether the record beats the previous best by
// at least 10%. A first record always counts as major.
func (pr PersonalRecord) MajorImprovement() bool {
	if pr.PreviousWeight <= 0 {
		return true
	}
	return pr.Weight >= pr.PreviousWeight*1.1
}

type recordStore interface {
	BestWeights(ctx context.Context, userID string, exerciseIDs []string) (map[string]float64, error)
}

// Detector finds new personal records in a completed workout.
type Detector struct {
	store recordStore
}

func NewDetector(store recordStore) *Detector {
	return &Detector{store: store}
}

// CheckForPersonalRecords compares the workout's per-exercise max weight
// against the stored best. Only a strictly greater weight counts, ties
// never produce a record. An empty result is normal, not an error.
func (d *Detector) CheckForPersonalRecords(
	ctx context.Context,
	userID string,
	w *workout.Workout,
	now time.Time,
) (_ []PersonalRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "records.check")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	type candidate struct {
		exerciseID   string
		exerciseName string
		maxWeight    float64
	}
	var candidates []candidate
	seen := map[string]bool{}
	for _, ex := range w.Exercises {
		maxWeight := ex.MaxWeight()
		if maxWeight <= 0 || ex.ExerciseID == "" || seen[ex.ExerciseID] {
			continue
		}
		seen[ex.ExerciseID] = true
		candidates = append(candidates, candidate{ex.ExerciseID, ex.Name, maxWeight})
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	exerciseIDs := make([]string, 0, len(candidates))
	for _, c := range candidates {
		exerciseIDs = append(exerciseIDs, c.exerciseID)
	}

	bestWeights, err := d.store.BestWeights(ctx, userID, exerciseIDs)
	if err != nil {
		return nil, fmt.Errorf("get stored best weights: %w", err)
	}

	var newRecords []PersonalRecord
	for _, c := range candidates {
		storedBest := bestWeights[c.exerciseID]
		if c.maxWeight > storedBest {
			newRecords = append(newRecords, PersonalRecord{
				UserID:         userID,
				ExerciseID:     c.exerciseID,
				ExerciseName:   c.exerciseName,
				Weight:         c.maxWeight,
				PreviousWeight: storedBest,
				RecordedAt:     now,
			})
		}
	}

	span.SetAttributes(attribute.Int("records.new", len(newRecords)))
	return newRecords, nil
}

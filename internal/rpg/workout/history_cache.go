package workout

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/treinorpg/backend/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const (
	historyCacheExpireSeconds = 60 * 10
	historyLimit              = 50
)

// HistoryService serves per-exercise history through a bounded TTL cache.
// Entries are invalidated explicitly when a new workout lands for the
// user and exercise.
type HistoryService struct {
	repo  *Repo
	cache *freecache.Cache
}

func NewHistoryService(repo *Repo) *HistoryService {
	megabyte := 1024 * 1024
	cacheSize := 20 * megabyte
	return &HistoryService{
		repo:  repo,
		cache: freecache.NewCache(cacheSize),
	}
}

func historyCacheKey(userID, exerciseID string) []byte {
	return []byte(fmt.Sprintf("history::%s::%s", userID, exerciseID))
}

func (s *HistoryService) ExerciseHistory(ctx context.Context, userID, exerciseID string) (_ []ExerciseHistoryEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workout.exercisehistory")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	cacheKey := historyCacheKey(userID, exerciseID)
	if historyBytes, err := s.cache.Get(cacheKey); err == nil {
		var history []ExerciseHistoryEntry
		if err = json.Unmarshal(historyBytes, &history); err == nil {
			return history, nil
		}
		log.Errorf("failed to unmarshal cached history for exercise %s: %s", exerciseID, err)
	}

	history, err := s.repo.ExerciseHistory(ctx, userID, exerciseID, historyLimit)
	if err != nil {
		return nil, fmt.Errorf("get exercise history: %w", err)
	}

	historyBytes, err := json.Marshal(history)
	if err != nil {
		log.Errorf("failed to marshal history for exercise %s: %s", exerciseID, err)
		return history, nil
	}
	if err := s.cache.Set(cacheKey, historyBytes, historyCacheExpireSeconds); err != nil {
		log.Errorf("failed to cache history for exercise %s: %s", exerciseID, err)
	}

	return history, nil
}

// Invalidate drops the cached history for every exercise in the workout.
func (s *HistoryService) Invalidate(userID string, exerciseIDs []string) {
	for _, exerciseID := range exerciseIDs {
		s.cache.Del(historyCacheKey(userID, exerciseID))
	}
}

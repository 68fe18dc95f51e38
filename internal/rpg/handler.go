package rpg

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/treinorpg/backend/internal/rpg/achievements"
	"github.com/treinorpg/backend/internal/rpg/powerday"
	"github.com/treinorpg/backend/internal/rpg/progression"
	"github.com/treinorpg/backend/internal/rpg/records"
	"github.com/treinorpg/backend/internal/rpg/workout"
	"github.com/treinorpg/backend/internal/rpg/xp"
	"github.com/treinorpg/backend/internal/telemetry/tracing"
	"github.com/treinorpg/backend/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=rpg_test

type completionPipeline interface {
	CompleteWorkout(ctx context.Context, w workout.Workout) (*WorkoutCompletionResult, error)
	SubmitManualWorkout(ctx context.Context, m workout.ManualWorkout) (*ManualWorkoutResult, error)
}

type progressionRepo interface {
	Get(ctx context.Context, userID string) (*progression.Profile, error)
}

type achievementsRepo interface {
	ListForUser(ctx context.Context, userID string) ([]achievements.Unlock, error)
}

type achievementsProgress interface {
	ProgressForUser(ctx context.Context, userID string) ([]achievements.ProgressEntry, error)
}

type recordsLister interface {
	ListForUser(ctx context.Context, userID string) ([]records.PersonalRecord, error)
}

type exerciseHistory interface {
	ExerciseHistory(ctx context.Context, userID, exerciseID string) ([]workout.ExerciseHistoryEntry, error)
}

type powerDayChecker interface {
	CheckAvailability(ctx context.Context, userID string, now time.Time) (powerday.Availability, error)
}

// ProgressionResponse is the progression state served to the app,
// profile plus the values derived from it.
type ProgressionResponse struct {
	Profile        *progression.Profile `json:"profile"`
	Rank           achievements.Rank    `json:"rank"`
	XPForNextLevel int                  `json:"xpForNextLevel"`
	DailyXP        int                  `json:"dailyXP"`
}

// AchievementView is one catalog entry merged with the user's unlock
// state and partial progress.
type AchievementView struct {
	achievements.Achievement
	Unlocked     bool       `json:"unlocked"`
	AchievedAt   *time.Time `json:"achievedAt,omitempty"`
	CurrentValue int        `json:"currentValue"`
}

type RecordsListResponse struct {
	Records []records.PersonalRecord `json:"records"`
	Total   int                      `json:"total"`
}

type ExerciseHistoryResponse struct {
	ExerciseID string                         `json:"exerciseId"`
	Entries    []workout.ExerciseHistoryEntry `json:"entries"`
}

type Handler struct {
	pipeline  completionPipeline
	profiles  progressionRepo
	unlocks   achievementsRepo
	progress  achievementsProgress
	records   recordsLister
	history   exerciseHistory
	powerDays powerDayChecker
	now       func() time.Time
}

func NewHandler(
	pipeline completionPipeline,
	profiles progressionRepo,
	unlocks achievementsRepo,
	progress achievementsProgress,
	recordsRepo recordsLister,
	history exerciseHistory,
	powerDays powerDayChecker,
) *Handler {
	return &Handler{
		pipeline:  pipeline,
		profiles:  profiles,
		unlocks:   unlocks,
		progress:  progress,
		records:   recordsRepo,
		history:   history,
		powerDays: powerDays,
		now:       time.Now,
	}
}

// WithClock replaces the handler clock, tests use it.
func (handler *Handler) WithClock(now func() time.Time) *Handler {
	handler.now = now
	return handler
}

// userID reads the user the request acts on. Empty means the request is
// malformed, the caller writes the 400.
func userID(r *http.Request) string {
	if id := r.URL.Query().Get("user"); id != "" {
		return id
	}
	return r.Header.Get("X-TREINO-USER")
}

func (handler *Handler) HandleCompleteWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.rpg.completeworkout")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var wo workout.Workout
	if err := json.NewDecoder(r.Body).Decode(&wo); err != nil {
		log.Errorf("complete workout, unmarshal json params: %s", err)
		http.Error(w, "complete workout failed", http.StatusBadRequest)
		return
	}

	if wo.UserID == "" || len(wo.Exercises) == 0 {
		http.Error(w, "error, user id or exercises empty", http.StatusBadRequest)
		return
	}

	result, err := handler.pipeline.CompleteWorkout(ctx, wo)
	if err != nil {
		if errors.Is(err, progression.ErrProfileNotFound) {
			http.Error(w, "profile not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to complete workout for user %s: %s", wo.UserID, err)
		http.Error(w, "error, failed to complete workout", http.StatusInternalServerError)
		return
	}

	log.Debugf(
		"workout completed for user %s: %d xp, %d records, %d achievements",
		wo.UserID, result.Award.FinalXP, len(result.NewRecords), len(result.UnlockedAchievements),
	)

	resultJson, err := json.Marshal(result)
	if err != nil {
		log.Errorf("failed to marshal workout completion result: %s", err)
		http.Error(w, "error, failed to complete workout", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resultJson, http.StatusCreated)
}

func (handler *Handler) HandleManualWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.rpg.manualworkout")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var m workout.ManualWorkout
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		log.Errorf("manual workout, unmarshal json params: %s", err)
		http.Error(w, "manual workout failed", http.StatusBadRequest)
		return
	}

	if m.UserID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}

	result, err := handler.pipeline.SubmitManualWorkout(ctx, m)
	if err != nil {
		switch {
		case errors.Is(err, workout.ErrManualPhotoRequired),
			errors.Is(err, workout.ErrManualTooOld):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, workout.ErrManualAlreadyToday):
			http.Error(w, err.Error(), http.StatusConflict)
		case errors.Is(err, progression.ErrProfileNotFound):
			http.Error(w, "profile not found", http.StatusNotFound)
		default:
			log.Errorf("failed to submit manual workout for user %s: %s", m.UserID, err)
			http.Error(w, "error, failed to submit manual workout", http.StatusInternalServerError)
		}
		return
	}

	resultJson, err := json.Marshal(result)
	if err != nil {
		log.Errorf("failed to marshal manual workout result: %s", err)
		http.Error(w, "error, failed to submit manual workout", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resultJson, http.StatusCreated)
}

func (handler *Handler) HandleGetProgression(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.rpg.progression")
	defer span.End()

	id := userID(r)
	if id == "" {
		http.Error(w, "error, user empty", http.StatusBadRequest)
		return
	}

	profile, err := handler.profiles.Get(ctx, id)
	if err != nil {
		if errors.Is(err, progression.ErrProfileNotFound) {
			http.Error(w, "profile not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get profile %s: %s", id, err)
		http.Error(w, "failed to get progression", http.StatusInternalServerError)
		return
	}

	resp := ProgressionResponse{
		Profile: profile,
		Rank:    achievements.RankForPoints(profile.AchievementPoints),
		DailyXP: profile.DailyXPFor(handler.now()),
	}
	if profile.Level < xp.MaxLevel {
		resp.XPForNextLevel = xp.XPForLevel(profile.Level+1) - profile.TotalXP
	}

	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("failed to marshal progression: %s", err)
		http.Error(w, "failed to get progression", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleListAchievements(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.rpg.achievements")
	defer span.End()

	id := userID(r)
	if id == "" {
		http.Error(w, "error, user empty", http.StatusBadRequest)
		return
	}

	unlocks, err := handler.unlocks.ListForUser(ctx, id)
	if err != nil {
		log.Errorf("failed to list achievements for %s: %s", id, err)
		http.Error(w, "failed to get achievements", http.StatusInternalServerError)
		return
	}
	progressEntries, err := handler.progress.ProgressForUser(ctx, id)
	if err != nil {
		log.Errorf("failed to get achievement progress for %s: %s", id, err)
		http.Error(w, "failed to get achievements", http.StatusInternalServerError)
		return
	}

	unlockedAt := make(map[string]time.Time, len(unlocks))
	for _, u := range unlocks {
		unlockedAt[u.AchievementID] = u.AchievedAt
	}
	currentValues := make(map[string]int, len(progressEntries))
	for _, p := range progressEntries {
		currentValues[p.AchievementID] = p.CurrentValue
	}

	views := make([]AchievementView, 0, len(achievements.Catalog()))
	for _, achievement := range achievements.Catalog() {
		view := AchievementView{
			Achievement:  achievement,
			CurrentValue: currentValues[achievement.ID],
		}
		if at, ok := unlockedAt[achievement.ID]; ok {
			view.Unlocked = true
			achievedAt := at
			view.AchievedAt = &achievedAt
			view.CurrentValue = achievement.Target
		}
		views = append(views, view)
	}

	viewsJson, err := json.Marshal(views)
	if err != nil {
		log.Errorf("failed to marshal achievements: %s", err)
		http.Error(w, "failed to get achievements", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, viewsJson, http.StatusOK)
}

func (handler *Handler) HandleAchievementStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.rpg.achievementstats")
	defer span.End()

	id := userID(r)
	if id == "" {
		http.Error(w, "error, user empty", http.StatusBadRequest)
		return
	}

	profile, err := handler.profiles.Get(ctx, id)
	if err != nil {
		if errors.Is(err, progression.ErrProfileNotFound) {
			http.Error(w, "profile not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get profile %s: %s", id, err)
		http.Error(w, "failed to get achievement stats", http.StatusInternalServerError)
		return
	}
	unlocks, err := handler.unlocks.ListForUser(ctx, id)
	if err != nil {
		log.Errorf("failed to list achievements for %s: %s", id, err)
		http.Error(w, "failed to get achievement stats", http.StatusInternalServerError)
		return
	}

	statsJson, err := json.Marshal(achievements.BuildStats(len(unlocks), profile.AchievementPoints))
	if err != nil {
		log.Errorf("failed to marshal achievement stats: %s", err)
		http.Error(w, "failed to get achievement stats", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, statsJson, http.StatusOK)
}

func (handler *Handler) HandleListRecords(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.rpg.records")
	defer span.End()

	id := userID(r)
	if id == "" {
		http.Error(w, "error, user empty", http.StatusBadRequest)
		return
	}

	recordsList, err := handler.records.ListForUser(ctx, id)
	if err != nil {
		log.Errorf("failed to list records for %s: %s", id, err)
		http.Error(w, "failed to get records", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(RecordsListResponse{
		Records: recordsList,
		Total:   len(recordsList),
	})
	if err != nil {
		log.Errorf("failed to marshal records: %s", err)
		http.Error(w, "failed to get records", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleExerciseHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.rpg.exercisehistory")
	defer span.End()

	id := userID(r)
	if id == "" {
		http.Error(w, "error, user empty", http.StatusBadRequest)
		return
	}

	vars := mux.Vars(r)
	exerciseID := vars["id"]
	if exerciseID == "" {
		http.Error(w, "error, exercise id empty", http.StatusBadRequest)
		return
	}

	entries, err := handler.history.ExerciseHistory(ctx, id, exerciseID)
	if err != nil {
		log.Errorf("failed to get exercise history [%s] for %s: %s", exerciseID, id, err)
		http.Error(w, "failed to get exercise history", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(ExerciseHistoryResponse{
		ExerciseID: exerciseID,
		Entries:    entries,
	})
	if err != nil {
		log.Errorf("failed to marshal exercise history: %s", err)
		http.Error(w, "failed to get exercise history", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandlePowerDayAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.rpg.powerday")
	defer span.End()

	id := userID(r)
	if id == "" {
		http.Error(w, "error, user empty", http.StatusBadRequest)
		return
	}

	availability, err := handler.powerDays.CheckAvailability(ctx, id, handler.now())
	if err != nil {
		log.Errorf("failed to check power day availability for %s: %s", id, err)
		http.Error(w, "failed to check power day availability", http.StatusInternalServerError)
		return
	}

	availabilityJson, err := json.Marshal(availability)
	if err != nil {
		log.Errorf("failed to marshal power day availability: %s", err)
		http.Error(w, "failed to check power day availability", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, availabilityJson, http.StatusOK)
}

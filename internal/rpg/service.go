package rpg

import (
	"context"
	"fmt"
	"time"

	"github.com/treinorpg/backend/internal/rpg/achievements"
	"github.com/treinorpg/backend/internal/rpg/classes"
	"github.com/treinorpg/backend/internal/rpg/notify"
	"github.com/treinorpg/backend/internal/rpg/progression"
	"github.com/treinorpg/backend/internal/rpg/records"
	"github.com/treinorpg/backend/internal/rpg/workout"
	"github.com/treinorpg/backend/internal/rpg/xp"
	"github.com/treinorpg/backend/internal/telemetry/metrics"
	"github.com/treinorpg/backend/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=rpg_test

type workoutRepo interface {
	Add(ctx context.Context, w workout.Workout) error
	AddManual(ctx context.Context, m workout.ManualWorkout) error
	HasManualOnDay(ctx context.Context, userID string, day time.Time) (bool, error)
}

type profileRepo interface {
	Get(ctx context.Context, userID string) (*progression.Profile, error)
}

type recordDetector interface {
	CheckForPersonalRecords(ctx context.Context, userID string, w *workout.Workout, now time.Time) ([]records.PersonalRecord, error)
}

type recordRepo interface {
	// Record persists the record and returns the user's new record count.
	Record(ctx context.Context, rec records.PersonalRecord) (int, error)
	CountForUser(ctx context.Context, userID string) (int, error)
}

type xpEngine interface {
	AwardWorkoutXP(ctx context.Context, profile *progression.Profile, w *workout.Workout, hasPR bool) (*xp.AwardResult, error)
	AwardManualXP(ctx context.Context, profile *progression.Profile, activityType string) (*xp.AwardResult, error)
}

type achievementEvaluator interface {
	CheckAchievements(ctx context.Context, userID string, counters achievements.Counters, now time.Time) ([]achievements.Achievement, error)
}

type progressTracker interface {
	SyncCounters(ctx context.Context, userID string, counters achievements.Counters) error
}

type eventNotifier interface {
	Notify(ctx context.Context, event notify.Event)
}

type historyInvalidator interface {
	Invalidate(userID string, exerciseIDs []string)
}

// classPerkStore persists the per-class side effects of a qualifying
// activity.
type classPerkStore interface {
	GrantStreakShield(ctx context.Context, userID string, expiresAt time.Time) error
	AddGuildContribution(ctx context.Context, userID string, amount int) error
}

// WorkoutCompletionResult is everything a single completed workout
// produced, returned to the app in one response.
type WorkoutCompletionResult struct {
	Award                *xp.AwardResult            `json:"award"`
	NewRecords           []records.PersonalRecord   `json:"newRecords,omitempty"`
	UnlockedAchievements []achievements.Achievement `json:"unlockedAchievements,omitempty"`
}

// ManualWorkoutResult mirrors WorkoutCompletionResult for manual
// activity submissions.
type ManualWorkoutResult struct {
	Award                *xp.AwardResult            `json:"award"`
	UnlockedAchievements []achievements.Achievement `json:"unlockedAchievements,omitempty"`
}

// Service runs the workout completion pipeline: record detection, then
// the XP award, then achievement evaluation, in that order. Records
// found in the workout feed the class bonuses of the same award, and
// achievements see the counters as they stand after the award.
type Service struct {
	workouts       workoutRepo
	profiles       profileRepo
	detector       recordDetector
	recordsRepo    recordRepo
	engine         xpEngine
	evaluator      achievementEvaluator
	tracker        progressTracker
	notifier       eventNotifier
	history        historyInvalidator
	perks          classPerkStore
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewService(
	workouts workoutRepo,
	profiles profileRepo,
	detector recordDetector,
	recordsRepo recordRepo,
	engine xpEngine,
	evaluator achievementEvaluator,
	tracker progressTracker,
	notifier eventNotifier,
	history historyInvalidator,
	perks classPerkStore,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		workouts:       workouts,
		profiles:       profiles,
		detector:       detector,
		recordsRepo:    recordsRepo,
		engine:         engine,
		evaluator:      evaluator,
		tracker:        tracker,
		notifier:       notifier,
		history:        history,
		perks:          perks,
		metricsManager: metricsManager,
		now:            time.Now,
	}
}

// WithClock replaces the service clock, tests use it.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// CompleteWorkout processes one finished structured workout end to end.
func (s *Service) CompleteWorkout(ctx context.Context, w workout.Workout) (_ *WorkoutCompletionResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "rpg.completeworkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("user.id", w.UserID),
		attribute.Int("workout.exercises", len(w.Exercises)),
	)

	w.Normalize()
	now := s.now()
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	if w.CompletedAt.IsZero() {
		w.CompletedAt = now
	}

	profile, err := s.profiles.Get(ctx, w.UserID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	if err := s.workouts.Add(ctx, w); err != nil {
		return nil, fmt.Errorf("store workout: %w", err)
	}

	newRecords, recordsCount, err := s.processRecords(ctx, &w, now)
	if err != nil {
		return nil, err
	}

	awardRes, err := s.engine.AwardWorkoutXP(ctx, profile, &w, len(newRecords) > 0)
	if err != nil {
		return nil, fmt.Errorf("award workout xp: %w", err)
	}

	counters := achievements.Counters{
		WorkoutsCount: profile.WorkoutsCount + 1,
		Streak:        awardRes.NewStreak,
		RecordsCount:  recordsCount,
		TotalXP:       awardRes.NewTotalXP,
		Level:         awardRes.NewLevel,
		ManualCount:   profile.ManualWorkoutsCount,
	}
	unlocked, err := s.evaluateAchievements(ctx, w.UserID, counters, now)
	if err != nil {
		return nil, err
	}

	s.applyClassPerks(ctx, profile, len(w.CategoryCounts()), now)
	s.invalidateHistory(&w)
	s.emitWorkoutEvents(ctx, w.UserID, awardRes, newRecords, unlocked, now)
	s.recordWorkoutMetrics(awardRes, len(newRecords), len(unlocked), false)

	return &WorkoutCompletionResult{
		Award:                awardRes,
		NewRecords:           newRecords,
		UnlockedAchievements: unlocked,
	}, nil
}

// SubmitManualWorkout validates and awards a free-form activity. One
// manual workout per calendar day, the second submission of the day is
// rejected before any XP math runs.
func (s *Service) SubmitManualWorkout(ctx context.Context, m workout.ManualWorkout) (_ *ManualWorkoutResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "rpg.submitmanual")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", m.UserID))

	now := s.now()
	if err := m.Validate(now); err != nil {
		return nil, err
	}

	alreadyToday, err := s.workouts.HasManualOnDay(ctx, m.UserID, now)
	if err != nil {
		return nil, fmt.Errorf("check manual workout for today: %w", err)
	}
	if alreadyToday {
		return nil, workout.ErrManualAlreadyToday
	}

	profile, err := s.profiles.Get(ctx, m.UserID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	awardRes, err := s.engine.AwardManualXP(ctx, profile, m.ActivityType)
	if err != nil {
		return nil, fmt.Errorf("award manual xp: %w", err)
	}

	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	m.XPAwarded = awardRes.FinalXP
	m.IsPowerDay = awardRes.PowerDayActive
	m.CreatedAt = now
	if err := s.workouts.AddManual(ctx, m); err != nil {
		return nil, fmt.Errorf("store manual workout: %w", err)
	}

	recordsCount, err := s.recordsRepo.CountForUser(ctx, m.UserID)
	if err != nil {
		return nil, fmt.Errorf("count records: %w", err)
	}

	counters := achievements.Counters{
		WorkoutsCount: profile.WorkoutsCount,
		Streak:        awardRes.NewStreak,
		RecordsCount:  recordsCount,
		TotalXP:       awardRes.NewTotalXP,
		Level:         awardRes.NewLevel,
		ManualCount:   profile.ManualWorkoutsCount + 1,
	}
	unlocked, err := s.evaluateAchievements(ctx, m.UserID, counters, now)
	if err != nil {
		return nil, err
	}

	s.applyClassPerks(ctx, profile, 1, now)
	s.emitAwardEvents(ctx, m.UserID, awardRes, unlocked, now)
	s.recordWorkoutMetrics(awardRes, 0, len(unlocked), true)

	return &ManualWorkoutResult{
		Award:                awardRes,
		UnlockedAchievements: unlocked,
	}, nil
}

func (s *Service) processRecords(
	ctx context.Context,
	w *workout.Workout,
	now time.Time,
) (_ []records.PersonalRecord, recordsCount int, err error) {
	newRecords, err := s.detector.CheckForPersonalRecords(ctx, w.UserID, w, now)
	if err != nil {
		return nil, 0, fmt.Errorf("check personal records: %w", err)
	}

	if len(newRecords) == 0 {
		count, err := s.recordsRepo.CountForUser(ctx, w.UserID)
		if err != nil {
			return nil, 0, fmt.Errorf("count records: %w", err)
		}
		return nil, count, nil
	}

	for _, rec := range newRecords {
		count, err := s.recordsRepo.Record(ctx, rec)
		if err != nil {
			return nil, 0, fmt.Errorf("store record for %s: %w", rec.ExerciseID, err)
		}
		recordsCount = count
	}
	return newRecords, recordsCount, nil
}

func (s *Service) evaluateAchievements(
	ctx context.Context,
	userID string,
	counters achievements.Counters,
	now time.Time,
) ([]achievements.Achievement, error) {
	if err := s.tracker.SyncCounters(ctx, userID, counters); err != nil {
		return nil, fmt.Errorf("sync achievement progress: %w", err)
	}
	unlocked, err := s.evaluator.CheckAchievements(ctx, userID, counters, now)
	if err != nil {
		return nil, fmt.Errorf("check achievements: %w", err)
	}
	return unlocked, nil
}

// streakShieldWindow covers the day of the activity plus one missed day,
// so a Bruxo's shield armed today still holds tomorrow.
const streakShieldWindow = 48 * time.Hour

// applyClassPerks persists the per-class side effects of a qualifying
// activity: a Bruxo re-arms the streak shield, a Paladino's guild
// contribution grows with the activity's variety. A failure here does
// not undo the already persisted award, the perk catches up on the next
// activity.
func (s *Service) applyClassPerks(ctx context.Context, profile *progression.Profile, contribution int, now time.Time) {
	if s.perks == nil {
		return
	}
	switch profile.Class {
	case classes.ClassBruxo:
		if err := s.perks.GrantStreakShield(ctx, profile.UserID, now.Add(streakShieldWindow)); err != nil {
			log.Warnf("grant streak shield for %s: %s", profile.UserID, err)
		}
	case classes.ClassPaladino:
		if contribution < 1 {
			contribution = 1
		}
		if err := s.perks.AddGuildContribution(ctx, profile.UserID, contribution); err != nil {
			log.Warnf("add guild contribution for %s: %s", profile.UserID, err)
		}
	}
}

func (s *Service) invalidateHistory(w *workout.Workout) {
	if s.history == nil {
		return
	}
	exerciseIDs := make([]string, 0, len(w.Exercises))
	for _, ex := range w.Exercises {
		if ex.ExerciseID != "" {
			exerciseIDs = append(exerciseIDs, ex.ExerciseID)
		}
	}
	s.history.Invalidate(w.UserID, exerciseIDs)
}

func (s *Service) emitWorkoutEvents(
	ctx context.Context,
	userID string,
	awardRes *xp.AwardResult,
	newRecords []records.PersonalRecord,
	unlocked []achievements.Achievement,
	now time.Time,
) {
	for _, rec := range newRecords {
		s.notifier.Notify(ctx, notify.Event{
			Type:   notify.EventPersonalRecordSet,
			UserID: userID,
			At:     now,
			Payload: map[string]any{
				"exerciseId":       rec.ExerciseID,
				"weight":           rec.Weight,
				"previousWeight":   rec.PreviousWeight,
				"majorImprovement": rec.MajorImprovement(),
			},
		})
	}
	s.emitAwardEvents(ctx, userID, awardRes, unlocked, now)
}

func (s *Service) emitAwardEvents(
	ctx context.Context,
	userID string,
	awardRes *xp.AwardResult,
	unlocked []achievements.Achievement,
	now time.Time,
) {
	if s.notifier == nil {
		return
	}
	if awardRes.PowerDayActive {
		s.notifier.Notify(ctx, notify.Event{
			Type:   notify.EventPowerDayTriggered,
			UserID: userID,
			At:     now,
			Payload: map[string]any{
				"activeCap": awardRes.ActiveCap,
			},
		})
	}
	if awardRes.LeveledUp {
		s.notifier.Notify(ctx, notify.Event{
			Type:   notify.EventLevelUp,
			UserID: userID,
			At:     now,
			Payload: map[string]any{
				"level": awardRes.NewLevel,
			},
		})
	}
	for _, achievement := range unlocked {
		s.notifier.Notify(ctx, notify.Event{
			Type:   notify.EventAchievementUnlocked,
			UserID: userID,
			At:     now,
			Payload: map[string]any{
				"achievementId": achievement.ID,
				"name":          achievement.Name,
				"points":        achievement.Points,
			},
		})
	}
}

func (s *Service) recordWorkoutMetrics(awardRes *xp.AwardResult, newRecords, unlocked int, manual bool) {
	if s.metricsManager == nil {
		return
	}
	if manual {
		s.metricsManager.CounterManualWorkouts.Inc()
	} else {
		s.metricsManager.CounterWorkoutsCompleted.Inc()
		s.metricsManager.HistXPPerWorkout.Observe(float64(awardRes.FinalXP))
	}
	s.metricsManager.CounterXPAwarded.Add(float64(awardRes.FinalXP))
	if newRecords > 0 {
		s.metricsManager.CounterPersonalRecords.Add(float64(newRecords))
	}
	if unlocked > 0 {
		s.metricsManager.CounterAchievementsUnlocked.Add(float64(unlocked))
	}
	if awardRes.PowerDayActive {
		s.metricsManager.CounterPowerDaysUsed.Inc()
	}
	log.Tracef("workout metrics recorded: xp %d, records %d, achievements %d", awardRes.FinalXP, newRecords, unlocked)
}

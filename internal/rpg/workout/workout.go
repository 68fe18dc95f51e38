package workout

import (
	"time"

	"github.com/treinorpg/backend/internal/rpg/classify"
)

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Multiplier returns the XP multiplier for the difficulty tier. Unknown
// values fall back to the beginner multiplier.
func (d Difficulty) Multiplier() float64 {
	switch d {
	case DifficultyIntermediate:
		return 1.1
	case DifficultyAdvanced:
		return 1.2
	default:
		return 1.0
	}
}

type Set struct {
	Weight    float64 `json:"weight"`
	Reps      int     `json:"reps"`
	Completed bool    `json:"completed"`
}

type ExercisePerformance struct {
	ExerciseID string            `json:"exerciseId"`
	Name       string            `json:"name"`
	Type       string            `json:"type,omitempty"`
	Category   classify.Category `json:"category,omitempty"`
	Sets       []Set             `json:"sets"`
}

// MaxWeight returns the heaviest weight lifted across the exercise sets,
// or 0 when no set carries a positive weight.
func (e ExercisePerformance) MaxWeight() float64 {
	var maxWeight float64
	for _, s := range e.Sets {
		if s.Weight > maxWeight {
			maxWeight = s.Weight
		}
	}
	return maxWeight
}

type Workout struct {
	ID              string                `json:"id"`
	UserID          string                `json:"userId"`
	Exercises       []ExercisePerformance `json:"exercises"`
	DurationSeconds int                   `json:"durationSeconds"`
	Difficulty      Difficulty            `json:"difficulty"`
	CompletedAt     time.Time             `json:"completedAt"`
}

// Normalize coerces invalid numeric input to 0 and derives the category
// for every exercise that arrived without one.
func (w *Workout) Normalize() {
	if w.DurationSeconds < 0 {
		w.DurationSeconds = 0
	}
	for i := range w.Exercises {
		ex := &w.Exercises[i]
		if ex.Category == "" {
			ex.Category = classify.Classify(ex.Type, ex.Name)
		}
		for j := range ex.Sets {
			if ex.Sets[j].Weight < 0 {
				ex.Sets[j].Weight = 0
			}
			if ex.Sets[j].Reps < 0 {
				ex.Sets[j].Reps = 0
			}
		}
	}
}

// CategoryCounts returns how many exercises fall into each category.
func (w *Workout) CategoryCounts() map[classify.Category]int {
	counts := make(map[classify.Category]int, len(classify.Categories))
	for _, ex := range w.Exercises {
		counts[ex.Category]++
	}
	return counts
}

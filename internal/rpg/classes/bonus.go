package classes

import (
	"math"

	"github.com/treinorpg/backend/internal/rpg/classify"
	"github.com/treinorpg/backend/internal/rpg/workout"
)

// Skill names are user-facing, they reach the bonus breakdown shown in
// the app.
const (
	SkillForcaBruta      = "Força Bruta"
	SkillSaindoDaJaula   = "Saindo da Jaula"
	SkillForcaInterior   = "Força Interior"
	SkillDiscipuloDoMonge = "Discípulo do Monge"
	SkillForrestGump     = "Forrest Gump"
	SkillHiitAndRun      = "HIIT & Run"
	SkillFluxoArcano     = "Fluxo Arcano"
	SkillCaminhoDoHeroi  = "Caminho do Herói"
)

const (
	mongeStreakThreshold   = 3
	ninjaShortWorkoutLimit = 45 * 60 // seconds
)

// SkillBonus is one passive skill that fired during bonus calculation.
type SkillBonus struct {
	Skill      string  `json:"skill"`
	Multiplier float64 `json:"multiplier"`
	BonusXP    int     `json:"bonusXP"`
}

// BonusResult holds the total class bonus and the per-skill breakdown.
// The breakdown entries always sum to BonusXP.
type BonusResult struct {
	BonusXP   int          `json:"bonusXP"`
	Breakdown []SkillBonus `json:"breakdown"`
}

// BonusContext carries the workout facts the passive skills read.
type BonusContext struct {
	Workout *workout.Workout
	Streak  int
	HasPR   bool
	// GuildMultiplier scales Paladino's variety bonus, in [1.0, 1.3].
	// Callers without guild state pass 1.0.
	GuildMultiplier float64
}

// BonusCalculator computes the class bonus XP for a completed workout.
// Each class variant holds its own rules; selection happens once via
// ForClass, never by string dispatch per calculation.
type BonusCalculator interface {
	ApplyBonuses(baseXP int, bctx BonusContext) BonusResult
}

var calculators = map[Class]BonusCalculator{
	ClassNone:      noBonus{},
	ClassGuerreiro: guerreiroBonus{},
	ClassMonge:     mongeBonus{},
	ClassNinja:     ninjaBonus{},
	ClassBruxo:     bruxoBonus{},
	ClassPaladino:  paladinoBonus{},
}

// ForClass returns the bonus calculator for the given class. Unknown
// classes get the no-op calculator.
func ForClass(c Class) BonusCalculator {
	if calc, ok := calculators[c]; ok {
		return calc
	}
	return noBonus{}
}

func skillBonus(name string, baseXP int, multiplier float64) SkillBonus {
	return SkillBonus{
		Skill:      name,
		Multiplier: multiplier,
		BonusXP:    int(math.Round(float64(baseXP) * multiplier)),
	}
}

func resultOf(skills ...SkillBonus) BonusResult {
	var res BonusResult
	for _, s := range skills {
		if s.Multiplier <= 0 {
			continue
		}
		res.BonusXP += s.BonusXP
		res.Breakdown = append(res.Breakdown, s)
	}
	return res
}

func categoryRatio(w *workout.Workout, cats ...classify.Category) float64 {
	total := len(w.Exercises)
	if total == 0 {
		return 0
	}
	counts := w.CategoryCounts()
	matched := 0
	for _, c := range cats {
		matched += counts[c]
	}
	return float64(matched) / float64(total)
}

type noBonus struct{}

func (noBonus) ApplyBonuses(int, BonusContext) BonusResult {
	return BonusResult{}
}

type guerreiroBonus struct{}

func (guerreiroBonus) ApplyBonuses(baseXP int, bctx BonusContext) BonusResult {
	skills := []SkillBonus{
		skillBonus(SkillForcaBruta, baseXP,
			0.20*categoryRatio(bctx.Workout, classify.Compound, classify.Strength)),
	}
	if bctx.HasPR {
		skills = append(skills, skillBonus(SkillSaindoDaJaula, baseXP, 0.10))
	}
	return resultOf(skills...)
}

type mongeBonus struct{}

func (mongeBonus) ApplyBonuses(baseXP int, bctx BonusContext) BonusResult {
	skills := []SkillBonus{
		skillBonus(SkillForcaInterior, baseXP,
			0.20*categoryRatio(bctx.Workout, classify.Bodyweight)),
	}
	if bctx.Streak >= mongeStreakThreshold {
		skills = append(skills, skillBonus(SkillDiscipuloDoMonge, baseXP, 0.10))
	}
	return resultOf(skills...)
}

type ninjaBonus struct{}

func (ninjaBonus) ApplyBonuses(baseXP int, bctx BonusContext) BonusResult {
	skills := []SkillBonus{
		skillBonus(SkillForrestGump, baseXP,
			0.20*categoryRatio(bctx.Workout, classify.Cardio)),
	}
	if bctx.Workout.DurationSeconds > 0 && bctx.Workout.DurationSeconds < ninjaShortWorkoutLimit {
		skills = append(skills, skillBonus(SkillHiitAndRun, baseXP, 0.15))
	}
	return resultOf(skills...)
}

type bruxoBonus struct{}

func (bruxoBonus) ApplyBonuses(baseXP int, bctx BonusContext) BonusResult {
	// Pijama Arcano preserves the streak instead of granting XP, see
	// Class.HasStreakPreservation.
	return resultOf(
		skillBonus(SkillFluxoArcano, baseXP,
			0.40*categoryRatio(bctx.Workout, classify.Flexibility, classify.Recovery)),
	)
}

type paladinoBonus struct{}

func (paladinoBonus) ApplyBonuses(baseXP int, bctx BonusContext) BonusResult {
	distinct := 0
	for _, count := range bctx.Workout.CategoryCounts() {
		if count > 0 {
			distinct++
		}
	}
	multiplier := 0.10 * float64(distinct)
	if multiplier > 0.40 {
		multiplier = 0.40
	}

	guild := bctx.GuildMultiplier
	if guild < 1.0 {
		guild = 1.0
	}
	if guild > 1.3 {
		guild = 1.3
	}

	return resultOf(skillBonus(SkillCaminhoDoHeroi, baseXP, multiplier*guild))
}

// ManualActivityBonus computes the class bonus for a manual activity
// submission. The activity type is classified with the same keyword
// rules as exercise names; a match against the class affinity grants a
// flat bonus, Paladino gets a small bonus for any activity.
func ManualActivityBonus(c Class, baseXP int, activityType string) BonusResult {
	if c == ClassNone {
		return BonusResult{}
	}

	if c == ClassPaladino {
		return resultOf(skillBonus(SkillCaminhoDoHeroi, baseXP, 0.10))
	}

	category := classify.Classify("", activityType)
	for _, affinity := range c.affinity() {
		if category == affinity {
			return resultOf(skillBonus(manualSkillName(c), baseXP, 0.20))
		}
	}
	return BonusResult{}
}

func manualSkillName(c Class) string {
	switch c {
	case ClassGuerreiro:
		return SkillForcaBruta
	case ClassMonge:
		return SkillForcaInterior
	case ClassNinja:
		return SkillForrestGump
	case ClassBruxo:
		return SkillFluxoArcano
	default:
		return ""
	}
}

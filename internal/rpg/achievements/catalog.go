package achievements

// RequirementType names the profile counter an achievement checks.
type RequirementType string

const (
	ReqWorkoutCount RequirementType = "workout_count"
	ReqStreak       RequirementType = "streak"
	ReqRecordCount  RequirementType = "record_count"
	ReqTotalXP      RequirementType = "total_xp"
	ReqLevel        RequirementType = "level"
	ReqManualCount  RequirementType = "manual_count"
)

// Achievement is a static catalog entry. The catalog is immutable and
// loaded once at process start.
type Achievement struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Rank        Rank            `json:"rank"`
	Points      int             `json:"points"`
	XPReward    int             `json:"xpReward"`
	Requirement RequirementType `json:"requirementType"`
	Target      int             `json:"requirementValue"`
}

var catalog = []Achievement{
	{ID: "first-workout", Name: "Primeiro Treino", Category: "workouts", Rank: RankE, Points: 10, XPReward: 50, Requirement: ReqWorkoutCount, Target: 1},
	{ID: "workout-5", Name: "Pegando o Ritmo", Category: "workouts", Rank: RankE, Points: 10, XPReward: 50, Requirement: ReqWorkoutCount, Target: 5},
	{ID: "workout-10", Name: "Frequentador", Category: "workouts", Rank: RankD, Points: 20, XPReward: 100, Requirement: ReqWorkoutCount, Target: 10},
	{ID: "workout-25", Name: "Rato de Academia", Category: "workouts", Rank: RankC, Points: 40, XPReward: 150, Requirement: ReqWorkoutCount, Target: 25},
	{ID: "workout-50", Name: "Veterano", Category: "workouts", Rank: RankB, Points: 80, XPReward: 250, Requirement: ReqWorkoutCount, Target: 50},
	{ID: "workout-100", Name: "Centuriao", Category: "workouts", Rank: RankA, Points: 150, XPReward: 500, Requirement: ReqWorkoutCount, Target: 100},

	{ID: "streak-7", Name: "Semana Perfeita", Category: "streak", Rank: RankE, Points: 10, XPReward: 75, Requirement: ReqStreak, Target: 7},
	{ID: "streak-14", Name: "Quinzena de Ferro", Category: "streak", Rank: RankD, Points: 25, XPReward: 125, Requirement: ReqStreak, Target: 14},
	{ID: "streak-30", Name: "Mes Imparavel", Category: "streak", Rank: RankC, Points: 50, XPReward: 200, Requirement: ReqStreak, Target: 30},
	{ID: "streak-60", Name: "Disciplina Total", Category: "streak", Rank: RankB, Points: 100, XPReward: 350, Requirement: ReqStreak, Target: 60},
	{ID: "streak-100", Name: "Lenda Viva", Category: "streak", Rank: RankS, Points: 200, XPReward: 600, Requirement: ReqStreak, Target: 100},

	{ID: "pr-1", Name: "Primeiro Recorde", Category: "records", Rank: RankE, Points: 10, XPReward: 50, Requirement: ReqRecordCount, Target: 1},
	{ID: "pr-5", Name: "Quebrando Limites", Category: "records", Rank: RankD, Points: 20, XPReward: 100, Requirement: ReqRecordCount, Target: 5},
	{ID: "pr-10", Name: "Mais Forte Que Ontem", Category: "records", Rank: RankC, Points: 40, XPReward: 150, Requirement: ReqRecordCount, Target: 10},
	{ID: "pr-25", Name: "Colecionador de Recordes", Category: "records", Rank: RankB, Points: 80, XPReward: 250, Requirement: ReqRecordCount, Target: 25},
	{ID: "pr-50", Name: "Recordista", Category: "records", Rank: RankA, Points: 150, XPReward: 500, Requirement: ReqRecordCount, Target: 50},

	{ID: "xp-1000", Name: "Mil Pontos", Category: "xp", Rank: RankE, Points: 10, XPReward: 50, Requirement: ReqTotalXP, Target: 1000},
	{ID: "xp-5000", Name: "Cinco Mil", Category: "xp", Rank: RankD, Points: 25, XPReward: 100, Requirement: ReqTotalXP, Target: 5000},
	{ID: "xp-10000", Name: "Dez Mil", Category: "xp", Rank: RankC, Points: 50, XPReward: 200, Requirement: ReqTotalXP, Target: 10000},
	{ID: "xp-50000", Name: "Maratonista do XP", Category: "xp", Rank: RankA, Points: 150, XPReward: 500, Requirement: ReqTotalXP, Target: 50000},

	{ID: "level-10", Name: "Aventureiro", Category: "level", Rank: RankD, Points: 20, XPReward: 0, Requirement: ReqLevel, Target: 10},
	{ID: "level-25", Name: "Heroi Local", Category: "level", Rank: RankC, Points: 50, XPReward: 0, Requirement: ReqLevel, Target: 25},
	{ID: "level-50", Name: "Campeao", Category: "level", Rank: RankB, Points: 100, XPReward: 0, Requirement: ReqLevel, Target: 50},
	{ID: "level-99", Name: "Nivel Maximo", Category: "level", Rank: RankS, Points: 250, XPReward: 0, Requirement: ReqLevel, Target: 99},

	{ID: "manual-1", Name: "Fora da Academia", Category: "manual", Rank: RankE, Points: 10, XPReward: 50, Requirement: ReqManualCount, Target: 1},
	{ID: "manual-10", Name: "Atleta Completo", Category: "manual", Rank: RankC, Points: 40, XPReward: 150, Requirement: ReqManualCount, Target: 10},
}

var catalogByID = func() map[string]Achievement {
	byID := make(map[string]Achievement, len(catalog))
	for _, a := range catalog {
		byID[a.ID] = a
	}
	return byID
}()

// Catalog returns the full achievement catalog.
func Catalog() []Achievement {
	return catalog
}

// ByID looks up a catalog entry.
func ByID(id string) (Achievement, bool) {
	a, ok := catalogByID[id]
	return a, ok
}

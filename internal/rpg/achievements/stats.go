package achievements

// Stats is the per-user achievement summary served to the app.
type Stats struct {
	TotalAchievements int  `json:"totalAchievements"`
	Unlocked          int  `json:"unlocked"`
	Points            int  `json:"points"`
	Rank              Rank `json:"rank"`
	NextRank          Rank `json:"nextRank,omitempty"`
	PointsToNextRank  int  `json:"pointsToNextRank,omitempty"`
}

// BuildStats derives the summary from the unlocked count and the point
// total. At rank S the next-rank fields stay empty.
func BuildStats(unlockedCount, points int) Stats {
	stats := Stats{
		TotalAchievements: len(Catalog()),
		Unlocked:          unlockedCount,
		Points:            points,
		Rank:              RankForPoints(points),
	}
	if nextRank, missing, ok := NextRank(points); ok {
		stats.NextRank = nextRank
		stats.PointsToNextRank = missing
	}
	return stats
}

package achievements

// Rank is a tier label derived from cumulative achievement points.
type Rank string

const (
	RankUnranked Rank = "Unranked"
	RankE        Rank = "E"
	RankD        Rank = "D"
	RankC        Rank = "C"
	RankB        Rank = "B"
	RankA        Rank = "A"
	RankS        Rank = "S"
)

type rankThreshold struct {
	rank   Rank
	points int
}

// descending ladder, S is terminal
var rankLadder = []rankThreshold{
	{RankS, 1000},
	{RankA, 500},
	{RankB, 250},
	{RankC, 100},
	{RankD, 50},
	{RankE, 10},
}

// RankForPoints maps cumulative achievement points to the rank tier.
// Pure and monotonic.
func RankForPoints(points int) Rank {
	for _, t := range rankLadder {
		if points >= t.points {
			return t.rank
		}
	}
	return RankUnranked
}

// NextRank returns the next rank above the current point total and how
// many points are missing. The second return is false at rank S, there
// is nothing above it.
func NextRank(points int) (Rank, int, bool) {
	for i := len(rankLadder) - 1; i >= 0; i-- {
		if points < rankLadder[i].points {
			return rankLadder[i].rank, rankLadder[i].points - points, true
		}
	}
	return "", 0, false
}

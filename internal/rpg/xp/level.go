package xp

const MaxLevel = 99

// XPForLevel returns the cumulative XP needed to reach the given level.
// The curve is quadratic and monotonic: 0, 100, 300, 600, ...
func XPForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	return 50 * level * (level - 1)
}

// LevelForXP derives the level from total XP, capped at MaxLevel.
func LevelForXP(totalXP int) int {
	level := 1
	for level < MaxLevel && totalXP >= XPForLevel(level+1) {
		level++
	}
	return level
}

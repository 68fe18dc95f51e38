package progression

import (
	"time"

	"github.com/treinorpg/backend/internal/rpg/classes"
)

// Profile is the per-user progression state the rules engine reads and
// writes.
type Profile struct {
	UserID                string        `json:"userId"`
	Class                 classes.Class `json:"class"`
	TotalXP               int           `json:"totalXP"`
	Level                 int           `json:"level"`
	Streak                int           `json:"streak"`
	LastActivityAt        *time.Time    `json:"lastActivityAt,omitempty"`
	DailyXP               int           `json:"dailyXP"`
	DailyXPDate           *time.Time    `json:"dailyXPDate,omitempty"`
	AchievementPoints     int           `json:"achievementPoints"`
	WorkoutsCount         int           `json:"workoutsCount"`
	ManualWorkoutsCount   int           `json:"manualWorkoutsCount"`
	GuildContribution     int           `json:"guildContribution"`
	StreakShieldExpiresAt *time.Time    `json:"streakShieldExpiresAt,omitempty"`
}

// DailyXPFor returns the XP already accumulated on the given calendar
// day. A stored value from a previous day counts as 0, the reset at the
// day boundary is implicit.
func (p *Profile) DailyXPFor(day time.Time) int {
	if p.DailyXPDate == nil {
		return 0
	}
	sameDay := p.DailyXPDate.Year() == day.Year() &&
		p.DailyXPDate.Month() == day.Month() &&
		p.DailyXPDate.Day() == day.Day()
	if !sameDay {
		return 0
	}
	return p.DailyXP
}

// LastActivity returns the last activity time, zero when none yet.
func (p *Profile) LastActivity() time.Time {
	if p.LastActivityAt == nil {
		return time.Time{}
	}
	return *p.LastActivityAt
}

// GuildMultiplier derives Paladino's guild bonus multiplier from the
// cumulative guild contribution, in [1.0, 1.3].
func (p *Profile) GuildMultiplier() float64 {
	multiplier := 1.0 + float64(p.GuildContribution)/1000.0
	if multiplier > 1.3 {
		multiplier = 1.3
	}
	return multiplier
}

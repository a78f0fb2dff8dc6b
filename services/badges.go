package services

import (
	"time"

	"streakkeeper/models"
)

// BadgeDefinition describes an achievement badge. Threshold is a pure
// predicate over the updated profile and full progress history; once a badge
// id is recorded on the profile it is never re-evaluated or revoked.
type BadgeDefinition struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Threshold   func(user models.User, history []models.ProgressEntry) bool `json:"-"`
}

// AllBadges is the fixed badge rule set, evaluated in definition order.
var AllBadges = []BadgeDefinition{
	// Streak badges
	{
		ID:          "streak-starter",
		Name:        "Streak Starter",
		Description: "Achieve a 3-day streak.",
		Icon:        "Flame",
		Threshold: func(user models.User, history []models.ProgressEntry) bool {
			return user.CurrentStreak >= 3
		},
	},
	{
		ID:          "week-warrior",
		Name:        "Week Warrior",
		Description: "Maintain a 7-day streak.",
		Icon:        "Flame",
		Threshold: func(user models.User, history []models.ProgressEntry) bool {
			return user.CurrentStreak >= 7
		},
	},
	{
		ID:          "month-master",
		Name:        "Month Master",
		Description: "Conquer a 30-day streak.",
		Icon:        "Trophy",
		Threshold: func(user models.User, history []models.ProgressEntry) bool {
			return user.CurrentStreak >= 30
		},
	},

	// Level badges
	{
		ID:          "level-novice",
		Name:        "Novice Learner",
		Description: "Reach Level 2.",
		Icon:        "Star",
		Threshold: func(user models.User, history []models.ProgressEntry) bool {
			return user.Level >= 2
		},
	},
	{
		ID:          "level-adept",
		Name:        "Adept Scholar",
		Description: "Reach Level 5.",
		Icon:        "Star",
		Threshold: func(user models.User, history []models.ProgressEntry) bool {
			return user.Level >= 5
		},
	},
	{
		ID:          "level-expert",
		Name:        "Expert Virtuoso",
		Description: "Reach Level 10.",
		Icon:        "Crown",
		Threshold: func(user models.User, history []models.ProgressEntry) bool {
			return user.Level >= 10
		},
	},

	// Progress badges
	{
		ID:          "first-log",
		Name:        "First Step",
		Description: "Log your very first activity.",
		Icon:        "Footprints",
		Threshold: func(user models.User, history []models.ProgressEntry) bool {
			return len(history) >= 1
		},
	},

	// Milestone badges
	{
		ID:          "ten-hours",
		Name:        "Diligent Student",
		Description: "Log a total of 10 hours.",
		Icon:        "Clock",
		Threshold: func(user models.User, history []models.ProgressEntry) bool {
			return totalHours(history) >= 10
		},
	},
	{
		ID:          "fifty-hours",
		Name:        "Time Titan",
		Description: "Log a total of 50 hours.",
		Icon:        "Clock",
		Threshold: func(user models.User, history []models.ProgressEntry) bool {
			return totalHours(history) >= 50
		},
	},

	// Consistency badges
	{
		ID:          "weekend-learner",
		Name:        "Weekend Learner",
		Description: "Log an activity on a Saturday or Sunday.",
		Icon:        "Calendar",
		Threshold: func(user models.User, history []models.ProgressEntry) bool {
			for _, entry := range history {
				date, err := time.Parse(dateLayout, entry.Date)
				if err != nil {
					continue
				}
				if date.Weekday() == time.Saturday || date.Weekday() == time.Sunday {
					return true
				}
			}
			return false
		},
	},
}

// BadgeByID looks up a badge definition for display purposes
func BadgeByID(id string) (BadgeDefinition, bool) {
	for _, badge := range AllBadges {
		if badge.ID == id {
			return badge, true
		}
	}
	return BadgeDefinition{}, false
}

// EvaluateBadges returns the badges the user newly qualifies for, in
// definition order, skipping badges already held.
func EvaluateBadges(user models.User, history []models.ProgressEntry) []BadgeDefinition {
	held := make(map[string]bool, len(user.Badges))
	for _, id := range user.Badges {
		held[id] = true
	}

	var earned []BadgeDefinition
	for _, badge := range AllBadges {
		if held[badge.ID] {
			continue
		}
		if badge.Threshold(user, history) {
			earned = append(earned, badge)
		}
	}
	return earned
}

func totalHours(history []models.ProgressEntry) float64 {
	var total float64
	for _, entry := range history {
		total += entry.Progress
	}
	return total
}

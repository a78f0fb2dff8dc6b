package services

import (
	"math"
	"strings"
	"time"

	"streakkeeper/models"
)

const (
	// XPPerHour is the XP awarded per logged hour
	XPPerHour = 100.0
	// LevelUpXPFactor makes each level cost 1.5x more XP than the last
	LevelUpXPFactor = 1.5
	// MaxLevel caps level-up progression
	MaxLevel = 100
	// MaxDailyHours bounds the merged total for a single calendar day
	MaxDailyHours = 24.0

	dateLayout = "2006-01-02"
)

// XPForLevel returns the total XP required to reach the given level.
// The geometric curve mirrors the level cost doubling-and-a-half per step.
func XPForLevel(level int) float64 {
	if level <= 1 {
		return 0
	}
	return math.Floor(200 * (math.Pow(LevelUpXPFactor, float64(level-1)) - 1))
}

// ProgressSubmission is the user's input for logging today's study time
type ProgressSubmission struct {
	Progress float64
	Activity string
	Subject  string
}

// ProgressResult reports everything a submission changed, for persistence,
// the HTTP response and notification broadcasting.
type ProgressResult struct {
	Profile      models.User
	Entry        models.ProgressEntry
	History      []models.ProgressEntry
	Merged       bool
	LevelsGained int
	NewBadges    []BadgeDefinition
}

// ApplyProgress computes the next profile state for a submission made on the
// given day. It is a pure function of its inputs: history must be sorted by
// date descending, and nothing is persisted here.
//
// Streak transition: first entry ever starts at 1; a same-day resubmission
// merges into today's entry and leaves the streak unchanged; an entry dated
// yesterday extends the streak; any longer gap resets it to 1.
func ApplyProgress(profile models.User, history []models.ProgressEntry, submission ProgressSubmission, today time.Time) ProgressResult {
	todayStr := today.Format(dateLayout)
	yesterdayStr := today.AddDate(0, 0, -1).Format(dateLayout)

	updated := profile
	if updated.Level < 1 {
		updated.Level = 1
	}

	newStreak := updated.CurrentStreak
	merged := false
	if len(history) == 0 {
		newStreak = 1
	} else {
		switch history[0].Date {
		case todayStr:
			merged = true
		case yesterdayStr:
			newStreak++
		default:
			newStreak = 1
		}
	}
	if newStreak < 1 {
		newStreak = 1
	}

	var entry models.ProgressEntry
	updatedHistory := append([]models.ProgressEntry(nil), history...)
	if merged {
		// Same-day resubmission: sum hours, concatenate descriptions
		entry = updatedHistory[0]
		entry.Progress = math.Min(entry.Progress+submission.Progress, MaxDailyHours)
		entry.Activity = mergeActivities(entry.Activity, submission.Activity)
		entry.Subject = submission.Subject
		updatedHistory[0] = entry
	} else {
		entry = models.ProgressEntry{
			UserID:   profile.ID,
			Date:     todayStr,
			Progress: submission.Progress,
			Activity: submission.Activity,
			Subject:  submission.Subject,
		}
		updatedHistory = append([]models.ProgressEntry{entry}, updatedHistory...)
	}

	updated.CurrentStreak = newStreak
	if newStreak > updated.LongestStreak {
		updated.LongestStreak = newStreak
	}

	updated.XP += submission.Progress * XPPerHour
	levelsGained := 0
	for updated.Level < MaxLevel && updated.XP >= XPForLevel(updated.Level+1) {
		updated.Level++
		levelsGained++
	}

	newBadges := EvaluateBadges(updated, updatedHistory)
	for _, badge := range newBadges {
		updated.Badges = append(updated.Badges, badge.ID)
	}

	now := today
	updated.LastActivityDate = &now

	return ProgressResult{
		Profile:      updated,
		Entry:        entry,
		History:      updatedHistory,
		Merged:       merged,
		LevelsGained: levelsGained,
		NewBadges:    newBadges,
	}
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

func mergeActivities(existing, added string) string {
	existing = strings.TrimSpace(existing)
	added = strings.TrimSpace(added)
	if existing == "" {
		return added
	}
	if added == "" || added == existing {
		return existing
	}
	return existing + "; " + added
}

package services

import (
	"testing"
	"time"

	"streakkeeper/models"
)

var testToday = time.Date(2025, 3, 12, 15, 0, 0, 0, time.UTC) // a Wednesday

func dayString(offset int) string {
	return testToday.AddDate(0, 0, offset).Format("2006-01-02")
}

func entryOn(offset int, hours float64, subject string) models.ProgressEntry {
	return models.ProgressEntry{
		Date:     dayString(offset),
		Progress: hours,
		Activity: "practice",
		Subject:  subject,
	}
}

func TestXPForLevel(t *testing.T) {
	if got := XPForLevel(1); got != 0 {
		t.Errorf("XPForLevel(1) = %v, want 0", got)
	}
	if got := XPForLevel(0); got != 0 {
		t.Errorf("XPForLevel(0) = %v, want 0", got)
	}
	if got := XPForLevel(2); got != 100 {
		t.Errorf("XPForLevel(2) = %v, want 100", got)
	}
	if got := XPForLevel(3); got != 250 {
		t.Errorf("XPForLevel(3) = %v, want 250", got)
	}

	// Strictly increasing curve
	for level := 1; level < MaxLevel; level++ {
		if XPForLevel(level+1) <= XPForLevel(level) {
			t.Fatalf("XP curve not strictly increasing at level %d", level)
		}
	}
}

func TestApplyProgressFirstEntry(t *testing.T) {
	profile := models.User{}
	result := ApplyProgress(profile, nil, ProgressSubmission{Progress: 1, Activity: "reading", Subject: "Math"}, testToday)

	if result.Profile.CurrentStreak != 1 {
		t.Errorf("Expected streak 1 for first entry, got %d", result.Profile.CurrentStreak)
	}
	if result.Profile.LongestStreak != 1 {
		t.Errorf("Expected longest streak 1, got %d", result.Profile.LongestStreak)
	}
	if result.Merged {
		t.Error("First entry should not be a merge")
	}
	if result.Entry.Date != dayString(0) {
		t.Errorf("Expected entry dated today, got %s", result.Entry.Date)
	}
}

func TestApplyProgressYesterdayIncrementsStreak(t *testing.T) {
	profile := models.User{CurrentStreak: 4, LongestStreak: 4, Level: 1}
	history := []models.ProgressEntry{entryOn(-1, 2, "Math")}

	result := ApplyProgress(profile, history, ProgressSubmission{Progress: 1, Activity: "reading", Subject: "Math"}, testToday)

	if result.Profile.CurrentStreak != 5 {
		t.Errorf("Expected streak 5, got %d", result.Profile.CurrentStreak)
	}
	if result.Profile.LongestStreak != 5 {
		t.Errorf("Expected longest streak 5, got %d", result.Profile.LongestStreak)
	}
}

func TestApplyProgressGapResetsStreak(t *testing.T) {
	profile := models.User{CurrentStreak: 9, LongestStreak: 9, Level: 1}
	history := []models.ProgressEntry{entryOn(-3, 2, "Math")}

	result := ApplyProgress(profile, history, ProgressSubmission{Progress: 1, Activity: "reading", Subject: "Math"}, testToday)

	if result.Profile.CurrentStreak != 1 {
		t.Errorf("Expected streak reset to 1, got %d", result.Profile.CurrentStreak)
	}
	if result.Profile.LongestStreak != 9 {
		t.Errorf("Longest streak should survive a reset, got %d", result.Profile.LongestStreak)
	}
}

func TestApplyProgressSameDayMerges(t *testing.T) {
	profile := models.User{CurrentStreak: 3, LongestStreak: 7, Level: 1}
	history := []models.ProgressEntry{entryOn(0, 2, "Math")}
	history[0].Activity = "morning drill"

	result := ApplyProgress(profile, history, ProgressSubmission{Progress: 1.5, Activity: "evening review", Subject: "Physics"}, testToday)

	if result.Profile.CurrentStreak != 3 {
		t.Errorf("Same-day resubmission must not change the streak, got %d", result.Profile.CurrentStreak)
	}
	if !result.Merged {
		t.Error("Expected a merge for a same-day resubmission")
	}
	if result.Entry.Progress != 3.5 {
		t.Errorf("Expected merged hours 3.5, got %v", result.Entry.Progress)
	}
	if result.Entry.Activity != "morning drill; evening review" {
		t.Errorf("Unexpected merged activity: %q", result.Entry.Activity)
	}
	if result.Entry.Subject != "Physics" {
		t.Errorf("Merge should keep the latest subject, got %q", result.Entry.Subject)
	}
	if len(result.History) != 1 {
		t.Errorf("Merge must not grow the history, got %d entries", len(result.History))
	}
}

func TestApplyProgressMergeCapsDailyHours(t *testing.T) {
	profile := models.User{CurrentStreak: 1, LongestStreak: 1, Level: 1}
	history := []models.ProgressEntry{entryOn(0, 23, "Math")}

	result := ApplyProgress(profile, history, ProgressSubmission{Progress: 5, Activity: "late session", Subject: "Math"}, testToday)

	if result.Entry.Progress != MaxDailyHours {
		t.Errorf("Merged hours should cap at %v, got %v", MaxDailyHours, result.Entry.Progress)
	}
}

func TestApplyProgressMultiLevelJump(t *testing.T) {
	profile := models.User{Level: 1}
	result := ApplyProgress(profile, nil, ProgressSubmission{Progress: 3, Activity: "deep work", Subject: "Math"}, testToday)

	// 300 XP crosses the level 2 (100) and level 3 (250) thresholds
	if result.Profile.Level != 3 {
		t.Errorf("Expected level 3 after 300 XP, got %d", result.Profile.Level)
	}
	if result.LevelsGained != 2 {
		t.Errorf("Expected 2 levels gained, got %d", result.LevelsGained)
	}
}

func TestApplyProgressWorkedExample(t *testing.T) {
	profile := models.User{
		CurrentStreak: 5,
		LongestStreak: 12,
		Level:         3,
		XP:            250,
		Badges:        []string{"streak-starter", "first-log"},
	}
	history := []models.ProgressEntry{entryOn(-1, 2, "Y")}

	result := ApplyProgress(profile, history, ProgressSubmission{Progress: 2, Activity: "X", Subject: "Y"}, testToday)

	if result.Profile.CurrentStreak != 6 {
		t.Errorf("Expected streak 6, got %d", result.Profile.CurrentStreak)
	}
	if result.Profile.LongestStreak != 12 {
		t.Errorf("Expected longest streak 12, got %d", result.Profile.LongestStreak)
	}
	if result.Profile.XP != 450 {
		t.Errorf("Expected 450 XP, got %v", result.Profile.XP)
	}
	// 450 XP is short of the 475 needed for level 4
	if result.Profile.Level != 3 {
		t.Errorf("Expected level 3, got %d", result.Profile.Level)
	}
	for _, badge := range result.NewBadges {
		if badge.ID == "week-warrior" {
			t.Error("week-warrior must not be awarded at a 6-day streak")
		}
	}
	for _, held := range []string{"streak-starter", "first-log"} {
		found := false
		for _, id := range result.Profile.Badges {
			if id == held {
				found = true
			}
		}
		if !found {
			t.Errorf("Previously earned badge %s was lost", held)
		}
	}
}

func TestApplyProgressBadgeSetMonotonic(t *testing.T) {
	profile := models.User{Level: 1}
	var history []models.ProgressEntry

	// Submit across seven consecutive days ending today
	for offset := -6; offset <= 0; offset++ {
		day := testToday.AddDate(0, 0, offset)
		result := ApplyProgress(profile, history, ProgressSubmission{Progress: 2, Activity: "daily session", Subject: "Math"}, day)

		if len(result.Profile.Badges) < len(profile.Badges) {
			t.Fatalf("Badge set shrank from %d to %d", len(profile.Badges), len(result.Profile.Badges))
		}
		for i, id := range profile.Badges {
			if result.Profile.Badges[i] != id {
				t.Fatalf("Badge order changed: %v -> %v", profile.Badges, result.Profile.Badges)
			}
		}
		profile = result.Profile
		history = result.History
	}

	if profile.CurrentStreak != 7 {
		t.Errorf("Expected a 7-day streak, got %d", profile.CurrentStreak)
	}
	wantBadge := func(id string) {
		for _, badge := range profile.Badges {
			if badge == id {
				return
			}
		}
		t.Errorf("Expected badge %s after a week of 2-hour sessions, held: %v", id, profile.Badges)
	}
	wantBadge("streak-starter")
	wantBadge("week-warrior")
	wantBadge("first-log")
	wantBadge("ten-hours")
}

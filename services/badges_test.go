package services

import (
	"testing"

	"streakkeeper/models"
)

func TestEvaluateBadgesSkipsHeldBadges(t *testing.T) {
	user := models.User{
		CurrentStreak: 10,
		Level:         1,
		Badges:        []string{"streak-starter", "first-log"},
	}
	history := []models.ProgressEntry{entryOn(0, 1, "Math")}

	earned := EvaluateBadges(user, history)
	for _, badge := range earned {
		if badge.ID == "streak-starter" || badge.ID == "first-log" {
			t.Errorf("Held badge %s must not be re-awarded", badge.ID)
		}
	}

	// A 10-day streak newly qualifies for week-warrior
	found := false
	for _, badge := range earned {
		if badge.ID == "week-warrior" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected week-warrior at a 10-day streak, earned: %v", earned)
	}
}

func TestEvaluateBadgesDefinitionOrder(t *testing.T) {
	user := models.User{CurrentStreak: 30, Level: 10}
	history := []models.ProgressEntry{entryOn(0, 24, "Math"), entryOn(-1, 24, "Math"), entryOn(-2, 24, "Math")}

	earned := EvaluateBadges(user, history)
	position := make(map[string]int)
	for i, badge := range AllBadges {
		position[badge.ID] = i
	}
	for i := 1; i < len(earned); i++ {
		if position[earned[i-1].ID] > position[earned[i].ID] {
			t.Fatalf("Badges awarded out of definition order: %s before %s", earned[i-1].ID, earned[i].ID)
		}
	}
}

func TestHourMilestoneBadges(t *testing.T) {
	user := models.User{Level: 1}
	history := []models.ProgressEntry{
		entryOn(0, 6, "Math"),
		entryOn(-1, 5, "Physics"),
	}

	earned := EvaluateBadges(user, history)
	ids := make(map[string]bool)
	for _, badge := range earned {
		ids[badge.ID] = true
	}
	if !ids["ten-hours"] {
		t.Error("Expected ten-hours at 11 total hours")
	}
	if ids["fifty-hours"] {
		t.Error("fifty-hours must not trigger at 11 total hours")
	}
}

func TestWeekendLearnerBadge(t *testing.T) {
	weekend, _ := BadgeByID("weekend-learner")

	saturday := models.ProgressEntry{Date: "2025-03-08", Progress: 1}
	tuesday := models.ProgressEntry{Date: "2025-03-11", Progress: 1}

	if !weekend.Threshold(models.User{}, []models.ProgressEntry{saturday}) {
		t.Error("Saturday entry should satisfy weekend-learner")
	}
	if weekend.Threshold(models.User{}, []models.ProgressEntry{tuesday}) {
		t.Error("Tuesday entry must not satisfy weekend-learner")
	}
}

func TestBadgeByID(t *testing.T) {
	if _, ok := BadgeByID("month-master"); !ok {
		t.Error("month-master should resolve")
	}
	if _, ok := BadgeByID("no-such-badge"); ok {
		t.Error("Unknown badge id should not resolve")
	}
}

package services

import (
	"testing"

	"streakkeeper/models"
)

func TestDailyBucketsShapeAndSums(t *testing.T) {
	history := []models.ProgressEntry{
		entryOn(0, 2, "Math"),
		entryOn(0, 1, "Physics"), // second entry same day
		entryOn(-2, 3, "Math"),
		entryOn(-10, 4, "History"), // outside the 7-day window
	}

	buckets := DailyBuckets(history, testToday, 7)
	if len(buckets) != 7 {
		t.Fatalf("Expected exactly 7 buckets, got %d", len(buckets))
	}
	if buckets[6].Date != dayString(0) {
		t.Errorf("Last bucket should be today, got %s", buckets[6].Date)
	}
	if buckets[0].Date != dayString(-6) {
		t.Errorf("First bucket should be six days ago, got %s", buckets[0].Date)
	}

	var total float64
	for _, bucket := range buckets {
		total += bucket.Total
	}
	if total != 6 {
		t.Errorf("Window total should be 6 hours, got %v", total)
	}
	if buckets[6].Total != 3 {
		t.Errorf("Today's bucket should sum same-day entries to 3, got %v", buckets[6].Total)
	}
	if buckets[4].Total != 3 {
		t.Errorf("Two days ago should hold 3 hours, got %v", buckets[4].Total)
	}
	if buckets[5].Total != 0 {
		t.Errorf("Empty day should be 0, got %v", buckets[5].Total)
	}

	// Pure: a second invocation returns the same result
	again := DailyBuckets(history, testToday, 7)
	for i := range buckets {
		if buckets[i] != again[i] {
			t.Fatalf("DailyBuckets not stable at index %d: %v vs %v", i, buckets[i], again[i])
		}
	}
}

func TestSubjectTotals(t *testing.T) {
	history := []models.ProgressEntry{
		entryOn(0, 2, "Math"),
		entryOn(-1, 1.5, "Math"),
		entryOn(-2, 3, "Physics"),
	}

	totals := SubjectTotals(history)
	if totals["Math"] != 3.5 {
		t.Errorf("Expected 3.5 hours of Math, got %v", totals["Math"])
	}
	if totals["Physics"] != 3 {
		t.Errorf("Expected 3 hours of Physics, got %v", totals["Physics"])
	}
	if len(totals) != 2 {
		t.Errorf("Expected 2 subjects, got %d", len(totals))
	}
}

func TestCompareWeeks(t *testing.T) {
	// testToday is Wednesday 2025-03-12; current week started Monday 2025-03-10
	history := []models.ProgressEntry{
		entryOn(0, 3, "Math"),   // Wednesday, current week
		entryOn(-2, 2, "Math"),  // Monday, current week
		entryOn(-4, 4, "Math"),  // Saturday, previous week
		entryOn(-7, 1, "Math"),  // Wednesday, previous week
		entryOn(-10, 9, "Math"), // two weeks back, ignored
	}

	comparison := CompareWeeks(history, testToday)
	if comparison.CurrentWeekHours != 5 {
		t.Errorf("Expected 5 current-week hours, got %v", comparison.CurrentWeekHours)
	}
	if comparison.PreviousWeekHours != 5 {
		t.Errorf("Expected 5 previous-week hours, got %v", comparison.PreviousWeekHours)
	}
	if comparison.DeltaPercent != 0 {
		t.Errorf("Expected 0%% delta, got %v", comparison.DeltaPercent)
	}
}

func TestCompareWeeksZeroConventions(t *testing.T) {
	// Previous week empty, current week has hours: +100%
	history := []models.ProgressEntry{entryOn(0, 5, "Math")}
	comparison := CompareWeeks(history, testToday)
	if comparison.DeltaPercent != 100 {
		t.Errorf("Expected +100%% with an empty previous week, got %v", comparison.DeltaPercent)
	}

	// Both weeks empty: 0%
	comparison = CompareWeeks(nil, testToday)
	if comparison.DeltaPercent != 0 {
		t.Errorf("Expected 0%% with both weeks empty, got %v", comparison.DeltaPercent)
	}
	if comparison.CurrentWeekHours != 0 || comparison.PreviousWeekHours != 0 {
		t.Errorf("Expected zero totals, got %+v", comparison)
	}
}

func TestSplitWeeks(t *testing.T) {
	history := []models.ProgressEntry{
		entryOn(0, 3, "Math"),
		entryOn(-4, 4, "Physics"),
		entryOn(-10, 9, "History"),
	}

	currentWeek, previousWeek := SplitWeeks(history, testToday)
	if len(currentWeek) != 1 || currentWeek[0].Subject != "Math" {
		t.Errorf("Unexpected current week: %+v", currentWeek)
	}
	if len(previousWeek) != 1 || previousWeek[0].Subject != "Physics" {
		t.Errorf("Unexpected previous week: %+v", previousWeek)
	}
}

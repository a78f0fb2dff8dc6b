package services

import (
	"time"

	"streakkeeper/models"
)

// DailyBucket is one day's total for the streak chart
type DailyBucket struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
}

// DailyBuckets sums progress per calendar day over the window ending today.
// It always returns exactly `window` buckets, oldest first, with zero totals
// for days without entries.
func DailyBuckets(history []models.ProgressEntry, today time.Time, window int) []DailyBucket {
	totals := make(map[string]float64, len(history))
	for _, entry := range history {
		totals[entry.Date] += entry.Progress
	}

	buckets := make([]DailyBucket, 0, window)
	for i := window - 1; i >= 0; i-- {
		date := today.AddDate(0, 0, -i).Format(dateLayout)
		buckets = append(buckets, DailyBucket{Date: date, Total: totals[date]})
	}
	return buckets
}

// SubjectTotals sums logged hours per subject over the full history
func SubjectTotals(history []models.ProgressEntry) map[string]float64 {
	totals := make(map[string]float64)
	for _, entry := range history {
		totals[entry.Subject] += entry.Progress
	}
	return totals
}

// WeeklyComparison reports the current ISO week's hours against the previous
// week's, with the percentage delta between them.
type WeeklyComparison struct {
	CurrentWeekHours  float64 `json:"currentWeekHours"`
	PreviousWeekHours float64 `json:"previousWeekHours"`
	DeltaPercent      float64 `json:"deltaPercent"`
}

// CompareWeeks totals the Monday-start week containing today against the week
// before it. A zero previous week counts as +100% when the current week has
// hours and 0% otherwise.
func CompareWeeks(history []models.ProgressEntry, today time.Time) WeeklyComparison {
	currentStart := startOfWeek(today)
	previousStart := currentStart.AddDate(0, 0, -7)
	nextStart := currentStart.AddDate(0, 0, 7)

	var current, previous float64
	for _, entry := range history {
		date, err := time.Parse(dateLayout, entry.Date)
		if err != nil {
			continue
		}
		switch {
		case !date.Before(currentStart) && date.Before(nextStart):
			current += entry.Progress
		case !date.Before(previousStart) && date.Before(currentStart):
			previous += entry.Progress
		}
	}

	delta := 0.0
	if previous == 0 {
		if current > 0 {
			delta = 100
		}
	} else {
		delta = (current - previous) / previous * 100
	}

	return WeeklyComparison{
		CurrentWeekHours:  current,
		PreviousWeekHours: previous,
		DeltaPercent:      delta,
	}
}

// SplitWeeks partitions history into the current and previous ISO weeks,
// feeding the weekly review flow.
func SplitWeeks(history []models.ProgressEntry, today time.Time) (currentWeek, previousWeek []models.ProgressEntry) {
	currentStart := startOfWeek(today)
	previousStart := currentStart.AddDate(0, 0, -7)
	nextStart := currentStart.AddDate(0, 0, 7)

	for _, entry := range history {
		date, err := time.Parse(dateLayout, entry.Date)
		if err != nil {
			continue
		}
		switch {
		case !date.Before(currentStart) && date.Before(nextStart):
			currentWeek = append(currentWeek, entry)
		case !date.Before(previousStart) && date.Before(currentStart):
			previousWeek = append(previousWeek, entry)
		}
	}
	return currentWeek, previousWeek
}

// startOfWeek truncates to the Monday of the week containing t
func startOfWeek(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

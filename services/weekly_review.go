package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"streakkeeper/models"
)

// WeeklyReviewInput holds the raw entries for the two weeks under review
type WeeklyReviewInput struct {
	PreviousWeek []models.ProgressEntry `json:"previousWeekProgress"`
	CurrentWeek  []models.ProgressEntry `json:"currentWeekProgress"`
}

// WeeklyReviewOutput is the narrative report plus next-week suggestions
type WeeklyReviewOutput struct {
	ReportSummary       string   `json:"reportSummary"`
	NextWeekSuggestions []string `json:"nextWeekSuggestions"`
}

// GetWeeklyPerformanceReview generates a markdown report comparing the current
// week's progress against the previous week's.
func GetWeeklyPerformanceReview(ctx context.Context, input WeeklyReviewInput) (WeeklyReviewOutput, error) {
	var sb strings.Builder
	sb.WriteString(`You are an AI coach that provides weekly performance reviews for students.
Your task is to analyze the provided progress data for the current and previous weeks and generate a comprehensive report.

The report should include:
1. A summary of the current week's performance: total hours, and a list of subjects studied.
2. A comparison to the previous week's performance.
3. A list of 3-4 actionable and encouraging suggestions for the next week based on the analysis.

Format the summary in markdown.

Current Week Progress:
`)
	writeReviewEntries(&sb, input.CurrentWeek)
	sb.WriteString("\nPrevious Week Progress:\n")
	writeReviewEntries(&sb, input.PreviousWeek)
	sb.WriteString(`
Required Output Format (JSON):
{
  "reportSummary": "markdown text",
  "nextWeekSuggestions": ["suggestion 1", "suggestion 2", "suggestion 3"]
}`)

	var output WeeklyReviewOutput
	if err := generateJSON(ctx, sb.String(), &output); err != nil {
		return WeeklyReviewOutput{}, err
	}
	if output.ReportSummary == "" {
		return WeeklyReviewOutput{}, errors.New("model returned an empty report")
	}
	return output, nil
}

func writeReviewEntries(sb *strings.Builder, entries []models.ProgressEntry) {
	if len(entries) == 0 {
		sb.WriteString("- No entries logged.\n")
		return
	}
	for _, entry := range entries {
		sb.WriteString(fmt.Sprintf("- Date: %s, Subject: %s, Activity: %s, Hours: %.1f\n",
			entry.Date, entry.Subject, entry.Activity, entry.Progress))
	}
}

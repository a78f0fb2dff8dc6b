package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ProgressPoint is one (date, hours) pair of historical progress
type ProgressPoint struct {
	Date     string  `json:"date"`
	Progress float64 `json:"progress"`
}

// StreakGoalInput feeds the personalized streak goal flow
type StreakGoalInput struct {
	StudentID          string          `json:"studentId"`
	HistoricalProgress []ProgressPoint `json:"historicalProgressData"`
}

// StreakGoalOutput is the suggested goal with the model's reasoning
type StreakGoalOutput struct {
	SuggestedStreakGoal float64 `json:"suggestedStreakGoal"`
	Reasoning           string  `json:"reasoning"`
}

// GetPersonalizedStreakGoal suggests a streak goal from the user's history
func GetPersonalizedStreakGoal(ctx context.Context, input StreakGoalInput) (StreakGoalOutput, error) {
	if err := validateStreakGoalInput(input); err != nil {
		return StreakGoalOutput{}, err
	}

	var sb strings.Builder
	sb.WriteString(`You are an AI assistant designed to help students achieve their learning goals by suggesting personalized streak goals.

Analyze the student's historical progress data to understand their typical progress rate and consistency.
Consider factors such as the average progress per day, the variability in progress, and any trends over time.

Based on this analysis, suggest a streak goal that is challenging but achievable for the student.
Explain your reasoning for suggesting this particular streak goal.

`)
	sb.WriteString(fmt.Sprintf("Student ID: %s\n", input.StudentID))
	sb.WriteString("Historical Progress Data:\n")
	for _, point := range input.HistoricalProgress {
		sb.WriteString(fmt.Sprintf("- Date: %s, Progress: %.1f hours\n", point.Date, point.Progress))
	}
	sb.WriteString(`
Required Output Format (JSON):
{
  "suggestedStreakGoal": 14,
  "reasoning": "text"
}`)

	var output StreakGoalOutput
	if err := generateJSON(ctx, sb.String(), &output); err != nil {
		return StreakGoalOutput{}, err
	}
	if err := validateStreakGoalOutput(output); err != nil {
		return StreakGoalOutput{}, err
	}
	return output, nil
}

func validateStreakGoalInput(input StreakGoalInput) error {
	if input.StudentID == "" {
		return errors.New("studentId is required")
	}
	for _, point := range input.HistoricalProgress {
		if _, err := parseDate(point.Date); err != nil {
			return fmt.Errorf("invalid progress date %q", point.Date)
		}
	}
	return nil
}

func validateStreakGoalOutput(output StreakGoalOutput) error {
	if output.SuggestedStreakGoal <= 0 {
		return errors.New("model returned a non-positive streak goal")
	}
	if output.Reasoning == "" {
		return errors.New("model returned no reasoning")
	}
	return nil
}

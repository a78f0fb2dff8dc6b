package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// RecentActivity is one recent (subject, activity) pair
type RecentActivity struct {
	Subject  string `json:"subject"`
	Activity string `json:"activity"`
}

// PerformanceTipsInput compares this week against last week
type PerformanceTipsInput struct {
	CurrentWeekProgress  float64          `json:"currentWeekProgress"`
	PreviousWeekProgress float64          `json:"previousWeekProgress"`
	RecentActivities     []RecentActivity `json:"recentActivities"`
}

// PerformanceTipsOutput carries the model's coaching tips
type PerformanceTipsOutput struct {
	Tips []string `json:"tips"`
}

// GetPerformanceTips asks the model for short coaching tips to close the gap
// to the previous week's hours.
func GetPerformanceTips(ctx context.Context, input PerformanceTipsInput) (PerformanceTipsOutput, error) {
	if err := validatePerformanceTipsInput(input); err != nil {
		return PerformanceTipsOutput{}, err
	}

	var sb strings.Builder
	sb.WriteString(`You are a motivational AI coach. A user wants to improve their study performance to match or beat their previous week.

Current situation:
`)
	sb.WriteString(fmt.Sprintf("- Previous Week's Hours: %.1f\n", input.PreviousWeekProgress))
	sb.WriteString(fmt.Sprintf("- Current Week's Hours so far: %.1f\n", input.CurrentWeekProgress))
	sb.WriteString("\nTheir recent activities include:\n")
	for _, activity := range input.RecentActivities {
		sb.WriteString(fmt.Sprintf("- Subject: %s, Activity: %s\n", activity.Subject, activity.Activity))
	}
	sb.WriteString(`
Based on this, provide 3-4 short, actionable, and encouraging tips to help them close the gap. The advice should be specific and reference their recent activities if possible. Frame the advice positively.

Required Output Format (JSON):
{
  "tips": ["tip 1", "tip 2", "tip 3"]
}`)

	var output PerformanceTipsOutput
	if err := generateJSON(ctx, sb.String(), &output); err != nil {
		return PerformanceTipsOutput{}, err
	}
	if len(output.Tips) == 0 {
		return PerformanceTipsOutput{}, errors.New("model returned no tips")
	}
	return output, nil
}

func validatePerformanceTipsInput(input PerformanceTipsInput) error {
	if input.CurrentWeekProgress < 0 || input.PreviousWeekProgress < 0 {
		return errors.New("weekly progress must be non-negative")
	}
	return nil
}

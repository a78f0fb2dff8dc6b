package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// NotificationRecord is one past notification with the user's optional response
type NotificationRecord struct {
	Timestamp string `json:"timestamp"`
	Message   string `json:"message"`
	Response  string `json:"response,omitempty"`
}

// StreakLossInput describes a user at risk of losing their streak
type StreakLossInput struct {
	StudentID           string               `json:"studentId"`
	StreakLength        int                  `json:"streakLength"`
	LastActivity        string               `json:"lastActivity"` // YYYY-MM-DD
	NotificationHistory []NotificationRecord `json:"notificationHistory"`
}

// StreakLossOutput is the personalized notification the model crafted
type StreakLossOutput struct {
	NotificationMessage string `json:"notificationMessage"`
	DeliveryMethod      string `json:"deliveryMethod"` // email, push or sms
	ScheduledTime       string `json:"scheduledTime"`  // ISO 8601
}

// GetStreakLossNotification crafts a personalized nudge for a user about to
// lose their streak, choosing delivery method and send time.
func GetStreakLossNotification(ctx context.Context, input StreakLossInput) (StreakLossOutput, error) {
	if err := validateStreakLossInput(input); err != nil {
		return StreakLossOutput{}, err
	}

	var sb strings.Builder
	sb.WriteString(`You are an AI assistant designed to help students maintain their learning streaks.
A student is at risk of losing their streak. Your task is to craft a personalized notification message to encourage them to continue learning.
Consider the student's past activity, current streak length, and their responses to previous notifications when creating the message.
Choose the most appropriate delivery method (email, push, or sms) and an optimal time to send the notification, aiming to maximize the likelihood of a positive response.

`)
	sb.WriteString(fmt.Sprintf("Student ID: %s\n", input.StudentID))
	sb.WriteString(fmt.Sprintf("Current Streak Length: %d days\n", input.StreakLength))
	sb.WriteString(fmt.Sprintf("Last Activity Date: %s\n", input.LastActivity))
	sb.WriteString("Notification History:\n")
	for _, record := range input.NotificationHistory {
		sb.WriteString(fmt.Sprintf("- Timestamp: %s, Message: %s, Response: %s\n", record.Timestamp, record.Message, record.Response))
	}
	sb.WriteString(`
Keep the notification concise and actionable, focusing on encouraging the student to maintain their streak.
Example of a good notification message: "Hey there! Your streak is at risk. Complete your daily goal to keep it going!"
Ensure that the scheduled time is in ISO 8601 format.

Required Output Format (JSON):
{
  "notificationMessage": "text",
  "deliveryMethod": "email, push, or sms",
  "scheduledTime": "ISO 8601 timestamp"
}`)

	var output StreakLossOutput
	if err := generateJSON(ctx, sb.String(), &output); err != nil {
		return StreakLossOutput{}, err
	}
	if err := validateStreakLossOutput(output); err != nil {
		return StreakLossOutput{}, err
	}
	return output, nil
}

func validateStreakLossInput(input StreakLossInput) error {
	if input.StudentID == "" {
		return errors.New("studentId is required")
	}
	if input.StreakLength < 0 {
		return errors.New("streakLength must be non-negative")
	}
	if _, err := parseDate(input.LastActivity); err != nil {
		return fmt.Errorf("invalid lastActivity date %q", input.LastActivity)
	}
	return nil
}

func validateStreakLossOutput(output StreakLossOutput) error {
	if output.NotificationMessage == "" {
		return errors.New("model returned an empty notification message")
	}
	switch output.DeliveryMethod {
	case "email", "push", "sms":
	default:
		return fmt.Errorf("model returned invalid delivery method %q", output.DeliveryMethod)
	}
	if _, err := time.Parse(time.RFC3339, output.ScheduledTime); err != nil {
		return fmt.Errorf("model returned invalid scheduled time %q", output.ScheduledTime)
	}
	return nil
}

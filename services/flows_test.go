package services

import (
	"testing"
)

func TestCleanModelOutput(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"{\"quote\":\"hi\"}", "{\"quote\":\"hi\"}"},
		{"```json\n{\"quote\":\"hi\"}\n```", "{\"quote\":\"hi\"}"},
		{"```\n{\"quote\":\"hi\"}\n```", "{\"quote\":\"hi\"}"},
		{"  {\"quote\":\"hi\"}  ", "{\"quote\":\"hi\"}"},
	}
	for _, c := range cases {
		if got := cleanModelOutput(c.in); got != c.want {
			t.Errorf("cleanModelOutput(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseModelJSON(t *testing.T) {
	raw := "```json\n{\"quote\": \"Keep going.\", \"author\": \"Anonymous\"}\n```"
	var output MotivationOutput
	if err := parseModelJSON(raw, &output); err != nil {
		t.Fatalf("Failed to parse fenced JSON: %v", err)
	}
	if output.Quote != "Keep going." || output.Author != "Anonymous" {
		t.Errorf("Unexpected output: %+v", output)
	}

	if err := parseModelJSON("not json at all", &output); err == nil {
		t.Error("Expected an error for non-JSON model output")
	}
}

func TestValidateMotivationOutput(t *testing.T) {
	output := MotivationOutput{Quote: "Start now."}
	if err := validateMotivationOutput(&output); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if output.Author != "Anonymous" {
		t.Errorf("Missing author should default to Anonymous, got %q", output.Author)
	}

	empty := MotivationOutput{}
	if err := validateMotivationOutput(&empty); err == nil {
		t.Error("Expected an error for an empty quote")
	}
}

func TestValidateStreakGoalInput(t *testing.T) {
	valid := StreakGoalInput{
		StudentID:          "user-1",
		HistoricalProgress: []ProgressPoint{{Date: "2025-03-10", Progress: 2}},
	}
	if err := validateStreakGoalInput(valid); err != nil {
		t.Errorf("Valid input rejected: %v", err)
	}

	if err := validateStreakGoalInput(StreakGoalInput{}); err == nil {
		t.Error("Expected an error for a missing studentId")
	}

	badDate := StreakGoalInput{
		StudentID:          "user-1",
		HistoricalProgress: []ProgressPoint{{Date: "10/03/2025", Progress: 2}},
	}
	if err := validateStreakGoalInput(badDate); err == nil {
		t.Error("Expected an error for a malformed progress date")
	}
}

func TestValidateStreakGoalOutput(t *testing.T) {
	if err := validateStreakGoalOutput(StreakGoalOutput{SuggestedStreakGoal: 14, Reasoning: "steady pace"}); err != nil {
		t.Errorf("Valid output rejected: %v", err)
	}
	if err := validateStreakGoalOutput(StreakGoalOutput{SuggestedStreakGoal: 0, Reasoning: "x"}); err == nil {
		t.Error("Expected an error for a non-positive goal")
	}
	if err := validateStreakGoalOutput(StreakGoalOutput{SuggestedStreakGoal: 7}); err == nil {
		t.Error("Expected an error for missing reasoning")
	}
}

func TestValidateStreakLossOutput(t *testing.T) {
	valid := StreakLossOutput{
		NotificationMessage: "Your streak is at risk!",
		DeliveryMethod:      "push",
		ScheduledTime:       "2025-03-12T19:00:00Z",
	}
	if err := validateStreakLossOutput(valid); err != nil {
		t.Errorf("Valid output rejected: %v", err)
	}

	badMethod := valid
	badMethod.DeliveryMethod = "carrier-pigeon"
	if err := validateStreakLossOutput(badMethod); err == nil {
		t.Error("Expected an error for an unknown delivery method")
	}

	badTime := valid
	badTime.ScheduledTime = "tonight"
	if err := validateStreakLossOutput(badTime); err == nil {
		t.Error("Expected an error for a non ISO-8601 scheduled time")
	}
}

func TestValidateStreakLossInput(t *testing.T) {
	valid := StreakLossInput{StudentID: "user-1", StreakLength: 5, LastActivity: "2025-03-11"}
	if err := validateStreakLossInput(valid); err != nil {
		t.Errorf("Valid input rejected: %v", err)
	}

	invalid := valid
	invalid.LastActivity = "yesterday"
	if err := validateStreakLossInput(invalid); err == nil {
		t.Error("Expected an error for a malformed lastActivity")
	}
}

func TestValidatePerformanceTipsInput(t *testing.T) {
	if err := validatePerformanceTipsInput(PerformanceTipsInput{CurrentWeekProgress: 3, PreviousWeekProgress: 5}); err != nil {
		t.Errorf("Valid input rejected: %v", err)
	}
	if err := validatePerformanceTipsInput(PerformanceTipsInput{CurrentWeekProgress: -1}); err == nil {
		t.Error("Expected an error for negative weekly progress")
	}
}

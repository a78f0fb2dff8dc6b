package services

import (
	"context"
	"errors"
)

// MotivationOutput is the daily quote shown on the dashboard
type MotivationOutput struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
}

const motivationPrompt = `You are an AI assistant that provides daily motivation.
Generate a random, inspiring motivational quote. The quote should be suitable for someone learning new skills or trying to maintain a study streak.
Also provide the author of the quote. If the author is unknown, use "Anonymous".

Required Output Format (JSON):
{
  "quote": "The secret of getting ahead is getting started.",
  "author": "Mark Twain"
}`

// GetMotivationOfTheDay asks the model for a motivational quote
func GetMotivationOfTheDay(ctx context.Context) (MotivationOutput, error) {
	var output MotivationOutput
	if err := generateJSON(ctx, motivationPrompt, &output); err != nil {
		return MotivationOutput{}, err
	}
	if err := validateMotivationOutput(&output); err != nil {
		return MotivationOutput{}, err
	}
	return output, nil
}

func validateMotivationOutput(output *MotivationOutput) error {
	if output.Quote == "" {
		return errors.New("model returned an empty quote")
	}
	if output.Author == "" {
		output.Author = "Anonymous"
	}
	return nil
}

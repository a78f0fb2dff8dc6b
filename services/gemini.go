package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"streakkeeper/config"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Global Gemini client instance
var geminiClient *genai.Client

const geminiModelName = "gemini-1.5-flash"

// Each generation call is a single blocking round trip with a bounded timeout;
// expiry surfaces as a normal call failure.
const generationTimeout = 30 * time.Second

// InitGenerationService initializes the Gemini client using the API key from the config
func InitGenerationService(cfg *config.Config) error {
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.Gemini.ApiKey))
	if err != nil {
		return fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	geminiClient = client
	return nil
}

// generateJSON sends the prompt to Gemini and unmarshals the JSON reply into out
func generateJSON(ctx context.Context, prompt string, out interface{}) error {
	if geminiClient == nil {
		return errors.New("gemini client not initialized")
	}

	ctx, cancel := context.WithTimeout(ctx, generationTimeout)
	defer cancel()

	model := geminiClient.GenerativeModel(geminiModelName)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return fmt.Errorf("generation request failed: %w", err)
	}

	text, err := extractText(resp)
	if err != nil {
		return err
	}
	return parseModelJSON(text, out)
}

func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("no content returned by model")
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			return string(text), nil
		}
	}
	return "", errors.New("no text part in model response")
}

// parseModelJSON strips markdown code fences the model tends to wrap JSON in,
// then unmarshals into out.
func parseModelJSON(text string, out interface{}) error {
	cleaned := cleanModelOutput(text)
	if err := json.Unmarshal([]byte(cleaned), out); err != nil {
		return fmt.Errorf("failed to parse model output: %w", err)
	}
	return nil
}

func cleanModelOutput(text string) string {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```JSON")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}

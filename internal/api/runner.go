package api

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
)

// Runner provides simple text-in/text-out Claude API calls.
// Specialist agents use it for single blocking completions; there is no
// tool use, no streaming, and no retry. A failed call surfaces as one
// wrapped error and ends the current request only.
type Runner struct {
	client *Client
}

// NewRunner creates a new API runner.
func NewRunner(client *Client) *Runner {
	return &Runner{client: client}
}

// Run executes a prompt and returns the text response.
func (r *Runner) Run(ctx context.Context, prompt string) (string, error) {
	resp, err := r.client.sdk().Messages.New(ctx, anthropic.MessageNewParams{
		Model:     r.client.Model(),
		MaxTokens: r.client.MaxTokens(),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("API call failed: %w", err)
	}

	r.client.Tracker().Add(resp.Usage.InputTokens, resp.Usage.OutputTokens)

	return collectText(resp), nil
}

// RunWithSystem executes a prompt with a system message.
func (r *Runner) RunWithSystem(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := r.client.sdk().Messages.New(ctx, anthropic.MessageNewParams{
		Model:     r.client.Model(),
		MaxTokens: r.client.MaxTokens(),
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("API call failed: %w", err)
	}

	r.client.Tracker().Add(resp.Usage.InputTokens, resp.Usage.OutputTokens)

	return collectText(resp), nil
}

// RunJSON executes a prompt and parses the JSON response into the provided target.
func (r *Runner) RunJSON(ctx context.Context, prompt string, target interface{}) error {
	response, err := r.Run(ctx, prompt)
	if err != nil {
		return err
	}
	return decodeJSON(response, target)
}

// RunJSONWithSystem executes a system+user prompt pair and parses the JSON
// response into the provided target. This is the call shape every
// specialist agent uses.
func (r *Runner) RunJSONWithSystem(ctx context.Context, systemPrompt, userPrompt string, target interface{}) error {
	response, err := r.RunWithSystem(ctx, systemPrompt, userPrompt)
	if err != nil {
		return err
	}
	return decodeJSON(response, target)
}

// collectText concatenates the text blocks of a response.
func collectText(resp *anthropic.Message) string {
	var result strings.Builder
	for _, block := range resp.Content {
		if variant, ok := block.AsAny().(anthropic.TextBlock); ok {
			result.WriteString(variant.Text)
		}
	}
	return result.String()
}

// decodeJSON locates the JSON payload in a model response and unmarshals it.
// Models often wrap JSON in prose or markdown fences; the payload is taken
// as the outermost brace/bracket span.
func decodeJSON(response string, target interface{}) error {
	jsonStart := strings.Index(response, "{")
	if jsonStart == -1 {
		jsonStart = strings.Index(response, "[")
	}
	jsonEnd := strings.LastIndex(response, "}")
	if jsonEnd == -1 {
		jsonEnd = strings.LastIndex(response, "]")
	}

	if jsonStart == -1 || jsonEnd == -1 || jsonEnd <= jsonStart {
		return fmt.Errorf("no valid JSON found in response: %s", truncate(response, 200))
	}

	jsonStr := response[jsonStart : jsonEnd+1]
	if err := json.Unmarshal([]byte(jsonStr), target); err != nil {
		return fmt.Errorf("parse JSON: %w (response: %s)", err, truncate(jsonStr, 200))
	}

	return nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

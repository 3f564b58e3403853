// Package agent implements the specialist agents: research, code
// analysis, and creative writing. Each pairs a system prompt with the
// shared JSON call primitive and the result schema for its domain.
package agent

import (
	"context"

	"github.com/troikahq/troika/pkg/models"
)

// Runner is the call seam between specialists and the model client.
// This abstraction allows for testing and alternative implementations.
type Runner interface {
	// RunJSONWithSystem executes a system+user prompt pair and parses
	// the JSON response into the provided target.
	RunJSONWithSystem(ctx context.Context, systemPrompt, userPrompt string, target interface{}) error
}

// Agent is one specialist: a prompt template plus an expected result
// schema, invoked against the external model.
type Agent interface {
	// Name returns the specialist's display name.
	Name() string
	// Kind identifies which specialist this is.
	Kind() models.AgentKind
	// Execute runs one blocking model call for the task. Transport and
	// validation failures both surface as a single wrapped error; there
	// is no retry.
	Execute(ctx context.Context, task Task) (*models.AgentResult, error)
}

// Task is one unit of work handed to a specialist.
type Task struct {
	// Request is the text the specialist should act on.
	Request string
	// Context carries prior findings the specialist should build on,
	// such as the research summary on the complex-analysis path.
	Context string
	// ContentType asks the creative agent for a specific content kind.
	// Empty selects the agent's default.
	ContentType string
	// Audience is the creative agent's target audience. Empty selects
	// the agent's default.
	Audience string
	// Tone is the creative agent's writing tone. Empty selects the
	// agent's default.
	Tone string
	// Language hints the code agent at the snippet's language. Empty
	// asks the model to auto-detect.
	Language string
}

// settings holds optional per-specialist overrides.
type settings struct {
	systemPrompt string
	audience     string
	tone         string
}

// Option configures a specialist at construction time.
type Option func(*settings)

// WithSystemPrompt replaces the specialist's built-in system prompt.
func WithSystemPrompt(prompt string) Option {
	return func(s *settings) {
		if prompt != "" {
			s.systemPrompt = prompt
		}
	}
}

// WithAudience sets the creative agent's default audience.
func WithAudience(audience string) Option {
	return func(s *settings) {
		if audience != "" {
			s.audience = audience
		}
	}
}

// WithTone sets the creative agent's default tone.
func WithTone(tone string) Option {
	return func(s *settings) {
		if tone != "" {
			s.tone = tone
		}
	}
}

func applyOptions(defaults settings, opts []Option) settings {
	s := defaults
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

package agent

import (
	"context"
	"fmt"

	"github.com/troikahq/troika/pkg/models"
)

// Creative agent defaults applied when the task does not specify them.
const (
	defaultContentType = "article"
	defaultAudience    = "general"
	defaultTone        = "professional"
)

// CreativeAgent produces written content: articles, emails, reports,
// and social posts.
type CreativeAgent struct {
	runner       Runner
	systemPrompt string
	audience     string
	tone         string
}

// NewCreativeAgent creates a content creation specialist backed by the
// runner.
func NewCreativeAgent(runner Runner, opts ...Option) *CreativeAgent {
	s := applyOptions(settings{
		systemPrompt: creativeSystemPrompt,
		audience:     defaultAudience,
		tone:         defaultTone,
	}, opts)
	return &CreativeAgent{
		runner:       runner,
		systemPrompt: s.systemPrompt,
		audience:     s.audience,
		tone:         s.tone,
	}
}

// Name returns the specialist's display name.
func (a *CreativeAgent) Name() string { return "creative" }

// Kind identifies the creative writing specialist.
func (a *CreativeAgent) Kind() models.AgentKind { return models.AgentCreative }

// Execute creates content for the task's request. Task context, when
// present, is inserted as an additional instruction so the content
// references prior findings.
func (a *CreativeAgent) Execute(ctx context.Context, task Task) (*models.AgentResult, error) {
	contentType := task.ContentType
	if contentType == "" {
		contentType = defaultContentType
	}
	audience := task.Audience
	if audience == "" {
		audience = a.audience
	}
	tone := task.Tone
	if tone == "" {
		tone = a.tone
	}

	prompt := fmt.Sprintf("Create %s content about: %s. Target audience: %s. Tone: %s.",
		contentType, task.Request, audience, tone)
	if task.Context != "" {
		prompt += fmt.Sprintf("\n\n%s", task.Context)
	}

	var result models.CreativeContent
	if err := a.runner.RunJSONWithSystem(ctx, a.systemPrompt, prompt, &result); err != nil {
		return nil, fmt.Errorf("creative agent: %w", err)
	}
	if err := result.Normalize(); err != nil {
		return nil, fmt.Errorf("creative agent: %w", err)
	}

	return &models.AgentResult{Agent: models.AgentCreative, Creative: &result}, nil
}

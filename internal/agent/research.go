package agent

import (
	"context"
	"fmt"

	"github.com/troikahq/troika/pkg/models"
)

// ResearchAgent investigates topics and reports structured findings.
type ResearchAgent struct {
	runner       Runner
	systemPrompt string
}

// NewResearchAgent creates a research specialist backed by the runner.
func NewResearchAgent(runner Runner, opts ...Option) *ResearchAgent {
	s := applyOptions(settings{systemPrompt: researchSystemPrompt}, opts)
	return &ResearchAgent{
		runner:       runner,
		systemPrompt: s.systemPrompt,
	}
}

// Name returns the specialist's display name.
func (a *ResearchAgent) Name() string { return "research" }

// Kind identifies the research specialist.
func (a *ResearchAgent) Kind() models.AgentKind { return models.AgentResearch }

// Execute researches the task's request. When the task carries prior
// context it is appended so follow-up research can build on it.
func (a *ResearchAgent) Execute(ctx context.Context, task Task) (*models.AgentResult, error) {
	prompt := fmt.Sprintf("Research this topic: %s", task.Request)
	if task.Context != "" {
		prompt += fmt.Sprintf("\n\nPrior context:\n%s", task.Context)
	}

	var result models.ResearchResult
	if err := a.runner.RunJSONWithSystem(ctx, a.systemPrompt, prompt, &result); err != nil {
		return nil, fmt.Errorf("research agent: %w", err)
	}
	if err := result.Normalize(); err != nil {
		return nil, fmt.Errorf("research agent: %w", err)
	}

	return &models.AgentResult{Agent: models.AgentResearch, Research: &result}, nil
}

package agent

import (
	"context"
	"fmt"

	"github.com/troikahq/troika/pkg/models"
)

// defaultLanguageHint asks the model to identify the language itself.
const defaultLanguageHint = "auto-detect"

// CodeAgent reviews code snippets and reports a structured analysis.
type CodeAgent struct {
	runner       Runner
	systemPrompt string
}

// NewCodeAgent creates a code analysis specialist backed by the runner.
func NewCodeAgent(runner Runner, opts ...Option) *CodeAgent {
	s := applyOptions(settings{systemPrompt: codeSystemPrompt}, opts)
	return &CodeAgent{
		runner:       runner,
		systemPrompt: s.systemPrompt,
	}
}

// Name returns the specialist's display name.
func (a *CodeAgent) Name() string { return "code" }

// Kind identifies the code analysis specialist.
func (a *CodeAgent) Kind() models.AgentKind { return models.AgentCode }

// Execute analyzes the code in the task's request. The snippet is
// fenced so surrounding prose in the request does not read as code.
func (a *CodeAgent) Execute(ctx context.Context, task Task) (*models.AgentResult, error) {
	language := task.Language
	if language == "" {
		language = defaultLanguageHint
	}

	prompt := fmt.Sprintf("Analyze this %s code:\n\n```\n%s\n```", language, task.Request)

	var result models.CodeAnalysis
	if err := a.runner.RunJSONWithSystem(ctx, a.systemPrompt, prompt, &result); err != nil {
		return nil, fmt.Errorf("code agent: %w", err)
	}
	if err := result.Normalize(); err != nil {
		return nil, fmt.Errorf("code agent: %w", err)
	}

	return &models.AgentResult{Agent: models.AgentCode, Code: &result}, nil
}

package agent

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/troikahq/troika/pkg/models"
)

// stubRunner records the prompts it was called with and fills the
// target from a canned JSON payload.
type stubRunner struct {
	payload   string
	err       error
	gotSystem string
	gotUser   string
	calls     int
}

func (s *stubRunner) RunJSONWithSystem(_ context.Context, systemPrompt, userPrompt string, target interface{}) error {
	s.calls++
	s.gotSystem = systemPrompt
	s.gotUser = userPrompt
	if s.err != nil {
		return s.err
	}
	return json.Unmarshal([]byte(s.payload), target)
}

const validResearchJSON = `{
	"topic": "renewable energy",
	"summary": "Solar and wind dominate new capacity additions.",
	"key_points": ["solar is cheapest", "wind scales well", "storage is the bottleneck"],
	"confidence": "high",
	"sources": ["IEA report"]
}`

const validCodeJSON = `{
	"language": "Python",
	"complexity_score": 2,
	"issues": ["no input validation"],
	"suggestions": ["add type hints"],
	"security_concerns": []
}`

const validCreativeJSON = `{
	"content_type": "article",
	"title": "Project Update",
	"body": "The project is on track.",
	"audience": "general",
	"tone": "professional",
	"word_count": 999
}`

func TestResearchAgentExecute(t *testing.T) {
	runner := &stubRunner{payload: validResearchJSON}
	a := NewResearchAgent(runner)

	res, err := a.Execute(context.Background(), Task{Request: "renewable energy trends"})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if res.Agent != models.AgentResearch {
		t.Errorf("Agent = %q, want %q", res.Agent, models.AgentResearch)
	}
	if res.Research == nil {
		t.Fatal("Research result not set")
	}
	if res.Research.Summary == "" {
		t.Error("Summary is empty")
	}
	if n := len(res.Research.KeyPoints); n < models.MinKeyPoints || n > models.MaxKeyPoints {
		t.Errorf("len(KeyPoints) = %d, want within [%d, %d]", n, models.MinKeyPoints, models.MaxKeyPoints)
	}

	if !strings.Contains(runner.gotUser, "Research this topic: renewable energy trends") {
		t.Errorf("user prompt = %q, missing research instruction", runner.gotUser)
	}
	if runner.gotSystem != researchSystemPrompt {
		t.Error("system prompt should be the built-in research prompt")
	}
}

func TestResearchAgentIncludesContext(t *testing.T) {
	runner := &stubRunner{payload: validResearchJSON}
	a := NewResearchAgent(runner)

	_, err := a.Execute(context.Background(), Task{Request: "follow-up", Context: "earlier findings"})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(runner.gotUser, "earlier findings") {
		t.Errorf("user prompt = %q, missing task context", runner.gotUser)
	}
}

func TestResearchAgentRunnerFailure(t *testing.T) {
	wantErr := errors.New("API call failed: connection refused")
	a := NewResearchAgent(&stubRunner{err: wantErr})

	_, err := a.Execute(context.Background(), Task{Request: "anything"})
	if err == nil {
		t.Fatal("Execute() = nil, want error")
	}
	if !errors.Is(err, wantErr) {
		t.Errorf("error chain should wrap the runner error, got %v", err)
	}
}

func TestResearchAgentRejectsInvalidSchema(t *testing.T) {
	// Two key points violates the minimum; Normalize must fail the request.
	payload := `{"topic":"t","summary":"s","key_points":["a","b"],"confidence":"high"}`
	a := NewResearchAgent(&stubRunner{payload: payload})

	_, err := a.Execute(context.Background(), Task{Request: "anything"})
	if err == nil {
		t.Fatal("Execute() = nil, want validation error")
	}
	var verr *models.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %T, want wrapped *models.ValidationError", err)
	}
}

func TestCodeAgentExecute(t *testing.T) {
	runner := &stubRunner{payload: validCodeJSON}
	a := NewCodeAgent(runner)

	res, err := a.Execute(context.Background(), Task{Request: "def f(x): return x"})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if res.Agent != models.AgentCode {
		t.Errorf("Agent = %q, want %q", res.Agent, models.AgentCode)
	}
	if res.Code == nil {
		t.Fatal("Code result not set")
	}
	if res.Code.Language != "Python" {
		t.Errorf("Language = %q, want Python", res.Code.Language)
	}
	if res.Code.ComplexityScore < models.MinComplexity || res.Code.ComplexityScore > models.MaxComplexity {
		t.Errorf("ComplexityScore = %d, want within [%d, %d]",
			res.Code.ComplexityScore, models.MinComplexity, models.MaxComplexity)
	}

	// Snippet is fenced and the language hint defaults to auto-detect.
	if !strings.Contains(runner.gotUser, "Analyze this auto-detect code:") {
		t.Errorf("user prompt = %q, missing auto-detect hint", runner.gotUser)
	}
	if !strings.Contains(runner.gotUser, "```\ndef f(x): return x\n```") {
		t.Errorf("user prompt = %q, snippet not fenced", runner.gotUser)
	}
}

func TestCodeAgentLanguageHint(t *testing.T) {
	runner := &stubRunner{payload: validCodeJSON}
	a := NewCodeAgent(runner)

	_, err := a.Execute(context.Background(), Task{Request: "x := 1", Language: "Go"})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(runner.gotUser, "Analyze this Go code:") {
		t.Errorf("user prompt = %q, missing language hint", runner.gotUser)
	}
}

func TestCodeAgentClampsComplexity(t *testing.T) {
	payload := `{"language":"C","complexity_score":42,"issues":[],"suggestions":[]}`
	a := NewCodeAgent(&stubRunner{payload: payload})

	res, err := a.Execute(context.Background(), Task{Request: "while(1);"})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if res.Code.ComplexityScore != models.MaxComplexity {
		t.Errorf("ComplexityScore = %d, want clamped to %d", res.Code.ComplexityScore, models.MaxComplexity)
	}
}

func TestCreativeAgentExecute(t *testing.T) {
	runner := &stubRunner{payload: validCreativeJSON}
	a := NewCreativeAgent(runner)

	res, err := a.Execute(context.Background(), Task{Request: "project updates"})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if res.Agent != models.AgentCreative {
		t.Errorf("Agent = %q, want %q", res.Agent, models.AgentCreative)
	}
	if res.Creative == nil {
		t.Fatal("Creative result not set")
	}
	// Word count is recomputed locally, never trusted from the model.
	if res.Creative.WordCount != len(strings.Fields(res.Creative.Body)) {
		t.Errorf("WordCount = %d, want %d", res.Creative.WordCount, len(strings.Fields(res.Creative.Body)))
	}

	// Defaults: article content for a general audience, professional tone.
	want := "Create article content about: project updates. Target audience: general. Tone: professional."
	if !strings.Contains(runner.gotUser, want) {
		t.Errorf("user prompt = %q, want to contain %q", runner.gotUser, want)
	}
}

func TestCreativeAgentTaskOverridesDefaults(t *testing.T) {
	runner := &stubRunner{payload: validCreativeJSON}
	a := NewCreativeAgent(runner)

	_, err := a.Execute(context.Background(), Task{
		Request:     "quarterly numbers",
		ContentType: "report",
		Audience:    "executives",
		Tone:        "analytical",
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	want := "Create report content about: quarterly numbers. Target audience: executives. Tone: analytical."
	if !strings.Contains(runner.gotUser, want) {
		t.Errorf("user prompt = %q, want to contain %q", runner.gotUser, want)
	}
}

func TestCreativeAgentEmbedsContext(t *testing.T) {
	runner := &stubRunner{payload: validCreativeJSON}
	a := NewCreativeAgent(runner)

	_, err := a.Execute(context.Background(), Task{
		Request: "a report",
		Context: "Include the key points: a, b, c",
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(runner.gotUser, "Include the key points: a, b, c") {
		t.Errorf("user prompt = %q, missing embedded context", runner.gotUser)
	}
}

func TestCreativeAgentRejectsUnknownContentType(t *testing.T) {
	payload := `{"content_type":"poem","title":"T","body":"B","audience":"a","tone":"t"}`
	a := NewCreativeAgent(&stubRunner{payload: payload})

	_, err := a.Execute(context.Background(), Task{Request: "anything"})
	if err == nil {
		t.Fatal("Execute() = nil, want validation error")
	}
}

func TestPersonaOptions(t *testing.T) {
	runner := &stubRunner{payload: validCreativeJSON}
	a := NewCreativeAgent(runner,
		WithSystemPrompt("custom creative prompt"),
		WithAudience("developers"),
		WithTone("casual"),
	)

	_, err := a.Execute(context.Background(), Task{Request: "release notes"})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if runner.gotSystem != "custom creative prompt" {
		t.Errorf("system prompt = %q, want persona override", runner.gotSystem)
	}
	if !strings.Contains(runner.gotUser, "Target audience: developers. Tone: casual.") {
		t.Errorf("user prompt = %q, want persona audience and tone", runner.gotUser)
	}
}

func TestEmptyPersonaOptionsKeepDefaults(t *testing.T) {
	runner := &stubRunner{payload: validResearchJSON}
	a := NewResearchAgent(runner, WithSystemPrompt(""))

	_, err := a.Execute(context.Background(), Task{Request: "anything"})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if runner.gotSystem != researchSystemPrompt {
		t.Error("empty override should keep the built-in system prompt")
	}
}

func TestAgentIdentity(t *testing.T) {
	runner := &stubRunner{}
	tests := []struct {
		name     string
		agent    Agent
		wantName string
		wantKind models.AgentKind
	}{
		{"research", NewResearchAgent(runner), "research", models.AgentResearch},
		{"code", NewCodeAgent(runner), "code", models.AgentCode},
		{"creative", NewCreativeAgent(runner), "creative", models.AgentCreative},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.agent.Name(); got != tt.wantName {
				t.Errorf("Name() = %q, want %q", got, tt.wantName)
			}
			if got := tt.agent.Kind(); got != tt.wantKind {
				t.Errorf("Kind() = %q, want %q", got, tt.wantKind)
			}
		})
	}
}

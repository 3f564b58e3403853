package coordinator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/troikahq/troika/internal/agent"
	"github.com/troikahq/troika/internal/session"
	"github.com/troikahq/troika/pkg/models"
)

// fakeAgent records every task it receives and returns a canned
// result or error.
type fakeAgent struct {
	kind   models.AgentKind
	result *models.AgentResult
	err    error
	tasks  []agent.Task
}

func (f *fakeAgent) Name() string           { return string(f.kind) + " (fake)" }
func (f *fakeAgent) Kind() models.AgentKind { return f.kind }

func (f *fakeAgent) Execute(_ context.Context, task agent.Task) (*models.AgentResult, error) {
	f.tasks = append(f.tasks, task)
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func researchResult(topic string) *models.AgentResult {
	return &models.AgentResult{
		Agent: models.AgentResearch,
		Research: &models.ResearchResult{
			Topic:      topic,
			Summary:    "findings about " + topic,
			KeyPoints:  []string{"adoption is rising", "costs are falling", "storage is the bottleneck"},
			Confidence: models.ConfidenceHigh,
		},
	}
}

func codeResult() *models.AgentResult {
	return &models.AgentResult{
		Agent: models.AgentCode,
		Code: &models.CodeAnalysis{
			Language:        "python",
			ComplexityScore: 2,
			Issues:          []string{"no docstring"},
			Suggestions:     []string{"add type hints"},
		},
	}
}

func creativeResult(title string) *models.AgentResult {
	return &models.AgentResult{
		Agent: models.AgentCreative,
		Creative: &models.CreativeContent{
			ContentType: models.ContentTypeReport,
			Title:       title,
			Body:        "body text here",
			Audience:    "professional",
			Tone:        "analytical",
			WordCount:   3,
		},
	}
}

func newTestCoordinator() (*Coordinator, *session.Context, *fakeAgent, *fakeAgent, *fakeAgent) {
	research := &fakeAgent{kind: models.AgentResearch, result: researchResult("solar adoption")}
	code := &fakeAgent{kind: models.AgentCode, result: codeResult()}
	creative := &fakeAgent{kind: models.AgentCreative, result: creativeResult("Launch Notes")}
	sess := session.NewContext()
	return New(sess, nil, research, code, creative), sess, research, code, creative
}

func TestCoordinator_RoutesToSingleAgent(t *testing.T) {
	c, sess, research, code, creative := newTestCoordinator()

	resp, err := c.Process(context.Background(), "research solar adoption")
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if len(research.tasks) != 1 {
		t.Errorf("research agent called %d times, want 1", len(research.tasks))
	}
	if len(code.tasks) != 0 || len(creative.tasks) != 0 {
		t.Errorf("unmatched agents were called: code=%d creative=%d", len(code.tasks), len(creative.tasks))
	}
	if research.tasks[0].Request != "research solar adoption" {
		t.Errorf("research task request = %q, want original request", research.tasks[0].Request)
	}
	if len(resp.Results) != 1 || resp.Results[0].Agent != models.AgentResearch {
		t.Errorf("Results = %v, want one research result", resp.Results)
	}
	if resp.Entry.Kind != models.TaskKindResearch {
		t.Errorf("Entry.Kind = %q, want %q", resp.Entry.Kind, models.TaskKindResearch)
	}
	if sess.HistoryLen() != 1 {
		t.Errorf("HistoryLen() = %d, want 1", sess.HistoryLen())
	}
}

func TestCoordinator_DispatchesMatchedAgentsInOrder(t *testing.T) {
	c, sess, research, code, creative := newTestCoordinator()

	resp, err := c.Process(context.Background(), "research this code and write a summary")
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	for name, fake := range map[string]*fakeAgent{"research": research, "code": code, "creative": creative} {
		if len(fake.tasks) != 1 {
			t.Errorf("%s agent called %d times, want 1", name, len(fake.tasks))
		}
	}

	wantOrder := []models.AgentKind{models.AgentResearch, models.AgentCode, models.AgentCreative}
	if len(resp.Results) != len(wantOrder) {
		t.Fatalf("len(Results) = %d, want %d", len(resp.Results), len(wantOrder))
	}
	for i, kind := range wantOrder {
		if resp.Results[i].Agent != kind {
			t.Errorf("Results[%d].Agent = %q, want %q", i, resp.Results[i].Agent, kind)
		}
	}

	if resp.Entry.Kind != models.TaskKindMultiAgent {
		t.Errorf("Entry.Kind = %q, want %q", resp.Entry.Kind, models.TaskKindMultiAgent)
	}
	if !strings.Contains(resp.Entry.Summary, "; ") {
		t.Errorf("Entry.Summary = %q, want joined per-agent summaries", resp.Entry.Summary)
	}
	if sess.HistoryLen() != 1 {
		t.Errorf("HistoryLen() = %d, want 1", sess.HistoryLen())
	}
}

func TestCoordinator_AgentFailureLeavesHistoryUnchanged(t *testing.T) {
	sentinel := errors.New("model unavailable")
	code := &fakeAgent{kind: models.AgentCode, err: sentinel}
	sess := session.NewContext()
	c := New(sess, nil, code)

	resp, err := c.Process(context.Background(), "review this function")
	if resp != nil {
		t.Errorf("Process() response = %v, want nil on failure", resp)
	}
	if !errors.Is(err, sentinel) {
		t.Errorf("Process() error = %v, want wrapped %v", err, sentinel)
	}
	if sess.HistoryLen() != 0 {
		t.Errorf("HistoryLen() = %d, want 0 after failure", sess.HistoryLen())
	}
	if !strings.Contains(sess.RecentContext(5), "Error processing request") {
		t.Errorf("conversation log missing error entry:\n%s", sess.RecentContext(5))
	}
}

func TestCoordinator_FailureStopsRemainingAgents(t *testing.T) {
	research := &fakeAgent{kind: models.AgentResearch, err: errors.New("boom")}
	code := &fakeAgent{kind: models.AgentCode, result: codeResult()}
	creative := &fakeAgent{kind: models.AgentCreative, result: creativeResult("x")}
	sess := session.NewContext()
	c := New(sess, nil, research, code, creative)

	_, err := c.Process(context.Background(), "research this code and write a summary")
	if err == nil {
		t.Fatal("Process() error = nil, want failure")
	}
	if len(code.tasks) != 0 || len(creative.tasks) != 0 {
		t.Errorf("agents after the failure were called: code=%d creative=%d", len(code.tasks), len(creative.tasks))
	}
}

func TestCoordinator_MissingSpecialist(t *testing.T) {
	research := &fakeAgent{kind: models.AgentResearch, result: researchResult("x")}
	sess := session.NewContext()
	c := New(sess, nil, research)

	_, err := c.Process(context.Background(), "debug this function")
	if err == nil || !strings.Contains(err.Error(), "no code specialist registered") {
		t.Errorf("Process() error = %v, want missing-specialist error", err)
	}
	if sess.HistoryLen() != 0 {
		t.Errorf("HistoryLen() = %d, want 0", sess.HistoryLen())
	}
}

func TestCoordinator_ComplexChainsResearchIntoReport(t *testing.T) {
	c, sess, research, code, creative := newTestCoordinator()
	research.result = researchResult("remote work productivity")
	creative.result = creativeResult("Remote Work Report")

	request := "do a complex analysis on remote work productivity"
	resp, err := c.Process(context.Background(), request)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if !resp.Decision.Complex {
		t.Error("Decision.Complex = false, want true")
	}
	if len(code.tasks) != 0 {
		t.Errorf("code agent called %d times, want 0", len(code.tasks))
	}
	if research.tasks[0].Request != request {
		t.Errorf("research task request = %q, want original request", research.tasks[0].Request)
	}

	reportTask := creative.tasks[0]
	if !strings.HasPrefix(reportTask.Request, "a comprehensive report based on this research:") {
		t.Errorf("report task request = %q, want research-based prefix", reportTask.Request)
	}
	if !strings.Contains(reportTask.Request, "findings about remote work productivity") {
		t.Errorf("report task request = %q, missing research summary", reportTask.Request)
	}
	for _, point := range research.result.Research.KeyPoints {
		if !strings.Contains(reportTask.Context, point) {
			t.Errorf("report task context = %q, missing key point %q", reportTask.Context, point)
		}
	}
	if reportTask.ContentType != "report" || reportTask.Audience != "professional" || reportTask.Tone != "analytical" {
		t.Errorf("report task params = %q/%q/%q, want report/professional/analytical",
			reportTask.ContentType, reportTask.Audience, reportTask.Tone)
	}

	if len(resp.Results) != 2 {
		t.Fatalf("len(Results) = %d, want 2", len(resp.Results))
	}
	if resp.Results[0].Agent != models.AgentResearch || resp.Results[1].Agent != models.AgentCreative {
		t.Errorf("Results order = %q, %q; want research then creative", resp.Results[0].Agent, resp.Results[1].Agent)
	}
	if resp.Entry.Kind != models.TaskKindComplexAnalysis {
		t.Errorf("Entry.Kind = %q, want %q", resp.Entry.Kind, models.TaskKindComplexAnalysis)
	}
	wantSummary := fmt.Sprintf("Complex analysis of %q with research and report generation", request)
	if resp.Entry.Summary != wantSummary {
		t.Errorf("Entry.Summary = %q, want %q", resp.Entry.Summary, wantSummary)
	}
	if sess.HistoryLen() != 1 {
		t.Errorf("HistoryLen() = %d, want 1", sess.HistoryLen())
	}
}

func TestCoordinator_StoresLatestAgentResults(t *testing.T) {
	c, sess, _, _, _ := newTestCoordinator()

	if _, err := c.Process(context.Background(), "research solar adoption"); err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	stored, ok := sess.AgentResult(models.AgentResearch)
	if !ok {
		t.Fatal("AgentResult(research) not found after success")
	}
	if stored.Research.Topic != "solar adoption" {
		t.Errorf("stored topic = %q, want %q", stored.Research.Topic, "solar adoption")
	}
}

func TestCoordinator_RecordsConversation(t *testing.T) {
	c, sess, _, _, _ := newTestCoordinator()

	if _, err := c.Process(context.Background(), "research solar adoption"); err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	recent := sess.RecentContext(10)
	for _, want := range []string{
		"[user] user: research solar adoption",
		"Delegating to research agent",
		"[coordinator] assistant:",
	} {
		if !strings.Contains(recent, want) {
			t.Errorf("RecentContext() missing %q:\n%s", want, recent)
		}
	}
}

func TestSingleDispatcher_PinsSpecialist(t *testing.T) {
	creative := &fakeAgent{kind: models.AgentCreative, result: creativeResult("Pinned")}
	sess := session.NewContext()
	d := NewSingleDispatcher(creative, sess, nil)

	// A request that would normally classify as research still goes to
	// the pinned specialist.
	resp, err := d.Process(context.Background(), "research the market")
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if len(creative.tasks) != 1 {
		t.Fatalf("specialist called %d times, want 1", len(creative.tasks))
	}
	if creative.tasks[0].Request != "research the market" {
		t.Errorf("task request = %q, want original request", creative.tasks[0].Request)
	}
	if len(resp.Decision.Agents) != 1 || resp.Decision.Agents[0] != models.AgentCreative {
		t.Errorf("Decision.Agents = %v, want [creative]", resp.Decision.Agents)
	}
	if resp.Decision.Reason != "single-agent mode, always creative" {
		t.Errorf("Decision.Reason = %q", resp.Decision.Reason)
	}
	if resp.Entry.Kind != models.TaskKindContentCreation {
		t.Errorf("Entry.Kind = %q, want %q", resp.Entry.Kind, models.TaskKindContentCreation)
	}
	if sess.HistoryLen() != 1 {
		t.Errorf("HistoryLen() = %d, want 1", sess.HistoryLen())
	}
}

func TestSingleDispatcher_FailureLeavesHistoryUnchanged(t *testing.T) {
	sentinel := errors.New("model unavailable")
	research := &fakeAgent{kind: models.AgentResearch, err: sentinel}
	sess := session.NewContext()
	d := NewSingleDispatcher(research, sess, nil)

	resp, err := d.Process(context.Background(), "study this")
	if resp != nil {
		t.Errorf("Process() response = %v, want nil on failure", resp)
	}
	if !errors.Is(err, sentinel) {
		t.Errorf("Process() error = %v, want wrapped %v", err, sentinel)
	}
	if sess.HistoryLen() != 0 {
		t.Errorf("HistoryLen() = %d, want 0 after failure", sess.HistoryLen())
	}
}

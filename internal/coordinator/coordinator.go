package coordinator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/troikahq/troika/internal/agent"
	"github.com/troikahq/troika/internal/session"
	"github.com/troikahq/troika/pkg/models"
)

// Complex-analysis report parameters, fixed for the chained path.
const (
	reportContentType = "report"
	reportAudience    = "professional"
	reportTone        = "analytical"
)

// Coordinator inspects a request, invokes the matching specialists
// strictly sequentially, and records the outcome in the session.
type Coordinator struct {
	specialists map[models.AgentKind]agent.Agent
	sess        *session.Context
	log         *session.DebugLogger
}

// New creates a coordinator over the given specialists. A nil logger
// disables debug tracing.
func New(sess *session.Context, log *session.DebugLogger, specialists ...agent.Agent) *Coordinator {
	if log == nil {
		log = session.NopLogger()
	}
	m := make(map[models.AgentKind]agent.Agent, len(specialists))
	for _, s := range specialists {
		m[s.Kind()] = s
	}
	return &Coordinator{specialists: m, sess: sess, log: log}
}

// Response carries everything the shell needs to display one
// processed request.
type Response struct {
	// Decision is the routing outcome that drove the dispatch.
	Decision Decision
	// Results holds each specialist's output, in invocation order.
	Results []models.AgentResult
	// Entry is the history record appended for this request.
	Entry models.HistoryEntry
}

// Process routes one request. On any agent failure the whole request
// fails: prior partial results are discarded and history is unchanged.
// On success exactly one history entry is appended.
func (c *Coordinator) Process(ctx context.Context, request string) (*Response, error) {
	c.sess.AddConversation("user", request, "user")

	decision := Classify(request)
	c.log.Log("classified %q -> %v (%s)", request, decision.Agents, decision.Reason)

	results, err := c.dispatch(ctx, request, decision)
	if err != nil {
		c.sess.AddConversation("system", fmt.Sprintf("Error processing request: %v", err), "error")
		c.log.Log("request failed: %v", err)
		return nil, err
	}

	entry := models.HistoryEntry{
		Request:    request,
		Kind:       taskKind(decision),
		AgentsUsed: decision.Agents,
		Status:     models.TaskStatusCompleted,
		Results:    results,
		Summary:    summarize(request, decision, results),
		Timestamp:  time.Now(),
	}
	c.sess.AppendHistory(entry)
	c.sess.AddConversation("assistant", entry.Summary, "coordinator")
	c.log.Log("request completed: %s", entry.Summary)

	return &Response{Decision: decision, Results: results, Entry: entry}, nil
}

// dispatch invokes the decided specialists one at a time.
func (c *Coordinator) dispatch(ctx context.Context, request string, decision Decision) ([]models.AgentResult, error) {
	if decision.Complex {
		return c.complexAnalysis(ctx, request)
	}

	results := make([]models.AgentResult, 0, len(decision.Agents))
	for _, kind := range decision.Agents {
		spec, ok := c.specialists[kind]
		if !ok {
			return nil, fmt.Errorf("no %s specialist registered", kind)
		}
		c.sess.AddConversation("system", fmt.Sprintf("Delegating to %s agent: %s", kind, request), "coordinator")

		res, err := spec.Execute(ctx, agent.Task{Request: request})
		if err != nil {
			return nil, err
		}
		c.sess.StoreAgentResult(*res)
		results = append(results, *res)
	}
	return results, nil
}

// complexAnalysis runs the research agent first and feeds its findings
// into the creative agent's prompt so the generated report references
// them. The two calls run strictly sequentially.
func (c *Coordinator) complexAnalysis(ctx context.Context, request string) ([]models.AgentResult, error) {
	research, ok := c.specialists[models.AgentResearch]
	if !ok {
		return nil, fmt.Errorf("no research specialist registered")
	}
	creative, ok := c.specialists[models.AgentCreative]
	if !ok {
		return nil, fmt.Errorf("no creative specialist registered")
	}

	c.sess.AddConversation("system", fmt.Sprintf("Starting complex analysis: %s", request), "coordinator")

	researchRes, err := research.Execute(ctx, agent.Task{Request: request})
	if err != nil {
		return nil, err
	}
	c.sess.StoreAgentResult(*researchRes)

	findings := researchRes.Research
	reportTask := agent.Task{
		Request:     fmt.Sprintf("a comprehensive report based on this research: %s", findings.Summary),
		Context:     fmt.Sprintf("Include the key points: %s", strings.Join(findings.KeyPoints, ", ")),
		ContentType: reportContentType,
		Audience:    reportAudience,
		Tone:        reportTone,
	}

	creativeRes, err := creative.Execute(ctx, reportTask)
	if err != nil {
		return nil, err
	}
	c.sess.StoreAgentResult(*creativeRes)

	return []models.AgentResult{*researchRes, *creativeRes}, nil
}

// taskKind names the routing outcome for history entries.
func taskKind(decision Decision) string {
	if decision.Complex {
		return models.TaskKindComplexAnalysis
	}
	if len(decision.Agents) > 1 {
		return models.TaskKindMultiAgent
	}
	switch decision.Agents[0] {
	case models.AgentCode:
		return models.TaskKindCodeAnalysis
	case models.AgentCreative:
		return models.TaskKindContentCreation
	default:
		return models.TaskKindResearch
	}
}

// summarize builds the one-line outcome description stored in history.
func summarize(request string, decision Decision, results []models.AgentResult) string {
	if decision.Complex {
		return fmt.Sprintf("Complex analysis of %q with research and report generation", request)
	}
	parts := make([]string, len(results))
	for i, res := range results {
		parts[i] = res.Summary()
	}
	return strings.Join(parts, "; ")
}

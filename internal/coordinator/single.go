package coordinator

import (
	"context"
	"fmt"
	"time"

	"github.com/troikahq/troika/internal/agent"
	"github.com/troikahq/troika/internal/session"
	"github.com/troikahq/troika/pkg/models"
)

// SingleDispatcher always routes to one specialist, bypassing
// classification. It backs the simple single-agent loop.
type SingleDispatcher struct {
	specialist agent.Agent
	sess       *session.Context
	log        *session.DebugLogger
}

// NewSingleDispatcher creates a dispatcher pinned to one specialist.
func NewSingleDispatcher(specialist agent.Agent, sess *session.Context, log *session.DebugLogger) *SingleDispatcher {
	if log == nil {
		log = session.NopLogger()
	}
	return &SingleDispatcher{specialist: specialist, sess: sess, log: log}
}

// Process hands the whole request to the pinned specialist. Failure
// semantics match the coordinator: the request fails as a unit and
// history is unchanged.
func (d *SingleDispatcher) Process(ctx context.Context, request string) (*Response, error) {
	d.sess.AddConversation("user", request, "user")
	d.log.Log("single dispatch %q -> %s", request, d.specialist.Kind())

	res, err := d.specialist.Execute(ctx, agent.Task{Request: request})
	if err != nil {
		d.sess.AddConversation("system", fmt.Sprintf("Error processing request: %v", err), "error")
		d.log.Log("request failed: %v", err)
		return nil, err
	}
	d.sess.StoreAgentResult(*res)

	decision := Decision{
		Agents: []models.AgentKind{d.specialist.Kind()},
		Reason: fmt.Sprintf("single-agent mode, always %s", d.specialist.Kind()),
	}
	entry := models.HistoryEntry{
		Request:    request,
		Kind:       taskKind(decision),
		AgentsUsed: decision.Agents,
		Status:     models.TaskStatusCompleted,
		Results:    []models.AgentResult{*res},
		Summary:    res.Summary(),
		Timestamp:  time.Now(),
	}
	d.sess.AppendHistory(entry)
	d.sess.AddConversation("assistant", entry.Summary, "coordinator")

	return &Response{Decision: decision, Results: entry.Results, Entry: entry}, nil
}

package models

import "time"

// TaskStatus is the completion status of a processed request.
type TaskStatus string

const (
	// TaskStatusCompleted indicates the request succeeded.
	TaskStatusCompleted TaskStatus = "completed"
	// TaskStatusFailed indicates the request failed.
	TaskStatusFailed TaskStatus = "failed"
)

// Valid returns true if the status is a known value.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusCompleted, TaskStatusFailed:
		return true
	default:
		return false
	}
}

// Task kinds recorded in history entries.
const (
	// TaskKindResearch is a request handled by the research agent alone.
	TaskKindResearch = "research"
	// TaskKindCodeAnalysis is a request handled by the code agent alone.
	TaskKindCodeAnalysis = "code_analysis"
	// TaskKindContentCreation is a request handled by the creative agent alone.
	TaskKindContentCreation = "content_creation"
	// TaskKindComplexAnalysis is the research-then-creative chain.
	TaskKindComplexAnalysis = "complex_analysis"
	// TaskKindMultiAgent is a request that matched several specialty cues.
	TaskKindMultiAgent = "multi_agent"
)

// HistoryEntry records one successfully processed request. Entries live
// in process memory only and are discarded on exit.
type HistoryEntry struct {
	// Request is the raw user input that produced this entry.
	Request string `json:"request"`
	// Kind describes the routing outcome (see TaskKind constants).
	Kind string `json:"kind"`
	// AgentsUsed lists the specialists that ran, in invocation order.
	AgentsUsed []AgentKind `json:"agents_used"`
	// Status is the completion status of the request.
	Status TaskStatus `json:"status"`
	// Results holds each agent's structured output, in invocation order.
	Results []AgentResult `json:"results"`
	// Summary is a one-line description of the outcome.
	Summary string `json:"summary"`
	// Timestamp is when the entry was recorded.
	Timestamp time.Time `json:"timestamp"`
}

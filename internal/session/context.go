// Package session holds the in-memory state for one interactive run:
// the conversation log, the bounded task history, and the latest result
// from each specialist. Nothing here survives process exit.
package session

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/troikahq/troika/pkg/models"
)

// DefaultHistoryLimit caps stored history entries. Oldest entries are
// dropped once the cap is reached.
const DefaultHistoryLimit = 100

// historyDisplayCount is how many entries the history command shows.
const historyDisplayCount = 5

// defaultRecentLimit is how many conversation lines RecentContext
// returns when no limit is given.
const defaultRecentLimit = 5

// ConversationEntry is one line of the session's conversation log.
type ConversationEntry struct {
	// Role is who spoke: user, assistant, or system.
	Role string
	// Content is the message text.
	Content string
	// Agent names the component that produced the entry.
	Agent string
	// Timestamp is when the entry was recorded.
	Timestamp time.Time
}

// Context tracks the state shared across one interactive session.
// The shell is the only writer during a run; the mutex keeps the type
// safe for one-shot commands that log from helper goroutines.
type Context struct {
	mu           sync.Mutex
	id           string
	conversation []ConversationEntry
	history      []models.HistoryEntry
	agentResults map[models.AgentKind]models.AgentResult
	maxHistory   int
}

// NewContext creates a session context with the default history cap.
func NewContext() *Context {
	return NewContextWithLimit(DefaultHistoryLimit)
}

// NewContextWithLimit creates a session context that keeps at most
// limit history entries. Non-positive limits fall back to the default.
func NewContextWithLimit(limit int) *Context {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &Context{
		id:           uuid.New().String(),
		agentResults: make(map[models.AgentKind]models.AgentResult),
		maxHistory:   limit,
	}
}

// ID returns the session identifier.
func (c *Context) ID() string {
	return c.id
}

// AddConversation appends one entry to the conversation log.
func (c *Context) AddConversation(role, content, agentName string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.conversation = append(c.conversation, ConversationEntry{
		Role:      role,
		Content:   content,
		Agent:     agentName,
		Timestamp: time.Now(),
	})
}

// AppendHistory records a processed request. Once the cap is reached
// the oldest entry is dropped.
func (c *Context) AppendHistory(entry models.HistoryEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.history = append(c.history, entry)
	if len(c.history) > c.maxHistory {
		c.history = c.history[len(c.history)-c.maxHistory:]
	}
}

// History returns a copy of the stored history entries, oldest first.
func (c *Context) History() []models.HistoryEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.HistoryEntry, len(c.history))
	copy(out, c.history)
	return out
}

// HistoryLen returns the number of stored history entries.
func (c *Context) HistoryLen() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.history)
}

// StoreAgentResult keeps the latest result from a specialist so later
// requests can reference it.
func (c *Context) StoreAgentResult(result models.AgentResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.agentResults[result.Agent] = result
}

// AgentResult returns the latest stored result for a specialist.
func (c *Context) AgentResult(kind models.AgentKind) (models.AgentResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	res, ok := c.agentResults[kind]
	return res, ok
}

// RecentContext formats the last limit conversation entries as
// "[agent] role: content" lines. A non-positive limit uses the default.
func (c *Context) RecentContext(limit int) string {
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	start := 0
	if len(c.conversation) > limit {
		start = len(c.conversation) - limit
	}

	lines := make([]string, 0, limit)
	for _, entry := range c.conversation[start:] {
		lines = append(lines, fmt.Sprintf("[%s] %s: %s", entry.Agent, entry.Role, entry.Content))
	}
	return strings.Join(lines, "\n")
}

// FormatHistory renders history entries for the history command: a
// session header followed by the most recent entries, newest last.
func FormatHistory(entries []models.HistoryEntry, sessionID string) string {
	if len(entries) == 0 {
		return "No tasks completed yet in this session."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Session %s - %d tasks completed:\n\n", sessionID, len(entries))

	start := 0
	if len(entries) > historyDisplayCount {
		start = len(entries) - historyDisplayCount
	}

	for i, entry := range entries[start:] {
		fmt.Fprintf(&b, "%d. %s: %s\n", i+1, strings.ToUpper(entry.Kind), entry.Summary)
		fmt.Fprintf(&b, "   Agents: %s | Status: %s\n\n", joinAgents(entry.AgentsUsed), entry.Status)
	}

	return strings.TrimRight(b.String(), "\n")
}

func joinAgents(agents []models.AgentKind) string {
	if len(agents) == 0 {
		return "none"
	}
	names := make([]string, len(agents))
	for i, a := range agents {
		names[i] = string(a)
	}
	return strings.Join(names, ", ")
}

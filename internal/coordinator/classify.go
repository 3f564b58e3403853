// Package coordinator routes user requests to specialist agents and
// merges their results into labeled sections.
package coordinator

import (
	"strings"

	"github.com/troikahq/troika/pkg/models"
)

// RouteKeywords is the single source of truth for request classification.
// A request is matched against each list by lowercase substring search.
type RouteKeywords struct {
	// Complex keywords trigger the research-then-creative chain and
	// short-circuit all other matching.
	Complex []string

	// Research keywords indicate topic investigation requests.
	Research []string

	// Code keywords indicate code review and analysis requests.
	Code []string

	// Creative keywords indicate content creation requests.
	Creative []string
}

// DefaultRouteKeywords returns the authoritative keyword mappings.
var DefaultRouteKeywords = RouteKeywords{
	// Complex: multi-step requests that chain research into a report
	Complex: []string{
		"complex",
		"comprehensive analysis",
		"full analysis",
		"in-depth",
		"multi-step",
	},

	// Research: topic investigation
	Research: []string{
		"research",
		"investigate",
		"find out",
		"study",
		"explore",
		"trends",
		"learn about",
	},

	// Code: review and analysis of source code
	Code: []string{
		"code",
		"analyze",
		"review",
		"debug",
		"bug",
		"function",
		"refactor",
		"script",
		"snippet",
	},

	// Creative: written content production
	Creative: []string{
		"write",
		"create",
		"draft",
		"compose",
		"email",
		"article",
		"blog",
		"social media",
		"content",
		"report",
	},
}

// Decision is the routing outcome for one request.
type Decision struct {
	// Agents lists the specialists to invoke, in invocation order.
	Agents []models.AgentKind
	// Complex is true when the request takes the research-then-creative
	// chain with result merging.
	Complex bool
	// Reason explains why this routing was selected.
	Reason string
	// Matched lists the keywords that fired, in priority order.
	Matched []string
}

// Classify maps a raw request to a routing decision. A complex cue
// short-circuits to the research-then-creative chain; otherwise every
// matching specialty runs, in fixed research, code, creative priority
// order. A request with no cues defaults to the research agent.
func Classify(request string) Decision {
	lower := strings.ToLower(request)

	if kw, ok := firstMatch(lower, DefaultRouteKeywords.Complex); ok {
		return Decision{
			Agents:  []models.AgentKind{models.AgentResearch, models.AgentCreative},
			Complex: true,
			Reason:  "matched complex keyword",
			Matched: []string{kw},
		}
	}

	var agents []models.AgentKind
	var matched []string

	if kw, ok := firstMatch(lower, DefaultRouteKeywords.Research); ok {
		agents = append(agents, models.AgentResearch)
		matched = append(matched, kw)
	}
	if kw, ok := firstMatch(lower, DefaultRouteKeywords.Code); ok {
		agents = append(agents, models.AgentCode)
		matched = append(matched, kw)
	}
	if kw, ok := firstMatch(lower, DefaultRouteKeywords.Creative); ok {
		agents = append(agents, models.AgentCreative)
		matched = append(matched, kw)
	}

	if len(agents) == 0 {
		return Decision{
			Agents: []models.AgentKind{models.AgentResearch},
			Reason: "no keyword match, defaulting to research",
		}
	}

	reason := "matched " + string(agents[0]) + " keyword"
	if len(agents) > 1 {
		reason = "matched multiple specialty keywords"
	}

	return Decision{Agents: agents, Reason: reason, Matched: matched}
}

// ClassifyAgents returns just the specialists for a request.
// This is a convenience wrapper around Classify.
func ClassifyAgents(request string) []models.AgentKind {
	return Classify(request).Agents
}

// IsComplexCue returns true if the text contains a complex keyword.
func IsComplexCue(text string) bool {
	_, ok := firstMatch(strings.ToLower(text), DefaultRouteKeywords.Complex)
	return ok
}

// IsResearchCue returns true if the text contains a research keyword.
func IsResearchCue(text string) bool {
	_, ok := firstMatch(strings.ToLower(text), DefaultRouteKeywords.Research)
	return ok
}

// IsCodeCue returns true if the text contains a code keyword.
func IsCodeCue(text string) bool {
	_, ok := firstMatch(strings.ToLower(text), DefaultRouteKeywords.Code)
	return ok
}

// IsCreativeCue returns true if the text contains a creative keyword.
func IsCreativeCue(text string) bool {
	_, ok := firstMatch(strings.ToLower(text), DefaultRouteKeywords.Creative)
	return ok
}

// firstMatch returns the first keyword contained in the lowercased text.
func firstMatch(lower string, keywords []string) (string, bool) {
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return kw, true
		}
	}
	return "", false
}

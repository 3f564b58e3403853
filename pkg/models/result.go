// Package models defines the structured results the specialist agents
// return and the in-memory task history built from them.
package models

import (
	"fmt"
	"strings"
)

// Confidence is the research agent's stated confidence in its findings.
type Confidence string

const (
	// ConfidenceLow indicates findings that need verification.
	ConfidenceLow Confidence = "low"
	// ConfidenceMedium indicates reasonably supported findings.
	ConfidenceMedium Confidence = "medium"
	// ConfidenceHigh indicates well-established findings.
	ConfidenceHigh Confidence = "high"
)

// Valid returns true if the confidence is a known value.
func (c Confidence) Valid() bool {
	switch c {
	case ConfidenceLow, ConfidenceMedium, ConfidenceHigh:
		return true
	default:
		return false
	}
}

// ContentType is the kind of content the creative agent produced.
type ContentType string

const (
	// ContentTypeArticle is long-form written content.
	ContentTypeArticle ContentType = "article"
	// ContentTypeEmail is business or personal correspondence.
	ContentTypeEmail ContentType = "email"
	// ContentTypeReport is a structured analytical document.
	ContentTypeReport ContentType = "report"
	// ContentTypeSocial is short-form social media content.
	ContentTypeSocial ContentType = "social"
)

// Valid returns true if the content type is a known value.
func (t ContentType) Valid() bool {
	switch t {
	case ContentTypeArticle, ContentTypeEmail, ContentTypeReport, ContentTypeSocial:
		return true
	default:
		return false
	}
}

// AgentKind identifies a specialist agent.
type AgentKind string

const (
	// AgentResearch is the research specialist.
	AgentResearch AgentKind = "research"
	// AgentCode is the code analysis specialist.
	AgentCode AgentKind = "code"
	// AgentCreative is the creative writing specialist.
	AgentCreative AgentKind = "creative"
)

// Valid returns true if the agent kind is a known value.
func (k AgentKind) Valid() bool {
	switch k {
	case AgentResearch, AgentCode, AgentCreative:
		return true
	default:
		return false
	}
}

// Schema bounds enforced by Normalize.
const (
	// MinKeyPoints is the minimum number of research key points.
	MinKeyPoints = 3
	// MaxKeyPoints is the maximum number of research key points; extras are trimmed.
	MaxKeyPoints = 5
	// MinComplexity is the lowest code complexity score.
	MinComplexity = 1
	// MaxComplexity is the highest code complexity score.
	MaxComplexity = 10
)

// ValidationError reports a model response that does not conform to the
// expected result schema. It is non-fatal: the current request fails and
// the shell continues.
type ValidationError struct {
	// Field is the offending field name (JSON key).
	Field string
	// Reason describes the violation.
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ResearchResult is the research agent's structured output.
type ResearchResult struct {
	// Topic is the research topic as understood by the model.
	Topic string `json:"topic"`
	// Summary is a brief summary of the findings.
	Summary string `json:"summary"`
	// KeyPoints lists the most important findings, 3-5 after normalization.
	KeyPoints []string `json:"key_points"`
	// Confidence is the model's stated confidence level.
	Confidence Confidence `json:"confidence"`
	// Sources lists recommended sources for verification, if any.
	Sources []string `json:"sources,omitempty"`
}

// Normalize enforces the research schema locally instead of trusting the
// model output. Overlong key point lists are trimmed to MaxKeyPoints;
// missing content and undersized lists are validation errors.
func (r *ResearchResult) Normalize() error {
	if strings.TrimSpace(r.Topic) == "" {
		return &ValidationError{Field: "topic", Reason: "must not be empty"}
	}
	if strings.TrimSpace(r.Summary) == "" {
		return &ValidationError{Field: "summary", Reason: "must not be empty"}
	}
	r.Confidence = Confidence(strings.ToLower(strings.TrimSpace(string(r.Confidence))))
	if !r.Confidence.Valid() {
		return &ValidationError{Field: "confidence", Reason: fmt.Sprintf("unknown value %q", r.Confidence)}
	}
	if len(r.KeyPoints) < MinKeyPoints {
		return &ValidationError{
			Field:  "key_points",
			Reason: fmt.Sprintf("need at least %d, got %d", MinKeyPoints, len(r.KeyPoints)),
		}
	}
	if len(r.KeyPoints) > MaxKeyPoints {
		r.KeyPoints = r.KeyPoints[:MaxKeyPoints]
	}
	return nil
}

// CodeAnalysis is the code analysis agent's structured output.
type CodeAnalysis struct {
	// Language is the programming language the model detected.
	Language string `json:"language"`
	// ComplexityScore rates code complexity from 1 (trivial) to 10.
	ComplexityScore int `json:"complexity_score"`
	// Issues lists problems found in the code.
	Issues []string `json:"issues,omitempty"`
	// Suggestions lists actionable improvements.
	Suggestions []string `json:"suggestions,omitempty"`
	// SecurityConcerns lists security findings, if any.
	SecurityConcerns []string `json:"security_concerns,omitempty"`
}

// Normalize enforces the code analysis schema locally. Out-of-range
// complexity scores are clamped into [MinComplexity, MaxComplexity].
func (c *CodeAnalysis) Normalize() error {
	if strings.TrimSpace(c.Language) == "" {
		return &ValidationError{Field: "language", Reason: "must not be empty"}
	}
	if c.ComplexityScore < MinComplexity {
		c.ComplexityScore = MinComplexity
	}
	if c.ComplexityScore > MaxComplexity {
		c.ComplexityScore = MaxComplexity
	}
	return nil
}

// CreativeContent is the creative writing agent's structured output.
type CreativeContent struct {
	// ContentType is the kind of content created.
	ContentType ContentType `json:"content_type"`
	// Title is the content title.
	Title string `json:"title"`
	// Body is the generated content itself.
	Body string `json:"body"`
	// Audience is the intended audience.
	Audience string `json:"audience"`
	// Tone is the writing tone used.
	Tone string `json:"tone"`
	// WordCount is the number of whitespace-delimited tokens in Body.
	// It is always recomputed locally; the model-supplied value is ignored.
	WordCount int `json:"word_count"`
}

// Normalize enforces the creative content schema locally. WordCount is
// recomputed from Body unconditionally.
func (c *CreativeContent) Normalize() error {
	c.ContentType = ContentType(strings.ToLower(strings.TrimSpace(string(c.ContentType))))
	if !c.ContentType.Valid() {
		return &ValidationError{Field: "content_type", Reason: fmt.Sprintf("unknown value %q", c.ContentType)}
	}
	if strings.TrimSpace(c.Title) == "" {
		return &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if strings.TrimSpace(c.Body) == "" {
		return &ValidationError{Field: "body", Reason: "must not be empty"}
	}
	c.WordCount = len(strings.Fields(c.Body))
	return nil
}

// AgentResult is a tagged union over the specialist result schemas.
// Exactly one of Research, Code, or Creative is set, matching Agent.
type AgentResult struct {
	// Agent identifies which specialist produced this result.
	Agent AgentKind `json:"agent"`
	// Research is set when Agent is AgentResearch.
	Research *ResearchResult `json:"research,omitempty"`
	// Code is set when Agent is AgentCode.
	Code *CodeAnalysis `json:"code,omitempty"`
	// Creative is set when Agent is AgentCreative.
	Creative *CreativeContent `json:"creative,omitempty"`
}

// Kind returns the specialist that produced this result.
func (r AgentResult) Kind() AgentKind {
	return r.Agent
}

// Summary returns a one-line description of the result.
func (r AgentResult) Summary() string {
	switch {
	case r.Research != nil:
		return fmt.Sprintf("Researched %q (confidence: %s)", r.Research.Topic, r.Research.Confidence)
	case r.Code != nil:
		return fmt.Sprintf("Analyzed %s code (complexity %d/%d)", r.Code.Language, r.Code.ComplexityScore, MaxComplexity)
	case r.Creative != nil:
		return fmt.Sprintf("Created %s %q (%d words)", r.Creative.ContentType, r.Creative.Title, r.Creative.WordCount)
	default:
		return fmt.Sprintf("%s agent returned no result", r.Agent)
	}
}

package coordinator

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/troikahq/troika/pkg/models"
)

var (
	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	labelStyle = lipgloss.NewStyle().Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

// RenderResponse formats each agent result under its own labeled
// heading, in invocation order. Sections are concatenated, never
// semantically fused.
func RenderResponse(resp *Response) string {
	var b strings.Builder
	for i, res := range resp.Results {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(headingStyle.Render(sectionHeading(res.Agent, resp.Decision.Complex)))
		b.WriteString("\n")
		b.WriteString(renderResult(res))
	}
	return strings.TrimRight(b.String(), "\n")
}

// sectionHeading labels one result section. The complex path uses its
// own pair so the transcript reads research-then-report.
func sectionHeading(kind models.AgentKind, complex bool) string {
	if complex {
		switch kind {
		case models.AgentResearch:
			return "Research Completed"
		case models.AgentCreative:
			return "Analysis Report"
		}
	}
	switch kind {
	case models.AgentResearch:
		return "Research Findings"
	case models.AgentCode:
		return "Code Analysis"
	case models.AgentCreative:
		return "Creative Content"
	default:
		return string(kind)
	}
}

func renderResult(res models.AgentResult) string {
	switch {
	case res.Research != nil:
		return renderResearch(res.Research)
	case res.Code != nil:
		return renderCode(res.Code)
	case res.Creative != nil:
		return renderCreative(res.Creative)
	default:
		return dimStyle.Render("(no result)") + "\n"
	}
}

func renderResearch(r *models.ResearchResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Topic:"), r.Topic)
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Summary:"), r.Summary)
	fmt.Fprintf(&b, "%s\n", labelStyle.Render("Key Points:"))
	for i, point := range r.KeyPoints {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, point)
	}
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Confidence:"), r.Confidence)
	if len(r.Sources) > 0 {
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Recommended Sources:"), strings.Join(r.Sources, ", "))
	}
	return b.String()
}

func renderCode(c *models.CodeAnalysis) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Language:"), c.Language)
	fmt.Fprintf(&b, "%s %d/%d\n", labelStyle.Render("Complexity Score:"), c.ComplexityScore, models.MaxComplexity)
	writeList(&b, "Issues:", c.Issues)
	writeList(&b, "Suggestions:", c.Suggestions)
	writeList(&b, "Security Concerns:", c.SecurityConcerns)
	return b.String()
}

func renderCreative(c *models.CreativeContent) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Content Type:"), c.ContentType)
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Title:"), c.Title)
	fmt.Fprintf(&b, "%s %s | %s %s\n",
		labelStyle.Render("Audience:"), c.Audience,
		labelStyle.Render("Tone:"), c.Tone)
	fmt.Fprintf(&b, "%s %d\n\n", labelStyle.Render("Word Count:"), c.WordCount)
	fmt.Fprintf(&b, "%s\n", c.Body)
	return b.String()
}

// writeList prints a labeled bullet list, omitting empty lists.
func writeList(b *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "%s\n", labelStyle.Render(label))
	for _, item := range items {
		fmt.Fprintf(b, "  - %s\n", item)
	}
}

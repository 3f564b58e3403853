package shell

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var bannerTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("86"))

// MultiAgentBanner describes the coordinated loop's agent roster and
// commands.
func MultiAgentBanner() string {
	var b strings.Builder
	b.WriteString(bannerTitleStyle.Render("Troika multi-agent system"))
	b.WriteString("\n\n")
	b.WriteString("Available agents:\n")
	b.WriteString("  research  - topic research and analysis\n")
	b.WriteString("  code      - code analysis and review\n")
	b.WriteString("  creative  - content creation and writing\n")
	b.WriteString("\nCommands:\n")
	b.WriteString("  type any request and agents will coordinate automatically\n")
	b.WriteString("  history   - view task history\n")
	b.WriteString("  stats     - token usage and cost for this session\n")
	b.WriteString("  quit      - stop the system (also exit, q, bye)\n")
	return b.String()
}

// ResearchBanner describes the single-agent research loop.
func ResearchBanner() string {
	var b strings.Builder
	b.WriteString(bannerTitleStyle.Render("Troika research agent"))
	b.WriteString("\n\n")
	b.WriteString("Type a topic to research. Commands: history, stats, quit.\n")
	return b.String()
}

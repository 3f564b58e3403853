package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/troikahq/troika/internal/coordinator"
	"github.com/troikahq/troika/internal/shell"
	"github.com/troikahq/troika/pkg/models"
)

var researchCmd = &cobra.Command{
	Use:   "research [topic]",
	Short: "Research-only session with the research specialist",
	Long: `Run the research specialist on its own, skipping coordination.

With no arguments, starts an interactive session where every line is
researched as a topic. With arguments, researches the given topic once
and exits.

Examples:
  troika research                          # Interactive session
  troika research quantum computing trends # One-shot`,
	RunE: runResearch,
}

func runResearch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfigWithFlags()
	if err != nil {
		return err
	}

	a, err := newApp(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Set ANTHROPIC_API_KEY in your environment or .env file.")
		os.Exit(1)
	}
	defer a.Close()

	disp := coordinator.NewSingleDispatcher(a.specialist(models.AgentResearch), a.sess, a.log)

	if len(args) > 0 {
		topic := strings.Join(args, " ")
		return oneShot(cmd.Context(), disp, a.tracker, topic)
	}

	sh := shell.New(disp, a.sess, os.Stdin, os.Stdout, shell.Options{
		Tracker: a.tracker,
		Banner:  shell.ResearchBanner(),
		Prompt:  "What would you like to research? ",
		Busy:    "Researching, please wait...",
	})
	return sh.Run(cmd.Context())
}

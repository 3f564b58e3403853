package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/troikahq/troika/internal/api"
	"github.com/troikahq/troika/internal/coordinator"
	"github.com/troikahq/troika/internal/shell"
)

var askCmd = &cobra.Command{
	Use:   "ask <request>",
	Short: "Run one coordinated request and exit",
	Long: `Route a single request through the coordinator and print the
specialist results.

Examples:
  troika ask "Research quantum computing trends"
  troika ask "Write a professional email about project updates"
  troika ask "Do a complex analysis on AI impact on healthcare"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func runAsk(cmd *cobra.Command, args []string) error {
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

	coord := coordinator.New(a.sess, a.log, a.specialists...)
	return oneShot(cmd.Context(), coord, a.tracker, strings.Join(args, " "))
}

// oneShot processes a single request, prints the rendered sections,
// and reports duration, token usage, and estimated cost.
func oneShot(ctx context.Context, disp shell.Dispatcher, tracker *api.TokenTracker, request string) error {
	start := time.Now()

	resp, err := disp.Process(ctx, request)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	fmt.Println(coordinator.RenderResponse(resp))

	input, output := tracker.Total()
	fmt.Printf("\nDone! (%s, ~%d tokens, $%.4f)\n",
		time.Since(start).Round(100*time.Millisecond),
		input+output,
		tracker.Cost())
	return nil
}

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/troikahq/troika/internal/coordinator"
)

// exampleRequests exercise each specialty once, plus the chained
// complex-analysis path.
var exampleRequests = []string{
	"Research quantum computing trends",
	"Analyze this Python code: def factorial(n): return 1 if n <= 1 else n * factorial(n-1)",
	"Write a professional email about project updates",
	"Do a complex analysis on artificial intelligence impact on healthcare",
}

var examplesCmd = &cobra.Command{
	Use:   "examples",
	Short: "Run the built-in demonstration requests",
	Long: `Run four demonstration requests through the coordinator, one per
specialty plus a complex analysis, echoing a short preview of each
response. Useful for verifying a fresh setup end to end.`,
	RunE: runExamples,
}

func runExamples(cmd *cobra.Command, args []string) error {
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

	fmt.Println("TROIKA EXAMPLES")
	fmt.Println(strings.Repeat("=", 30))

	for i, example := range exampleRequests {
		fmt.Printf("\n%d. Example: %s\n", i+1, example)
		fmt.Println(strings.Repeat("-", 40))

		resp, err := coord.Process(cmd.Context(), example)
		if err != nil {
			fmt.Printf("Response failed: %v\n", err)
			continue
		}
		fmt.Printf("Response: %s\n", truncateEcho(coordinator.RenderResponse(resp), 200))
	}

	fmt.Println("\nExamples completed!")
	input, output := a.tracker.Total()
	fmt.Printf("Done! (~%d tokens, $%.4f)\n", input+output, a.tracker.Cost())
	return nil
}

// truncateEcho shortens a response preview to max bytes.
func truncateEcho(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/troikahq/troika/internal/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init [directory]",
	Short: "Initialize a troika project",
	Long: `Initialize a directory for use with troika.

This command sets up everything needed to run troika:
  - Checks that an API key is configured
  - Creates a .troika.yaml persona template

The directory argument is optional and defaults to the current directory.

Examples:
  troika init              # Initialize current directory
  troika init ./myproject  # Initialize specific directory
  troika init --force      # Overwrite an existing .troika.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing .troika.yaml")
}

func runInit(cmd *cobra.Command, args []string) error {
	targetDir := "."
	if len(args) > 0 {
		targetDir = args[0]
	}

	absPath, err := filepath.Abs(targetDir)
	if err != nil {
		return fmt.Errorf("resolving absolute path: %w", err)
	}

	if err := os.MkdirAll(absPath, 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", absPath, err)
	}

	fmt.Printf("Initializing troika in %s...\n\n", absPath)

	configPath := filepath.Join(absPath, ".troika.yaml")
	if _, err := os.Stat(configPath); err == nil && !initForce {
		fmt.Println("Directory already initialized. Use --force to overwrite .troika.yaml.")
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	keySource := config.GetAPIKeySource(cfg)
	switch keySource {
	case config.KeySourceEnv:
		printStatus("✓", "ANTHROPIC_API_KEY is set", color.FgGreen)
	case config.KeySourceConfig:
		printStatus("✓", "API key found in config file", color.FgGreen)
	default:
		printStatus("⚠", "No API key configured (you can set it later)", color.FgYellow)
	}

	if err := writeProjectConfig(configPath); err != nil {
		printStatus("✗", "Could not write .troika.yaml", color.FgRed)
		return err
	}
	printStatus("✓", "Created .troika.yaml persona template", color.FgGreen)

	fmt.Printf("\n%s troika initialization complete!\n\n", color.GreenString("✓"))
	fmt.Println("Next steps:")
	if keySource == config.KeySourceNone {
		fmt.Println("  1. Set your API key:")
		fmt.Println("     export ANTHROPIC_API_KEY=your-key-here")
		fmt.Println()
	}
	fmt.Println("  2. Run troika:")
	fmt.Println("     troika                  # interactive session")
	fmt.Println("     troika ask \"your request\"")
	fmt.Println()
	fmt.Println("  3. Learn more:")
	fmt.Println("     troika --help")

	return nil
}

// writeProjectConfig writes the .troika.yaml starter template.
func writeProjectConfig(path string) error {
	template := `# Troika project configuration
# Overrides defaults from ~/.config/troika/config.yaml

# defaults:
#   model: sonnet
#   max_tokens: 8192
#   history_limit: 100

# Per-agent personas. Unset fields fall back to defaults.
agents:
  research:
    model: sonnet
  code:
    model: sonnet
  creative:
    model: sonnet
    audience: general
    tone: professional
    # system_prompt: |
    #   Replacement system prompt for this agent.
`

	return os.WriteFile(path, []byte(template), 0644)
}

// printStatus prints a status line with color
func printStatus(symbol, message string, colorAttr color.Attribute) {
	c := color.New(colorAttr)
	fmt.Printf("%s %s\n", c.Sprint(symbol), message)
}

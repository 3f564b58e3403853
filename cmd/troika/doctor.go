package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/troikahq/troika/internal/api"
	"github.com/troikahq/troika/internal/config"
)

var doctorLive bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check API key setup",
	Long: `Check that troika can reach the Anthropic API.

Verifies an API key is configured and looks valid. With --live, also
makes a minimal one-token API call to confirm the key works end to end.`,
	RunE: runDoctor,
}

func init() {
	doctorCmd.Flags().BoolVar(&doctorLive, "live", false, "Make a minimal API call to verify the key works")
}

func runDoctor(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ok := true

	if cfg.AWS.UseBedrock {
		region := cfg.AWS.Region
		if region == "" {
			region = "default"
		}
		printStatus("✓", fmt.Sprintf("Using AWS Bedrock (region: %s)", region), color.FgGreen)
	} else {
		switch config.GetAPIKeySource(cfg) {
		case config.KeySourceEnv:
			printStatus("✓", "API key found in environment", color.FgGreen)
		case config.KeySourceConfig:
			printStatus("✓", fmt.Sprintf("API key found in %s", config.GetUserConfigPath()), color.FgGreen)
		default:
			printStatus("✗", "No API key configured", color.FgRed)
			ok = false
		}

		if ok {
			key, _ := config.GetAPIKey(cfg)
			if err := config.ValidateAPIKey(key); err != nil {
				printStatus("⚠", fmt.Sprintf("Key format: %v", err), color.FgYellow)
			} else {
				printStatus("✓", fmt.Sprintf("Key format looks valid (%s)", config.MaskAPIKey(key)), color.FgGreen)
			}
		}
	}

	if path := config.GetProjectConfigPath(); path != "" {
		printStatus("✓", fmt.Sprintf("Project config: %s", path), color.FgGreen)
	}

	if !ok {
		fmt.Println("\nSet ANTHROPIC_API_KEY in your environment or run:")
		fmt.Println("  troika config anthropic.api_key sk-ant-...")
		os.Exit(1)
	}

	if doctorLive {
		if err := livePing(cmd.Context(), cfg); err != nil {
			printStatus("✗", fmt.Sprintf("Live check failed: %v", err), color.FgRed)
			os.Exit(1)
		}
		printStatus("✓", "Live check passed", color.FgGreen)
	}

	return nil
}

// livePing makes a one-token API call against the configured model.
func livePing(ctx context.Context, cfg *config.Config) error {
	key, err := resolveKey(cfg)
	if err != nil {
		return err
	}

	client, err := api.NewClient(api.ClientConfig{
		Model:         resolveModel(cfg.Defaults.Model),
		APIKey:        key,
		MaxTokens:     1,
		UseAWSBedrock: cfg.AWS.UseBedrock,
		AWSRegion:     cfg.AWS.Region,
		AWSProfile:    cfg.AWS.Profile,
	})
	if err != nil {
		return err
	}

	_, err = api.NewRunner(client).Run(ctx, "ping")
	return err
}

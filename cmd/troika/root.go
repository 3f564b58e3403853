package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/troikahq/troika/internal/config"
	"github.com/troikahq/troika/internal/coordinator"
	"github.com/troikahq/troika/internal/session"
	"github.com/troikahq/troika/internal/shell"
)

var (
	rootModel    string
	rootDebugLog string
)

var rootCmd = &cobra.Command{
	Use:   "troika",
	Short: "Multi-agent assistant for research, code analysis, and writing",
	Long: `Troika routes your requests to three specialist agents:

  research   gathers findings, key points, and sources on a topic
  code       reviews code for issues, suggestions, and security concerns
  creative   drafts emails, articles, reports, and other content

With no arguments, launches an interactive session. A coordinator
inspects each request, picks the matching specialists, and runs them
in sequence. Complex analysis requests chain research into a written
report.

Commands:
  research   Interactive research-only session (or one-shot with args)
  ask        One-shot coordinated request
  examples   Run the built-in demonstration requests
  config     Show or change configuration
  init       Write a starter .troika.yaml
  doctor     Check API key setup

Config: ~/.config/troika/config.yaml, overridden by .troika.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMultiAgent(cmd.Context())
	},
}

// Execute runs the root command
func Execute() {
	ctx, cancel := signalContext()
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

// runMultiAgent wires the full coordinator stack and drives the
// interactive loop. A missing API key is fatal here, before the first
// prompt; once the loop is running, request failures never exit.
func runMultiAgent(ctx context.Context) error {
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

	disp := &swappableDispatcher{next: coordinator.New(a.sess, a.log, a.specialists...)}

	opts := shell.Options{
		Tracker: a.tracker,
		Banner:  shell.MultiAgentBanner(),
	}
	if watchPath := config.GetProjectConfigPath(); watchPath != "" {
		watcher, werr := config.NewWatcher(watchPath)
		if werr == nil {
			defer watcher.Close()
			opts.Watcher = watcher
			opts.Reload = func() error {
				return a.reloadPersonas(watchPath, func(specialists *coordinator.Coordinator) {
					disp.swap(specialists)
				})
			}
		}
	}

	sh := shell.New(disp, a.sess, os.Stdin, os.Stdout, opts)
	if err := sh.Run(ctx); err != nil && err != context.Canceled {
		return err
	}
	return nil
}

// loadConfigWithFlags loads layered config and applies CLI overrides.
func loadConfigWithFlags() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if rootModel != "" {
		cfg.Defaults.Model = rootModel
	}
	if rootDebugLog != "" {
		cfg.Defaults.DebugLog = rootDebugLog
	}
	return cfg, nil
}

// newSessionLogger opens the debug log configured in defaults, falling
// back to a no-op logger when unset or unopenable.
func newSessionLogger(cfg *config.Config) *session.DebugLogger {
	if cfg.Defaults.DebugLog == "" {
		return session.NopLogger()
	}
	log, err := session.NewDebugLogger(cfg.Defaults.DebugLog)
	if err != nil {
		return session.NopLogger()
	}
	return log
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootModel, "model", "", "Model override: haiku, sonnet, opus, or a full model ID")
	rootCmd.PersistentFlags().StringVar(&rootDebugLog, "debug-log", "", "Write a session debug log to this path")

	rootCmd.AddCommand(researchCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(examplesCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(versionCmd)
}

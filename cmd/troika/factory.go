package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/anthropics/anthropic-sdk-go"

	"github.com/troikahq/troika/internal/agent"
	"github.com/troikahq/troika/internal/api"
	"github.com/troikahq/troika/internal/config"
	"github.com/troikahq/troika/internal/coordinator"
	"github.com/troikahq/troika/internal/session"
	"github.com/troikahq/troika/pkg/models"
)

// app bundles the wired pieces shared by the interactive and one-shot
// commands: config, token tracker, session, logger, and the three
// specialists.
type app struct {
	cfg         *config.Config
	key         string
	tracker     *api.TokenTracker
	sess        *session.Context
	log         *session.DebugLogger
	specialists []agent.Agent
}

// newApp resolves credentials and builds the specialists. A missing
// API key fails here so callers can exit before any loop starts.
func newApp(cfg *config.Config) (*app, error) {
	key, err := resolveKey(cfg)
	if err != nil {
		return nil, err
	}

	tracker := api.NewTokenTracker()
	specialists, err := buildSpecialists(cfg, key, tracker)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:         cfg,
		key:         key,
		tracker:     tracker,
		sess:        session.NewContextWithLimit(cfg.Defaults.HistoryLimit),
		log:         newSessionLogger(cfg),
		specialists: specialists,
	}, nil
}

// Close releases the debug log.
func (a *app) Close() {
	if a.log != nil {
		a.log.Close()
	}
}

// specialist returns the built agent of the given kind, or nil.
func (a *app) specialist(kind models.AgentKind) agent.Agent {
	for _, s := range a.specialists {
		if s.Kind() == kind {
			return s
		}
	}
	return nil
}

// reloadPersonas re-reads the agents block from the project config,
// rebuilds the specialists, and hands a fresh coordinator to swap. The
// session and tracker carry over so history and stats survive reloads.
func (a *app) reloadPersonas(path string, swap func(*coordinator.Coordinator)) error {
	personas, err := config.LoadPersonas(path)
	if err != nil {
		return err
	}
	a.cfg.Agents = config.MergePersonas(a.cfg.Agents, personas)

	specialists, err := buildSpecialists(a.cfg, a.key, a.tracker)
	if err != nil {
		return err
	}
	a.specialists = specialists
	swap(coordinator.New(a.sess, a.log, specialists...))
	return nil
}

// resolveKey returns the Anthropic API key. Bedrock carries its own
// credentials, so no key is required on that path.
func resolveKey(cfg *config.Config) (string, error) {
	if cfg.AWS.UseBedrock {
		return "", nil
	}
	return config.GetAPIKey(cfg)
}

// buildSpecialists constructs the research, code, and creative agents
// from persona config. Personas may override the model or token cap per
// agent; every client shares one tracker so stats report combined usage.
func buildSpecialists(cfg *config.Config, key string, tracker *api.TokenTracker) ([]agent.Agent, error) {
	personas := config.MergePersonas(config.DefaultPersonas(), cfg.Agents)

	research := personas["research"]
	researchRunner, err := personaRunner(cfg, key, tracker, research)
	if err != nil {
		return nil, fmt.Errorf("research agent: %w", err)
	}

	code := personas["code"]
	codeRunner, err := personaRunner(cfg, key, tracker, code)
	if err != nil {
		return nil, fmt.Errorf("code agent: %w", err)
	}

	creative := personas["creative"]
	creativeRunner, err := personaRunner(cfg, key, tracker, creative)
	if err != nil {
		return nil, fmt.Errorf("creative agent: %w", err)
	}

	return []agent.Agent{
		agent.NewResearchAgent(researchRunner, agent.WithSystemPrompt(research.SystemPrompt)),
		agent.NewCodeAgent(codeRunner, agent.WithSystemPrompt(code.SystemPrompt)),
		agent.NewCreativeAgent(creativeRunner,
			agent.WithSystemPrompt(creative.SystemPrompt),
			agent.WithAudience(creative.Audience),
			agent.WithTone(creative.Tone),
		),
	}, nil
}

// personaRunner builds the API runner for one persona, falling back to
// session defaults for anything the persona leaves unset.
func personaRunner(cfg *config.Config, key string, tracker *api.TokenTracker, p config.Persona) (*api.Runner, error) {
	model := cfg.Defaults.Model
	if p.Model != "" {
		model = p.Model
	}
	maxTokens := cfg.Defaults.MaxTokens
	if p.MaxTokens > 0 {
		maxTokens = p.MaxTokens
	}

	client, err := api.NewClient(api.ClientConfig{
		Model:         resolveModel(model),
		APIKey:        key,
		MaxTokens:     int64(maxTokens),
		Tracker:       tracker,
		UseAWSBedrock: cfg.AWS.UseBedrock,
		AWSRegion:     cfg.AWS.Region,
		AWSProfile:    cfg.AWS.Profile,
	})
	if err != nil {
		return nil, err
	}
	return api.NewRunner(client), nil
}

// resolveModel maps config shortnames to full model identifiers. Full
// identifiers pass through unchanged.
func resolveModel(name string) anthropic.Model {
	switch name {
	case "haiku":
		return anthropic.ModelClaude3_5Haiku20241022
	case "sonnet":
		return anthropic.ModelClaudeSonnet4_20250514
	case "opus":
		return anthropic.ModelClaudeOpus4_5_20251101
	default:
		return anthropic.Model(name)
	}
}

// swappableDispatcher lets a persona reload replace the coordinator
// without restarting the shell loop.
type swappableDispatcher struct {
	mu   sync.Mutex
	next *coordinator.Coordinator
}

func (d *swappableDispatcher) Process(ctx context.Context, request string) (*coordinator.Response, error) {
	d.mu.Lock()
	cur := d.next
	d.mu.Unlock()
	return cur.Process(ctx, request)
}

func (d *swappableDispatcher) swap(next *coordinator.Coordinator) {
	d.mu.Lock()
	d.next = next
	d.mu.Unlock()
}

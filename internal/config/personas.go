package config

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Persona overrides one agent's model parameters and voice. Zero-value
// fields keep the agent's built-in defaults.
type Persona struct {
	// Model is a model shortname (haiku, sonnet, opus) or a full
	// identifier.
	Model string `mapstructure:"model" yaml:"model,omitempty"`
	// MaxTokens caps the agent's responses.
	MaxTokens int `mapstructure:"max_tokens" yaml:"max_tokens,omitempty"`
	// Audience is the creative agent's default target audience.
	Audience string `mapstructure:"audience" yaml:"audience,omitempty"`
	// Tone is the creative agent's default writing tone.
	Tone string `mapstructure:"tone" yaml:"tone,omitempty"`
	// SystemPrompt replaces the agent's built-in system prompt.
	SystemPrompt string `mapstructure:"system_prompt" yaml:"system_prompt,omitempty"`
}

// personaFile is the agents block of a .troika.yaml file.
type personaFile struct {
	Agents map[string]Persona `yaml:"agents"`
}

// LoadPersonas reads per-agent personas from a project config file.
// Unknown agent names are kept; callers decide what to wire.
func LoadPersonas(path string) (map[string]Persona, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f personaFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing personas from %s: %w", path, err)
	}
	if f.Agents == nil {
		return map[string]Persona{}, nil
	}
	return f.Agents, nil
}

// DefaultPersonas returns the built-in personas used when no project
// config overrides them.
func DefaultPersonas() map[string]Persona {
	return map[string]Persona{
		"research": {Model: "sonnet"},
		"code":     {Model: "sonnet"},
		"creative": {Model: "sonnet", Audience: "general", Tone: "professional"},
	}
}

// MergePersonas overlays non-zero override fields onto base, keeping
// base entries that are not overridden.
func MergePersonas(base, overrides map[string]Persona) map[string]Persona {
	out := make(map[string]Persona, len(base))
	for name, p := range base {
		out[name] = p
	}
	for name, o := range overrides {
		p := out[name]
		if o.Model != "" {
			p.Model = o.Model
		}
		if o.MaxTokens > 0 {
			p.MaxTokens = o.MaxTokens
		}
		if o.Audience != "" {
			p.Audience = o.Audience
		}
		if o.Tone != "" {
			p.Tone = o.Tone
		}
		if o.SystemPrompt != "" {
			p.SystemPrompt = o.SystemPrompt
		}
		out[name] = p
	}
	return out
}

package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Default returns a validated configuration with all defaults applied,
// including environment overrides.
func Default() *Config {
	cfg := &Config{}
	cfg.applyEnv()
	// Validate cannot fail on a zero config; it only applies defaults.
	_ = cfg.Validate()
	return cfg
}

// Load reads a yaml config file, applies environment overrides, and
// validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// applyEnv layers the supported environment variables on top of the file
// values.
func (c *Config) applyEnv() {
	if region := os.Getenv("AWS_REGION"); region != "" {
		c.Bedrock.Region = region
	}
	if modelID := os.Getenv("BEDROCK_MODEL_ID"); modelID != "" {
		c.Bedrock.ModelID = modelID
	}
	if useAI := os.Getenv("USE_AI_SUMMARY"); useAI != "" {
		c.SetAIEnabled(strings.EqualFold(useAI, "true"))
	}
}

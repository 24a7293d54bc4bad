package config

import "fmt"

// Output format values.
const (
	FormatMarkdown = "markdown"
	FormatDocx     = "docx"
	FormatBoth     = "both"
)

type Config struct {
	Bedrock     BedrockConfig     `yaml:"bedrock"`
	Summary     SummaryConfig     `yaml:"summary"`
	Output      OutputConfig      `yaml:"output"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type BedrockConfig struct {
	Region          string   `yaml:"region"`
	ModelID         string   `yaml:"model_id"`
	AccessKeyID     string   `yaml:"access_key_id"`
	SecretAccessKey string   `yaml:"secret_access_key"`
	SessionToken    string   `yaml:"session_token"`
	MaxTokens       int      `yaml:"max_tokens"`
	Temperature     float64  `yaml:"temperature"`
	TopP            float64  `yaml:"top_p"`
	Enabled         *bool    `yaml:"enabled"`
}

type SummaryConfig struct {
	MaxKeyPoints   int    `yaml:"max_key_points"`
	SourceLanguage string `yaml:"source_language"`
	TranslateTo    string `yaml:"translate_to"`
}

type OutputConfig struct {
	Dir    string `yaml:"dir"`
	Format string `yaml:"format"`
}

type PathsConfig struct {
	Queue    string `yaml:"queue"`
	Archived string `yaml:"archived"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// AIEnabled reports whether the AI summarization path is active.
// Defaults to true when unset.
func (c *Config) AIEnabled() bool {
	return c.Bedrock.Enabled == nil || *c.Bedrock.Enabled
}

// SetAIEnabled overrides the AI summarization flag.
func (c *Config) SetAIEnabled(enabled bool) {
	c.Bedrock.Enabled = &enabled
}

// Validate applies defaults and rejects invalid settings.
func (c *Config) Validate() error {
	if c.Bedrock.Region == "" {
		c.Bedrock.Region = "us-east-1"
	}
	if c.Bedrock.ModelID == "" {
		c.Bedrock.ModelID = "amazon.nova-lite-v1:0"
	}
	if c.Bedrock.MaxTokens == 0 {
		c.Bedrock.MaxTokens = 2048
	}
	if c.Bedrock.Temperature == 0 {
		c.Bedrock.Temperature = 0.7
	}
	if c.Bedrock.TopP == 0 {
		c.Bedrock.TopP = 0.9
	}
	if c.Summary.MaxKeyPoints == 0 {
		c.Summary.MaxKeyPoints = 10
	}
	if c.Summary.MaxKeyPoints < 0 {
		return fmt.Errorf("summary.max_key_points must not be negative")
	}
	if c.Output.Dir == "" {
		c.Output.Dir = "."
	}
	if c.Output.Format == "" {
		c.Output.Format = FormatMarkdown
	}
	switch c.Output.Format {
	case FormatMarkdown, FormatDocx, FormatBoth:
	default:
		return fmt.Errorf("output.format must be one of markdown, docx, both")
	}
	if c.Paths.Queue == "" {
		c.Paths.Queue = "data/queue"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Performance.MaxConcurrent <= 0 {
		c.Performance.MaxConcurrent = 2
	}

	return nil
}

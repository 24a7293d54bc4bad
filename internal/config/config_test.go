package config

import (
	"os"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "empty config gets defaults",
			config:  Config{},
			wantErr: false,
		},
		{
			name: "bad output format",
			config: Config{
				Output: OutputConfig{Format: "pdf"},
			},
			wantErr: true,
		},
		{
			name: "negative key point count",
			config: Config{
				Summary: SummaryConfig{MaxKeyPoints: -1},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Bedrock.Region != "us-east-1" {
		t.Errorf("Region = %v, want us-east-1", cfg.Bedrock.Region)
	}
	if cfg.Bedrock.ModelID != "amazon.nova-lite-v1:0" {
		t.Errorf("ModelID = %v, want amazon.nova-lite-v1:0", cfg.Bedrock.ModelID)
	}
	if cfg.Bedrock.MaxTokens != 2048 {
		t.Errorf("MaxTokens = %v, want 2048", cfg.Bedrock.MaxTokens)
	}
	if cfg.Summary.MaxKeyPoints != 10 {
		t.Errorf("MaxKeyPoints = %v, want 10", cfg.Summary.MaxKeyPoints)
	}
	if cfg.Output.Format != FormatMarkdown {
		t.Errorf("Format = %v, want markdown", cfg.Output.Format)
	}
	if !cfg.AIEnabled() {
		t.Error("AIEnabled() = false, want true by default")
	}
}

func TestLoad(t *testing.T) {
	tmpfile, err := os.CreateTemp(t.TempDir(), "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}

	content := `
bedrock:
  region: "eu-west-1"
  model_id: "anthropic.claude-3-5-haiku-20241022-v1:0"
  max_tokens: 1024

summary:
  max_key_points: 5

output:
  dir: "out"
  format: "both"

logging:
  level: "debug"
  format: "json"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Bedrock.Region != "eu-west-1" {
		t.Errorf("Region = %v, want eu-west-1", cfg.Bedrock.Region)
	}
	if cfg.Summary.MaxKeyPoints != 5 {
		t.Errorf("MaxKeyPoints = %v, want 5", cfg.Summary.MaxKeyPoints)
	}
	if cfg.Output.Format != FormatBoth {
		t.Errorf("Format = %v, want both", cfg.Output.Format)
	}

	// Defaults still apply to omitted sections
	if cfg.Performance.MaxConcurrent != 2 {
		t.Errorf("MaxConcurrent = %v, want 2", cfg.Performance.MaxConcurrent)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("AWS_REGION", "ap-southeast-1")
	t.Setenv("BEDROCK_MODEL_ID", "meta.llama3-1-8b-instruct-v1:0")
	t.Setenv("USE_AI_SUMMARY", "false")

	cfg := Default()

	if cfg.Bedrock.Region != "ap-southeast-1" {
		t.Errorf("Region = %v, want ap-southeast-1", cfg.Bedrock.Region)
	}
	if cfg.Bedrock.ModelID != "meta.llama3-1-8b-instruct-v1:0" {
		t.Errorf("ModelID = %v, want meta.llama3-1-8b-instruct-v1:0", cfg.Bedrock.ModelID)
	}
	if cfg.AIEnabled() {
		t.Error("AIEnabled() = true, want false after USE_AI_SUMMARY=false")
	}
}

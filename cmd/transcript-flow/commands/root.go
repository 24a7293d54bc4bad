package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ndquoc2512/transcript-flow/internal/config"
	"github.com/ndquoc2512/transcript-flow/internal/logger"
	"github.com/ndquoc2512/transcript-flow/internal/processor"
	"github.com/ndquoc2512/transcript-flow/internal/transcript"
)

const defaultConfigPath = "config.yaml"

var (
	// cfgPath is the path to the yaml config file.
	cfgPath string

	// outputDir overrides the configured output directory.
	outputDir string

	// sourceLang is the transcript source language code.
	sourceLang string

	// translateTo translates the transcript to this language.
	translateTo string

	// outputFormat selects the document format (markdown, docx, both).
	outputFormat string

	// noAI disables the AI summarization path.
	noAI bool
)

// rootCmd processes a single video URL through the pipeline.
var rootCmd = &cobra.Command{
	Use:   "transcript-flow [url]",
	Short: "Generate transcripts and summaries from YouTube videos",
	Long: `transcript-flow fetches the transcript of a YouTube video, summarizes it
with an AWS Bedrock model (falling back to a rule-based extractor when AI is
unavailable), and writes the summary plus full transcript as a document.

Examples:
  transcript-flow https://www.youtube.com/watch?v=dQw4w9WgXcQ
  transcript-flow https://youtu.be/dQw4w9WgXcQ -o ./output
  transcript-flow https://youtube.com/watch?v=VIDEO_ID --source-lang ml --translate-to en`,
	Args:          cobra.ExactArgs(1),
	RunE:          runProcess,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgPath, "config", defaultConfigPath,
		"Path to the yaml config file",
	)

	rootCmd.Flags().StringVarP(
		&outputDir, "output-dir", "o", "",
		"Output directory for the generated document (default: current directory)",
	)
	rootCmd.Flags().StringVar(
		&sourceLang, "source-lang", "",
		"Source language code (e.g. en, es, zh-Hans). Auto-detected when omitted",
	)
	rootCmd.Flags().StringVar(
		&translateTo, "translate-to", "",
		"Translate the transcript to this language (e.g. en)",
	)
	rootCmd.Flags().StringVar(
		&outputFormat, "format", "",
		"Output format: markdown, docx, both",
	)
	rootCmd.Flags().BoolVar(
		&noAI, "no-ai", false,
		"Disable AI summarization and use the rule-based extractor",
	)

	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the config file (defaults when the default path is
// absent) and layers the CLI flags on top.
func loadConfig() (*config.Config, error) {
	var cfg *config.Config

	if _, err := os.Stat(cfgPath); os.IsNotExist(err) && cfgPath == defaultConfigPath {
		cfg = config.Default()
	} else {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if outputDir != "" {
		cfg.Output.Dir = outputDir
	}
	if sourceLang != "" {
		cfg.Summary.SourceLanguage = sourceLang
	}
	if translateTo != "" {
		cfg.Summary.TranslateTo = translateTo
	}
	if outputFormat != "" {
		cfg.Output.Format = outputFormat
	}
	if noAI {
		cfg.SetAIEnabled(false)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// runProcess handles the root command: one URL, one document.
func runProcess(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	if err := os.MkdirAll(cfg.Output.Dir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	fetcher := transcript.New(log)
	proc := processor.New(cfg, fetcher, log)

	path, err := proc.Process(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Success! Transcript and summary saved to: %s\n", path)
	return nil
}

package processor

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/ndquoc2512/transcript-flow/internal/bedrock"
	"github.com/ndquoc2512/transcript-flow/internal/config"
	"github.com/ndquoc2512/transcript-flow/internal/logger"
	"github.com/ndquoc2512/transcript-flow/internal/markdown"
	"github.com/ndquoc2512/transcript-flow/internal/models"
	"github.com/ndquoc2512/transcript-flow/internal/summarizer"
	"github.com/ndquoc2512/transcript-flow/internal/writer"
	"github.com/ndquoc2512/transcript-flow/internal/youtube"
)

// fallbackLanguages is tried in order of global internet usage when no
// source language is configured.
var fallbackLanguages = []string{
	"en", "es", "zh-Hans", "zh-Hant", "hi", "ar", "pt", "bn", "ru", "ja",
	"de", "fr", "ko", "it", "tr", "vi", "pl", "uk", "nl", "th", "id",
	"ml", "ta", "te", "mr",
}

// Process orchestrates one pipeline run: parse URL, fetch transcript,
// summarize, render, save.
func (p *implProcessor) Process(ctx context.Context, rawURL string) (string, error) {
	start := time.Now()
	log := p.logger.WithField("run_id", uuid.NewString())

	log.Info(ctx, "Processing video: %s", rawURL)

	parsed, err := youtube.ParseURL(rawURL)
	if err != nil {
		return "", err
	}

	transcript, err := p.fetchTranscript(ctx, log, parsed.VideoID)
	if err != nil {
		return "", err
	}

	summ := p.newSummarizer(ctx, log)
	summary := summ.Summarize(ctx, transcript, p.cfg.Summary.MaxKeyPoints)

	title := "Video_" + parsed.VideoID
	doc := markdown.Generate(transcript, summary, title)

	outputPath, err := p.writeDocuments(ctx, log, transcript, summary, doc)
	if err != nil {
		return "", err
	}

	log.Info(ctx, "Processing completed in %s", time.Since(start).Round(time.Millisecond))
	return outputPath, nil
}

// fetchTranscript tries the configured language, or walks the fallback list
// when none is set. Terminal failures stop the walk early.
func (p *implProcessor) fetchTranscript(ctx context.Context, log logger.Logger, videoID string) (models.Transcript, error) {
	languages := fallbackLanguages
	if p.cfg.Summary.SourceLanguage != "" {
		languages = []string{p.cfg.Summary.SourceLanguage}
	}

	var lastErr error
	for _, lang := range languages {
		transcript, err := p.fetcher.Fetch(ctx, videoID, lang, p.cfg.Summary.TranslateTo)
		if err == nil {
			log.Info(ctx, "Transcript found in language: %s", lang)
			return transcript, nil
		}
		lastErr = err

		var perr *models.ProcessingError
		if errors.As(err, &perr) &&
			(perr.Type == models.ErrVideoNotFound || perr.Type == models.ErrNetwork) {
			break
		}
	}

	return models.Transcript{}, lastErr
}

// newSummarizer wires the per-run summarization engine. A missing or broken
// Bedrock client degrades to the rule-based path instead of failing the run.
func (p *implProcessor) newSummarizer(ctx context.Context, log logger.Logger) summarizer.Summarizer {
	params := bedrock.Params{
		MaxTokens:   p.cfg.Bedrock.MaxTokens,
		Temperature: p.cfg.Bedrock.Temperature,
		TopP:        p.cfg.Bedrock.TopP,
	}

	if !p.cfg.AIEnabled() {
		return summarizer.New(nil, params, log)
	}

	invoker, err := p.newInvoker(ctx)
	if err != nil {
		log.Warn(ctx, "Bedrock client unavailable (%v), using rule-based summarization", err)
		return summarizer.New(nil, params, log)
	}
	return summarizer.New(invoker, params, log)
}

func (p *implProcessor) writeDocuments(ctx context.Context, log logger.Logger, transcript models.Transcript, summary models.Summary, doc models.MarkdownDocument) (string, error) {
	var outputPath string

	format := p.cfg.Output.Format
	if format == config.FormatMarkdown || format == config.FormatBoth {
		path, err := writer.SaveMarkdown(doc, p.cfg.Output.Dir)
		if err != nil {
			return "", err
		}
		log.Info(ctx, "Markdown written: %s", path)
		outputPath = path
	}

	if format == config.FormatDocx || format == config.FormatBoth {
		path := writer.OutputPath(doc.VideoTitle, p.cfg.Output.Dir, ".docx")
		if err := markdown.WriteDocx(transcript, summary, doc.VideoTitle, path); err != nil {
			return "", models.NewProcessingError(
				models.ErrFileWrite,
				"failed to write docx file",
				err.Error(),
			)
		}
		log.Info(ctx, "Docx written: %s", path)
		if outputPath == "" {
			outputPath = path
		}
	}

	return outputPath, nil
}

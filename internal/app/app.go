package app

import (
	"fmt"
	"os"

	"github.com/nguyentantai21042004/minutes-flow/internal/api"
	"github.com/nguyentantai21042004/minutes-flow/internal/audio"
	"github.com/nguyentantai21042004/minutes-flow/internal/config"
	"github.com/nguyentantai21042004/minutes-flow/internal/logger"
	"github.com/nguyentantai21042004/minutes-flow/internal/pipeline"
	"github.com/nguyentantai21042004/minutes-flow/internal/processor"
	"github.com/nguyentantai21042004/minutes-flow/internal/provider/gemini"
	"github.com/nguyentantai21042004/minutes-flow/internal/provider/openai"
	"github.com/nguyentantai21042004/minutes-flow/internal/report"
	"github.com/nguyentantai21042004/minutes-flow/internal/summarizer"
	"github.com/nguyentantai21042004/minutes-flow/internal/transcriber"
	"github.com/nguyentantai21042004/minutes-flow/pkg/executor"
)

// App holds the wired components every command needs.
type App struct {
	Config    *config.Config
	Logger    logger.Logger
	Pipeline  pipeline.Pipeline
	Processor processor.Processor
	Handler   api.Handler
}

// New builds the components described by cfg.
func New(cfg *config.Config) (*App, error) {
	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	if err := ensureDirectories(cfg); err != nil {
		return nil, err
	}

	exec := executor.New()
	prober := audio.NewProber(cfg.FFmpeg.ProbePath, exec, log)
	splitter := audio.New(audio.Options{
		MaxPartSize:  cfg.Limits.MaxPartSize,
		FFmpegPath:   cfg.FFmpeg.BinaryPath,
		AudioCodec:   cfg.FFmpeg.AudioCodec,
		AudioBitrate: cfg.FFmpeg.AudioBitrate,
		PartFormat:   cfg.FFmpeg.PartFormat,
	}, exec, prober, log)

	clients := &clientSet{cfg: cfg, logger: log}
	stt, err := clients.transcriber()
	if err != nil {
		return nil, err
	}
	gen, err := clients.generator()
	if err != nil {
		return nil, err
	}

	acc := transcriber.New(stt, transcriber.Options{
		Model:       cfg.Transcription.Model,
		Language:    cfg.Transcription.Language,
		Concurrency: cfg.Transcription.Concurrency,
		Separator:   cfg.Transcription.Separator,
	}, log)
	sum := summarizer.New(gen, cfg.Summarization.Model, log)

	p, err := pipeline.New(pipeline.Options{
		TranscriptionModel: cfg.Transcription.Model,
		SummarizationModel: cfg.Summarization.Model,
		MaxTotalSize:       cfg.Limits.MaxTotalSize,
		MaxPartSize:        cfg.Limits.MaxPartSize,
		TempDir:            cfg.Paths.Temp,
	}, splitter, acc, sum, log)
	if err != nil {
		return nil, err
	}

	reports, err := report.New(report.Options{
		Formats:           cfg.Reports.Formats,
		IncludeTranscript: cfg.Reports.IncludeTranscript,
	}, log)
	if err != nil {
		return nil, err
	}

	return &App{
		Config:    cfg,
		Logger:    log,
		Pipeline:  p,
		Processor: processor.New(cfg.Paths, p, reports, log),
		Handler:   api.New(p, cfg.Limits.MaxTotalSize, log),
	}, nil
}

// clientSet creates each provider client at most once so a provider used
// for both capabilities shares one client.
type clientSet struct {
	cfg    *config.Config
	logger logger.Logger
	openai *openai.Client
	gemini *gemini.Client
}

func (c *clientSet) transcriber() (transcriber.Client, error) {
	switch c.cfg.Transcription.Provider {
	case config.ProviderGemini:
		return c.geminiClient()
	default:
		return c.openaiClient()
	}
}

func (c *clientSet) generator() (summarizer.Generator, error) {
	switch c.cfg.Summarization.Provider {
	case config.ProviderGemini:
		return c.geminiClient()
	default:
		return c.openaiClient()
	}
}

func (c *clientSet) openaiClient() (*openai.Client, error) {
	if c.openai != nil {
		return c.openai, nil
	}
	client, err := openai.New(c.cfg.OpenAI.APIKey, c.logger,
		openai.WithBaseURL(c.cfg.OpenAI.BaseURL),
		openai.WithTimeout(c.cfg.OpenAI.Timeout))
	if err != nil {
		return nil, err
	}
	c.openai = client
	return client, nil
}

func (c *clientSet) geminiClient() (*gemini.Client, error) {
	if c.gemini != nil {
		return c.gemini, nil
	}
	client, err := gemini.New(c.cfg.Gemini.APIKeys, c.logger)
	if err != nil {
		return nil, err
	}
	c.gemini = client
	return client, nil
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Archived,
		cfg.Paths.Temp,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}

package config

import (
	"fmt"
	"time"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"

	MiB = 1024 * 1024

	DefaultMaxTotalSize = 125 * MiB
	DefaultMaxPartSize  = 25 * MiB
)

type Config struct {
	Transcription TranscriptionConfig `yaml:"transcription"`
	Summarization SummarizationConfig `yaml:"summarization"`
	Limits        LimitsConfig        `yaml:"limits"`
	FFmpeg        FFmpegConfig        `yaml:"ffmpeg"`
	Paths         PathsConfig         `yaml:"paths"`
	Logging       LoggingConfig       `yaml:"logging"`
	Performance   PerformanceConfig   `yaml:"performance"`
	Server        ServerConfig        `yaml:"server"`
	OpenAI        OpenAIConfig        `yaml:"openai"`
	Gemini        GeminiConfig        `yaml:"gemini"`
	Reports       ReportsConfig       `yaml:"reports"`
}

type TranscriptionConfig struct {
	Provider    string `yaml:"provider"`
	Model       string `yaml:"model"`
	Language    string `yaml:"language"`
	Concurrency int    `yaml:"concurrency"`
	// Separator is inserted between part transcripts. Empty keeps parts
	// glued together exactly as returned.
	Separator string `yaml:"separator"`
}

type SummarizationConfig struct {
	Provider string `yaml:"provider"`
	Model    string `yaml:"model"`
}

type LimitsConfig struct {
	MaxTotalSize int64 `yaml:"max_total_size"`
	MaxPartSize  int64 `yaml:"max_part_size"`
}

type FFmpegConfig struct {
	BinaryPath   string `yaml:"binary_path"`
	ProbePath    string `yaml:"probe_path"`
	AudioCodec   string `yaml:"audio_codec"`
	AudioBitrate string `yaml:"audio_bitrate"`
	PartFormat   string `yaml:"part_format"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
	Temp     string `yaml:"temp"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

type OpenAIConfig struct {
	APIKey  string        `yaml:"api_key"`
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

type GeminiConfig struct {
	APIKeys []string `yaml:"api_keys"`
}

type ReportsConfig struct {
	// Formats is any of json, md, docx.
	Formats           []string `yaml:"formats"`
	IncludeTranscript bool     `yaml:"include_transcript"`
}

// Validate checks required fields and fills defaults for the rest.
func (c *Config) Validate() error {
	if c.Transcription.Provider == "" {
		c.Transcription.Provider = ProviderOpenAI
	}
	if c.Summarization.Provider == "" {
		c.Summarization.Provider = ProviderOpenAI
	}
	if !validProvider(c.Transcription.Provider) {
		return fmt.Errorf("transcription.provider %q is not supported", c.Transcription.Provider)
	}
	if !validProvider(c.Summarization.Provider) {
		return fmt.Errorf("summarization.provider %q is not supported", c.Summarization.Provider)
	}

	if c.Transcription.Model == "" {
		c.Transcription.Model = defaultModel(c.Transcription.Provider, "whisper-1", "gemini-2.5-flash")
	}
	if c.Summarization.Model == "" {
		c.Summarization.Model = defaultModel(c.Summarization.Provider, "gpt-3.5-turbo-16k", "gemini-2.5-flash")
	}
	if c.Transcription.Concurrency <= 0 {
		c.Transcription.Concurrency = 4
	}

	if c.Limits.MaxTotalSize == 0 {
		c.Limits.MaxTotalSize = DefaultMaxTotalSize
	}
	if c.Limits.MaxPartSize == 0 {
		c.Limits.MaxPartSize = DefaultMaxPartSize
	}
	if c.Limits.MaxTotalSize < 0 || c.Limits.MaxPartSize < 0 {
		return fmt.Errorf("limits must be positive")
	}
	if c.Limits.MaxPartSize > c.Limits.MaxTotalSize {
		return fmt.Errorf("limits.max_part_size (%d) exceeds limits.max_total_size (%d)",
			c.Limits.MaxPartSize, c.Limits.MaxTotalSize)
	}

	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.FFmpeg.ProbePath == "" {
		c.FFmpeg.ProbePath = "ffprobe"
	}
	if c.FFmpeg.AudioCodec == "" {
		c.FFmpeg.AudioCodec = "libmp3lame"
	}
	if c.FFmpeg.AudioBitrate == "" {
		c.FFmpeg.AudioBitrate = "128k"
	}
	if c.FFmpeg.PartFormat == "" {
		c.FFmpeg.PartFormat = "mp3"
	}

	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/output"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}

	if c.Server.Addr == "" {
		c.Server.Addr = ":9977"
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 2 * time.Minute
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 30 * time.Minute
	}

	if c.OpenAI.BaseURL == "" {
		c.OpenAI.BaseURL = "https://api.openai.com/v1"
	}
	if c.OpenAI.Timeout == 0 {
		c.OpenAI.Timeout = 10 * time.Minute
	}

	if len(c.Reports.Formats) == 0 {
		c.Reports.Formats = []string{"json", "md", "docx"}
	}

	if c.uses(ProviderOpenAI) && c.OpenAI.APIKey == "" {
		return fmt.Errorf("openai.api_key is required (or set OPENAI_API_KEY)")
	}
	if c.uses(ProviderGemini) && len(c.Gemini.APIKeys) == 0 {
		return fmt.Errorf("gemini.api_keys is required (or set GEMINI_API_KEYS)")
	}

	return nil
}

func (c *Config) uses(provider string) bool {
	return c.Transcription.Provider == provider || c.Summarization.Provider == provider
}

func validProvider(p string) bool {
	return p == ProviderOpenAI || p == ProviderGemini
}

func defaultModel(provider, openai, gemini string) string {
	if provider == ProviderGemini {
		return gemini
	}
	return openai
}

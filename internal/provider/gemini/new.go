package gemini

import (
	"context"
	"errors"
	"strings"
	"sync"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/minutes-flow/internal/logger"
	"github.com/nguyentantai21042004/minutes-flow/internal/summarizer"
	"github.com/nguyentantai21042004/minutes-flow/internal/transcriber"
)

var (
	_ transcriber.Client   = (*Client)(nil)
	_ summarizer.Generator = (*Client)(nil)
)

// models is the slice of *genai.Models the client depends on.
type models interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type modelsFactory func(ctx context.Context, apiKey string) (models, error)

// Client calls Gemini through one of several API keys, moving to the next
// key whenever the current one is rate limited.
type Client struct {
	apiKeys []string
	logger  logger.Logger
	connect modelsFactory

	mu         sync.Mutex
	currentKey int
	clients    map[int]models
}

// New creates a Client that rotates through apiKeys.
func New(apiKeys []string, log logger.Logger) (*Client, error) {
	return newClient(apiKeys, log, connectGemini)
}

func newClient(apiKeys []string, log logger.Logger, connect modelsFactory) (*Client, error) {
	keys := make([]string, 0, len(apiKeys))
	for _, k := range apiKeys {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return nil, errors.New("gemini: at least one API key is required")
	}

	return &Client{
		apiKeys: keys,
		logger:  log,
		connect: connect,
		clients: make(map[int]models),
	}, nil
}

func connectGemini(ctx context.Context, apiKey string) (models, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return client.Models, nil
}

package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/minutes-flow/internal/summarizer"
)

// Generate runs req with the system instruction set on the request config.
func (c *Client) Generate(ctx context.Context, req summarizer.Request) (string, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(req.System, genai.RoleUser),
		Temperature:       genai.Ptr(req.Temperature),
	}
	return c.generate(ctx, req.Model, genai.Text(req.User), config)
}

// generate sends contents with the current key. Rotates API keys on
// 429 / quota errors until every key has been tried once.
func (c *Client) generate(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (string, error) {
	var lastErr error

	for range len(c.apiKeys) {
		idx, m, err := c.current(ctx)
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			c.rotateFrom(idx)
			continue
		}

		result, err := m.GenerateContent(ctx, model, contents, config)
		if err != nil {
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			if isRateLimited(err) {
				c.logger.Warn(ctx, "Key %d rate limited, rotating...", idx+1)
				c.rotateFrom(idx)
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		return responseText(result)
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

// current returns the active key index and its lazily created client.
func (c *Client) current(ctx context.Context) (int, models, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.currentKey
	if m, ok := c.clients[idx]; ok {
		return idx, m, nil
	}
	m, err := c.connect(ctx, c.apiKeys[idx])
	if err != nil {
		return idx, nil, err
	}
	c.clients[idx] = m
	return idx, m, nil
}

// rotateFrom advances past idx unless a concurrent caller already did.
func (c *Client) rotateFrom(idx int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.currentKey == idx {
		c.currentKey = (idx + 1) % len(c.apiKeys)
	}
}

func isRateLimited(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

func responseText(result *genai.GenerateContentResponse) (string, error) {
	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		var text strings.Builder
		for _, part := range result.Candidates[0].Content.Parts {
			if part != nil && part.Text != "" {
				text.WriteString(part.Text)
			}
		}
		return text.String(), nil
	}
	return "", errors.New("empty response from Gemini")
}

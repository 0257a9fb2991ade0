package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/nguyentantai21042004/minutes-flow/internal/transcriber"
)

type transcriptionResponse struct {
	Text string `json:"text"`
}

// Transcribe uploads one audio part to /audio/transcriptions and returns
// the recognized text.
func (c *Client) Transcribe(ctx context.Context, req transcriber.Request) (string, error) {
	body, contentType, err := buildTranscriptionForm(req)
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("/audio/transcriptions"), body)
	if err != nil {
		return "", fmt.Errorf("openai: build transcription request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", contentType)

	c.logger.Debug(ctx, "Uploading %s (%d bytes) for transcription", req.Filename, len(req.Audio))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("openai: transcription request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return "", decodeAPIError(resp)
	}

	var out transcriptionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("openai: decode transcription response: %w", err)
	}
	return out.Text, nil
}

func buildTranscriptionForm(req transcriber.Request) (*bytes.Buffer, string, error) {
	if len(req.Audio) == 0 {
		return nil, "", errors.New("openai: transcription audio is required")
	}
	filename := strings.TrimSpace(req.Filename)
	if filename == "" {
		return nil, "", errors.New("openai: transcription filename is required")
	}
	model := strings.TrimSpace(req.Model)
	if model == "" {
		return nil, "", errors.New("openai: model is required")
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if err := w.WriteField("model", model); err != nil {
		return nil, "", fmt.Errorf("openai: write model field: %w", err)
	}
	if lang := strings.TrimSpace(req.Language); lang != "" {
		if err := w.WriteField("language", lang); err != nil {
			return nil, "", fmt.Errorf("openai: write language field: %w", err)
		}
	}

	file, err := w.CreateFormFile("file", filename)
	if err != nil {
		return nil, "", fmt.Errorf("openai: create file field: %w", err)
	}
	if _, err := file.Write(req.Audio); err != nil {
		return nil, "", fmt.Errorf("openai: write audio: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("openai: close multipart writer: %w", err)
	}

	return &buf, w.FormDataContentType(), nil
}

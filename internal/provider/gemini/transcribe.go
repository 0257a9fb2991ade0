package gemini

import (
	"context"
	"errors"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/minutes-flow/internal/audio"
	"github.com/nguyentantai21042004/minutes-flow/internal/transcriber"
)

const transcribeInstruction = `Transcribe the speech in this audio verbatim. Output only the spoken words as plain text, without timestamps, speaker labels or commentary.`

var mimeTypes = map[string]string{
	"mp3":  "audio/mpeg",
	"wav":  "audio/wav",
	"flac": "audio/flac",
	"m4a":  "audio/mp4",
}

// Transcribe sends the part inline with a verbatim-transcription prompt.
func (c *Client) Transcribe(ctx context.Context, req transcriber.Request) (string, error) {
	if len(req.Audio) == 0 {
		return "", errors.New("gemini: transcription audio is required")
	}

	instruction := transcribeInstruction
	if req.Language != "" {
		instruction += " The spoken language is " + req.Language + "."
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(instruction),
			genai.NewPartFromBytes(req.Audio, mimeType(req.Filename)),
		}, genai.RoleUser),
	}
	config := &genai.GenerateContentConfig{Temperature: genai.Ptr[float32](0)}

	c.logger.Debug(ctx, "Sending %s (%d bytes) to Gemini for transcription", req.Filename, len(req.Audio))
	return c.generate(ctx, req.Model, contents, config)
}

func mimeType(filename string) string {
	if t, ok := mimeTypes[audio.FormatOf(filename)]; ok {
		return t
	}
	return "application/octet-stream"
}

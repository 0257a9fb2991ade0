package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/nguyentantai21042004/minutes-flow/internal/pipeline"
)

func (h *implHandler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /upload", h.upload)
	mux.HandleFunc("GET /healthz", h.healthz)
	return mux
}

func (h *implHandler) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// upload streams the multipart "file" field straight into the pipeline.
func (h *implHandler) upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	started := time.Now()

	if r.ContentLength > h.maxTotalSize+multipartSlack {
		writeError(w, inputError(fmt.Errorf("%w: request is %d bytes (limit %d)", pipeline.ErrTooLarge, r.ContentLength, h.maxTotalSize)))
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, h.maxTotalSize+multipartSlack)

	reader, err := r.MultipartReader()
	if err != nil {
		writeError(w, inputError(fmt.Errorf("%w: expected multipart/form-data: %v", pipeline.ErrMissingFile, err)))
		return
	}

	for {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			writeError(w, inputError(fmt.Errorf("read multipart body: %w", err)))
			return
		}
		if part.FormName() != "file" {
			part.Close()
			continue
		}

		h.logger.Info(ctx, "Upload received: %s from %s", part.FileName(), r.RemoteAddr)
		res, err := h.pipeline.Run(ctx, pipeline.Source{Filename: part.FileName(), Body: part})
		part.Close()
		if err != nil {
			h.logger.Warn(ctx, "Upload %s failed after %s: %v", part.FileName(), time.Since(started).Round(time.Millisecond), err)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, res)
		return
	}

	writeError(w, inputError(fmt.Errorf("%w: form field \"file\" is required", pipeline.ErrMissingFile)))
}

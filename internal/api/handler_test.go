package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/minutes-flow/internal/logger"
	"github.com/nguyentantai21042004/minutes-flow/internal/pipeline"
	"github.com/nguyentantai21042004/minutes-flow/internal/summarizer"
)

type stubPipeline struct {
	calls    int
	filename string
	body     string
	err      error
}

func (s *stubPipeline) Run(ctx context.Context, src pipeline.Source) (*pipeline.Result, error) {
	s.calls++
	s.filename = src.Filename
	data, err := io.ReadAll(src.Body)
	if err != nil {
		return nil, err
	}
	s.body = string(data)
	if s.err != nil {
		return nil, s.err
	}
	return &pipeline.Result{
		RunID:    "run-1",
		Filename: src.Filename,
		Minutes:  &summarizer.Minutes{AbstractSummary: "abstract", KeyPoints: "points", ActionItems: "items", Sentiment: "positive"},
	}, nil
}

func multipartBody(t *testing.T, field, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField("note", "ignored"); err != nil {
		t.Fatal(err)
	}
	fw, err := w.CreateFormFile(field, filename)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := fw.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return &buf, w.FormDataContentType()
}

func serve(h Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)
	return rec
}

func TestUpload(t *testing.T) {
	stub := &stubPipeline{}
	h := New(stub, 125<<20, logger.New("error", logger.FormatText))

	body, contentType := multipartBody(t, "file", "standup.mp3", "audio-bytes")
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)

	rec := serve(h, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	if stub.filename != "standup.mp3" || stub.body != "audio-bytes" {
		t.Errorf("pipeline got %q with %q", stub.filename, stub.body)
	}

	var resp struct {
		RunID   string            `json:"run_id"`
		Minutes map[string]string `json:"minutes"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.RunID != "run-1" || resp.Minutes["action_items"] != "items" {
		t.Errorf("response = %+v", resp)
	}
}

func TestUploadErrors(t *testing.T) {
	tests := []struct {
		name          string
		pipelineErr   error
		field         string
		wantStatus    int
		wantCategory  pipeline.Category
		wantRetryable bool
	}{
		{"input", &pipeline.Error{Category: pipeline.CategoryInput, Err: pipeline.ErrUnsupportedFormat}, "file", http.StatusBadRequest, pipeline.CategoryInput, false},
		{"decode", &pipeline.Error{Category: pipeline.CategoryDecode, Err: errors.New("bad bytes")}, "file", http.StatusUnprocessableEntity, pipeline.CategoryDecode, false},
		{"service", &pipeline.Error{Category: pipeline.CategoryService, Err: errors.New("429")}, "file", http.StatusBadGateway, pipeline.CategoryService, true},
		{"resource", &pipeline.Error{Category: pipeline.CategoryResource, Err: errors.New("disk full")}, "file", http.StatusInternalServerError, pipeline.CategoryResource, false},
		{"missing file field", nil, "attachment", http.StatusBadRequest, pipeline.CategoryInput, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubPipeline{err: tt.pipelineErr}
			h := New(stub, 125<<20, logger.New("error", logger.FormatText))

			body, contentType := multipartBody(t, tt.field, "a.mp3", "x")
			req := httptest.NewRequest(http.MethodPost, "/upload", body)
			req.Header.Set("Content-Type", contentType)

			rec := serve(h, req)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}

			var resp errorResponse
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("decode error body: %v", err)
			}
			if resp.Category != tt.wantCategory || resp.Retryable != tt.wantRetryable || resp.Message == "" {
				t.Errorf("error body = %+v", resp)
			}
		})
	}
}

func TestUploadRejectsNonMultipart(t *testing.T) {
	stub := &stubPipeline{}
	h := New(stub, 125<<20, logger.New("error", logger.FormatText))

	req := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader(`{"file":"x"}`))
	req.Header.Set("Content-Type", "application/json")

	if rec := serve(h, req); rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if stub.calls != 0 {
		t.Error("pipeline called for a non-multipart request")
	}
}

func TestUploadRejectsOversizedRequest(t *testing.T) {
	stub := &stubPipeline{}
	h := New(stub, 1024, logger.New("error", logger.FormatText))

	body, contentType := multipartBody(t, "file", "a.mp3", strings.Repeat("x", multipartSlack+2048))
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)

	rec := serve(h, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if stub.calls != 0 {
		t.Error("pipeline called for an oversized request")
	}
}

func TestRoutes(t *testing.T) {
	h := New(&stubPipeline{}, 1024, logger.New("error", logger.FormatText))

	if rec := serve(h, httptest.NewRequest(http.MethodGet, "/healthz", nil)); rec.Code != http.StatusOK {
		t.Errorf("GET /healthz = %d, want 200", rec.Code)
	}
	if rec := serve(h, httptest.NewRequest(http.MethodGet, "/upload", nil)); rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("GET /upload = %d, want 405", rec.Code)
	}
}

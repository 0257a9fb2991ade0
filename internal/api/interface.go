package api

import "net/http"

// Handler exposes the pipeline over HTTP.
type Handler interface {
	// Routes returns the mux serving POST /upload and GET /healthz.
	Routes() http.Handler
}

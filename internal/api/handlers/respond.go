package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/samboofficeota-hue/finance-analysis/internal/analyzer"
	"github.com/samboofficeota-hue/finance-analysis/internal/external/edinet"
	"github.com/samboofficeota-hue/finance-analysis/pkg/logger"
)

// errorBody is the JSON error envelope for all API errors.
type errorBody struct {
	Detail string `json:"detail"`
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// respondError maps a service error to an HTTP status code and writes
// the JSON error envelope.
//
//	ValidationError      → 400
//	ErrNotFound          → 404
//	ErrNoFinancialData   → 404
//	ErrAuthRejected      → 503
//	その他               → 500
func respondError(w http.ResponseWriter, log *logger.Logger, err error) {
	var vErr *analyzer.ValidationError

	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &vErr):
		status = http.StatusBadRequest
	case errors.Is(err, edinet.ErrNotFound), errors.Is(err, analyzer.ErrNoFinancialData):
		status = http.StatusNotFound
	case errors.Is(err, edinet.ErrAuthRejected):
		status = http.StatusServiceUnavailable
	}

	if status >= http.StatusInternalServerError {
		log.WithError(err).Error("Request failed")
	} else {
		log.WithError(err).Debug("Request rejected")
	}

	respondJSON(w, status, errorBody{Detail: err.Error()})
}

package api

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/samboofficeota-hue/finance-analysis/internal/api/handlers"
	"github.com/samboofficeota-hue/finance-analysis/pkg/logger"
)

// NewRouter creates and configures the API routes.
func NewRouter(h *handlers.Handlers, log *logger.Logger) *mux.Router {
	router := mux.NewRouter()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware)

	// Meta endpoints
	router.HandleFunc("/", h.Index).Methods(http.MethodGet)
	router.HandleFunc("/api-info", h.APIInfo).Methods(http.MethodGet)
	router.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	router.HandleFunc("/api-status", h.APIStatus).Methods(http.MethodGet)

	// Company endpoints
	router.HandleFunc("/companies", h.SearchCompanies).Methods(http.MethodGet)
	router.HandleFunc("/companies/{code}", h.GetCompany).Methods(http.MethodGet)
	router.HandleFunc("/companies/{code}/financials", h.GetFinancials).Methods(http.MethodGet)
	router.HandleFunc("/companies/{code}/analysis", h.GetAnalysis).Methods(http.MethodGet)

	// Ranking / comparison endpoints
	router.HandleFunc("/rankings/{metric}", h.GetRanking).Methods(http.MethodGet)
	router.HandleFunc("/compare", h.CompareCompanies).Methods(http.MethodGet)

	return router
}

// loggingMiddleware logs each HTTP request with method, path, status and duration.
func loggingMiddleware(log *logger.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(rw, r)

			log.WithFields(map[string]interface{}{
				"method":   r.Method,
				"path":     r.URL.Path,
				"status":   rw.statusCode,
				"duration": time.Since(start).String(),
				"remote":   r.RemoteAddr,
			}).Info("HTTP request")
		})
	}
}

// recoveryMiddleware recovers from panics in handlers.
func recoveryMiddleware(log *logger.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					log.WithFields(map[string]interface{}{
						"error": err,
						"path":  r.URL.Path,
					}).Error("Panic recovered")
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// corsMiddleware allows cross-origin requests from any origin.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-API-Key")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// responseWriter captures the status code for logging.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

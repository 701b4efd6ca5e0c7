// Package http provides the HTTP API surface of the service.
package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/goerr/v2"

	"github.com/rakshak-ai/rakshak/pkg/usecase"
	"github.com/rakshak-ai/rakshak/pkg/utils/errutil"
	"github.com/rakshak-ai/rakshak/pkg/utils/logging"
	"github.com/rakshak-ai/rakshak/pkg/utils/safe"
)

type Server struct {
	router *chi.Mux
}

func New(uc *usecase.UseCases) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", healthHandler)

	r.Post("/analyze", analyzeHandler(uc))

	r.Post("/user_location", saveUserLocationHandler(uc.Record))
	r.Get("/user_location/{user_id}", getUserLocationHandler(uc.Record))
	r.Post("/emergency_detected", createEmergencyHandler(uc.Record))
	r.Post("/medical_record", createMedicalRecordHandler(uc.Record))
	r.Get("/status", statusHandler(uc.Record))

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "rakshak",
	})
}

// respondJSON marshals v and writes it with the given status code
func respondJSON(w http.ResponseWriter, r *http.Request, statusCode int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	safe.Write(r.Context(), w, data)
}

// Package server exposes the analysis engine over HTTP/JSON: POST /analyze
// runs the engine on a record set, POST /upload-csv converts an uploaded
// spreadsheet into the record shape, GET /health reports liveness. The engine
// stays transport-agnostic; this adapter owns request decoding, boundary
// validation and CORS.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"finanalyzer/internal/analyzer"
	"finanalyzer/internal/ingest"
	"finanalyzer/internal/logging"
	"finanalyzer/internal/models"
	"finanalyzer/internal/variance"
)

const maxUploadBytes = 10 << 20

// Server handles the HTTP surface of the analysis engine.
type Server struct {
	analyzer    *analyzer.Service
	reader      *ingest.Reader
	defaultOpts analyzer.Options
	corsOrigins []string
	logger      logging.Logger
}

// New creates a Server. corsOrigins is the explicit allow-list configured at
// startup; an origin not on the list gets no CORS headers.
func New(svc *analyzer.Service, reader *ingest.Reader, opts analyzer.Options, corsOrigins []string, logger logging.Logger) *Server {
	if logger == nil {
		logger = &logging.MockLogger{}
	}
	return &Server{
		analyzer:    svc,
		reader:      reader,
		defaultOpts: opts,
		corsOrigins: corsOrigins,
		logger:      logger,
	}
}

// Handler returns the routed handler with CORS and recovery middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/analyze", s.handleAnalyze)
	mux.HandleFunc("/upload-csv", s.handleUploadCSV)
	mux.HandleFunc("/health", s.handleHealth)
	return s.withCORS(s.withRecovery(mux))
}

// ListenAndServe runs the HTTP server on addr until it fails.
func (s *Server) ListenAndServe(addr string) error {
	s.logger.WithField(logging.FieldAddr, addr).Info("HTTP server listening")
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	}
	return srv.ListenAndServe()
}

// analyzeRequest is the /analyze request body. The optional strategy field
// overrides the configured horizontal comparison policy per request.
type analyzeRequest struct {
	Records            []models.LedgerRecord `json:"records"`
	HorizontalStrategy string                `json:"horizontal_strategy,omitempty"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeErr(w, methodNotAllowed())
		return
	}

	var body analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, badRequest("invalid request body", err))
		return
	}

	// Malformed input fails fast at the boundary; the engine assumes
	// well-typed records.
	for _, rec := range body.Records {
		if _, err := models.ParseAccountType(string(rec.Type)); err != nil {
			writeErr(w, badRequest("invalid record type", err))
			return
		}
		if rec.Year == 0 {
			writeErr(w, badRequest("record year is required", nil))
			return
		}
	}

	opts := s.defaultOpts
	if body.HorizontalStrategy != "" {
		strategy, err := variance.ParseStrategy(body.HorizontalStrategy)
		if err != nil {
			writeErr(w, badRequest("invalid horizontal_strategy", err))
			return
		}
		opts.HorizontalStrategy = strategy
	}

	report, err := s.analyzer.Analyze(body.Records, opts)
	if err != nil {
		s.logger.WithError(err).Error("Analysis failed")
		writeErr(w, serverError("analysis failed", err))
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleUploadCSV(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeErr(w, methodNotAllowed())
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeErr(w, badRequest("invalid multipart form", err))
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeErr(w, badRequest("missing 'file' field", err))
		return
	}
	defer func() {
		if err := file.Close(); err != nil {
			s.logger.WithError(err).Warn("Failed to close upload")
		}
	}()

	s.logger.WithField(logging.FieldFile, header.Filename).Info("CSV upload received")

	records, err := s.reader.Read(file)
	if err != nil {
		writeErr(w, badRequest("invalid CSV", err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"data": records})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// withCORS applies the configured origin allow-list. Preflight requests are
// answered here; actual responses carry the CORS headers only for allowed
// origins.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && s.originAllowed(origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Add("Vary", "Origin")
		}
		if r.Method == http.MethodOptions {
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) originAllowed(origin string) bool {
	for _, allowed := range s.corsOrigins {
		if allowed == origin {
			return true
		}
	}
	return false
}

// withRecovery turns a panic into a generic 500 so an unexpected internal
// fault never leaks a partial response.
func (s *Server) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.logger.WithField("panic", rec).Error("Handler panicked")
				writeErr(w, serverError("internal error", nil))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

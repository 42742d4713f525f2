// Package api exposes the analysis pipeline over HTTP as a small JSON
// REST surface.
package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/sells-group/salesfit/internal/analysis"
	"github.com/sells-group/salesfit/internal/model"
	"github.com/sells-group/salesfit/internal/store"
)

// Server handles analysis API requests.
type Server struct {
	analyzer *analysis.Analyzer
	store    store.Store
}

// New creates a Server. The store may be nil, in which case the list and
// get endpoints report the service as store-less.
func New(analyzer *analysis.Analyzer, st store.Store) *Server {
	return &Server{analyzer: analyzer, store: st}
}

// Routes returns the chi router for the API.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", s.handleHealth)
	r.Post("/analyses", s.handleCreate)
	r.Get("/analyses", s.handleList)
	r.Get("/analyses/{id}", s.handleGet)
	r.Delete("/analyses/{id}", s.handleDelete)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// analyzeRequest is the POST /analyses body.
type analyzeRequest struct {
	Seller   model.Company       `json:"seller"`
	Target   model.Company       `json:"target"`
	Research *model.ResearchData `json:"research,omitempty"`
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := s.analyzer.Analyze(r.Context(), analysis.Request{
		Seller:   req.Seller,
		Target:   req.Target,
		Research: req.Research,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, http.StatusNotImplemented, "no store configured")
		return
	}

	filter := store.AnalysisFilter{
		Seller:  r.URL.Query().Get("seller"),
		Target:  r.URL.Query().Get("target"),
		Verdict: model.Verdict(r.URL.Query().Get("verdict")),
	}
	if limit := r.URL.Query().Get("limit"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		filter.Limit = n
	}
	if offset := r.URL.Query().Get("offset"); offset != "" {
		n, err := strconv.Atoi(offset)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "invalid offset")
			return
		}
		filter.Offset = n
	}

	analyses, err := s.store.ListAnalyses(r.Context(), filter)
	if err != nil {
		zap.L().Error("api: list analyses", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to list analyses")
		return
	}
	if analyses == nil {
		analyses = []model.Analysis{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"analyses": analyses,
		"count":    len(analyses),
	})
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, http.StatusNotImplemented, "no store configured")
		return
	}

	id := chi.URLParam(r, "id")
	a, err := s.store.GetAnalysis(r.Context(), id)
	if err != nil {
		zap.L().Error("api: get analysis", zap.String("id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to load analysis")
		return
	}
	if a == nil {
		writeError(w, http.StatusNotFound, "analysis not found")
		return
	}

	writeJSON(w, http.StatusOK, a)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, http.StatusNotImplemented, "no store configured")
		return
	}

	id := chi.URLParam(r, "id")
	if err := s.store.DeleteAnalysis(r.Context(), id); err != nil {
		writeError(w, http.StatusNotFound, "analysis not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zap.L().Error("api: encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// Package httpapi exposes catalog search as a small JSON API, intended
// for kiosk front-ends and the municipal website.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/civika-labs/serbisyo-cli/internal/core/domain"
	"github.com/civika-labs/serbisyo-cli/internal/core/ports/driving"
	"github.com/civika-labs/serbisyo-cli/internal/logger"
)

// ShutdownTimeout bounds graceful shutdown of in-flight requests.
const ShutdownTimeout = 5 * time.Second

// maxAPILimit caps client-supplied result limits.
const maxAPILimit = 50

// Server serves the search API over HTTP.
type Server struct {
	search  driving.SearchService
	suggest driving.SuggestService
	catalog driving.CatalogService
	srv     *http.Server
}

// NewServer creates an HTTP API server listening on addr.
func NewServer(addr string, search driving.SearchService, suggest driving.SuggestService, catalog driving.CatalogService) *Server {
	s := &Server{
		search:  search,
		suggest: suggest,
		catalog: catalog,
	}
	s.srv = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Router builds the API route table.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/search", s.handleSearch).Methods(http.MethodGet)
	api.HandleFunc("/suggestions", s.handleSuggestions).Methods(http.MethodGet)
	api.HandleFunc("/popular", s.handlePopular).Methods(http.MethodGet)
	api.HandleFunc("/categories", s.handleCategories).Methods(http.MethodGet)
	api.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	return r
}

// Start begins serving. Blocks until the server stops; a clean shutdown
// returns nil.
func (s *Server) Start() error {
	err := s.srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// searchResponse is the JSON shape of /api/search.
type searchResponse struct {
	Query   string                `json:"query"`
	Count   int                   `json:"count"`
	Results []domain.ScoredResult `json:"results"`
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	opts := domain.SearchOptions{
		Category: r.URL.Query().Get("category"),
		Limit:    parseLimit(r.URL.Query().Get("limit"), domain.DefaultSearchLimit),
	}

	results, err := s.search.Search(r.Context(), query, opts)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "search failed")
		logger.Warn("API search %q failed: %v", query, err)
		return
	}

	if s.suggest != nil {
		s.suggest.RecordSearch(query, len(results))
	}

	writeJSON(w, http.StatusOK, searchResponse{
		Query:   query,
		Count:   len(results),
		Results: results,
	})
}

func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	writeJSON(w, http.StatusOK, s.suggest.SuggestionsFor(query))
}

func (s *Server) handlePopular(w http.ResponseWriter, r *http.Request) {
	limit := parseLimit(r.URL.Query().Get("limit"), domain.MaxSuggestions)
	popular := s.suggest.PopularSearches(limit)
	if popular == nil {
		popular = []string{}
	}
	writeJSON(w, http.StatusOK, map[string][]string{"popular": popular})
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.catalog.Categories(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "listing categories failed")
		logger.Warn("API categories failed: %v", err)
		return
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	writeJSON(w, http.StatusOK, map[string][]domain.Category{"categories": categories})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func parseLimit(raw string, def int) int {
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	if n > maxAPILimit {
		return maxAPILimit
	}
	return n
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("Encoding API response failed: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

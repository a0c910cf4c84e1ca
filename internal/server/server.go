// Package server exposes the permit graph over HTTP.
//
// The server is one of the interchangeable frontends over the core engine:
// it holds a single immutable graph built at startup and answers read-only
// queries, so concurrent requests need no locking. Mutating the dataset
// means rebuilding and restarting - there is deliberately no write surface.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/parkops/lotmap/pkg/export"
	"github.com/parkops/lotmap/pkg/permit"
)

// Server answers reachability queries against a built graph.
type Server struct {
	graph  *permit.Graph
	logger *log.Logger
}

// New creates a server over the given graph. The graph must not be mutated
// after this call. A nil logger falls back to log.Default().
func New(g *permit.Graph, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{graph: g, logger: logger}
}

// Handler returns the HTTP routing tree:
//
//	GET /healthz                  liveness probe
//	GET /api/graph                full graph document
//	GET /api/validate             isolated-node report
//	GET /api/permits/{id}/lots    lots a permit allows
//	GET /api/lots/{id}/permits    permits allowing a lot
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestID)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/graph", s.handleGraph)
		r.Get("/validate", s.handleValidate)
		r.Get("/permits/{id}/lots", s.handleSearchByPermit)
		r.Get("/lots/{id}/permits", s.handleSearchByLot)
	})
	return r
}

// ListenAndServe runs the server at addr until ctx is cancelled, then
// shuts down gracefully with a short drain window.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	s.logger.Infof("Serving permit graph on %s", addr)
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// requestID tags every request with a UUID for log correlation and echoes
// it back in the X-Request-ID header.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-ID", id)
		s.logger.Debugf("%s %s request_id=%s", r.Method, r.URL.Path, id)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGraph(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, export.FromGraph(s.graph))
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.graph.Validate())
}

func (s *Server) handleSearchByPermit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	lots, err := s.graph.SearchByPermit(id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if lots == nil {
		lots = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"permit": id, "lots": lots})
}

func (s *Server) handleSearchByLot(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	permits, err := s.graph.SearchByLot(id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if permits == nil {
		permits = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"lot": id, "permits": permits})
}

// pathID extracts and unescapes the {id} path parameter. Identifiers like
// "Lot A" arrive percent-encoded.
func pathID(w http.ResponseWriter, r *http.Request) (string, bool) {
	raw := chi.URLParam(r, "id")
	id, err := url.PathUnescape(raw)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "malformed identifier"})
		return "", false
	}
	return id, true
}

// writeError maps engine errors to status codes: an unknown identifier is
// the client's problem (404), anything else is ours (500).
func (s *Server) writeError(w http.ResponseWriter, err error) {
	var nfe *permit.NodeNotFoundError
	if errors.As(err, &nfe) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": nfe.Error()})
		return
	}
	s.logger.Errorf("query failed: %v", err)
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

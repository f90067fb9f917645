package bridge

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/junction-ui/junction/pkg/router"
)

// Server is the HTTP boundary over a router registry.
type Server struct {
	registry *Registry
	logger   *slog.Logger
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithLogger sets the server's logger. The default is slog.Default().
func WithLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a bridge server over the given registry.
func NewServer(registry *Registry, opts ...ServerOption) *Server {
	s := &Server{
		registry: registry,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)

	r.Route("/v1/routers/{handle}", func(r chi.Router) {
		r.Post("/navigate", s.handleNavigate)
		r.Post("/back", s.handleBack)
		r.Post("/forward", s.handleForward)
		r.Get("/state", s.handleState)
		r.Get("/history", s.handleHistory)
		r.Get("/events", s.handleEvents)
	})
	r.Handle("/metrics", promhttp.Handler())

	return r
}

// navigateRequest is the body of POST /v1/routers/{handle}/navigate.
type navigateRequest struct {
	Path string `json:"path"`
	Mode string `json:"mode"` // push (default), replace, deep_link
}

// stateResponse reports the router's current position.
type stateResponse struct {
	Path         string `json:"path"`
	CanGoBack    bool   `json:"can_go_back"`
	CanGoForward bool   `json:"can_go_forward"`
}

// historyEntry is one recorded navigation in GET .../history.
type historyEntry struct {
	Path string    `json:"path"`
	Time time.Time `json:"time"`
}

type historyResponse struct {
	Entries []historyEntry `json:"entries"`
	Index   int            `json:"index"`
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

func (s *Server) handleNavigate(w http.ResponseWriter, r *http.Request) {
	inst, ok := s.instance(w, r)
	if !ok {
		return
	}

	var req navigateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, router.KindInternal, "malformed request body")
		return
	}
	if req.Path == "" {
		s.writeError(w, http.StatusBadRequest, router.KindInvalidPath, "path is required")
		return
	}

	inst.mu.Lock()
	defer inst.mu.Unlock()

	var err error
	switch req.Mode {
	case "", "push":
		err = inst.nav.Push(req.Path)
	case "replace":
		err = inst.nav.Replace(req.Path)
	case "deep_link":
		err = inst.nav.HandleDeepLink(req.Path)
	default:
		s.writeError(w, http.StatusBadRequest, router.KindInternal, "unknown mode "+strconv.Quote(req.Mode))
		return
	}
	if err != nil {
		s.writeNavError(w, err)
		return
	}
	s.writeState(w, inst)
}

func (s *Server) handleBack(w http.ResponseWriter, r *http.Request) {
	inst, ok := s.instance(w, r)
	if !ok {
		return
	}

	inst.mu.Lock()
	defer inst.mu.Unlock()
	if err := inst.nav.Back(); err != nil {
		s.writeNavError(w, err)
		return
	}
	s.writeState(w, inst)
}

func (s *Server) handleForward(w http.ResponseWriter, r *http.Request) {
	inst, ok := s.instance(w, r)
	if !ok {
		return
	}

	inst.mu.Lock()
	defer inst.mu.Unlock()
	if err := inst.nav.Forward(); err != nil {
		s.writeNavError(w, err)
		return
	}
	s.writeState(w, inst)
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	inst, ok := s.instance(w, r)
	if !ok {
		return
	}

	inst.mu.Lock()
	defer inst.mu.Unlock()
	s.writeState(w, inst)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	inst, ok := s.instance(w, r)
	if !ok {
		return
	}

	inst.mu.Lock()
	entries, index := inst.router.HistorySnapshot()
	inst.mu.Unlock()

	resp := historyResponse{
		Entries: make([]historyEntry, 0, len(entries)),
		Index:   index,
	}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, historyEntry{Path: e.Path, Time: e.Time})
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// instance resolves the handle path parameter, writing an error response
// when it is malformed or unregistered.
func (s *Server) instance(w http.ResponseWriter, r *http.Request) (*instance, bool) {
	raw := chi.URLParam(r, "handle")
	handle, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, router.KindInternal, "malformed handle "+strconv.Quote(raw))
		return nil, false
	}

	inst, ok := s.registry.lookup(Handle(handle))
	if !ok {
		s.writeError(w, http.StatusNotFound, router.KindInternal, "unknown router handle")
		return nil, false
	}
	return inst, true
}

// writeState writes the current stateResponse. Callers hold inst.mu.
func (s *Server) writeState(w http.ResponseWriter, inst *instance) {
	s.writeJSON(w, http.StatusOK, stateResponse{
		Path:         inst.router.CurrentPath(),
		CanGoBack:    inst.router.CanGoBack(),
		CanGoForward: inst.router.CanGoForward(),
	})
}

// writeNavError maps a navigation failure to an HTTP status.
func (s *Server) writeNavError(w http.ResponseWriter, err error) {
	kind := router.KindOf(err)
	status := http.StatusInternalServerError
	switch kind {
	case router.KindRouteNotFound:
		status = http.StatusNotFound
	case router.KindNavigationBlocked:
		status = http.StatusForbidden
	case router.KindInvalidPath:
		status = http.StatusBadRequest
	}
	s.writeError(w, status, kind, err.Error())
}

func (s *Server) writeError(w http.ResponseWriter, status int, kind router.Kind, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg, Kind: kind.String()})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encoding response", "error", err)
	}
}

// Package web exposes the solver over a small HTTP API, for callers that
// would rather speak JSON than link the Go packages directly.
package web

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/ehrlich-b/mixupcube/internal/heuristic"
)

// Server wraps the mux router and the heuristic set shared read-only by
// every request it serves.
type Server struct {
	router       *mux.Router
	heuristics   *heuristic.Set
	log          *logrus.Logger
	solveTimeout time.Duration
}

// NewServer builds a Server with routes registered and ready to listen.
// heuristics should already be loaded (see heuristic.Set.LoadAll); an
// empty set is valid, it just means solves run unpruned.
func NewServer(heuristics *heuristic.Set, log *logrus.Logger, solveTimeout time.Duration) *Server {
	s := &Server{
		router:       mux.NewRouter(),
		heuristics:   heuristics,
		log:          log,
		solveTimeout: solveTimeout,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/solve", s.handleSolve).Methods("POST")
	api.HandleFunc("/shape", s.handleShape).Methods("POST")
	api.HandleFunc("/health", s.handleHealth).Methods("GET")
}

// Start blocks, serving addr until the listener fails.
func (s *Server) Start(addr string) error {
	s.log.WithField("addr", addr).Info("server starting")
	return http.ListenAndServe(addr, s.router)
}

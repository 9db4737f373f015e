package web

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/ehrlich-b/mixupcube/internal/cube"
	"github.com/ehrlich-b/mixupcube/internal/mfen"
	"github.com/ehrlich-b/mixupcube/internal/solver"
)

type solveRequest struct {
	MFEN string `json:"mfen"`
}

type solveResponse struct {
	Turns         []int `json:"turns"`
	AlreadySolved bool  `json:"already_solved"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (s *Server) decodeCube(w http.ResponseWriter, r *http.Request) (*cube.Cube, bool) {
	var req solveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return nil, false
	}
	c, err := mfen.Parse(req.MFEN)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return nil, false
	}
	return c, true
}

// handleSolve finds the shortest turn sequence to the fully solved state,
// pruned by the server's shared heuristic set. The request is bounded by
// s.solveTimeout; a search that runs past it reports HTTP 504 rather than
// blocking the connection indefinitely.
func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	c, ok := s.decodeCube(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.solveTimeout)
	defer cancel()

	type result struct {
		turns []int
	}
	done := make(chan result, 1)
	go func() {
		done <- result{turns: solver.Solve(c, s.heuristics, 0)}
	}()

	select {
	case res := <-done:
		writeSolveResponse(w, res.turns)
	case <-ctx.Done():
		s.log.WithField("mfen", mfen.Format(c)).Warn("solve request timed out")
		writeError(w, http.StatusGatewayTimeout, ctx.Err())
	}
}

// writeSolveResponse renders a solver result as JSON. cube.SolutionList's
// wire sentinels (SolutionTerminator, SolutionSeparator) are internal to
// the CLI/solver boundary and are stripped here rather than forwarded
// onto the JSON wire: an already-solved cube reports an empty turn list,
// not a raw [-2].
func writeSolveResponse(w http.ResponseWriter, turns []int) {
	alreadySolved := len(turns) == 1 && turns[0] == cube.SolutionTerminator

	clean := make([]int, 0, len(turns))
	for _, t := range turns {
		if t == cube.SolutionTerminator || t == cube.SolutionSeparator {
			continue
		}
		clean = append(clean, t)
	}

	writeJSON(w, http.StatusOK, solveResponse{Turns: clean, AlreadySolved: alreadySolved})
}

// handleShape finds the shortest turn sequence to cube shape (not
// necessarily solved), never applying heuristic pruning (see
// solver.SolveToCubeShape).
func (s *Server) handleShape(w http.ResponseWriter, r *http.Request) {
	c, ok := s.decodeCube(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.solveTimeout)
	defer cancel()

	type result struct {
		turns []int
	}
	done := make(chan result, 1)
	go func() {
		done <- result{turns: solver.SolveToCubeShape(c, 0)}
	}()

	select {
	case res := <-done:
		writeSolveResponse(w, res.turns)
	case <-ctx.Done():
		writeError(w, http.StatusGatewayTimeout, ctx.Err())
	}
}

type healthResponse struct {
	Status           string   `json:"status"`
	HeuristicsLoaded []string `json:"heuristics_loaded"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	var loaded []string
	if s.heuristics != nil {
		loaded = s.heuristics.Names()
	}
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", HeuristicsLoaded: loaded})
}

package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/williamdwatson/bananagrams-solver-web/internal/models"
	"github.com/williamdwatson/bananagrams-solver-web/pkg/solver"
)

// handleWords returns the verbatim contents of both dictionary files. The
// files are read fresh on every request so the response always reflects
// what is on disk.
func (s *Server) handleWords(w http.ResponseWriter, r *http.Request) {
	long, err := os.ReadFile(s.dicts.LongPath)
	if err != nil {
		s.logger.Printf("failed to read long dictionary: %v", err)
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to read dictionary: %v", err))
		return
	}

	short, err := os.ReadFile(s.dicts.ShortPath)
	if err != nil {
		s.logger.Printf("failed to read short dictionary: %v", err)
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to read dictionary: %v", err))
		return
	}

	writeJSON(w, http.StatusOK, models.WordListResponse{
		Short: string(short),
		Long:  string(long),
	})
}

// handleSolve runs the board search for a hand of letters.
func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req models.SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	letters, err := solver.ParseLetters(req.Letters)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	dictionary := s.dicts.Short
	if req.UseLongDictionary {
		dictionary = s.dicts.Long
	}

	opts := s.solverOpts
	if req.FilterLettersOnBoard > 0 {
		opts.FilterLettersOnBoard = req.FilterLettersOnBoard
	}
	if req.MaxWordsToCheck > 0 {
		opts.MaxWordsToCheck = req.MaxWordsToCheck
	}

	solution, err := solver.SolveFromScratch(r.Context(), letters, dictionary, opts)
	switch {
	case errors.Is(err, solver.ErrNoValidWords), errors.Is(err, solver.ErrNoSolution):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		// Client went away mid-search; nothing useful to write
		s.logger.Printf("solve abandoned: %v", err)
		return
	case err != nil:
		s.logger.Printf("solve failed: %v", err)
		writeError(w, http.StatusInternalServerError, "solver failure")
		return
	}

	writeJSON(w, http.StatusOK, solution)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Headers are already written; nothing left to do but log
		log.Printf("failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.ErrorResponse{Error: message})
}

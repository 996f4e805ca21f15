// internal/httpserver/routes_solve.go
//
// Interactive solving endpoints:
//   - POST /solve → apply turns to the session and list remaining candidates
//   - POST /score → score a guess against a known answer
//
// A turn is given either as a pattern ("ggy--") or as one mark name per
// letter (["right","position","wrong",...]).
package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/CarsonDavis/wordle-solver/internal/game"
)

type turnReq struct {
	Word    string   `json:"word"`
	Pattern string   `json:"pattern,omitempty"`
	Marks   []string `json:"marks,omitempty"`
}

func (t turnReq) turn() (game.Turn, error) {
	if len(t.Marks) == 0 {
		return game.ParseTurn(t.Word, t.Pattern)
	}
	if len(t.Marks) != len(t.Word) {
		return nil, fmt.Errorf("%w: word %q has %d letters, got %d marks",
			game.ErrLengthMismatch, t.Word, len(t.Word), len(t.Marks))
	}
	pattern := make([]byte, len(t.Marks))
	for i, m := range t.Marks {
		mark, err := game.ParseMark(m)
		if err != nil {
			return nil, err
		}
		switch mark {
		case game.MarkExact:
			pattern[i] = 'g'
		case game.MarkPresent:
			pattern[i] = 'y'
		default:
			pattern[i] = '-'
		}
	}
	return game.ParseTurn(t.Word, string(pattern))
}

type solveReq struct {
	Token string    `json:"token,omitempty"`
	Reset bool      `json:"reset,omitempty"`
	Turns []turnReq `json:"turns"`
	Limit int       `json:"limit,omitempty"`
}

type solveRes struct {
	Token      string   `json:"token"`
	Turns      []string `json:"turns"`
	Count      int      `json:"count"`
	Candidates []string `json:"candidates"`
	Required   string   `json:"required"`
	Positions  []string `json:"positions"`
}

// handleSolve replays the session history plus the submitted turns into a
// fresh engine and returns the surviving candidates with a new token.
func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", err)
		return
	}

	var history []game.Turn
	if !req.Reset {
		tok := req.Token
		if tok == "" {
			tok = bearerOrCookie(r)
		}
		if tok != "" {
			h, err := s.sess.parse(tok)
			if err != nil {
				s.sess.clearCookie(w)
				writeError(w, http.StatusUnauthorized, "invalid_token", err)
				return
			}
			history = h
		}
	}
	for _, tr := range req.Turns {
		t, err := tr.turn()
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_turn", err)
			return
		}
		history = append(history, t)
	}

	eng := game.NewEngine(s.dict)
	for _, t := range history {
		if err := eng.ApplyTurn(t); err != nil {
			writeError(w, http.StatusBadRequest, "bad_turn", err)
			return
		}
	}
	candidates, err := eng.Recompute()
	if errors.Is(err, game.ErrEmptyCandidateSet) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": "empty_candidate_set"})
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "solve_failed", err)
		return
	}

	token, exp, err := s.sess.sign(history)
	if err != nil {
		log.Error().Err(err).Msg("sign session")
		writeError(w, http.StatusInternalServerError, "sign_failed", nil)
		return
	}
	s.sess.setCookie(w, token, exp)

	limit := s.cfg.Server.CandidateLimit
	if req.Limit > 0 && req.Limit < limit {
		limit = req.Limit
	}
	res := solveRes{
		Token:      token,
		Turns:      make([]string, len(history)),
		Count:      len(candidates),
		Candidates: candidates[:min(limit, len(candidates))],
		Required:   eng.Required().String(),
	}
	for i, t := range history {
		res.Turns[i] = t.String()
	}
	for _, p := range eng.Positions() {
		res.Positions = append(res.Positions, p.String())
	}
	writeJSON(w, http.StatusOK, res)
}

type scoreReq struct {
	Guess  string `json:"guess"`
	Answer string `json:"answer"`
	Scorer string `json:"scorer,omitempty"`
}

type scoreRes struct {
	Marks   []game.Mark `json:"marks"`
	Pattern string      `json:"pattern"`
	Solved  bool        `json:"solved"`
}

// handleScore scores a guess against an answer with the requested scorer
// (the configured one by default).
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req scoreReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", err)
		return
	}
	name := req.Scorer
	if name == "" {
		name = s.cfg.Solver.Scorer
	}
	scorer, err := game.ScorerFor(name)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_scorer", err)
		return
	}
	turn, err := scorer(req.Guess, req.Answer)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_guess", err)
		return
	}
	res := scoreRes{Marks: make([]game.Mark, len(turn)), Pattern: turn.Pattern(), Solved: turn.Solved()}
	for i, lr := range turn {
		res.Marks[i] = lr.Mark
	}
	writeJSON(w, http.StatusOK, res)
}

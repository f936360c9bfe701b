// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strconv"

	"github.com/danielhkuo/titan-sentara/cliparse"
	"github.com/danielhkuo/titan-sentara/contest"
	"github.com/danielhkuo/titan-sentara/middleware"
	"github.com/danielhkuo/titan-sentara/models"
)

type ResultsHandler struct {
	svc *contest.Service
	cfg cliparse.Config
}

func NewResultsHandler(svc *contest.Service, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{svc: svc, cfg: cfg}
}

// GetPositions handles GET /contest/positions
func (h *ResultsHandler) GetPositions(w http.ResponseWriter, r *http.Request) {
	positions, err := h.svc.Positions()
	if err != nil {
		writeContestError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.PositionListResponse{
		Positions: positions,
	})
}

// GetCandidates handles GET /contest/candidates
// Accepts an optional ?position_id= filter; the dashboard otherwise
// filters per position client-side.
func (h *ResultsHandler) GetCandidates(w http.ResponseWriter, r *http.Request) {
	var positionID int64
	if raw := r.URL.Query().Get("position_id"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 1 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "position_id must be a positive integer")
			return
		}
		positionID = parsed
	}

	candidates, err := h.svc.Candidates(positionID)
	if err != nil {
		writeContestError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CandidateListResponse{
		Candidates: candidates,
	})
}

// GetParameters handles GET /contest/parameters
func (h *ResultsHandler) GetParameters(w http.ResponseWriter, r *http.Request) {
	params, configured, err := h.svc.Parameters()
	if err != nil {
		writeContestError(w, err)
		return
	}

	state, err := h.svc.WindowState()
	if err != nil {
		writeContestError(w, err)
		return
	}

	resp := models.ParametersResponse{
		Configured:  configured,
		WindowState: state,
	}
	if configured {
		resp.Parameters = &params
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// GetSummary handles GET /contest/summary
// Returns a point-in-time consistent snapshot of the whole contest.
func (h *ResultsHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.Summary()
	if err != nil {
		writeContestError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, summary)
}

// GetBallots handles GET /contest/ballots
// The ledger is the audit trail; entries are immutable and listed in
// cast order.
func (h *ResultsHandler) GetBallots(w http.ResponseWriter, r *http.Request) {
	ballots, err := h.svc.Ballots()
	if err != nil {
		writeContestError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.BallotListResponse{
		Ballots: ballots,
	})
}

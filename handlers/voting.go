// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/titan-sentara/cliparse"
	"github.com/danielhkuo/titan-sentara/contest"
	"github.com/danielhkuo/titan-sentara/middleware"
	"github.com/danielhkuo/titan-sentara/models"
)

type VotingHandler struct {
	svc *contest.Service
	cfg cliparse.Config
}

func NewVotingHandler(svc *contest.Service, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{svc: svc, cfg: cfg}
}

// CastVotes handles POST /contest/votes
func (h *VotingHandler) CastVotes(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CallerAddress(r)
	if caller == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, middleware.CallerHeader+" header required")
		return
	}

	var req models.CastVotesRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	seq, err := h.svc.CastVotes(caller, req.PositionID, req.CandidateID, req.Quantity, req.AmountPaid)
	if err != nil {
		writeContestError(w, err)
		return
	}

	slog.Info("votes cast",
		"ballot_seq", seq,
		"voter", caller,
		"position_id", req.PositionID,
		"candidate_id", req.CandidateID,
		"quantity", req.Quantity,
		"amount_paid", req.AmountPaid,
	)

	middleware.JSONResponse(w, http.StatusCreated, models.CastVotesResponse{
		BallotSeq: seq,
		Message:   "Votes cast successfully",
	})
}

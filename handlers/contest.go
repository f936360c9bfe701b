// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/titan-sentara/cliparse"
	"github.com/danielhkuo/titan-sentara/contest"
	"github.com/danielhkuo/titan-sentara/middleware"
	"github.com/danielhkuo/titan-sentara/models"
)

type ContestHandler struct {
	svc *contest.Service
	cfg cliparse.Config
}

func NewContestHandler(svc *contest.Service, cfg cliparse.Config) *ContestHandler {
	return &ContestHandler{svc: svc, cfg: cfg}
}

// writeContestError maps the contest error taxonomy to HTTP statuses.
// Anything outside the taxonomy is a storage failure: logged and
// reported as a 500, the only class a caller should retry.
func writeContestError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, contest.ErrUnauthorized):
		middleware.ErrorResponse(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, contest.ErrInvalidArgument):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, contest.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
	case errors.Is(err, contest.ErrVotingClosed):
		middleware.ErrorResponse(w, http.StatusConflict, err.Error())
	case errors.Is(err, contest.ErrInsufficientPayment):
		middleware.ErrorResponse(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, contest.ErrDuplicateCast):
		middleware.ErrorResponse(w, http.StatusConflict, err.Error())
	default:
		slog.Error("contest operation failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
	}
}

// AddPosition handles POST /contest/positions
func (h *ContestHandler) AddPosition(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CallerAddress(r)

	var req models.AddPositionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	positionID, err := h.svc.AddPosition(caller, req.Name)
	if err != nil {
		writeContestError(w, err)
		return
	}

	slog.Info("position added", "position_id", positionID, "name", req.Name)

	middleware.JSONResponse(w, http.StatusCreated, models.AddPositionResponse{
		PositionID: positionID,
	})
}

// AddCandidate handles POST /contest/candidates
func (h *ContestHandler) AddCandidate(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CallerAddress(r)

	var req models.AddCandidateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	candidateID, err := h.svc.AddCandidate(caller, req.Name, req.PositionID)
	if err != nil {
		writeContestError(w, err)
		return
	}

	slog.Info("candidate added", "candidate_id", candidateID, "position_id", req.PositionID, "name", req.Name)

	middleware.JSONResponse(w, http.StatusCreated, models.AddCandidateResponse{
		CandidateID: candidateID,
	})
}

// SetParameters handles POST /contest/parameters
func (h *ContestHandler) SetParameters(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CallerAddress(r)

	var req models.SetParametersRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	state, err := h.svc.SetVotingParameters(caller, req.UnitCost, req.StartTime, req.EndTime)
	if err != nil {
		writeContestError(w, err)
		return
	}

	slog.Info("voting parameters set",
		"unit_cost", req.UnitCost,
		"start_time", req.StartTime,
		"end_time", req.EndTime,
		"window_state", state,
	)

	middleware.JSONResponse(w, http.StatusOK, models.SetParametersResponse{
		WindowState: state,
	})
}

// IsAdmin handles GET /contest/admin/{address}
func (h *ContestHandler) IsAdmin(w http.ResponseWriter, r *http.Request) {
	address := r.PathValue("address")
	if address == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "address is required")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.IsAdminResponse{
		Address: address,
		IsAdmin: h.svc.IsAdmin(address),
	})
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Voting window state constants
const (
	WindowUnconfigured = "unconfigured"
	WindowConfigured   = "configured"
	WindowOpen         = "open"
	WindowClosed       = "closed"
)

// Request types

type AddPositionRequest struct {
	Name string `json:"name"`
}

type AddCandidateRequest struct {
	Name       string `json:"name"`
	PositionID int64  `json:"position_id"`
}

// unit_cost is in integer minor units; start_time/end_time are unix seconds
type SetParametersRequest struct {
	UnitCost  int64 `json:"unit_cost"`
	StartTime int64 `json:"start_time"`
	EndTime   int64 `json:"end_time"`
}

type CastVotesRequest struct {
	PositionID  int64 `json:"position_id"`
	CandidateID int64 `json:"candidate_id"`
	Quantity    int64 `json:"quantity"`
	AmountPaid  int64 `json:"amount_paid"`
}

// Response types

type AddPositionResponse struct {
	PositionID int64 `json:"position_id"`
}

type AddCandidateResponse struct {
	CandidateID int64 `json:"candidate_id"`
}

type SetParametersResponse struct {
	WindowState string `json:"window_state"`
}

type CastVotesResponse struct {
	BallotSeq int64  `json:"ballot_seq"`
	Message   string `json:"message"`
}

type PositionListResponse struct {
	Positions []Position `json:"positions"`
}

type CandidateListResponse struct {
	Candidates []Candidate `json:"candidates"`
}

type ParametersResponse struct {
	Configured  bool              `json:"configured"`
	Parameters  *VotingParameters `json:"parameters,omitempty"`
	WindowState string            `json:"window_state"`
}

type BallotListResponse struct {
	Ballots []BallotCast `json:"ballots"`
}

type IsAdminResponse struct {
	Address string `json:"address"`
	IsAdmin bool   `json:"is_admin"`
}

// Domain types

type Position struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Candidate struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	PositionID int64  `json:"position_id"`
	VoteCount  int64  `json:"vote_count"`
}

type VotingParameters struct {
	UnitCost  int64 `json:"unit_cost"`
	StartTime int64 `json:"start_time"`
	EndTime   int64 `json:"end_time"`
}

// BallotCast is one immutable ledger entry. Seq is assigned monotonically
// at cast time and never reused; CastAt is unix seconds.
type BallotCast struct {
	Seq         int64  `json:"seq"`
	Voter       string `json:"voter"`
	PositionID  int64  `json:"position_id"`
	CandidateID int64  `json:"candidate_id"`
	Quantity    int64  `json:"quantity"`
	AmountPaid  int64  `json:"amount_paid"`
	CastAt      int64  `json:"cast_at"`
}

// ContestSummary is a point-in-time consistent snapshot of the whole contest.
type ContestSummary struct {
	Admin       string            `json:"admin"`
	Positions   []Position        `json:"positions"`
	Candidates  []Candidate       `json:"candidates"`
	Parameters  *VotingParameters `json:"parameters,omitempty"`
	WindowState string            `json:"window_state"`
	BallotCount int64             `json:"ballot_count"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

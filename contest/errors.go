// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package contest

import "errors"

// Error taxonomy for contest operations. Every mutation failure is an
// atomic no-op; callers can match these with errors.Is. Anything not in
// this list is a storage failure and is the only class worth retrying.
var (
	// ErrUnauthorized: a non-admin identity attempted a gated mutation.
	ErrUnauthorized = errors.New("caller is not the contest admin")

	// ErrInvalidArgument: empty name, non-positive quantity, malformed
	// time range, or an unparseable caller address.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound: the referenced position or candidate does not exist
	// (or the candidate is not running for the given position).
	ErrNotFound = errors.New("not found")

	// ErrVotingClosed: a cast was attempted outside the voting window.
	ErrVotingClosed = errors.New("voting window is not open")

	// ErrInsufficientPayment: the paid amount does not equal
	// unit cost * quantity exactly. Overpayment is rejected too.
	ErrInsufficientPayment = errors.New("payment does not match the required amount")

	// ErrDuplicateCast: the single-cast policy is enabled and the voter
	// has already cast votes for this position.
	ErrDuplicateCast = errors.New("votes already cast for this position")
)

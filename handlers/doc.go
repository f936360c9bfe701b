// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Titan Sentara API.

# Handler Types

Each handler is a struct holding the contest service and config:

	contestHandler := handlers.NewContestHandler(svc, cfg)

  - ContestHandler: admin mutations (positions, candidates, parameters)
    and the admin lookup
  - VotingHandler: ballot casting
  - ResultsHandler: read-only projections (listings, parameters,
    summary, ballot ledger)

# Caller Identity

Every request carries its authenticated identity in X-Caller-Address.
Admin-gated operations succeed only for the contest admin; casting is
open to any identity while the voting window is open.

# Error Mapping

Handlers translate the contest error taxonomy to HTTP statuses:

	Unauthorized        -> 401
	InvalidArgument     -> 400
	NotFound            -> 404
	VotingClosed        -> 409
	InsufficientPayment -> 402
	DuplicateCast       -> 409
	storage failure     -> 500

Only 500s are worth retrying; all other failures are permanent for the
given input.
*/
package handlers

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain and wire types for the Titan Sentara API.

# Domain Types

  - Position: a contested seat with a sequential ID starting at 1
  - Candidate: an entrant for one position, accumulating votes
  - VotingParameters: unit vote cost plus the [start, end) voting window
  - BallotCast: one immutable ledger entry per successful cast
  - ContestSummary: consistent read snapshot of the whole contest

Amounts are integer minor units and timestamps are unix seconds throughout;
no floating point is used for money.

# Request/Response Types

Request types are JSON bodies accepted by the handlers; response types are
what they return. ErrorResponse is the uniform error envelope.
*/
package models

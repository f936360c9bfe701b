// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package contest implements the voting-contest state machine: who may
configure the contest, when voting is open, how ballots are purchased
and cast, and how results are tallied.

# The Aggregate

Service owns the whole contest state behind one mutation boundary.
Storage is constructor-injected:

	svc, err := contest.NewService(db, cfg.AdminAddress, contest.Policy{
		SingleCastPerPosition: cfg.SingleCast,
	})

The admin identity is fixed at bootstrap and persisted; there is no
transfer operation.

# Lifecycle

The contest moves through unconfigured -> configured -> open -> closed,
driven by SetVotingParameters and the wall clock. Reconfiguring at any
time re-arms the window without touching recorded ballots.

# The Ledger

CastVotes appends an immutable BallotCast entry and increments the
candidate's vote count in the same transaction, under the service mutex,
so the sum of ledger quantities always equals the vote count and
concurrent casts never lose updates.

# Errors

Operations return errors from the package taxonomy (ErrUnauthorized,
ErrInvalidArgument, ErrNotFound, ErrVotingClosed, ErrInsufficientPayment,
ErrDuplicateCast), matchable with errors.Is. Everything else is a
storage failure.
*/
package contest

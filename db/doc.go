// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db creates the PostgreSQL schema for the contest service.

Four logical keyspaces back the contest state machine:

  - contest_admin: singleton row holding the admin address
  - position / candidate: the registry, keyed by sequential IDs
  - voting_params: singleton row, replaced wholesale on reconfiguration
  - ballot: the append-only cast ledger, keyed by monotonic seq

Monetary columns are BIGINT minor units; window and cast timestamps are
BIGINT unix seconds. Schema creation is idempotent.
*/
package db

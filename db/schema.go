// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Contest admin (singleton; set once at bootstrap, immutable thereafter)
CREATE TABLE IF NOT EXISTS contest_admin (
    id SMALLINT PRIMARY KEY CHECK (id = 1),
    address TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT NOW()
);

-- Positions (sequential IDs from 1, assigned in the write transaction)
CREATE TABLE IF NOT EXISTS position (
    id BIGINT PRIMARY KEY,
    name TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT NOW()
);

-- Candidates
CREATE TABLE IF NOT EXISTS candidate (
    id BIGINT PRIMARY KEY,
    name TEXT NOT NULL,
    position_id BIGINT NOT NULL REFERENCES position(id),
    vote_count BIGINT NOT NULL DEFAULT 0 CHECK (vote_count >= 0),
    created_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_candidate_position_id ON candidate(position_id);

-- Voting parameters (singleton; replaced wholesale by the admin)
CREATE TABLE IF NOT EXISTS voting_params (
    id SMALLINT PRIMARY KEY CHECK (id = 1),
    unit_cost BIGINT NOT NULL CHECK (unit_cost >= 0),
    start_time BIGINT NOT NULL,
    end_time BIGINT NOT NULL,
    updated_at TIMESTAMP NOT NULL DEFAULT NOW(),
    CHECK (start_time < end_time)
);

-- Ballot ledger (append-only; seq is monotonic and never reused)
CREATE TABLE IF NOT EXISTS ballot (
    seq BIGINT PRIMARY KEY,
    voter TEXT NOT NULL,
    position_id BIGINT NOT NULL REFERENCES position(id),
    candidate_id BIGINT NOT NULL REFERENCES candidate(id),
    quantity BIGINT NOT NULL CHECK (quantity >= 1),
    amount_paid BIGINT NOT NULL CHECK (amount_paid >= 0),
    cast_at BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_ballot_candidate_id ON ballot(candidate_id);
CREATE INDEX IF NOT EXISTS idx_ballot_voter_position ON ballot(voter, position_id);
`

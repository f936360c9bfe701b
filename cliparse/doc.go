// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse parses server configuration from CLI flags with
environment variable fallback.

Required: database URL (-d / DATABASE_URL) and the contest admin
address (-admin / ADMIN_ADDRESS). Optional: port (-p / PORT, default
3319) and the single-cast voting policy (-single-cast / SINGLE_CAST,
default off to match the observed ledger behavior).
*/
package cliparse

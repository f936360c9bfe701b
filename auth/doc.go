// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth handles caller identity for the contest service.

Callers are identified by ledger-style addresses ("0x" + 40 hex chars),
supplied by an already-authenticated transport layer. This package only
normalizes and compares them:

	addr, err := auth.NormalizeAddress(r.Header.Get("X-Caller-Address"))
	if auth.SameAddress(addr, adminAddr) { ... }

Address comparison is constant-time.
*/
package auth

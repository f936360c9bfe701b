// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP plumbing shared by all handlers:
request logging with per-request correlation IDs, JSON response helpers,
CORS for the browser dashboard, and extraction of the authenticated
caller address from the X-Caller-Address header.
*/
package middleware

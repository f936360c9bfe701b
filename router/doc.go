// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP route table using Go 1.22+ method and
path patterns. Admin mutations, voting, and read projections all hang
off /contest; every route is wrapped with request logging.
*/
package router

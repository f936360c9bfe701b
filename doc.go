// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Titan Sentara API server.

Titan Sentara is a paid-voting contest service: a single admin registers
positions and candidates, configures a voting window with a per-vote
price, and voters buy votes while the window is open. Every accepted
cast lands in an append-only ballot ledger alongside the running
per-candidate counts.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... ADMIN_ADDRESS=0x... go run main.go

Or with flags:

	go run main.go -p 3319 -d "postgres://..." -admin 0x...

# Configuration

Required settings:

  - DATABASE_URL (-d): PostgreSQL connection string
  - ADMIN_ADDRESS (-admin): Address of the contest admin

Optional settings:

  - PORT (-p): Server port (default: 3319)
  - SINGLE_CAST (-single-cast): Limit each voter to one cast per position

# Architecture

The server uses a handler-based architecture with dependency injection:

  - contest: Core state machine (registry, window, ledger)
  - handlers: HTTP request handlers (configuration, voting, results)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers, caller identity
  - models: Request/response types
  - auth: Address normalization and comparison
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main

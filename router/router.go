// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/titan-sentara/cliparse"
	"github.com/danielhkuo/titan-sentara/contest"
	"github.com/danielhkuo/titan-sentara/handlers"
	"github.com/danielhkuo/titan-sentara/middleware"
)

func NewRouter(svc *contest.Service, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	contestHandler := handlers.NewContestHandler(svc, cfg)
	votingHandler := handlers.NewVotingHandler(svc, cfg)
	resultsHandler := handlers.NewResultsHandler(svc, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Contest configuration (admin operations)
	mux.HandleFunc("POST /contest/positions", middleware.WithLogging(contestHandler.AddPosition))
	mux.HandleFunc("POST /contest/candidates", middleware.WithLogging(contestHandler.AddCandidate))
	mux.HandleFunc("POST /contest/parameters", middleware.WithLogging(contestHandler.SetParameters))

	// Voting (any identity)
	mux.HandleFunc("POST /contest/votes", middleware.WithLogging(votingHandler.CastVotes))

	// Read projections (public)
	mux.HandleFunc("GET /contest/positions", middleware.WithLogging(resultsHandler.GetPositions))
	mux.HandleFunc("GET /contest/candidates", middleware.WithLogging(resultsHandler.GetCandidates))
	mux.HandleFunc("GET /contest/parameters", middleware.WithLogging(resultsHandler.GetParameters))
	mux.HandleFunc("GET /contest/summary", middleware.WithLogging(resultsHandler.GetSummary))
	mux.HandleFunc("GET /contest/ballots", middleware.WithLogging(resultsHandler.GetBallots))
	mux.HandleFunc("GET /contest/admin/{address}", middleware.WithLogging(contestHandler.IsAdmin))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("titan-sentara API v1"))
	})

	return mux
}

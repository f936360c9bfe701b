// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package contest

import (
	"time"

	"github.com/danielhkuo/titan-sentara/models"
)

// windowState derives the contest lifecycle state from the current
// parameters and the clock: unconfigured -> configured -> open -> closed.
// Any later reconfiguration re-arms the window, so the state can move
// back to configured at any time.
func windowState(p models.VotingParameters, configured bool, now time.Time) string {
	if !configured {
		return models.WindowUnconfigured
	}
	switch unix := now.Unix(); {
	case unix < p.StartTime:
		return models.WindowConfigured
	case unix < p.EndTime:
		return models.WindowOpen
	default:
		return models.WindowClosed
	}
}

// isOpen reports whether casts are accepted: startTime <= now < endTime.
func isOpen(p models.VotingParameters, configured bool, now time.Time) bool {
	return windowState(p, configured, now) == models.WindowOpen
}

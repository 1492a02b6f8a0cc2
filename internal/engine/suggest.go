package engine

import (
	"context"
	"fmt"

	"github.com/agnivade/levenshtein"
)

// similarity returns a 0.0–1.0 score between two strings using Levenshtein
// distance: 1.0 - distance/max(len(a), len(b)).
func similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	maxLen := len([]rune(a))
	if lb := len([]rune(b)); lb > maxLen {
		maxLen = lb
	}
	if maxLen == 0 {
		return 1.0
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1.0 - float64(dist)/float64(maxLen)
}

// Suggest returns the registered name closest to name, if any scores at or
// above the engine's threshold.
func (e *Engine) Suggest(ctx context.Context, name string) (string, bool) {
	entries, err := e.store.List(ctx)
	if err != nil {
		e.log.Warn("listing entries for suggestion: %v", err)
		return "", false
	}

	best, bestScore := "", -1.0
	for _, entry := range entries {
		if entry.Name == name {
			continue
		}
		if s := similarity(name, entry.Name); s > bestScore {
			best, bestScore = entry.Name, s
		}
	}
	if best == "" || bestScore < e.suggestThreshold {
		return "", false
	}
	return best, true
}

// suggest formats Suggest's result as an error message suffix.
func (e *Engine) suggest(ctx context.Context, name string) string {
	if s, ok := e.Suggest(ctx, name); ok {
		return fmt.Sprintf(" (did you mean %q?)", s)
	}
	return ""
}

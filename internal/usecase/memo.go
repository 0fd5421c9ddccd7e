package usecase

import (
	"strconv"
	"strings"
)

// Memoization keys carry the full input identity of a query, so a key
// hit is always a valid answer and entries never need invalidation.

func memoKey(op string, matchID int64, fields ...string) string {
	parts := make([]string, 0, len(fields)+2)
	parts = append(parts, op, "match:"+strconv.FormatInt(matchID, 10))
	parts = append(parts, fields...)
	return strings.Join(parts, ":")
}

func memoField(name, value string) string {
	return name + ":" + value
}

func memoFlag(name string, enabled bool) string {
	if enabled {
		return name + ":1"
	}
	return name + ":0"
}

// resolveFlag applies a per-request override on top of the configured
// policy default.
func resolveFlag(override *bool, fallback bool) bool {
	if override != nil {
		return *override
	}
	return fallback
}

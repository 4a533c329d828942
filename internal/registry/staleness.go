package registry

import "time"

// MaxAge is the freshness window for a registry generation. A generation
// older than this must be rebuilt before being trusted for resolution.
const MaxAge = 24 * time.Hour

// IsStale reports whether reg must be rebuilt before use.
//
// A registry is stale iff it is absent, its command list is empty, or more
// than MaxAge has elapsed since GeneratedAt. A GeneratedAt in the future
// yields a negative elapsed time and is NOT stale; clock skew is tolerated
// rather than forcing a rescan on every call.
//
// Pure function of registry state and now; no side effects.
func IsStale(reg *Registry, now time.Time) bool {
	if reg == nil {
		return true
	}
	if len(reg.Commands) == 0 {
		return true
	}
	return now.Sub(reg.GeneratedAt) > MaxAge
}

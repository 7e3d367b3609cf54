// Package locking serializes writes that touch the same team member.
//
// Every check-then-write sequence on a member's allocations or availability
// runs while holding that member's key, so two requests for the same member
// cannot both pass conflict detection against the same snapshot. Requests for
// different members proceed in parallel.
package locking

import (
	"context"
	"errors"
	"sort"
)

// ErrTimeout is returned when the context ends before every key was acquired.
var ErrTimeout = errors.New("lock wait timed out")

// Locker acquires exclusive ownership of one or more keys. The returned
// function releases all of them and is safe to call more than once.
type Locker interface {
	Lock(ctx context.Context, keys ...string) (func(), error)
}

// MemberKey is the lock key for a team member.
func MemberKey(id string) string {
	return "member:" + id
}

// normalize sorts and deduplicates keys so callers that lock several keys
// always acquire them in the same order.
func normalize(keys []string) []string {
	out := make([]string, 0, len(keys))
	seen := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Package cache fronts the volatile key-value layer the session flows lean
// on. Everything stored here is a reconstructable projection of the durable
// account store; keys expire and the data must never be the sole record of
// truth for status or role checks.
package cache

import (
	"context"
	"strconv"
	"time"
)

// Key namespace. Profile entries are short-lived read offload; security
// snapshots live as long as a token and are trusted for identity only;
// OnlineMembersKey is the best-effort set of logged-in uids; token entries
// are advisory and removed on logout.
const OnlineMembersKey = "login_member"

func ProfileKey(uid int64) string {
	return "user:" + strconv.FormatInt(uid, 10)
}

func SnapshotKey(uid int64) string {
	return "security:user:" + strconv.FormatInt(uid, 10)
}

func TokenKey(uid int64) string {
	return "token:user:" + strconv.FormatInt(uid, 10)
}

// Cache is the volatile store: JSON values with per-key expiry plus
// membership sets. Implementations must treat every call as independently
// failable; callers decide which failures are fatal.
type Cache interface {
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error

	// GetJSON reports found=false on a plain miss; err is reserved for
	// transport or decode failures.
	GetJSON(ctx context.Context, key string, dest any) (found bool, err error)

	Delete(ctx context.Context, key string) error

	AddMember(ctx context.Context, setKey string, member int64) error
	RemoveMember(ctx context.Context, setKey string, member int64) error
}

package session

import (
	"context"
	"errors"
	"time"

	"github.com/pzhuhenong/teriteri-backend/internal/account"
	"github.com/pzhuhenong/teriteri-backend/internal/apperr"
	"github.com/pzhuhenong/teriteri-backend/internal/auth"
	"github.com/pzhuhenong/teriteri-backend/internal/cache"
	"github.com/pzhuhenong/teriteri-backend/internal/logger"
)

// Manager orchestrates login, profile retrieval and logout across the
// durable store and the cache layer. The cache holds two entries per
// account with different trust levels: the profile entry (short TTL, display
// only) and the security snapshot (token-lifetime TTL, identity only — its
// state and role can be stale and are never honored).
type Manager struct {
	verifier Verifier
	store    account.Store
	cache    cache.Cache
	issuer   auth.TokenIssuer

	profileTTL  time.Duration
	snapshotTTL time.Duration
}

func NewManager(
	verifier Verifier,
	store account.Store,
	c cache.Cache,
	issuer auth.TokenIssuer,
	profileTTL time.Duration,
	snapshotTTL time.Duration,
) *Manager {
	return &Manager{
		verifier:    verifier,
		store:       store,
		cache:       c,
		issuer:      issuer,
		profileTTL:  profileTTL,
		snapshotTTL: snapshotTTL,
	}
}

type LoginResult struct {
	Token   string          `json:"token"`
	Profile account.Profile `json:"user"`
}

// Login verifies credentials and establishes a session. The profile cache is
// refreshed before the ban check so a fresh entry exists for any later
// admin/unban flow reading through the same path. The security snapshot and
// registry writes are fatal: if bookkeeping cannot be recorded the caller
// must not believe a session exists. A crash after token issuance but before
// bookkeeping leaves a token with no snapshot; the token is then useless for
// profile reads and expires on its own, no retry is attempted.
func (m *Manager) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	acc, err := m.verifier.Verify(ctx, username, password)
	if err != nil {
		return nil, err
	}

	// login is always a freshness checkpoint, even for banned accounts
	if err := m.cache.SetJSON(ctx, cache.ProfileKey(acc.UID), acc.Profile(), m.profileTTL); err != nil {
		logger.Warn("profile cache refresh failed", map[string]any{
			"uid":   acc.UID,
			"error": err.Error(),
		})
	}

	if acc.State == account.StateBanned {
		return nil, apperr.Authorization("账号异常，封禁中")
	}

	token, err := m.issuer.Issue(acc.UID, auth.AudienceUser)
	if err != nil {
		return nil, apperr.Dependency("登录凭证签发失败", err)
	}

	if err := m.cache.SetJSON(ctx, cache.TokenKey(acc.UID), token, m.snapshotTTL); err != nil {
		logger.Warn("token cache write failed", map[string]any{
			"uid":   acc.UID,
			"error": err.Error(),
		})
	}

	if err := m.cache.SetJSON(ctx, cache.SnapshotKey(acc.UID), acc, m.snapshotTTL); err != nil {
		return nil, apperr.Dependency("登录状态存储失败", err)
	}
	if err := m.cache.AddMember(ctx, cache.OnlineMembersKey, acc.UID); err != nil {
		return nil, apperr.Dependency("登录状态存储失败", err)
	}

	return &LoginResult{
		Token:   token,
		Profile: acc.Profile(),
	}, nil
}

// PersonalInfo returns the caller's profile. The security snapshot resolves
// the identity only; the returned data comes from the profile cache, with a
// read-through to the durable store on a miss.
func (m *Manager) PersonalInfo(ctx context.Context, callerUID int64) (*account.Profile, error) {
	var snap account.Account
	found, err := m.cache.GetJSON(ctx, cache.SnapshotKey(callerUID), &snap)
	if err != nil {
		return nil, apperr.Dependency("读取登录状态失败", err)
	}
	if !found {
		return nil, apperr.Authentication("登录已过期，请重新登录")
	}
	uid := snap.UID

	var profile account.Profile
	found, err = m.cache.GetJSON(ctx, cache.ProfileKey(uid), &profile)
	if err != nil {
		logger.Warn("profile cache read failed", map[string]any{
			"uid":   uid,
			"error": err.Error(),
		})
		found = false
	}

	if !found {
		acc, err := m.store.FindByUID(ctx, uid)
		if errors.Is(err, account.ErrNotFound) {
			return nil, apperr.Authentication("用户不存在")
		}
		if err != nil {
			return nil, apperr.Dependency("查询账号失败", err)
		}
		profile = acc.Profile()

		// self-heal, best-effort: the store already answered
		if err := m.cache.SetJSON(ctx, cache.ProfileKey(uid), profile, m.profileTTL); err != nil {
			logger.Warn("profile cache repopulate failed", map[string]any{
				"uid":   uid,
				"error": err.Error(),
			})
		}
	}

	if profile.State == account.StateBanned {
		return nil, apperr.Authorization("账号异常，封禁中")
	}

	return &profile, nil
}

// Logout is advisory cleanup: the cache layer expires these keys and an
// external reconciler prunes the registry, so nothing here can fail the
// caller. Missing keys are fine, a second logout is a no-op.
func (m *Manager) Logout(ctx context.Context, callerUID int64) {
	if err := m.cache.Delete(ctx, cache.TokenKey(callerUID)); err != nil {
		logger.Warn("token cache delete failed", map[string]any{
			"uid":   callerUID,
			"error": err.Error(),
		})
	}
	if err := m.cache.Delete(ctx, cache.SnapshotKey(callerUID)); err != nil {
		logger.Warn("security snapshot delete failed", map[string]any{
			"uid":   callerUID,
			"error": err.Error(),
		})
	}
	if err := m.cache.RemoveMember(ctx, cache.OnlineMembersKey, callerUID); err != nil {
		logger.Warn("online registry removal failed", map[string]any{
			"uid":   callerUID,
			"error": err.Error(),
		})
	}
}

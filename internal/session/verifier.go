package session

import (
	"context"
	"errors"

	"github.com/pzhuhenong/teriteri-backend/internal/account"
	"github.com/pzhuhenong/teriteri-backend/internal/apperr"
	"github.com/pzhuhenong/teriteri-backend/internal/auth"
)

// Verifier checks raw credentials and returns the matching account.
// Implementations must not reveal whether the username or the password was
// wrong.
type Verifier interface {
	Verify(ctx context.Context, username, password string) (*account.Account, error)
}

// StoreVerifier verifies credentials against the durable account store.
type StoreVerifier struct {
	store account.Store
}

func NewStoreVerifier(store account.Store) *StoreVerifier {
	return &StoreVerifier{store: store}
}

func (v *StoreVerifier) Verify(ctx context.Context, username, password string) (*account.Account, error) {
	acc, err := v.store.FindByUsername(ctx, username)
	if errors.Is(err, account.ErrNotFound) {
		// same answer as a bad password, no enumeration
		return nil, apperr.Authentication("用户名或密码错误")
	}
	if err != nil {
		return nil, apperr.Dependency("查询账号失败", err)
	}

	if !auth.CheckPassword(acc.Password, password) {
		return nil, apperr.Authentication("用户名或密码错误")
	}

	return acc, nil
}

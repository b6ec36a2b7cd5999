package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pzhuhenong/teriteri-backend/internal/account"
	"github.com/pzhuhenong/teriteri-backend/internal/apperr"
)

type erroringStore struct {
	fakeStore
	err error
}

func (s *erroringStore) FindByUsername(ctx context.Context, username string) (*account.Account, error) {
	return nil, s.err
}

func TestVerifyMissingUserAndBadPasswordLookAlike(t *testing.T) {
	v := NewStoreVerifier(newFakeStore(activeAccount(1, "alice")))

	_, errMissing := v.Verify(context.Background(), "nobody", "pw1234")
	_, errWrongPw := v.Verify(context.Background(), "alice", "wrong")

	require.Error(t, errMissing)
	require.Error(t, errWrongPw)
	assert.Equal(t, errMissing.Error(), errWrongPw.Error(), "no username enumeration")
	assert.Equal(t, apperr.KindAuthentication, apperr.KindOf(errMissing))
	assert.Equal(t, apperr.KindAuthentication, apperr.KindOf(errWrongPw))
}

func TestVerifySuccessReturnsFullAccount(t *testing.T) {
	v := NewStoreVerifier(newFakeStore(activeAccount(1, "alice")))

	acc, err := v.Verify(context.Background(), "alice", "pw1234")
	require.NoError(t, err)
	assert.Equal(t, int64(1), acc.UID)
	assert.Equal(t, "alice", acc.Username)
	assert.NotEmpty(t, acc.Password, "verifier returns the stored record as-is")
}

func TestVerifyStoreFailure(t *testing.T) {
	v := NewStoreVerifier(&erroringStore{err: errors.New("conn refused")})

	_, err := v.Verify(context.Background(), "alice", "pw1234")
	require.Error(t, err)
	assert.Equal(t, apperr.KindDependency, apperr.KindOf(err))
}

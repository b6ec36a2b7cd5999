package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind Kind
	}{
		{"validation", Validation("账号不能为空"), KindValidation},
		{"conflict", Conflict("账号已存在"), KindConflict},
		{"authentication", Authentication("用户名或密码错误"), KindAuthentication},
		{"authorization", Authorization("账号异常，封禁中"), KindAuthorization},
		{"dependency", Dependency("redis write failed", errors.New("conn refused")), KindDependency},
		{"plain", errors.New("boom"), KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, KindOf(tt.err))
		})
	}
}

func TestKindOfWrapped(t *testing.T) {
	err := fmt.Errorf("login: %w", Authorization("账号异常，封禁中"))
	assert.Equal(t, KindAuthorization, KindOf(err))
}

func TestDependencyKeepsCause(t *testing.T) {
	cause := errors.New("conn refused")
	err := Dependency("redis write failed", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "redis write failed", MessageOf(err))
	assert.Equal(t, "redis write failed: conn refused", err.Error())
}

func TestMessageOfPlainError(t *testing.T) {
	assert.Equal(t, "boom", MessageOf(errors.New("boom")))
}

package account

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/pzhuhenong/teriteri-backend/internal/apperr"
	"github.com/pzhuhenong/teriteri-backend/internal/auth"
)

const (
	maxUsernameLen = 50
	maxPasswordLen = 50

	defaultAvatar      = "https://cube.elemecdn.com/9/c2/f0ee8a3c7c9638a54940382568c9dpng.png"
	defaultDescription = "这个人很懒，什么都没留下~"
	nicknamePrefix     = "用户_"
)

// Manager owns registration rules: field validation, username uniqueness and
// assembling the default account record.
type Manager struct {
	store Store
	now   func() time.Time
}

func NewManager(store Store) *Manager {
	return &Manager{
		store: store,
		now:   time.Now,
	}
}

// Register validates the input, checks for username conflicts and persists a
// fresh account. Local field validation always runs before any store access,
// so malformed requests never touch the database. Returns the assigned uid.
func (m *Manager) Register(ctx context.Context, username, password, confirmedPassword string) (int64, error) {
	username = strings.TrimSpace(username)

	if username == "" {
		return 0, apperr.Validation("账号不能为空")
	}
	if len([]rune(username)) > maxUsernameLen {
		return 0, apperr.Validation("账号长度不能大于50")
	}
	if password == "" || confirmedPassword == "" {
		return 0, apperr.Validation("密码不能为空")
	}
	if len([]rune(password)) > maxPasswordLen || len([]rune(confirmedPassword)) > maxPasswordLen {
		return 0, apperr.Validation("密码长度不能大于50")
	}
	if password != confirmedPassword {
		return 0, apperr.Validation("两次输入的密码不一致")
	}

	_, err := m.store.FindByUsername(ctx, username)
	if err == nil {
		return 0, apperr.Conflict("账号已存在")
	}
	if !errors.Is(err, ErrNotFound) {
		return 0, apperr.Dependency("查询账号失败", err)
	}

	// The store's identity column assigns the real uid; the max-uid read only
	// feeds the default nickname. A concurrent registration can duplicate a
	// nickname, never a uid.
	maxUID, err := m.store.FindMaxUID(ctx)
	if err != nil {
		return 0, apperr.Dependency("查询账号失败", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return 0, apperr.Dependency("密码加密失败", err)
	}

	a := &Account{
		Username:    username,
		Password:    hash,
		Nickname:    nicknamePrefix + strconv.FormatInt(maxUID+1, 10),
		Avatar:      defaultAvatar,
		Description: defaultDescription,
		Exp:         0,
		State:       StateActive,
		Role:        RoleUser,
		CreateDate:  m.now(),
		DeleteDate:  nil,
	}

	uid, err := m.store.Insert(ctx, a)
	if err != nil {
		return 0, apperr.Dependency("注册失败", err)
	}
	return uid, nil
}

package account

import "time"

const (
	StateActive = 0
	StateBanned = 1
)

const (
	RoleUser  = 0
	RoleAdmin = 1
)

// Account is the durable identity record. Password holds the bcrypt hash,
// never plaintext. DeleteDate is nil for live accounts (soft delete only).
type Account struct {
	UID         int64      `json:"uid"`
	Username    string     `json:"username"`
	Password    string     `json:"password"`
	Nickname    string     `json:"nickname"`
	Avatar      string     `json:"avatar"`
	Description string     `json:"description"`
	Exp         int        `json:"exp"`
	State       int        `json:"state"`
	Role        int        `json:"role"`
	CreateDate  time.Time  `json:"create_date"`
	DeleteDate  *time.Time `json:"delete_date"`
}

// Profile is the projection handed to clients. It deliberately excludes the
// password hash, role and timestamps.
type Profile struct {
	UID         int64  `json:"uid"`
	Nickname    string `json:"nickname"`
	Avatar      string `json:"avatar_url"`
	Description string `json:"description"`
	Exp         int    `json:"exp"`
	State       int    `json:"state"`
}

func (a *Account) Profile() Profile {
	return Profile{
		UID:         a.UID,
		Nickname:    a.Nickname,
		Avatar:      a.Avatar,
		Description: a.Description,
		Exp:         a.Exp,
		State:       a.State,
	}
}

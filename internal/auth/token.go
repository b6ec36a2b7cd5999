package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const AudienceUser = "user"

var ErrInvalidToken = errors.New("invalid token")

// TokenIssuer mints and parses the opaque signed credential a client holds
// between login and logout.
type TokenIssuer interface {
	Issue(uid int64, audience string) (string, error)
	Parse(token string) (uid int64, audience string, err error)
}

type claims struct {
	jwt.RegisteredClaims
	UID int64 `json:"uid"`
}

// JWTIssuer signs HS256 tokens binding an account uid to an audience for a
// fixed lifetime.
type JWTIssuer struct {
	secret   []byte
	lifetime time.Duration
	now      func() time.Time
}

func NewJWTIssuer(secret []byte, lifetime time.Duration) *JWTIssuer {
	return &JWTIssuer{
		secret:   secret,
		lifetime: lifetime,
		now:      time.Now,
	}
}

func (j *JWTIssuer) Issue(uid int64, audience string) (string, error) {
	now := j.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatInt(uid, 10),
			Audience:  jwt.ClaimStrings{audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.lifetime)),
		},
		UID: uid,
	})
	return token.SignedString(j.secret)
}

func (j *JWTIssuer) Parse(tokenString string) (int64, string, error) {
	c := &claims{}

	token, err := jwt.ParseWithClaims(tokenString, c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return j.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return j.now() }))
	if err != nil {
		return 0, "", err
	}
	if !token.Valid {
		return 0, "", ErrInvalidToken
	}

	audience := ""
	if len(c.Audience) > 0 {
		audience = c.Audience[0]
	}
	return c.UID, audience, nil
}

// Lifetime reports how long issued tokens stay valid. The security snapshot
// TTL is tied to it.
func (j *JWTIssuer) Lifetime() time.Duration { return j.lifetime }

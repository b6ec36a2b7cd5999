package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/pzhuhenong/teriteri-backend/internal/auth"
)

// unexported, collision-proof context key
type callerUIDContextKeyType struct{}

var callerUIDKey = callerUIDContextKeyType{}

// CallerUIDFromContext extracts the authenticated account uid from context.
func CallerUIDFromContext(ctx context.Context) (int64, bool) {
	uid, ok := ctx.Value(callerUIDKey).(int64)
	return uid, ok
}

type AuthMiddleware struct {
	Issuer auth.TokenIssuer
}

func NewAuthMiddleware(issuer auth.TokenIssuer) *AuthMiddleware {
	return &AuthMiddleware{Issuer: issuer}
}

// RequireAuth validates the bearer token and attaches the caller uid to the
// request context. The token proves identity only; status and role checks
// happen downstream against fresher data.
func (a *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 1. Read bearer token
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		// 2. Parse and validate signature, expiry, audience
		uid, audience, err := a.Issuer.Parse(token)
		if err != nil || audience != auth.AudienceUser {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		// 3. Attach caller uid to context
		ctx := context.WithValue(r.Context(), callerUIDKey, uid)

		// 4. Continue request
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

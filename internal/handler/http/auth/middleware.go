// Package auth provides JWT authentication for the HTTP layer: the token
// endpoint, the authorization middleware, and the account context plumbing
// that hands a resolved account to the content handlers.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"article-cms/internal/accesscontrol"
	"article-cms/internal/handler/http/respond"

	"github.com/golang-jwt/jwt/v5"
)

type ctxKey string

const ctxAccount ctxKey = "account"

// AccountFromContext returns the authenticated account stored by Authz.
// The second return value is false on unauthenticated requests.
func AccountFromContext(ctx context.Context) (accesscontrol.Account, bool) {
	acct, ok := ctx.Value(ctxAccount).(accesscontrol.Account)
	return acct, ok
}

// WithAccount stores an account on the context. Exported for handler tests.
func WithAccount(ctx context.Context, acct accesscontrol.Account) context.Context {
	return context.WithValue(ctx, ctxAccount, acct)
}

// Authz requires JWT authentication for all methods on protected endpoints.
//
// Public endpoints (health checks, metrics, swagger, token issuance) pass
// through untouched. Everything else needs a valid bearer token carrying a
// known role; the resolved account is stored on the request context, and
// what that account may actually do is decided per operation by the access
// policy, not here.
func Authz(next http.Handler) http.Handler {
	secret := []byte(os.Getenv("JWT_SECRET"))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if IsPublicEndpoint(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		user, role, err := validateJWT(r.Header.Get("Authorization"), secret)
		RecordAuthzCheckDuration(time.Since(start).Seconds())
		if err != nil {
			respond.SafeError(w, http.StatusUnauthorized, fmt.Errorf("unauthorized: %w", err))
			return
		}
		if _, known := accesscontrol.RolePermissions[role]; !known {
			RecordForbiddenAttempt(role, r.Method)
			respond.SafeError(w, http.StatusForbidden, errors.New("forbidden"))
			return
		}

		acct := accesscontrol.AccountForRole(user, role)
		next.ServeHTTP(w, r.WithContext(WithAccount(r.Context(), acct)))
	})
}

func validateJWT(authz string, secret []byte) (string, string, error) {
	const prefix = "Bearer "
	if !strings.HasPrefix(authz, prefix) {
		return "", "", errors.New("missing bearer token")
	}
	tokenString := strings.TrimPrefix(authz, prefix)
	tok, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !tok.Valid {
		return "", "", errors.New("invalid token")
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", errors.New("invalid claims")
	}
	if exp, ok := claims["exp"].(float64); !ok || int64(exp) < time.Now().Unix() {
		return "", "", errors.New("token expired")
	}
	sub, ok := claims["sub"].(string)
	if !ok {
		return "", "", errors.New("invalid sub claim")
	}
	role, ok := claims["role"].(string)
	if !ok {
		return "", "", errors.New("invalid role claim")
	}
	return sub, role, nil
}

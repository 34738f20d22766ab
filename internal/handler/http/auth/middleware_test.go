package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"article-cms/internal/accesscontrol"
	"article-cms/internal/handler/http/auth"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret-for-middleware"

func signedToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestAuthzPublicEndpointBypassesAuthentication(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	called := false
	h := auth.Authz(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if !called {
		t.Error("public endpoint did not reach the handler")
	}
}

func TestAuthz(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	valid := func(role string) string {
		return signedToken(t, testSecret, jwt.MapClaims{
			"sub":  "alice",
			"role": role,
			"exp":  time.Now().Add(time.Hour).Unix(),
		})
	}

	tests := []struct {
		name       string
		authHeader string
		wantCode   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"not a bearer token", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.token", http.StatusUnauthorized},
		{
			"wrong signing key",
			"Bearer " + signedToken(t, "other-secret", jwt.MapClaims{
				"sub": "alice", "role": "admin", "exp": time.Now().Add(time.Hour).Unix(),
			}),
			http.StatusUnauthorized,
		},
		{
			"expired token",
			"Bearer " + signedToken(t, testSecret, jwt.MapClaims{
				"sub": "alice", "role": "admin", "exp": time.Now().Add(-time.Minute).Unix(),
			}),
			http.StatusUnauthorized,
		},
		{"unknown role", "Bearer " + valid("superuser"), http.StatusForbidden},
		{"admin role", "Bearer " + valid("admin"), http.StatusOK},
		{"editor role", "Bearer " + valid("editor"), http.StatusOK},
		{"viewer role", "Bearer " + valid("viewer"), http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := auth.Authz(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/articles", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if rec.Code != tt.wantCode {
				t.Errorf("code = %d, want %d", rec.Code, tt.wantCode)
			}
		})
	}
}

func TestAuthzStoresAccountOnContext(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	var got accesscontrol.Account
	var ok bool
	h := auth.Authz(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = auth.AccountFromContext(r.Context())
	}))

	token := signedToken(t, testSecret, jwt.MapClaims{
		"sub":  "bob",
		"role": accesscontrol.RoleEditor,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	req := httptest.NewRequest(http.MethodPost, "/articles/add", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	h.ServeHTTP(httptest.NewRecorder(), req)

	if !ok {
		t.Fatal("no account on context")
	}
	if got.Username != "bob" || got.Role != accesscontrol.RoleEditor {
		t.Errorf("account = %+v", got)
	}
	if !got.HasPermission(accesscontrol.PermCreateArticle) {
		t.Error("editor account lost the create permission")
	}
}

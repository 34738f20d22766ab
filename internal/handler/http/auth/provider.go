package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"os"
	"strings"

	"article-cms/internal/accesscontrol"
	authservice "article-cms/internal/service/auth"
)

// roleEnvVars maps each role to the environment variables carrying its
// credentials. The admin account is mandatory; editor and viewer are
// optional and simply absent when unconfigured.
var roleEnvVars = map[string][2]string{
	accesscontrol.RoleAdmin:  {"ADMIN_USER", "ADMIN_USER_PASSWORD"},
	accesscontrol.RoleEditor: {"EDITOR_USER", "EDITOR_USER_PASSWORD"},
	accesscontrol.RoleViewer: {"VIEWER_USER", "VIEWER_USER_PASSWORD"},
}

// EnvAuthProvider implements environment-based authentication for the
// admin, editor, and viewer accounts.
type EnvAuthProvider struct {
	minPasswordLength int
	weakPasswords     []string
}

// NewEnvAuthProvider creates a new environment-backed auth provider.
func NewEnvAuthProvider(minPasswordLength int, weakPasswords []string) *EnvAuthProvider {
	return &EnvAuthProvider{
		minPasswordLength: minPasswordLength,
		weakPasswords:     weakPasswords,
	}
}

// ValidateCredentials validates credentials against environment variables.
// Every configured account is checked with constant-time comparison to
// prevent timing attacks.
func (p *EnvAuthProvider) ValidateCredentials(_ context.Context, creds authservice.Credentials) error {
	if creds.Username == "" || creds.Password == "" {
		return fmt.Errorf("credentials must not be empty")
	}
	if len(creds.Password) < p.minPasswordLength {
		return fmt.Errorf("password must be at least %d characters", p.minPasswordLength)
	}
	for _, weak := range p.weakPasswords {
		if creds.Password == weak || strings.HasPrefix(creds.Password, weak) {
			return fmt.Errorf("weak password detected")
		}
	}

	for _, envVars := range roleEnvVars {
		user := os.Getenv(envVars[0])
		pass := os.Getenv(envVars[1])
		if user == "" {
			continue
		}
		userMatch := subtle.ConstantTimeCompare([]byte(creds.Username), []byte(user)) == 1
		passMatch := subtle.ConstantTimeCompare([]byte(creds.Password), []byte(pass)) == 1
		if userMatch && passMatch {
			return nil
		}
	}
	return fmt.Errorf("invalid credentials")
}

// IdentifyUser returns the role of the given username, or an error when the
// username matches no configured account.
func (p *EnvAuthProvider) IdentifyUser(_ context.Context, username string) (string, error) {
	if username == "" {
		return "", fmt.Errorf("username must not be empty")
	}

	// Roles are checked in a fixed order so a username configured for two
	// roles resolves deterministically.
	for _, role := range []string{accesscontrol.RoleAdmin, accesscontrol.RoleEditor, accesscontrol.RoleViewer} {
		user := os.Getenv(roleEnvVars[role][0])
		if user == "" {
			continue
		}
		if subtle.ConstantTimeCompare([]byte(username), []byte(user)) == 1 {
			return role, nil
		}
	}
	return "", fmt.Errorf("user not found")
}

// GetRequirements returns the password requirements.
func (p *EnvAuthProvider) GetRequirements() authservice.CredentialRequirements {
	return authservice.CredentialRequirements{
		MinPasswordLength: p.minPasswordLength,
		WeakPasswords:     p.weakPasswords,
	}
}

// Name returns the provider name.
func (p *EnvAuthProvider) Name() string {
	return "env"
}

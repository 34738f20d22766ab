// Package auth handles authentication business logic. It is
// framework-agnostic: the HTTP layer supplies credentials and receives a
// role, nothing here knows about tokens or requests.
package auth

import (
	"context"
)

// Credentials represents authentication credentials.
type Credentials struct {
	Username string
	Password string
}

// CredentialRequirements defines password policy requirements.
type CredentialRequirements struct {
	MinPasswordLength int
	WeakPasswords     []string
}

// Provider defines the interface for authentication providers.
type Provider interface {
	// ValidateCredentials validates user credentials.
	ValidateCredentials(ctx context.Context, creds Credentials) error

	// IdentifyUser returns the role of the named user, or an error when the
	// user is unknown.
	IdentifyUser(ctx context.Context, username string) (string, error)

	// GetRequirements returns the credential requirements for this provider.
	GetRequirements() CredentialRequirements

	// Name returns the name of this provider.
	Name() string
}

// Service validates credentials and resolves roles via the configured
// provider.
type Service struct {
	provider Provider
}

// NewService creates a new authentication service.
func NewService(provider Provider) *Service {
	return &Service{provider: provider}
}

// ValidateCredentials validates user credentials via the configured provider.
func (s *Service) ValidateCredentials(ctx context.Context, creds Credentials) error {
	return s.provider.ValidateCredentials(ctx, creds)
}

// IdentifyUser returns the role of the named user.
func (s *Service) IdentifyUser(ctx context.Context, username string) (string, error) {
	return s.provider.IdentifyUser(ctx, username)
}

// GetProvider returns the current authentication provider.
func (s *Service) GetProvider() Provider {
	return s.provider
}

// Package config loads application configuration files. Environment
// variables remain the primary configuration source; the YAML file here
// overrides password policy for deployments that need a stricter one.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SecurityConfig holds the security policy loaded from YAML.
type SecurityConfig struct {
	Security struct {
		Auth struct {
			Provider string `yaml:"provider"`
			Env      struct {
				MinPasswordLength int      `yaml:"min_password_length"`
				WeakPasswords     []string `yaml:"weak_passwords"`
			} `yaml:"env"`
		} `yaml:"auth"`
		PublicEndpoints []string `yaml:"public_endpoints"`
		JWT             struct {
			SecretEnv   string `yaml:"secret_env"`
			ExpiryHours int    `yaml:"expiry_hours"`
		} `yaml:"jwt"`
	} `yaml:"security"`
}

// LoadSecurityConfig reads and validates a security policy file.
// The path comes from a trusted source (CLI argument or SECURITY_CONFIG).
func LoadSecurityConfig(path string) (*SecurityConfig, error) {
	// #nosec G304 -- path is provided by the operator, not request input
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config SecurityConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validateSecurityConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func validateSecurityConfig(config *SecurityConfig) error {
	if config.Security.Auth.Provider == "" {
		return fmt.Errorf("auth provider is required")
	}

	if config.Security.Auth.Provider == "env" {
		if config.Security.Auth.Env.MinPasswordLength <= 0 {
			return fmt.Errorf("min_password_length must be positive")
		}
		if config.Security.Auth.Env.MinPasswordLength < 8 {
			return fmt.Errorf("min_password_length must be at least 8")
		}
	}

	if config.Security.JWT.SecretEnv == "" {
		return fmt.Errorf("jwt secret_env is required")
	}
	if config.Security.JWT.ExpiryHours <= 0 {
		return fmt.Errorf("jwt expiry_hours must be positive")
	}

	return nil
}

// GetAuthProvider returns the configured authentication provider name.
func (c *SecurityConfig) GetAuthProvider() string {
	return c.Security.Auth.Provider
}

// GetMinPasswordLength returns the minimum password length requirement.
func (c *SecurityConfig) GetMinPasswordLength() int {
	return c.Security.Auth.Env.MinPasswordLength
}

// GetWeakPasswords returns the list of rejected weak passwords.
func (c *SecurityConfig) GetWeakPasswords() []string {
	return c.Security.Auth.Env.WeakPasswords
}

// GetPublicEndpoints returns the list of endpoints exempt from authentication.
func (c *SecurityConfig) GetPublicEndpoints() []string {
	return c.Security.PublicEndpoints
}

// GetJWTSecretEnv returns the environment variable holding the JWT secret.
func (c *SecurityConfig) GetJWTSecretEnv() string {
	return c.Security.JWT.SecretEnv
}

// GetJWTExpiryHours returns the token lifetime in hours.
func (c *SecurityConfig) GetJWTExpiryHours() int {
	return c.Security.JWT.ExpiryHours
}

package auth

import (
	"fmt"
	"os"
	"strings"
)

// weakPasswordList contains common weak passwords that must be rejected,
// covering the most used passwords and their variations.
var weakPasswordList = []string{
	"admin",
	"password",
	"123456",
	"secret",
	"admin123",
	"password123",
	"123456789",
	"12345678",
	"qwerty",
	"abc123",
	"letmein",
	"welcome",
	"1234567890",
	"password1",
	"admin1",
	"test",
	"test123",
	"default",
	"root",
	"editor",
	"viewer",
}

// minPasswordLength is the minimum required password length for all accounts.
const minPasswordLength = 12

// WeakPasswords exposes the blacklist for provider construction.
func WeakPasswords() []string {
	return weakPasswordList
}

// MinPasswordLength exposes the length requirement for provider construction.
func MinPasswordLength() int {
	return minPasswordLength
}

// ValidateAdminCredentials validates admin credentials from environment
// variables at application startup, before the server starts listening.
//
// Requirements: ADMIN_USER and ADMIN_USER_PASSWORD must be set, the password
// must be at least 12 characters and must not match weak password patterns.
// The returned error is safe to log.
func ValidateAdminCredentials() error {
	user := os.Getenv("ADMIN_USER")
	pass := os.Getenv("ADMIN_USER_PASSWORD")

	if user == "" {
		return fmt.Errorf("admin credentials validation failed: ADMIN_USER must not be empty")
	}
	if pass == "" {
		return fmt.Errorf("admin credentials validation failed: ADMIN_USER_PASSWORD must not be empty")
	}
	if len(pass) < minPasswordLength {
		return fmt.Errorf("admin credentials validation failed: ADMIN_USER_PASSWORD must be at least %d characters (current length: %d)", minPasswordLength, len(pass))
	}
	if isSimpleNumericPattern(pass) {
		return fmt.Errorf("admin credentials validation failed: ADMIN_USER_PASSWORD must not be a simple numeric pattern")
	}
	if isKeyboardPattern(pass) {
		return fmt.Errorf("admin credentials validation failed: ADMIN_USER_PASSWORD must not be a keyboard pattern")
	}

	lowerPass := strings.ToLower(pass)
	for _, weak := range weakPasswordList {
		if lowerPass == weak {
			return fmt.Errorf("admin credentials validation failed: ADMIN_USER_PASSWORD must not be a weak password")
		}
		// Catches variations like "admin1234567890".
		if strings.HasPrefix(lowerPass, weak) && len(pass) < minPasswordLength+5 {
			return fmt.Errorf("admin credentials validation failed: ADMIN_USER_PASSWORD must not be based on common weak passwords")
		}
	}
	return nil
}

// startupLogger is the slice of slog the startup validation needs.
type startupLogger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
}

// ValidateRoleCredentials validates the optional editor and viewer
// credentials at startup with graceful degradation: a misconfigured role is
// disabled (its environment variables are unset) and the application keeps
// running with the remaining roles. It never fails startup.
func ValidateRoleCredentials(logger startupLogger) {
	adminUser := os.Getenv("ADMIN_USER")

	for _, role := range []string{"editor", "viewer"} {
		userVar := strings.ToUpper(role) + "_USER"
		passVar := userVar + "_PASSWORD"
		user := os.Getenv(userVar)
		pass := os.Getenv(passVar)

		if user == "" {
			logger.Info("role not configured", "role", role)
			continue
		}
		disable := func(reason string) {
			logger.Warn(reason+" - disabling role", "role", role)
			_ = os.Unsetenv(userVar)
			_ = os.Unsetenv(passVar)
		}
		if pass == "" {
			disable(passVar + " is empty")
			continue
		}
		if user == adminUser {
			disable(userVar + " must differ from ADMIN_USER")
			continue
		}
		if len(pass) < minPasswordLength {
			disable(fmt.Sprintf("%s must be at least %d characters", passVar, minPasswordLength))
			continue
		}
		weak := false
		lowerPass := strings.ToLower(pass)
		for _, w := range weakPasswordList {
			if lowerPass == w || strings.HasPrefix(lowerPass, w) {
				weak = true
				break
			}
		}
		if weak {
			disable(passVar + " is a weak password")
			continue
		}
		logger.Info("role configured", "role", role, "user", user)
	}
}

// isSimpleNumericPattern checks if the password is a repeated character or a
// plain ascending/descending digit sequence such as "123456789012".
func isSimpleNumericPattern(pass string) bool {
	if len(pass) < minPasswordLength {
		return false
	}
	if isRepeatedChar(pass) {
		return true
	}

	for _, ch := range pass {
		if ch < '0' || ch > '9' {
			return false
		}
	}

	isAscending := true
	isDescending := true
	for i := 1; i < len(pass); i++ {
		diff := int(pass[i]) - int(pass[i-1])
		// Sequences wrap: 9 -> 0 when ascending, 0 -> 9 when descending.
		if diff != 1 && diff != -9 {
			isAscending = false
		}
		if diff != -1 && diff != 9 {
			isDescending = false
		}
	}
	return isAscending || isDescending
}

func isRepeatedChar(pass string) bool {
	if len(pass) == 0 {
		return false
	}
	first := pass[0]
	for i := 1; i < len(pass); i++ {
		if pass[i] != first {
			return false
		}
	}
	return true
}

var keyboardPatterns = []string{
	"qwertyuiop",
	"asdfghjkl",
	"zxcvbnm",
	"qwerty",
	"asdfgh",
	"zxcvb",
}

func isKeyboardPattern(pass string) bool {
	lowerPass := strings.ToLower(pass)
	for _, pattern := range keyboardPatterns {
		if strings.Contains(lowerPass, pattern) {
			return true
		}
		if strings.Contains(lowerPass, reverse(pattern)) {
			return true
		}
	}
	return false
}

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// Package password implements the credential scheme of the identity service:
// salted SHA-256 hashes and the registration complexity policy.
package password

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"unicode"
)

// Hash returns hex(sha256(password || salt)), the stored credential format.
// Stored hashes are compared with plain equality at login; unlike token
// signature checks this comparison is not constant-time.
func Hash(password, salt string) string {
	sum := sha256.Sum256([]byte(password + salt))
	return hex.EncodeToString(sum[:])
}

// Valid reports whether a password satisfies the registration policy:
// at least 8 characters, at least one digit, one uppercase and one lowercase
// letter, and it must not case-insensitively contain the username, first
// name, or last name.
func Valid(username, firstName, lastName, pw string) bool {
	if len(pw) < 8 {
		return false
	}

	var hasDigit, hasUpper, hasLower bool
	for _, r := range pw {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		}
	}
	if !hasDigit || !hasUpper || !hasLower {
		return false
	}

	lower := strings.ToLower(pw)
	for _, part := range []string{username, firstName, lastName} {
		if part != "" && strings.Contains(lower, strings.ToLower(part)) {
			return false
		}
	}
	return true
}

package domain

import "time"

// User models a registered account in the credential store.
type User struct {
	ID           string    `json:"id,omitempty"`
	Username     string    `json:"username"`
	FirstName    string    `json:"first_name,omitempty"`
	LastName     string    `json:"last_name,omitempty"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Salt         string    `json:"-"`
	Employee     bool      `json:"employee"`
	CreatedAt    time.Time `json:"created_at"`
}

// AuthDecision is the outcome of a token verification. An invalid token is a
// normal, expected result rather than an error: Valid is false and the
// remaining fields are zero.
type AuthDecision struct {
	Valid    bool
	Username string
	Employee bool
}

package ports

import (
	"context"

	"github.com/minimart/commerce-system/internal/core/domain"
)

// RegisterInput is the DTO passed from the transport layer to the identity
// service. Employee is a real boolean here; any wire encoding is the
// handler's concern.
type RegisterInput struct {
	FirstName string
	LastName  string
	Username  string
	Email     string
	Employee  bool
	Password  string
	Salt      string
}

// IdentityService issues and verifies bearer tokens and owns registration.
type IdentityService interface {
	// Register validates the password policy and uniqueness constraints and
	// returns the created user. Errors: domain.ErrWeakPassword,
	// domain.ErrUserExists, domain.ErrEmailExists.
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	// Login verifies credentials and mints a token.
	// Errors: domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, error)
	// Verify never fails open: any defect in the token, and a subject that no
	// longer exists, yield an invalid decision rather than an error.
	Verify(ctx context.Context, tok string) domain.AuthDecision
	// ListUsers returns every registered user.
	ListUsers(ctx context.Context) ([]domain.User, error)
}

package ports

import (
	"context"

	"github.com/minimart/commerce-system/internal/core/domain"
)

// UserRepository defines credential-store persistence. Username and email are
// globally unique; Create reports which constraint was violated.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

package ports

import (
	"context"

	"github.com/globalpulse24/newsroom/internal/core/domain"
)

// AuthRepository defines the interface for credential-store persistence.
type AuthRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

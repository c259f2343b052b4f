package ports

import (
	"context"

	"github.com/globalpulse24/newsroom/internal/core/domain"
)

type AuthService interface {
	Login(ctx context.Context, username, password string) (string, error)
	ProvisionAdmin(ctx context.Context, username, password string) (bool, error)
}

// PasswordHasher is a one-way, salted password hash.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

// TokenIssuer signs time-limited bearer tokens.
type TokenIssuer interface {
	Issue(username, role string) (string, error)
}

// TokenVerifier validates bearer tokens and returns the identity they carry.
type TokenVerifier interface {
	Verify(token string) (domain.Identity, error)
}

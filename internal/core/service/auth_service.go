package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/globalpulse24/newsroom/internal/pkg/metrics"
	"github.com/globalpulse24/newsroom/internal/core/domain"
	"github.com/globalpulse24/newsroom/internal/core/ports"
)

// AuthService implements token issuance and admin provisioning.
type AuthService struct {
	repo   ports.AuthRepository
	hasher ports.PasswordHasher
	tokens ports.TokenIssuer
	log    zerolog.Logger
}

func NewAuthService(repo ports.AuthRepository, hasher ports.PasswordHasher, tokens ports.TokenIssuer, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens, log: log}
}

// Login checks the credentials and returns a signed bearer token. Unknown
// users and wrong passwords produce the same error.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginFailuresTotal.WithLabelValues("unknown_user").Inc()
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("login: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		metrics.LoginFailuresTotal.WithLabelValues("bad_password").Inc()
		return "", domain.ErrInvalidCredentials
	}

	role := user.Role
	if role == "" {
		role = domain.RoleUser
	}

	token, err := s.tokens.Issue(user.Username, role)
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}

	metrics.TokensIssuedTotal.WithLabelValues(role).Inc()
	return token, nil
}

// ProvisionAdmin creates the admin account if it does not exist yet. It
// reports whether a new account was created; an existing user is left
// untouched.
func (s *AuthService) ProvisionAdmin(ctx context.Context, username, password string) (bool, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return false, domain.ErrInvalidCredentials
	}

	if _, err := s.repo.FindByUsername(ctx, username); err == nil {
		s.log.Info().Str("username", username).Msg("admin already provisioned")
		return false, nil
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return false, fmt.Errorf("provision admin: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return false, fmt.Errorf("provision admin: hash password: %w", err)
	}

	_, err = s.repo.Create(ctx, &domain.User{
		Username:     username,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	})
	if errors.Is(err, domain.ErrUserExists) {
		// Lost a race with a concurrent provisioning run.
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("provision admin: %w", err)
	}

	s.log.Info().Str("username", username).Msg("admin provisioned")
	return true, nil
}

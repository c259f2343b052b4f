package domain

import (
	"errors"
	"fmt"
)

// Authentication and authorization failures.
var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("access forbidden")
	ErrInvalidCredentials = errors.New("incorrect username or password")

	// Token failures are all of the Unauthorized class; errors.Is(err, ErrUnauthorized) holds for each.
	ErrTokenExpired   = fmt.Errorf("%w: token expired", ErrUnauthorized)
	ErrTokenMalformed = fmt.Errorf("%w: token malformed", ErrUnauthorized)
)

// Store-level failures.
var (
	ErrArticleNotFound  = errors.New("article not found")
	ErrInvalidArticleID = errors.New("invalid article id")
	ErrUserNotFound     = errors.New("user not found")
	ErrUserExists       = errors.New("user already exists")
)

// ErrSubmissionInProgress reports that another request holding the same
// Idempotency-Key has not finished yet.
var ErrSubmissionInProgress = errors.New("a submission with this idempotency key is still in progress")

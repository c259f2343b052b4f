package ports

import (
	"context"

	"github.com/globalpulse24/newsroom/internal/core/domain"
)

// ArticleRepository defines persistence operations for articles.
type ArticleRepository interface {
	// Create stores the article and returns it with its assigned ID.
	Create(ctx context.Context, a *domain.Article) (*domain.Article, error)
	FindByID(ctx context.Context, id string) (*domain.Article, error)
	// ListByStatus returns matching articles, newest first.
	ListByStatus(ctx context.Context, status domain.ArticleStatus) ([]*domain.Article, error)
	// Approve atomically moves an article to the approved status. Approving an
	// already approved article succeeds and returns the current record.
	Approve(ctx context.Context, id string) (*domain.Article, error)
	CountApprovedByAuthor(ctx context.Context, author string) (int64, error)
	AggregateApprovedByAuthor(ctx context.Context) ([]domain.AuthorCount, error)
}

// IdempotencyStore maps a client-supplied Idempotency-Key to the article it
// created. A key is claimed before the article is stored so concurrent
// requests with the same key produce a single article.
type IdempotencyStore interface {
	// Claim reserves key. It returns false when the key is already held,
	// either in flight or completed.
	Claim(ctx context.Context, key string) (bool, error)
	// Lookup returns the article ID recorded for key. found is true with an
	// empty ID while the claiming request is still in flight.
	Lookup(ctx context.Context, key string) (articleID string, found bool, err error)
	// Complete records the article created under a claimed key.
	Complete(ctx context.Context, key, articleID string) error
	// Release drops a claim whose submission failed.
	Release(ctx context.Context, key string) error
}

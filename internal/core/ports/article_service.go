package ports

import (
	"context"

	"github.com/globalpulse24/newsroom/internal/core/domain"
)

// SubmitArticleInput is the DTO passed from the transport layer to ArticleService.
// It deliberately carries no status: every submission starts pending.
type SubmitArticleInput struct {
	Title          string
	Content        string
	Author         string
	Category       string
	ImageURL       *string
	IdempotencyKey string
}

// ArticleService defines the moderation use cases.
type ArticleService interface {
	Submit(ctx context.Context, input SubmitArticleInput) (*domain.Article, error)
	ListLive(ctx context.Context) ([]*domain.Article, error)
	ListPending(ctx context.Context) ([]*domain.Article, error)
	Approve(ctx context.Context, id string) (*domain.Article, error)
}

// EarningsService computes mock publisher revenue from approved articles.
type EarningsService interface {
	ForPublisher(ctx context.Context, username string) (*domain.Earnings, error)
	Payouts(ctx context.Context) ([]domain.Payout, error)
}

package service

import (
	"context"
	"fmt"

	"github.com/globalpulse24/newsroom/internal/core/domain"
	"github.com/globalpulse24/newsroom/internal/core/ports"
)

// DefaultRatePerArticle is the mock payout per approved article.
const DefaultRatePerArticle int64 = 50

// EarningsService derives mock revenue from approved-article counts. It is a
// placeholder, not payment logic.
type EarningsService struct {
	repo ports.ArticleRepository
	rate int64
}

func NewEarningsService(repo ports.ArticleRepository, rate int64) *EarningsService {
	if rate < 0 {
		rate = DefaultRatePerArticle
	}
	return &EarningsService{repo: repo, rate: rate}
}

func (s *EarningsService) ForPublisher(ctx context.Context, username string) (*domain.Earnings, error) {
	n, err := s.repo.CountApprovedByAuthor(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("publisher earnings: %w", err)
	}

	revenue := n * s.rate
	return &domain.Earnings{
		TotalRevenue:     revenue,
		ApprovedArticles: n,
		PendingPayments:  revenue,
	}, nil
}

func (s *EarningsService) Payouts(ctx context.Context) ([]domain.Payout, error) {
	rows, err := s.repo.AggregateApprovedByAuthor(ctx)
	if err != nil {
		return nil, fmt.Errorf("payouts: %w", err)
	}

	payouts := make([]domain.Payout, 0, len(rows))
	for _, r := range rows {
		payouts = append(payouts, domain.Payout{
			Publisher:        r.Author,
			ApprovedArticles: r.Count,
			Earnings:         r.Count * s.rate,
		})
	}
	return payouts, nil
}

package handler

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/globalpulse24/newsroom/internal/core/domain"
	"github.com/globalpulse24/newsroom/internal/core/ports"
)

type stubAuthService struct {
	loginFn     func(ctx context.Context, username, password string) (string, error)
	provisionFn func(ctx context.Context, username, password string) (bool, error)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (string, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) ProvisionAdmin(ctx context.Context, username, password string) (bool, error) {
	return s.provisionFn(ctx, username, password)
}

type stubArticleService struct {
	submitFn  func(ctx context.Context, in ports.SubmitArticleInput) (*domain.Article, error)
	liveFn    func(ctx context.Context) ([]*domain.Article, error)
	pendingFn func(ctx context.Context) ([]*domain.Article, error)
	approveFn func(ctx context.Context, id string) (*domain.Article, error)
}

func (s *stubArticleService) Submit(ctx context.Context, in ports.SubmitArticleInput) (*domain.Article, error) {
	return s.submitFn(ctx, in)
}

func (s *stubArticleService) ListLive(ctx context.Context) ([]*domain.Article, error) {
	return s.liveFn(ctx)
}

func (s *stubArticleService) ListPending(ctx context.Context) ([]*domain.Article, error) {
	return s.pendingFn(ctx)
}

func (s *stubArticleService) Approve(ctx context.Context, id string) (*domain.Article, error) {
	return s.approveFn(ctx, id)
}

type stubEarningsService struct {
	forPublisherFn func(ctx context.Context, username string) (*domain.Earnings, error)
	payoutsFn      func(ctx context.Context) ([]domain.Payout, error)
}

func (s *stubEarningsService) ForPublisher(ctx context.Context, username string) (*domain.Earnings, error) {
	return s.forPublisherFn(ctx, username)
}

func (s *stubEarningsService) Payouts(ctx context.Context) ([]domain.Payout, error) {
	return s.payoutsFn(ctx)
}

// newEcho returns an Echo instance with the request validator installed.
func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

// httpCode returns the status carried by an *echo.HTTPError, or 0.
func httpCode(err error) int {
	if he, ok := err.(*echo.HTTPError); ok {
		return he.Code
	}
	return 0
}

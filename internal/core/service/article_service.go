package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/globalpulse24/newsroom/internal/pkg/metrics"
	"github.com/globalpulse24/newsroom/internal/core/domain"
	"github.com/globalpulse24/newsroom/internal/core/ports"
)

const (
	defaultReplayWait = 5 * time.Second
	defaultReplayPoll = 50 * time.Millisecond
)

type ArticleService struct {
	repo   ports.ArticleRepository
	idem   ports.IdempotencyStore
	logger zerolog.Logger
	now    func() time.Time

	// replayWait bounds how long a request waits for another request holding
	// the same Idempotency-Key; replayPoll is the lookup interval.
	replayWait time.Duration
	replayPoll time.Duration
}

// NewArticleService returns an ArticleService. idem may be nil, in which case
// Idempotency-Key headers are ignored.
func NewArticleService(repo ports.ArticleRepository, idem ports.IdempotencyStore, logger zerolog.Logger) *ArticleService {
	return &ArticleService{
		repo:       repo,
		idem:       idem,
		logger:     logger,
		now:        time.Now,
		replayWait: defaultReplayWait,
		replayPoll: defaultReplayPoll,
	}
}

// Submit stores a new article as pending with a server-assigned timestamp.
// With an Idempotency-Key, the first request claims the key before storing;
// any other request with the same key returns the article the first one
// created, waiting for it while it is in flight.
func (s *ArticleService) Submit(ctx context.Context, input ports.SubmitArticleInput) (*domain.Article, error) {
	key := input.IdempotencyKey
	if key == "" || s.idem == nil {
		return s.create(ctx, input)
	}

	timeout := time.NewTimer(s.replayWait)
	defer timeout.Stop()

	for {
		claimed, err := s.idem.Claim(ctx, key)
		if err != nil {
			s.logger.Warn().Err(err).Str("idempotency_key", key).Msg("idempotency claim failed, submitting anyway")
			return s.create(ctx, input)
		}
		if claimed {
			return s.createClaimed(ctx, key, input)
		}

		id, found, err := s.idem.Lookup(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("submit article: %w", err)
		}
		if found && id != "" {
			return s.replay(ctx, key, id)
		}
		if !found {
			// The holder released its claim; try to claim it ourselves.
			continue
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timeout.C:
			return nil, domain.ErrSubmissionInProgress
		case <-time.After(s.replayPoll):
		}
	}
}

func (s *ArticleService) createClaimed(ctx context.Context, key string, input ports.SubmitArticleInput) (*domain.Article, error) {
	article, err := s.create(ctx, input)
	if err != nil {
		if rerr := s.idem.Release(ctx, key); rerr != nil {
			s.logger.Warn().Err(rerr).Str("idempotency_key", key).Msg("failed to release idempotency key")
		}
		return nil, err
	}

	if err := s.idem.Complete(ctx, key, article.ID); err != nil {
		s.logger.Warn().Err(err).Str("idempotency_key", key).Str("article_id", article.ID).Msg("failed to record idempotency key")
	}
	return article, nil
}

func (s *ArticleService) create(ctx context.Context, input ports.SubmitArticleInput) (*domain.Article, error) {
	article, err := s.repo.Create(ctx, &domain.Article{
		Title:    input.Title,
		Content:  input.Content,
		Author:   input.Author,
		Category: input.Category,
		ImageURL: input.ImageURL,
		Status:   domain.StatusPending,
		// The store keeps millisecond precision.
		Timestamp: s.now().UTC().Truncate(time.Millisecond),
	})
	if err != nil {
		s.logger.Error().Err(err).Str("author", input.Author).Msg("failed to store article")
		return nil, fmt.Errorf("submit article: %w", err)
	}

	metrics.ArticlesSubmittedTotal.WithLabelValues(article.Category).Inc()
	s.logger.Info().Str("article_id", article.ID).Str("author", article.Author).Msg("article submitted")
	return article, nil
}

// replay returns the article recorded under key.
func (s *ArticleService) replay(ctx context.Context, key, id string) (*domain.Article, error) {
	article, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, domain.ErrArticleNotFound) || errors.Is(err, domain.ErrInvalidArticleID) {
		s.logger.Warn().Str("idempotency_key", key).Str("article_id", id).Msg("idempotent replay target missing")
		return nil, fmt.Errorf("replay %s: %w", id, domain.ErrSubmissionInProgress)
	}
	if err != nil {
		return nil, fmt.Errorf("replay article: %w", err)
	}

	s.logger.Info().Str("idempotency_key", key).Str("article_id", id).Msg("idempotent replay")
	return article, nil
}

func (s *ArticleService) ListLive(ctx context.Context) ([]*domain.Article, error) {
	return s.list(ctx, domain.StatusApproved)
}

func (s *ArticleService) ListPending(ctx context.Context) ([]*domain.Article, error) {
	return s.list(ctx, domain.StatusPending)
}

func (s *ArticleService) list(ctx context.Context, status domain.ArticleStatus) ([]*domain.Article, error) {
	articles, err := s.repo.ListByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("list %s articles: %w", status, err)
	}
	if articles == nil {
		articles = []*domain.Article{}
	}
	return articles, nil
}

// Approve moves an article to the approved status. Approving twice is not an error.
func (s *ArticleService) Approve(ctx context.Context, id string) (*domain.Article, error) {
	article, err := s.repo.Approve(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrArticleNotFound) || errors.Is(err, domain.ErrInvalidArticleID) {
			return nil, err
		}
		return nil, fmt.Errorf("approve article: %w", err)
	}

	metrics.ArticlesApprovedTotal.Inc()
	s.logger.Info().Str("article_id", article.ID).Str("author", article.Author).Msg("article approved")
	return article, nil
}

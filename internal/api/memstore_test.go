package api

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/globalpulse24/newsroom/internal/core/domain"
)

// memArticles is an in-memory ArticleRepository with the same id rules as
// the Mongo one.
type memArticles struct {
	mu       sync.Mutex
	articles map[string]*domain.Article
}

func newMemArticles() *memArticles {
	return &memArticles{articles: make(map[string]*domain.Article)}
}

func (m *memArticles) Create(_ context.Context, a *domain.Article) (*domain.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := *a
	stored.ID = primitive.NewObjectID().Hex()
	m.articles[stored.ID] = &stored
	out := stored
	return &out, nil
}

func (m *memArticles) FindByID(_ context.Context, id string) (*domain.Article, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, domain.ErrInvalidArticleID
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.articles[id]
	if !ok {
		return nil, domain.ErrArticleNotFound
	}
	out := *a
	return &out, nil
}

func (m *memArticles) ListByStatus(_ context.Context, status domain.ArticleStatus) ([]*domain.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []*domain.Article{}
	for _, a := range m.articles {
		if a.Status == status {
			c := *a
			out = append(out, &c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}

func (m *memArticles) Approve(_ context.Context, id string) (*domain.Article, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, domain.ErrInvalidArticleID
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.articles[id]
	if !ok {
		return nil, domain.ErrArticleNotFound
	}
	a.Status = domain.StatusApproved
	out := *a
	return &out, nil
}

func (m *memArticles) CountApprovedByAuthor(_ context.Context, author string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, a := range m.articles {
		if a.Author == author && a.Status == domain.StatusApproved {
			n++
		}
	}
	return n, nil
}

func (m *memArticles) AggregateApprovedByAuthor(_ context.Context) ([]domain.AuthorCount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	counts := map[string]int64{}
	for _, a := range m.articles {
		if a.Status == domain.StatusApproved {
			counts[a.Author]++
		}
	}
	out := make([]domain.AuthorCount, 0, len(counts))
	for author, n := range counts {
		out = append(out, domain.AuthorCount{Author: author, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Author < out[j].Author })
	return out, nil
}

type memUsers struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func newMemUsers() *memUsers {
	return &memUsers{users: make(map[string]*domain.User)}
}

func (m *memUsers) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	out := *u
	return &out, nil
}

func (m *memUsers) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[user.Username]; ok {
		return nil, domain.ErrUserExists
	}
	stored := *user
	stored.ID = primitive.NewObjectID().Hex()
	m.users[user.Username] = &stored
	out := stored
	return &out, nil
}

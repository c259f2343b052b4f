package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/globalpulse24/newsroom/internal/core/domain"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// In-memory article repository (mirrors the Mongo queries)
// ---------------------------------------------------------------------------

type stubArticleRepo struct {
	mu       sync.Mutex
	articles map[string]*domain.Article
	seq      int
	err      error // if set, every call returns this error

	beforeCreate func() // runs before Create takes the lock
}

func newStubArticleRepo() *stubArticleRepo {
	return &stubArticleRepo{articles: make(map[string]*domain.Article)}
}

func cloneArticle(a *domain.Article) *domain.Article {
	c := *a
	return &c
}

func (r *stubArticleRepo) Create(_ context.Context, a *domain.Article) (*domain.Article, error) {
	if r.beforeCreate != nil {
		r.beforeCreate()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	r.seq++
	stored := cloneArticle(a)
	stored.ID = fmt.Sprintf("%024x", r.seq)
	r.articles[stored.ID] = stored
	return cloneArticle(stored), nil
}

func (r *stubArticleRepo) FindByID(_ context.Context, id string) (*domain.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	a, ok := r.articles[id]
	if !ok {
		return nil, domain.ErrArticleNotFound
	}
	return cloneArticle(a), nil
}

func (r *stubArticleRepo) ListByStatus(_ context.Context, status domain.ArticleStatus) ([]*domain.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	var out []*domain.Article
	for _, a := range r.articles {
		if a.Status == status {
			out = append(out, cloneArticle(a))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}

func (r *stubArticleRepo) Approve(_ context.Context, id string) (*domain.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	if len(id) != 24 {
		return nil, domain.ErrInvalidArticleID
	}
	a, ok := r.articles[id]
	if !ok {
		return nil, domain.ErrArticleNotFound
	}
	a.Status = domain.StatusApproved
	return cloneArticle(a), nil
}

func (r *stubArticleRepo) CountApprovedByAuthor(_ context.Context, author string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return 0, r.err
	}
	var n int64
	for _, a := range r.articles {
		if a.Author == author && a.Status == domain.StatusApproved {
			n++
		}
	}
	return n, nil
}

func (r *stubArticleRepo) AggregateApprovedByAuthor(_ context.Context) ([]domain.AuthorCount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	counts := map[string]int64{}
	for _, a := range r.articles {
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

// ---------------------------------------------------------------------------
// Idempotency store
// ---------------------------------------------------------------------------

// stubIdempotency mirrors the Redis store: a claimed key holds an empty ID
// until Complete records the article.
type stubIdempotency struct {
	mu        sync.Mutex
	keys      map[string]string
	lookups   int
	claimErr  error
	lookupErr error
}

func newStubIdempotency() *stubIdempotency {
	return &stubIdempotency{keys: make(map[string]string)}
}

func (s *stubIdempotency) Claim(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.claimErr != nil {
		return false, s.claimErr
	}
	if _, ok := s.keys[key]; ok {
		return false, nil
	}
	s.keys[key] = ""
	return true, nil
}

func (s *stubIdempotency) Lookup(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lookups++
	if s.lookupErr != nil {
		return "", false, s.lookupErr
	}
	id, ok := s.keys[key]
	return id, ok, nil
}

func (s *stubIdempotency) Complete(_ context.Context, key, articleID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keys[key] = articleID
	return nil
}

func (s *stubIdempotency) Release(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.keys, key)
	return nil
}

func (s *stubIdempotency) lookupCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lookups
}

// ---------------------------------------------------------------------------
// Credential store, hasher, token issuer
// ---------------------------------------------------------------------------

type stubAuthRepo struct {
	users   map[string]*domain.User
	findErr error
}

func newStubAuthRepo() *stubAuthRepo {
	return &stubAuthRepo{users: make(map[string]*domain.User)}
}

func (r *stubAuthRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	c := *user
	c.ID = user.Username
	r.users[c.Username] = &c
	out := c
	return &out, nil
}

func (r *stubAuthRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	c := *u
	return &c, nil
}

// reversingHasher is a deterministic stand-in for bcrypt.
type reversingHasher struct{}

func (reversingHasher) Hash(p string) (string, error) {
	r := []rune(p)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return "h:" + string(r), nil
}

func (h reversingHasher) Verify(p, hash string) bool {
	want, _ := h.Hash(p)
	return want == hash
}

type stubIssuer struct {
	err    error
	issued []string
}

func (s *stubIssuer) Issue(username, role string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.issued = append(s.issued, username+"|"+role)
	return "token-for-" + username + "-" + role, nil
}

var errStoreDown = errors.New("store unavailable")

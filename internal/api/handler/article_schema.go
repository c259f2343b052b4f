package handler

import (
	"time"

	"github.com/globalpulse24/newsroom/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// submitArticleRequest has no status field: any status sent by the client is dropped on bind.
type submitArticleRequest struct {
	Title    string  `json:"title"     validate:"required,max=300"`
	Content  string  `json:"content"   validate:"required"`
	Author   string  `json:"author"    validate:"required,max=100"`
	Category string  `json:"category"  validate:"required,max=100"`
	ImageURL *string `json:"image_url" validate:"omitempty,url"`
}

type articleResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	Category  string    `json:"category"`
	ImageURL  *string   `json:"image_url"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type earningsResponse struct {
	TotalRevenue     int64 `json:"total_revenue"`
	ApprovedArticles int64 `json:"approved_articles"`
	PendingPayments  int64 `json:"pending_payments"`
}

type payoutResponse struct {
	Publisher        string `json:"publisher"`
	ApprovedArticles int64  `json:"approved_articles"`
	Earnings         int64  `json:"earnings"`
}

type payoutsResponse struct {
	Payouts []payoutResponse `json:"payouts"`
}

func toArticleResponse(a *domain.Article) articleResponse {
	return articleResponse{
		ID:        a.ID,
		Title:     a.Title,
		Content:   a.Content,
		Author:    a.Author,
		Category:  a.Category,
		ImageURL:  a.ImageURL,
		Status:    string(a.Status),
		Timestamp: a.Timestamp.UTC(),
	}
}

func toArticleListResponse(articles []*domain.Article) []articleResponse {
	out := make([]articleResponse, len(articles))
	for i, a := range articles {
		out[i] = toArticleResponse(a)
	}
	return out
}

func toPayoutsResponse(payouts []domain.Payout) payoutsResponse {
	out := make([]payoutResponse, len(payouts))
	for i, p := range payouts {
		out[i] = payoutResponse{
			Publisher:        p.Publisher,
			ApprovedArticles: p.ApprovedArticles,
			Earnings:         p.Earnings,
		}
	}
	return payoutsResponse{Payouts: out}
}

package domain

// Earnings is the mock revenue summary for a single publisher.
type Earnings struct {
	TotalRevenue     int64 `json:"total_revenue"`
	ApprovedArticles int64 `json:"approved_articles"`
	PendingPayments  int64 `json:"pending_payments"`
}

// Payout is one publisher's line in the admin payout report.
type Payout struct {
	Publisher        string `json:"publisher"`
	ApprovedArticles int64  `json:"approved_articles"`
	Earnings         int64  `json:"earnings"`
}

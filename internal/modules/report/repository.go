package report

import "context"

// Repository defines the aggregation queries. Every query joins order
// items to their order and excludes CANCELED orders, so cancelled lines
// never count toward any report. Ties break on product id ascending.
type Repository interface {
	TopFrequent(ctx context.Context, userID int64, limit int) ([]*ProductCount, error)
	TopRecent(ctx context.Context, userID int64, limit int) ([]*ProductRecency, error)
	TopPopular(ctx context.Context, limit int) ([]*ProductCount, error)
	TopProfitable(ctx context.Context, limit int) ([]*ProductProfit, error)
	TotalSold(ctx context.Context) (int64, error)
}

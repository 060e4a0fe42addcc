package watchlist

// Entry links a user to a product they are watching. (user_id, product_id)
// is unique; adding the same product twice is a no-op.
type Entry struct {
	ID        int64 `json:"id"`
	UserID    int64 `json:"userId"`
	ProductID int64 `json:"productId"`
}

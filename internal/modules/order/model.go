package order

import "time"

// Status represents the lifecycle state of an order.
type Status string

const (
	StatusProcessing Status = "PROCESSING"
	StatusCompleted  Status = "COMPLETED"
	StatusCanceled   Status = "CANCELED"
)

// CanTransition reports whether the state machine permits moving from one
// status to another. COMPLETED and CANCELED are terminal.
func CanTransition(from, to Status) bool {
	if from != StatusProcessing {
		return false
	}
	return to == StatusCompleted || to == StatusCanceled
}

// Order is a placed order. Status is the only field that changes after
// placement.
type Order struct {
	ID       int64     `json:"id"`
	UserID   int64     `json:"userId"`
	PlacedAt time.Time `json:"placedAt"`
	Status   Status    `json:"status"`
}

// Item is a single order line. The price columns are snapshots of the
// product taken at placement; later product edits never touch them.
type Item struct {
	ID                    int64   `json:"id"`
	OrderID               int64   `json:"orderId"`
	ProductID             int64   `json:"productId"`
	Quantity              int     `json:"quantity"`
	RetailPriceAtOrder    float64 `json:"retailPriceAtOrder"`
	WholesalePriceAtOrder float64 `json:"-"`
}

// ItemDetail is the serialized order line, carrying the product name.
type ItemDetail struct {
	ProductID          int64   `json:"productId"`
	ProductName        string  `json:"productName"`
	Quantity           int     `json:"quantity"`
	RetailPriceAtOrder float64 `json:"retailPriceAtOrder"`
}

// Detail is an order with its lines attached.
type Detail struct {
	Order
	Items []*ItemDetail `json:"items"`
}

// CartItem is one requested line of a new order.
type CartItem struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// PlaceOrderRequest is the payload for creating a new order.
type PlaceOrderRequest struct {
	Items []CartItem `json:"items"`
}

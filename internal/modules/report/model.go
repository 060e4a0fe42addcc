package report

import (
	"time"

	"github.com/shoplite/shoplite-backend/internal/modules/catalog"
)

// ProductCount ranks a product by total units sold.
type ProductCount struct {
	Product       *catalog.Product `json:"product"`
	TotalQuantity int64            `json:"totalQuantity"`
}

// ProductRecency ranks a product by the latest order that included it.
type ProductRecency struct {
	Product       *catalog.Product `json:"product"`
	LastOrderedAt time.Time        `json:"lastOrderedAt"`
}

// ProductProfit ranks a product by realized profit, computed from the
// price snapshots captured at placement.
type ProductProfit struct {
	Product *catalog.Product `json:"product"`
	Profit  float64          `json:"profit"`
}

// Customer-facing rows substitute the public product view.

type publicProductCount struct {
	Product       *catalog.PublicProduct `json:"product"`
	TotalQuantity int64                  `json:"totalQuantity"`
}

type publicProductRecency struct {
	Product       *catalog.PublicProduct `json:"product"`
	LastOrderedAt time.Time              `json:"lastOrderedAt"`
}

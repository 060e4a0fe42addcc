package catalog

// Product is a catalog entry. Quantity is the on-hand stock and is the only
// field the order engine mutates.
type Product struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description,omitempty"`
	WholesalePrice float64 `json:"wholesalePrice"`
	RetailPrice    float64 `json:"retailPrice"`
	Quantity       int     `json:"quantity"`
}

// PublicProduct is the customer-facing serialization. It omits the
// wholesale price and the stock level.
type PublicProduct struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	RetailPrice float64 `json:"retailPrice"`
}

// PublicView returns the customer-facing shape of the product.
func (p *Product) PublicView() *PublicProduct {
	return &PublicProduct{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		RetailPrice: p.RetailPrice,
	}
}

// PublicViews maps a product list to its customer-facing shapes.
func PublicViews(products []*Product) []*PublicProduct {
	views := make([]*PublicProduct, 0, len(products))
	for _, p := range products {
		views = append(views, p.PublicView())
	}
	return views
}

// CreateProductRequest is the payload for adding a product.
type CreateProductRequest struct {
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	WholesalePrice float64 `json:"wholesalePrice"`
	RetailPrice    float64 `json:"retailPrice"`
	Quantity       int     `json:"quantity"`
}

// UpdateProductRequest is a partial update; only fields present in the
// payload change.
type UpdateProductRequest struct {
	Name           *string  `json:"name"`
	Description    *string  `json:"description"`
	WholesalePrice *float64 `json:"wholesalePrice"`
	RetailPrice    *float64 `json:"retailPrice"`
	Quantity       *int     `json:"quantity"`
}

package models

import "time"

type Product struct {
	ID             int               `json:"id"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Price          float64           `json:"price"`
	OfferPrice     float64           `json:"offerPrice"`
	Category       string            `json:"category"`
	CategoryID     *int              `json:"categoryId"` // numeric reference, may drift from Category name
	Image          []string          `json:"image"`
	Brand          string            `json:"brand"`
	InStock        bool              `json:"inStock"`
	Quantity       int               `json:"quantity"`
	Ratings        float64           `json:"ratings"`
	Reviews        int               `json:"reviews"`
	Tags           []string          `json:"tags"`
	Specifications map[string]string `json:"specifications"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

// CartItem is a full snapshot of the product taken at add-time plus the
// requested quantity. It is not kept in sync with later catalog changes.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

package model

import "errors"

var ErrProductNotFound = errors.New("product not found")

// Product is a catalog entry. Prices are stored in cents.
type Product struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	PriceCents  int64    `json:"price_cents"`
	Image       string   `json:"image"`
	Description string   `json:"description,omitempty"`
	Ingredients []string `json:"ingredients,omitempty"`
	Rating      float64  `json:"rating,omitempty"`
}

// Catalog is the read-only source of purchasable products.
type Catalog interface {
	Products() []Product
	Find(id int) (Product, error)
}

// Package model holds the catalog data shapes shared by storage, services and handlers.
package model

import (
	"time"

	"github.com/maxviazov/storefront-pager/internal/pager"
)

// Product is a catalog entry as shown in the storefront listing.
type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	PriceNormal float64   `json:"price_normal"`
	Reduction   int       `json:"reduction"`
	Sale        bool      `json:"sale"`
	Categories  []string  `json:"categories"`
	ImageURLs   []string  `json:"image_urls"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProductPage is one page of the catalog listing together with the pager
// descriptor the client renders its page links from.
type ProductPage struct {
	Pager pager.Descriptor `json:"pager"`
	Items []Product        `json:"items"`
}

package domain

import (
	"context"
	"time"
)

// Review represents a published product review
type Review struct {
	ID        int64     `json:"id" db:"id"`
	ProductID string    `json:"productId" db:"product_id"`
	Nickname  string    `json:"nickname" db:"nickname"`
	Rating    int       `json:"rating" db:"rating"`
	Title     string    `json:"title" db:"title"`
	Comment   string    `json:"comment" db:"comment"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// ReviewInput is the user-submitted payload for a new review.
// Product IDs are opaque: a review may reference a product that is no
// longer part of the static catalog, so they are not cross-checked.
type ReviewInput struct {
	ProductID string `json:"productId" validate:"required"`
	Nickname  string `json:"nickname" validate:"required,max=30"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Title     string `json:"title" validate:"required,max=100"`
	Comment   string `json:"comment" validate:"required,max=1000"`
}

// ReviewPage is one page of the admin review listing. Total counts rows
// matching the search filter, not the whole table.
type ReviewPage struct {
	Reviews []*Review `json:"reviews"`
	Total   int       `json:"total"`
}

// RatingSummary holds the aggregated rating for one product
type RatingSummary struct {
	ProductID string  `json:"productId"`
	Average   float64 `json:"average"`
	Count     int     `json:"count"`
}

// ReviewRepository defines the interface for review data access
type ReviewRepository interface {
	// Create persists a new review, assigning its ID and CreatedAt.
	// The returned record reflects exactly what was stored.
	Create(ctx context.Context, input ReviewInput) (*Review, error)

	// GetByProductID retrieves all reviews for a product, newest first
	GetByProductID(ctx context.Context, productID string) ([]*Review, error)

	// List retrieves a page of reviews across all products, newest first.
	// A non-blank search filters case-insensitively on nickname, title and
	// comment. Page is 1-indexed; a page past the end yields an empty slice
	// with the correct total.
	List(ctx context.Context, search string, page, limit int) (*ReviewPage, error)

	// Delete hard-deletes a review and reports the product it belonged to.
	// Deleting an unknown ID is a no-op and returns an empty product ID.
	Delete(ctx context.Context, id int64) (string, error)

	// RatingSummary aggregates rating stats for a product
	RatingSummary(ctx context.Context, productID string) (*RatingSummary, error)
}

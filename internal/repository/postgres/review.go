package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/wheatandcat/KAWKAW/internal/domain"
)

// ReviewRepository implements domain.ReviewRepository for PostgreSQL
type ReviewRepository struct {
	db *sqlx.DB
}

// NewReviewRepository creates a new PostgreSQL review repository
func NewReviewRepository(db *sqlx.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create persists a new review. The database assigns id and created_at;
// RETURNING guarantees the caller sees exactly what was stored.
func (r *ReviewRepository) Create(ctx context.Context, input domain.ReviewInput) (*domain.Review, error) {
	query := `
		INSERT INTO reviews (product_id, nickname, rating, title, comment)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, product_id, nickname, rating, title, comment, created_at
	`

	var review domain.Review
	err := r.db.GetContext(
		ctx,
		&review,
		query,
		input.ProductID,
		input.Nickname,
		input.Rating,
		input.Title,
		input.Comment,
	)
	if err != nil {
		return nil, err
	}

	return &review, nil
}

// GetByProductID retrieves all reviews for a product, newest first.
// Ties on created_at are broken by id so pagination order is deterministic.
func (r *ReviewRepository) GetByProductID(ctx context.Context, productID string) ([]*domain.Review, error) {
	query := `
		SELECT id, product_id, nickname, rating, title, comment, created_at
		FROM reviews
		WHERE product_id = $1
		ORDER BY created_at DESC, id DESC
	`

	reviews := []*domain.Review{}
	err := r.db.SelectContext(ctx, &reviews, query, productID)
	if err != nil {
		return nil, err
	}

	return reviews, nil
}

// List retrieves one page of reviews across all products, newest first,
// optionally filtered by a case-insensitive search over nickname, title
// and comment. Total counts matching rows, not the whole table. The count
// and page queries are separate statements; the total may drift by rows
// written between them.
func (r *ReviewRepository) List(ctx context.Context, search string, page, limit int) (*domain.ReviewPage, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit

	where := ""
	args := []interface{}{}
	if s := strings.TrimSpace(search); s != "" {
		where = `WHERE nickname ILIKE $1 OR title ILIKE $1 OR comment ILIKE $1`
		args = append(args, "%"+s+"%")
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM reviews ` + where
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, err
	}

	listQuery := fmt.Sprintf(`
		SELECT id, product_id, nickname, rating, title, comment, created_at
		FROM reviews %s
		ORDER BY created_at DESC, id DESC
		LIMIT $%d OFFSET $%d`, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	reviews := []*domain.Review{}
	if err := r.db.SelectContext(ctx, &reviews, listQuery, args...); err != nil {
		return nil, err
	}

	return &domain.ReviewPage{Reviews: reviews, Total: total}, nil
}

// Delete hard-deletes a review and reports the product it belonged to so
// callers can invalidate derived data. Deleting a nonexistent id is a
// no-op, keeping the operation idempotent.
func (r *ReviewRepository) Delete(ctx context.Context, id int64) (string, error) {
	query := `DELETE FROM reviews WHERE id = $1 RETURNING product_id`

	var productID string
	err := r.db.QueryRowxContext(ctx, query, id).Scan(&productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", err
	}

	return productID, nil
}

// RatingSummary aggregates the average rating and review count for a product
func (r *ReviewRepository) RatingSummary(ctx context.Context, productID string) (*domain.RatingSummary, error) {
	query := `
		SELECT ROUND(AVG(rating)::numeric, 1), COUNT(*)
		FROM reviews
		WHERE product_id = $1
	`

	var avg sql.NullFloat64
	var count int
	err := r.db.QueryRowxContext(ctx, query, productID).Scan(&avg, &count)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &domain.RatingSummary{ProductID: productID}, nil
		}
		return nil, err
	}

	summary := &domain.RatingSummary{ProductID: productID, Count: count}
	if avg.Valid {
		summary.Average = avg.Float64
	}

	return summary, nil
}

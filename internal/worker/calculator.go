package worker

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/wheatandcat/KAWKAW/internal/domain"
	"github.com/wheatandcat/KAWKAW/internal/pkg/logger"
)

// SummaryWriter stores computed rating summaries
type SummaryWriter interface {
	SetRatingSummary(ctx context.Context, summary *domain.RatingSummary) error
}

// Calculator recomputes per-product rating summaries from the reviews
// table and stores them for catalog reads. Full recalculation keeps the
// worker idempotent and self-correcting.
type Calculator struct {
	db     *sqlx.DB
	store  SummaryWriter
	logger *logger.Logger
}

// NewCalculator creates a new rating calculator
func NewCalculator(db *sqlx.DB, store SummaryWriter, logger *logger.Logger) *Calculator {
	return &Calculator{
		db:     db,
		store:  store,
		logger: logger,
	}
}

// CalculateAndStore recalculates the rating summary for a product and
// writes it to the summary store. A product with no remaining reviews gets
// a zero summary so deletions are reflected.
func (c *Calculator) CalculateAndStore(ctx context.Context, productID string) error {
	query := `
		SELECT ROUND(AVG(rating)::numeric, 1), COUNT(*)
		FROM reviews
		WHERE product_id = $1
	`

	var avg sql.NullFloat64
	var count int
	if err := c.db.QueryRowxContext(ctx, query, productID).Scan(&avg, &count); err != nil {
		return fmt.Errorf("failed to aggregate ratings: %w", err)
	}

	summary := &domain.RatingSummary{ProductID: productID, Count: count}
	if avg.Valid {
		summary.Average = avg.Float64
	}

	if err := c.store.SetRatingSummary(ctx, summary); err != nil {
		return fmt.Errorf("failed to store rating summary: %w", err)
	}

	c.logger.WithFields(map[string]interface{}{
		"product_id": productID,
		"average":    summary.Average,
		"count":      summary.Count,
	}).Info("Updated product rating summary")

	return nil
}

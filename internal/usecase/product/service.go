package product

import (
	"context"
	"errors"

	"github.com/wheatandcat/KAWKAW/internal/domain"
	"github.com/wheatandcat/KAWKAW/internal/pkg/logger"
)

// SummaryReader provides the live rating summaries maintained by the
// rating worker.
type SummaryReader interface {
	GetRatingSummary(ctx context.Context, productID string) (*domain.RatingSummary, error)
}

// Service serves catalog products merged with live rating data
type Service struct {
	catalog   domain.ProductCatalog
	summaries SummaryReader
	logger    *logger.Logger
}

// NewService creates a new product service
func NewService(catalog domain.ProductCatalog, summaries SummaryReader, log *logger.Logger) *Service {
	return &Service{
		catalog:   catalog,
		summaries: summaries,
		logger:    log,
	}
}

// GetByID returns a catalog product with its live rating summary.
// Returns domain.ErrNotFound for unknown IDs.
func (s *Service) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	p, ok := s.catalog.GetByID(id)
	if !ok {
		return nil, domain.ErrNotFound
	}

	s.mergeSummary(ctx, p)
	return p, nil
}

// List returns every catalog product with live rating summaries
func (s *Service) List(ctx context.Context) ([]*domain.Product, error) {
	products := s.catalog.List()
	for _, p := range products {
		s.mergeSummary(ctx, p)
	}
	return products, nil
}

// mergeSummary fills in Rating and ReviewCount from the worker-maintained
// summary. A missing summary leaves them at zero; summary-store failures
// are logged and never fail a catalog read.
func (s *Service) mergeSummary(ctx context.Context, p *domain.Product) {
	summary, err := s.summaries.GetRatingSummary(ctx, p.ID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Warnf("Failed to read rating summary for product %s: %v", p.ID, err)
		}
		return
	}

	p.Rating = summary.Average
	p.ReviewCount = summary.Count
}

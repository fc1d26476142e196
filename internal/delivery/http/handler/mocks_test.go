package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/wheatandcat/KAWKAW/internal/domain"
)

// MockReviewRepository is a mock implementation of domain.ReviewRepository
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, input domain.ReviewInput) (*domain.Review, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockReviewRepository) GetByProductID(ctx context.Context, productID string) ([]*domain.Review, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Review), args.Error(1)
}

func (m *MockReviewRepository) List(ctx context.Context, search string, page, limit int) (*domain.ReviewPage, error) {
	args := m.Called(ctx, search, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReviewPage), args.Error(1)
}

func (m *MockReviewRepository) Delete(ctx context.Context, id int64) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *MockReviewRepository) RatingSummary(ctx context.Context, productID string) (*domain.RatingSummary, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RatingSummary), args.Error(1)
}

// noopCache satisfies review.ReviewCache and always misses
type noopCache struct{}

func (noopCache) GetProductReviews(ctx context.Context, productID string) ([]*domain.Review, error) {
	return nil, domain.ErrNotFound
}

func (noopCache) SetProductReviews(ctx context.Context, productID string, reviews []*domain.Review) error {
	return nil
}

func (noopCache) InvalidateProductReviews(ctx context.Context, productID string) error {
	return nil
}

// allowAllModerator satisfies review.Moderator and never flags
type allowAllModerator struct{}

func (allowAllModerator) Classify(ctx context.Context, text string) bool { return false }

// flagAllModerator satisfies review.Moderator and always flags
type flagAllModerator struct{}

func (flagAllModerator) Classify(ctx context.Context, text string) bool { return true }

// noopPublisher satisfies review.EventPublisher
type noopPublisher struct{}

func (noopPublisher) Publish(ctx context.Context, subject string, data []byte) error { return nil }

// MockSummaryReader is a mock implementation of product.SummaryReader
type MockSummaryReader struct {
	mock.Mock
}

func (m *MockSummaryReader) GetRatingSummary(ctx context.Context, productID string) (*domain.RatingSummary, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RatingSummary), args.Error(1)
}

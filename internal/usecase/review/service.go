package review

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wheatandcat/KAWKAW/internal/domain"
	"github.com/wheatandcat/KAWKAW/internal/pkg/logger"
	"github.com/wheatandcat/KAWKAW/internal/pkg/metrics"
	"github.com/wheatandcat/KAWKAW/internal/pkg/validator"
)

// Moderator classifies free text against content policy. Implementations
// absorb their own failures (fail-open), so there is no error return.
type Moderator interface {
	Classify(ctx context.Context, text string) bool
}

// EventPublisher defines the interface for publishing events
type EventPublisher interface {
	Publish(ctx context.Context, subject string, data []byte) error
}

// ReviewCache defines the derived review data kept in Redis
type ReviewCache interface {
	GetProductReviews(ctx context.Context, productID string) ([]*domain.Review, error)
	SetProductReviews(ctx context.Context, productID string, reviews []*domain.Review) error
	InvalidateProductReviews(ctx context.Context, productID string) error
}

// ReviewEvent is published on the review stream after successful writes
type ReviewEvent struct {
	ID        uuid.UUID      `json:"id"`
	EventType string         `json:"event_type"`
	Timestamp time.Time      `json:"timestamp"`
	ProductID string         `json:"product_id"`
	Review    *domain.Review `json:"review,omitempty"`
}

// Service orchestrates the moderated review write path and the read paths
type Service struct {
	repo      domain.ReviewRepository
	cache     ReviewCache
	moderator Moderator
	publisher EventPublisher
	logger    *logger.Logger

	publishWG sync.WaitGroup
}

// NewService creates a new review service
func NewService(
	repo domain.ReviewRepository,
	cache ReviewCache,
	moderator Moderator,
	publisher EventPublisher,
	log *logger.Logger,
) *Service {
	return &Service{
		repo:      repo,
		cache:     cache,
		moderator: moderator,
		publisher: publisher,
		logger:    log,
	}
}

// Submit runs the moderated write path: validate, classify, persist.
// Moderation completes synchronously before the insert is issued, so an
// unmoderated review is never visible. A flagged verdict rejects the
// submission outright; nothing is persisted.
func (s *Service) Submit(ctx context.Context, input domain.ReviewInput) (*domain.Review, error) {
	if err := validator.Get().Struct(input); err != nil {
		metrics.ReviewsRejected.WithLabelValues("validation").Inc()
		return nil, &domain.ValidationError{Problems: validator.Problems(err)}
	}

	if s.moderator.Classify(ctx, input.Title+" "+input.Comment) {
		metrics.ReviewsRejected.WithLabelValues("moderation").Inc()
		s.logger.WithFields(map[string]interface{}{
			"product_id": input.ProductID,
		}).Info("Review submission flagged by moderation")
		return nil, domain.ErrContentRejected
	}

	created, err := s.repo.Create(ctx, input)
	if err != nil {
		s.logger.Error("Failed to create review", err)
		return nil, err
	}

	if err := s.cache.InvalidateProductReviews(ctx, created.ProductID); err != nil {
		s.logger.Warnf("Failed to invalidate review cache for product %s: %v", created.ProductID, err)
	}

	s.publishEvent(ctx, "review.created", created.ProductID, created)
	metrics.ReviewsSubmitted.Inc()

	s.logger.WithFields(map[string]interface{}{
		"review_id":  created.ID,
		"product_id": created.ProductID,
		"rating":     created.Rating,
	}).Info("Review created successfully")

	return created, nil
}

// GetByProduct retrieves all reviews for a product, newest first, with
// cache-aside reads. A product without reviews yields an empty slice.
func (s *Service) GetByProduct(ctx context.Context, productID string) ([]*domain.Review, error) {
	reviews, err := s.cache.GetProductReviews(ctx, productID)
	if err == nil {
		s.logger.Debugf("Cache hit for product %s reviews", productID)
		return reviews, nil
	}

	reviews, err = s.repo.GetByProductID(ctx, productID)
	if err != nil {
		s.logger.Error("Failed to get reviews by product ID", err)
		return nil, err
	}

	if err := s.cache.SetProductReviews(ctx, productID, reviews); err != nil {
		s.logger.Warnf("Failed to cache reviews for product %s: %v", productID, err)
	}

	return reviews, nil
}

// ListAll retrieves one page of the admin review listing
func (s *Service) ListAll(ctx context.Context, search string, page, limit int) (*domain.ReviewPage, error) {
	if page < 1 {
		page = 1
	}

	result, err := s.repo.List(ctx, search, page, limit)
	if err != nil {
		s.logger.Error("Failed to list reviews", err)
		return nil, err
	}

	return result, nil
}

// Delete hard-deletes a review. Unknown IDs are treated as success so the
// operation is idempotent.
func (s *Service) Delete(ctx context.Context, id int64) error {
	productID, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("Failed to delete review", err)
		return err
	}

	// Empty product ID means nothing was deleted
	if productID == "" {
		return nil
	}

	if err := s.cache.InvalidateProductReviews(ctx, productID); err != nil {
		s.logger.Warnf("Failed to invalidate review cache for product %s: %v", productID, err)
	}

	s.publishEvent(ctx, "review.deleted", productID, nil)

	s.logger.WithFields(map[string]interface{}{
		"review_id":  id,
		"product_id": productID,
	}).Info("Review deleted")

	return nil
}

// publishEvent publishes a review event (non-blocking)
func (s *Service) publishEvent(ctx context.Context, eventType, productID string, review *domain.Review) {
	event := ReviewEvent{
		ID:        uuid.New(),
		EventType: eventType,
		Timestamp: time.Now(),
		ProductID: productID,
		Review:    review,
	}

	data, err := json.Marshal(event)
	if err != nil {
		s.logger.Errorf(err, "Failed to marshal %s event for product %s", eventType, productID)
		return
	}

	// Publish in background to avoid blocking the request
	s.publishWG.Add(1)
	go func() {
		defer s.publishWG.Done()
		if err := s.publisher.Publish(context.Background(), "reviews.events", data); err != nil {
			s.logger.Errorf(err, "Failed to publish %s event for product %s", eventType, productID)
		}
	}()
}

// Shutdown waits up to timeout for in-flight event publishes to finish
func (s *Service) Shutdown(timeout time.Duration) {
	done := make(chan struct{})
	go func() {
		s.publishWG.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(timeout):
		s.logger.Warn("Timed out waiting for in-flight event publishes")
	}
}

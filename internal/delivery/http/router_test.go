package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wheatandcat/KAWKAW/internal/auth"
	"github.com/wheatandcat/KAWKAW/internal/config"
	"github.com/wheatandcat/KAWKAW/internal/delivery/http/handler"
	"github.com/wheatandcat/KAWKAW/internal/domain"
	"github.com/wheatandcat/KAWKAW/internal/pkg/logger"
	"github.com/wheatandcat/KAWKAW/internal/repository/catalog"
	"github.com/wheatandcat/KAWKAW/internal/usecase/product"
	"github.com/wheatandcat/KAWKAW/internal/usecase/review"
)

// stubRepo serves a fixed page and swallows writes
type stubRepo struct{}

func (stubRepo) Create(ctx context.Context, input domain.ReviewInput) (*domain.Review, error) {
	return &domain.Review{ID: 1, ProductID: input.ProductID, Nickname: input.Nickname, Rating: input.Rating, Title: input.Title, Comment: input.Comment, CreatedAt: time.Now()}, nil
}

func (stubRepo) GetByProductID(ctx context.Context, productID string) ([]*domain.Review, error) {
	return []*domain.Review{}, nil
}

func (stubRepo) List(ctx context.Context, search string, page, limit int) (*domain.ReviewPage, error) {
	return &domain.ReviewPage{Reviews: []*domain.Review{}, Total: 0}, nil
}

func (stubRepo) Delete(ctx context.Context, id int64) (string, error) { return "", nil }

func (stubRepo) RatingSummary(ctx context.Context, productID string) (*domain.RatingSummary, error) {
	return &domain.RatingSummary{ProductID: productID}, nil
}

type stubCache struct{}

func (stubCache) GetProductReviews(ctx context.Context, productID string) ([]*domain.Review, error) {
	return nil, domain.ErrNotFound
}

func (stubCache) SetProductReviews(ctx context.Context, productID string, reviews []*domain.Review) error {
	return nil
}

func (stubCache) InvalidateProductReviews(ctx context.Context, productID string) error { return nil }

func (stubCache) GetRatingSummary(ctx context.Context, productID string) (*domain.RatingSummary, error) {
	return nil, domain.ErrNotFound
}

type stubModerator struct{}

func (stubModerator) Classify(ctx context.Context, text string) bool { return false }

type stubPublisher struct{}

func (stubPublisher) Publish(ctx context.Context, subject string, data []byte) error { return nil }

func newTestRouter(t *testing.T) (http.Handler, *auth.SessionManager) {
	t.Helper()

	log := logger.New("test")
	adminCfg := config.AdminConfig{Password: "s3cret", SessionTTL: time.Hour, PageLimit: 30}
	sessions := auth.NewSessionManager(adminCfg)

	reviewService := review.NewService(stubRepo{}, stubCache{}, stubModerator{}, stubPublisher{}, log)
	productService := product.NewService(catalog.New(), stubCache{}, log)

	cfg := &config.Config{}
	cfg.Server.AllowedOrigins = []string{"http://localhost:3000"}
	cfg.Admin = adminCfg

	router := NewRouter(
		handler.NewProductHandler(productService, log),
		handler.NewReviewHandler(reviewService, log),
		handler.NewAdminHandler(reviewService, sessions, adminCfg.PageLimit, log),
		sessions,
		cfg,
		log,
	)
	return router.Setup(), sessions
}

func TestRouter_HealthCheck(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
}

func TestRouter_PublicRoutesOpen(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, path := range []string{"/api/products", "/api/products/1", "/api/reviews/1"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

// Every protected admin route must reject requests without a valid
// session cookie.
func TestRouter_AdminRoutesRequireSession(t *testing.T) {
	router, _ := newTestRouter(t)

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/admin/reviews"},
		{http.MethodDelete, "/api/admin/reviews/1"},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, tc.method+" "+tc.path)
		assert.JSONEq(t, `{"message":"Unauthorized"}`, rec.Body.String())
	}
}

func TestRouter_AdminRoutesRejectForgedToken(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/reviews", nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: "forged"})
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_AdminRoutesAcceptValidSession(t *testing.T) {
	router, sessions := newTestRouter(t)

	token, ok := sessions.Authenticate("s3cret")
	require.True(t, ok)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/reviews", nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

// Login and logout stay reachable without a session, otherwise nobody
// could ever sign in.
func TestRouter_AuthEndpointsOpen(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/auth", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

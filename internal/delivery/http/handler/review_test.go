package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/wheatandcat/KAWKAW/internal/domain"
	"github.com/wheatandcat/KAWKAW/internal/pkg/logger"
	"github.com/wheatandcat/KAWKAW/internal/usecase/review"
)

func newReviewRouter(repo *MockReviewRepository, moderator review.Moderator) http.Handler {
	log := logger.New("test")
	service := review.NewService(repo, noopCache{}, moderator, noopPublisher{}, log)
	h := NewReviewHandler(service, log)

	r := chi.NewRouter()
	r.Post("/api/reviews", h.Create)
	r.Get("/api/reviews/{productId}", h.GetByProductID)
	return r
}

func decodeMessage(t *testing.T, body string) string {
	t.Helper()

	var resp map[string]string
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	return resp["message"]
}

func TestReviewHandler_Create(t *testing.T) {
	mockRepo := new(MockReviewRepository)
	router := newReviewRouter(mockRepo, allowAllModerator{})

	created := &domain.Review{
		ID:        1,
		ProductID: "2",
		Nickname:  "Taro",
		Rating:    5,
		Title:     "Great",
		Comment:   "Loved it",
		CreatedAt: time.Now(),
	}
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(created, nil)

	body := `{"productId":"2","nickname":"Taro","rating":5,"title":"Great","comment":"Loved it"}`
	req := httptest.NewRequest(http.MethodPost, "/api/reviews", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var got domain.Review
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, "Taro", got.Nickname)
	assert.False(t, got.CreatedAt.IsZero())
	mockRepo.AssertExpectations(t)
}

func TestReviewHandler_Create_InvalidJSON(t *testing.T) {
	mockRepo := new(MockReviewRepository)
	router := newReviewRouter(mockRepo, allowAllModerator{})

	req := httptest.NewRequest(http.MethodPost, "/api/reviews", strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request body", decodeMessage(t, rec.Body.String()))
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestReviewHandler_Create_ValidationError(t *testing.T) {
	mockRepo := new(MockReviewRepository)
	router := newReviewRouter(mockRepo, allowAllModerator{})

	body := `{"productId":"2","nickname":"Taro","rating":6,"title":"Great","comment":"Loved it"}`
	req := httptest.NewRequest(http.MethodPost, "/api/reviews", strings.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeMessage(t, rec.Body.String()), "rating")
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestReviewHandler_Create_FlaggedContent(t *testing.T) {
	mockRepo := new(MockReviewRepository)
	router := newReviewRouter(mockRepo, flagAllModerator{})

	body := `{"productId":"2","nickname":"Taro","rating":5,"title":"Bad","comment":"Offensive"}`
	req := httptest.NewRequest(http.MethodPost, "/api/reviews", strings.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "不適切なコンテンツが含まれているため投稿できません", decodeMessage(t, rec.Body.String()))
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestReviewHandler_GetByProductID(t *testing.T) {
	mockRepo := new(MockReviewRepository)
	router := newReviewRouter(mockRepo, allowAllModerator{})

	reviews := []*domain.Review{
		{ID: 2, ProductID: "3", Nickname: "A", Rating: 5, CreatedAt: time.Now()},
		{ID: 1, ProductID: "3", Nickname: "B", Rating: 3, CreatedAt: time.Now().Add(-time.Hour)},
	}
	mockRepo.On("GetByProductID", mock.Anything, "3").Return(reviews, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/reviews/3", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var got []*domain.Review
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].ID)
	mockRepo.AssertExpectations(t)
}

func TestReviewHandler_GetByProductID_NoReviews(t *testing.T) {
	mockRepo := new(MockReviewRepository)
	router := newReviewRouter(mockRepo, allowAllModerator{})

	mockRepo.On("GetByProductID", mock.Anything, "99").Return([]*domain.Review{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/reviews/99", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wheatandcat/KAWKAW/internal/delivery/http/request"
	"github.com/wheatandcat/KAWKAW/internal/delivery/http/response"
	"github.com/wheatandcat/KAWKAW/internal/domain"
	"github.com/wheatandcat/KAWKAW/internal/pkg/logger"
	"github.com/wheatandcat/KAWKAW/internal/usecase/review"
)

// contentPolicyMessage is the fixed notice shown when moderation flags a
// submission, matching the storefront UI language.
const contentPolicyMessage = "不適切なコンテンツが含まれているため投稿できません"

// ReviewHandler handles HTTP requests for reviews
type ReviewHandler struct {
	service *review.Service
	logger  *logger.Logger
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(service *review.Service, log *logger.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		logger:  log,
	}
}

// Create handles POST /api/reviews
// @Summary Submit a review
// @Description Submit a new product review. The text is checked against content policy before it is stored.
// @Tags Reviews
// @Accept json
// @Produce json
// @Param review body domain.ReviewInput true "Review details"
// @Success 201 {object} domain.Review "Created review"
// @Failure 400 {object} map[string]string "Validation or content-policy rejection"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reviews [post]
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.ReviewInput
	if err := request.DecodeJSON(r, &input); err != nil {
		response.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.service.Submit(r.Context(), input)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Created(w, created)
}

// GetByProductID handles GET /api/reviews/{productId}
// @Summary Get reviews for a product
// @Description Get all reviews for a product, newest first.
// @Tags Reviews
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {array} domain.Review
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reviews/{productId} [get]
func (h *ReviewHandler) GetByProductID(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")

	reviews, err := h.service.GetByProduct(r.Context(), productID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, reviews)
}

// handleError maps service layer errors to HTTP responses
func (h *ReviewHandler) handleError(w http.ResponseWriter, err error) {
	var validationErr *domain.ValidationError

	switch {
	case errors.As(err, &validationErr):
		response.Message(w, http.StatusBadRequest, validationErr.Error())
	case errors.Is(err, domain.ErrContentRejected):
		response.Message(w, http.StatusBadRequest, contentPolicyMessage)
	case errors.Is(err, domain.ErrNotFound):
		response.Message(w, http.StatusNotFound, "Not found")
	default:
		h.logger.Error("Internal error in review handler", err)
		response.Message(w, http.StatusInternalServerError, "Internal server error")
	}
}

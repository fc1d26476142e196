package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wheatandcat/KAWKAW/internal/delivery/http/response"
	"github.com/wheatandcat/KAWKAW/internal/domain"
	"github.com/wheatandcat/KAWKAW/internal/pkg/logger"
	"github.com/wheatandcat/KAWKAW/internal/usecase/product"
)

// ProductHandler handles HTTP requests for catalog products
type ProductHandler struct {
	service *product.Service
	logger  *logger.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(service *product.Service, log *logger.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  log,
	}
}

// List handles GET /api/products
// @Summary List catalog products
// @Description Get every catalog product with its live rating summary.
// @Tags Products
// @Produce json
// @Success 200 {array} domain.Product
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /products [get]
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("Failed to list products", err)
		response.Message(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response.JSON(w, http.StatusOK, products)
}

// GetByID handles GET /api/products/{id}
// @Summary Get a catalog product
// @Description Get one catalog product with its live rating summary.
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} domain.Product
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /products/{id} [get]
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.Message(w, http.StatusNotFound, "Product not found")
			return
		}
		h.logger.Error("Failed to get product", err)
		response.Message(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response.JSON(w, http.StatusOK, p)
}

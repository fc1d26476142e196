package handler

import (
	"net/http"

	"github.com/wheatandcat/KAWKAW/internal/auth"
	"github.com/wheatandcat/KAWKAW/internal/delivery/http/request"
	"github.com/wheatandcat/KAWKAW/internal/delivery/http/response"
	"github.com/wheatandcat/KAWKAW/internal/pkg/logger"
	"github.com/wheatandcat/KAWKAW/internal/usecase/review"
)

// badPasswordMessage matches the back-office UI language
const badPasswordMessage = "パスワードが正しくありません"

// AdminHandler handles the back-office endpoints: session management and
// review moderation.
type AdminHandler struct {
	service   *review.Service
	sessions  *auth.SessionManager
	pageLimit int
	logger    *logger.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(service *review.Service, sessions *auth.SessionManager, pageLimit int, log *logger.Logger) *AdminHandler {
	return &AdminHandler{
		service:   service,
		sessions:  sessions,
		pageLimit: pageLimit,
		logger:    log,
	}
}

// LoginRequest is the body of POST /api/admin/auth
type LoginRequest struct {
	Password string `json:"password"`
}

// Login handles POST /api/admin/auth
// @Summary Open an admin session
// @Description Exchange the operator password for a session cookie.
// @Tags Admin
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Operator password"
// @Success 200 {object} map[string]bool
// @Failure 401 {object} map[string]string "Wrong password"
// @Router /admin/auth [post]
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, ok := h.sessions.Authenticate(req.Password)
	if !ok {
		h.logger.Warn("Admin login rejected")
		response.Message(w, http.StatusUnauthorized, badPasswordMessage)
		return
	}

	h.sessions.IssueCookie(w, token)
	response.OK(w)
}

// Logout handles DELETE /api/admin/auth
// @Summary Close the admin session
// @Description Clear the session cookie.
// @Tags Admin
// @Produce json
// @Success 200 {object} map[string]bool
// @Router /admin/auth [delete]
func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.ClearCookie(w)
	response.OK(w)
}

// ListReviews handles GET /api/admin/reviews
// @Summary List reviews for moderation
// @Description Get a page of reviews across all products, newest first, optionally filtered by a search over nickname, title and comment. The page size is fixed server-side.
// @Tags Admin
// @Produce json
// @Param search query string false "Case-insensitive search"
// @Param page query int false "1-indexed page" default(1)
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string "Missing or invalid session"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/reviews [get]
func (h *AdminHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	page := request.GetPage(r)

	result, err := h.service.ListAll(r.Context(), search, page, h.pageLimit)
	if err != nil {
		h.logger.Error("Failed to list reviews for admin", err)
		response.Message(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response.ReviewList(w, result.Reviews, result.Total, page, h.pageLimit)
}

// DeleteReview handles DELETE /api/admin/reviews/{id}
// @Summary Delete a review
// @Description Hard-delete a review. Deleting an unknown ID still succeeds.
// @Tags Admin
// @Produce json
// @Param id path int true "Review ID"
// @Success 204 "Review deleted"
// @Failure 400 {object} map[string]string "Invalid id"
// @Failure 401 {object} map[string]string "Missing or invalid session"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/reviews/{id} [delete]
func (h *AdminHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetInt64Param(r, "id")
	if err != nil {
		response.Message(w, http.StatusBadRequest, "Invalid id")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.logger.Error("Failed to delete review", err)
		response.Message(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response.NoContent(w)
}

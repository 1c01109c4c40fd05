package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"stylehub/internal/model"
	"stylehub/internal/service"

	"github.com/rs/zerolog"
)

// ReviewHandler handles review listing and submission HTTP requests.
type ReviewHandler struct {
	service service.ReviewService
	logger  zerolog.Logger
}

// NewReviewHandler creates a new review handler.
func NewReviewHandler(service service.ReviewService, logger zerolog.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		logger:  logger.With().Str("handler", "review").Logger(),
	}
}

// Handle routes requests for /api/products/{id}/reviews.
func (h *ReviewHandler) Handle(w http.ResponseWriter, r *http.Request) {
	productID := reviewProductID(r.URL.Path)
	if productID == "" {
		writeError(w, http.StatusBadRequest, "product ID is required", h.logger)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.list(w, r, productID)
	case http.MethodPost:
		h.create(w, r, productID)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
	}
}

func (h *ReviewHandler) list(w http.ResponseWriter, r *http.Request, productID string) {
	summary, err := h.service.GetProductReviews(r.Context(), productID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve reviews", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

func (h *ReviewHandler) create(w http.ResponseWriter, r *http.Request, productID string) {
	var req model.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	review, err := h.service.AddReview(r.Context(), productID, &req)
	if err != nil {
		var domainErr *model.DomainError
		if errors.As(err, &domainErr) {
			writeDomainError(w, domainErr, h.logger)
			return
		}
		if strings.Contains(err.Error(), "required") {
			writeError(w, http.StatusBadRequest, err.Error(), h.logger)
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to add review", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, review)
}

// reviewProductID extracts {id} from /api/products/{id}/reviews.
func reviewProductID(path string) string {
	trimmed := strings.TrimPrefix(path, "/api/products/")
	trimmed = strings.TrimSuffix(trimmed, "/reviews")
	if trimmed == path || strings.Contains(trimmed, "/") {
		return ""
	}
	return trimmed
}

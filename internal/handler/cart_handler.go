package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"stylehub/internal/model"
	"stylehub/internal/service"

	"github.com/rs/zerolog"
)

// CartHandler handles session cart HTTP requests.
type CartHandler struct {
	service service.CartService
	logger  zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(service service.CartService, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		logger:  logger.With().Str("handler", "cart").Logger(),
	}
}

// cartItemRequest is the payload for cart line mutations.
type cartItemRequest struct {
	ProductID string `json:"productId"`
	Size      string `json:"size,omitempty"`
	Quantity  int    `json:"quantity"`
}

// Get handles GET /api/cart requests.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	sid, ok := sessionID(w, r, h.logger)
	if !ok {
		return
	}

	cart, err := h.service.Get(r.Context(), sid)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve cart", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, cart)
}

// Items handles POST/PUT/DELETE /api/cart/items requests.
func (h *CartHandler) Items(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r, h.logger)
	if !ok {
		return
	}

	switch r.Method {
	case http.MethodPost, http.MethodPut:
		var req cartItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
			return
		}
		if req.ProductID == "" {
			writeError(w, http.StatusBadRequest, "product ID is required", h.logger)
			return
		}

		var cart *model.CartView
		var err error
		if r.Method == http.MethodPost {
			cart, err = h.service.AddItem(r.Context(), sid, req.ProductID, req.Size, req.Quantity)
		} else {
			cart, err = h.service.UpdateItem(r.Context(), sid, req.ProductID, req.Size, req.Quantity)
		}
		h.respond(w, cart, err)

	case http.MethodDelete:
		productID := r.URL.Query().Get("productId")
		size := r.URL.Query().Get("size")
		if productID == "" {
			writeError(w, http.StatusBadRequest, "product ID is required", h.logger)
			return
		}
		cart, err := h.service.RemoveItem(r.Context(), sid, productID, size)
		h.respond(w, cart, err)

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
	}
}

func (h *CartHandler) respond(w http.ResponseWriter, cart *model.CartView, err error) {
	if err != nil {
		var domainErr *model.DomainError
		if errors.As(err, &domainErr) {
			writeDomainError(w, domainErr, h.logger)
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to update cart", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/acehidan/otastaionary-ecommence/internal/catalog"
)

type CartHandler struct {
	catalog *catalog.Catalog
}

func NewCartHandler(cat *catalog.Catalog) *CartHandler {
	return &CartHandler{catalog: cat}
}

type AddItemRequestDTO struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type UpdateQuantityRequestDTO struct {
	Quantity int `json:"quantity"`
}

// Get serves GET /api/v1/cart.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	sh := shellFromContext(r.Context())
	respondJSON(w, http.StatusOK, toCartDTO(sh.Cart().Items(), sh.Cart().TotalCount()))
}

// AddItem serves POST /api/v1/cart/items. A missing quantity defaults to
// one, matching the grid's quick-add.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	sh := shellFromContext(r.Context())

	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if req.ProductID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be positive")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if req.Quantity < 1 || req.Quantity > 99 {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be between 1 and 99")
		return
	}

	p, err := h.catalog.Get(req.ProductID)
	if errors.Is(err, catalog.ErrProductNotFound) {
		respondError(w, http.StatusNotFound, "not_found", "product not found")
		return
	}

	sh.AddToCart(p, req.Quantity)
	respondJSON(w, http.StatusCreated, toCartDTO(sh.Cart().Items(), sh.Cart().TotalCount()))
}

// UpdateQuantity serves PUT /api/v1/cart/items/{product_id}. The minimum
// of one is enforced here; the aggregator itself places no floor.
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	sh := shellFromContext(r.Context())

	productID, err := strconv.ParseInt(chi.URLParam(r, "product_id"), 10, 64)
	if err != nil || productID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be a positive integer")
		return
	}

	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Quantity < 1 || req.Quantity > 99 {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be between 1 and 99")
		return
	}

	sh.UpdateCartQuantity(productID, req.Quantity)
	respondJSON(w, http.StatusOK, toCartDTO(sh.Cart().Items(), sh.Cart().TotalCount()))
}

// RemoveItem serves DELETE /api/v1/cart/items/{product_id}. Removing an
// absent product is a no-op, not an error.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	sh := shellFromContext(r.Context())

	productID, err := strconv.ParseInt(chi.URLParam(r, "product_id"), 10, 64)
	if err != nil || productID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be a positive integer")
		return
	}

	sh.RemoveFromCart(productID)
	respondJSON(w, http.StatusOK, toCartDTO(sh.Cart().Items(), sh.Cart().TotalCount()))
}

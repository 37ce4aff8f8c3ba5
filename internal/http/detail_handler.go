package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/acehidan/otastaionary-ecommence/internal/catalog"
	"github.com/acehidan/otastaionary-ecommence/internal/shell"
)

// DetailHandler exposes the product detail view: opening a product,
// adjusting the quantity selector and adding the selection to the cart.
type DetailHandler struct{}

func NewDetailHandler() *DetailHandler {
	return &DetailHandler{}
}

type DetailDTO struct {
	Product  ProductDTO `json:"product"`
	Quantity int        `json:"quantity"`
}

// Open serves POST /api/v1/products/{id}/view, opening the detail view
// with a fresh quantity selector.
func (h *DetailHandler) Open(w http.ResponseWriter, r *http.Request) {
	sh := shellFromContext(r.Context())

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product id must be a positive integer")
		return
	}

	if err := sh.ViewDetails(id); errors.Is(err, catalog.ErrProductNotFound) {
		respondError(w, http.StatusNotFound, "not_found", "product not found")
		return
	}

	h.respondDetail(w, sh)
}

// Get serves GET /api/v1/detail.
func (h *DetailHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.respondDetail(w, shellFromContext(r.Context()))
}

// Increment serves POST /api/v1/detail/quantity/increment.
func (h *DetailHandler) Increment(w http.ResponseWriter, r *http.Request) {
	sh := shellFromContext(r.Context())

	sel := sh.Selected()
	if sel == nil {
		respondError(w, http.StatusNotFound, "no_selection", "no product is selected")
		return
	}
	sel.Increment()
	h.respondDetail(w, sh)
}

// Decrement serves POST /api/v1/detail/quantity/decrement. The quantity
// floors at one.
func (h *DetailHandler) Decrement(w http.ResponseWriter, r *http.Request) {
	sh := shellFromContext(r.Context())

	sel := sh.Selected()
	if sel == nil {
		respondError(w, http.StatusNotFound, "no_selection", "no product is selected")
		return
	}
	sel.Decrement()
	h.respondDetail(w, sh)
}

// AddToCart serves POST /api/v1/detail/add: the selection and its chosen
// quantity go to the cart and the detail view closes.
func (h *DetailHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	sh := shellFromContext(r.Context())

	if err := sh.AddSelectedToCart(); errors.Is(err, shell.ErrNoSelection) {
		respondError(w, http.StatusNotFound, "no_selection", "no product is selected")
		return
	}
	respondJSON(w, http.StatusCreated, toCartDTO(sh.Cart().Items(), sh.Cart().TotalCount()))
}

// Close serves DELETE /api/v1/detail.
func (h *DetailHandler) Close(w http.ResponseWriter, r *http.Request) {
	sh := shellFromContext(r.Context())
	sh.CloseDetails()
	w.WriteHeader(http.StatusNoContent)
}

func (h *DetailHandler) respondDetail(w http.ResponseWriter, sh *shell.Shell) {
	sel := sh.Selected()
	if sel == nil {
		respondError(w, http.StatusNotFound, "no_selection", "no product is selected")
		return
	}
	respondJSON(w, http.StatusOK, DetailDTO{
		Product:  toProductDTO(sel.Product()),
		Quantity: sel.Quantity(),
	})
}

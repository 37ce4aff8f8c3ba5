package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/acehidan/otastaionary-ecommence/internal/catalog"
	"github.com/acehidan/otastaionary-ecommence/internal/domain"
)

type ProductHandler struct {
	catalog *catalog.Catalog
}

func NewProductHandler(cat *catalog.Catalog) *ProductHandler {
	return &ProductHandler{catalog: cat}
}

type ProductListDTO struct {
	Products   []ProductDTO `json:"products"`
	Total      int          `json:"total"`
	Categories []string     `json:"categories"`
}

// List serves GET /api/v1/products with optional ?category= and ?q=
// filters.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	category := domain.Category(r.URL.Query().Get("category"))
	query := r.URL.Query().Get("q")

	if category != "" && !validCategory(category) {
		respondError(w, http.StatusBadRequest, "invalid_category", "unknown category")
		return
	}

	products := h.catalog.Find(category, query)

	categories := domain.Categories()
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.String())
	}

	respondJSON(w, http.StatusOK, ProductListDTO{
		Products:   toProductDTOs(products),
		Total:      len(products),
		Categories: names,
	})
}

// Get serves GET /api/v1/products/{id}.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product id must be a positive integer")
		return
	}

	p, err := h.catalog.Get(id)
	if errors.Is(err, catalog.ErrProductNotFound) {
		respondError(w, http.StatusNotFound, "not_found", "product not found")
		return
	}

	respondJSON(w, http.StatusOK, toProductDTO(p))
}

func validCategory(c domain.Category) bool {
	for _, known := range domain.Categories() {
		if c == known {
			return true
		}
	}
	return false
}

package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/acehidan/otastaionary-ecommence/internal/catalog"
	"github.com/acehidan/otastaionary-ecommence/internal/shell"
)

// NewRouter assembles the storefront API.
func NewRouter(cat *catalog.Catalog, sessions *shell.Store, requestTimeout time.Duration) http.Handler {
	productHandler := NewProductHandler(cat)
	cartHandler := NewCartHandler(cat)
	detailHandler := NewDetailHandler()
	checkoutHandler := NewCheckoutHandler()

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(SessionMiddleware(sessions))

		r.Route("/products", func(r chi.Router) {
			r.Get("/", productHandler.List)
			r.Get("/{id}", productHandler.Get)
			r.Post("/{id}/view", detailHandler.Open)
		})

		r.Route("/detail", func(r chi.Router) {
			r.Get("/", detailHandler.Get)
			r.Delete("/", detailHandler.Close)
			r.Post("/add", detailHandler.AddToCart)
			r.Post("/quantity/increment", detailHandler.Increment)
			r.Post("/quantity/decrement", detailHandler.Decrement)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartHandler.Get)
			r.Post("/items", cartHandler.AddItem)
			r.Put("/items/{product_id}", cartHandler.UpdateQuantity)
			r.Delete("/items/{product_id}", cartHandler.RemoveItem)
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Post("/", checkoutHandler.Begin)
			r.Get("/", checkoutHandler.Get)
			r.Delete("/", checkoutHandler.Cancel)
			r.Put("/shipping", checkoutHandler.Shipping)
			r.Put("/payment", checkoutHandler.Payment)
			r.Post("/continue", checkoutHandler.Continue)
			r.Post("/previous", checkoutHandler.Previous)
			r.Post("/order", checkoutHandler.PlaceOrder)
			r.Get("/summary", checkoutHandler.Summary)
		})
	})

	return r
}

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/acehidan/otastaionary-ecommence/internal/checkout"
	"github.com/acehidan/otastaionary-ecommence/internal/shell"
)

type CheckoutHandler struct{}

func NewCheckoutHandler() *CheckoutHandler {
	return &CheckoutHandler{}
}

// Begin serves POST /api/v1/checkout. Re-posting while a checkout is
// open returns the open session unchanged.
func (h *CheckoutHandler) Begin(w http.ResponseWriter, r *http.Request) {
	sh := shellFromContext(r.Context())

	session, err := sh.BeginCheckout()
	if err != nil {
		if errors.Is(err, shell.ErrEmptyCart) {
			respondError(w, http.StatusConflict, "empty_cart", "cannot check out an empty cart")
			return
		}
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	respondJSON(w, http.StatusCreated, toCheckoutStateDTO(session))
}

// Get serves GET /api/v1/checkout.
func (h *CheckoutHandler) Get(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, toCheckoutStateDTO(session))
}

// Shipping serves PUT /api/v1/checkout/shipping, replacing the shipping
// form wholesale.
func (h *CheckoutHandler) Shipping(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	var req CustomerInfoDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if err := session.SetCustomerInfo(req.toDomain()); err != nil {
		h.respondStateError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toCheckoutStateDTO(session))
}

// Payment serves PUT /api/v1/checkout/payment.
func (h *CheckoutHandler) Payment(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	var req PaymentInfoDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if err := session.SetPaymentInfo(req.toDomain()); err != nil {
		h.respondStateError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toCheckoutStateDTO(session))
}

// Continue serves POST /api/v1/checkout/continue.
func (h *CheckoutHandler) Continue(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	if err := session.Continue(); err != nil {
		h.respondStateError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toCheckoutStateDTO(session))
}

// Previous serves POST /api/v1/checkout/previous.
func (h *CheckoutHandler) Previous(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	if err := session.Previous(); err != nil {
		h.respondStateError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toCheckoutStateDTO(session))
}

// PlaceOrder serves POST /api/v1/checkout/order. Processing is
// asynchronous; the response reports the PROCESSING state and the caller
// polls GET /api/v1/checkout for completion.
func (h *CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	if err := session.PlaceOrder(); err != nil {
		h.respondStateError(w, err)
		return
	}
	respondJSON(w, http.StatusAccepted, toCheckoutStateDTO(session))
}

// Summary serves GET /api/v1/checkout/summary with totals over the
// current cart contents.
func (h *CheckoutHandler) Summary(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, toSummaryDTO(session.Summary()))
}

// Cancel serves DELETE /api/v1/checkout, abandoning the checkout and any
// order still processing.
func (h *CheckoutHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	sh := shellFromContext(r.Context())

	if err := sh.CancelCheckout(); errors.Is(err, shell.ErrNoCheckout) {
		respondError(w, http.StatusNotFound, "no_checkout", "no checkout in progress")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CheckoutHandler) session(w http.ResponseWriter, r *http.Request) (*checkout.Session, bool) {
	sh := shellFromContext(r.Context())

	session := sh.Checkout()
	if session == nil {
		respondError(w, http.StatusNotFound, "no_checkout", "no checkout in progress")
		return nil, false
	}
	return session, true
}

func (h *CheckoutHandler) respondStateError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, checkout.ErrStepIncomplete):
		respondError(w, http.StatusConflict, "step_incomplete", "required fields for this step are empty")
	case errors.Is(err, checkout.ErrAtFirstStep):
		respondError(w, http.StatusConflict, "at_first_step", "already at the first step")
	case errors.Is(err, checkout.ErrNotAtReview):
		respondError(w, http.StatusConflict, "not_at_review", "order can only be placed from the review step")
	case errors.Is(err, checkout.ErrOrderPlaced):
		respondError(w, http.StatusConflict, "order_placed", "order has already been placed")
	default:
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

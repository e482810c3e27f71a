package controllers

import (
	"net/http"

	"github.com/uniformworks/portal-backend/api/responses"
	cartsvc "github.com/uniformworks/portal-backend/internal/cart"
	checkoutsvc "github.com/uniformworks/portal-backend/internal/checkout"
	"github.com/uniformworks/portal-backend/pkg/logger"
)

// CheckoutQuote prices the session's cart without submitting it.
func CheckoutQuote(svc checkoutsvc.Service, manager cartsvc.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.Quote(sessionCart(r, manager)))
	}
}

// Checkout submits the session's cart. Success removes the submitted
// quantities and returns the receipt; the order history collection is
// untouched.
func Checkout(svc checkoutsvc.Service, manager cartsvc.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		receipt, err := svc.Submit(r.Context(), sessionCart(r, manager))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, receipt)
	}
}

package controllers

import (
	"net/http"

	"github.com/uniformworks/portal-backend/api/responses"
	ordersvc "github.com/uniformworks/portal-backend/internal/orders"
	productsvc "github.com/uniformworks/portal-backend/internal/products"
	"github.com/uniformworks/portal-backend/pkg/logger"
)

// ListProducts returns the catalog with derived stock counts.
func ListProducts(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, products)
	}
}

// ListOrders returns order history, newest first. The collection is
// read-only; checkout never appends to it.
func ListOrders(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orders, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, orders)
	}
}

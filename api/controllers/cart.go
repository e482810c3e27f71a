package controllers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/uniformworks/portal-backend/api/middleware"
	"github.com/uniformworks/portal-backend/api/responses"
	"github.com/uniformworks/portal-backend/api/validators"
	cartsvc "github.com/uniformworks/portal-backend/internal/cart"
	"github.com/uniformworks/portal-backend/pkg/logger"
)

type addCartItemRequest struct {
	ProductID uint            `json:"product_id" validate:"required,min=1"`
	Name      string          `json:"name" validate:"required"`
	Price     decimal.Decimal `json:"price"`
	Size      string          `json:"size,omitempty"`
	Quantity  any             `json:"quantity,omitempty"`
	Image     string          `json:"image,omitempty"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// parseLineKey reads the product id path parameter and the size query
// parameter. Size labels are an open set, so they travel as a query value
// where any character round-trips.
func parseLineKey(r *http.Request) (cartsvc.Key, error) {
	id, err := validators.ParseIDParam(r, "id")
	if err != nil {
		return cartsvc.Key{}, err
	}
	return cartsvc.Key{ProductID: id, Size: r.URL.Query().Get("size")}, nil
}

func sessionCart(r *http.Request, manager cartsvc.Manager) *cartsvc.Cart {
	return manager.Cart(middleware.SessionID(r.Context()))
}

func GetCart(manager cartsvc.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, sessionCart(r, manager).Snapshot())
	}
}

func AddCartItem(manager cartsvc.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload addCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		c := sessionCart(r, manager)
		c.AddItem(cartsvc.Item{
			ProductID: payload.ProductID,
			Name:      payload.Name,
			Price:     payload.Price,
			Size:      payload.Size,
			Quantity:  validators.CoerceQuantity(payload.Quantity),
			Image:     payload.Image,
		})
		responses.WriteSuccess(w, c.Snapshot())
	}
}

func UpdateCartItem(manager cartsvc.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key, err := parseLineKey(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		c := sessionCart(r, manager)
		c.UpdateQuantity(key, payload.Quantity)
		responses.WriteSuccess(w, c.Snapshot())
	}
}

func RemoveCartItem(manager cartsvc.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key, err := parseLineKey(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		c := sessionCart(r, manager)
		c.RemoveItem(key)
		responses.WriteSuccess(w, c.Snapshot())
	}
}

func ClearCart(manager cartsvc.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := sessionCart(r, manager)
		c.Clear()
		responses.WriteSuccess(w, c.Snapshot())
	}
}

func OpenCart(manager cartsvc.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := sessionCart(r, manager)
		c.Open()
		responses.WriteSuccess(w, c.Snapshot())
	}
}

func CloseCart(manager cartsvc.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := sessionCart(r, manager)
		c.Close()
		responses.WriteSuccess(w, c.Snapshot())
	}
}

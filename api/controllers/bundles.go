package controllers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/uniformworks/portal-backend/api/responses"
	"github.com/uniformworks/portal-backend/api/validators"
	bundlesvc "github.com/uniformworks/portal-backend/internal/bundles"
	pkgerrors "github.com/uniformworks/portal-backend/pkg/errors"
	"github.com/uniformworks/portal-backend/pkg/logger"
	"github.com/uniformworks/portal-backend/pkg/types"
)

type bundleRequest struct {
	Name        string               `json:"name" validate:"required"`
	Budget      decimal.Decimal      `json:"budget"`
	Category    string               `json:"category,omitempty"`
	Description string               `json:"description,omitempty"`
	Products    types.BundleProducts `json:"products,omitempty"`
	IsActive    *bool                `json:"is_active,omitempty"`
}

func (p bundleRequest) toInput() bundlesvc.BundleInput {
	return bundlesvc.BundleInput{
		Name:        p.Name,
		Budget:      p.Budget,
		Category:    p.Category,
		Description: p.Description,
		Products:    p.Products,
		IsActive:    p.IsActive,
	}
}

func ListBundles(svc bundlesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bundles, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, bundles)
	}
}

func GetBundle(svc bundlesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		bundle, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if bundle == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "bundle not found"))
			return
		}
		responses.WriteSuccess(w, bundle)
	}
}

func CreateBundle(svc bundlesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload bundleRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		bundle, err := svc.Create(r.Context(), payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, bundle)
	}
}

func UpdateBundle(svc bundlesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload bundleRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		bundle, err := svc.Update(r.Context(), id, payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, bundle)
	}
}

func DeleteBundle(svc bundlesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusOK, map[string]bool{"deleted": true})
	}
}

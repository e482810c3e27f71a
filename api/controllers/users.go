package controllers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/uniformworks/portal-backend/api/responses"
	"github.com/uniformworks/portal-backend/api/validators"
	usersvc "github.com/uniformworks/portal-backend/internal/users"
	pkgerrors "github.com/uniformworks/portal-backend/pkg/errors"
	"github.com/uniformworks/portal-backend/pkg/logger"
)

type userRequest struct {
	Name      string          `json:"name" validate:"required"`
	Email     *string         `json:"email,omitempty" validate:"omitempty,email"`
	Role      string          `json:"role" validate:"required"`
	Company   string          `json:"company,omitempty"`
	Budget    decimal.Decimal `json:"budget"`
	Spent     decimal.Decimal `json:"spent"`
	Status    string          `json:"status,omitempty"`
	LastLogin *string         `json:"last_login,omitempty"`
	Avatar    *string         `json:"avatar,omitempty"`
}

func (p userRequest) toInput() usersvc.UserInput {
	return usersvc.UserInput{
		Name:      p.Name,
		Email:     p.Email,
		Role:      p.Role,
		Company:   p.Company,
		Budget:    p.Budget,
		Spent:     p.Spent,
		Status:    p.Status,
		LastLogin: p.LastLogin,
		Avatar:    p.Avatar,
	}
}

func ListUsers(svc usersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, users)
	}
}

func GetUser(svc usersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		user, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if user == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "user not found"))
			return
		}
		responses.WriteSuccess(w, user)
	}
}

func CreateUser(svc usersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload userRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		user, err := svc.Create(r.Context(), payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, user)
	}
}

// UpdateUser replaces every writable field of the record. Fields omitted in
// the payload come back as their zero values, matching put semantics.
func UpdateUser(svc usersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload userRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		user, err := svc.Update(r.Context(), id, payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, user)
	}
}

func DeleteUser(svc usersvc.Service, logg *logger.Logger) http.HandlerFunc {
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

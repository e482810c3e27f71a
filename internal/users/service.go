package users

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/uniformworks/portal-backend/pkg/db/models"
	"github.com/uniformworks/portal-backend/pkg/enums"
	pkgerrors "github.com/uniformworks/portal-backend/pkg/errors"
)

// Service exposes staff account management.
type Service interface {
	List(ctx context.Context) ([]UserDTO, error)
	Get(ctx context.Context, id uint) (*UserDTO, error)
	Create(ctx context.Context, input UserInput) (*UserDTO, error)
	Update(ctx context.Context, id uint, input UserInput) (*UserDTO, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo Repository
}

// NewService builds a users service backed by the provided repository.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("users repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context) ([]UserDTO, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]UserDTO, 0, len(records))
	for _, record := range records {
		dtos = append(dtos, toDTO(record))
	}
	return dtos, nil
}

func (s *service) Get(ctx context.Context, id uint) (*UserDTO, error) {
	record, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}
	dto := toDTO(*record)
	return &dto, nil
}

func (s *service) Create(ctx context.Context, input UserInput) (*UserDTO, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	record := fromInput(input)
	if _, err := s.repo.Add(ctx, &record); err != nil {
		return nil, err
	}
	dto := toDTO(record)
	return &dto, nil
}

func (s *service) Update(ctx context.Context, id uint, input UserInput) (*UserDTO, error) {
	if id == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
	}

	record := fromInput(input)
	record.ID = id
	if _, err := s.repo.Put(ctx, &record); err != nil {
		return nil, err
	}
	dto := toDTO(record)
	return &dto, nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func validateInput(input UserInput) error {
	if input.Name == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	if input.Role == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "role is required")
	}
	// Spent may exceed budget (remaining just goes negative) but neither may
	// be negative on its own.
	if input.Budget.LessThan(decimal.Zero) || input.Spent.LessThan(decimal.Zero) {
		return pkgerrors.New(pkgerrors.CodeValidation, "budget and spent must be non-negative")
	}
	if input.Status != "" && !enums.UserStatus(input.Status).IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid user status")
	}
	return nil
}

func fromInput(input UserInput) models.User {
	return models.User{
		Name:      input.Name,
		Email:     input.Email,
		Role:      input.Role,
		Company:   input.Company,
		Budget:    input.Budget,
		Spent:     input.Spent,
		Status:    enums.UserStatus(input.Status),
		LastLogin: input.LastLogin,
		Avatar:    input.Avatar,
	}
}

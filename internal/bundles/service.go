package bundles

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	pkgerrors "github.com/uniformworks/portal-backend/pkg/errors"
	"github.com/uniformworks/portal-backend/pkg/enums"
)

// Service exposes bundle management for the admin surface.
type Service interface {
	List(ctx context.Context) ([]BundleDTO, error)
	Get(ctx context.Context, id uint) (*BundleDTO, error)
	Create(ctx context.Context, input BundleInput) (*BundleDTO, error)
	Update(ctx context.Context, id uint, input BundleInput) (*BundleDTO, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo Repository
}

// NewService builds a bundles service backed by the provided repository.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("bundles repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context) ([]BundleDTO, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]BundleDTO, 0, len(records))
	for _, record := range records {
		dtos = append(dtos, toDTO(record))
	}
	return dtos, nil
}

func (s *service) Get(ctx context.Context, id uint) (*BundleDTO, error) {
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

func (s *service) Create(ctx context.Context, input BundleInput) (*BundleDTO, error) {
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

// Update fully replaces the stored bundle; optional fields omitted from the
// input vanish from the record.
func (s *service) Update(ctx context.Context, id uint, input BundleInput) (*BundleDTO, error) {
	if id == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "bundle id is required")
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "bundle not found")
	}

	record := fromInput(input)
	record.ID = id
	record.Assigned = existing.Assigned
	if _, err := s.repo.Put(ctx, &record); err != nil {
		return nil, err
	}
	dto := toDTO(record)
	return &dto, nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func validateInput(input BundleInput) error {
	if input.Name == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	if input.Budget.LessThan(decimal.Zero) {
		return pkgerrors.New(pkgerrors.CodeValidation, "budget must be non-negative")
	}
	if input.Category != "" && !enums.BundleCategory(input.Category).IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid bundle category")
	}
	for _, line := range input.Products {
		if line.Quantity <= 0 {
			return pkgerrors.New(pkgerrors.CodeValidation, "product quantities must be positive")
		}
	}
	return nil
}

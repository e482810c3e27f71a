package products

import (
	"context"
	"fmt"
)

// Service exposes catalog reads.
type Service interface {
	List(ctx context.Context) ([]ProductDTO, error)
}

type service struct {
	repo Repository
}

// NewService builds a products service backed by the provided repository.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("products repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context) ([]ProductDTO, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]ProductDTO, 0, len(records))
	for _, record := range records {
		dtos = append(dtos, toDTO(record))
	}
	return dtos, nil
}

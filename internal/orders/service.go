package orders

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/uniformworks/portal-backend/pkg/db/models"
)

// OrderDTO is the API shape for one order summary. No line items are
// persisted against an order; detail views fabricate their own.
type OrderDTO struct {
	ID     string          `json:"id"`
	Date   string          `json:"date"`
	Status string          `json:"status"`
	Total  decimal.Decimal `json:"total"`
	Items  int             `json:"items"`
}

// Service exposes order reads.
type Service interface {
	List(ctx context.Context) ([]OrderDTO, error)
}

type service struct {
	repo Repository
}

// NewService builds an orders service backed by the provided repository.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context) ([]OrderDTO, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]OrderDTO, 0, len(records))
	for _, record := range records {
		dtos = append(dtos, toDTO(record))
	}
	return dtos, nil
}

func toDTO(record models.Order) OrderDTO {
	return OrderDTO{
		ID:     record.ID,
		Date:   record.Date,
		Status: string(record.Status),
		Total:  record.Total,
		Items:  record.Items,
	}
}

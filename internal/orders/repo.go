package orders

import (
	"context"

	"gorm.io/gorm"

	"github.com/uniformworks/portal-backend/internal/repo"
	"github.com/uniformworks/portal-backend/pkg/db/models"
	pkgerrors "github.com/uniformworks/portal-backend/pkg/errors"
)

// Repository reads the orders collection. Orders are written only by seed
// data in this portal, so only get-all is exposed.
type Repository interface {
	List(ctx context.Context) ([]models.Order, error)
}

type repository struct {
	repo.Base
}

// NewRepository builds an orders repository bound to the provided DB.
func NewRepository(conn *gorm.DB) Repository {
	return &repository{Base: repo.NewBase(conn)}
}

func (r *repository) List(ctx context.Context) ([]models.Order, error) {
	var records []models.Order
	if err := r.DB(ctx).Order("date DESC").Find(&records).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "listing orders")
	}
	return records, nil
}

package products

import (
	"context"

	"gorm.io/gorm"

	"github.com/uniformworks/portal-backend/internal/repo"
	"github.com/uniformworks/portal-backend/pkg/db/models"
	pkgerrors "github.com/uniformworks/portal-backend/pkg/errors"
)

// Repository reads the products collection. The catalog is read-only in this
// portal, so only get-all is exposed.
type Repository interface {
	List(ctx context.Context) ([]models.Product, error)
}

type repository struct {
	repo.Base
}

// NewRepository builds a products repository bound to the provided DB.
func NewRepository(conn *gorm.DB) Repository {
	return &repository{Base: repo.NewBase(conn)}
}

func (r *repository) List(ctx context.Context) ([]models.Product, error) {
	var records []models.Product
	if err := r.DB(ctx).Order("id ASC").Find(&records).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "listing products")
	}
	return records, nil
}

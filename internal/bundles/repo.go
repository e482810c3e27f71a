package bundles

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/uniformworks/portal-backend/internal/repo"
	"github.com/uniformworks/portal-backend/pkg/db"
	"github.com/uniformworks/portal-backend/pkg/db/models"
	pkgerrors "github.com/uniformworks/portal-backend/pkg/errors"
)

// Repository is the typed projection of the bundles collection onto the
// store primitives.
type Repository interface {
	List(ctx context.Context) ([]models.Bundle, error)
	Get(ctx context.Context, id uint) (*models.Bundle, error)
	Add(ctx context.Context, bundle *models.Bundle) (uint, error)
	Put(ctx context.Context, bundle *models.Bundle) (uint, error)
	Delete(ctx context.Context, id uint) error
}

type repository struct {
	repo.Base
}

// NewRepository builds a bundles repository bound to the provided DB.
func NewRepository(conn *gorm.DB) Repository {
	return &repository{Base: repo.NewBase(conn)}
}

func (r *repository) List(ctx context.Context) ([]models.Bundle, error) {
	var records []models.Bundle
	if err := r.DB(ctx).Order("id ASC").Find(&records).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "listing bundles")
	}
	return records, nil
}

// Get returns (nil, nil) when no bundle matches; a read miss is an explicit
// empty result, never an error.
func (r *repository) Get(ctx context.Context, id uint) (*models.Bundle, error) {
	var record models.Bundle
	err := r.DB(ctx).Where("id = ?", id).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "getting bundle")
	}
	return &record, nil
}

func (r *repository) Add(ctx context.Context, bundle *models.Bundle) (uint, error) {
	if err := r.DB(ctx).Create(bundle).Error; err != nil {
		if db.IsDuplicateKey(err) {
			return 0, pkgerrors.Wrap(pkgerrors.CodeDuplicate, err, "bundle id already exists")
		}
		return 0, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "adding bundle")
	}
	return bundle.ID, nil
}

// Put inserts or fully replaces the record at its key; omitted optional
// fields are cleared, not merged.
func (r *repository) Put(ctx context.Context, bundle *models.Bundle) (uint, error) {
	if err := r.DB(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(bundle).Error; err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "putting bundle")
	}
	return bundle.ID, nil
}

// Delete removes the record; deleting an absent key is a no-op.
func (r *repository) Delete(ctx context.Context, id uint) error {
	if err := r.DB(ctx).Delete(&models.Bundle{}, id).Error; err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeStorage, err, "deleting bundle")
	}
	return nil
}

package users

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

// Repository is the typed projection of the users collection onto the store
// primitives. No business logic lives here.
type Repository interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id uint) (*models.User, error)
	Add(ctx context.Context, user *models.User) (uint, error)
	Put(ctx context.Context, user *models.User) (uint, error)
	Delete(ctx context.Context, id uint) error
}

type repository struct {
	repo.Base
}

// NewRepository builds a users repository bound to the provided DB.
func NewRepository(conn *gorm.DB) Repository {
	return &repository{Base: repo.NewBase(conn)}
}

func (r *repository) List(ctx context.Context) ([]models.User, error) {
	var records []models.User
	if err := r.DB(ctx).Order("id ASC").Find(&records).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "listing users")
	}
	return records, nil
}

// Get returns (nil, nil) when no user matches; a read miss is an explicit
// empty result, never an error.
func (r *repository) Get(ctx context.Context, id uint) (*models.User, error) {
	var record models.User
	err := r.DB(ctx).Where("id = ?", id).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "getting user")
	}
	return &record, nil
}

func (r *repository) Add(ctx context.Context, user *models.User) (uint, error) {
	if err := r.DB(ctx).Create(user).Error; err != nil {
		if db.IsDuplicateKey(err) {
			return 0, pkgerrors.Wrap(pkgerrors.CodeDuplicate, err, "user id already exists")
		}
		return 0, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "adding user")
	}
	return user.ID, nil
}

// Put inserts or fully replaces the record at its key; last writer wins.
func (r *repository) Put(ctx context.Context, user *models.User) (uint, error) {
	if err := r.DB(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(user).Error; err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "putting user")
	}
	return user.ID, nil
}

// Delete removes the record; deleting an absent key is a no-op.
func (r *repository) Delete(ctx context.Context, id uint) error {
	if err := r.DB(ctx).Delete(&models.User{}, id).Error; err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeStorage, err, "deleting user")
	}
	return nil
}

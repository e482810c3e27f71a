package bundles

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/uniformworks/portal-backend/pkg/db/models"
	"github.com/uniformworks/portal-backend/pkg/enums"
	pkgerrors "github.com/uniformworks/portal-backend/pkg/errors"
	"github.com/uniformworks/portal-backend/pkg/types"
)

func setupBundlesTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "store.db")), &gorm.Config{})
	require.NoError(t, err)

	schema := `
CREATE TABLE IF NOT EXISTS bundles (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  items INTEGER NOT NULL DEFAULT 0,
  assigned BOOLEAN NOT NULL DEFAULT 0,
  budget NUMERIC NOT NULL DEFAULT 0,
  category TEXT,
  description TEXT,
  products TEXT,
  is_active BOOLEAN,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, conn.Exec(schema).Error)
	return conn
}

func TestAddAssignsAutoKey(t *testing.T) {
	conn := setupBundlesTestDB(t)
	repo := NewRepository(conn)

	id, err := repo.Add(context.Background(), &models.Bundle{
		Name:   "Summer Uniform Package",
		Items:  5,
		Budget: decimal.NewFromInt(800),
	})
	require.NoError(t, err)
	assert.NotZero(t, id)
}

func TestAddExplicitDuplicateKey(t *testing.T) {
	conn := setupBundlesTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	_, err := repo.Add(ctx, &models.Bundle{ID: 7, Name: "First"})
	require.NoError(t, err)

	_, err = repo.Add(ctx, &models.Bundle{ID: 7, Name: "Second"})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeDuplicate, typed.Code())
}

func TestPutFullyReplacesRecord(t *testing.T) {
	conn := setupBundlesTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	category := enums.BundleCategoryOffice
	description := "Desk starter kit"
	id, err := repo.Add(ctx, &models.Bundle{
		Name:        "Office Essentials",
		Items:       2,
		Budget:      decimal.NewFromInt(450),
		Category:    &category,
		Description: &description,
		Products: types.BundleProducts{
			{ID: "1", Name: "Polo Shirt - Navy", Quantity: 1, Price: decimal.NewFromInt(45)},
			{ID: "2", Name: "Safety Vest - Hi-Vis", Quantity: 1, Price: decimal.NewFromInt(32)},
		},
	})
	require.NoError(t, err)

	// The replacement value omits description and category entirely; put
	// semantics are full replace, not merge.
	_, err = repo.Put(ctx, &models.Bundle{
		ID:     id,
		Name:   "Office Essentials v2",
		Items:  1,
		Budget: decimal.NewFromInt(300),
		Products: types.BundleProducts{
			{ID: "1", Name: "Polo Shirt - Navy", Quantity: 1, Price: decimal.NewFromInt(45)},
		},
	})
	require.NoError(t, err)

	stored, err := repo.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "Office Essentials v2", stored.Name)
	assert.Nil(t, stored.Description, "description must vanish on full replace")
	assert.Nil(t, stored.Category, "category must vanish on full replace")
	assert.Len(t, stored.Products, 1)
}

func TestPutInsertsWhenAbsent(t *testing.T) {
	conn := setupBundlesTestDB(t)
	repo := NewRepository(conn)

	id, err := repo.Put(context.Background(), &models.Bundle{ID: 42, Name: "Fresh"})
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)

	stored, err := repo.Get(context.Background(), 42)
	require.NoError(t, err)
	require.NotNil(t, stored)
}

func TestGetMissReturnsNil(t *testing.T) {
	conn := setupBundlesTestDB(t)
	repo := NewRepository(conn)

	stored, err := repo.Get(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestDeleteAbsentKeyIsNoOp(t *testing.T) {
	conn := setupBundlesTestDB(t)
	repo := NewRepository(conn)

	require.NoError(t, repo.Delete(context.Background(), 999))
}

package bundles

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/uniformworks/portal-backend/pkg/db/models"
	pkgerrors "github.com/uniformworks/portal-backend/pkg/errors"
	"github.com/uniformworks/portal-backend/pkg/types"
)

type stubRepo struct {
	records map[uint]models.Bundle
	nextID  uint
}

func newStubRepo() *stubRepo {
	return &stubRepo{records: map[uint]models.Bundle{}, nextID: 1}
}

func (s *stubRepo) List(ctx context.Context) ([]models.Bundle, error) {
	out := make([]models.Bundle, 0, len(s.records))
	for id := uint(1); id < s.nextID; id++ {
		if record, ok := s.records[id]; ok {
			out = append(out, record)
		}
	}
	return out, nil
}

func (s *stubRepo) Get(ctx context.Context, id uint) (*models.Bundle, error) {
	record, ok := s.records[id]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

func (s *stubRepo) Add(ctx context.Context, bundle *models.Bundle) (uint, error) {
	if bundle.ID == 0 {
		bundle.ID = s.nextID
	}
	if bundle.ID >= s.nextID {
		s.nextID = bundle.ID + 1
	}
	s.records[bundle.ID] = *bundle
	return bundle.ID, nil
}

func (s *stubRepo) Put(ctx context.Context, bundle *models.Bundle) (uint, error) {
	if bundle.ID >= s.nextID {
		s.nextID = bundle.ID + 1
	}
	s.records[bundle.ID] = *bundle
	return bundle.ID, nil
}

func (s *stubRepo) Delete(ctx context.Context, id uint) error {
	delete(s.records, id)
	return nil
}

func newTestService(t *testing.T) (Service, *stubRepo) {
	t.Helper()

	repo := newStubRepo()
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("building service failed: %v", err)
	}
	return svc, repo
}

func TestCreateRecomputesItemsFromProducts(t *testing.T) {
	svc, _ := newTestService(t)

	dto, err := svc.Create(context.Background(), BundleInput{
		Name:   "Driver Pack",
		Budget: decimal.NewFromInt(500),
		Products: types.BundleProducts{
			{ID: "1", Name: "Polo Shirt - Navy", Quantity: 2, Price: decimal.NewFromInt(45)},
			{ID: "3", Name: "Work Boots - Black", Quantity: 1, Price: decimal.NewFromInt(125)},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dto.Items != 2 {
		t.Fatalf("expected items to mirror product lines, got %d", dto.Items)
	}
	if !dto.TotalCost.Equal(decimal.NewFromInt(215)) {
		t.Fatalf("expected total cost 215, got %s", dto.TotalCost)
	}
	if dto.Assigned {
		t.Fatal("new bundles start unassigned")
	}
}

func TestCreateRejectsUnknownCategory(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Create(context.Background(), BundleInput{Name: "X", Category: "Warehouse"})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdatePreservesAssignedFlag(t *testing.T) {
	svc, repo := newTestService(t)

	created, err := svc.Create(context.Background(), BundleInput{Name: "Winter Accessories"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Assignment happens out of band; an admin edit must not clear it.
	assigned := repo.records[created.ID]
	assigned.Assigned = true
	repo.records[created.ID] = assigned

	updated, err := svc.Update(context.Background(), created.ID, BundleInput{
		Name: "Winter Accessories",
		Products: types.BundleProducts{
			{ID: "2", Name: "Safety Vest - Hi-Vis", Quantity: 3, Price: decimal.NewFromInt(32)},
		},
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if !updated.Assigned {
		t.Fatal("expected assigned flag preserved across update")
	}
	if updated.Items != 1 {
		t.Fatalf("expected items recomputed to 1, got %d", updated.Items)
	}
}

func TestUpdateMissingBundle(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Update(context.Background(), 42, BundleInput{Name: "X"})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCreateRejectsNonPositiveLineQuantity(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Create(context.Background(), BundleInput{
		Name: "Bad Lines",
		Products: types.BundleProducts{
			{ID: "1", Name: "Polo Shirt - Navy", Quantity: 0, Price: decimal.NewFromInt(45)},
		},
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

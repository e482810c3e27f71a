package users

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/uniformworks/portal-backend/pkg/db/models"
	pkgerrors "github.com/uniformworks/portal-backend/pkg/errors"
)

type stubRepo struct {
	records map[uint]models.User
	nextID  uint
}

func newStubRepo() *stubRepo {
	return &stubRepo{records: map[uint]models.User{}, nextID: 1}
}

func (s *stubRepo) List(ctx context.Context) ([]models.User, error) {
	out := make([]models.User, 0, len(s.records))
	for id := uint(1); id < s.nextID; id++ {
		if record, ok := s.records[id]; ok {
			out = append(out, record)
		}
	}
	return out, nil
}

func (s *stubRepo) Get(ctx context.Context, id uint) (*models.User, error) {
	record, ok := s.records[id]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

func (s *stubRepo) Add(ctx context.Context, user *models.User) (uint, error) {
	if user.ID != 0 {
		if _, exists := s.records[user.ID]; exists {
			return 0, pkgerrors.New(pkgerrors.CodeDuplicate, "user id already exists")
		}
	} else {
		user.ID = s.nextID
	}
	if user.ID >= s.nextID {
		s.nextID = user.ID + 1
	}
	s.records[user.ID] = *user
	return user.ID, nil
}

func (s *stubRepo) Put(ctx context.Context, user *models.User) (uint, error) {
	if user.ID >= s.nextID {
		s.nextID = user.ID + 1
	}
	s.records[user.ID] = *user
	return user.ID, nil
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

func TestCreateAssignsIDAndDerivesRemaining(t *testing.T) {
	svc, _ := newTestService(t)

	dto, err := svc.Create(context.Background(), UserInput{
		Name:   "John Doe",
		Role:   "Sales Rep",
		Budget: decimal.NewFromInt(2000),
		Spent:  decimal.NewFromInt(450),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dto.ID == 0 {
		t.Fatal("expected assigned id")
	}
	if !dto.Remaining.Equal(decimal.NewFromInt(1550)) {
		t.Fatalf("expected remaining 1550, got %s", dto.Remaining)
	}
}

func TestCreateAllowsSpendOverBudget(t *testing.T) {
	svc, _ := newTestService(t)

	dto, err := svc.Create(context.Background(), UserInput{
		Name:   "Jane Smith",
		Role:   "Sales Rep",
		Budget: decimal.NewFromInt(100),
		Spent:  decimal.NewFromInt(150),
	})
	if err != nil {
		t.Fatalf("spend over budget must be allowed: %v", err)
	}
	if !dto.Remaining.Equal(decimal.NewFromInt(-50)) {
		t.Fatalf("expected negative remaining, got %s", dto.Remaining)
	}
}

func TestCreateRejectsNegativeAmounts(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Create(context.Background(), UserInput{
		Name:   "Bad",
		Role:   "Admin",
		Budget: decimal.NewFromInt(-1),
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestGetMissReturnsNilNotError(t *testing.T) {
	svc, _ := newTestService(t)

	dto, err := svc.Get(context.Background(), 99)
	if err != nil {
		t.Fatalf("read miss must not error: %v", err)
	}
	if dto != nil {
		t.Fatalf("expected nil for absent user, got %+v", dto)
	}
}

func TestUpdateReplacesRecord(t *testing.T) {
	svc, repo := newTestService(t)

	created, err := svc.Create(context.Background(), UserInput{
		Name: "Peter Jones", Role: "Sales Rep", Company: "Example Corp",
		Budget: decimal.NewFromInt(2000),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.Update(context.Background(), created.ID, UserInput{
		Name: "Peter Jones", Role: "Manager",
		Budget: decimal.NewFromInt(3000),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Role != "Manager" {
		t.Fatalf("expected role replaced, got %q", updated.Role)
	}
	// Full replace: company was omitted from the update and must vanish.
	if stored := repo.records[created.ID]; stored.Company != "" {
		t.Fatalf("expected company cleared by full replace, got %q", stored.Company)
	}
}

func TestUpdateMissingUser(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Update(context.Background(), 42, UserInput{Name: "X", Role: "Admin"})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDeleteAbsentUserIsNoOp(t *testing.T) {
	svc, _ := newTestService(t)

	if err := svc.Delete(context.Background(), 7); err != nil {
		t.Fatalf("deleting absent key must be a no-op: %v", err)
	}
}

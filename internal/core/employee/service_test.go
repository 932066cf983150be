package employee

import (
	"context"
	"errors"
	"slices"
	"strings"
	"testing"
	"time"
)

type stubClock struct {
	now time.Time
}

func (s *stubClock) Now() time.Time {
	return s.now
}

type fakeEmployeeRepo struct {
	employees map[int64]*Employee
	sequence  int64
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[int64]*Employee)}
}

func (r *fakeEmployeeRepo) Create(_ context.Context, e *Employee) (*Employee, error) {
	clone := *e
	r.sequence++
	clone.ID = r.sequence
	r.employees[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *fakeEmployeeRepo) Update(_ context.Context, e *Employee) (*Employee, error) {
	if _, ok := r.employees[e.ID]; !ok {
		return nil, ErrEmployeeNotFound
	}
	clone := *e
	r.employees[e.ID] = &clone
	out := clone
	return &out, nil
}

func (r *fakeEmployeeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.employees[id]; !ok {
		return ErrEmployeeNotFound
	}
	delete(r.employees, id)
	return nil
}

func (r *fakeEmployeeRepo) FindByID(_ context.Context, id int64) (*Employee, error) {
	emp, ok := r.employees[id]
	if !ok {
		return nil, ErrEmployeeNotFound
	}
	clone := *emp
	return &clone, nil
}

func (r *fakeEmployeeRepo) ExistingIDs(_ context.Context, ids []int64) ([]int64, error) {
	var found []int64
	for _, id := range ids {
		if _, ok := r.employees[id]; ok {
			found = append(found, id)
		}
	}
	slices.Sort(found)
	return found, nil
}

func TestService_CreateEmployee_Success(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	svc := NewService(repo, &stubClock{now: now}, nil)

	created, err := svc.CreateEmployee(context.Background(), CreateEmployeeInput{
		FirstName: " Taro ",
		LastName:  "  Yamada  ",
	})
	if err != nil {
		t.Fatalf("CreateEmployee returned error: %v", err)
	}

	if created.ID != 1 {
		t.Fatalf("expected id 1, got %d", created.ID)
	}
	if created.LastName != "Yamada" || created.FirstName != "Taro" {
		t.Fatalf("expected trimmed names, got %s %s", created.LastName, created.FirstName)
	}
	if !created.CreatedAt.Equal(now) || !created.UpdatedAt.Equal(now) {
		t.Fatalf("expected timestamps to use clock now")
	}
}

func TestService_CreateEmployee_InvalidNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   CreateEmployeeInput
		want error
	}{
		{name: "blank first name", in: CreateEmployeeInput{FirstName: "  ", LastName: "Yamada"}, want: ErrInvalidFirstName},
		{name: "blank last name", in: CreateEmployeeInput{FirstName: "Taro", LastName: ""}, want: ErrInvalidLastName},
		{name: "too long", in: CreateEmployeeInput{FirstName: strings.Repeat("あ", maxNameLength+1), LastName: "Yamada"}, want: ErrInvalidFirstName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := newFakeEmployeeRepo()
			svc := NewService(repo, &stubClock{now: time.Now().UTC()}, nil)

			_, err := svc.CreateEmployee(context.Background(), tt.in)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if len(repo.employees) != 0 {
				t.Fatalf("expected no employee to be stored")
			}
		})
	}
}

func TestService_UpdateEmployee_Success(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	clk := &stubClock{now: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)}
	svc := NewService(repo, clk, nil)

	created, err := svc.CreateEmployee(context.Background(), CreateEmployeeInput{FirstName: "Taro", LastName: "Yamada"})
	if err != nil {
		t.Fatalf("CreateEmployee returned error: %v", err)
	}

	clk.now = clk.now.Add(time.Hour)
	lastName := " Sato "

	updated, err := svc.UpdateEmployee(context.Background(), UpdateEmployeeInput{ID: created.ID, LastName: &lastName})
	if err != nil {
		t.Fatalf("UpdateEmployee returned error: %v", err)
	}

	if updated.FirstName != "Taro" || updated.LastName != "Sato" {
		t.Fatalf("unexpected names: %s %s", updated.FirstName, updated.LastName)
	}
	if !updated.UpdatedAt.Equal(clk.now) {
		t.Fatalf("expected updated_at to advance, got %v", updated.UpdatedAt)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("expected created_at to be kept")
	}
}

func TestService_UpdateEmployee_NotFound(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakeEmployeeRepo(), nil, nil)
	name := "Hanako"

	_, err := svc.UpdateEmployee(context.Background(), UpdateEmployeeInput{ID: 9, FirstName: &name})
	if !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestService_GetAndDeleteEmployee(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	svc := NewService(repo, nil, nil)

	created, err := svc.CreateEmployee(context.Background(), CreateEmployeeInput{FirstName: "Taro", LastName: "Yamada"})
	if err != nil {
		t.Fatalf("CreateEmployee returned error: %v", err)
	}

	got, err := svc.GetEmployee(context.Background(), GetEmployeeInput{ID: created.ID})
	if err != nil {
		t.Fatalf("GetEmployee returned error: %v", err)
	}
	if got.ID != created.ID {
		t.Fatalf("expected id %d, got %d", created.ID, got.ID)
	}

	if err := svc.DeleteEmployee(context.Background(), DeleteEmployeeInput{ID: created.ID}); err != nil {
		t.Fatalf("DeleteEmployee returned error: %v", err)
	}

	if _, err := svc.GetEmployee(context.Background(), GetEmployeeInput{ID: created.ID}); !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound after delete, got %v", err)
	}
}

func TestService_InvalidID(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakeEmployeeRepo(), nil, nil)

	if _, err := svc.GetEmployee(context.Background(), GetEmployeeInput{ID: 0}); !errors.Is(err, ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID from GetEmployee, got %v", err)
	}
	if _, err := svc.UpdateEmployee(context.Background(), UpdateEmployeeInput{ID: -1}); !errors.Is(err, ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID from UpdateEmployee, got %v", err)
	}
	if err := svc.DeleteEmployee(context.Background(), DeleteEmployeeInput{}); !errors.Is(err, ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID from DeleteEmployee, got %v", err)
	}
}

package services

import (
	"context"
	"errors"
	"testing"

	"github.com/TargetKart/targetkart-backend/internal/models"
	"github.com/TargetKart/targetkart-backend/internal/repositories"
	"github.com/TargetKart/targetkart-backend/internal/repositories/memory"
)

// flakyCustomerRepo wraps an in-memory repository and fails reads on demand
type flakyCustomerRepo struct {
	*memory.CustomerRepository
	failing bool
}

var errStoreDown = errors.New("store down")

func (r *flakyCustomerRepo) FindAll(ctx context.Context) ([]*models.Customer, error) {
	if r.failing {
		return nil, errStoreDown
	}
	return r.CustomerRepository.FindAll(ctx)
}

var _ repositories.CustomerRepository = (*flakyCustomerRepo)(nil)

// TestPopulationKeepsSnapshot ensures a failed reload leaves the last good
// snapshot available instead of dropping the population.
func TestPopulationKeepsSnapshot(t *testing.T) {
	repo := &flakyCustomerRepo{CustomerRepository: memory.NewCustomerRepository(memory.SeedCustomers())}
	service := NewCustomerService(repo)
	ctx := context.Background()

	customers, err := service.ListCustomers(ctx)
	if err != nil {
		t.Fatalf("initial load failed: %v", err)
	}
	if len(customers) != 5 {
		t.Fatalf("got %d customers, want 5", len(customers))
	}

	repo.failing = true

	if _, err := service.ListCustomers(ctx); err == nil {
		t.Fatal("reload succeeded against a failing store")
	}

	population, err := service.Population(ctx)
	if err != nil {
		t.Fatalf("population unavailable after failed reload: %v", err)
	}
	if len(population) != 5 {
		t.Fatalf("snapshot has %d customers after failed reload, want 5", len(population))
	}
}

// TestPopulationUnavailable ensures the first load failing surfaces
// ErrDataUnavailable.
func TestPopulationUnavailable(t *testing.T) {
	repo := &flakyCustomerRepo{CustomerRepository: memory.NewCustomerRepository(nil), failing: true}
	service := NewCustomerService(repo)

	_, err := service.Population(context.Background())
	if !errors.Is(err, ErrDataUnavailable) {
		t.Fatalf("got %v, want ErrDataUnavailable", err)
	}
}

// TestPopulationLoadsOnFirstUse ensures Population loads the store when no
// listing has happened yet.
func TestPopulationLoadsOnFirstUse(t *testing.T) {
	service := NewCustomerService(memory.NewCustomerRepository(memory.SeedCustomers()))

	population, err := service.Population(context.Background())
	if err != nil {
		t.Fatalf("first-use population failed: %v", err)
	}
	if len(population) != 5 {
		t.Fatalf("got %d customers, want 5", len(population))
	}
}

// TestCustomerCount ensures the count reflects the stored population.
func TestCustomerCount(t *testing.T) {
	service := NewCustomerService(memory.NewCustomerRepository(memory.SeedCustomers()))

	count, err := service.CustomerCount(context.Background())
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 5 {
		t.Fatalf("count = %d, want 5", count)
	}
}

package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/TargetKart/targetkart-backend/internal/models"
	"github.com/TargetKart/targetkart-backend/internal/repositories"
)

// Compile-time check to ensure customerService implements CustomerService
var _ CustomerService = (*customerService)(nil)

// customerService reads the customer population and keeps the last
// successfully loaded snapshot. A failed reload reports the error and
// leaves the snapshot untouched, so evaluation keeps working on stale
// data rather than an empty population.
type customerService struct {
	customerRepo repositories.CustomerRepository

	mu       sync.RWMutex
	snapshot []*models.Customer
	loaded   bool
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customerRepo repositories.CustomerRepository) CustomerService {
	return &customerService{customerRepo: customerRepo}
}

// ListCustomers reloads the population from the repository
func (s *customerService) ListCustomers(ctx context.Context) ([]*models.Customer, error) {
	customers, err := s.customerRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load customers: %w", err)
	}

	s.mu.Lock()
	s.snapshot = customers
	s.loaded = true
	s.mu.Unlock()

	return customers, nil
}

// Population returns the current snapshot, loading it on first use. It
// returns ErrDataUnavailable only when no load has ever succeeded.
func (s *customerService) Population(ctx context.Context) ([]*models.Customer, error) {
	s.mu.RLock()
	loaded := s.loaded
	snapshot := s.snapshot
	s.mu.RUnlock()

	if loaded {
		return snapshot, nil
	}

	customers, err := s.ListCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}
	return customers, nil
}

// CustomerCount counts the stored population
func (s *customerService) CustomerCount(ctx context.Context) (int64, error) {
	return s.customerRepo.Count(ctx)
}

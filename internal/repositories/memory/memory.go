// Package memory provides in-memory repository implementations. They back
// the mock-data mode and the service tests, where a deterministic
// population matters more than durability. All state lives for the
// lifetime of the process.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/TargetKart/targetkart-backend/internal/models"
	"github.com/TargetKart/targetkart-backend/internal/repositories"
)

// CustomerRepository is an in-memory repositories.CustomerRepository
type CustomerRepository struct {
	mu        sync.RWMutex
	customers []*models.Customer
}

// NewCustomerRepository creates a customer repository pre-loaded with the
// given population. Iteration order is the seed order.
func NewCustomerRepository(seed []*models.Customer) *CustomerRepository {
	customers := make([]*models.Customer, len(seed))
	copy(customers, seed)
	return &CustomerRepository{customers: customers}
}

// FindAll returns the population in stable insertion order
func (r *CustomerRepository) FindAll(ctx context.Context) ([]*models.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Customer, len(r.customers))
	copy(out, r.customers)
	return out, nil
}

// FindByID finds a customer by ID
func (r *CustomerRepository) FindByID(ctx context.Context, id string) (*models.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, customer := range r.customers {
		if customer.ID == id {
			return customer, nil
		}
	}
	return nil, repositories.ErrNotFound
}

// CreateMany appends a batch of customers
func (r *CustomerRepository) CreateMany(ctx context.Context, customers []*models.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.customers = append(r.customers, customers...)
	return nil
}

// Count counts all customers
func (r *CustomerRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.customers)), nil
}

// SegmentRepository is an in-memory repositories.SegmentRepository
type SegmentRepository struct {
	mu       sync.RWMutex
	segments []*models.Segment
}

// NewSegmentRepository creates a segment repository with optional seed data
func NewSegmentRepository(seed []*models.Segment) *SegmentRepository {
	segments := make([]*models.Segment, len(seed))
	copy(segments, seed)
	return &SegmentRepository{segments: segments}
}

// Create appends a new segment
func (r *SegmentRepository) Create(ctx context.Context, segment *models.Segment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.segments = append(r.segments, segment)
	return nil
}

// FindByID finds a segment by ID
func (r *SegmentRepository) FindByID(ctx context.Context, id string) (*models.Segment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, segment := range r.segments {
		if segment.ID == id {
			return segment, nil
		}
	}
	return nil, repositories.ErrNotFound
}

// FindAll returns all segments, newest first
func (r *SegmentRepository) FindAll(ctx context.Context) ([]*models.Segment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Segment, len(r.segments))
	copy(out, r.segments)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Update replaces a segment in place
func (r *SegmentRepository) Update(ctx context.Context, segment *models.Segment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	segment.LastModified = time.Now()
	for i, existing := range r.segments {
		if existing.ID == segment.ID {
			r.segments[i] = segment
			return nil
		}
	}
	return repositories.ErrNotFound
}

// Delete removes a segment
func (r *SegmentRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, segment := range r.segments {
		if segment.ID == id {
			r.segments = append(r.segments[:i], r.segments[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

// Count counts all segments
func (r *SegmentRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.segments)), nil
}

// CampaignRepository is an in-memory repositories.CampaignRepository
type CampaignRepository struct {
	mu        sync.RWMutex
	campaigns []*models.Campaign
}

// NewCampaignRepository creates a campaign repository with optional seed data
func NewCampaignRepository(seed []*models.Campaign) *CampaignRepository {
	campaigns := make([]*models.Campaign, len(seed))
	copy(campaigns, seed)
	return &CampaignRepository{campaigns: campaigns}
}

// Create appends a new campaign
func (r *CampaignRepository) Create(ctx context.Context, campaign *models.Campaign) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *campaign
	r.campaigns = append(r.campaigns, &clone)
	return nil
}

// FindByID finds a campaign by ID
func (r *CampaignRepository) FindByID(ctx context.Context, id string) (*models.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, campaign := range r.campaigns {
		if campaign.ID == id {
			clone := *campaign
			return &clone, nil
		}
	}
	return nil, repositories.ErrNotFound
}

// FindAll returns all campaigns, newest first
func (r *CampaignRepository) FindAll(ctx context.Context) ([]*models.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Campaign, 0, len(r.campaigns))
	for _, campaign := range r.campaigns {
		clone := *campaign
		out = append(out, &clone)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Update replaces a campaign wholesale; overlapping readers never observe
// a partially written record.
func (r *CampaignRepository) Update(ctx context.Context, campaign *models.Campaign) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.campaigns {
		if existing.ID == campaign.ID {
			clone := *campaign
			r.campaigns[i] = &clone
			return nil
		}
	}
	return repositories.ErrNotFound
}

// Count counts all campaigns
func (r *CampaignRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.campaigns)), nil
}

// CommunicationLogRepository is an in-memory
// repositories.CommunicationLogRepository
type CommunicationLogRepository struct {
	mu   sync.RWMutex
	logs []models.CommunicationLog
}

// NewCommunicationLogRepository creates an empty log repository
func NewCommunicationLogRepository() *CommunicationLogRepository {
	return &CommunicationLogRepository{}
}

// CreateMany appends the logs generated by one campaign send
func (r *CommunicationLogRepository) CreateMany(ctx context.Context, logs []models.CommunicationLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.logs = append(r.logs, logs...)
	return nil
}

// FindByCampaignID finds all logs for a campaign in generation order
func (r *CommunicationLogRepository) FindByCampaignID(ctx context.Context, campaignID string) ([]models.CommunicationLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.CommunicationLog{}
	for _, log := range r.logs {
		if log.CampaignID == campaignID {
			out = append(out, log)
		}
	}
	return out, nil
}

// AdminUserRepository is an in-memory repositories.AdminUserRepository
type AdminUserRepository struct {
	mu    sync.RWMutex
	users []*models.AdminUser
}

// NewAdminUserRepository creates an admin user repository with seed users
func NewAdminUserRepository(seed []*models.AdminUser) *AdminUserRepository {
	users := make([]*models.AdminUser, len(seed))
	copy(users, seed)
	return &AdminUserRepository{users: users}
}

// Create appends a new admin user
func (r *AdminUserRepository) Create(ctx context.Context, user *models.AdminUser) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	r.users = append(r.users, user)
	return nil
}

// FindByEmail finds an admin user by email
func (r *AdminUserRepository) FindByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, repositories.ErrNotFound
}

// FindByID finds an admin user by ID
func (r *AdminUserRepository) FindByID(ctx context.Context, id string) (*models.AdminUser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, repositories.ErrNotFound
}

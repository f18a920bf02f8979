package repositories

import (
	"context"
	"errors"

	"github.com/TargetKart/targetkart-backend/internal/models"
)

// ErrNotFound is returned by in-memory repositories when a record does not
// exist. MongoDB-backed repositories surface the driver's own error.
var ErrNotFound = errors.New("record not found")

// CustomerRepository defines the interface for customer data operations.
// The population is read-only from the engine's perspective; writes exist
// only for data loading (imports and seeding).
type CustomerRepository interface {
	FindAll(ctx context.Context) ([]*models.Customer, error)
	FindByID(ctx context.Context, id string) (*models.Customer, error)
	CreateMany(ctx context.Context, customers []*models.Customer) error
	Count(ctx context.Context) (int64, error)
}

// SegmentRepository defines the interface for segment data operations
type SegmentRepository interface {
	Create(ctx context.Context, segment *models.Segment) error
	FindByID(ctx context.Context, id string) (*models.Segment, error)
	FindAll(ctx context.Context) ([]*models.Segment, error)
	Update(ctx context.Context, segment *models.Segment) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// CampaignRepository defines the interface for campaign data operations
type CampaignRepository interface {
	Create(ctx context.Context, campaign *models.Campaign) error
	FindByID(ctx context.Context, id string) (*models.Campaign, error)
	FindAll(ctx context.Context) ([]*models.Campaign, error)
	Update(ctx context.Context, campaign *models.Campaign) error
	Count(ctx context.Context) (int64, error)
}

// CommunicationLogRepository defines the interface for delivery log
// operations. Logs are written in bulk at send time and read-only after.
type CommunicationLogRepository interface {
	CreateMany(ctx context.Context, logs []models.CommunicationLog) error
	FindByCampaignID(ctx context.Context, campaignID string) ([]models.CommunicationLog, error)
}

// AdminUserRepository defines the interface for admin user data operations
type AdminUserRepository interface {
	Create(ctx context.Context, user *models.AdminUser) error
	FindByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	FindByID(ctx context.Context, id string) (*models.AdminUser, error)
}

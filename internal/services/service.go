package services

import (
	"context"
	"errors"

	"github.com/TargetKart/targetkart-backend/internal/models"
)

// Sentinel errors returned across the service boundary. Handlers map these
// to HTTP status codes; none of them is fatal to the process.
var (
	// ErrDataUnavailable indicates the customer population could not be
	// loaded and no previously loaded snapshot exists.
	ErrDataUnavailable = errors.New("customer data unavailable")
	// ErrSegmentNotFound indicates an unknown segment ID
	ErrSegmentNotFound = errors.New("segment not found")
	// ErrCampaignNotFound indicates an unknown campaign ID
	ErrCampaignNotFound = errors.New("campaign not found")
	// ErrCampaignAlreadySent rejects sending a campaign that has left the
	// draft state; a campaign transitions draft to sent exactly once.
	ErrCampaignAlreadySent = errors.New("campaign has already been sent")
	// ErrInvalidCredentials indicates a failed login attempt
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// SegmentPreview is the result of applying a rule group to the population
type SegmentPreview struct {
	Count           int                `json:"count"`
	SampleCustomers []*models.Customer `json:"sampleCustomers"`
}

// CreateSegmentInput carries the caller-supplied fields of a new segment
type CreateSegmentInput struct {
	Name        string           `json:"name" binding:"required"`
	Description string           `json:"description"`
	RuleGroup   models.RuleGroup `json:"ruleGroup" binding:"required"`
	CreatedBy   string           `json:"createdBy"`
}

// CreateCampaignInput carries the caller-supplied fields of a new
// campaign. AudienceSize is the preview count snapshotted by the caller.
type CreateCampaignInput struct {
	Name         string `json:"name" binding:"required"`
	SegmentID    string `json:"segmentId" binding:"required"`
	SegmentName  string `json:"segmentName"`
	Message      string `json:"message" binding:"required"`
	AudienceSize int    `json:"audienceSize" binding:"min=0"`
}

// CustomerService defines the interface for reading the customer population
type CustomerService interface {
	// ListCustomers reloads the population from the underlying store. A
	// load failure is reported and leaves the last good snapshot intact.
	ListCustomers(ctx context.Context) ([]*models.Customer, error)
	// Population returns the current snapshot, loading it first if no
	// load has succeeded yet.
	Population(ctx context.Context) ([]*models.Customer, error)
	CustomerCount(ctx context.Context) (int64, error)
}

// SegmentService defines the interface for segment operations
type SegmentService interface {
	CreateSegment(ctx context.Context, input CreateSegmentInput) (*models.Segment, error)
	GetSegments(ctx context.Context) ([]*models.Segment, error)
	GetSegmentByID(ctx context.Context, id string) (*models.Segment, error)
	UpdateSegment(ctx context.Context, id string, input CreateSegmentInput) (*models.Segment, error)
	DeleteSegment(ctx context.Context, id string) error
	PreviewSegment(ctx context.Context, ruleGroup *models.RuleGroup) (*SegmentPreview, error)
}

// CampaignService defines the interface for campaign operations
type CampaignService interface {
	CreateCampaign(ctx context.Context, input CreateCampaignInput) (*models.Campaign, error)
	GetCampaigns(ctx context.Context) ([]*models.Campaign, error)
	GetCampaignByID(ctx context.Context, id string) (*models.Campaign, error)
	SendCampaign(ctx context.Context, id string) (*models.Campaign, error)
	GetCommunicationLogs(ctx context.Context, campaignID string) ([]models.CommunicationLog, error)
}

// AIService defines the interface for the heuristic "AI" surface: message
// suggestions, free-text rule translation and campaign insights. Entirely
// static keyword matching; no external calls.
type AIService interface {
	SuggestMessages(objective, audienceType, productCategory string) []string
	TranslateRules(text string) *models.RuleGroup
	CampaignInsights(ctx context.Context, campaignID string) (string, error)
}

// AuthService defines the interface for authentication operations
type AuthService interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
}

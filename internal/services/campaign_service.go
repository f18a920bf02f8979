package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/TargetKart/targetkart-backend/internal/models"
	"github.com/TargetKart/targetkart-backend/internal/repositories"
	"github.com/TargetKart/targetkart-backend/pkg/delivery"
)

// Compile-time check to ensure campaignService implements CampaignService
var _ CampaignService = (*campaignService)(nil)

// campaignService handles campaign-related business logic. It is the only
// writer of campaign stats, sentAt and status.
type campaignService struct {
	campaignRepo repositories.CampaignRepository
	logRepo      repositories.CommunicationLogRepository
	gateway      delivery.Gateway
	now          func() time.Time
}

// NewCampaignService creates a new CampaignService. A nil clock defaults
// to time.Now; tests inject a fixed one.
func NewCampaignService(
	campaignRepo repositories.CampaignRepository,
	logRepo repositories.CommunicationLogRepository,
	gateway delivery.Gateway,
	now func() time.Time,
) CampaignService {
	if now == nil {
		now = time.Now
	}
	return &campaignService{
		campaignRepo: campaignRepo,
		logRepo:      logRepo,
		gateway:      gateway,
		now:          now,
	}
}

// CreateCampaign creates a campaign in draft state with zero stats. The
// audience size is a snapshot taken by the caller and is never
// re-evaluated afterward.
func (s *campaignService) CreateCampaign(ctx context.Context, input CreateCampaignInput) (*models.Campaign, error) {
	campaign := &models.Campaign{
		ID:           uuid.NewString(),
		Name:         input.Name,
		SegmentID:    input.SegmentID,
		SegmentName:  input.SegmentName,
		Message:      input.Message,
		Status:       models.CampaignStatusDraft,
		AudienceSize: input.AudienceSize,
		Stats:        models.CampaignStats{},
		CreatedAt:    s.now(),
	}

	if err := s.campaignRepo.Create(ctx, campaign); err != nil {
		return nil, fmt.Errorf("failed to create campaign: %w", err)
	}

	return campaign, nil
}

// GetCampaigns retrieves all campaigns
func (s *campaignService) GetCampaigns(ctx context.Context) ([]*models.Campaign, error) {
	return s.campaignRepo.FindAll(ctx)
}

// GetCampaignByID retrieves a campaign by ID
func (s *campaignService) GetCampaignByID(ctx context.Context, id string) (*models.Campaign, error) {
	campaign, err := s.campaignRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCampaignNotFound, id)
	}
	return campaign, nil
}

// SendCampaign runs the delivery simulation for a draft campaign. The
// campaign moves draft to sent exactly once; sending anything that has
// left the draft state is rejected. The generated logs are persisted and
// retrievable via GetCommunicationLogs.
func (s *campaignService) SendCampaign(ctx context.Context, id string) (*models.Campaign, error) {
	campaign, err := s.GetCampaignByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if campaign.Status != models.CampaignStatusDraft {
		return nil, fmt.Errorf("%w: %s", ErrCampaignAlreadySent, id)
	}

	sentAt := s.now()
	stats, logs := s.gateway.Deliver(campaign, sentAt)

	campaign.Status = models.CampaignStatusSent
	campaign.Stats = stats
	campaign.SentAt = &sentAt

	if err := s.campaignRepo.Update(ctx, campaign); err != nil {
		return nil, fmt.Errorf("failed to update campaign: %w", err)
	}
	if err := s.logRepo.CreateMany(ctx, logs); err != nil {
		return nil, fmt.Errorf("failed to store communication logs: %w", err)
	}

	return campaign, nil
}

// GetCommunicationLogs retrieves the delivery logs for a campaign
func (s *campaignService) GetCommunicationLogs(ctx context.Context, campaignID string) ([]models.CommunicationLog, error) {
	if _, err := s.GetCampaignByID(ctx, campaignID); err != nil {
		return nil, err
	}
	return s.logRepo.FindByCampaignID(ctx, campaignID)
}

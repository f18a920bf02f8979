package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/TargetKart/targetkart-backend/internal/models"
	"github.com/TargetKart/targetkart-backend/internal/repositories"
	"github.com/TargetKart/targetkart-backend/internal/rules"
)

// previewSampleSize bounds the representative sample returned by a preview
const previewSampleSize = 5

// Compile-time check to ensure segmentService implements SegmentService
var _ SegmentService = (*segmentService)(nil)

// segmentService handles segment-related business logic
type segmentService struct {
	segmentRepo repositories.SegmentRepository
	customers   CustomerService
}

// NewSegmentService creates a new SegmentService
func NewSegmentService(segmentRepo repositories.SegmentRepository, customers CustomerService) SegmentService {
	return &segmentService{
		segmentRepo: segmentRepo,
		customers:   customers,
	}
}

// CreateSegment creates a new named segment owning its rule group
func (s *segmentService) CreateSegment(ctx context.Context, input CreateSegmentInput) (*models.Segment, error) {
	now := time.Now()
	segment := &models.Segment{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Description:  input.Description,
		RuleGroup:    input.RuleGroup,
		CreatedAt:    now,
		CreatedBy:    input.CreatedBy,
		LastModified: now,
	}

	if err := s.segmentRepo.Create(ctx, segment); err != nil {
		return nil, fmt.Errorf("failed to create segment: %w", err)
	}

	return segment, nil
}

// GetSegments retrieves all segments
func (s *segmentService) GetSegments(ctx context.Context) ([]*models.Segment, error) {
	return s.segmentRepo.FindAll(ctx)
}

// GetSegmentByID retrieves a segment by ID
func (s *segmentService) GetSegmentByID(ctx context.Context, id string) (*models.Segment, error) {
	segment, err := s.segmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSegmentNotFound, id)
	}
	return segment, nil
}

// UpdateSegment replaces the caller-supplied fields of an existing segment
func (s *segmentService) UpdateSegment(ctx context.Context, id string, input CreateSegmentInput) (*models.Segment, error) {
	segment, err := s.GetSegmentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	segment.Name = input.Name
	segment.Description = input.Description
	segment.RuleGroup = input.RuleGroup
	segment.LastModified = time.Now()

	if err := s.segmentRepo.Update(ctx, segment); err != nil {
		return nil, fmt.Errorf("failed to update segment: %w", err)
	}

	return segment, nil
}

// DeleteSegment deletes a segment
func (s *segmentService) DeleteSegment(ctx context.Context, id string) error {
	if err := s.segmentRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("%w: %s", ErrSegmentNotFound, id)
	}
	return nil
}

// PreviewSegment applies a rule group to the full population and returns
// the match count plus the first matches in population order as a sample.
// Neither the population nor the rule group is mutated, so calling twice
// with unchanged data returns identical results.
func (s *segmentService) PreviewSegment(ctx context.Context, ruleGroup *models.RuleGroup) (*SegmentPreview, error) {
	population, err := s.customers.Population(ctx)
	if err != nil {
		return nil, err
	}

	preview := &SegmentPreview{
		SampleCustomers: []*models.Customer{},
	}
	for _, customer := range population {
		if !rules.EvaluateGroup(ruleGroup, customer) {
			continue
		}
		preview.Count++
		if len(preview.SampleCustomers) < previewSampleSize {
			preview.SampleCustomers = append(preview.SampleCustomers, customer)
		}
	}

	return preview, nil
}

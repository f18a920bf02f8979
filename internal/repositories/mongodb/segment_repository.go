package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/TargetKart/targetkart-backend/internal/models"
	"github.com/TargetKart/targetkart-backend/internal/repositories"
)

// SegmentRepository implements the repositories.SegmentRepository interface
type SegmentRepository struct {
	collection *mongo.Collection
}

// NewSegmentRepository creates a new SegmentRepository
func NewSegmentRepository(db *mongo.Database) repositories.SegmentRepository {
	return &SegmentRepository{
		collection: db.Collection("segments"),
	}
}

// Create creates a new segment
func (r *SegmentRepository) Create(ctx context.Context, segment *models.Segment) error {
	_, err := r.collection.InsertOne(ctx, segment)
	return err
}

// FindByID finds a segment by ID
func (r *SegmentRepository) FindByID(ctx context.Context, id string) (*models.Segment, error) {
	var segment models.Segment

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&segment)
	if err != nil {
		return nil, err
	}

	return &segment, nil
}

// FindAll finds all segments, newest first
func (r *SegmentRepository) FindAll(ctx context.Context) ([]*models.Segment, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var segments []*models.Segment
	if err := cursor.All(ctx, &segments); err != nil {
		return nil, err
	}

	if segments == nil {
		segments = []*models.Segment{}
	}

	return segments, nil
}

// Update updates a segment
func (r *SegmentRepository) Update(ctx context.Context, segment *models.Segment) error {
	segment.LastModified = time.Now()
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": segment.ID}, segment)
	return err
}

// Delete deletes a segment
func (r *SegmentRepository) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// Count counts all segments
func (r *SegmentRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

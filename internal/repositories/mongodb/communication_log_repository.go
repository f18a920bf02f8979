package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/TargetKart/targetkart-backend/internal/models"
	"github.com/TargetKart/targetkart-backend/internal/repositories"
)

// CommunicationLogRepository implements the
// repositories.CommunicationLogRepository interface
type CommunicationLogRepository struct {
	collection *mongo.Collection
}

// NewCommunicationLogRepository creates a new CommunicationLogRepository
func NewCommunicationLogRepository(db *mongo.Database) repositories.CommunicationLogRepository {
	return &CommunicationLogRepository{
		collection: db.Collection("communication_logs"),
	}
}

// CreateMany inserts the logs generated by one campaign send
func (r *CommunicationLogRepository) CreateMany(ctx context.Context, logs []models.CommunicationLog) error {
	if len(logs) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(logs))
	for _, log := range logs {
		docs = append(docs, log)
	}

	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

// FindByCampaignID finds all logs for a campaign
func (r *CommunicationLogRepository) FindByCampaignID(ctx context.Context, campaignID string) ([]models.CommunicationLog, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"campaignId": campaignID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var logs []models.CommunicationLog
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, err
	}

	if logs == nil {
		logs = []models.CommunicationLog{}
	}

	return logs, nil
}

package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"resource-navigator-backend/apperrors"
	"resource-navigator-backend/models"
)

// ResourceStore reads the full resource set for a request. The engine
// treats the store as an external collaborator and never caches records.
type ResourceStore interface {
	FetchAll(ctx context.Context) ([]models.Resource, error)
}

// MongoResourceStore reads resources from the MongoDB resources collection
// with an explicit query deadline. Exceeding the deadline is surfaced as a
// store-unavailable error, never a hang.
type MongoResourceStore struct {
	collection *mongo.Collection
	timeout    time.Duration
	log        *zap.Logger
}

// NewMongoResourceStore wraps the resources collection as a ResourceStore.
func NewMongoResourceStore(collection *mongo.Collection, timeout time.Duration, log *zap.Logger) *MongoResourceStore {
	return &MongoResourceStore{
		collection: collection,
		timeout:    timeout,
		log:        log,
	}
}

// FetchAll returns every resource record (empty filter).
func (s *MongoResourceStore) FetchAll(ctx context.Context) ([]models.Resource, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		s.log.Error("resource store query failed", zap.Error(err))
		return nil, apperrors.NewStoreUnavailableError(err)
	}
	defer cursor.Close(ctx)

	var resources []models.Resource
	if err := cursor.All(ctx, &resources); err != nil {
		s.log.Error("resource store decode failed", zap.Error(err))
		return nil, apperrors.NewStoreUnavailableError(err)
	}

	return resources, nil
}

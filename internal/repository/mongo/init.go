package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/you-humble/knowledge-archive/internal/model"
)

type BatchCreator interface {
	Counts(ctx context.Context) (cars, parts int64, err error)
	UpsertBatch(ctx context.Context, ds model.Dataset) error
}

// Bootstrap seeds the database with ds unless an earlier seed completed.
// UpsertBatch writes parts before cars, so a seed is complete once there is
// at least one part and no fewer cars than ds holds. Anything short of that
// is an interrupted seed and is written again; upserts make the rerun safe.
func Bootstrap(ctx context.Context, c BatchCreator, ds model.Dataset) (bool, error) {
	const op = "repository.Bootstrap"

	cars, parts, err := c.Counts(ctx)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	if parts > 0 && cars >= int64(len(ds.Cars)) {
		return false, nil
	}

	if err := c.UpsertBatch(ctx, ds); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return true, nil
}

// EnsureIndexes backs the position sort of Dataset.
func EnsureIndexes(ctx context.Context, cars, parts *mongo.Collection) error {
	byPosition := mongo.IndexModel{Keys: bson.D{{Key: "position", Value: 1}}}

	if _, err := cars.Indexes().CreateOne(ctx, byPosition, options.CreateIndexes()); err != nil {
		return fmt.Errorf("cars indexes: %w", err)
	}
	if _, err := parts.Indexes().CreateOne(ctx, byPosition, options.CreateIndexes()); err != nil {
		return fmt.Errorf("parts indexes: %w", err)
	}

	return nil
}

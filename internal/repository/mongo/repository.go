package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/you-humble/knowledge-archive/internal/model"
)

type repository struct {
	cars  *mongo.Collection
	parts *mongo.Collection
}

func NewCatalogRepository(cars, parts *mongo.Collection) *repository {
	return &repository{cars: cars, parts: parts}
}

// Dataset reads both collections in definition (position) order.
func (r *repository) Dataset(ctx context.Context) (model.Dataset, error) {
	const op = "repository.Dataset"

	byPosition := options.Find().SetSort(bson.D{{Key: "position", Value: 1}})

	var cars []*CarEntity
	if err := findAll(ctx, r.cars, byPosition, &cars); err != nil {
		return model.Dataset{}, fmt.Errorf("%s cars: %w", op, err)
	}

	var parts []*PartEntity
	if err := findAll(ctx, r.parts, byPosition, &parts); err != nil {
		return model.Dataset{}, fmt.Errorf("%s parts: %w", op, err)
	}

	ds := model.Dataset{
		Cars:  make([]*model.Car, 0, len(cars)),
		Parts: make([]*model.Part, 0, len(parts)),
	}
	for _, e := range cars {
		ds.Cars = append(ds.Cars, CarEntityToModel(e))
	}
	for _, e := range parts {
		ds.Parts = append(ds.Parts, PartEntityToModel(e))
	}

	return ds, nil
}

func (r *repository) Counts(ctx context.Context) (cars, parts int64, err error) {
	const op = "repository.Counts"

	if cars, err = r.cars.CountDocuments(ctx, bson.M{}); err != nil {
		return 0, 0, fmt.Errorf("%s cars: %w", op, err)
	}
	if parts, err = r.parts.CountDocuments(ctx, bson.M{}); err != nil {
		return 0, 0, fmt.Errorf("%s parts: %w", op, err)
	}
	return cars, parts, nil
}

// UpsertBatch replaces every document of ds by _id, parts first. Running it
// again over a partial write converges on ds.
func (r *repository) UpsertBatch(ctx context.Context, ds model.Dataset) error {
	const op = "repository.UpsertBatch"

	parts := make([]mongo.WriteModel, 0, len(ds.Parts))
	for i, p := range ds.Parts {
		if p == nil {
			continue
		}
		if p.ID == "" {
			return fmt.Errorf("%s: part #%d: empty id", op, i)
		}
		parts = append(parts, upsertByID(p.ID, PartEntityFromModel(p, i)))
	}

	cars := make([]mongo.WriteModel, 0, len(ds.Cars))
	for i, c := range ds.Cars {
		if c == nil {
			continue
		}
		if c.ID == "" {
			return fmt.Errorf("%s: car #%d: empty id", op, i)
		}
		cars = append(cars, upsertByID(c.ID, CarEntityFromModel(c, i)))
	}

	if err := bulkWrite(ctx, r.parts, parts); err != nil {
		return fmt.Errorf("%s parts: %w", op, err)
	}
	if err := bulkWrite(ctx, r.cars, cars); err != nil {
		return fmt.Errorf("%s cars: %w", op, err)
	}

	return nil
}

func upsertByID(id string, doc any) mongo.WriteModel {
	return mongo.NewReplaceOneModel().
		SetFilter(bson.D{{Key: "_id", Value: id}}).
		SetReplacement(doc).
		SetUpsert(true)
}

func bulkWrite(ctx context.Context, coll *mongo.Collection, models []mongo.WriteModel) error {
	if len(models) == 0 {
		return nil
	}
	_, err := coll.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(true))
	return err
}

func findAll[T any](
	ctx context.Context,
	coll *mongo.Collection,
	opts *options.FindOptionsBuilder,
	out *[]T,
) error {
	cur, err := coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return err
	}
	// All closes the cursor.
	return cur.All(ctx, out)
}

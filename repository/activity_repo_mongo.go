package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mptransport/models"
)

const activityCollection = "activity"

type MongoActivityRepo struct {
	DB       *mongo.Client
	Database string
}

func NewMongoActivityRepo(db *mongo.Client, database string) *MongoActivityRepo {
	return &MongoActivityRepo{DB: db, Database: database}
}

func (r *MongoActivityRepo) collection() *mongo.Collection {
	return r.DB.Database(r.Database).Collection(activityCollection)
}

func (r *MongoActivityRepo) Record(ctx context.Context, a *models.Activity) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.At.IsZero() {
		a.At = time.Now().UTC()
	}
	if _, err := r.collection().InsertOne(ctx, a); err != nil {
		return fmt.Errorf("record activity: %w", err)
	}
	return nil
}

func (r *MongoActivityRepo) List(ctx context.Context, entity, identifier string, limit int) ([]*models.Activity, error) {
	filter := bson.M{}
	if entity != "" {
		filter["entity"] = entity
	}
	if identifier != "" {
		filter["identifier"] = identifier
	}
	opts := options.Find().SetSort(bson.D{{Key: "at", Value: -1}}).SetLimit(int64(limit))

	cur, err := r.collection().Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	defer cur.Close(ctx)

	list := []*models.Activity{}
	if err := cur.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("decode activity: %w", err)
	}
	return list, nil
}

package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/charhateom/qrakhsa/model"
)

type AlertRepo struct {
	col *mongo.Collection
}

func NewAlertRepo(db *mongo.Database) *AlertRepo {
	return &AlertRepo{col: db.Collection("sos_alerts")}
}

// Insert appends one alert. There is no dedup: two raises in quick succession
// are two records, and that is the intended behavior.
func (r *AlertRepo) Insert(ctx context.Context, a *model.SOSAlert) error {
	res, err := r.col.InsertOne(ctx, a)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		a.ID = oid
	}
	return nil
}

// List returns all alerts newest first.
func (r *AlertRepo) List(ctx context.Context) ([]model.SOSAlert, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var alerts []model.SOSAlert
	if err := cursor.All(ctx, &alerts); err != nil {
		return nil, err
	}
	return alerts, nil
}

// Delete resolves an alert by removing it outright. Resolution keeps no
// history; a second delete of the same id reports ErrNotFound.
func (r *AlertRepo) Delete(ctx context.Context, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

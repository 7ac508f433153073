// Package bootstrap creates the indexes the app relies on. Run once at
// startup; index creation is idempotent on the server side.
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// EnsureIndexes builds the unique username indexes that back the
// duplicate-username checks, plus the sort index for the alert list.
func EnsureIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	unique := options.Index().SetUnique(true)

	if _, err := db.Collection("employees").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: unique,
	}); err != nil {
		return fmt.Errorf("employees username index: %w", err)
	}

	if _, err := db.Collection("admins").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: unique,
	}); err != nil {
		return fmt.Errorf("admins username index: %w", err)
	}

	// The admin dashboard always reads alerts newest-first.
	if _, err := db.Collection("sos_alerts").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "timestamp", Value: -1}},
	}); err != nil {
		return fmt.Errorf("sos_alerts timestamp index: %w", err)
	}

	return nil
}

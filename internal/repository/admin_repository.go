package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/charhateom/qrakhsa/model"
)

type AdminRepo struct {
	col *mongo.Collection
}

func NewAdminRepo(db *mongo.Database) *AdminRepo {
	return &AdminRepo{col: db.Collection("admins")}
}

func (r *AdminRepo) Insert(ctx context.Context, a *model.Admin) error {
	res, err := r.col.InsertOne(ctx, a)
	if err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicateUsername
		}
		return err
	}
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		a.ID = oid
	}
	return nil
}

func (r *AdminRepo) FindByUsername(ctx context.Context, username string) (*model.Admin, error) {
	var a model.Admin
	if err := r.col.FindOne(ctx, bson.M{"username": username}).Decode(&a); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

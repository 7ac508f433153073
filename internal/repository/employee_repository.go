package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/charhateom/qrakhsa/model"
)

type EmployeeRepo struct {
	col *mongo.Collection
}

func NewEmployeeRepo(db *mongo.Database) *EmployeeRepo {
	return &EmployeeRepo{col: db.Collection("employees")}
}

// Insert stores a new employee. Username uniqueness is enforced by the unique
// index; a duplicate comes back as ErrDuplicateUsername.
func (r *EmployeeRepo) Insert(ctx context.Context, e *model.Employee) error {
	res, err := r.col.InsertOne(ctx, e)
	if err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicateUsername
		}
		return err
	}
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		e.ID = oid
	}
	return nil
}

// FindByID treats a malformed hex id the same as an absent one: the caller
// asked for an employee that does not exist.
func (r *EmployeeRepo) FindByID(ctx context.Context, id string) (*model.Employee, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var e model.Employee
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&e); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *EmployeeRepo) FindByUsername(ctx context.Context, username string) (*model.Employee, error) {
	var e model.Employee
	if err := r.col.FindOne(ctx, bson.M{"username": username}).Decode(&e); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

// Update replaces the whole document. Edit semantics are full-replace, not
// patch: omitted contacts or conditions are gone after this call.
func (r *EmployeeRepo) Update(ctx context.Context, e *model.Employee) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": e.ID}, e)
	if err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicateUsername
		}
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// SetQRCode caches the generated QR payload on an existing document.
func (r *EmployeeRepo) SetQRCode(ctx context.Context, id bson.ObjectID, qr string) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"qr_code": qr}})
	return err
}

// Delete removes an employee. A missing id is not an error: the admin's goal
// state (employee gone) already holds. Alerts referencing the employee are
// left in place.
func (r *EmployeeRepo) Delete(ctx context.Context, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	_, err = r.col.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}

func (r *EmployeeRepo) List(ctx context.Context) ([]model.Employee, error) {
	cursor, err := r.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var employees []model.Employee
	if err := cursor.All(ctx, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

func isDuplicateKey(err error) bool {
	var we mongo.WriteException
	if errors.As(err, &we) && len(we.WriteErrors) > 0 && we.WriteErrors[0].Code == 11000 {
		return true
	}
	return false
}

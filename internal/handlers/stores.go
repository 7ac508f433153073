package handlers

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/charhateom/qrakhsa/internal/auth"
	"github.com/charhateom/qrakhsa/model"
)

// Store interfaces are declared here, on the consuming side; the Mongo
// repositories satisfy them and the handler tests swap in memory fakes.

type EmployeeStore interface {
	Insert(ctx context.Context, e *model.Employee) error
	FindByID(ctx context.Context, id string) (*model.Employee, error)
	FindByUsername(ctx context.Context, username string) (*model.Employee, error)
	Update(ctx context.Context, e *model.Employee) error
	SetQRCode(ctx context.Context, id bson.ObjectID, qr string) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]model.Employee, error)
}

type AdminStore interface {
	Insert(ctx context.Context, a *model.Admin) error
	FindByUsername(ctx context.Context, username string) (*model.Admin, error)
}

type AlertStore interface {
	List(ctx context.Context) ([]model.SOSAlert, error)
	Delete(ctx context.Context, id string) error
}

type SOSRaiser interface {
	Raise(ctx context.Context, employeeID string) (*model.SOSAlert, error)
}

type TokenIssuer interface {
	Issue(p auth.Principal) (string, error)
}

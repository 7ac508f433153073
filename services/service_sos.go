package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/charhateom/qrakhsa/internal/notify"
	"github.com/charhateom/qrakhsa/model"
)

type EmployeeFinder interface {
	FindByID(ctx context.Context, id string) (*model.Employee, error)
}

type AlertStore interface {
	Insert(ctx context.Context, a *model.SOSAlert) error
}

// SOSService raises alerts: look up the employee, append an alert record with
// a name snapshot, then text the first emergency contact.
type SOSService struct {
	employees EmployeeFinder
	alerts    AlertStore
	notifier  notify.Notifier
	logger    *zap.Logger
}

func NewSOSService(employees EmployeeFinder, alerts AlertStore, notifier notify.Notifier, logger *zap.Logger) *SOSService {
	return &SOSService{employees: employees, alerts: alerts, notifier: notifier, logger: logger}
}

// Raise creates one alert for employeeID. The lookup and the insert are two
// store operations, not a transaction: an employee deleted in between leaves
// an alert whose employeeId no longer resolves, which the admin view
// tolerates. No dedup either; every call is a new record.
func (s *SOSService) Raise(ctx context.Context, employeeID string) (*model.SOSAlert, error) {
	employee, err := s.employees.FindByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	alert := &model.SOSAlert{
		EmployeeID:   employee.ID.Hex(),
		EmployeeName: employee.Name,
		Timestamp:    time.Now().UTC(),
	}
	if err := s.alerts.Insert(ctx, alert); err != nil {
		return nil, err
	}

	// Notification is fire-and-forget: a down SMS provider must not turn a
	// logged alert into a 500. Detached from the request context on purpose.
	if len(employee.EmergencyContacts) > 0 {
		contact := employee.EmergencyContacts[0]
		msg := notify.SOSMessage(employee.Name, contact.Phone)
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			if err := s.notifier.Send(ctx, contact.Phone, msg); err != nil {
				s.logger.Error("sos notification failed",
					zap.String("employee_id", alert.EmployeeID),
					zap.Error(err),
				)
			}
		}()
	}

	return alert, nil
}

package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// SOSAlert is one emergency signal raised on behalf of an employee.
// EmployeeName is a snapshot taken at raise time; it is not kept in sync with
// later renames. There is no persisted status: resolving an alert deletes it.
type SOSAlert struct {
	ID           bson.ObjectID `json:"id"           bson:"_id,omitempty"`
	EmployeeID   string        `json:"employeeId"   bson:"employee_id"`
	EmployeeName string        `json:"employeeName" bson:"employee_name"`
	Timestamp    time.Time     `json:"timestamp"    bson:"timestamp"`
}

package dto

import (
	"time"

	"github.com/charhateom/qrakhsa/model"
)

// AlertResponse is the wire shape of one alert. Status is always "active":
// resolved alerts are deleted, never returned.
type AlertResponse struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employeeId"`
	EmployeeName string    `json:"employeeName"`
	Timestamp    time.Time `json:"timestamp"`
	Status       string    `json:"status"`
}

func AlertFromModel(a model.SOSAlert) AlertResponse {
	return AlertResponse{
		ID:           a.ID.Hex(),
		EmployeeID:   a.EmployeeID,
		EmployeeName: a.EmployeeName,
		Timestamp:    a.Timestamp,
		Status:       "active",
	}
}

func AlertsFromModels(alerts []model.SOSAlert) []AlertResponse {
	out := make([]AlertResponse, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, AlertFromModel(a))
	}
	return out
}

package dto

import (
	"errors"
	"strings"

	"github.com/charhateom/qrakhsa/model"
)

// RegisterEmployeeDTO is the body of POST /api/employees/register.
// The same shape (minus the password requirement) is reused by the edit route.
type RegisterEmployeeDTO struct {
	Username          string                   `json:"username"`
	Name              string                   `json:"name"`
	BloodType         string                   `json:"bloodType"`
	Department        string                   `json:"department"`
	EmergencyContacts []model.EmergencyContact `json:"emergencyContacts"`
	MedicalConditions []string                 `json:"medicalConditions"`
	Password          string                   `json:"password"`
}

// Validate checks the fields every write path requires. requirePassword is
// false on edit, where an empty password means "keep the old one".
func (d RegisterEmployeeDTO) Validate(requirePassword bool) error {
	if strings.TrimSpace(d.Username) == "" ||
		strings.TrimSpace(d.Name) == "" ||
		strings.TrimSpace(d.BloodType) == "" ||
		strings.TrimSpace(d.Department) == "" {
		return errors.New("all fields are required, and emergencyContacts must be a non-empty array")
	}
	if requirePassword && strings.TrimSpace(d.Password) == "" {
		return errors.New("all fields are required, and emergencyContacts must be a non-empty array")
	}
	if len(d.EmergencyContacts) == 0 {
		return errors.New("all fields are required, and emergencyContacts must be a non-empty array")
	}
	for _, c := range d.EmergencyContacts {
		if c.Name == "" || c.Relationship == "" || c.Phone == "" {
			return errors.New("each emergency contact must have 'name', 'relationship', and 'phone' fields")
		}
	}
	return nil
}

type EmployeeResponse struct {
	Message  string          `json:"message"`
	Employee *model.Employee `json:"employee"`
}

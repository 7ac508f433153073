package model

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// EmergencyContact is one person to call when the badge owner is in trouble.
type EmergencyContact struct {
	Name         string `json:"name"         bson:"name"`
	Relationship string `json:"relationship" bson:"relationship"`
	Phone        string `json:"phone"        bson:"phone"`
}

type Employee struct {
	ID                bson.ObjectID      `json:"id"                bson:"_id,omitempty"`
	Username          string             `json:"username"          bson:"username"`
	Name              string             `json:"name"              bson:"name"`
	BloodType         string             `json:"bloodType"         bson:"blood_type"`
	Department        string             `json:"department"        bson:"department"`
	EmergencyContacts []EmergencyContact `json:"emergencyContacts" bson:"emergency_contacts"`
	MedicalConditions []string           `json:"medicalConditions" bson:"medical_conditions"`
	// QRCode caches the data-URL of the public profile QR so the badge can be
	// re-printed without re-encoding.
	QRCode       string `json:"qrCode"   bson:"qr_code"`
	PasswordHash string `json:"-"        bson:"password"`
}

package model

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

type Admin struct {
	ID           bson.ObjectID `json:"id"       bson:"_id,omitempty"`
	Username     string        `json:"username" bson:"username"`
	PasswordHash string        `json:"-"        bson:"password"`
}

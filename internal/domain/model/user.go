// Package model defines user-related domain entities.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents an account that may manage the catalog.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string             `bson:"email" json:"email"`
	Username  string             `bson:"username" json:"username"`
	Password  string             `bson:"password" json:"-"` // Never serialize password
	Name      string             `bson:"name" json:"name"`
	Admin     bool               `bson:"admin" json:"admin"`
	Active    bool               `bson:"active" json:"active"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

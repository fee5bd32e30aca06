package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Car struct {
	Id                 primitive.ObjectID `json:"_id" bson:"_id"`
	Model              string             `json:"model" bson:"model"`
	DailyPrice         float64            `json:"dailyPrice" bson:"dailyPrice"`
	Availability       bool               `json:"availability" bson:"availability"`
	RegistrationNumber string             `json:"registrationNumber" bson:"registrationNumber"`
	Features           []string           `json:"features" bson:"features"`
	Description        string             `json:"description" bson:"description"`
	Image              string             `json:"image" bson:"image"`
	Location           string             `json:"location" bson:"location"`
	Email              string             `json:"email" bson:"email"`
	DateAdded          time.Time          `json:"dateAdded" bson:"dateAdded"`
	BookingCount       int                `json:"bookingCount" bson:"bookingCount"`
}

// CarUpdate carries a partial car. Nil fields are left out of the $set.
type CarUpdate struct {
	Model              *string   `json:"model,omitempty" bson:"model,omitempty"`
	DailyPrice         *float64  `json:"dailyPrice,omitempty" bson:"dailyPrice,omitempty"`
	Availability       *bool     `json:"availability,omitempty" bson:"availability,omitempty"`
	RegistrationNumber *string   `json:"registrationNumber,omitempty" bson:"registrationNumber,omitempty"`
	Features           *[]string `json:"features,omitempty" bson:"features,omitempty"`
	Description        *string   `json:"description,omitempty" bson:"description,omitempty"`
	Image              *string   `json:"image,omitempty" bson:"image,omitempty"`
	Location           *string   `json:"location,omitempty" bson:"location,omitempty"`
	Email              *string   `json:"email,omitempty" bson:"email,omitempty"`
}

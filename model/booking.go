package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusConfirmed = "confirmed"
	StatusCanceled  = "canceled"
)

// Booking references its car by the hex form of the car id.
type Booking struct {
	Id          primitive.ObjectID `json:"_id" bson:"_id"`
	CarId       string             `json:"carId" bson:"carId"`
	Email       string             `json:"email" bson:"email"`
	BookingDate string             `json:"bookingDate" bson:"bookingDate"`
	Status      string             `json:"status" bson:"status"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	Model       string             `json:"model,omitempty" bson:"model,omitempty"`
	Image       string             `json:"image,omitempty" bson:"image,omitempty"`
	DailyPrice  float64            `json:"dailyPrice,omitempty" bson:"dailyPrice,omitempty"`
}

type BookingUpdate struct {
	CarId       *string  `json:"carId,omitempty" bson:"carId,omitempty"`
	Email       *string  `json:"email,omitempty" bson:"email,omitempty"`
	BookingDate *string  `json:"bookingDate,omitempty" bson:"bookingDate,omitempty"`
	Status      *string  `json:"status,omitempty" bson:"status,omitempty"`
	Model       *string  `json:"model,omitempty" bson:"model,omitempty"`
	Image       *string  `json:"image,omitempty" bson:"image,omitempty"`
	DailyPrice  *float64 `json:"dailyPrice,omitempty" bson:"dailyPrice,omitempty"`
}

package database

import (
	"context"

	"car-rental/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (s *Store) InsertBooking(ctx context.Context, booking model.Booking) (*mongo.InsertOneResult, error) {
	return s.bookings.InsertOne(ctx, booking)
}

func (s *Store) BookingsByRenter(ctx context.Context, email string) ([]model.Booking, error) {
	return findAll[model.Booking](ctx, s.bookings, bson.D{{Key: "email", Value: email}})
}

func (s *Store) ConfirmedBookings(ctx context.Context, email string) ([]model.Booking, error) {
	filter := bson.D{
		{Key: "email", Value: email},
		{Key: "status", Value: model.StatusConfirmed},
	}
	return findAll[model.Booking](ctx, s.bookings, filter)
}

func (s *Store) UpdateBooking(ctx context.Context, id primitive.ObjectID, update model.BookingUpdate) (*mongo.UpdateResult, error) {
	return s.setBookingFields(ctx, id, update)
}

func (s *Store) SetBookingStatus(ctx context.Context, id primitive.ObjectID, status string) (*mongo.UpdateResult, error) {
	return s.setBookingFields(ctx, id, bson.D{{Key: "status", Value: status}})
}

func (s *Store) SetBookingDate(ctx context.Context, id primitive.ObjectID, date string) (*mongo.UpdateResult, error) {
	return s.setBookingFields(ctx, id, bson.D{{Key: "bookingDate", Value: date}})
}

func (s *Store) setBookingFields(ctx context.Context, id primitive.ObjectID, fields interface{}) (*mongo.UpdateResult, error) {
	return s.bookings.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: fields}},
		options.Update().SetUpsert(true))
}

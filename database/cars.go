package database

import (
	"context"
	"regexp"

	"car-rental/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (s *Store) AllCars(ctx context.Context) ([]model.Car, error) {
	return findAll[model.Car](ctx, s.cars, bson.D{})
}

func (s *Store) AvailableCars(ctx context.Context) ([]model.Car, error) {
	return findAll[model.Car](ctx, s.cars, bson.D{{Key: "availability", Value: true}})
}

// SearchCars matches term case-insensitively at the start of any word of the
// location. Only available cars are returned.
func (s *Store) SearchCars(ctx context.Context, term string) ([]model.Car, error) {
	filter := bson.D{
		{Key: "location", Value: primitive.Regex{Pattern: `\b` + regexp.QuoteMeta(term), Options: "i"}},
		{Key: "availability", Value: true},
	}
	return findAll[model.Car](ctx, s.cars, filter)
}

func (s *Store) LatestCars(ctx context.Context, limit int64) ([]model.Car, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "dateAdded", Value: -1}}).
		SetLimit(limit)
	return findAll[model.Car](ctx, s.cars, bson.D{}, opts)
}

func (s *Store) CarByID(ctx context.Context, id primitive.ObjectID) ([]model.Car, error) {
	return findAll[model.Car](ctx, s.cars, bson.D{{Key: "_id", Value: id}})
}

func (s *Store) CarsByOwner(ctx context.Context, email string) ([]model.Car, error) {
	return findAll[model.Car](ctx, s.cars, bson.D{{Key: "email", Value: email}})
}

func (s *Store) InsertCar(ctx context.Context, car model.Car) (*mongo.InsertOneResult, error) {
	return s.cars.InsertOne(ctx, car)
}

// UpdateCar sets the supplied fields. A missing id inserts a new partial
// document.
func (s *Store) UpdateCar(ctx context.Context, id primitive.ObjectID, update model.CarUpdate) (*mongo.UpdateResult, error) {
	return s.cars.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: update}},
		options.Update().SetUpsert(true))
}

func (s *Store) IncrementBookingCount(ctx context.Context, id primitive.ObjectID, delta int) (*mongo.UpdateResult, error) {
	return s.cars.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$inc", Value: bson.D{{Key: "bookingCount", Value: delta}}}})
}

// DeleteCar removes the car and then every booking referencing it. The
// returned result describes the car deletion only.
func (s *Store) DeleteCar(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	result, err := s.cars.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return nil, err
	}

	if _, err := s.bookings.DeleteMany(ctx, bson.D{{Key: "carId", Value: id.Hex()}}); err != nil {
		return nil, err
	}
	return result, nil
}

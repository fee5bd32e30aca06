package router

import (
	"context"
	"sort"
	"strings"
	"sync"

	"car-rental/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// memStore mirrors the database package against in-memory maps.
type memStore struct {
	mu       sync.Mutex
	cars     map[primitive.ObjectID]model.Car
	bookings map[primitive.ObjectID]model.Booking
}

func newMemStore() *memStore {
	return &memStore{
		cars:     map[primitive.ObjectID]model.Car{},
		bookings: map[primitive.ObjectID]model.Booking{},
	}
}

func (s *memStore) filterCars(keep func(model.Car) bool) []model.Car {
	s.mu.Lock()
	defer s.mu.Unlock()
	cars := []model.Car{}
	for _, car := range s.cars {
		if keep(car) {
			cars = append(cars, car)
		}
	}
	sort.Slice(cars, func(i, j int) bool { return cars[i].DateAdded.After(cars[j].DateAdded) })
	return cars
}

func (s *memStore) filterBookings(keep func(model.Booking) bool) []model.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	bookings := []model.Booking{}
	for _, booking := range s.bookings {
		if keep(booking) {
			bookings = append(bookings, booking)
		}
	}
	return bookings
}

func (s *memStore) AllCars(ctx context.Context) ([]model.Car, error) {
	return s.filterCars(func(model.Car) bool { return true }), nil
}

func (s *memStore) AvailableCars(ctx context.Context) ([]model.Car, error) {
	return s.filterCars(func(car model.Car) bool { return car.Availability }), nil
}

func (s *memStore) SearchCars(ctx context.Context, term string) ([]model.Car, error) {
	term = strings.ToLower(term)
	return s.filterCars(func(car model.Car) bool {
		if !car.Availability {
			return false
		}
		for _, word := range strings.Fields(strings.ToLower(car.Location)) {
			if strings.HasPrefix(word, term) {
				return true
			}
		}
		return false
	}), nil
}

func (s *memStore) LatestCars(ctx context.Context, limit int64) ([]model.Car, error) {
	cars := s.filterCars(func(model.Car) bool { return true })
	if int64(len(cars)) > limit {
		cars = cars[:limit]
	}
	return cars, nil
}

func (s *memStore) CarByID(ctx context.Context, id primitive.ObjectID) ([]model.Car, error) {
	return s.filterCars(func(car model.Car) bool { return car.Id == id }), nil
}

func (s *memStore) CarsByOwner(ctx context.Context, email string) ([]model.Car, error) {
	return s.filterCars(func(car model.Car) bool { return car.Email == email }), nil
}

func (s *memStore) InsertCar(ctx context.Context, car model.Car) (*mongo.InsertOneResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cars[car.Id] = car
	return &mongo.InsertOneResult{InsertedID: car.Id}, nil
}

func (s *memStore) UpdateCar(ctx context.Context, id primitive.ObjectID, update model.CarUpdate) (*mongo.UpdateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	car, found := s.cars[id]
	car.Id = id
	if update.Model != nil {
		car.Model = *update.Model
	}
	if update.DailyPrice != nil {
		car.DailyPrice = *update.DailyPrice
	}
	if update.Availability != nil {
		car.Availability = *update.Availability
	}
	if update.Location != nil {
		car.Location = *update.Location
	}
	if update.Email != nil {
		car.Email = *update.Email
	}
	s.cars[id] = car
	if !found {
		return &mongo.UpdateResult{UpsertedCount: 1, UpsertedID: id}, nil
	}
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (s *memStore) IncrementBookingCount(ctx context.Context, id primitive.ObjectID, delta int) (*mongo.UpdateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	car, found := s.cars[id]
	if !found {
		return &mongo.UpdateResult{}, nil
	}
	car.BookingCount += delta
	s.cars[id] = car
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (s *memStore) DeleteCar(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := &mongo.DeleteResult{}
	if _, found := s.cars[id]; found {
		delete(s.cars, id)
		result.DeletedCount = 1
	}
	for bookingID, booking := range s.bookings {
		if booking.CarId == id.Hex() {
			delete(s.bookings, bookingID)
		}
	}
	return result, nil
}

func (s *memStore) InsertBooking(ctx context.Context, booking model.Booking) (*mongo.InsertOneResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings[booking.Id] = booking
	return &mongo.InsertOneResult{InsertedID: booking.Id}, nil
}

func (s *memStore) BookingsByRenter(ctx context.Context, email string) ([]model.Booking, error) {
	return s.filterBookings(func(b model.Booking) bool { return b.Email == email }), nil
}

func (s *memStore) ConfirmedBookings(ctx context.Context, email string) ([]model.Booking, error) {
	return s.filterBookings(func(b model.Booking) bool {
		return b.Email == email && b.Status == model.StatusConfirmed
	}), nil
}

func (s *memStore) setBooking(id primitive.ObjectID, apply func(*model.Booking)) *mongo.UpdateResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	booking, found := s.bookings[id]
	booking.Id = id
	apply(&booking)
	s.bookings[id] = booking
	if !found {
		return &mongo.UpdateResult{UpsertedCount: 1, UpsertedID: id}
	}
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}
}

func (s *memStore) UpdateBooking(ctx context.Context, id primitive.ObjectID, update model.BookingUpdate) (*mongo.UpdateResult, error) {
	return s.setBooking(id, func(b *model.Booking) {
		if update.BookingDate != nil {
			b.BookingDate = *update.BookingDate
		}
		if update.Status != nil {
			b.Status = *update.Status
		}
		if update.CarId != nil {
			b.CarId = *update.CarId
		}
		if update.Email != nil {
			b.Email = *update.Email
		}
	}), nil
}

func (s *memStore) SetBookingStatus(ctx context.Context, id primitive.ObjectID, status string) (*mongo.UpdateResult, error) {
	return s.setBooking(id, func(b *model.Booking) { b.Status = status }), nil
}

func (s *memStore) SetBookingDate(ctx context.Context, id primitive.ObjectID, date string) (*mongo.UpdateResult, error) {
	return s.setBooking(id, func(b *model.Booking) { b.BookingDate = date }), nil
}

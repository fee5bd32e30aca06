package handlers

import (
	"context"

	"car-rental/model"
	"car-rental/token"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const greeting = "Aura Drive: Your gateway to premium car rentals, offering a seamless experience to explore, rent, and enjoy luxury and performance vehicles. Drive the extraordinary with ease."

const latestCarsLimit int64 = 6

type CarStore interface {
	AllCars(ctx context.Context) ([]model.Car, error)
	AvailableCars(ctx context.Context) ([]model.Car, error)
	SearchCars(ctx context.Context, term string) ([]model.Car, error)
	LatestCars(ctx context.Context, limit int64) ([]model.Car, error)
	CarByID(ctx context.Context, id primitive.ObjectID) ([]model.Car, error)
	CarsByOwner(ctx context.Context, email string) ([]model.Car, error)
	InsertCar(ctx context.Context, car model.Car) (*mongo.InsertOneResult, error)
	UpdateCar(ctx context.Context, id primitive.ObjectID, update model.CarUpdate) (*mongo.UpdateResult, error)
	IncrementBookingCount(ctx context.Context, id primitive.ObjectID, delta int) (*mongo.UpdateResult, error)
	DeleteCar(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
}

type BookingStore interface {
	InsertBooking(ctx context.Context, booking model.Booking) (*mongo.InsertOneResult, error)
	BookingsByRenter(ctx context.Context, email string) ([]model.Booking, error)
	ConfirmedBookings(ctx context.Context, email string) ([]model.Booking, error)
	UpdateBooking(ctx context.Context, id primitive.ObjectID, update model.BookingUpdate) (*mongo.UpdateResult, error)
	SetBookingStatus(ctx context.Context, id primitive.ObjectID, status string) (*mongo.UpdateResult, error)
	SetBookingDate(ctx context.Context, id primitive.ObjectID, date string) (*mongo.UpdateResult, error)
}

type CookieOptions struct {
	Secure   bool
	SameSite string
}

// Handler serves every endpoint. Each method performs one store call and
// writes the store result back unchanged.
type Handler struct {
	cars     CarStore
	bookings BookingStore
	tokens   *token.Service
	cookie   CookieOptions
}

func New(cars CarStore, bookings BookingStore, tokens *token.Service, cookie CookieOptions) *Handler {
	return &Handler{
		cars:     cars,
		bookings: bookings,
		tokens:   tokens,
		cookie:   cookie,
	}
}

func (h *Handler) GetRoot(c *fiber.Ctx) error {
	return c.SendString(greeting)
}

func objectID(c *fiber.Ctx) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(c.Params("id"))
}

// reply writes a store result, or hands err to the app error handler.
func reply(c *fiber.Ctx, result interface{}, err error) error {
	if err != nil {
		return err
	}
	return c.JSON(result)
}

package router

import (
	"car-rental/handlers"
	"car-rental/middleware"
	"car-rental/token"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

type Deps struct {
	Handler      *handlers.Handler
	Tokens       *token.Service
	AllowOrigins string
	RateLimit    float64
	RateBurst    int
}

func SetupRoutes(app *fiber.App, deps Deps) {
	h := deps.Handler
	authorize := middleware.Authorize(deps.Tokens)
	owner := middleware.RequireOwner("email")

	api := app.Group("/", logger.New(), cors.New(cors.Config{
		AllowOrigins:     deps.AllowOrigins,
		AllowCredentials: true,
	}))
	api.Get("/", h.GetRoot)

	//Auth
	api.Post("/jwt", middleware.RateLimit(deps.RateLimit, deps.RateBurst), h.IssueToken)
	api.Post("/logout", h.Logout)

	//Cars
	api.Get("/allCars", h.GetAllCars)
	api.Get("/availableCars", h.GetAvailableCars)
	api.Get("/latestSix", h.GetLatestCars)
	api.Get("/cars/search", h.SearchCars)
	api.Get("/car/:id", h.GetCar)
	api.Get("/myCars", authorize, owner, h.GetMyCars)
	api.Post("/addCar", authorize, h.AddCar)
	// Car edits and deletes need a signed-in user but not the car's owner;
	// only the email-scoped reads compare identities.
	api.Patch("/updateCar/:id", authorize, h.UpdateCar)
	api.Patch("/updateBookingCount/:id", h.UpdateBookingCount)
	api.Delete("/deleteCar/:id", authorize, h.DeleteCar)

	//Bookings
	api.Post("/booking", authorize, h.CreateBooking)
	api.Get("/myBookings", authorize, owner, h.GetMyBookings)
	api.Get("/confirmed", authorize, owner, h.GetConfirmedBookings)
	api.Patch("/updateBooking/:id", authorize, h.UpdateBooking)
	api.Patch("/bookingStatus/:id", authorize, h.SetBookingStatus)
	api.Patch("/modifyDate/:id", authorize, h.ModifyBookingDate)
}

package handlers

import (
	"time"

	"car-rental/model"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (h *Handler) GetAllCars(c *fiber.Ctx) error {
	cars, err := h.cars.AllCars(c.UserContext())
	return reply(c, cars, err)
}

func (h *Handler) GetAvailableCars(c *fiber.Ctx) error {
	cars, err := h.cars.AvailableCars(c.UserContext())
	return reply(c, cars, err)
}

func (h *Handler) SearchCars(c *fiber.Ctx) error {
	cars, err := h.cars.SearchCars(c.UserContext(), c.Query("q"))
	return reply(c, cars, err)
}

func (h *Handler) GetLatestCars(c *fiber.Ctx) error {
	cars, err := h.cars.LatestCars(c.UserContext(), latestCarsLimit)
	return reply(c, cars, err)
}

func (h *Handler) GetCar(c *fiber.Ctx) error {
	id, err := objectID(c)
	if err != nil {
		return err
	}
	cars, err := h.cars.CarByID(c.UserContext(), id)
	return reply(c, cars, err)
}

func (h *Handler) GetMyCars(c *fiber.Ctx) error {
	cars, err := h.cars.CarsByOwner(c.UserContext(), c.Query("email"))
	return reply(c, cars, err)
}

func (h *Handler) AddCar(c *fiber.Ctx) error {
	newCar := new(model.Car)
	if err := c.BodyParser(newCar); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	newCar.Id = primitive.NewObjectID()
	if newCar.DateAdded.IsZero() {
		newCar.DateAdded = time.Now().UTC()
	}
	if newCar.Features == nil {
		newCar.Features = []string{}
	}

	result, err := h.cars.InsertCar(c.UserContext(), *newCar)
	return reply(c, result, err)
}

func (h *Handler) UpdateCar(c *fiber.Ctx) error {
	id, err := objectID(c)
	if err != nil {
		return err
	}
	update := new(model.CarUpdate)
	if err := c.BodyParser(update); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	result, err := h.cars.UpdateCar(c.UserContext(), id, *update)
	return reply(c, result, err)
}

// UpdateBookingCount applies the body's "inc" to the car's booking count.
// A missing body or inc field counts as one new booking.
func (h *Handler) UpdateBookingCount(c *fiber.Ctx) error {
	id, err := objectID(c)
	if err != nil {
		return err
	}
	var body struct {
		Inc *int `json:"inc"`
	}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
	}
	inc := 1
	if body.Inc != nil {
		inc = *body.Inc
	}

	result, err := h.cars.IncrementBookingCount(c.UserContext(), id, inc)
	return reply(c, result, err)
}

func (h *Handler) DeleteCar(c *fiber.Ctx) error {
	id, err := objectID(c)
	if err != nil {
		return err
	}
	result, err := h.cars.DeleteCar(c.UserContext(), id)
	return reply(c, result, err)
}

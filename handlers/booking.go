package handlers

import (
	"time"

	"car-rental/model"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (h *Handler) CreateBooking(c *fiber.Ctx) error {
	newBooking := new(model.Booking)
	if err := c.BodyParser(newBooking); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	newBooking.Id = primitive.NewObjectID()
	newBooking.CreatedAt = time.Now().UTC()
	if newBooking.Status == "" {
		newBooking.Status = model.StatusConfirmed
	}

	result, err := h.bookings.InsertBooking(c.UserContext(), *newBooking)
	return reply(c, result, err)
}

func (h *Handler) GetMyBookings(c *fiber.Ctx) error {
	bookings, err := h.bookings.BookingsByRenter(c.UserContext(), c.Query("email"))
	return reply(c, bookings, err)
}

func (h *Handler) GetConfirmedBookings(c *fiber.Ctx) error {
	bookings, err := h.bookings.ConfirmedBookings(c.UserContext(), c.Query("email"))
	return reply(c, bookings, err)
}

func (h *Handler) UpdateBooking(c *fiber.Ctx) error {
	id, err := objectID(c)
	if err != nil {
		return err
	}
	update := new(model.BookingUpdate)
	if err := c.BodyParser(update); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	result, err := h.bookings.UpdateBooking(c.UserContext(), id, *update)
	return reply(c, result, err)
}

func (h *Handler) SetBookingStatus(c *fiber.Ctx) error {
	id, err := objectID(c)
	if err != nil {
		return err
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	result, err := h.bookings.SetBookingStatus(c.UserContext(), id, body.Status)
	return reply(c, result, err)
}

func (h *Handler) ModifyBookingDate(c *fiber.Ctx) error {
	id, err := objectID(c)
	if err != nil {
		return err
	}
	var body struct {
		BookingDate string `json:"bookingDate"`
	}
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	result, err := h.bookings.SetBookingDate(c.UserContext(), id, body.BookingDate)
	return reply(c, result, err)
}

package errors

import (
	stderrors "errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
)

func RaiseError(context *fiber.Ctx, status int, message string, data string) error {
	return context.Status(status).JSON(fiber.Map{
		"status":  "error",
		"message": message,
		"data":    data})
}

func RaiseUnauthorizedError(context *fiber.Ctx, data string) error {
	return RaiseError(context, fiber.StatusUnauthorized, "unauthorized", data)
}

func RaiseForbiddenError(context *fiber.Ctx, data string) error {
	return RaiseError(context, fiber.StatusForbidden, "forbidden", data)
}

func RaiseInternalServerError(context *fiber.Ctx, data string) error {
	return RaiseError(context, fiber.StatusInternalServerError, "internal error", data)
}

func RaiseBadRequestError(context *fiber.Ctx, data string) error {
	return RaiseError(context, fiber.StatusBadRequest, "bad request", data)
}

func RaiseNotFoundError(context *fiber.Ctx, data string) error {
	return RaiseError(context, fiber.StatusNotFound, "resource not found", data)
}

func RaiseTooManyRequestsError(context *fiber.Ctx, data string) error {
	return RaiseError(context, fiber.StatusTooManyRequests, "too many requests", data)
}

// Handler is the app-wide fiber.ErrorHandler. Errors returned from handlers
// that are not *fiber.Error end up here as generic 500 failures.
func Handler(context *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if stderrors.As(err, &fiberErr) {
		switch fiberErr.Code {
		case fiber.StatusNotFound:
			return RaiseNotFoundError(context, fiberErr.Message)
		case fiber.StatusBadRequest:
			return RaiseBadRequestError(context, fiberErr.Message)
		default:
			return RaiseError(context, fiberErr.Code, "request failed", fiberErr.Message)
		}
	}

	slog.Error("request failed",
		"method", context.Method(),
		"path", context.Path(),
		"error", err)
	return RaiseInternalServerError(context, err.Error())
}

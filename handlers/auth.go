package handlers

import (
	"log/slog"
	"time"

	"car-rental/errors"
	"car-rental/token"

	"github.com/gofiber/fiber/v2"
)

// IssueToken signs a token for the posted email and hands it to the client
// as an httpOnly cookie.
func (h *Handler) IssueToken(c *fiber.Ctx) error {
	type Identity struct {
		Email string `json:"email"`
	}

	var identity = new(Identity)

	if err := c.BodyParser(identity); err != nil {
		return errors.RaiseBadRequestError(c, "identity payload expected")
	}

	signed, expiresAt, err := h.tokens.Issue(identity.Email)
	if err == token.ErrMissingIdentity {
		return errors.RaiseBadRequestError(c, err.Error())
	}
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     token.CookieName,
		Value:    signed,
		Expires:  expiresAt,
		HTTPOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: h.cookie.SameSite,
	})
	slog.Info("token issued", "email", identity.Email, "expires_at", expiresAt)

	return c.JSON(fiber.Map{"success": true})
}

func (h *Handler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     token.CookieName,
		Value:    "",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: h.cookie.SameSite,
	})
	return c.JSON(fiber.Map{"success": true})
}

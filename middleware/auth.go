package middleware

import (
	"log/slog"

	"car-rental/errors"
	"car-rental/token"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/golang-jwt/jwt/v4"
)

const (
	tokenKey    = "identity"
	identityKey = "email"
)

// Authorize rejects requests without a valid token cookie and attaches the
// verified email to the request for the handlers further down.
func Authorize(tokens *token.Service) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:     tokens.SigningKey(),
		SigningMethod:  "HS256",
		TokenLookup:    "cookie:" + token.CookieName,
		Claims:         &token.Claims{},
		ContextKey:     tokenKey,
		ErrorHandler:   jwtError,
		SuccessHandler: attachIdentity(tokens),
	})
}

func attachIdentity(tokens *token.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		parsed, ok := c.Locals(tokenKey).(*jwt.Token)
		if !ok {
			return errors.RaiseUnauthorizedError(c, "invalid token")
		}
		claims, ok := parsed.Claims.(*token.Claims)
		if !ok || tokens.Validate(claims) != nil {
			return errors.RaiseUnauthorizedError(c, "invalid token")
		}

		c.Locals(identityKey, claims.Email)
		return c.Next()
	}
}

func jwtError(c *fiber.Ctx, err error) error {
	if err.Error() == "Missing or malformed JWT" {
		return errors.RaiseUnauthorizedError(c, "missing token")
	}
	slog.Debug("token rejected", "path", c.Path(), "error", err)
	return errors.RaiseUnauthorizedError(c, "invalid token")
}

// Identity returns the email verified by Authorize, or "" on unguarded routes.
func Identity(c *fiber.Ctx) string {
	email, _ := c.Locals(identityKey).(string)
	return email
}

// RequireOwner answers 403 unless the verified identity equals the query
// parameter naming the resource owner. Must run after Authorize.
func RequireOwner(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity := Identity(c)
		if identity == "" || identity != c.Query(param) {
			slog.Info("ownership check failed", "path", c.Path(), "identity", identity, "requested", c.Query(param))
			return errors.RaiseForbiddenError(c, "identity mismatch")
		}
		return c.Next()
	}
}

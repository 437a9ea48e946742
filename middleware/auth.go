package middleware

import (
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/golang-jwt/jwt/v4"

	"conference-central/model"
)

const identityKey = "identity"

// Authorize validates the bearer JWT and stores the parsed token under
// the identity context key.
func Authorize(secret string) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(secret),
		ErrorHandler: jwtError,
		ContextKey:   identityKey,
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	if err.Error() == "Missing or malformed JWT" {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"status": "error", "message": "Missing or malformed JWT", "data": nil})
	}
	return c.Status(fiber.StatusUnauthorized).
		JSON(fiber.Map{"status": "error", "message": "Invalid or expired JWT", "data": nil})
}

// Identity extracts the resolved caller identity from the request's JWT
// claims. The zero Identity means the route ran without Authorize.
func Identity(c *fiber.Ctx) model.Identity {
	token, ok := c.Locals(identityKey).(*jwt.Token)
	if !ok {
		return model.Identity{}
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.Identity{}
	}
	return model.Identity{
		UserID:      claimString(claims, "user_id"),
		Email:       claimString(claims, "email"),
		DisplayName: claimString(claims, "name"),
	}
}

func claimString(claims jwt.MapClaims, key string) string {
	if val, ok := claims[key].(string); ok {
		return val
	}
	return ""
}

package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"feed_workspace/model"
	"feed_workspace/services"
)

// UserResolver turns an access token into the user that owns it.
type UserResolver func(c *fiber.Ctx, token string) (model.User, error)

// Auth reads the access token from the cookie (the original client
// contract) or an Authorization: Bearer header, validates the JWT
// signature and resolves the caller. No token means anonymous and the
// request passes through; a bad token is rejected outright instead of
// failing later with a nil caller.
func Auth(secret, cookieName string, resolve UserResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(cookieName)
		if token == "" {
			auth := c.Get("Authorization")
			if auth != "" && strings.HasPrefix(strings.ToLower(auth), "bearer ") {
				token = strings.TrimSpace(auth[7:])
			}
		}
		if token == "" {
			return c.Next() // anonymous
		}

		if _, err := services.ParseToken(secret, token); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		user, err := resolve(c, token)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				// signed with our key but revoked or stale
				return fiber.NewError(fiber.StatusUnauthorized, "unknown token")
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}

		c.Locals("user", user)
		c.Locals("user_id", user.UserID)
		return c.Next()
	}
}

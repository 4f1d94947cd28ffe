package middleware

import (
	"github.com/gofiber/fiber/v2"

	"feed_workspace/model"
)

// UserFromLocals returns the caller the Auth middleware resolved.
func UserFromLocals(c *fiber.Ctx) (model.User, bool) {
	u, ok := c.Locals("user").(model.User)
	return u, ok && u.UserID != ""
}

func UIDFromLocals(c *fiber.Ctx) (string, error) {
	uid, _ := c.Locals("user_id").(string)
	if uid == "" {
		return "", fiber.ErrUnauthorized
	}
	return uid, nil
}

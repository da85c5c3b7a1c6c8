package handler

import (
	"github.com/gofiber/fiber/v2"
)

// currentUserID reads the user ID the auth middleware stored in Locals.
func currentUserID(c *fiber.Ctx) (uint, bool) {
	userIDRaw := c.Locals("userID")
	if userIDRaw == nil {
		return 0, false
	}
	userID, ok := userIDRaw.(uint)
	return userID, ok
}

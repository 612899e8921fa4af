package serverutils

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func SuccessResponse(code int, message string, data interface{}) fiber.Map {
	return fiber.Map{
		"success": true,
		"code":    code,
		"message": message,
		"data":    data,
	}
}

func ErrorResponse(code int, message string) fiber.Map {
	return fiber.Map{
		"success": false,
		"code":    code,
		"message": message,
	}
}

// UserIDFromLocals reads the user id set by JwtMiddleware.
func UserIDFromLocals(ctx *fiber.Ctx) (uuid.UUID, error) {
	if uid, ok := ctx.Locals("user_id").(uuid.UUID); ok {
		return uid, nil
	}
	uidStr, ok := ctx.Locals("user_id").(string)
	if !ok {
		return uuid.Nil, fiber.ErrUnauthorized
	}
	uid, err := uuid.Parse(uidStr)
	if err != nil {
		return uuid.Nil, fiber.ErrUnauthorized
	}
	return uid, nil
}

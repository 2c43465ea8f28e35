package courseValidator

import (
	"strconv"
	"strings"
	"upskill/middleware"

	"github.com/gofiber/fiber/v2"
)

// MarkModuleRequest is the mark-module-complete payload
type MarkModuleRequest struct {
	ModuleID uint `json:"module_id" validate:"required"`
}

// GetModule validates the module id path parameter
func GetModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		moduleIDStr := strings.TrimSpace(c.Params("id"))
		if moduleIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Module ID is required!", nil)
		}

		moduleID, err := strconv.Atoi(moduleIDStr)
		if err != nil || moduleID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Module ID!", nil)
		}

		c.Locals("moduleID", moduleID)
		return c.Next()
	}
}

// MarkModuleComplete validates the completion payload
func MarkModuleComplete() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(MarkModuleRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationErrors(err))
		}

		c.Locals("validatedMarkModule", reqData)
		return c.Next()
	}
}

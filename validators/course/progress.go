package courseValidator

import (
	"upskill/middleware"

	"github.com/gofiber/fiber/v2"
)

// ProgressRequest is the upsert-progress payload. Progress is a pointer so
// an explicit 0 survives the required check; its value is deliberately not
// range-checked (callers own the 0-100 convention).
type ProgressRequest struct {
	UserID   uint     `json:"user_id" validate:"required"`
	CourseID uint     `json:"course_id" validate:"required"`
	Progress *float64 `json:"progress" validate:"required"`
	Status   string   `json:"status"`
}

// UpdateProgress validates the progress payload and defaults the status
func UpdateProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ProgressRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationErrors(err))
		}

		if reqData.Status == "" {
			reqData.Status = "enrolled"
		}

		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}

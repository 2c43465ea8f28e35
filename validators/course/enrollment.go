package courseValidator

import (
	"upskill/middleware"

	"github.com/gofiber/fiber/v2"
)

// EnrollRequest is the enroll payload
type EnrollRequest struct {
	UserID   uint `json:"user_id" validate:"required"`
	CourseID uint `json:"course_id" validate:"required"`
}

// EnrollCourse validates the enrollment payload
func EnrollCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(EnrollRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationErrors(err))
		}

		c.Locals("validatedEnroll", reqData)
		return c.Next()
	}
}

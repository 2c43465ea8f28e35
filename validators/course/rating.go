package courseValidator

import (
	"upskill/middleware"

	"github.com/gofiber/fiber/v2"
)

// RatingRequest is the submit-rating payload
type RatingRequest struct {
	CourseID uint `json:"course_id" validate:"required"`
	Rating   int  `json:"rating" validate:"required,min=1,max=5"`
}

// SubmitRating validates the rating payload
func SubmitRating() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RatingRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationErrors(err))
		}

		c.Locals("validatedRating", reqData)
		return c.Next()
	}
}

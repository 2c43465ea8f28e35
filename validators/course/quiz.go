package courseValidator

import (
	"upskill/middleware"

	"github.com/gofiber/fiber/v2"
)

// SubmitQuizRequest is the quiz submission payload. Answers are positional,
// one per question in question-id order.
type SubmitQuizRequest struct {
	UserID      uint     `json:"user_id" validate:"required"`
	CourseID    uint     `json:"course_id" validate:"required"`
	UserAnswers []string `json:"user_answers" validate:"required,min=1"`
}

// SubmitQuiz validates the quiz submission payload
func SubmitQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SubmitQuizRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationErrors(err))
		}

		c.Locals("validatedSubmitQuiz", reqData)
		return c.Next()
	}
}

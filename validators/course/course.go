package courseValidator

import (
	"strconv"
	"strings"
	"upskill/middleware"

	"github.com/gofiber/fiber/v2"
)

// CourseList requires the user_id query parameter so the listing can be
// annotated with that user's progress.
func CourseList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userIDStr := strings.TrimSpace(c.Query("user_id"))
		if userIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "user_id is required!", nil)
		}

		userID, err := strconv.Atoi(userIDStr)
		if err != nil || userID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user_id!", nil)
		}

		c.Locals("userID", userID)
		return c.Next()
	}
}

// GetCourseDetail validates the course id path parameter
func GetCourseDetail() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseIDStr := strings.TrimSpace(c.Params("id"))
		if courseIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is required!", nil)
		}

		courseID, err := strconv.Atoi(courseIDStr)
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// UserIDParam validates the user_id path parameter shared by the
// enrolled-courses, progress and quiz-history routes.
func UserIDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userIDStr := strings.TrimSpace(c.Params("user_id"))
		if userIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "User ID is required!", nil)
		}

		userID, err := strconv.Atoi(userIDStr)
		if err != nil || userID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid User ID!", nil)
		}

		c.Locals("userID", userID)
		return c.Next()
	}
}

package controllers

import (
	"upskill/database"
	"upskill/middleware"
	"upskill/models"
	courseValidator "upskill/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SubmitRating records a 1-5 rating for a course. Ratings are append-only;
// every submission inserts a new row.
func SubmitRating(c *fiber.Ctx) error {
	reqData := c.Locals("validatedRating").(*courseValidator.RatingRequest)

	var course models.Course
	if err := database.Database.Db.Where("id = ?", reqData.CourseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	rating := models.Rating{
		CourseID: reqData.CourseID,
		Rating:   reqData.Rating,
	}

	if err := database.Database.Db.Create(&rating).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit rating!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Rating submitted successfully!", fiber.Map{
		"success": true,
	})
}

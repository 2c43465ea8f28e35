package controllers

import (
	"time"
	"upskill/database"
	"upskill/middleware"
	"upskill/models"
	courseValidator "upskill/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm/clause"
)

// ProgressRow is one raw enrollment progress row
type ProgressRow struct {
	CourseID uint    `json:"course_id"`
	Progress float64 `json:"progress"`
	Status   string  `json:"status"`
}

// GetUserProgressChart returns parallel label/progress sequences for a
// user's enrollments, shaped for a bar chart
func GetUserProgressChart(c *fiber.Ctx) error {
	userID := c.Locals("userID").(int)

	var rows []struct {
		Title    string
		Progress float64
	}
	err := database.Database.Db.Model(&models.Enrollment{}).
		Select("courses.title, enrollments.progress").
		Joins("JOIN courses ON courses.id = enrollments.course_id").
		Where("enrollments.user_id = ?", userID).
		Scan(&rows).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch user progress!", nil)
	}

	if len(rows) == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No courses found for this user!", nil)
	}

	labels := make([]string, len(rows))
	progress := make([]float64, len(rows))
	for i, row := range rows {
		labels[i] = row.Title
		progress[i] = row.Progress
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User progress fetched successfully!", fiber.Map{
		"labels":   labels,
		"progress": progress,
	})
}

// GetProgress returns the raw enrollment rows for a user
func GetProgress(c *fiber.Ctx) error {
	userID := c.Locals("userID").(int)

	var rows []ProgressRow
	err := database.Database.Db.Model(&models.Enrollment{}).
		Select("course_id, progress, status").
		Where("user_id = ?", userID).
		Scan(&rows).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress data!", nil)
	}

	if rows == nil {
		rows = []ProgressRow{}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress data fetched successfully!", rows)
}

// UpdateProgress upserts an enrollment's progress and status. The conflict
// clause on the (user_id, course_id) index makes the update-or-insert a
// single atomic statement. Progress values are taken as supplied.
func UpdateProgress(c *fiber.Ctx) error {
	reqData := c.Locals("validatedProgress").(*courseValidator.ProgressRequest)

	enrollment := models.Enrollment{
		UserID:         reqData.UserID,
		CourseID:       reqData.CourseID,
		Progress:       *reqData.Progress,
		Status:         reqData.Status,
		EnrollmentDate: time.Now(),
	}

	err := database.Database.Db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "course_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"progress", "status", "updated_at"}),
	}).Create(&enrollment).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress updated successfully", nil)
}

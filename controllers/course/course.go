package controllers

import (
	"upskill/database"
	"upskill/middleware"
	"upskill/models"

	"github.com/gofiber/fiber/v2"
)

// CourseWithProgress is a course annotated with one user's enrollment state.
// Status is a pointer so users who never enrolled serialize as null.
type CourseWithProgress struct {
	ID           uint    `json:"id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Duration     int64   `json:"duration"`
	InstructorID uint    `json:"instructor_id"`
	Images       string  `json:"images"`
	Progress     float64 `json:"progress"`
	Status       *string `json:"status"`
}

// GetAllCourses lists every course with the requesting user's progress
func GetAllCourses(c *fiber.Ctx) error {
	userID := c.Locals("userID").(int)

	var courses []models.Course
	if err := database.Database.Db.Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	if len(courses) == 0 {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", []CourseWithProgress{})
	}

	var enrollments []models.Enrollment
	if err := database.Database.Db.Where("user_id = ?", userID).Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	progressMap := make(map[uint]models.Enrollment, len(enrollments))
	for _, enrollment := range enrollments {
		progressMap[enrollment.CourseID] = enrollment
	}

	courseList := make([]CourseWithProgress, 0, len(courses))
	for _, course := range courses {
		item := CourseWithProgress{
			ID:           course.ID,
			Title:        course.Title,
			Description:  course.Description,
			Duration:     course.Duration,
			InstructorID: course.InstructorID,
			Images:       course.Images,
		}
		if enrollment, ok := progressMap[course.ID]; ok {
			item.Progress = enrollment.Progress
			status := enrollment.Status
			item.Status = &status
		}
		courseList = append(courseList, item)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courseList)
}

// GetCourseDetails returns a single course by id
func GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course models.Course
	if err := database.Database.Db.Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", course)
}

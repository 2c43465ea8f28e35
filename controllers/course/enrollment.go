package controllers

import (
	"errors"
	"time"
	"upskill/database"
	"upskill/middleware"
	"upskill/models"
	courseValidator "upskill/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// EnrolledCourse is the enrollment+course join row for the enrolled list
type EnrolledCourse struct {
	ID             uint      `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Duration       int64     `json:"duration"`
	InstructorID   uint      `json:"instructor_id"`
	Images         string    `json:"images"`
	Progress       float64   `json:"progress"`
	Status         string    `json:"status"`
	EnrollmentDate time.Time `json:"enrollment_date"`
}

// EnrollInCourse enrolls a user in a course. Idempotent: a repeated request
// reports the existing enrollment instead of creating a duplicate. The
// check-and-create runs in one transaction against the composite unique
// index, so concurrent requests cannot slip in a second row.
func EnrollInCourse(c *fiber.Ctx) error {
	reqData := c.Locals("validatedEnroll").(*courseValidator.EnrollRequest)

	var course models.Course
	if err := database.Database.Db.Where("id = ?", reqData.CourseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	enrollment := models.Enrollment{
		UserID:         reqData.UserID,
		CourseID:       reqData.CourseID,
		Progress:       0,
		Status:         models.StatusEnrolled,
		EnrollmentDate: time.Now(),
	}

	var created bool
	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ? AND course_id = ?", reqData.UserID, reqData.CourseID).
			Attrs(enrollment).
			FirstOrCreate(&enrollment)
		if result.Error != nil {
			return result.Error
		}
		created = result.RowsAffected > 0
		return nil
	})
	if err != nil {
		// A concurrent request may have won the insert on the unique index
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusOK, true, "User is already enrolled in this course", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}

	if !created {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "User is already enrolled in this course", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment successful", enrollment)
}

// GetEnrolledCourses lists the enrollment+course join for one user
func GetEnrolledCourses(c *fiber.Ctx) error {
	userID := c.Locals("userID").(int)

	var courseList []EnrolledCourse
	err := database.Database.Db.Model(&models.Enrollment{}).
		Select("courses.id, courses.title, courses.description, courses.duration, courses.instructor_id, courses.images, enrollments.progress, enrollments.status, enrollments.enrollment_date").
		Joins("JOIN courses ON courses.id = enrollments.course_id").
		Where("enrollments.user_id = ?", userID).
		Scan(&courseList).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrolled courses!", nil)
	}

	if courseList == nil {
		courseList = []EnrolledCourse{}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled courses fetched successfully!", courseList)
}

package models

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment statuses
const (
	StatusEnrolled  = "enrolled"
	StatusCompleted = "completed"
)

// Enrollment tracks a user's enrollment in a course with progress.
// One row per (user, course) pair, enforced by the composite unique index.
type Enrollment struct {
	gorm.Model
	UserID         uint      `json:"user_id" gorm:"uniqueIndex:idx_user_course;not null"`
	CourseID       uint      `json:"course_id" gorm:"uniqueIndex:idx_user_course;not null"`
	Progress       float64   `json:"progress" gorm:"default:0"` // Completion percentage (0-100)
	Status         string    `json:"status" gorm:"default:'enrolled'"`
	EnrollmentDate time.Time `json:"enrollment_date"`
}

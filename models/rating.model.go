package models

import "gorm.io/gorm"

// Rating is an append-only course rating. No update or aggregation.
type Rating struct {
	gorm.Model
	CourseID uint `json:"course_id" gorm:"index;not null"`
	Rating   int  `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"` // 1–5 rating
}

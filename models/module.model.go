package models

import "gorm.io/gorm"

// Module represents a content unit within a course. Completion is a
// one-way flag; there is no uncomplete operation.
type Module struct {
	gorm.Model
	CourseID    uint   `json:"course_id" gorm:"index;not null"`
	Title       string `json:"title"`
	Content     string `json:"content" gorm:"type:text"`
	IsCompleted bool   `json:"is_completed" gorm:"default:false"`
}

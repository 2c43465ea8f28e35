package models

import "gorm.io/gorm"

// Course represents a learning course
type Course struct {
	gorm.Model
	Title        string `json:"title"`
	Description  string `json:"description"`
	Duration     int64  `json:"duration" gorm:"default:0"` // duration in hours
	InstructorID uint   `json:"instructor_id" gorm:"index"`
	Images       string `json:"images"` // cover image URL
}

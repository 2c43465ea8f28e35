package models

import (
	"time"

	"gorm.io/gorm"
)

// QuizQuestion is a course-scoped question with one stored correct answer.
// Submitted answer sequences reference questions positionally, in id order.
type QuizQuestion struct {
	gorm.Model
	CourseID      uint   `json:"course_id" gorm:"index;not null"`
	Question      string `json:"question"`
	OptionA       string `json:"option_a"`
	OptionB       string `json:"option_b"`
	OptionC       string `json:"option_c"`
	OptionD       string `json:"option_d"`
	CorrectAnswer string `json:"correct_answer"`
}

// QuizResult is one row of a user's quiz submission history
type QuizResult struct {
	gorm.Model
	UserID          uint      `json:"user_id" gorm:"index;not null"`
	CourseID        uint      `json:"course_id" gorm:"index;not null"`
	Score           int       `json:"score"`
	TotalQuestions  int       `json:"total_questions"`
	ScorePercentage float64   `json:"score_percentage"`
	Reference       string    `json:"reference"` // submission reference code
	Date            time.Time `json:"date"`
}

package controllers

import (
	"time"
	"upskill/database"
	"upskill/middleware"
	"upskill/models"
	courseValidator "upskill/validators/course"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QuizHistoryRow is one quiz-results row joined with its course title
type QuizHistoryRow struct {
	CourseID        uint      `json:"course_id"`
	CourseTitle     string    `json:"course_title"`
	Score           int       `json:"score"`
	TotalQuestions  int       `json:"total_questions"`
	ScorePercentage float64   `json:"score_percentage"`
	Reference       string    `json:"reference"`
	Date            time.Time `json:"date"`
}

// GetQuizQuestions lists a course's quiz questions with the correct
// answers blanked out for students
func GetQuizQuestions(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var questions []models.QuizQuestion
	if err := database.Database.Db.Where("course_id = ?", courseID).Order("id asc").Find(&questions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch quiz questions!", nil)
	}

	if len(questions) == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No quizzes found for this course!", nil)
	}

	for i := range questions {
		questions[i].CorrectAnswer = ""
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz questions fetched successfully!", questions)
}

// SubmitQuiz scores a positional answer sheet against the course's
// questions in id order. Missing trailing answers count as wrong, extra
// answers are ignored. The resulting percentage overwrites the user's
// enrollment progress and one quiz_results row is recorded, both in the
// same transaction.
func SubmitQuiz(c *fiber.Ctx) error {
	reqData := c.Locals("validatedSubmitQuiz").(*courseValidator.SubmitQuizRequest)

	var questions []models.QuizQuestion
	if err := database.Database.Db.Where("course_id = ?", reqData.CourseID).Order("id asc").Find(&questions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch quiz questions!", nil)
	}

	if len(questions) == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No quizzes found for this course!", nil)
	}

	correctAnswers := 0
	totalQuestions := len(questions)

	for i, question := range questions {
		if i >= len(reqData.UserAnswers) {
			break
		}
		if reqData.UserAnswers[i] == question.CorrectAnswer {
			correctAnswers++
		}
	}

	scorePercentage := float64(correctAnswers) / float64(totalQuestions) * 100

	result := models.QuizResult{
		UserID:          reqData.UserID,
		CourseID:        reqData.CourseID,
		Score:           correctAnswers,
		TotalQuestions:  totalQuestions,
		ScorePercentage: scorePercentage,
		Reference:       uuid.NewString(),
		Date:            time.Now(),
	}

	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		// The quiz score replaces whatever progress the enrollment held.
		// No enrollment row means nothing to update, matching the
		// original update-where semantics.
		if err := tx.Model(&models.Enrollment{}).
			Where("user_id = ? AND course_id = ?", reqData.UserID, reqData.CourseID).
			Update("progress", scorePercentage).Error; err != nil {
			return err
		}
		return tx.Create(&result).Error
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz submitted successfully", fiber.Map{
		"score":            correctAnswers,
		"total_questions":  totalQuestions,
		"score_percentage": scorePercentage,
		"reference":        result.Reference,
	})
}

// GetQuizHistory lists a user's quiz results joined with course titles
func GetQuizHistory(c *fiber.Ctx) error {
	userID := c.Locals("userID").(int)

	var history []QuizHistoryRow
	err := database.Database.Db.Model(&models.QuizResult{}).
		Select("quiz_results.course_id, courses.title AS course_title, quiz_results.score, quiz_results.total_questions, quiz_results.score_percentage, quiz_results.reference, quiz_results.date").
		Joins("JOIN courses ON courses.id = quiz_results.course_id").
		Where("quiz_results.user_id = ?", userID).
		Order("quiz_results.date desc").
		Scan(&history).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch quiz history!", nil)
	}

	if history == nil {
		history = []QuizHistoryRow{}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz history fetched successfully!", history)
}

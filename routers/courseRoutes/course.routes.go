package courseRoutes

import (
	controllers "upskill/controllers/course"
	"upskill/middleware"
	validators "upskill/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all course platform API routes
func SetupCourseRoutes(app *fiber.App) {
	api := app.Group("/api", middleware.AuthContext)

	// Course listing and details
	api.Get("/courses", validators.CourseList(), controllers.GetAllCourses)
	api.Get("/courses/:id/modules", validators.GetCourseDetail(), controllers.GetCourseModules)
	api.Get("/courses/:id", validators.GetCourseDetail(), controllers.GetCourseDetails)

	// Enrollment
	api.Post("/enroll", validators.EnrollCourse(), controllers.EnrollInCourse)
	api.Get("/enrolled-courses/:user_id", validators.UserIDParam(), controllers.GetEnrolledCourses)

	// Progress tracking
	api.Get("/user-progress/:user_id", validators.UserIDParam(), controllers.GetUserProgressChart)
	api.Get("/progress/:user_id", validators.UserIDParam(), controllers.GetProgress)
	api.Post("/progress", validators.UpdateProgress(), controllers.UpdateProgress)

	// Modules
	api.Get("/module/:id", validators.GetModule(), controllers.GetModuleDetails)
	api.Post("/mark-module-complete", validators.MarkModuleComplete(), controllers.MarkModuleComplete)

	// Quizzes
	api.Get("/quizzes/:id", validators.GetCourseDetail(), controllers.GetQuizQuestions)
	api.Post("/submit-quiz", validators.SubmitQuiz(), controllers.SubmitQuiz)
	api.Get("/quiz-history/:user_id", validators.UserIDParam(), controllers.GetQuizHistory)

	// Ratings
	api.Post("/submit-rating", validators.SubmitRating(), controllers.SubmitRating)
}

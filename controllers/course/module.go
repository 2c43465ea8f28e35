package controllers

import (
	"upskill/database"
	"upskill/middleware"
	"upskill/models"
	courseValidator "upskill/validators/course"

	"github.com/gofiber/fiber/v2"
)

// GetCourseModules lists all modules of a course
func GetCourseModules(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var modules []models.Module
	if err := database.Database.Db.Where("course_id = ?", courseID).Order("id asc").Find(&modules).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course modules!", nil)
	}

	if len(modules) == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No modules found for this course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Modules fetched successfully!", modules)
}

// GetModuleDetails returns a single module by id
func GetModuleDetails(c *fiber.Ctx) error {
	moduleID := c.Locals("moduleID").(int)

	var module models.Module
	if err := database.Database.Db.Where("id = ?", moduleID).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module fetched successfully!", module)
}

// MarkModuleComplete sets the one-way completion flag on a module. An
// unknown module id updates nothing and still reports success.
func MarkModuleComplete(c *fiber.Ctx) error {
	reqData := c.Locals("validatedMarkModule").(*courseValidator.MarkModuleRequest)

	err := database.Database.Db.Model(&models.Module{}).
		Where("id = ?", reqData.ModuleID).
		Update("is_completed", true).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to mark module as complete!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module marked as complete!", fiber.Map{
		"success": true,
	})
}

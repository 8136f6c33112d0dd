package controllers

import (
	"log"

	"horsera/backend/middleware"
	"horsera/backend/services"
	"horsera/backend/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProgressController struct {
	Progress *services.ProgressService
	Logger   *log.Logger
}

func NewProgressController(progress *services.ProgressService, logger *log.Logger) *ProgressController {
	return &ProgressController{Progress: progress, Logger: logger}
}

func (pc *ProgressController) CheckPurchase(c *fiber.Ctx) error {
	courseID, err := primitive.ObjectIDFromHex(c.Params("courseId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	claims := middleware.Claims(c)
	purchased, err := pc.Progress.HasPurchased(c.Context(), claims.Username, courseID)
	if err != nil {
		return respondError(c, pc.Logger, err)
	}

	return c.JSON(fiber.Map{
		"purchased": purchased,
	})
}

func (pc *ProgressController) PurchaseCourse(c *fiber.Ctx) error {
	courseID, err := primitive.ObjectIDFromHex(c.Params("courseId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	claims := middleware.Claims(c)
	already, err := pc.Progress.Purchase(c.Context(), claims.Username, courseID)
	if err != nil {
		return respondError(c, pc.Logger, err)
	}

	if already {
		return c.JSON(fiber.Map{
			"message": "Course already purchased",
		})
	}
	return c.JSON(fiber.Map{
		"message": "Course purchased successfully",
	})
}

func (pc *ProgressController) PurchasedCourses(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	courses, err := pc.Progress.PurchasedCourses(c.Context(), claims.Username)
	if err != nil {
		return respondError(c, pc.Logger, err)
	}

	return c.JSON(fiber.Map{
		"purchasedCourses": courses,
	})
}

func (pc *ProgressController) CompleteLesson(c *fiber.Ctx) error {
	courseID, err := primitive.ObjectIDFromHex(c.Params("courseId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}
	lessonID, err := primitive.ObjectIDFromHex(c.Params("lessonId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid lesson ID")
	}

	claims := middleware.Claims(c)
	if err := pc.Progress.CompleteLesson(c.Context(), claims.Username, courseID, lessonID); err != nil {
		return respondError(c, pc.Logger, err)
	}

	return c.JSON(fiber.Map{
		"message": "Lesson marked as completed",
	})
}

func (pc *ProgressController) CompletedLessons(c *fiber.Ctx) error {
	courseID, err := primitive.ObjectIDFromHex(c.Params("courseId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	claims := middleware.Claims(c)
	lessons, err := pc.Progress.CompletedLessons(c.Context(), claims.Username, courseID)
	if err != nil {
		return respondError(c, pc.Logger, err)
	}

	if len(lessons) == 0 {
		return c.JSON(fiber.Map{
			"message": "No completed lessons for this course.",
		})
	}
	return c.JSON(fiber.Map{
		"completedLessons": lessons,
	})
}

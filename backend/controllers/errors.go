package controllers

import (
	"errors"
	"log"

	"horsera/backend/services"
	"horsera/backend/utils"

	"github.com/gofiber/fiber/v2"
)

// respondError translates service sentinel errors into HTTP replies.
// Anything unrecognized is logged and answered with a generic 500.
func respondError(c *fiber.Ctx, logger *log.Logger, err error) error {
	switch {
	case errors.Is(err, services.ErrCourseNotFound),
		errors.Is(err, services.ErrLessonNotFound),
		errors.Is(err, services.ErrUserNotFound):
		return utils.NotFound(c, err.Error())
	case errors.Is(err, services.ErrNotPurchased):
		return utils.Forbidden(c, "You have not purchased this course.")
	case errors.Is(err, services.ErrLessonAlreadyCompleted):
		return utils.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrUsernameTaken):
		return utils.Conflict(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		return utils.Forbidden(c, err.Error())
	default:
		logger.Printf("internal error: %v", err)
		return utils.InternalServerError(c, "Internal server error")
	}
}

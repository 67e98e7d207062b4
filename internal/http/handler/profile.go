package handler

import (
	"github.com/gofiber/fiber/v2"

	"resumeapi/internal/http/middleware"
	"resumeapi/internal/model"
	"resumeapi/internal/service"
)

// @Summary Get profile
// @Tags profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} model.UserProfile
// @Router /profile [get]
func GetProfile(svc service.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := svc.Get(c.UserContext(), middleware.UserID(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(p)
	}
}

// UpdateProfile replaces the caller's preferences.
//
// @Summary Update preferences
// @Tags profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body model.Preferences true "preferences"
// @Success 200 {object} model.UserProfile
// @Router /profile [put]
func UpdateProfile(svc service.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var prefs model.Preferences
		if err := c.BodyParser(&prefs); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid JSON body")
		}
		p, err := svc.UpdatePreferences(c.UserContext(), middleware.UserID(c), prefs)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(p)
	}
}

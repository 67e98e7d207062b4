package handler

import (
	"github.com/gofiber/fiber/v2"

	"resumeapi/internal/service"
)

// ListTemplates returns the template catalog.
//
// @Summary List templates
// @Tags templates
// @Security BearerAuth
// @Produce json
// @Success 200 {array} model.Template
// @Router /templates [get]
func ListTemplates(svc service.TemplateService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.List(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(items)
	}
}

// @Summary Get template
// @Tags templates
// @Security BearerAuth
// @Produce json
// @Param id path string true "template id"
// @Success 200 {object} model.Template
// @Router /templates/{id} [get]
func GetTemplate(svc service.TemplateService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		t, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(t)
	}
}

// SeedTemplates inserts the default catalog into an empty table.
//
// @Summary Seed templates
// @Tags templates
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]int
// @Router /templates/seed [post]
func SeedTemplates(svc service.TemplateService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		n, err := svc.Seed(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"inserted": n})
	}
}

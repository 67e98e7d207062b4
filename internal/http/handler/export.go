package handler

import (
	"github.com/gofiber/fiber/v2"

	"resumeapi/internal/http/middleware"
	"resumeapi/internal/service"
)

// PreviewResume renders the resume as an HTML page in its template's style.
//
// @Summary Preview resume
// @Tags export
// @Security BearerAuth
// @Produce html
// @Param id path string true "resume id"
// @Success 200 {string} string
// @Router /resumes/{id}/preview [get]
func PreviewResume(svc service.ExportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := resumeID(c)
		if !ok {
			return err
		}
		page, err := svc.Preview(c.UserContext(), middleware.UserID(c), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		c.Type("html", "utf-8")
		return c.Send(page)
	}
}

// ExportResume prints the resume to PDF and returns a download link.
//
// @Summary Export resume as PDF
// @Tags export
// @Security BearerAuth
// @Produce json
// @Param id path string true "resume id"
// @Success 200 {object} service.ExportResult
// @Failure 503 {object} errorPayload
// @Router /resumes/{id}/export [post]
func ExportResume(svc service.ExportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := resumeID(c)
		if !ok {
			return err
		}
		res, err := svc.Export(c.UserContext(), middleware.UserID(c), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

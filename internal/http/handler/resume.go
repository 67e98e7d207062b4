package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resumeapi/internal/http/middleware"
	"resumeapi/internal/model"
	"resumeapi/internal/service"
)

type createResumeRequest struct {
	Title      string `json:"title" validate:"required,max=200"`
	TemplateID string `json:"template_id" validate:"required"`
}

type createResumeResponse struct {
	ID string `json:"id"`
}

// resumeID reads and checks the :id path parameter. ok=false means a 400 was written.
func resumeID(c *fiber.Ctx) (string, bool, error) {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", false, writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
	}
	return id, true, nil
}

// ListResumes returns the caller's resumes, most recently modified first.
//
// @Summary List resumes
// @Tags resumes
// @Security BearerAuth
// @Produce json
// @Success 200 {object} service.ResumeListResult
// @Router /resumes [get]
func ListResumes(svc service.ResumeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.List(c.UserContext(), middleware.UserID(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// CreateResume stores an empty resume.
//
// @Summary Create resume
// @Tags resumes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body createResumeRequest true "title and template"
// @Success 201 {object} createResumeResponse
// @Failure 400 {object} errorPayload
// @Router /resumes [post]
func CreateResume(svc service.ResumeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createResumeRequest
		if ok, err := bindJSON(c, &req); !ok {
			return err
		}
		id, err := svc.Create(c.UserContext(), middleware.UserID(c), req.Title, req.TemplateID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(createResumeResponse{ID: id})
	}
}

// GetResume returns one of the caller's resumes.
//
// @Summary Get resume
// @Tags resumes
// @Security BearerAuth
// @Produce json
// @Param id path string true "resume id"
// @Success 200 {object} model.Resume
// @Failure 404 {object} errorPayload
// @Router /resumes/{id} [get]
func GetResume(svc service.ResumeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := resumeID(c)
		if !ok {
			return err
		}
		res, err := svc.Get(c.UserContext(), middleware.UserID(c), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// UpdateResume merges a partial update. Sections present in the body replace the stored ones.
//
// @Summary Update resume
// @Tags resumes
// @Security BearerAuth
// @Accept json
// @Param id path string true "resume id"
// @Param body body model.ResumeUpdate true "partial update"
// @Success 204
// @Failure 403 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /resumes/{id} [patch]
func UpdateResume(svc service.ResumeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := resumeID(c)
		if !ok {
			return err
		}
		var u model.ResumeUpdate
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&u); err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid JSON body")
			}
		}
		if err := svc.Update(c.UserContext(), middleware.UserID(c), id, u); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// DeleteResume removes a resume and its exported PDF.
//
// @Summary Delete resume
// @Tags resumes
// @Security BearerAuth
// @Param id path string true "resume id"
// @Success 204
// @Router /resumes/{id} [delete]
func DeleteResume(svc service.ResumeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := resumeID(c)
		if !ok {
			return err
		}
		if err := svc.Delete(c.UserContext(), middleware.UserID(c), id); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

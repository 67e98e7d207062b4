package handler

import (
	"github.com/gofiber/fiber/v2"

	"resumeapi/internal/assist"
)

type summaryRequest struct {
	Experience []assist.ExperienceBrief `json:"experience" validate:"max=50,dive"`
	Skills     []string                 `json:"skills" validate:"max=100"`
}

type improveRequest struct {
	Description string `json:"description" validate:"required,max=5000"`
	JobTitle    string `json:"job_title" validate:"max=200"`
}

type suggestSkillsRequest struct {
	JobTitle string `json:"job_title" validate:"required,max=200"`
	Industry string `json:"industry" validate:"max=200"`
}

type textResponse struct {
	Text string `json:"text"`
}

type skillsResponse struct {
	Skills []string `json:"skills"`
}

// GenerateSummary drafts a professional summary. Provider failures yield a fixed sentence, never an error.
//
// @Summary Generate summary
// @Tags assist
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body summaryRequest true "experience and skills"
// @Success 200 {object} textResponse
// @Router /assist/summary [post]
func GenerateSummary(b *assist.Bridge) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req summaryRequest
		if ok, err := bindJSON(c, &req); !ok {
			return err
		}
		return c.JSON(textResponse{Text: b.GenerateSummary(c.UserContext(), req.Experience, req.Skills)})
	}
}

// @Summary Improve a job description
// @Tags assist
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body improveRequest true "description and job title"
// @Success 200 {object} textResponse
// @Router /assist/improve-description [post]
func ImproveDescription(b *assist.Bridge) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req improveRequest
		if ok, err := bindJSON(c, &req); !ok {
			return err
		}
		return c.JSON(textResponse{Text: b.ImproveDescription(c.UserContext(), req.Description, req.JobTitle)})
	}
}

// @Summary Suggest skills
// @Tags assist
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body suggestSkillsRequest true "job title and industry"
// @Success 200 {object} skillsResponse
// @Router /assist/suggest-skills [post]
func SuggestSkills(b *assist.Bridge) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req suggestSkillsRequest
		if ok, err := bindJSON(c, &req); !ok {
			return err
		}
		return c.JSON(skillsResponse{Skills: b.SuggestSkills(c.UserContext(), req.JobTitle, req.Industry)})
	}
}

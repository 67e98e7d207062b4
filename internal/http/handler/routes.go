package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"resumeapi/internal/assist"
	"resumeapi/internal/editor"
	"resumeapi/internal/service"
)

// Deps is everything the HTTP layer needs.
type Deps struct {
	DB        *sql.DB
	Auth      fiber.Handler
	Resumes   service.ResumeService
	Templates service.TemplateService
	Profiles  service.ProfileService
	Exports   service.ExportService
	Assist    *assist.Bridge
	Sessions  *editor.Manager
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Everything except the health checks runs d.Auth first; a nil Auth lets every request through.
func RegisterRoutes(app *fiber.App, d Deps) {
	app.Get("/health", HealthCheck(d.DB))
	app.Get("/healthz", Liveness())

	auth := d.Auth
	if auth == nil {
		auth = func(c *fiber.Ctx) error { return c.Next() }
	}
	api := protected{app: app, auth: auth}

	api.Get("/resumes", ListResumes(d.Resumes))
	api.Post("/resumes", CreateResume(d.Resumes))
	api.Get("/resumes/:id", GetResume(d.Resumes))
	api.Patch("/resumes/:id", UpdateResume(d.Resumes))
	api.Delete("/resumes/:id", DeleteResume(d.Resumes))
	api.Get("/resumes/:id/preview", PreviewResume(d.Exports))
	api.Post("/resumes/:id/export", ExportResume(d.Exports))

	api.Get("/templates", ListTemplates(d.Templates))
	api.Post("/templates/seed", SeedTemplates(d.Templates))
	api.Get("/templates/:id", GetTemplate(d.Templates))

	api.Get("/profile", GetProfile(d.Profiles))
	api.Put("/profile", UpdateProfile(d.Profiles))

	api.Post("/assist/summary", GenerateSummary(d.Assist))
	api.Post("/assist/improve-description", ImproveDescription(d.Assist))
	api.Post("/assist/suggest-skills", SuggestSkills(d.Assist))

	api.Post("/sessions", OpenSession(d.Sessions))
	api.Get("/sessions/:sid", GetSession(d.Sessions))
	api.Delete("/sessions/:sid", CloseSession(d.Sessions))
	api.Post("/sessions/:sid/changes", ApplyChange(d.Sessions))
	api.Post("/sessions/:sid/save", ForceSave(d.Sessions))
	api.Put("/sessions/:sid/active-section", SetActiveSection(d.Sessions))
	api.Post("/sessions/:sid/voice/toggle", ToggleVoice(d.Sessions))
	api.Put("/sessions/:sid/voice/target", SetVoiceTarget(d.Sessions))
	api.Post("/sessions/:sid/voice/results", PushVoiceResults(d.Sessions))
	api.Post("/sessions/:sid/voice/end", EndVoice(d.Sessions))
}

// protected registers each route with the auth handler in front of it.
type protected struct {
	app  *fiber.App
	auth fiber.Handler
}

func (p protected) Get(path string, h fiber.Handler) { p.app.Get(path, p.auth, h) }
func (p protected) Post(path string, h fiber.Handler) { p.app.Post(path, p.auth, h) }
func (p protected) Put(path string, h fiber.Handler) { p.app.Put(path, p.auth, h) }
func (p protected) Patch(path string, h fiber.Handler) { p.app.Patch(path, p.auth, h) }
func (p protected) Delete(path string, h fiber.Handler) { p.app.Delete(path, p.auth, h) }

package handlers_fiber

import "github.com/gofiber/fiber/v2"

// RegisterRoutes binds all authenticated endpoints. The auth middleware
// resolves the actor id before any handler runs.
func RegisterRoutes(app *fiber.App, h *Handler, auth fiber.Handler) {
	teams := app.Group("/teams", auth)
	teams.Post("/", h.PostTeams)
	teams.Get("/", h.GetTeams)
	teams.Get("/:id", h.GetTeamDetail)
	teams.Post("/:id/apply", h.PostTeamApply)
	teams.Post("/:id/invite", h.PostTeamInvite)

	invitations := app.Group("/invitations", auth)
	invitations.Post("/:id/accept", h.PostInvitationAccept)
	invitations.Post("/:id/reject", h.PostInvitationReject)

	applications := app.Group("/applications", auth)
	applications.Post("/:id/accept", h.PostApplicationAccept)
	applications.Post("/:id/reject", h.PostApplicationReject)

	app.Get("/my-invites", auth, h.GetMyInvites)
	app.Get("/my-applications", auth, h.GetMyApplications)
	app.Get("/applicants/filter", auth, h.GetApplicantFilter)
	app.Post("/profile", auth, h.PostProfile)
}

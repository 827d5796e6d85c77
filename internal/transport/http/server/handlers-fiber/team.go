package handlers_fiber

import (
	"net/http"

	"teamup-service/internal/entities"
	"teamup-service/internal/mapper"
	"teamup-service/internal/transport/http/dto"
	"teamup-service/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

// PostTeams creates a team led by the authenticated user.
func (h *Handler) PostTeams(c *fiber.Ctx) error {
	var body dto.CreateTeamRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.CodeInvalidArgument, "invalid body"))
	}

	team, err := h.uc.CreateTeam(c.Context(), entities.NewTeam{
		LeaderID:   middleware.ActorID(c),
		Name:       body.Name,
		Tech:       body.Tech,
		LookingFor: body.LookingFor,
		MaxMembers: body.MaxMembers,
	})
	if err != nil {
		h.log.Errorw("failed to create team", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(dto.CreateTeamResponse{ID: team.ID})
}

// GetTeams lists all teams, reward-holding teams first.
func (h *Handler) GetTeams(c *fiber.Ctx) error {
	teams, err := h.uc.ListTeams(c.Context())
	if err != nil {
		h.log.Errorw("failed to list teams", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToTeamViews(teams))
}

// GetTeamDetail returns one team with members, applications and invitations.
func (h *Handler) GetTeamDetail(c *fiber.Ctx) error {
	teamID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.CodeInvalidArgument, "invalid team id"))
	}

	detail, err := h.uc.TeamDetail(c.Context(), int64(teamID))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToTeamDetailView(*detail))
}

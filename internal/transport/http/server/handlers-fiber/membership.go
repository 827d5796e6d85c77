package handlers_fiber

import (
	"net/http"

	"teamup-service/internal/mapper"
	"teamup-service/internal/transport/http/dto"
	"teamup-service/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

// PostTeamApply files an application from the authenticated user.
func (h *Handler) PostTeamApply(c *fiber.Ctx) error {
	teamID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.CodeInvalidArgument, "invalid team id"))
	}

	if _, err := h.uc.Apply(c.Context(), middleware.ActorID(c), int64(teamID)); err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(dto.StatusResponse{Status: "applied"})
}

// PostTeamInvite files an invitation on behalf of the team leader.
func (h *Handler) PostTeamInvite(c *fiber.Ctx) error {
	teamID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.CodeInvalidArgument, "invalid team id"))
	}

	var body dto.InviteRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.CodeInvalidArgument, "invalid body"))
	}

	if _, err := h.uc.Invite(c.Context(), middleware.ActorID(c), int64(teamID), body.UserID); err != nil {
		h.log.Errorw("failed to invite user", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(dto.StatusResponse{Status: "invited"})
}

// PostInvitationAccept joins the authenticated user to the inviting team.
func (h *Handler) PostInvitationAccept(c *fiber.Ctx) error {
	invitationID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.CodeInvalidArgument, "invalid invitation id"))
	}

	if _, err := h.uc.AcceptInvitation(c.Context(), middleware.ActorID(c), int64(invitationID)); err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(dto.StatusResponse{Status: "accepted"})
}

// PostInvitationReject declines an invitation.
func (h *Handler) PostInvitationReject(c *fiber.Ctx) error {
	invitationID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.CodeInvalidArgument, "invalid invitation id"))
	}

	if _, err := h.uc.RejectInvitation(c.Context(), middleware.ActorID(c), int64(invitationID)); err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(dto.StatusResponse{Status: "rejected"})
}

// PostApplicationAccept joins the applicant to the team. Leader only.
func (h *Handler) PostApplicationAccept(c *fiber.Ctx) error {
	applicationID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.CodeInvalidArgument, "invalid application id"))
	}

	if _, err := h.uc.AcceptApplication(c.Context(), middleware.ActorID(c), int64(applicationID)); err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(dto.StatusResponse{Status: "accepted"})
}

// PostApplicationReject declines an application. Leader only.
func (h *Handler) PostApplicationReject(c *fiber.Ctx) error {
	applicationID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.CodeInvalidArgument, "invalid application id"))
	}

	if _, err := h.uc.RejectApplication(c.Context(), middleware.ActorID(c), int64(applicationID)); err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(dto.StatusResponse{Status: "rejected"})
}

// GetMyInvites lists invitations addressed to the authenticated user.
func (h *Handler) GetMyInvites(c *fiber.Ctx) error {
	refs, err := h.uc.MyInvitations(c.Context(), middleware.ActorID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToMembershipRefViews(refs))
}

// GetMyApplications lists applications filed by the authenticated user.
func (h *Handler) GetMyApplications(c *fiber.Ctx) error {
	refs, err := h.uc.MyApplications(c.Context(), middleware.ActorID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToMembershipRefViews(refs))
}

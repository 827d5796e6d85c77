package handlers_fiber

import (
	"net/http"

	"teamup-service/internal/entities"
	"teamup-service/internal/mapper"
	"teamup-service/internal/transport/http/dto"
	"teamup-service/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

// GetApplicantFilter searches candidates by role, skill and minimum rating.
// A non-numeric min_rating is ignored, not an error.
func (h *Handler) GetApplicantFilter(c *fiber.Ctx) error {
	users, err := h.uc.FilterApplicants(c.Context(), entities.ApplicantQuery{
		Role:      c.Query("role"),
		Skill:     c.Query("skill"),
		MinRating: c.Query("min_rating"),
	})
	if err != nil {
		h.log.Errorw("failed to filter applicants", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToUserViews(users))
}

// PostProfile overwrites the authenticated user's editable profile fields.
func (h *Handler) PostProfile(c *fiber.Ctx) error {
	var body dto.ProfileRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.CodeInvalidArgument, "invalid body"))
	}

	if _, err := h.uc.UpdateProfile(c.Context(), middleware.ActorID(c), entities.Profile{
		Name:     body.Name,
		Skills:   body.Skills,
		Keywords: body.Keywords,
		MainRole: body.MainRole,
		SubRole:  body.SubRole,
	}); err != nil {
		h.log.Errorw("failed to update profile", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(dto.StatusResponse{Status: "updated"})
}

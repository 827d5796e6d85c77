package handlers_fiber

import (
	"errors"
	"net/http"

	"teamup-service/internal/entities"
	"teamup-service/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := dto.CodeInternal
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = dto.CodeInvalidArgument
		msg = err.Error()
	case errors.Is(err, entities.ErrForbidden):
		status = http.StatusForbidden
		code = dto.CodeForbidden
		msg = "leader authority required"
	case errors.Is(err, entities.ErrUserNotFound),
		errors.Is(err, entities.ErrTeamNotFound),
		errors.Is(err, entities.ErrApplicationNotFound),
		errors.Is(err, entities.ErrInvitationNotFound):
		status = http.StatusNotFound
		code = dto.CodeNotFound
		msg = "resource not found"
	default:
		msg = err.Error()
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code dto.ErrorCode, msg string) dto.ErrorResponse {
	return dto.ErrorResponse{Error: dto.APIError{Code: code, Message: msg}}
}

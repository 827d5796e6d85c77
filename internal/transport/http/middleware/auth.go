package middleware

import (
	"errors"
	"net/http"
	"strings"

	"teamup-service/internal/transport/http/dto"
	"teamup-service/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const actorKey = "actor_id"

// RequireAuth validates the bearer token signed by the user directory and
// stores the resolved actor id in the request locals.
func RequireAuth(log *zap.SugaredLogger, secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, err := bearerToken(c.Get(fiber.HeaderAuthorization))
		if err != nil {
			log.Warnw("authorization header invalid", "error", err, "path", c.OriginalURL())
			return unauthorized(c, "authentication required")
		}

		claims, err := jwt.Parse(token, secret)
		if err != nil {
			log.Warnw("token validation failed", "error", err, "path", c.OriginalURL())
			return unauthorized(c, "authentication failed")
		}

		c.Locals(actorKey, claims.UserID)
		return c.Next()
	}
}

// ActorID extracts the authenticated actor id set by RequireAuth.
func ActorID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(actorKey).(int64)
	return id
}

func unauthorized(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error: dto.APIError{Code: dto.CodeUnauthorized, Message: msg},
	})
}

func bearerToken(header string) (string, error) {
	if strings.TrimSpace(header) == "" {
		return "", errors.New("missing authorization header")
	}
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header format")
	}
	return parts[1], nil
}

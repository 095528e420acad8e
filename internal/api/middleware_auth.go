package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/ritmofit/ritmo/internal/services"
)

const (
	msgTokenExpired      = "Token expirado."
	msgTokenInvalid      = "Token inválido."
	msgTokenUserNotFound = "Usuário do token não encontrado."
	msgNoCredentials     = "As credenciais de autenticação não foram fornecidas."
)

// Authenticate resolves the Bearer token, when present, into the current
// user. Requests without an Authorization header pass through anonymously;
// requests with a broken or expired token are rejected outright.
func (handler *Handler) Authenticate(c *fiber.Ctx) error {
	rawToken, present := bearerToken(c.Get(fiber.HeaderAuthorization))
	if !present {
		return c.Next()
	}

	user, err := handler.tokenService.VerifyAccessToken(rawToken)
	if err != nil {
		return unauthorized(c, authFailureMessage(err))
	}

	c.Locals(contextUserKey, &user)
	return c.Next()
}

// AuthRequired rejects requests that did not authenticate. It must run
// after Authenticate.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	if _, ok := currentUser(c); !ok {
		return unauthorized(c, msgNoCredentials)
	}
	return c.Next()
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

func authFailureMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrTokenExpired):
		return msgTokenExpired
	case errors.Is(err, services.ErrUserNotFound):
		return msgTokenUserNotFound
	default:
		return msgTokenInvalid
	}
}

func unauthorized(c *fiber.Ctx, message string) error {
	c.Set(fiber.HeaderWWWAuthenticate, `Bearer realm="api"`)
	return detailJSON(c, fiber.StatusUnauthorized, message)
}

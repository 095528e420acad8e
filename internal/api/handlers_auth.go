package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/ritmofit/ritmo/internal/models"
	"github.com/ritmofit/ritmo/internal/services"
)

const (
	msgTooManyLoginAttempts  = "Muitas tentativas de login. Tente novamente mais tarde."
	msgRefreshTokenExpired   = "Refresh token expirado."
	msgRefreshTokenInvalid   = "Refresh token inválido."
	msgRefreshTokenWrongType = "Tipo de token inválido para refresh."
	msgRefreshUserNotFound   = "Usuário não encontrado para este refresh token."
)

func (handler *Handler) Register(c *fiber.Ctx) error {
	var body registerBody
	if err := parseBody(c, &body); err != nil {
		return respondError(c, err)
	}

	name, err := requireString(body.Name, "nome")
	if err != nil {
		return respondError(c, err)
	}
	email, err := requireString(body.Email, "email")
	if err != nil {
		return respondError(c, err)
	}
	if err := validateEmailFormat(email); err != nil {
		return respondError(c, err)
	}
	password, err := requireString(body.Password, "senha")
	if err != nil {
		return respondError(c, err)
	}

	user, err := handler.authService.Register(name, email, password)
	if err != nil {
		return respondError(c, err)
	}

	payload, err := handler.tokenPayload(user)
	if err != nil {
		return respondError(c, err)
	}
	payload["user"] = newUserView(user)
	return c.Status(fiber.StatusCreated).JSON(payload)
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	var body loginBody
	if err := parseBody(c, &body); err != nil {
		return respondError(c, err)
	}

	email, err := requireString(body.Email, "email")
	if err != nil {
		return respondError(c, err)
	}
	password, err := requireString(body.Password, "senha")
	if err != nil {
		return respondError(c, err)
	}

	key := attemptKey(c.IP(), email)
	now := time.Now()
	if handler.loginLimiter.tooManyRecent(key, now) {
		return detailJSON(c, fiber.StatusTooManyRequests, msgTooManyLoginAttempts)
	}

	user, err := handler.authService.Authenticate(email, password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			handler.loginLimiter.addFailure(key, now)
		}
		return respondError(c, err)
	}
	handler.loginLimiter.reset(key)

	payload, err := handler.tokenPayload(user)
	if err != nil {
		return respondError(c, err)
	}
	payload["user"] = newUserView(user)
	return c.JSON(payload)
}

// Refresh exchanges a valid refresh token for a fresh access token.
func (handler *Handler) Refresh(c *fiber.Ctx) error {
	var body refreshBody
	if err := parseBody(c, &body); err != nil {
		return respondError(c, err)
	}

	rawToken, err := requireString(body.RefreshToken, "refresh_token")
	if err != nil {
		return respondError(c, err)
	}

	user, err := handler.tokenService.VerifyRefreshToken(rawToken)
	if err != nil {
		return detailJSON(c, fiber.StatusBadRequest, refreshFailureMessage(err))
	}

	accessToken, err := handler.tokenService.IssueAccessToken(user)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"access_token": accessToken})
}

func (handler *Handler) tokenPayload(user models.User) (fiber.Map, error) {
	accessToken, err := handler.tokenService.IssueAccessToken(user)
	if err != nil {
		return nil, err
	}
	refreshToken, err := handler.tokenService.IssueRefreshToken(user)
	if err != nil {
		return nil, err
	}
	return fiber.Map{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
	}, nil
}

func refreshFailureMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrTokenExpired):
		return msgRefreshTokenExpired
	case errors.Is(err, services.ErrWrongTokenType):
		return msgRefreshTokenWrongType
	case errors.Is(err, services.ErrUserNotFound):
		return msgRefreshUserNotFound
	default:
		return msgRefreshTokenInvalid
	}
}

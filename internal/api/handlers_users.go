package api

import (
	"github.com/gofiber/fiber/v2"
)

// The /api/usuarios collection mirrors the account endpoints for
// administrative tooling. Every route still requires authentication.

func (handler *Handler) ListUsers(c *fiber.Ctx) error {
	users, err := handler.repositories.Users.List(c.Query("search"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(newUserViews(users))
}

func (handler *Handler) GetUser(c *fiber.Ctx) error {
	userID, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}
	user, err := handler.authService.FindByID(userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(newUserView(user))
}

func (handler *Handler) CreateUser(c *fiber.Ctx) error {
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
	return c.Status(fiber.StatusCreated).JSON(newUserView(user))
}

func (handler *Handler) UpdateUser(c *fiber.Ctx) error {
	userID, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}
	user, err := handler.authService.FindByID(userID)
	if err != nil {
		return respondError(c, err)
	}

	var body profileBody
	if err := parseBody(c, &body); err != nil {
		return respondError(c, err)
	}
	if body.Email != nil {
		if err := validateEmailFormat(*body.Email); err != nil {
			return respondError(c, err)
		}
	}

	updated, err := handler.authService.UpdateProfile(user, body.Name, body.Email)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(newUserView(updated))
}

func (handler *Handler) DeleteUser(c *fiber.Ctx) error {
	userID, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}
	if _, err := handler.authService.FindByID(userID); err != nil {
		return respondError(c, err)
	}
	if err := handler.authService.DeleteAccount(userID); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

package api

import (
	"github.com/gofiber/fiber/v2"
)

const msgPasswordChanged = "Senha alterada com sucesso"

func (handler *Handler) Me(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	return c.JSON(newUserView(*user))
}

func (handler *Handler) UpdateMe(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	var body profileBody
	if err := parseBody(c, &body); err != nil {
		return respondError(c, err)
	}
	if body.Email != nil {
		if err := validateEmailFormat(*body.Email); err != nil {
			return respondError(c, err)
		}
	}

	updated, err := handler.authService.UpdateProfile(*user, body.Name, body.Email)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(newUserView(updated))
}

func (handler *Handler) DeleteMe(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	if err := handler.authService.DeleteAccount(user.ID); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) ChangePassword(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	var body changePasswordBody
	if err := parseBody(c, &body); err != nil {
		return respondError(c, err)
	}

	current, err := requireString(body.CurrentPassword, "senha_atual")
	if err != nil {
		return respondError(c, err)
	}
	newPassword, err := requireString(body.NewPassword, "nova_senha")
	if err != nil {
		return respondError(c, err)
	}
	confirmation, err := requireString(body.ConfirmPassword, "nova_senha_confirmacao")
	if err != nil {
		return respondError(c, err)
	}

	if err := handler.authService.ChangePassword(*user, current, newPassword, confirmation); err != nil {
		return respondError(c, err)
	}
	return detailJSON(c, fiber.StatusOK, msgPasswordChanged)
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/account-service/internal/api/dto"
	"github.com/spec-kit/account-service/internal/repository"
	"github.com/spec-kit/account-service/internal/service"
	"github.com/spec-kit/account-service/pkg/util"
)

// UsersHandler exposes the account CRUD endpoints.
type UsersHandler struct {
	accounts *service.AccountService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(accounts *service.AccountService) *UsersHandler {
	return &UsersHandler{accounts: accounts}
}

// List handles GET /users.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	users, err := h.accounts.ListUsers(c.Context())
	if err != nil {
		return util.NewStoreFailure("Error al obtener usuarios", http.StatusInternalServerError, err)
	}
	return c.JSON(dto.NewUserListResponse(users))
}

// Update handles PUT /users/:id. An absent id answers 200 with a null body,
// which is what the frontend expects. An absent body means "change nothing".
func (h *UsersHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateUserRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return util.NewValidationError("Solicitud inválida")
		}
	}

	// Empty strings are skipped like absent fields: the record's name and
	// email are non-empty by definition, so "" is never a value to write.
	update := repository.UserUpdate{}
	if req.Name != nil && *req.Name != "" {
		update.Name = req.Name
	}
	if req.Email != nil && *req.Email != "" {
		update.Email = req.Email
	}

	user, err := h.accounts.UpdateUser(c.Context(), c.Params("id"), update)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return util.NewDuplicateEmail()
		}
		return util.NewStoreFailure("Error al actualizar usuario", http.StatusBadRequest, err)
	}
	if user == nil {
		return c.JSON(nil)
	}
	return c.JSON(dto.NewUserResponse(*user))
}

// Delete handles DELETE /users/:id. Deleting an absent id still succeeds.
func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	if err := h.accounts.DeleteUser(c.Context(), c.Params("id")); err != nil {
		return util.NewStoreFailure("Error al eliminar usuario", http.StatusBadRequest, err)
	}
	return c.JSON(fiber.Map{"message": "Usuario eliminado con éxito"})
}

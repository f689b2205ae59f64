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

// AuthHandler exposes registration and login.
type AuthHandler struct {
	accounts *service.AccountService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(accounts *service.AccountService) *AuthHandler {
	return &AuthHandler{accounts: accounts}
}

// Register handles POST /register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("Solicitud inválida")
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return util.NewValidationError("nombre, correo y contraseña son obligatorios")
	}

	if _, err := h.accounts.Register(c.Context(), req.Name, req.Email, req.Password); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return util.NewDuplicateEmail()
		}
		return util.NewStoreFailure("Error al registrar usuario", http.StatusInternalServerError, err)
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Usuario registrado con éxito",
	})
}

// Login handles POST /login. Unknown email and wrong password produce the
// same response so the caller learns nothing about which part failed.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("Solicitud inválida")
	}
	if req.Email == "" || req.Password == "" {
		return util.NewValidationError("correo y contraseña son obligatorios")
	}

	user, err := h.accounts.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return util.NewAuthFailure()
		}
		return util.NewStoreFailure("Error al iniciar sesión", http.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{
		"message": "Inicio de sesión exitoso",
		"user":    dto.LoginUserResponse{Name: user.Name, Email: user.Email},
	})
}

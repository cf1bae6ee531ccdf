package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/registro-empresas-api/internal/application/auth"
	"github.com/jhoicas/registro-empresas-api/internal/application/dto"
	"github.com/jhoicas/registro-empresas-api/internal/domain"
)

// AuthHandler maneja login y perfil.
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "correo_usuario, contrasena"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("INVALID_BODY", "cuerpo inválido"))
	}
	if in.CorreoUsuario == "" || in.Contrasena == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("VALIDATION", "Faltan datos requeridos."))
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("UNAUTHORIZED", "Correo o contraseña incorrectos."))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", err.Error()))
	}
	return c.JSON(out)
}

// Profile godoc
// @Summary      Perfil del usuario autenticado
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.ProfileResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/perfil [get]
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("UNAUTHORIZED", "token inválido"))
	}
	out, err := h.uc.Profile(c.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("UNAUTHORIZED", "usuario no encontrado"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", err.Error()))
	}
	return c.JSON(out)
}

package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/registro-empresas-api/internal/application/dto"
	"github.com/jhoicas/registro-empresas-api/internal/application/verification"
	"github.com/jhoicas/registro-empresas-api/internal/domain"
)

// VerificationHandler maneja la emisión y validación de códigos por correo.
type VerificationHandler struct {
	uc *verification.UseCase
}

// NewVerificationHandler construye el handler inyectando el caso de uso.
func NewVerificationHandler(uc *verification.UseCase) *VerificationHandler {
	return &VerificationHandler{uc: uc}
}

// IssueCode godoc
// @Summary      Enviar código de verificación al correo
// @Tags         verificacion
// @Accept       json
// @Produce      json
// @Param        body  body  dto.IssueCodeRequest  true  "correo"
// @Success      200   {object}  dto.StatusResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/verificar-correo [post]
func (h *VerificationHandler) IssueCode(c *fiber.Ctx) error {
	var in dto.IssueCodeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("INVALID_BODY", "cuerpo inválido"))
	}
	if in.Correo == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("VALIDATION", "Faltan datos requeridos."))
	}
	if err := h.uc.IssueCode(c.Context(), in.Correo); err != nil {
		if errors.Is(err, domain.ErrNotifierUnavailable) {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("SEND_FAILED", "No se pudo enviar el código de verificación."))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", err.Error()))
	}
	return c.JSON(dto.StatusResponse{Success: true, Message: "Código enviado al correo."})
}

// ValidateCode godoc
// @Summary      Validar código recibido por correo
// @Tags         verificacion
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ValidateCodeRequest  true  "correo, codigo"
// @Success      200   {object}  dto.StatusResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/validar-codigo [post]
func (h *VerificationHandler) ValidateCode(c *fiber.Ctx) error {
	var in dto.ValidateCodeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("INVALID_BODY", "cuerpo inválido"))
	}
	if in.Correo == "" || in.Codigo == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("VALIDATION", "Faltan datos requeridos."))
	}
	if err := h.uc.ValidateCode(c.Context(), in.Correo, in.Codigo); err != nil {
		if errors.Is(err, domain.ErrInvalidCode) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("INVALID_CODE", "Código incorrecto o expirado."))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", err.Error()))
	}
	return c.JSON(dto.StatusResponse{Success: true, Message: "Correo verificado correctamente."})
}
